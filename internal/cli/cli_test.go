package cli

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cidrugHug8/bleunet/bleu"
	"github.com/cidrugHug8/bleunet/corpus"
	"github.com/cidrugHug8/bleunet/ribes"
)

func TestParseWeightSets(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want [][]float64
	}{
		{name: "empty means defaults", in: "", want: nil},
		{name: "blank means defaults", in: "   ", want: nil},
		{name: "single vector", in: "0.25,0.25,0.25,0.25", want: [][]float64{{0.25, 0.25, 0.25, 0.25}}},
		{name: "unigram only", in: "1", want: [][]float64{{1}}},
		{name: "spaces around weights", in: "0.5, 0.5", want: [][]float64{{0.5, 0.5}}},
		{
			name: "multiple vectors",
			in:   "0.25,0.25,0.25,0.25;0.5,0.5;1",
			want: [][]float64{{0.25, 0.25, 0.25, 0.25}, {0.5, 0.5}, {1}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseWeightSets(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseWeightSetsErrors(t *testing.T) {
	for _, in := range []string{"abc", "0.5,-0.5", "0.5,,0.5", ";", "0.5;"} {
		t.Run(in, func(t *testing.T) {
			_, err := parseWeightSets(in)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "bad weight")
		})
	}
}

// syntheticParallel builds a deterministic in-memory corpus for the sharding
// tests.
func syntheticParallel(pairs int, seed int64) *corpus.Parallel {
	rng := rand.New(rand.NewSource(seed))
	vocab := []string{"the", "cat", "dog", "sat", "on", "mat", "a", "ran", "fast", "slow"}
	data := &corpus.Parallel{}
	for i := 0; i < pairs; i++ {
		hyp := make([]string, 3+rng.Intn(8))
		for j := range hyp {
			hyp[j] = vocab[rng.Intn(len(vocab))]
		}
		refs := make([][]string, 1+rng.Intn(2))
		for r := range refs {
			ref := make([]string, 3+rng.Intn(8))
			for j := range ref {
				ref[j] = vocab[rng.Intn(len(vocab))]
			}
			refs[r] = ref
		}
		data.Hypotheses = append(data.Hypotheses, hyp)
		data.References = append(data.References, refs)
	}
	return data
}

func TestCorpusBleuShardingMatchesSequential(t *testing.T) {
	data := syntheticParallel(37, 11)
	want := bleu.Corpus(data.References, data.Hypotheses, nil)
	for workers := 1; workers <= 6; workers++ {
		require.Equal(t, want, corpusBleu(data, nil, workers), "workers=%d", workers)
	}
}

func TestCorpusBleuShardingWithExplicitWeights(t *testing.T) {
	data := syntheticParallel(25, 3)
	weights := []float64{0.5, 0.5}
	want := bleu.Corpus(data.References, data.Hypotheses, weights)
	for workers := 1; workers <= 6; workers++ {
		require.Equal(t, want, corpusBleu(data, weights, workers), "workers=%d", workers)
	}
}

func TestCorpusBleuMultiShardingMatchesSequential(t *testing.T) {
	data := syntheticParallel(37, 11)
	weightSets := [][]float64{
		{0.25, 0.25, 0.25, 0.25},
		{0.5, 0.5},
		{1},
	}
	want := bleu.CorpusMulti(data.References, data.Hypotheses, weightSets)
	for workers := 1; workers <= 6; workers++ {
		require.Equal(t, want, corpusBleuMulti(data, weightSets, workers), "workers=%d", workers)
	}
}

func TestCorpusRibesShardingMatchesSequential(t *testing.T) {
	data := syntheticParallel(37, 11)
	want := ribes.Corpus(data.References, data.Hypotheses)
	for workers := 1; workers <= 6; workers++ {
		assert.InDelta(t, want, corpusRibes(data, workers), 1e-12, "workers=%d", workers)
	}
}

func TestCorpusBleuMoreWorkersThanSentences(t *testing.T) {
	data := syntheticParallel(3, 7)
	want := bleu.Corpus(data.References, data.Hypotheses, nil)
	require.Equal(t, want, corpusBleu(data, nil, 16))
}
