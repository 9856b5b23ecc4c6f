package ribes

import (
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankCorrelation(t *testing.T) {
	cases := []struct {
		name      string
		alignment []int
		hypLen    int
		refLen    int
		tau       float64
		precision float64
	}{
		{"empty alignment", nil, 5, 5, 0, 0},
		{"single against single-token reference", []int{0}, 9, 1, 1, 1.0 / 9},
		{"single against longer reference", []int{3}, 9, 3, 0, 0},
		{"perfect order", []int{0, 1, 2}, 3, 3, 1, 1},
		{"reversed order", []int{2, 1, 0}, 3, 3, 0, 1},
		{"one swap", []int{1, 0, 2, 3}, 4, 4, 5.0 / 6, 1},
		{"equal positions are not ascending", []int{2, 2}, 4, 4, 0, 0.5},
		{"partial alignment", []int{0, 2}, 3, 3, 1, 2.0 / 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tau, precision := RankCorrelation(tc.alignment, tc.hypLen, tc.refLen)
			assert.InDelta(t, tc.tau, tau, 1e-15)
			assert.InDelta(t, tc.precision, precision, 1e-15)
		})
	}
}

func TestBrevityPenalty(t *testing.T) {
	assert.Equal(t, math.Exp(1.0-5.0/4.0), BrevityPenalty(5, 4))
	assert.Equal(t, 1.0, BrevityPenalty(4, 4))
	// Longer hypotheses are capped, never rewarded.
	assert.Equal(t, 1.0, BrevityPenalty(3, 6))
	assert.Equal(t, 0.0, BrevityPenalty(8, 0))
}

func TestSentenceIdentical(t *testing.T) {
	sentence := strings.Fields("the cat is on the mat")
	require.Equal(t, 1.0, Sentence([][]string{sentence}, sentence))
}

func TestSentenceReversed(t *testing.T) {
	reference := strings.Fields("a b c d")
	hypothesis := strings.Fields("d c b a")
	assert.Equal(t, 0.0, Sentence([][]string{reference}, hypothesis))
}

func TestSentenceSingleSwap(t *testing.T) {
	reference := strings.Fields("a b c d")
	hypothesis := strings.Fields("b a c d")
	assert.InDelta(t, 5.0/6, Sentence([][]string{reference}, hypothesis), 1e-15)
}

func TestSentencePartialAlignment(t *testing.T) {
	reference := strings.Fields("a b c")
	hypothesis := strings.Fields("a x c")

	// tau 1 over the aligned pair, precision 2/3, no length penalty.
	want := math.Pow(2.0/3.0, Alpha)
	assert.InDelta(t, want, Sentence([][]string{reference}, hypothesis), 1e-15)
}

func TestSentenceShorterHypothesis(t *testing.T) {
	reference := strings.Fields("c a c a d")
	hypothesis := strings.Fields("a c a d")

	// The alignment [1 2 3 4] is fully ascending and complete, leaving only
	// the brevity penalty.
	want := math.Pow(math.Exp(1.0-5.0/4.0), Beta)
	assert.InDelta(t, want, Sentence([][]string{reference}, hypothesis), 1e-15)
}

func TestSentenceSingleTokenPair(t *testing.T) {
	assert.Equal(t, 1.0, Sentence([][]string{{"hello"}}, []string{"hello"}))

	// One aligned token against a single-token reference: tau is 1 and
	// precision 1/2.
	want := math.Pow(0.5, Alpha)
	assert.InDelta(t, want, Sentence([][]string{{"hello"}}, []string{"hello", "world"}), 1e-15)
}

func TestSentenceSingleAlignmentLongerReference(t *testing.T) {
	// Only "a" aligns, and the reference has two tokens, so the alignment
	// carries no usable order information.
	reference := strings.Fields("a b")
	hypothesis := strings.Fields("a x y")
	assert.Equal(t, 0.0, Sentence([][]string{reference}, hypothesis))
}

func TestSentenceBestOfReferences(t *testing.T) {
	good := strings.Fields("the cat sat on the mat")
	bad := strings.Fields("mat the on sat cat the")
	hypothesis := strings.Fields("the cat sat on the mat")

	require.Equal(t, 1.0, Sentence([][]string{bad, good}, hypothesis))
}

func TestSentenceNoReferences(t *testing.T) {
	assert.Equal(t, 0.0, Sentence(nil, strings.Fields("a b c")))
}

func TestSentenceEmptyHypothesis(t *testing.T) {
	assert.Equal(t, 0.0, Sentence([][]string{strings.Fields("a b c")}, nil))
}

func TestSentenceRange(t *testing.T) {
	vocabulary := strings.Fields("a b c d e f")
	rng := rand.New(rand.NewSource(11))
	randomSentence := func(maxLen int) []string {
		sentence := make([]string, rng.Intn(maxLen+1))
		for i := range sentence {
			sentence[i] = vocabulary[rng.Intn(len(vocabulary))]
		}
		return sentence
	}

	for i := 0; i < 200; i++ {
		references := [][]string{randomSentence(10), randomSentence(10)}
		hypothesis := randomSentence(10)

		score := Sentence(references, hypothesis)
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 1.0)
	}
}

func BenchmarkSentence(b *testing.B) {
	reference := strings.Fields("the quick brown fox jumps over the lazy dog near the river bank")
	hypothesis := strings.Fields("the brown quick fox jumps over the lazy dog near a river bank")
	references := [][]string{reference}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Sentence(references, hypothesis)
	}
}
