package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"k8s.io/klog/v2"

	"github.com/cidrugHug8/bleunet/bleu"
	"github.com/cidrugHug8/bleunet/corpus"
	"github.com/cidrugHug8/bleunet/internal/worker"
	"github.com/cidrugHug8/bleunet/ribes"
	"github.com/cidrugHug8/bleunet/tokenizers"
	"github.com/cidrugHug8/bleunet/tokenizers/api"
)

// scoreCmd represents the score command
var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a hypothesis corpus against reference corpora",
	Long: `Score a hypothesis file against one or more reference files.

Files hold one sentence per line; a .gz suffix selects gzip decompression.
BLEU weights are comma-separated, with ';' separating alternative weight
vectors that are all evaluated over the same n-gram statistics:

  bleunet score --hyp out.txt --ref ref0.txt --ref ref1.txt \
      --metric bleu --weights '0.25,0.25,0.25,0.25;0.5,0.5'`,
	RunE: runScore,
}

func init() {
	scoreCmd.Flags().String("hyp", "", "hypothesis file (required)")
	scoreCmd.Flags().StringSlice("ref", nil, "reference file, repeatable (required)")
	scoreCmd.Flags().String("metric", "all", "metric to report: bleu, ribes or all")
	scoreCmd.Flags().String("weights", "", "BLEU n-gram weights, e.g. '0.25,0.25,0.25,0.25'; ';' separates alternative vectors")
	scoreCmd.Flags().String("tokenizer", string(api.KindWord), "tokenizer: word, whitespace or sentencepiece")
	scoreCmd.Flags().Bool("lowercase", false, "lowercase input before tokenizing")
	scoreCmd.Flags().Bool("nfc", false, "apply NFC normalization before tokenizing")
	scoreCmd.Flags().String("sp-model", "", "SentencePiece model file (required with --tokenizer sentencepiece)")
	scoreCmd.Flags().Int("workers", 1, "number of scoring goroutines")

	for _, name := range []string{"hyp", "ref", "metric", "weights", "tokenizer", "lowercase", "nfc", "sp-model", "workers"} {
		viper.BindPFlag("score."+name, scoreCmd.Flags().Lookup(name))
	}

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, args []string) error {
	metric := viper.GetString("score.metric")
	switch metric {
	case "bleu", "ribes", "all":
	default:
		return errors.Errorf("unknown metric %q, want bleu, ribes or all", metric)
	}

	weightSets, err := parseWeightSets(viper.GetString("score.weights"))
	if err != nil {
		return err
	}

	hypPath := viper.GetString("score.hyp")
	refPaths := viper.GetStringSlice("score.ref")
	if hypPath == "" {
		return errors.New("missing --hyp hypothesis file")
	}

	tok, err := newTokenizer("score")
	if err != nil {
		return err
	}

	data, err := corpus.ReadParallel(hypPath, refPaths, tok)
	if err != nil {
		return err
	}
	klog.V(1).Infof("Scoring %d sentence pairs", len(data.Hypotheses))

	workers := viper.GetInt("score.workers")
	if metric == "bleu" || metric == "all" {
		switch len(weightSets) {
		case 0:
			fmt.Fprintf(cmd.OutOrStdout(), "bleu\t%.4f\n", corpusBleu(data, nil, workers))
		case 1:
			fmt.Fprintf(cmd.OutOrStdout(), "bleu\t%.4f\n", corpusBleu(data, weightSets[0], workers))
		default:
			for i, score := range corpusBleuMulti(data, weightSets, workers) {
				fmt.Fprintf(cmd.OutOrStdout(), "bleu[%d]\t%.4f\n", i, score)
			}
		}
	}
	if metric == "ribes" || metric == "all" {
		fmt.Fprintf(cmd.OutOrStdout(), "ribes\t%.4f\n", corpusRibes(data, workers))
	}
	return nil
}

// newTokenizer builds the tokenizer selected by the settings under the given
// viper key prefix ("score" or "bench").
func newTokenizer(prefix string) (api.Tokenizer, error) {
	return tokenizers.New(api.Config{
		Kind:      api.Kind(viper.GetString(prefix + ".tokenizer")),
		Lowercase: viper.GetBool(prefix + ".lowercase"),
		NFC:       viper.GetBool(prefix + ".nfc"),
		ModelPath: viper.GetString(prefix + ".sp-model"),
	})
}

// corpusBleu scores the corpus, sharding the sentence pairs over workers
// goroutines. Results are identical to the sequential score for any worker
// count.
func corpusBleu(data *corpus.Parallel, weights []float64, workers int) float64 {
	shards := worker.Split(len(data.Hypotheses), workers)
	if len(shards) <= 1 {
		return bleu.Corpus(data.References, data.Hypotheses, weights)
	}
	parts := bleuShards(data, len(weights), shards)
	whole := parts[0]
	for _, part := range parts[1:] {
		whole.Merge(part)
	}
	return whole.Score(weights)
}

// corpusBleuMulti evaluates several weight vectors over one pass of pooled
// n-gram statistics.
func corpusBleuMulti(data *corpus.Parallel, weightSets [][]float64, workers int) []float64 {
	shards := worker.Split(len(data.Hypotheses), workers)
	if len(shards) <= 1 {
		return bleu.CorpusMulti(data.References, data.Hypotheses, weightSets)
	}
	maxOrder := 0
	for _, weights := range weightSets {
		order := len(weights)
		if order == 0 {
			order = len(bleu.DefaultWeights)
		}
		if order > maxOrder {
			maxOrder = order
		}
	}
	parts := bleuShards(data, maxOrder, shards)
	whole := parts[0]
	for _, part := range parts[1:] {
		whole.Merge(part)
	}
	scores := make([]float64, len(weightSets))
	for i, weights := range weightSets {
		scores[i] = whole.Score(weights)
	}
	return scores
}

func bleuShards(data *corpus.Parallel, maxOrder int, shards []worker.Shard) []*bleu.Stats {
	if maxOrder < 1 {
		maxOrder = len(bleu.DefaultWeights)
	}
	parts := make([]*bleu.Stats, len(shards))
	worker.Run(shards, func(i int, s worker.Shard) {
		stats := bleu.NewStats(maxOrder)
		for j := s.Start; j < s.End; j++ {
			stats.Add(data.References[j], data.Hypotheses[j])
		}
		parts[i] = stats
	})
	return parts
}

// corpusRibes mirrors corpusBleu for the RIBES metric.
func corpusRibes(data *corpus.Parallel, workers int) float64 {
	shards := worker.Split(len(data.Hypotheses), workers)
	if len(shards) <= 1 {
		return ribes.Corpus(data.References, data.Hypotheses)
	}
	parts := make([]*ribes.Stats, len(shards))
	worker.Run(shards, func(i int, s worker.Shard) {
		stats := &ribes.Stats{}
		for j := s.Start; j < s.End; j++ {
			stats.Add(data.References[j], data.Hypotheses[j])
		}
		parts[i] = stats
	})
	whole := parts[0]
	for _, part := range parts[1:] {
		whole.Merge(part)
	}
	return whole.Score()
}

// parseWeightSets parses the --weights flag. Vectors are separated by ';',
// weights within a vector by ','. An empty flag means the default weights.
func parseWeightSets(s string) ([][]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	var sets [][]float64
	for _, part := range strings.Split(s, ";") {
		weights, err := parseWeights(part)
		if err != nil {
			return nil, err
		}
		sets = append(sets, weights)
	}
	return sets, nil
}

func parseWeights(s string) ([]float64, error) {
	var weights []float64
	for _, field := range strings.Split(s, ",") {
		w, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "bad weight %q", strings.TrimSpace(field))
		}
		if w < 0 {
			return nil, errors.Errorf("bad weight %q: must not be negative", strings.TrimSpace(field))
		}
		weights = append(weights, w)
	}
	return weights, nil
}
