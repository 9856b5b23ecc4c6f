package cli

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cidrugHug8/bleunet/bleu"
	"github.com/cidrugHug8/bleunet/corpus"
	"github.com/cidrugHug8/bleunet/ribes"
)

// benchCmd represents the bench command
var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Time corpus scoring over repeated iterations",
	Long: `Load a corpus once and time the selected metrics over repeated
iterations, reporting the average wall time per iteration.`,
	RunE: runBench,
}

func init() {
	benchCmd.Flags().String("hyp", "", "hypothesis file (required)")
	benchCmd.Flags().StringSlice("ref", nil, "reference file, repeatable (required)")
	benchCmd.Flags().String("metric", "all", "metric to time: bleu, ribes or all")
	benchCmd.Flags().Int("iterations", 10, "number of scoring iterations")
	benchCmd.Flags().String("tokenizer", "word", "tokenizer: word, whitespace or sentencepiece")
	benchCmd.Flags().Bool("lowercase", false, "lowercase input before tokenizing")
	benchCmd.Flags().Bool("nfc", false, "apply NFC normalization before tokenizing")
	benchCmd.Flags().String("sp-model", "", "SentencePiece model file (required with --tokenizer sentencepiece)")

	for _, name := range []string{"hyp", "ref", "metric", "iterations", "tokenizer", "lowercase", "nfc", "sp-model"} {
		viper.BindPFlag("bench."+name, benchCmd.Flags().Lookup(name))
	}

	rootCmd.AddCommand(benchCmd)
}

func runBench(cmd *cobra.Command, args []string) error {
	metric := viper.GetString("bench.metric")
	switch metric {
	case "bleu", "ribes", "all":
	default:
		return errors.Errorf("unknown metric %q, want bleu, ribes or all", metric)
	}
	iterations := viper.GetInt("bench.iterations")
	if iterations < 1 {
		return errors.Errorf("iterations must be positive, got %d", iterations)
	}

	hypPath := viper.GetString("bench.hyp")
	if hypPath == "" {
		return errors.New("missing --hyp hypothesis file")
	}

	tok, err := newTokenizer("bench")
	if err != nil {
		return err
	}
	data, err := corpus.ReadParallel(hypPath, viper.GetStringSlice("bench.ref"), tok)
	if err != nil {
		return err
	}

	if metric == "bleu" || metric == "all" {
		start := time.Now()
		for i := 0; i < iterations; i++ {
			bleu.Corpus(data.References, data.Hypotheses, nil)
		}
		reportBench(cmd, "bleu", len(data.Hypotheses), iterations, time.Since(start))
	}
	if metric == "ribes" || metric == "all" {
		start := time.Now()
		for i := 0; i < iterations; i++ {
			ribes.Corpus(data.References, data.Hypotheses)
		}
		reportBench(cmd, "ribes", len(data.Hypotheses), iterations, time.Since(start))
	}
	return nil
}

func reportBench(cmd *cobra.Command, metric string, sentences, iterations int, elapsed time.Duration) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d sentences\t%d iterations\t%v/iter\n",
		metric, sentences, iterations, elapsed/time.Duration(iterations))
}
