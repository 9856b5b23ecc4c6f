package bleu

import (
	"math"

	"github.com/cidrugHug8/bleunet/ngram"
)

// Stats holds the corpus-level sufficient statistics: pooled clipped and
// total n-gram counts per order plus the total hypothesis and closest-
// reference lengths. All fields are plain sums, so sentence pairs can be
// folded in any order, or in parallel shards combined with Merge, and the
// final Score is identical.
type Stats struct {
	Matched []int // clipped n-gram matches per order, index 0 = unigrams
	Total   []int // hypothesis n-grams per order, floored to 1 per sentence
	HypLen  int
	RefLen  int
}

// NewStats returns empty statistics covering orders 1..maxOrder.
func NewStats(maxOrder int) *Stats {
	return &Stats{
		Matched: make([]int, maxOrder),
		Total:   make([]int, maxOrder),
	}
}

// Add folds one sentence pair into the statistics.
func (s *Stats) Add(references [][]string, hypothesis []string) {
	for i := range s.Matched {
		precision := ngram.ModifiedPrecision(references, hypothesis, i+1)
		s.Matched[i] += precision.Numerator
		s.Total[i] += precision.Denominator
	}
	s.HypLen += len(hypothesis)
	s.RefLen += ClosestRefLength(references, len(hypothesis))
}

// Merge folds another shard's statistics into s. Both must have been created
// with the same maximum order.
func (s *Stats) Merge(o *Stats) {
	for i := range s.Matched {
		s.Matched[i] += o.Matched[i]
		s.Total[i] += o.Total[i]
	}
	s.HypLen += o.HypLen
	s.RefLen += o.RefLen
}

// Score computes corpus BLEU from the pooled statistics. weights may cover
// fewer orders than the statistics track. An order whose pooled denominator
// is zero contributes nothing to the geometric mean; unlike the sentence-
// level rule a single empty order does not zero the corpus score.
func (s *Stats) Score(weights []float64) float64 {
	weights = orDefault(weights)
	logSum := 0.0
	for i, weight := range weights {
		if s.Total[i] == 0 {
			continue
		}
		logSum += weight * math.Log(float64(s.Matched[i])/float64(s.Total[i]))
	}
	return BrevityPenalty(s.RefLen, s.HypLen) * math.Exp(logSum)
}

// Corpus scores a whole corpus: referencesList[i] holds the references for
// hypotheses[i]. The two slices must be parallel; Corpus panics on a length
// mismatch, which is caller error rather than data error (the corpus loader
// validates file inputs before they get here).
func Corpus(referencesList [][][]string, hypotheses [][]string, weights []float64) float64 {
	weights = orDefault(weights)
	stats := NewStats(len(weights))
	addAll(stats, referencesList, hypotheses)
	return stats.Score(weights)
}

// CorpusMulti scores the corpus once per weight vector. The pooled n-gram
// statistics do not depend on the weights, so they are computed a single
// time and reused; each returned element equals the corresponding Corpus
// call.
func CorpusMulti(referencesList [][][]string, hypotheses [][]string, weightSets [][]float64) []float64 {
	normalized := make([][]float64, len(weightSets))
	maxOrder := 0
	for i, weights := range weightSets {
		normalized[i] = orDefault(weights)
		if len(normalized[i]) > maxOrder {
			maxOrder = len(normalized[i])
		}
	}
	stats := NewStats(maxOrder)
	addAll(stats, referencesList, hypotheses)
	scores := make([]float64, len(normalized))
	for i, weights := range normalized {
		scores[i] = stats.Score(weights)
	}
	return scores
}

func addAll(stats *Stats, referencesList [][][]string, hypotheses [][]string) {
	if len(referencesList) != len(hypotheses) {
		panic("bleu: referencesList and hypotheses must have equal length")
	}
	for i, hypothesis := range hypotheses {
		stats.Add(referencesList[i], hypothesis)
	}
}
