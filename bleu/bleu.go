// Package bleu implements sentence- and corpus-level BLEU (Papineni et al.,
// 2002): a weighted geometric mean of clipped n-gram precisions multiplied by
// a brevity penalty.
//
// Corpus scoring pools the per-order n-gram counts across all sentence pairs
// before taking the geometric mean. That is the standard corpus definition
// and is not the same number as averaging per-sentence scores.
package bleu

import (
	"math"

	"github.com/cidrugHug8/bleunet/ngram"
)

// DefaultWeights weighs orders 1..4 uniformly, the common BLEU-4 setup.
var DefaultWeights = []float64{0.25, 0.25, 0.25, 0.25}

// ClosestRefLength returns the reference length with the smallest absolute
// difference to hypLen. Among equally close lengths the first reference in
// caller order wins, so the caller's reference ordering is part of the
// contract. Returns 0 when references is empty.
func ClosestRefLength(references [][]string, hypLen int) int {
	closest := 0
	bestDiff := -1
	for _, reference := range references {
		diff := len(reference) - hypLen
		if diff < 0 {
			diff = -diff
		}
		if bestDiff < 0 || diff < bestDiff {
			bestDiff = diff
			closest = len(reference)
		}
	}
	return closest
}

// BrevityPenalty penalizes a hypothesis of hypLen tokens for being shorter
// than the closest reference length. Hypotheses at least as long as the
// reference are not penalized; an empty hypothesis scores 0.
func BrevityPenalty(closestRefLen, hypLen int) float64 {
	switch {
	case hypLen > closestRefLen:
		return 1.0
	case hypLen == 0:
		return 0.0
	default:
		return math.Exp(1.0 - float64(closestRefLen)/float64(hypLen))
	}
}

// Sentence scores one hypothesis against its reference set. weights holds
// one entry per n-gram order, highest order last; nil selects DefaultWeights.
// Without smoothing a zero precision at any order zeroes the whole sentence
// score, so scores for single sentences are frequently exactly 0.
func Sentence(references [][]string, hypothesis []string, weights []float64) float64 {
	weights = orDefault(weights)
	logSum := 0.0
	for i, weight := range weights {
		precision := ngram.ModifiedPrecision(references, hypothesis, i+1).Float64()
		if precision == 0 || math.IsNaN(precision) {
			return 0.0
		}
		logSum += weight * math.Log(precision)
	}
	penalty := BrevityPenalty(ClosestRefLength(references, len(hypothesis)), len(hypothesis))
	return penalty * math.Exp(logSum)
}

func orDefault(weights []float64) []float64 {
	if len(weights) == 0 {
		return DefaultWeights
	}
	return weights
}
