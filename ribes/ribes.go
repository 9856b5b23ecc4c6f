// Package ribes implements RIBES, the rank-based intuitive bilingual
// evaluation score (Isozaki et al., 2010). A hypothesis is aligned token by
// token to reference positions and scored on how well the alignment
// preserves the reference word order, which makes RIBES far more sensitive
// than BLEU to the long-distance reordering typical between distant language
// pairs.
package ribes

import "math"

// Score exponents: unigram precision is raised to Alpha and the brevity
// penalty to Beta before multiplying into the rank-agreement term.
const (
	Alpha = 0.25
	Beta  = 0.10
)

// RankCorrelation measures how well an alignment preserves ascending order.
// tau is the fraction of alignment position pairs (i<j) that ascend, a
// rank-agreement ratio in [0,1] rather than the classical Kendall tau in
// [-1,1]. precision is the fraction of hypothesis tokens that aligned at
// all. A single aligned token carries order information only against a
// single-token reference; any other alignment shorter than two scores zero.
func RankCorrelation(alignment []int, hypLen, refLen int) (tau, precision float64) {
	n := len(alignment)
	if n == 1 && refLen == 1 {
		return 1.0, 1.0 / float64(hypLen)
	}
	if n < 2 {
		return 0.0, 0.0
	}
	ascending := 0
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			if alignment[i] < alignment[j] {
				ascending++
			}
		}
	}
	pairs := n * (n - 1) / 2
	return float64(ascending) / float64(pairs), float64(n) / float64(hypLen)
}

// BrevityPenalty returns the RIBES length penalty, capped at 1 so a
// hypothesis longer than its reference gains nothing from the extra length.
func BrevityPenalty(refLen, hypLen int) float64 {
	return math.Min(1.0, math.Exp(1.0-float64(refLen)/float64(hypLen)))
}

// pairScore computes RIBES for a single (reference, hypothesis) pair. An
// empty hypothesis scores 0; there is nothing to align and the brevity
// penalty's refLen/hypLen would otherwise be undefined.
func pairScore(reference, hypothesis []string) float64 {
	if len(hypothesis) == 0 {
		return 0.0
	}
	alignment := Align(reference, hypothesis)
	tau, precision := RankCorrelation(alignment, len(hypothesis), len(reference))
	penalty := BrevityPenalty(len(reference), len(hypothesis))
	return tau * math.Pow(precision, Alpha) * math.Pow(penalty, Beta)
}

// Sentence scores a hypothesis against its reference set, returning the best
// per-reference score, the same selection the corpus aggregation applies.
// Returns 0 when the reference set is empty.
func Sentence(references [][]string, hypothesis []string) float64 {
	best := bestScore(references, hypothesis)
	if best < 0 {
		return 0.0
	}
	return best
}

// bestScore returns the maximum per-reference pair score, or -1 when there
// are no references, so callers can tell "no references" apart from a
// legitimate 0.
func bestScore(references [][]string, hypothesis []string) float64 {
	best := -1.0
	for _, reference := range references {
		if score := pairScore(reference, hypothesis); score > best {
			best = score
		}
	}
	return best
}
