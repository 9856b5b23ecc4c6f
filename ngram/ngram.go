// Package ngram extracts n-gram multisets from token sequences and computes
// the clipped-precision statistics that BLEU is built on.
//
// Tokens are opaque strings compared for exact equality; any normalization
// (casing, Unicode folding) is the tokenizer's business and happens before
// sentences reach this package.
package ngram

import "strings"

// Separator joins the tokens of an n-gram into its multiset key. None of the
// tokenizers in this module can produce a token containing NUL, so joined
// keys cannot collide across different token boundaries.
const Separator = "\x00"

// Counts is an n-gram multiset: each key is the n-gram's tokens joined with
// Separator, each value its occurrence count.
type Counts map[string]int

// Count returns the multiset of contiguous n-token windows in sentence.
// Sentences shorter than n produce an empty multiset, not an error.
func Count(sentence []string, n int) Counts {
	counts := make(Counts)
	if n < 1 || len(sentence) < n {
		return counts
	}
	for i := 0; i+n <= len(sentence); i++ {
		counts[strings.Join(sentence[i:i+n], Separator)]++
	}
	return counts
}

// Total returns the number of n-grams in the multiset, counting repeats.
func (c Counts) Total() int {
	total := 0
	for _, count := range c {
		total += count
	}
	return total
}

// ModifiedPrecision computes the clipped n-gram precision of hypothesis
// against references. Each hypothesis n-gram is credited at most the highest
// count observed in any single reference (a union-max across references, not
// a sum), so repeating a reference word cannot inflate the score. The
// denominator is the hypothesis n-gram total, floored to 1 when the
// hypothesis is shorter than n so that too-high orders score 0 rather than
// dividing by zero.
func ModifiedPrecision(references [][]string, hypothesis []string, n int) Fraction {
	counts := Count(hypothesis, n)
	maxRefCounts := make(map[string]int, len(counts))
	for _, reference := range references {
		refCounts := Count(reference, n)
		for key := range counts {
			if refCounts[key] > maxRefCounts[key] {
				maxRefCounts[key] = refCounts[key]
			}
		}
	}
	clippedTotal := 0
	for key, count := range counts {
		if maxRefCount := maxRefCounts[key]; count > maxRefCount {
			clippedTotal += maxRefCount
		} else {
			clippedTotal += count
		}
	}
	denominator := counts.Total()
	if denominator < 1 {
		denominator = 1
	}
	return Fraction{Numerator: clippedTotal, Denominator: denominator}
}
