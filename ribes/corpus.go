package ribes

// Stats accumulates corpus RIBES: the sum of best per-reference sentence
// scores and the number of sentences that had at least one reference.
// Sentence pairs can be folded in any order, or in parallel shards combined
// with Merge; the average always divides by the merged count.
type Stats struct {
	Sum   float64
	Count int
}

// Add folds one sentence pair into the statistics. A sentence with an empty
// reference set is not counted; an empty hypothesis with references counts
// as 0.
func (s *Stats) Add(references [][]string, hypothesis []string) {
	if best := bestScore(references, hypothesis); best > -1 {
		s.Sum += best
		s.Count++
	}
}

// Merge folds another shard's statistics into s.
func (s *Stats) Merge(o *Stats) {
	s.Sum += o.Sum
	s.Count += o.Count
}

// Score returns the corpus average, or 0 when no sentence was counted.
func (s *Stats) Score() float64 {
	if s.Count == 0 {
		return 0.0
	}
	return s.Sum / float64(s.Count)
}

// Corpus scores a whole corpus as the average best-reference sentence score.
// referencesList[i] holds the references for hypotheses[i]; the slices must
// be parallel and Corpus panics otherwise, mirroring bleu.Corpus.
func Corpus(referencesList [][][]string, hypotheses [][]string) float64 {
	if len(referencesList) != len(hypotheses) {
		panic("ribes: referencesList and hypotheses must have equal length")
	}
	stats := &Stats{}
	for i, hypothesis := range hypotheses {
		stats.Add(referencesList[i], hypothesis)
	}
	return stats.Score()
}
