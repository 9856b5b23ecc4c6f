// Package worker fans corpus scoring out over contiguous sentence shards.
//
// Scoring is embarrassingly parallel per sentence pair, and the corpus
// statistics of both metrics merge commutatively, so sharding by contiguous
// index ranges and merging shard results in order reproduces the sequential
// result bit for bit.
package worker

import "sync"

// Shard is a half-open index range [Start, End).
type Shard struct {
	Start int
	End   int
}

// Split partitions [0, n) into at most workers contiguous shards of
// near-equal size, in index order. Shards are never empty; n <= 0 yields no
// shards and workers < 1 is treated as 1.
func Split(n, workers int) []Shard {
	if n <= 0 {
		return nil
	}
	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = n
	}
	shards := make([]Shard, 0, workers)
	size := n / workers
	extra := n % workers
	start := 0
	for i := 0; i < workers; i++ {
		end := start + size
		if i < extra {
			end++
		}
		shards = append(shards, Shard{Start: start, End: end})
		start = end
	}
	return shards
}

// Run executes fn once per shard, each on its own goroutine, and waits for
// all of them. fn receives the shard's index so results can be collected
// into a slice and folded deterministically afterwards.
func Run(shards []Shard, fn func(i int, s Shard)) {
	var wg sync.WaitGroup
	wg.Add(len(shards))
	for i, s := range shards {
		go func() {
			defer wg.Done()
			fn(i, s)
		}()
	}
	wg.Wait()
}
