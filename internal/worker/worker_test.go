package worker

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	cases := []struct {
		name    string
		n       int
		workers int
		want    []Shard
	}{
		{"even split", 8, 4, []Shard{{0, 2}, {2, 4}, {4, 6}, {6, 8}}},
		{"remainder spreads forward", 7, 3, []Shard{{0, 3}, {3, 5}, {5, 7}}},
		{"more workers than items", 2, 5, []Shard{{0, 1}, {1, 2}}},
		{"single worker", 5, 1, []Shard{{0, 5}}},
		{"zero workers treated as one", 3, 0, []Shard{{0, 3}}},
		{"empty input", 0, 4, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Split(tc.n, tc.workers))
		})
	}
}

func TestSplitCoversEveryIndexOnce(t *testing.T) {
	for n := 1; n <= 40; n++ {
		for workers := 1; workers <= 9; workers++ {
			seen := make([]int, n)
			previousEnd := 0
			for _, s := range Split(n, workers) {
				require.Equal(t, previousEnd, s.Start, "n=%d workers=%d", n, workers)
				require.Greater(t, s.End, s.Start, "n=%d workers=%d", n, workers)
				for i := s.Start; i < s.End; i++ {
					seen[i]++
				}
				previousEnd = s.End
			}
			require.Equal(t, n, previousEnd, "n=%d workers=%d", n, workers)
			for i, count := range seen {
				require.Equal(t, 1, count, "index %d (n=%d workers=%d)", i, n, workers)
			}
		}
	}
}

func TestRun(t *testing.T) {
	shards := Split(100, 7)
	var mu sync.Mutex
	visited := make(map[int]bool)

	Run(shards, func(i int, s Shard) {
		mu.Lock()
		defer mu.Unlock()
		require.False(t, visited[i], "shard %d ran twice", i)
		visited[i] = true
	})

	require.Len(t, visited, len(shards))
}

func TestRunNoShards(t *testing.T) {
	// Must return immediately without calling fn.
	Run(nil, func(i int, s Shard) {
		t.Fatal("fn called for empty shard list")
	})
}
