package stats

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Finalizing a group (metrics plus name joins) is independent per key, so
// large result sets are chunked across workers. Results are written through
// the group's index, which keeps the pre-sort order deterministic.
const parallelGroupThreshold = 256

func forEachGroup(n int, fn func(i int)) {
	if n < parallelGroupThreshold {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	workers := runtime.GOMAXPROCS(0)
	chunk := (n + workers - 1) / workers
	g := new(errgroup.Group)
	for start := 0; start < n; start += chunk {
		start := start
		end := min(start+chunk, n)
		g.Go(func() error {
			for i := start; i < end; i++ {
				fn(i)
			}
			return nil
		})
	}
	_ = g.Wait()
}
