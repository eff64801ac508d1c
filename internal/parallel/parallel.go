// Package parallel provides a small fan-out helper for independent numeric
// work, such as evaluating the probe graphs of a gradient check. Each
// iteration must be independent: the scalar engine allows concurrent
// construction of separate graphs, but never concurrent mutation of one.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled    bool // Whether parallel execution is enabled.
	NumWorkers int  // Number of worker goroutines to use.
	MinItems   int  // Minimum items before goroutines are worth spawning.
}

// DefaultConfig returns sensible defaults based on CPU count. MinItems is
// low because each item here is a whole graph evaluation, not one array slot.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:    n > 1,
		NumWorkers: n,
		MinItems:   2,
	}
}

// For executes f(i) for i in [0, n) with optional parallelism.
// Falls back to sequential execution if parallelism is disabled or n is too
// small to amortize the goroutine overhead.
func For(n int, f func(i int), cfg Config) {
	if !cfg.Enabled || n < cfg.MinItems {
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	workers := min(cfg.NumWorkers, n)
	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				f(i)
			}
		}(start, end)
	}
	wg.Wait()
}
