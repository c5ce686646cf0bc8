// Package parallel provides chunked fan-out for the pair counting pass of
// BPE training.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Number of worker goroutines to use.
	MinChunkSize int  // Minimum items per goroutine to avoid overhead.
}

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 256, // Counting one word's pairs is cheap; keep chunks coarse.
	}
}

// Chunks partitions [0, n) into contiguous ranges and executes f(start, end)
// for each range on its own goroutine. Each invocation owns its range
// exclusively, so f can accumulate into chunk-local state without locking.
// Falls back to a single sequential call if parallelism is disabled or n is
// too small to be worth splitting.
func Chunks(n int, cfg Config, f func(start, end int)) {
	if n <= 0 {
		return
	}
	if !cfg.Enabled || n < cfg.MinChunkSize || cfg.NumWorkers < 2 {
		f(0, n)
		return
	}

	chunkSize := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize)

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			f(s, e)
		}(start, end)
	}
	wg.Wait()
}
