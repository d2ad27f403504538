// Package parallel provides fork-join execution helpers used by the
// sequence combinators.
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
		MinChunkSize: 64,
	}
}

// For executes f(i) for i in [0, n) with optional parallelism.
// Falls back to sequential execution if parallelism is disabled or n is too small.
func For(n int, f func(i int), cfg Config) {
	if !cfg.Enabled || cfg.NumWorkers < 2 || n < cfg.MinChunkSize {
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	workers := cfg.NumWorkers
	if cfg.MinChunkSize > 0 {
		workers = min(workers, n/cfg.MinChunkSize)
	}
	ForChunks(n, max(workers, 1), func(begin, end int) {
		for i := begin; i < end; i++ {
			f(i)
		}
	})
}

// Chunk is the half-open index range [Begin, End) handled by one worker.
type Chunk struct {
	Begin int
	End   int
}

// Chunks partitions [0, n) into contiguous chunks of n/workers items, the
// last chunk taking the remainder. When n < workers only n single-item
// chunks are returned.
func Chunks(n, workers int) []Chunk {
	if n <= 0 || workers <= 0 {
		return nil
	}
	workers = min(workers, n)

	per := n / workers
	chunks := make([]Chunk, workers)
	for i := range chunks {
		chunks[i] = Chunk{Begin: per * i, End: per * (i + 1)}
	}
	chunks[workers-1].End = n
	return chunks
}

// ForChunks runs f once per chunk of [0, n), each on its own goroutine,
// and returns after all of them have finished.
func ForChunks(n, workers int, f func(begin, end int)) {
	chunks := Chunks(n, workers)
	if len(chunks) == 1 {
		f(chunks[0].Begin, chunks[0].End)
		return
	}

	var wg sync.WaitGroup
	for _, c := range chunks {
		wg.Add(1)
		go func(begin, end int) {
			defer wg.Done()
			f(begin, end)
		}(c.Begin, c.End)
	}
	wg.Wait()
}
