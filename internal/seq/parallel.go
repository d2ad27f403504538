package seq

import (
	"fmt"

	"github.com/born-ml/ndarray/internal/parallel"
)

// ParallelMap is Map split across workers goroutines. The input is cut
// into workers contiguous chunks (the last one taking the remainder), each
// chunk is mapped on its own goroutine, and the call returns once every
// chunk is done. fn must be safe to call concurrently.
func ParallelMap[T, U any](workers int, in []T, fn func(T) U) ([]U, error) {
	if workers < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWorkers, workers)
	}
	out := make([]U, len(in))
	parallel.ForChunks(len(in), workers, func(begin, end int) {
		for i := begin; i < end; i++ {
			out[i] = fn(in[i])
		}
	})
	return out, nil
}

// ParallelForEach is ForEach split across workers goroutines.
func ParallelForEach[T any](workers int, in []T, fn func(T)) error {
	if workers < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidWorkers, workers)
	}
	parallel.ForChunks(len(in), workers, func(begin, end int) {
		for i := begin; i < end; i++ {
			fn(in[i])
		}
	})
	return nil
}

// ParallelMapN is MapN split across workers goroutines.
//
//	res, _ := seq.ParallelMapN(4, func(v ...float64) float64 {
//	    return (v[0] + v[1]) * v[2]
//	}, first, second, third)
func ParallelMapN[T, U any](workers int, fn func(args ...T) U, seqs ...[]T) ([]U, error) {
	if workers < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWorkers, workers)
	}
	n, err := commonLength(seqs)
	if err != nil {
		return nil, err
	}
	out := make([]U, n)
	parallel.ForChunks(n, workers, func(begin, end int) {
		mapRange(fn, seqs, out, begin, end)
	})
	return out, nil
}

// ParallelForEachN is ForEachN split across workers goroutines.
func ParallelForEachN[T any](workers int, fn func(args ...T), seqs ...[]T) error {
	if workers < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidWorkers, workers)
	}
	n, err := commonLength(seqs)
	if err != nil {
		return err
	}
	parallel.ForChunks(n, workers, func(begin, end int) {
		forEachRange(fn, seqs, begin, end)
	})
	return nil
}

// ParallelMapConfig is ParallelMap driven by a parallel.Config: it runs
// sequentially when the config disables parallelism or the input is
// smaller than MinChunkSize.
func ParallelMapConfig[T, U any](in []T, fn func(T) U, cfg parallel.Config) []U {
	out := make([]U, len(in))
	parallel.For(len(in), func(i int) {
		out[i] = fn(in[i])
	}, cfg)
	return out
}
