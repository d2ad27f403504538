package seq

import "fmt"

// Map applies fn to every item and returns the results in order.
//
//	sins := seq.Map(xs, math.Sin)
func Map[T, U any](in []T, fn func(T) U) []U {
	out := make([]U, len(in))
	for i, item := range in {
		out[i] = fn(item)
	}
	return out
}

// ForEach calls fn on every item in order.
func ForEach[T any](in []T, fn func(T)) {
	for _, item := range in {
		fn(item)
	}
}

// MapN applies fn to the i-th item of every sequence, for each i, and
// returns the results in order. All sequences must have the same length.
//
// The args slice passed to fn is reused between calls; fn must not retain it.
//
//	sums, _ := seq.MapN(func(v ...float64) float64 { return v[0] + v[1] }, a, b)
func MapN[T, U any](fn func(args ...T) U, seqs ...[]T) ([]U, error) {
	n, err := commonLength(seqs)
	if err != nil {
		return nil, err
	}
	out := make([]U, n)
	mapRange(fn, seqs, out, 0, n)
	return out, nil
}

// ForEachN calls fn with the i-th item of every sequence, for each i.
func ForEachN[T any](fn func(args ...T), seqs ...[]T) error {
	n, err := commonLength(seqs)
	if err != nil {
		return err
	}
	forEachRange(fn, seqs, 0, n)
	return nil
}

// commonLength checks that seqs is non-empty and that every sequence has
// the same length, and returns that length.
func commonLength[T any](seqs [][]T) (int, error) {
	if len(seqs) == 0 {
		return 0, ErrNoSequences
	}
	n := len(seqs[0])
	for i, s := range seqs[1:] {
		if len(s) != n {
			return 0, fmt.Errorf("%w: sequence %d has %d items, sequence 0 has %d",
				ErrMismatchedLengths, i+1, len(s), n)
		}
	}
	return n, nil
}

// mapRange fills out[begin:end] from the matching items of seqs.
func mapRange[T, U any](fn func(args ...T) U, seqs [][]T, out []U, begin, end int) {
	args := make([]T, len(seqs))
	for i := begin; i < end; i++ {
		for j, s := range seqs {
			args[j] = s[i]
		}
		out[i] = fn(args...)
	}
}

func forEachRange[T any](fn func(args ...T), seqs [][]T, begin, end int) {
	args := make([]T, len(seqs))
	for i := begin; i < end; i++ {
		for j, s := range seqs {
			args[j] = s[i]
		}
		fn(args...)
	}
}
