package seq

import (
	"cmp"
	"slices"
)

// compareFunc turns a strict less-than into a three-way comparison.
func compareFunc[T any](less func(a, b T) bool) func(a, b T) int {
	return func(a, b T) int {
		switch {
		case less(a, b):
			return -1
		case less(b, a):
			return 1
		default:
			return 0
		}
	}
}

// SortInPlace sorts in by less. The sort is stable.
func SortInPlace[T any](in []T, less func(a, b T) bool) {
	slices.SortStableFunc(in, compareFunc(less))
}

// SortFunc returns a sorted copy of in, ordered by less.
func SortFunc[T any](in []T, less func(a, b T) bool) []T {
	out := slices.Clone(in)
	SortInPlace(out, less)
	return out
}

// Sort returns a sorted copy of in in ascending order.
func Sort[T cmp.Ordered](in []T) []T {
	return SortFunc(in, cmp.Less[T])
}

// SortIndices returns the positions of in ordered so that
// in[idx[0]], in[idx[1]], ... is sorted by less. in is not modified.
func SortIndices[T any](in []T, less func(a, b T) bool) []int {
	idx := make([]int, len(in))
	for i := range idx {
		idx[i] = i
	}
	SortInPlace(idx, func(a, b int) bool { return less(in[a], in[b]) })
	return idx
}

// Select returns the items for which test returns true, in order.
func Select[T any](in []T, test func(T) bool) []T {
	out := make([]T, 0, len(in))
	for _, item := range in {
		if test(item) {
			out = append(out, item)
		}
	}
	return out
}

// UniqueFunc returns the distinct items of in, sorted by less. Two
// neighbours after sorting are duplicates when equal reports true.
func UniqueFunc[T any](in []T, less func(a, b T) bool, equal func(a, b T) bool) []T {
	sorted := SortFunc(in, less)
	return slices.CompactFunc(sorted, equal)
}

// Unique returns the distinct items of in in ascending order.
//
//	seq.Unique([]int{1, 1, 5, 6, 2, 4, 1, 5}) // [1 2 4 5 6]
func Unique[T cmp.Ordered](in []T) []T {
	return UniqueFunc(in, cmp.Less[T], func(a, b T) bool { return a == b })
}
