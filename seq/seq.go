// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package seq provides generic sequence helpers: numeric ranges, map and
// for-each over one or more equal-length sequences, fork-join parallel
// variants, and sort / select / unique with user supplied ordering.
//
// Example:
//
//	xs, _ := seq.RangeInclusive(0.0, 6.28, 0.5)
//	sins := seq.Map(xs, math.Sin)
//	pos := seq.Select(sins, func(v float64) bool { return v > 0 })
//	uniq := seq.Unique([]int{1, 1, 5, 6, 2, 4}) // [1 2 4 5 6]
package seq

import (
	"cmp"

	"github.com/born-ml/ndarray/internal/parallel"
	"github.com/born-ml/ndarray/internal/seq"
)

// Number is any integer or floating-point type.
type Number = seq.Number

// Config controls when ParallelMapConfig splits work across goroutines.
type Config = parallel.Config

// DefaultConfig returns a Config with one worker per CPU.
func DefaultConfig() Config {
	return parallel.DefaultConfig()
}

// Errors returned by the sequence functions.
var (
	ErrInvalidStep       = seq.ErrInvalidStep
	ErrMismatchedLengths = seq.ErrMismatchedLengths
	ErrNoSequences       = seq.ErrNoSequences
	ErrInvalidWorkers    = seq.ErrInvalidWorkers
	ErrIndexOutOfRange   = seq.ErrIndexOutOfRange
)

// RangeInclusive generates from, from+step, ... with the last value <= to.
func RangeInclusive[N Number](from, to, step N) ([]N, error) {
	return seq.RangeInclusive(from, to, step)
}

// RangeExclusive generates begin, begin+step, ... with every value < end.
func RangeExclusive[N Number](begin, end, step N) ([]N, error) {
	return seq.RangeExclusive(begin, end, step)
}

// Take returns in[from], in[from+step], ... up to and including in[to].
// Negative bounds count from the end.
func Take[T any](in []T, from, to, step int) ([]T, error) {
	return seq.Take(in, from, to, step)
}

// Map applies fn to every item.
func Map[T, U any](in []T, fn func(T) U) []U {
	return seq.Map(in, fn)
}

// ForEach calls fn on every item.
func ForEach[T any](in []T, fn func(T)) {
	seq.ForEach(in, fn)
}

// MapN applies fn to the i-th items of several equal-length sequences.
func MapN[T, U any](fn func(args ...T) U, seqs ...[]T) ([]U, error) {
	return seq.MapN(fn, seqs...)
}

// ForEachN calls fn with the i-th items of several equal-length sequences.
func ForEachN[T any](fn func(args ...T), seqs ...[]T) error {
	return seq.ForEachN(fn, seqs...)
}

// ParallelMap is Map split into workers contiguous chunks, one goroutine each.
func ParallelMap[T, U any](workers int, in []T, fn func(T) U) ([]U, error) {
	return seq.ParallelMap(workers, in, fn)
}

// ParallelForEach is ForEach split into workers contiguous chunks.
func ParallelForEach[T any](workers int, in []T, fn func(T)) error {
	return seq.ParallelForEach(workers, in, fn)
}

// ParallelMapN is MapN split into workers contiguous chunks.
func ParallelMapN[T, U any](workers int, fn func(args ...T) U, seqs ...[]T) ([]U, error) {
	return seq.ParallelMapN(workers, fn, seqs...)
}

// ParallelForEachN is ForEachN split into workers contiguous chunks.
func ParallelForEachN[T any](workers int, fn func(args ...T), seqs ...[]T) error {
	return seq.ParallelForEachN(workers, fn, seqs...)
}

// ParallelMapConfig is Map run through cfg: sequential when cfg disables
// parallelism or in is smaller than cfg.MinChunkSize.
func ParallelMapConfig[T, U any](in []T, fn func(T) U, cfg Config) []U {
	return seq.ParallelMapConfig(in, fn, cfg)
}

// Sort returns an ascending sorted copy of in.
func Sort[T cmp.Ordered](in []T) []T {
	return seq.Sort(in)
}

// SortFunc returns a copy of in sorted by less.
func SortFunc[T any](in []T, less func(a, b T) bool) []T {
	return seq.SortFunc(in, less)
}

// SortInPlace stably sorts in by less.
func SortInPlace[T any](in []T, less func(a, b T) bool) {
	seq.SortInPlace(in, less)
}

// SortIndices returns the positions that would sort in by less.
func SortIndices[T any](in []T, less func(a, b T) bool) []int {
	return seq.SortIndices(in, less)
}

// Select returns the items for which test returns true.
func Select[T any](in []T, test func(T) bool) []T {
	return seq.Select(in, test)
}

// Unique returns the distinct items of in in ascending order.
func Unique[T cmp.Ordered](in []T) []T {
	return seq.Unique(in)
}

// UniqueFunc returns the distinct items of in sorted by less, using equal
// to detect duplicates.
func UniqueFunc[T any](in []T, less func(a, b T) bool, equal func(a, b T) bool) []T {
	return seq.UniqueFunc(in, less, equal)
}
