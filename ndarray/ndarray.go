// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

import (
	"github.com/born-ml/ndarray/internal/ndarray"
)

// Shape represents the dimensions of an array.
// Example: Shape{2, 3, 4} is a 3D array with dimensions 2×3×4.
type Shape = ndarray.Shape

// Array is an N-dimensional row-major array of T.
//
// Array provides:
//   - Construction via Full, Zeros and FromSlice
//   - In-place Reshape preserving the element count
//   - Element access via At and Set (negative indices count from the end)
//   - Multi-dimensional slicing via Slice and Take
type Array[T any] = ndarray.Array[T]

// View is a shaped reference into an Array's storage, produced by Slice.
type View[T any] = ndarray.View[T]

// IndexError describes an index that resolved outside its dimension.
type IndexError = ndarray.IndexError

// Full creates an array of the given shape with every element set to fill.
//
// Example:
//
//	a, err := ndarray.Full(1.5, ndarray.Shape{3, 3})
func Full[T any](fill T, shape Shape) (*Array[T], error) {
	return ndarray.Full(fill, shape)
}

// Zeros creates an array of the given shape filled with the zero value.
func Zeros[T any](shape Shape) (*Array[T], error) {
	return ndarray.Zeros[T](shape)
}

// FromSlice creates an array from flat row-major data (copied).
// A nil shape means a one-dimensional array of len(data).
//
// Example:
//
//	a, err := ndarray.FromSlice([]int{1, 2, 3, 4, 5, 6}, ndarray.Shape{2, 3})
func FromSlice[T any](data []T, shape Shape) (*Array[T], error) {
	return ndarray.FromSlice(data, shape)
}
