// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ndarray provides N-dimensional arrays with multi-dimensional
// slicing and indexing.
//
// # Overview
//
// An Array owns flat row-major storage plus a shape. Slicing takes one
// specifier per leading dimension and returns a View onto the same
// storage:
//   - Index(i): a single position (the dimension is collapsed)
//   - List(i, j, ...): explicit positions, order preserved
//   - Range(b, e) / RangeStep(b, e, s): inclusive of e
//   - All(): the whole dimension
//
// Negative indices count from the end of their dimension. Dimensions
// without a specifier are taken whole and always kept in the result shape.
//
// # Basic Usage
//
//	a, _ := ndarray.FromSlice(data, ndarray.Shape{4, 4})
//
//	v, _ := a.At(1, 2)                        // single element
//	row, _ := a.Slice(ndarray.Index(1))       // shape [4]
//	col, _ := a.Slice(ndarray.All(), ndarray.Index(1))
//	mid, _ := a.Slice(ndarray.Range(1, 2), ndarray.Range(1, 2)) // shape [2 2]
//
//	m, _ := mid.Materialize()                 // independent copy
//	_ = col.AssignSlice([]float64{0, 0, 0, 0}) // writes into a
//
// # Views and Reshape
//
// A View holds a counted reference to the array storage. Reshaping an
// array while Views are live moves the array onto a copy; the Views keep
// the storage they were built on. Release every View when done with it:
//
//	v, err := a.Slice(ndarray.Index(1))
//	if err != nil {
//		return err
//	}
//	defer v.Release()
//
// To read a selection without keeping a View around, use Array.Extract
// (a new Array) or Array.Take (a flat slice). Neither holds a reference.
//
// # Concurrency
//
// Arrays and Views are not safe for concurrent mutation. Callers sharing
// an Array across goroutines must serialize Reshape, Set and assignments.
package ndarray
