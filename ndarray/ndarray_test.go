// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/born-ml/ndarray/ndarray"
	"github.com/born-ml/ndarray/seq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// grid builds the 4x4 array from flat 0..15 by reshaping a 1D array.
func grid(t *testing.T) *ndarray.Array[float64] {
	t.Helper()
	flat, err := seq.RangeExclusive(0.0, 16.0, 1.0)
	require.NoError(t, err)

	a, err := ndarray.FromSlice(flat, nil)
	require.NoError(t, err)
	require.NoError(t, a.Reshape(ndarray.Shape{4, 4}))
	return a
}

func materialize(t *testing.T, a *ndarray.Array[float64], specs ...ndarray.Spec) *ndarray.Array[float64] {
	t.Helper()
	v, err := a.Slice(specs...)
	require.NoError(t, err)
	defer v.Release()

	m, err := v.Materialize()
	require.NoError(t, err)
	return m
}

func TestScenarios(t *testing.T) {
	a := grid(t)

	t.Run("A index", func(t *testing.T) {
		v, err := a.At(1, 2)
		require.NoError(t, err)
		assert.Equal(t, 6.0, v)
	})

	t.Run("B row", func(t *testing.T) {
		m := materialize(t, a, ndarray.Index(1))
		assert.Equal(t, ndarray.Shape{4}, m.Shape())
		assert.Equal(t, []float64{4, 5, 6, 7}, m.Data())
	})

	t.Run("C column", func(t *testing.T) {
		m := materialize(t, a, ndarray.All(), ndarray.Index(1))
		assert.Equal(t, ndarray.Shape{4}, m.Shape())
		assert.Equal(t, []float64{1, 5, 9, 13}, m.Data())
	})

	t.Run("D middle", func(t *testing.T) {
		m := materialize(t, a, ndarray.Range(1, 2), ndarray.Range(1, 2))
		assert.Equal(t, ndarray.Shape{2, 2}, m.Shape())
		assert.Equal(t, []float64{5, 6, 9, 10}, m.Data())
	})

	t.Run("E tips", func(t *testing.T) {
		m := materialize(t, a, ndarray.List(0, 3), ndarray.List(0, 3))
		assert.Equal(t, ndarray.Shape{2, 2}, m.Shape())
		assert.Equal(t, []float64{0, 3, 12, 15}, m.Data())
	})
}

func TestRowsAndColumns(t *testing.T) {
	a := grid(t)

	for i := 0; i < 4; i++ {
		row := materialize(t, a, ndarray.Index(i))
		col := materialize(t, a, ndarray.All(), ndarray.Index(i))
		for j := 0; j < 4; j++ {
			r, err := row.At(j)
			require.NoError(t, err)
			assert.Equal(t, float64(i*4+j), r)

			c, err := col.At(j)
			require.NoError(t, err)
			assert.Equal(t, float64(j*4+i), c)
		}
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	a := grid(t)

	v, err := a.Slice(ndarray.List(0, 3), ndarray.Range(1, 3))
	require.NoError(t, err)
	defer v.Release()

	want := []float64{-1, -2, -3, -4, -5, -6}
	require.NoError(t, v.AssignSlice(want))

	m, err := v.Materialize()
	require.NoError(t, err)
	assert.Equal(t, want, m.Data())
	assert.Equal(t, ndarray.Shape{2, 3}, m.Shape())
}

func TestErrorsAreComparable(t *testing.T) {
	a := grid(t)

	_, err := a.At(0)
	assert.True(t, errors.Is(err, ndarray.ErrRankMismatch))

	_, err = a.Slice(ndarray.Index(-5))
	var idxErr *ndarray.IndexError
	require.True(t, errors.As(err, &idxErr))
	assert.Equal(t, 0, idxErr.Dim)

	assert.ErrorIs(t, a.Reshape(ndarray.Shape{5, 5}), ndarray.ErrShapeMismatch)

	_, err = ndarray.Full(0, ndarray.Shape{})
	assert.ErrorIs(t, err, ndarray.ErrInvalidShape)

	v, err := a.Slice(ndarray.Index(0))
	require.NoError(t, err)
	assert.ErrorIs(t, v.Assign(1), ndarray.ErrNotScalar)
	assert.ErrorIs(t, v.AssignSlice([]float64{1}), ndarray.ErrSizeMismatch)
	v.Release()
	assert.ErrorIs(t, v.Fill(0), ndarray.ErrReleased)

	_, err = a.Slice(ndarray.RangeStep(0, 3, 0))
	assert.ErrorIs(t, err, ndarray.ErrInvalidSpec)
}

func TestZeros(t *testing.T) {
	z, err := ndarray.Zeros[int64](ndarray.Shape{2, 2})
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 0, 0, 0}, z.Data())
	assert.Equal(t, ndarray.KindIndex, ndarray.Index(0).Kind())
}

func ExampleArray_Slice() {
	data := make([]int, 16)
	for i := range data {
		data[i] = i
	}
	a, _ := ndarray.FromSlice(data, ndarray.Shape{4, 4})

	col, _ := a.Slice(ndarray.All(), ndarray.Index(1))
	vals, _ := col.Values()
	fmt.Println(col.Shape(), vals)

	mid, _ := a.Slice(ndarray.Range(1, 2), ndarray.Range(1, 2))
	vals, _ = mid.Values()
	fmt.Println(mid.Shape(), vals)
	// Output:
	// [4] [1 5 9 13]
	// [2 2] [5 6 9 10]
}

func ExampleView_Assign() {
	a, _ := ndarray.Zeros[int](ndarray.Shape{2, 3})

	cell, _ := a.Slice(ndarray.Index(1), ndarray.Index(-1))
	_ = cell.Assign(7)
	cell.Release()

	fmt.Println(a.Data())
	// Output: [0 0 0 0 0 7]
}

func ExampleArray_Extract() {
	data := make([]int, 16)
	for i := range data {
		data[i] = i
	}
	a, _ := ndarray.FromSlice(data, ndarray.Shape{4, 4})

	tips, _ := a.Extract(ndarray.List(0, -1), ndarray.List(0, -1))
	fmt.Println(tips.Shape(), tips.Data())
	// Output: [2 2] [0 3 12 15]
}
