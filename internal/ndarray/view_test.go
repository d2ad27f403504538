package ndarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewMaterialize(t *testing.T) {
	a := iota16(t)

	v, err := a.Slice(Range(1, 2), Range(1, 2))
	require.NoError(t, err)
	defer v.Release()

	m, err := v.Materialize()
	require.NoError(t, err)
	assertEqualShape(t, Shape{2, 2}, m.Shape(), "materialized shape")
	assert.Equal(t, []int{2, 1}, m.Strides())
	assert.Equal(t, []float64{5, 6, 9, 10}, m.Data())

	// The copy is independent of the source.
	require.NoError(t, m.Set(-1, 0, 0))
	orig, err := a.At(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 5.0, orig)
}

func TestViewAssignScalar(t *testing.T) {
	a := iota16(t)

	v, err := a.Slice(Index(2), Index(-1))
	require.NoError(t, err)
	require.NoError(t, v.Assign(42))

	got, err := a.At(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 42.0, got)

	row, err := a.Slice(Index(0))
	require.NoError(t, err)
	assert.ErrorIs(t, row.Assign(1), ErrNotScalar)

	// Nothing was written by the failed assignment.
	vals, err := row.Values()
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2, 3}, vals)
}

func TestViewAssignSlice_RoundTrip(t *testing.T) {
	a := iota16(t)

	v, err := a.Slice(All(), Index(1))
	require.NoError(t, err)

	want := []float64{-1, -5, -9, -13}
	require.NoError(t, v.AssignSlice(want))

	got, err := v.Values()
	require.NoError(t, err)
	assert.Equal(t, want, got)

	col, err := a.Take(All(), Index(1))
	require.NoError(t, err)
	assert.Equal(t, want, col, "writes must reach the owning array")

	untouched, err := a.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, untouched)
}

func TestViewAssignSlice_SizeMismatch(t *testing.T) {
	a := iota16(t)
	v, err := a.Slice(Index(0))
	require.NoError(t, err)

	assert.ErrorIs(t, v.AssignSlice([]float64{1, 2, 3}), ErrSizeMismatch)
	assert.Equal(t, iota16(t).Data(), a.Data(), "failed assignment must not mutate")
}

func TestViewAssignArray(t *testing.T) {
	a := iota16(t)

	mid, err := a.Slice(Range(1, 2), Range(1, 2))
	require.NoError(t, err)

	// Any shape with the right element count is accepted.
	src, err := FromSlice([]float64{50, 60, 90, 100}, Shape{4})
	require.NoError(t, err)
	require.NoError(t, mid.AssignArray(src))

	got, err := a.Take(Range(1, 2), Range(1, 2))
	require.NoError(t, err)
	assert.Equal(t, []float64{50, 60, 90, 100}, got)

	wrong, err := Zeros[float64](Shape{2, 3})
	require.NoError(t, err)
	assert.ErrorIs(t, mid.AssignArray(wrong), ErrSizeMismatch)
}

func TestViewAssignArray_Overlapping(t *testing.T) {
	a := arange(t, Shape{6})

	// Shift right by one, reading from a view of the same array.
	dst, err := a.Slice(Range(1, 5))
	require.NoError(t, err)
	srcView, err := a.Slice(Range(0, 4))
	require.NoError(t, err)
	src, err := srcView.Materialize()
	require.NoError(t, err)

	require.NoError(t, dst.AssignArray(src))
	assert.Equal(t, []int{0, 0, 1, 2, 3, 4}, a.Data())
}

func TestViewFill(t *testing.T) {
	a := arange(t, Shape{3, 3})
	diag, err := a.Slice(List(0, 2), List(0, 2))
	require.NoError(t, err)

	require.NoError(t, diag.Fill(-1))
	assert.Equal(t, []int{-1, 1, -1, 3, 4, 5, -1, 7, -1}, a.Data())
}

func TestViewRelease(t *testing.T) {
	a := iota16(t)

	v, err := a.Slice(Index(0))
	require.NoError(t, err)
	assert.False(t, a.buf.isUnique())

	v.Release()
	v.Release()
	assert.True(t, a.buf.isUnique(), "double release must drop one reference")

	_, err = v.Values()
	assert.ErrorIs(t, err, ErrReleased)
	_, err = v.Materialize()
	assert.ErrorIs(t, err, ErrReleased)
	assert.ErrorIs(t, v.Assign(1), ErrReleased)
	assert.ErrorIs(t, v.AssignSlice(nil), ErrReleased)
	assert.ErrorIs(t, v.Fill(1), ErrReleased)
}

func TestViewSurvivesReshape(t *testing.T) {
	a := iota16(t)

	row, err := a.Slice(Index(1))
	require.NoError(t, err)

	// Reshape with a live view moves the array onto a copy.
	require.NoError(t, a.Reshape(Shape{16}))
	assert.True(t, a.buf.isUnique())

	vals, err := row.Values()
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 5, 6, 7}, vals, "view keeps the layout it was built for")

	require.NoError(t, row.AssignSlice([]float64{0, 0, 0, 0}))
	got, err := a.Take(Range(4, 7))
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 5, 6, 7}, got, "detached view must not write into the reshaped array")

	row.Release()
}

func TestViewReshapeWithoutViewsKeepsStorage(t *testing.T) {
	a := iota16(t)
	before := a.buf

	v, err := a.Slice(Index(0))
	require.NoError(t, err)
	v.Release()

	require.NoError(t, a.Reshape(Shape{2, 8}))
	assert.Same(t, before, a.buf)
}

func TestExtractDoesNotPinStorage(t *testing.T) {
	a := iota16(t)
	before := a.buf

	m, err := a.Extract(Range(1, 2), Range(1, 2))
	require.NoError(t, err)
	assertEqualShape(t, Shape{2, 2}, m.Shape(), "extract")
	assert.Equal(t, []float64{5, 6, 9, 10}, m.Data())
	assert.True(t, a.buf.isUnique())

	require.NoError(t, a.Reshape(Shape{16}))
	assert.Same(t, before, a.buf, "reshape after extract keeps storage")

	m.buf.data[0] = -1
	got, err := a.At(5)
	require.NoError(t, err)
	assert.Equal(t, 5.0, got)
}

func TestMaterializeThenReleaseKeepsStorage(t *testing.T) {
	a := iota16(t)
	before := a.buf

	v, err := a.Slice(All(), Index(1))
	require.NoError(t, err)
	m, err := v.Materialize()
	require.NoError(t, err)
	v.Release()
	assert.Equal(t, []float64{1, 5, 9, 13}, m.Data())

	require.NoError(t, a.Reshape(Shape{8, 2}))
	assert.Same(t, before, a.buf)
}

func TestExtract_Errors(t *testing.T) {
	a := iota16(t)

	_, err := a.Extract(Index(4))
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = a.Extract(All(), All(), All())
	assert.ErrorIs(t, err, ErrRankMismatch)
}
