package ndarray

import "fmt"

// Array is an N-dimensional, row-major array of T.
//
// An Array owns its storage. Views taken with Slice reference the same
// storage and write through to it until the Array is reshaped.
//
// Array is not safe for concurrent mutation: callers sharing an Array
// across goroutines must serialize Reshape, Set and View assignments.
//
// Example:
//
//	a, _ := ndarray.FromSlice(data, ndarray.Shape{4, 4})
//	row, _ := a.Slice(ndarray.Index(1))
//	vals, _ := row.Values() // [4 5 6 7]
type Array[T any] struct {
	buf    *buffer[T]
	shape  Shape
	stride []int
}

// Full creates an array of the given shape with every element set to fill.
func Full[T any](fill T, shape Shape) (*Array[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	return &Array[T]{
		buf:    newBuffer(shape.NumElements(), fill),
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
	}, nil
}

// Zeros creates an array of the given shape filled with the zero value of T.
func Zeros[T any](shape Shape) (*Array[T], error) {
	var zero T
	return Full(zero, shape)
}

// FromSlice creates an array from flat row-major data. The data is copied.
// A nil or empty shape means a one-dimensional array of len(data).
func FromSlice[T any](data []T, shape Shape) (*Array[T], error) {
	if len(shape) == 0 {
		shape = Shape{len(data)}
	}
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("%w: shape %v requires %d elements, but got %d",
			ErrShapeMismatch, shape, shape.NumElements(), len(data))
	}

	flat := make([]T, len(data))
	copy(flat, data)
	return &Array[T]{
		buf:    wrapBuffer(flat),
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
	}, nil
}

// Reshape changes the shape of the array in place. The new shape must hold
// the same number of elements; the data and its order are unchanged.
//
// If Views on the array are still live, the array first moves onto a
// private copy of its storage so those Views keep addressing the layout
// they were built for.
func (a *Array[T]) Reshape(shape Shape) error {
	if err := shape.Validate(); err != nil {
		return err
	}
	if shape.NumElements() != a.Len() {
		return fmt.Errorf("%w: cannot reshape %d elements into %v", ErrShapeMismatch, a.Len(), shape)
	}

	if !a.buf.isUnique() {
		a.buf = a.buf.detach()
	}
	a.shape = shape.Clone()
	a.stride = a.shape.ComputeStrides()
	return nil
}

// Shape returns a copy of the array's shape.
func (a *Array[T]) Shape() Shape {
	return a.shape.Clone()
}

// Strides returns a copy of the array's row-major strides.
func (a *Array[T]) Strides() []int {
	return append([]int(nil), a.stride...)
}

// Rank returns the number of dimensions.
func (a *Array[T]) Rank() int {
	return len(a.shape)
}

// Len returns the total number of elements.
func (a *Array[T]) Len() int {
	return len(a.buf.data)
}

// Data returns a copy of the flat row-major contents.
func (a *Array[T]) Data() []T {
	out := make([]T, len(a.buf.data))
	copy(out, a.buf.data)
	return out
}

// offset converts a full set of indices to a flat position.
func (a *Array[T]) offset(indices []int) (int, error) {
	if len(indices) != len(a.shape) {
		return 0, fmt.Errorf("%w: expected %d indices, got %d", ErrRankMismatch, len(a.shape), len(indices))
	}
	pos := 0
	for d, idx := range indices {
		p, err := wrap(idx, d, a.shape[d])
		if err != nil {
			return 0, err
		}
		pos += p * a.stride[d]
	}
	return pos, nil
}

// At returns the element at the given indices, one per dimension.
// Negative indices count from the end of their dimension.
func (a *Array[T]) At(indices ...int) (T, error) {
	pos, err := a.offset(indices)
	if err != nil {
		var zero T
		return zero, err
	}
	return a.buf.data[pos], nil
}

// Set stores value at the given indices, one per dimension.
func (a *Array[T]) Set(value T, indices ...int) error {
	pos, err := a.offset(indices)
	if err != nil {
		return err
	}
	a.buf.data[pos] = value
	return nil
}

// Clone creates a deep copy of the array.
func (a *Array[T]) Clone() *Array[T] {
	return &Array[T]{
		buf:    wrapBuffer(a.Data()),
		shape:  a.shape.Clone(),
		stride: append([]int(nil), a.stride...),
	}
}

// String returns a short description such as "Array[float64][4 4]".
func (a *Array[T]) String() string {
	var zero T
	return fmt.Sprintf("Array[%T]%v", zero, a.shape)
}
