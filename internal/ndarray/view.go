package ndarray

import "fmt"

// View is a shaped reference to a subset of an Array's storage, produced
// by Array.Slice.
//
// A View holds a counted reference to the storage, not to the Array. If
// the Array is reshaped while the View is live, the Array moves to a copy
// and the View keeps the old storage, so later writes through the View no
// longer reach the Array. Call Release once the View is no longer needed.
type View[T any] struct {
	buf       *buffer[T]
	positions []int
	shape     Shape
	released  bool
}

// Shape returns a copy of the view's result shape.
func (v *View[T]) Shape() Shape {
	return v.shape.Clone()
}

// Positions returns a copy of the flat buffer positions the view covers,
// in view order.
func (v *View[T]) Positions() []int {
	return append([]int(nil), v.positions...)
}

// Len returns the number of elements covered by the view.
func (v *View[T]) Len() int {
	return len(v.positions)
}

// Values returns a flat copy of the viewed elements in view order.
func (v *View[T]) Values() ([]T, error) {
	if v.released {
		return nil, ErrReleased
	}
	out := make([]T, len(v.positions))
	for i, pos := range v.positions {
		out[i] = v.buf.data[pos]
	}
	return out, nil
}

// Materialize copies the viewed elements into a new Array with the view's
// shape. The source array is never modified.
func (v *View[T]) Materialize() (*Array[T], error) {
	data, err := v.Values()
	if err != nil {
		return nil, err
	}
	return &Array[T]{
		buf:    wrapBuffer(data),
		shape:  v.shape.Clone(),
		stride: v.shape.ComputeStrides(),
	}, nil
}

// Assign writes a scalar through a view of shape [1].
func (v *View[T]) Assign(value T) error {
	if v.released {
		return ErrReleased
	}
	if len(v.shape) != 1 || v.shape[0] != 1 {
		return fmt.Errorf("%w: view has shape %v", ErrNotScalar, v.shape)
	}
	v.buf.data[v.positions[0]] = value
	return nil
}

// AssignSlice writes values[i] to the i-th viewed position. Only the total
// length is checked; any layout with the right number of elements is
// accepted.
func (v *View[T]) AssignSlice(values []T) error {
	if v.released {
		return ErrReleased
	}
	if len(values) != len(v.positions) {
		return fmt.Errorf("%w: view covers %d elements, got %d values", ErrSizeMismatch, len(v.positions), len(values))
	}
	for i, pos := range v.positions {
		v.buf.data[pos] = values[i]
	}
	return nil
}

// AssignArray writes the flat contents of src through the view. The
// shapes need not match, only the element counts.
func (v *View[T]) AssignArray(src *Array[T]) error {
	if v.released {
		return ErrReleased
	}
	if src.Len() != len(v.positions) {
		return fmt.Errorf("%w: view %v covers %d elements, array %v has %d",
			ErrSizeMismatch, v.shape, len(v.positions), src.shape, src.Len())
	}
	// src may share storage with the view; copy before writing.
	return v.AssignSlice(src.Data())
}

// Fill writes value to every viewed position.
func (v *View[T]) Fill(value T) error {
	if v.released {
		return ErrReleased
	}
	for _, pos := range v.positions {
		v.buf.data[pos] = value
	}
	return nil
}

// Release drops the view's reference to the array storage. It is safe to
// call more than once.
func (v *View[T]) Release() {
	if v.released {
		return
	}
	v.released = true
	v.buf.release()
}
