package ndarray

import "fmt"

// selection is the resolved form of a specifier list: flat positions into
// the buffer in row-major order, and the result shape after collapsing.
type selection struct {
	positions []int
	shape     Shape
}

// selectPositions resolves specs against the array's current shape.
//
// Specs shorter than the rank are padded with All. Each dimension is
// resolved to local positions P_d, then the dimensions are combined so
// the leftmost varies slowest:
//
//	combine(d) = for p in P_d: for q in combine(d+1): p*stride[d] + q
//	combine(rank) = [0]
func (a *Array[T]) selectPositions(specs []Spec) (selection, error) {
	rank := len(a.shape)
	if len(specs) > rank {
		return selection{}, fmt.Errorf("%w: %d specifiers for a rank %d array", ErrRankMismatch, len(specs), rank)
	}

	explicit := len(specs)
	padded := make([]Spec, rank)
	copy(padded, specs)
	for d := explicit; d < rank; d++ {
		padded[d] = All()
	}

	perDim := make([][]int, rank)
	shape := make(Shape, 0, rank)
	for d, spec := range padded {
		positions, err := spec.resolve(d, a.shape[d])
		if err != nil {
			return selection{}, err
		}
		perDim[d] = positions
		// Implicit dimensions were never given a collapsing specifier.
		if d >= explicit || len(positions) > 1 {
			shape = append(shape, len(positions))
		}
	}
	if len(shape) == 0 {
		shape = Shape{1}
	}

	return selection{
		positions: combine(perDim, a.stride),
		shape:     shape,
	}, nil
}

// combine builds the cartesian product of per-dimension positions, from
// the last dimension outwards.
func combine(perDim [][]int, stride []int) []int {
	flat := []int{0}
	for d := len(perDim) - 1; d >= 0; d-- {
		here := perDim[d]
		next := make([]int, 0, len(here)*len(flat))
		for _, p := range here {
			base := p * stride[d]
			for _, q := range flat {
				next = append(next, base+q)
			}
		}
		flat = next
	}
	return flat
}

// Slice returns a View of the positions selected by specs, one per
// leading dimension. Missing trailing dimensions are taken whole.
//
// Dimensions selected by a single position are dropped from the view's
// shape; a view that selects exactly one element has shape [1].
//
// Example:
//
//	// a is 4x4 holding 0..15
//	col, _ := a.Slice(ndarray.All(), ndarray.Index(1)) // shape [4]: 1 5 9 13
//	mid, _ := a.Slice(ndarray.Range(1, 2), ndarray.Range(1, 2)) // shape [2 2]: 5 6 9 10
func (a *Array[T]) Slice(specs ...Spec) (*View[T], error) {
	sel, err := a.selectPositions(specs)
	if err != nil {
		return nil, err
	}
	a.buf.addRef()
	return &View[T]{
		buf:       a.buf,
		positions: sel.positions,
		shape:     sel.shape,
	}, nil
}

// Take returns a flat copy of the elements selected by specs, in the same
// order a View would visit them.
func (a *Array[T]) Take(specs ...Spec) ([]T, error) {
	sel, err := a.selectPositions(specs)
	if err != nil {
		return nil, err
	}
	out := make([]T, len(sel.positions))
	for i, pos := range sel.positions {
		out[i] = a.buf.data[pos]
	}
	return out, nil
}

// Extract returns the selection as a new Array, the same as materializing
// a View, but without taking a reference to a's storage. Prefer it over
// Slice when the result is only read, so a later Reshape needs no copy.
func (a *Array[T]) Extract(specs ...Spec) (*Array[T], error) {
	sel, err := a.selectPositions(specs)
	if err != nil {
		return nil, err
	}
	data := make([]T, len(sel.positions))
	for i, pos := range sel.positions {
		data[i] = a.buf.data[pos]
	}
	return &Array[T]{
		buf:    wrapBuffer(data),
		shape:  sel.shape,
		stride: sel.shape.ComputeStrides(),
	}, nil
}
