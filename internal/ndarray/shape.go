package ndarray

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Shape represents the dimensions of an array.
type Shape []int

// NumElements returns the total number of elements described by the shape.
// An empty shape describes no elements (arrays always have rank >= 1).
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 0
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that the shape has at least one dimension and that all
// dimensions are > 0.
func (s Shape) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("%w: array cannot have zero dimensions", ErrInvalidShape)
	}
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("%w: dimension %d is %d (must be > 0)", ErrInvalidShape, i, dim)
		}
	}
	return nil
}

// Equal reports whether both shapes have the same rank and dimensions.
func (s Shape) Equal(other Shape) bool {
	return slices.Equal(s, other)
}

// Clone returns a copy of the shape that shares no memory with s.
func (s Shape) Clone() Shape {
	return slices.Clone(s)
}

// ComputeStrides returns the row-major stride of every dimension: the
// number of elements one step along dimension d skips over, i.e. the
// product of the dimensions after d.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	span := 1
	for d := len(s) - 1; d >= 0; d-- {
		strides[d] = span
		span *= s[d]
	}
	return strides
}

// String formats the shape as "[4 4]".
func (s Shape) String() string {
	parts := make([]string, len(s))
	for i, dim := range s {
		parts[i] = strconv.Itoa(dim)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
