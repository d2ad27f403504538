package ndarray

import (
	"errors"
	"fmt"
)

// Common errors. Every failing operation wraps exactly one of these, so
// callers can test with errors.Is.
var (
	ErrInvalidShape    = errors.New("invalid shape")
	ErrShapeMismatch   = errors.New("shape mismatch")
	ErrRankMismatch    = errors.New("rank mismatch")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrNotScalar       = errors.New("view is not a scalar")
	ErrSizeMismatch    = errors.New("size mismatch")
	ErrInvalidSpec     = errors.New("invalid specifier")
	ErrReleased        = errors.New("view has been released")
)

// IndexError describes an index that resolved outside its dimension.
type IndexError struct {
	Dim   int // Dimension the index was applied to
	Index int // Index as supplied by the caller
	Size  int // Size of the dimension
}

// Error implements the error interface.
func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: index %d for dimension %d (size %d)", ErrIndexOutOfRange, e.Index, e.Dim, e.Size)
}

// Unwrap makes errors.Is(err, ErrIndexOutOfRange) hold.
func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}
