package structures

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrIndexOutOfBounds = errors.New("index out of bounds")
	ErrSizeMismatch     = errors.New("buffer size does not match strides")
	ErrShapeMismatch    = errors.New("shape mismatch")
	ErrInvalidShape     = errors.New("invalid shape")
)

// IndexError describes an out-of-bounds access.
// Dim is -1 for linear (buffer or offset) accesses.
type IndexError struct {
	Dim   int // Dimension of the offending component
	Index int // Requested index
	Bound int // Exclusive upper bound for the component
	Rank  int // Structure dimension, set only for rank mismatches
	Got   int // Index length, set only for rank mismatches
}

// Error implements the error interface.
func (e *IndexError) Error() string {
	switch {
	case e.Rank != e.Got:
		return fmt.Sprintf("%s: expected %d indices, got %d", ErrIndexOutOfBounds, e.Rank, e.Got)
	case e.Dim < 0:
		return fmt.Sprintf("%s: index %d outside [0, %d)", ErrIndexOutOfBounds, e.Index, e.Bound)
	default:
		return fmt.Sprintf("%s: index %d for dimension %d outside [0, %d)", ErrIndexOutOfBounds, e.Index, e.Dim, e.Bound)
	}
}

// Is makes errors.Is(err, ErrIndexOutOfBounds) hold for IndexError values.
func (e *IndexError) Is(target error) bool {
	return target == ErrIndexOutOfBounds
}

func linearIndexError(i, size int) *IndexError {
	return &IndexError{Dim: -1, Index: i, Bound: size}
}

// checkLinear panics when i is outside [0, size).
func checkLinear(i, size int) {
	if i < 0 || i >= size {
		panic(linearIndexError(i, size))
	}
}
