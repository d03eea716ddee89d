package structures

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Shape represents the dimensions of a structure.
type Shape []int

// NumElements returns the total number of elements addressed by the shape.
func (s Shape) NumElements() int {
	n := 1 // Scalar shape has 1 element
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that every dimension is positive and that the element
// count fits in an int.
func (s Shape) Validate() error {
	n := 1
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("%w: dimension %d is %d (must be > 0)", ErrInvalidShape, i, dim)
		}
		if n > math.MaxInt/dim {
			return fmt.Errorf("%w: element count of %v overflows int", ErrInvalidShape, s)
		}
		n *= dim
	}
	return nil
}

// Equal reports whether two shapes are equal component-wise.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// String formats the shape as [d0 d1 ...].
func (s Shape) String() string {
	return fmt.Sprint([]int(s))
}

// appendKey appends a content-based encoding of the shape to dst.
// Two shapes produce the same bytes iff they are Equal.
func (s Shape) appendKey(dst []byte) []byte {
	dst = binary.AppendUvarint(dst, uint64(len(s)))
	for _, dim := range s {
		dst = binary.AppendVarint(dst, int64(dim))
	}
	return dst
}
