package structures

import (
	"fmt"
	"iter"
)

// Layout selects how coordinates map to linear offsets.
type Layout int

// Supported layouts.
const (
	// ColumnMajor makes the first index vary fastest: strides[0] = 1.
	ColumnMajor Layout = iota
	// RowMajor makes the last index vary fastest.
	RowMajor
)

// String returns the flag-friendly layout name.
func (l Layout) String() string {
	switch l {
	case ColumnMajor:
		return "column-major"
	case RowMajor:
		return "row-major"
	default:
		return "unknown"
	}
}

// ParseLayout parses a name produced by Layout.String.
func ParseLayout(s string) (Layout, error) {
	switch s {
	case "column-major":
		return ColumnMajor, nil
	case "row-major":
		return RowMajor, nil
	default:
		return 0, fmt.Errorf("unknown layout %q", s)
	}
}

// Strides is the bijection between multi-indices and linear offsets for a
// shape. Implementations are immutable.
type Strides interface {
	// Shape returns the dimensions. Callers must not modify it.
	Shape() Shape
	// Layout returns the memory order.
	Layout() Layout
	// Strides returns dim+1 values; the last one is LinearSize.
	Strides() []int
	// LinearSize is the number of elements of a buffer backing the shape.
	LinearSize() int
	// Offset returns the linear offset of index, or an error wrapping
	// ErrIndexOutOfBounds.
	Offset(index []int) (int, error)
	// Index returns the multi-index at offset. It panics with an
	// *IndexError when offset is outside [0, LinearSize).
	Index(offset int) []int
	// Indices yields every multi-index in ascending offset order.
	Indices() iter.Seq[[]int]
}

// layoutStrides is the only Strides implementation; instances come from the
// process-wide cache.
type layoutStrides struct {
	shape   Shape
	layout  Layout
	strides []int
	// order lists dimensions by decreasing stride, the sequence Index walks.
	order []int
}

func newLayoutStrides(shape Shape, layout Layout) *layoutStrides {
	dims := len(shape)
	s := &layoutStrides{
		shape:   shape.Clone(),
		layout:  layout,
		strides: make([]int, dims+1),
		order:   make([]int, dims),
	}

	switch layout {
	case RowMajor:
		current := 1
		for i := dims - 1; i >= 0; i-- {
			s.strides[i] = current
			current *= shape[i]
		}
		s.strides[dims] = current
		for i := range s.order {
			s.order[i] = i
		}
	default:
		s.strides[0] = 1
		for i := 1; i <= dims; i++ {
			s.strides[i] = s.strides[i-1] * shape[i-1]
		}
		for i := range s.order {
			s.order[i] = dims - 1 - i
		}
	}
	return s
}

func (s *layoutStrides) Shape() Shape    { return s.shape }
func (s *layoutStrides) Layout() Layout  { return s.layout }
func (s *layoutStrides) Strides() []int  { return s.strides }
func (s *layoutStrides) LinearSize() int { return s.strides[len(s.shape)] }

func (s *layoutStrides) Offset(index []int) (int, error) {
	if len(index) != len(s.shape) {
		return 0, &IndexError{Rank: len(s.shape), Got: len(index)}
	}
	offset := 0
	for i, value := range index {
		if value < 0 || value >= s.shape[i] {
			return 0, &IndexError{Dim: i, Index: value, Bound: s.shape[i]}
		}
		offset += value * s.strides[i]
	}
	return offset, nil
}

func (s *layoutStrides) Index(offset int) []int {
	checkLinear(offset, s.LinearSize())
	res := make([]int, len(s.shape))
	current := offset
	for _, dim := range s.order {
		res[dim] = current / s.strides[dim]
		current %= s.strides[dim]
	}
	return res
}

func (s *layoutStrides) Indices() iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		for i := 0; i < s.LinearSize(); i++ {
			if !yield(s.Index(i)) {
				return
			}
		}
	}
}

func (s *layoutStrides) String() string {
	return fmt.Sprintf("Strides(%s)%v%v", s.layout, s.shape, s.strides)
}

// stridesEqual reports whether two Strides describe the same mapping.
func stridesEqual(a, b Strides) bool {
	return a.Layout() == b.Layout() && a.Shape().Equal(b.Shape())
}
