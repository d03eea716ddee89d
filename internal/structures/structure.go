package structures

import (
	"fmt"
	"iter"
	"reflect"
)

// NDStructure is a coordinate-addressable N-dimensional structure.
// Consumers must not assume a buffer-backed implementation.
type NDStructure[T any] interface {
	// Shape returns the dimensions. Callers must not modify it.
	Shape() Shape
	// Get returns the element at index, or an error wrapping
	// ErrIndexOutOfBounds.
	Get(index []int) (T, error)
	// Elements yields (index, value) pairs in ascending offset order.
	Elements() iter.Seq2[[]int, T]
}

// MutableNDStructure is an NDStructure that supports element assignment.
type MutableNDStructure[T any] interface {
	NDStructure[T]
	Set(index []int, value T) error
}

// Dimension returns the number of dimensions of s.
func Dimension[T any](s NDStructure[T]) int {
	return len(s.Shape())
}

// bufferBacked is the capability MapToBuffer and Equal look for to skip
// per-element index arithmetic.
type bufferBacked[T any] interface {
	NDStructure[T]
	Strides() Strides
	Buffer() Buffer[T]
}

// BufferND is an NDStructure stored in a linear Buffer addressed through
// Strides. The Strides instance may be shared; the buffer is owned.
type BufferND[T any] struct {
	strides Strides
	buffer  Buffer[T]
}

// NewBufferND wraps strides and buffer. It fails with ErrSizeMismatch when
// the buffer size differs from the strides linear size.
func NewBufferND[T any](strides Strides, buffer Buffer[T]) (*BufferND[T], error) {
	if err := checkSizes(strides, buffer.Size()); err != nil {
		return nil, err
	}
	return &BufferND[T]{strides: strides, buffer: buffer}, nil
}

func checkSizes(strides Strides, size int) error {
	if strides.LinearSize() != size {
		return fmt.Errorf("%w: expected buffer size %d, but found %d", ErrSizeMismatch, strides.LinearSize(), size)
	}
	return nil
}

// Shape returns the structure's shape.
func (s *BufferND[T]) Shape() Shape { return s.strides.Shape() }

// Strides returns the index mapping.
func (s *BufferND[T]) Strides() Strides { return s.strides }

// Buffer returns the underlying linear buffer.
func (s *BufferND[T]) Buffer() Buffer[T] { return s.buffer }

// Get returns the element at index.
func (s *BufferND[T]) Get(index []int) (T, error) {
	offset, err := s.strides.Offset(index)
	if err != nil {
		var zero T
		return zero, err
	}
	return s.buffer.Get(offset), nil
}

// At returns the element at the given indices.
// Panics if indices are out of bounds.
//
// Example:
//
//	s, _ := structures.NewAuto(structures.Shape{3, 4}, f)
//	value := s.At(1, 2) // Row 1, column 2
func (s *BufferND[T]) At(indices ...int) T {
	v, err := s.Get(indices)
	if err != nil {
		panic(err)
	}
	return v
}

// Elements yields (index, value) pairs in ascending offset order.
func (s *BufferND[T]) Elements() iter.Seq2[[]int, T] {
	return func(yield func([]int, T) bool) {
		for i := 0; i < s.strides.LinearSize(); i++ {
			if !yield(s.strides.Index(i), s.buffer.Get(i)) {
				return
			}
		}
	}
}

// String returns a human-readable representation of the structure.
func (s *BufferND[T]) String() string {
	return fmt.Sprintf("BufferND[%s]%v %v", elementName[T](), s.Shape(), s.buffer)
}

// MutableBufferND is a BufferND over a MutableBuffer.
type MutableBufferND[T any] struct {
	BufferND[T]
	mutable MutableBuffer[T]
}

// NewMutableBufferND wraps strides and a mutable buffer. It fails with
// ErrSizeMismatch when the sizes disagree.
func NewMutableBufferND[T any](strides Strides, buffer MutableBuffer[T]) (*MutableBufferND[T], error) {
	if err := checkSizes(strides, buffer.Size()); err != nil {
		return nil, err
	}
	return &MutableBufferND[T]{
		BufferND: BufferND[T]{strides: strides, buffer: buffer},
		mutable:  buffer,
	}, nil
}

// MutableBuffer returns the underlying mutable buffer.
func (s *MutableBufferND[T]) MutableBuffer() MutableBuffer[T] { return s.mutable }

// Set assigns the element at index.
func (s *MutableBufferND[T]) Set(index []int, value T) error {
	offset, err := s.strides.Offset(index)
	if err != nil {
		return err
	}
	s.mutable.Set(offset, value)
	return nil
}

// SetAt assigns the element at the given indices.
// Panics if indices are out of bounds.
func (s *MutableBufferND[T]) SetAt(value T, indices ...int) {
	if err := s.Set(indices, value); err != nil {
		panic(err)
	}
}

// String returns a human-readable representation of the structure.
func (s *MutableBufferND[T]) String() string {
	return fmt.Sprintf("MutableBufferND[%s]%v %v", elementName[T](), s.Shape(), s.buffer)
}

// FuncND is an opaque structure whose elements are computed from their
// index on every access. It stores no buffer.
type FuncND[T any] struct {
	shape Shape
	fn    func(index []int) T
}

// NewFuncND creates a function-backed structure of the given shape.
func NewFuncND[T any](shape Shape, fn func(index []int) T) (*FuncND[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	return &FuncND[T]{shape: shape.Clone(), fn: fn}, nil
}

// Shape returns the structure's shape.
func (f *FuncND[T]) Shape() Shape { return f.shape }

// Get returns fn(index) after checking index against the shape.
func (f *FuncND[T]) Get(index []int) (T, error) {
	var zero T
	if len(index) != len(f.shape) {
		return zero, &IndexError{Rank: len(f.shape), Got: len(index)}
	}
	for i, value := range index {
		if value < 0 || value >= f.shape[i] {
			return zero, &IndexError{Dim: i, Index: value, Bound: f.shape[i]}
		}
	}
	return f.fn(index), nil
}

// Elements yields (index, fn(index)) in column-major order.
func (f *FuncND[T]) Elements() iter.Seq2[[]int, T] {
	strides := defaultCache.get(f.shape, ColumnMajor)
	return func(yield func([]int, T) bool) {
		for index := range strides.Indices() {
			if !yield(index, f.fn(index)) {
				return
			}
		}
	}
}

func elementName[T any]() string {
	if dt, ok := dataTypeOf[T](); ok {
		return dt.String()
	}
	return reflect.TypeFor[T]().String()
}
