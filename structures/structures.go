// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package structures

import (
	"iter"

	"github.com/go-kit/log"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/born-ml/ndarray/internal/structures"
)

// Type aliases for public API

// DType is a constraint for element types with a primitive buffer layout.
// Supported types: float32, float64, int16, int32, int64, uint8, bool.
type DType = structures.DType

// DataType represents the runtime element type of an ArrayBuffer.
type DataType = structures.DataType

// Data type constants.
const (
	Float32 DataType = structures.Float32
	Float64 DataType = structures.Float64
	Int16   DataType = structures.Int16
	Int32   DataType = structures.Int32
	Int64   DataType = structures.Int64
	Uint8   DataType = structures.Uint8
	Bool    DataType = structures.Bool
)

// Shape represents the dimensions of a structure.
// Example: Shape{2, 3, 4} represents a 3D structure with dimensions 2×3×4.
type Shape = structures.Shape

// Layout selects how coordinates map to linear offsets.
type Layout = structures.Layout

// Layout constants.
const (
	ColumnMajor Layout = structures.ColumnMajor
	RowMajor    Layout = structures.RowMajor
)

// Strides maps multi-indices to linear offsets and back.
type Strides = structures.Strides

// Buffer is a fixed-size, random-access sequence of elements.
type Buffer[T any] = structures.Buffer[T]

// MutableBuffer is a Buffer that supports index assignment.
type MutableBuffer[T any] = structures.MutableBuffer[T]

// Factory creates a buffer of the given size filled by an initializer.
type Factory[T any] = structures.Factory[T]

// MutableFactory creates a mutable buffer of the given size.
type MutableFactory[T any] = structures.MutableFactory[T]

// ArrayBuffer is the primitive, byte-backed buffer representation.
type ArrayBuffer[T DType] = structures.ArrayBuffer[T]

// ListBuffer is the generic buffer representation.
type ListBuffer[T any] = structures.ListBuffer[T]

// VirtualBuffer computes its elements on access.
type VirtualBuffer[T any] = structures.VirtualBuffer[T]

// ReadOnlyBuffer hides the mutation methods of a buffer.
type ReadOnlyBuffer[T any] = structures.ReadOnlyBuffer[T]

// NDStructure is a coordinate-addressable N-dimensional structure.
type NDStructure[T any] = structures.NDStructure[T]

// MutableNDStructure is an NDStructure that supports element assignment.
type MutableNDStructure[T any] = structures.MutableNDStructure[T]

// BufferND is an NDStructure stored in a linear Buffer.
type BufferND[T any] = structures.BufferND[T]

// MutableBufferND is a BufferND over a MutableBuffer.
type MutableBufferND[T any] = structures.MutableBufferND[T]

// FuncND is a structure computed from its index on every access.
type FuncND[T any] = structures.FuncND[T]

// IndexError describes an out-of-bounds access.
type IndexError = structures.IndexError

// Errors

var (
	ErrIndexOutOfBounds = structures.ErrIndexOutOfBounds
	ErrSizeMismatch     = structures.ErrSizeMismatch
	ErrShapeMismatch    = structures.ErrShapeMismatch
	ErrInvalidShape     = structures.ErrInvalidShape
)

// Strides

// NewStrides returns the cached Strides for shape and layout.
func NewStrides(shape Shape, layout Layout) (Strides, error) {
	return structures.NewStrides(shape, layout)
}

// DefaultStrides returns the cached column-major Strides for shape.
func DefaultStrides(shape Shape) (Strides, error) {
	return structures.DefaultStrides(shape)
}

// RowMajorStrides returns the cached row-major Strides for shape.
func RowMajorStrides(shape Shape) (Strides, error) {
	return structures.RowMajorStrides(shape)
}

// ParseLayout parses "column-major" or "row-major".
func ParseLayout(s string) (Layout, error) {
	return structures.ParseLayout(s)
}

// Buffer factories

// Auto picks an ArrayBuffer for primitive T and a ListBuffer otherwise.
func Auto[T any](size int, init func(i int) T) Buffer[T] {
	return structures.Auto(size, init)
}

// MutableAuto is the mutable counterpart of Auto.
func MutableAuto[T any](size int, init func(i int) T) MutableBuffer[T] {
	return structures.MutableAuto(size, init)
}

// Boxing always creates a ListBuffer.
func Boxing[T any](size int, init func(i int) T) Buffer[T] {
	return structures.Boxing(size, init)
}

// MutableBoxing is the mutable counterpart of Boxing.
func MutableBoxing[T any](size int, init func(i int) T) MutableBuffer[T] {
	return structures.MutableBoxing(size, init)
}

// Array always creates an ArrayBuffer.
func Array[T DType](size int, init func(i int) T) Buffer[T] {
	return structures.Array(size, init)
}

// MutableArray is the mutable counterpart of Array.
func MutableArray[T DType](size int, init func(i int) T) MutableBuffer[T] {
	return structures.MutableArray(size, init)
}

// BufferOf creates a buffer holding values.
func BufferOf[T any](values ...T) MutableBuffer[T] {
	return structures.BufferOf(values...)
}

// NewVirtualBuffer creates a read-only buffer computed by gen.
func NewVirtualBuffer[T any](size int, gen func(i int) T) *VirtualBuffer[T] {
	return structures.NewVirtualBuffer(size, gen)
}

// AsReadOnly wraps b so that it cannot be mutated through the result.
func AsReadOnly[T any](b Buffer[T]) *ReadOnlyBuffer[T] {
	return structures.AsReadOnly(b)
}

// ContentEquals reports whether two buffers hold equal elements.
func ContentEquals[T comparable](a, b Buffer[T]) bool {
	return structures.ContentEquals(a, b)
}

// ToSlice copies the buffer elements into a new slice.
func ToSlice[T any](b Buffer[T]) []T {
	return structures.ToSlice(b)
}

// Values returns a sequence over the buffer elements in index order.
func Values[T any](b Buffer[T]) iter.Seq[T] {
	return structures.Values(b)
}

// Copy returns a mutable copy of b. A nil factory selects MutableAuto.
func Copy[T any](b Buffer[T], factory MutableFactory[T]) MutableBuffer[T] {
	return structures.Copy(b, factory)
}

// NewListBuffer creates a ListBuffer filled by init(i).
func NewListBuffer[T any](size int, init func(i int) T) *ListBuffer[T] {
	return structures.NewListBuffer(size, init)
}

// ListBufferOf wraps values without copying.
func ListBufferOf[T any](values []T) *ListBuffer[T] {
	return structures.ListBufferOf(values)
}

// NewArrayBuffer creates an ArrayBuffer filled by init(i).
func NewArrayBuffer[T DType](size int, init func(i int) T) *ArrayBuffer[T] {
	return structures.NewArrayBuffer(size, init)
}

// ArrayBufferOf copies values into a new ArrayBuffer.
func ArrayBufferOf[T DType](values ...T) *ArrayBuffer[T] {
	return structures.ArrayBufferOf(values...)
}

// Structures

// NewBufferND wraps strides and buffer, checking their sizes agree.
func NewBufferND[T any](strides Strides, buffer Buffer[T]) (*BufferND[T], error) {
	return structures.NewBufferND(strides, buffer)
}

// NewMutableBufferND wraps strides and a mutable buffer.
func NewMutableBufferND[T any](strides Strides, buffer MutableBuffer[T]) (*MutableBufferND[T], error) {
	return structures.NewMutableBufferND(strides, buffer)
}

// NewFuncND creates a function-backed structure.
func NewFuncND[T any](shape Shape, fn func(index []int) T) (*FuncND[T], error) {
	return structures.NewFuncND(shape, fn)
}

// New builds a structure with column-major strides. A nil factory selects Boxing.
//
// Example:
//
//	s, err := structures.New(structures.Shape{2, 3}, structures.Array[float64], f)
func New[T any](shape Shape, factory Factory[T], init func(index []int) T) (*BufferND[T], error) {
	return structures.New(shape, factory, init)
}

// NewFromStrides builds a structure over an existing Strides instance.
func NewFromStrides[T any](strides Strides, factory Factory[T], init func(index []int) T) (*BufferND[T], error) {
	return structures.NewFromStrides(strides, factory, init)
}

// NewAuto builds a structure whose storage is inferred from T.
func NewAuto[T any](shape Shape, init func(index []int) T) (*BufferND[T], error) {
	return structures.NewAuto(shape, init)
}

// NewMutable builds a mutable structure. A nil factory selects MutableBoxing.
func NewMutable[T any](shape Shape, factory MutableFactory[T], init func(index []int) T) (*MutableBufferND[T], error) {
	return structures.NewMutable(shape, factory, init)
}

// NewMutableFromStrides builds a mutable structure over existing strides.
func NewMutableFromStrides[T any](strides Strides, factory MutableFactory[T], init func(index []int) T) (*MutableBufferND[T], error) {
	return structures.NewMutableFromStrides(strides, factory, init)
}

// NewMutableAuto builds a mutable structure whose storage is inferred from T.
func NewMutableAuto[T any](shape Shape, init func(index []int) T) (*MutableBufferND[T], error) {
	return structures.NewMutableAuto(shape, init)
}

// Transforms

// MapToBuffer applies transform element-wise, preserving the shape.
// A nil factory selects Auto for R.
//
// Example:
//
//	inc, err := structures.MapToBuffer[float64, float64](s, nil, func(x float64) float64 { return x + 1 })
func MapToBuffer[T, R any](s NDStructure[T], factory Factory[R], transform func(T) R) (*BufferND[R], error) {
	return structures.MapToBuffer(s, factory, transform)
}

// Combine applies op to the elements of a and b at every index.
// Shapes must be equal component-wise.
func Combine[T any](a, b NDStructure[T], op func(x, y T) T) (*BufferND[T], error) {
	return structures.Combine(a, b, op)
}

// MapInPlace overwrites every element of s with action(index, old).
func MapInPlace[T any](s MutableNDStructure[T], action func(index []int, old T) T) error {
	return structures.MapInPlace(s, action)
}

// Equal reports whether a and b hold the same elements at the same indices.
func Equal[T comparable](a, b NDStructure[T]) bool {
	return structures.Equal(a, b)
}

// Dimension returns the number of dimensions of s.
func Dimension[T any](s NDStructure[T]) int {
	return structures.Dimension(s)
}

// Diagnostics

// SetLogger installs the logger used for package diagnostics.
func SetLogger(logger log.Logger) {
	structures.SetLogger(logger)
}

// RegisterMetrics registers the strides cache metrics with reg.
func RegisterMetrics(reg prometheus.Registerer) error {
	return structures.RegisterMetrics(reg)
}
