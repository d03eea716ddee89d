package structures

import (
	"fmt"
	"reflect"
	"unsafe"
)

// ArrayBuffer is the primitive representation: elements live in a single
// byte allocation and are accessed through a typed zero-copy view, so no
// element is ever boxed.
type ArrayBuffer[T DType] struct {
	raw   []byte   // Backing storage
	data  []T      // Typed view over raw
	dtype DataType // Runtime type information
}

// NewArrayBuffer creates an ArrayBuffer of the given size filled by init(i).
func NewArrayBuffer[T DType](size int, init func(i int) T) *ArrayBuffer[T] {
	b := allocArrayBuffer[T](size)
	for i := range b.data {
		b.data[i] = init(i)
	}
	return b
}

// ArrayBufferOf copies values into a new ArrayBuffer.
func ArrayBufferOf[T DType](values ...T) *ArrayBuffer[T] {
	b := allocArrayBuffer[T](len(values))
	copy(b.data, values)
	return b
}

func allocArrayBuffer[T DType](size int) *ArrayBuffer[T] {
	if size < 0 {
		panic(fmt.Sprintf("array buffer: negative size %d", size))
	}
	dtype := kindDataType[T]()
	b := &ArrayBuffer[T]{
		raw:   make([]byte, size*dtype.Size()),
		dtype: dtype,
	}
	if size > 0 {
		//nolint:gosec // unsafe.Slice for zero-copy access, length bounded by the allocation above
		b.data = unsafe.Slice((*T)(unsafe.Pointer(&b.raw[0])), size)
	}
	return b
}

// kindDataType maps T to its DataType by underlying kind, so named types
// such as `type Celsius float64` share the float64 layout.
func kindDataType[T DType]() DataType {
	if dt, ok := dataTypeOf[T](); ok {
		return dt
	}
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Float32:
		return Float32
	case reflect.Float64:
		return Float64
	case reflect.Int16:
		return Int16
	case reflect.Int32:
		return Int32
	case reflect.Int64:
		return Int64
	case reflect.Uint8:
		return Uint8
	case reflect.Bool:
		return Bool
	default:
		panic("unsupported type")
	}
}

// Size returns the number of elements.
func (b *ArrayBuffer[T]) Size() int { return len(b.data) }

// Get returns the element at i.
func (b *ArrayBuffer[T]) Get(i int) T {
	checkLinear(i, len(b.data))
	return b.data[i]
}

// Set assigns the element at i.
func (b *ArrayBuffer[T]) Set(i int, value T) {
	checkLinear(i, len(b.data))
	b.data[i] = value
}

// DType returns the runtime element type.
func (b *ArrayBuffer[T]) DType() DataType { return b.dtype }

// ByteSize returns the storage size in bytes.
func (b *ArrayBuffer[T]) ByteSize() int { return len(b.raw) }

// Data returns a typed slice view of the storage.
//
// WARNING: Modifications to the returned slice will modify the buffer.
func (b *ArrayBuffer[T]) Data() []T { return b.data }

// Bytes returns the raw storage in native byte order.
//
// WARNING: Direct access to underlying memory. Use with caution.
func (b *ArrayBuffer[T]) Bytes() []byte { return b.raw }

// String returns a human-readable representation of the buffer.
func (b *ArrayBuffer[T]) String() string {
	return formatBuffer[T]("ArrayBuffer["+b.dtype.String()+"]", b)
}

func (b *ArrayBuffer[T]) slice() []T { return b.data }
