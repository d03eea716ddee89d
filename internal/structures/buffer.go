package structures

import (
	"fmt"
	"iter"
	"strings"
)

// Buffer is a fixed-size, random-access sequence of elements.
//
// Get panics with an *IndexError when i is outside [0, Size()).
type Buffer[T any] interface {
	Size() int
	Get(i int) T
}

// MutableBuffer is a Buffer that supports index assignment.
// Set has the same bound check as Get.
type MutableBuffer[T any] interface {
	Buffer[T]
	Set(i int, value T)
}

// Factory creates a buffer of the given size filled by init(i).
type Factory[T any] func(size int, init func(i int) T) Buffer[T]

// MutableFactory creates a mutable buffer of the given size filled by init(i).
type MutableFactory[T any] func(size int, init func(i int) T) MutableBuffer[T]

// Readonly adapts a MutableFactory to a Factory.
func (f MutableFactory[T]) Readonly() Factory[T] {
	return func(size int, init func(int) T) Buffer[T] {
		return f(size, init)
	}
}

// sliceBacked is implemented by buffers that can expose their storage as a
// slice for unchecked linear traversal.
type sliceBacked[T any] interface {
	slice() []T
}

// Values returns a restartable sequence over the buffer elements in index order.
func Values[T any](b Buffer[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		if sb, ok := b.(sliceBacked[T]); ok {
			for _, v := range sb.slice() {
				if !yield(v) {
					return
				}
			}
			return
		}
		for i := 0; i < b.Size(); i++ {
			if !yield(b.Get(i)) {
				return
			}
		}
	}
}

// ToSlice copies the buffer elements into a new slice.
func ToSlice[T any](b Buffer[T]) []T {
	out := make([]T, 0, b.Size())
	for v := range Values(b) {
		out = append(out, v)
	}
	return out
}

// ContentEquals reports whether two buffers have equal size and equal
// elements at every index. Identity is irrelevant.
func ContentEquals[T comparable](a, b Buffer[T]) bool {
	if a.Size() != b.Size() {
		return false
	}
	as, aok := a.(sliceBacked[T])
	bs, bok := b.(sliceBacked[T])
	if aok && bok {
		x, y := as.slice(), bs.slice()
		for i := range x {
			if x[i] != y[i] {
				return false
			}
		}
		return true
	}
	for i := 0; i < a.Size(); i++ {
		if a.Get(i) != b.Get(i) {
			return false
		}
	}
	return true
}

// Copy returns a mutable copy of b using the given factory.
// A nil factory selects MutableAuto.
func Copy[T any](b Buffer[T], factory MutableFactory[T]) MutableBuffer[T] {
	if factory == nil {
		factory = MutableAuto[T]
	}
	if sb, ok := b.(sliceBacked[T]); ok {
		src := sb.slice()
		return factory(len(src), func(i int) T { return src[i] })
	}
	return factory(b.Size(), b.Get)
}

// BufferOf creates a buffer holding the given values, using the most
// specialized representation available for T.
func BufferOf[T any](values ...T) MutableBuffer[T] {
	return MutableAuto(len(values), func(i int) T { return values[i] })
}

// ReadOnlyBuffer hides the mutation methods of the wrapped buffer.
type ReadOnlyBuffer[T any] struct {
	buf Buffer[T]
}

// AsReadOnly wraps b so that callers cannot type-assert it back to a
// MutableBuffer. Reads still observe later writes through b.
func AsReadOnly[T any](b Buffer[T]) *ReadOnlyBuffer[T] {
	if ro, ok := b.(*ReadOnlyBuffer[T]); ok {
		return ro
	}
	return &ReadOnlyBuffer[T]{buf: b}
}

// Size returns the number of elements.
func (r *ReadOnlyBuffer[T]) Size() int { return r.buf.Size() }

// Get returns the element at i.
func (r *ReadOnlyBuffer[T]) Get(i int) T { return r.buf.Get(i) }

// String returns a human-readable representation of the buffer.
func (r *ReadOnlyBuffer[T]) String() string {
	return formatBuffer[T]("ReadOnlyBuffer", r)
}

// VirtualBuffer computes its elements on access and stores nothing.
type VirtualBuffer[T any] struct {
	size int
	gen  func(i int) T
}

// NewVirtualBuffer creates a read-only buffer of the given size whose
// element i is gen(i), evaluated on every Get.
func NewVirtualBuffer[T any](size int, gen func(i int) T) *VirtualBuffer[T] {
	if size < 0 {
		panic(fmt.Sprintf("virtual buffer: negative size %d", size))
	}
	return &VirtualBuffer[T]{size: size, gen: gen}
}

// Size returns the number of elements.
func (v *VirtualBuffer[T]) Size() int { return v.size }

// Get returns gen(i).
func (v *VirtualBuffer[T]) Get(i int) T {
	checkLinear(i, v.size)
	return v.gen(i)
}

// String returns a human-readable representation of the buffer.
func (v *VirtualBuffer[T]) String() string {
	return formatBuffer[T]("VirtualBuffer", v)
}

// maxFormatted bounds how many elements String prints.
const maxFormatted = 16

func formatBuffer[T any](kind string, b Buffer[T]) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s(%d)[", kind, b.Size())
	for i := 0; i < b.Size(); i++ {
		if i == maxFormatted {
			sb.WriteString(" ...")
			break
		}
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, b.Get(i))
	}
	sb.WriteByte(']')
	return sb.String()
}
