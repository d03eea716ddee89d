package structures

import "fmt"

// MapToBuffer applies transform to every element of s and returns a new
// structure of the same shape. A nil factory selects Auto for R, so the
// result storage is specialized independently of T.
//
// When s is buffer-backed its Strides instance is reused and the source
// buffer is mapped in linear order. Otherwise column-major strides are
// built for s.Shape() and each element is read through s.Get.
// The result buffer is always freshly allocated.
func MapToBuffer[T, R any](s NDStructure[T], factory Factory[R], transform func(T) R) (*BufferND[R], error) {
	if factory == nil {
		factory = Auto[R]
	}

	if bb, ok := s.(bufferBacked[T]); ok {
		strides, src := bb.Strides(), bb.Buffer()
		if sb, ok := src.(sliceBacked[T]); ok {
			data := sb.slice()
			return NewBufferND(strides, factory(strides.LinearSize(), func(i int) R {
				return transform(data[i])
			}))
		}
		return NewBufferND(strides, factory(strides.LinearSize(), func(i int) R {
			return transform(src.Get(i))
		}))
	}

	strides, err := DefaultStrides(s.Shape())
	if err != nil {
		return nil, err
	}
	var getErr error
	buffer := factory(strides.LinearSize(), func(i int) R {
		var zero R
		if getErr != nil {
			return zero
		}
		v, err := s.Get(strides.Index(i))
		if err != nil {
			getErr = err
			return zero
		}
		return transform(v)
	})
	if getErr != nil {
		return nil, fmt.Errorf("map to buffer: %w", getErr)
	}
	return NewBufferND(strides, buffer)
}

// Combine returns a structure holding op(a[idx], b[idx]) for every index.
// The shapes must be equal component-wise; equal linear sizes are not
// enough and no broadcasting is attempted.
func Combine[T any](a, b NDStructure[T], op func(x, y T) T) (*BufferND[T], error) {
	if !a.Shape().Equal(b.Shape()) {
		return nil, fmt.Errorf("%w: %v vs %v", ErrShapeMismatch, a.Shape(), b.Shape())
	}

	// Both operands stored with the same mapping: combine linearly.
	ab, aok := a.(bufferBacked[T])
	bb, bok := b.(bufferBacked[T])
	if aok && bok && stridesEqual(ab.Strides(), bb.Strides()) {
		x, y := ab.Buffer(), bb.Buffer()
		return NewBufferND(ab.Strides(), Auto(x.Size(), func(i int) T {
			return op(x.Get(i), y.Get(i))
		}))
	}

	var getErr error
	result, err := NewAuto(a.Shape(), func(index []int) T {
		var zero T
		if getErr != nil {
			return zero
		}
		x, err := a.Get(index)
		if err != nil {
			getErr = err
			return zero
		}
		y, err := b.Get(index)
		if err != nil {
			getErr = err
			return zero
		}
		return op(x, y)
	})
	if err != nil {
		return nil, err
	}
	if getErr != nil {
		return nil, fmt.Errorf("combine: %w", getErr)
	}
	return result, nil
}

// MapInPlace overwrites every element of s with action(index, old),
// visiting coordinates in s.Elements() order. Buffer-backed structures are
// updated without reallocating their buffer.
func MapInPlace[T any](s MutableNDStructure[T], action func(index []int, old T) T) error {
	if ms, ok := s.(*MutableBufferND[T]); ok {
		buf := ms.mutable
		for i := 0; i < buf.Size(); i++ {
			buf.Set(i, action(ms.strides.Index(i), buf.Get(i)))
		}
		return nil
	}

	for index, old := range s.Elements() {
		if err := s.Set(index, action(index, old)); err != nil {
			return err
		}
	}
	return nil
}
