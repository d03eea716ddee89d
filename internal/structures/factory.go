package structures

// Boxing creates the generic representation regardless of T.
func Boxing[T any](size int, init func(i int) T) Buffer[T] {
	return NewListBuffer(size, init)
}

// MutableBoxing is the mutable counterpart of Boxing.
func MutableBoxing[T any](size int, init func(i int) T) MutableBuffer[T] {
	return NewListBuffer(size, init)
}

// Array creates the primitive representation for a DType element.
func Array[T DType](size int, init func(i int) T) Buffer[T] {
	return NewArrayBuffer(size, init)
}

// MutableArray is the mutable counterpart of Array.
func MutableArray[T DType](size int, init func(i int) T) MutableBuffer[T] {
	return NewArrayBuffer(size, init)
}

// Auto picks the most memory-efficient representation for T: an
// ArrayBuffer when T is exactly one of the supported primitive kinds,
// a ListBuffer otherwise. Both behave identically through Buffer.
func Auto[T any](size int, init func(i int) T) Buffer[T] {
	return MutableAuto(size, init)
}

// MutableAuto is the mutable counterpart of Auto.
//
//nolint:gocyclo,cyclop // One case per supported primitive type
func MutableAuto[T any](size int, init func(i int) T) MutableBuffer[T] {
	dtype, ok := dataTypeOf[T]()
	if !ok {
		return NewListBuffer(size, init)
	}

	// T is exactly the primitive type here, so the initializer and the
	// resulting buffer convert through any without copying.
	var buf any
	switch dtype {
	case Float32:
		buf = NewArrayBuffer(size, any(init).(func(int) float32))
	case Float64:
		buf = NewArrayBuffer(size, any(init).(func(int) float64))
	case Int16:
		buf = NewArrayBuffer(size, any(init).(func(int) int16))
	case Int32:
		buf = NewArrayBuffer(size, any(init).(func(int) int32))
	case Int64:
		buf = NewArrayBuffer(size, any(init).(func(int) int64))
	case Uint8:
		buf = NewArrayBuffer(size, any(init).(func(int) uint8))
	case Bool:
		buf = NewArrayBuffer(size, any(init).(func(int) bool))
	}
	return buf.(MutableBuffer[T])
}
