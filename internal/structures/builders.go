package structures

// New builds a structure of the given shape with column-major strides.
// The buffer is filled by init(index) in ascending offset order.
// A nil factory selects Boxing.
func New[T any](shape Shape, factory Factory[T], init func(index []int) T) (*BufferND[T], error) {
	strides, err := DefaultStrides(shape)
	if err != nil {
		return nil, err
	}
	return NewFromStrides(strides, factory, init)
}

// NewFromStrides builds a structure over an existing Strides instance.
func NewFromStrides[T any](strides Strides, factory Factory[T], init func(index []int) T) (*BufferND[T], error) {
	if factory == nil {
		factory = Boxing[T]
	}
	buffer := factory(strides.LinearSize(), func(i int) T {
		return init(strides.Index(i))
	})
	return NewBufferND(strides, buffer)
}

// NewAuto builds a structure whose buffer representation is inferred from T.
func NewAuto[T any](shape Shape, init func(index []int) T) (*BufferND[T], error) {
	return New(shape, Auto[T], init)
}

// NewMutable builds a mutable structure with column-major strides.
// A nil factory selects MutableBoxing.
func NewMutable[T any](shape Shape, factory MutableFactory[T], init func(index []int) T) (*MutableBufferND[T], error) {
	strides, err := DefaultStrides(shape)
	if err != nil {
		return nil, err
	}
	return NewMutableFromStrides(strides, factory, init)
}

// NewMutableFromStrides builds a mutable structure over an existing Strides instance.
func NewMutableFromStrides[T any](strides Strides, factory MutableFactory[T], init func(index []int) T) (*MutableBufferND[T], error) {
	if factory == nil {
		factory = MutableBoxing[T]
	}
	buffer := factory(strides.LinearSize(), func(i int) T {
		return init(strides.Index(i))
	})
	return NewMutableBufferND(strides, buffer)
}

// NewMutableAuto builds a mutable structure whose buffer representation is
// inferred from T.
func NewMutableAuto[T any](shape Shape, init func(index []int) T) (*MutableBufferND[T], error) {
	return NewMutable(shape, MutableAuto[T], init)
}
