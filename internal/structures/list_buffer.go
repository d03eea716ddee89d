package structures

// ListBuffer is the generic representation, usable for any element type.
type ListBuffer[T any] struct {
	data []T
}

// NewListBuffer creates a ListBuffer of the given size filled by init(i).
func NewListBuffer[T any](size int, init func(i int) T) *ListBuffer[T] {
	data := make([]T, size)
	for i := range data {
		data[i] = init(i)
	}
	return &ListBuffer[T]{data: data}
}

// ListBufferOf wraps values without copying.
// The buffer aliases the slice; later writes to either side are shared.
func ListBufferOf[T any](values []T) *ListBuffer[T] {
	return &ListBuffer[T]{data: values}
}

// Size returns the number of elements.
func (b *ListBuffer[T]) Size() int { return len(b.data) }

// Get returns the element at i.
func (b *ListBuffer[T]) Get(i int) T {
	checkLinear(i, len(b.data))
	return b.data[i]
}

// Set assigns the element at i.
func (b *ListBuffer[T]) Set(i int, value T) {
	checkLinear(i, len(b.data))
	b.data[i] = value
}

// String returns a human-readable representation of the buffer.
func (b *ListBuffer[T]) String() string {
	return formatBuffer[T]("ListBuffer", b)
}

func (b *ListBuffer[T]) slice() []T { return b.data }
