package structures

// Equal reports whether a and b hold the same elements at the same indices.
//
// Two buffer-backed structures with equal strides compare their buffers
// element-wise. In every other case the shapes must match and each element
// of a is compared with b at the same index.
func Equal[T comparable](a, b NDStructure[T]) bool {
	ab, aok := a.(bufferBacked[T])
	bb, bok := b.(bufferBacked[T])
	if aok && bok && stridesEqual(ab.Strides(), bb.Strides()) {
		return ContentEquals(ab.Buffer(), bb.Buffer())
	}

	if !a.Shape().Equal(b.Shape()) {
		return false
	}
	for index, value := range a.Elements() {
		other, err := b.Get(index)
		if err != nil || other != value {
			return false
		}
	}
	return true
}
