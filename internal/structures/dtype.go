// Package structures provides strided N-dimensional structures over flat,
// type-specialized buffers.
package structures

// DType lists the element kinds an ArrayBuffer can store unboxed.
// Named types with one of these underlying kinds are accepted as well.
type DType interface {
	~float32 | ~float64 | ~int16 | ~int32 | ~int64 | ~uint8 | ~bool
}

// DataType tags the storage kind of an ArrayBuffer at runtime.
type DataType int

// Storage kinds, one per DType member.
const (
	Float32 DataType = iota
	Float64
	Int16
	Int32
	Int64
	Uint8
	Bool
)

var dataTypes = [...]struct {
	name  string
	bytes int
}{
	Float32: {"float32", 4},
	Float64: {"float64", 8},
	Int16:   {"int16", 2},
	Int32:   {"int32", 4},
	Int64:   {"int64", 8},
	Uint8:   {"uint8", 1},
	Bool:    {"bool", 1},
}

func (dt DataType) valid() bool { return dt >= 0 && int(dt) < len(dataTypes) }

// Size returns the number of bytes one element occupies.
func (dt DataType) Size() int {
	if !dt.valid() {
		panic("unknown data type")
	}
	return dataTypes[dt].bytes
}

// String returns the Go name of the element kind.
func (dt DataType) String() string {
	if !dt.valid() {
		return "unknown"
	}
	return dataTypes[dt].name
}

// dataTypeOf reports the storage kind of T when T is exactly one of the
// unboxed kinds. Named types report false; Auto keeps them boxed.
func dataTypeOf[T any]() (DataType, bool) {
	var zero T
	switch any(zero).(type) {
	case float32:
		return Float32, true
	case float64:
		return Float64, true
	case int16:
		return Int16, true
	case int32:
		return Int32, true
	case int64:
		return Int64, true
	case uint8:
		return Uint8, true
	case bool:
		return Bool, true
	}
	return 0, false
}
