package structures

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plusOne(x float64) float64 { return x + 1 }

func TestMapToBufferScenario(t *testing.T) {
	s, err := NewAuto(Shape{2, 2}, tens)
	require.NoError(t, err)

	mapped, err := MapToBuffer[float64, float64](s, nil, plusOne)
	require.NoError(t, err)

	assert.Equal(t, Shape{2, 2}, mapped.Shape())
	assert.Equal(t, []float64{1, 11, 2, 12}, ToSlice(mapped.Buffer()))
	assert.Equal(t, 11.0, mapped.At(1, 0))

	rowMajor, err := RowMajorStrides(Shape{2, 2})
	require.NoError(t, err)
	r, err := NewFromStrides(rowMajor, Auto[float64], tens)
	require.NoError(t, err)
	mappedRow, err := MapToBuffer[float64, float64](r, nil, plusOne)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 11, 12}, ToSlice(mappedRow.Buffer()))
}

func TestMapToBufferFastPathReusesStrides(t *testing.T) {
	s, err := NewAuto(Shape{3, 4}, tens)
	require.NoError(t, err)

	mapped, err := MapToBuffer[float64, float64](s, nil, plusOne)
	require.NoError(t, err)

	assert.Same(t, s.Strides(), mapped.Strides())
	assert.NotSame(t, s.Buffer(), mapped.Buffer(), "result buffer must be fresh")
	assert.Equal(t, 0.0, s.At(0, 0), "source untouched")
}

func TestMapToBufferFastAndGeneralPathsAgree(t *testing.T) {
	shape := Shape{3, 2, 4}
	f := func(index []int) float64 {
		return float64(index[0]*100 + index[1]*10 + index[2])
	}

	backed, err := NewAuto(shape, f)
	require.NoError(t, err)
	opaque, err := NewFuncND(shape, f)
	require.NoError(t, err)

	transform := func(x float64) float64 { return x*2 - 3 }
	fast, err := MapToBuffer[float64, float64](backed, nil, transform)
	require.NoError(t, err)
	general, err := MapToBuffer[float64, float64](opaque, nil, transform)
	require.NoError(t, err)

	assert.True(t, Equal[float64](fast, general))
	for index, value := range fast.Elements() {
		other, err := general.Get(index)
		require.NoError(t, err)
		assert.Equal(t, value, other, "index %v", index)
	}
}

func TestMapToBufferChangesElementType(t *testing.T) {
	s, err := NewAuto(Shape{2, 2}, tens)
	require.NoError(t, err)

	labels, err := MapToBuffer(s, nil, func(x float64) string {
		return strconv.FormatFloat(x, 'f', -1, 64)
	})
	require.NoError(t, err)
	assert.IsType(t, &ListBuffer[string]{}, labels.Buffer())
	assert.Equal(t, "10", labels.At(1, 0))

	ints, err := MapToBuffer(s, Array[int32], func(x float64) int32 { return int32(x) })
	require.NoError(t, err)
	assert.IsType(t, &ArrayBuffer[int32]{}, ints.Buffer())
	assert.Equal(t, []int32{0, 10, 1, 11}, ToSlice(ints.Buffer()))

	// A boxed source still maps into a specialized result.
	boxed, err := New(Shape{2}, Boxing[float64], func(index []int) float64 { return float64(index[0]) })
	require.NoError(t, err)
	flags, err := MapToBuffer(boxed, nil, func(x float64) bool { return x > 0 })
	require.NoError(t, err)
	assert.IsType(t, &ArrayBuffer[bool]{}, flags.Buffer())
	assert.Equal(t, []bool{false, true}, ToSlice(flags.Buffer()))
}

func TestMapToBufferVirtualSource(t *testing.T) {
	strides, err := DefaultStrides(Shape{2, 2})
	require.NoError(t, err)
	s, err := NewBufferND[int](strides, NewVirtualBuffer(4, func(i int) int { return i }))
	require.NoError(t, err)

	mapped, err := MapToBuffer(s, Boxing[int], func(x int) int { return x * x })
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 4, 9}, ToSlice(mapped.Buffer()))
}

// brokenND reports a shape it cannot serve.
type brokenND struct {
	FuncND[float64]
}

func (b *brokenND) Get(index []int) (float64, error) {
	if index[0] == 1 {
		return 0, errors.New("unavailable")
	}
	return b.FuncND.Get(index)
}

func TestMapToBufferGeneralPathPropagatesErrors(t *testing.T) {
	inner, err := NewFuncND(Shape{2}, func([]int) float64 { return 1 })
	require.NoError(t, err)

	_, err = MapToBuffer[float64, float64](&brokenND{FuncND: *inner}, nil, plusOne)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unavailable")
}

// sparseND serves pointers and reports missing cells as errors.
type sparseND struct {
	FuncND[*float64]
}

func (s *sparseND) Get(index []int) (*float64, error) {
	if index[0] == 1 {
		return nil, errors.New("missing cell")
	}
	return s.FuncND.Get(index)
}

func newSparseND(t *testing.T) *sparseND {
	t.Helper()
	one := 1.0
	inner, err := NewFuncND(Shape{3, 2}, func([]int) *float64 { return &one })
	require.NoError(t, err)
	return &sparseND{FuncND: *inner}
}

func TestMapToBufferStopsAfterFirstError(t *testing.T) {
	calls := 0
	deref := func(p *float64) float64 {
		calls++
		return *p
	}

	var (
		err error
		res *BufferND[float64]
	)
	require.NotPanics(t, func() {
		res, err = MapToBuffer[*float64, float64](newSparseND(t), nil, deref)
	})
	require.ErrorContains(t, err, "missing cell")
	assert.Nil(t, res)
	// Column-major order reaches index [1 0] second.
	assert.Equal(t, 1, calls)
}

func TestCombineStopsAfterFirstError(t *testing.T) {
	calls := 0
	add := func(x, y *float64) *float64 {
		calls++
		sum := *x + *y
		return &sum
	}

	var (
		err error
		res *BufferND[*float64]
	)
	require.NotPanics(t, func() {
		res, err = Combine[*float64](newSparseND(t), newSparseND(t), add)
	})
	require.ErrorContains(t, err, "missing cell")
	assert.Nil(t, res)
	assert.Equal(t, 1, calls)
}

func TestCombine(t *testing.T) {
	a, err := NewAuto(Shape{2, 3}, func(index []int) float64 { return float64(index[0] + index[1]) })
	require.NoError(t, err)
	b, err := NewAuto(Shape{2, 3}, func(index []int) float64 { return float64(index[0] * index[1]) })
	require.NoError(t, err)

	sum, err := Combine[float64](a, b, func(x, y float64) float64 { return x + y })
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 3}, sum.Shape())

	for index, value := range sum.Elements() {
		x, _ := a.Get(index)
		y, _ := b.Get(index)
		assert.Equal(t, x+y, value, "index %v", index)
	}
}

func TestCombineMixedRepresentations(t *testing.T) {
	shape := Shape{2, 2}
	rowMajor, err := RowMajorStrides(shape)
	require.NoError(t, err)

	a, err := NewFromStrides(rowMajor, Auto[float64], tens)
	require.NoError(t, err)
	b, err := NewFuncND(shape, func([]int) float64 { return 1 })
	require.NoError(t, err)

	sum, err := Combine[float64](a, b, func(x, y float64) float64 { return x + y })
	require.NoError(t, err)
	assert.Equal(t, 11.0, sum.At(1, 0))
	assert.Equal(t, 2.0, sum.At(0, 1))
	assert.Equal(t, 12.0, sum.At(1, 1))
}

func TestCombineShapeMismatch(t *testing.T) {
	a, err := NewAuto(Shape{2, 2}, func([]int) float64 { return 1 })
	require.NoError(t, err)
	b, err := NewAuto(Shape{2, 3}, func([]int) float64 { return 1 })
	require.NoError(t, err)

	_, err = Combine[float64](a, b, func(x, y float64) float64 { return x + y })
	assert.ErrorIs(t, err, ErrShapeMismatch)

	// Equal linear size is not enough.
	c, err := NewAuto(Shape{4}, func([]int) float64 { return 1 })
	require.NoError(t, err)
	_, err = Combine[float64](a, c, func(x, y float64) float64 { return x + y })
	assert.ErrorIs(t, err, ErrShapeMismatch)

	d, err := NewAuto(Shape{1, 4}, func([]int) float64 { return 1 })
	require.NoError(t, err)
	_, err = Combine[float64](a, d, func(x, y float64) float64 { return x + y })
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestMapInPlace(t *testing.T) {
	s, err := NewMutableAuto(Shape{2, 2}, tens)
	require.NoError(t, err)
	buf := s.MutableBuffer()

	var visited [][]int
	err = MapInPlace[float64](s, func(index []int, old float64) float64 {
		visited = append(visited, index)
		return old * 2
	})
	require.NoError(t, err)

	assert.Same(t, buf, s.MutableBuffer(), "buffer must not be reallocated")
	assert.Equal(t, []float64{0, 20, 2, 22}, ToSlice(s.Buffer()))
	assert.Equal(t, [][]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}}, visited)
}

// gridND is a map-backed mutable structure used to exercise the generic
// MapInPlace path.
type gridND struct {
	FuncND[int]
	values map[[2]int]int
}

func newGridND(t *testing.T) *gridND {
	g := &gridND{values: map[[2]int]int{}}
	inner, err := NewFuncND(Shape{2, 2}, func(index []int) int {
		return g.values[[2]int{index[0], index[1]}]
	})
	require.NoError(t, err)
	g.FuncND = *inner
	return g
}

func (g *gridND) Set(index []int, value int) error {
	if _, err := g.Get(index); err != nil {
		return err
	}
	g.values[[2]int{index[0], index[1]}] = value
	return nil
}

func TestMapInPlaceGenericStructure(t *testing.T) {
	g := newGridND(t)
	require.NoError(t, g.Set([]int{1, 1}, 5))

	err := MapInPlace[int](g, func(index []int, old int) int {
		return old + index[0] + 10*index[1]
	})
	require.NoError(t, err)

	assert.Equal(t, map[[2]int]int{{0, 0}: 0, {1, 0}: 1, {0, 1}: 10, {1, 1}: 16}, g.values)
}

func TestEqual(t *testing.T) {
	a, err := NewAuto(Shape{2, 2}, tens)
	require.NoError(t, err)
	boxed, err := New(Shape{2, 2}, Boxing[float64], tens)
	require.NoError(t, err)
	opaque, err := NewFuncND(Shape{2, 2}, tens)
	require.NoError(t, err)
	rowMajor, err := RowMajorStrides(Shape{2, 2})
	require.NoError(t, err)
	transposedLayout, err := NewFromStrides(rowMajor, Auto[float64], tens)
	require.NoError(t, err)

	assert.True(t, Equal[float64](a, boxed), "fast path across representations")
	assert.True(t, Equal[float64](a, opaque), "general path")
	assert.True(t, Equal[float64](opaque, a))
	assert.True(t, Equal[float64](a, transposedLayout), "different layouts, same logical content")

	other, err := NewAuto(Shape{2, 2}, func([]int) float64 { return 0 })
	require.NoError(t, err)
	assert.False(t, Equal[float64](a, other))

	reshaped, err := NewAuto(Shape{4}, func(index []int) float64 { return []float64{0, 10, 1, 11}[index[0]] })
	require.NoError(t, err)
	assert.False(t, Equal[float64](a, reshaped), "same buffer content, different shape")
}
