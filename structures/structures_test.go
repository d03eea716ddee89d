// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package structures_test

import (
	"errors"
	"testing"

	"github.com/born-ml/ndarray/structures"
)

// TestInterfaces verifies that the concrete types satisfy the public interfaces.
func TestInterfaces(_ *testing.T) {
	var _ structures.NDStructure[float64] = (*structures.BufferND[float64])(nil)
	var _ structures.MutableNDStructure[float64] = (*structures.MutableBufferND[float64])(nil)
	var _ structures.NDStructure[float64] = (*structures.FuncND[float64])(nil)
	var _ structures.MutableBuffer[float64] = (*structures.ArrayBuffer[float64])(nil)
	var _ structures.MutableBuffer[string] = (*structures.ListBuffer[string])(nil)
	var _ structures.Buffer[int] = (*structures.VirtualBuffer[int])(nil)
	var _ structures.Buffer[int] = (*structures.ReadOnlyBuffer[int])(nil)
}

// TestScenario builds the 2x2 example through the public API.
func TestScenario(t *testing.T) {
	s, err := structures.NewAuto(structures.Shape{2, 2}, func(idx []int) float64 {
		return float64(idx[0]*10 + idx[1])
	})
	if err != nil {
		t.Fatalf("NewAuto failed: %v", err)
	}

	if got := s.At(1, 0); got != 10 {
		t.Errorf("At(1, 0) = %v, want 10", got)
	}
	if got := s.At(0, 1); got != 1 {
		t.Errorf("At(0, 1) = %v, want 1", got)
	}

	inc, err := structures.MapToBuffer[float64, float64](s, nil, func(x float64) float64 { return x + 1 })
	if err != nil {
		t.Fatalf("MapToBuffer failed: %v", err)
	}
	want := []float64{1, 11, 2, 12}
	got := structures.ToSlice(inc.Buffer())
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("mapped buffer = %v, want %v", got, want)
		}
	}
	if !inc.Shape().Equal(s.Shape()) {
		t.Errorf("mapped shape = %v, want %v", inc.Shape(), s.Shape())
	}
}

// TestErrors verifies the sentinel errors are re-exported.
func TestErrors(t *testing.T) {
	s, err := structures.NewMutableAuto(structures.Shape{3, 3}, func([]int) int32 { return 0 })
	if err != nil {
		t.Fatalf("NewMutableAuto failed: %v", err)
	}

	if _, err := s.Get([]int{3, 0}); !errors.Is(err, structures.ErrIndexOutOfBounds) {
		t.Errorf("Get([3 0]) error = %v, want ErrIndexOutOfBounds", err)
	}
	if err := s.Set([]int{-1, 0}, 1); !errors.Is(err, structures.ErrIndexOutOfBounds) {
		t.Errorf("Set([-1 0]) error = %v, want ErrIndexOutOfBounds", err)
	}

	other, err := structures.NewAuto(structures.Shape{3, 2}, func([]int) int32 { return 0 })
	if err != nil {
		t.Fatalf("NewAuto failed: %v", err)
	}
	if _, err := structures.Combine[int32](s, other, func(x, y int32) int32 { return x + y }); !errors.Is(err, structures.ErrShapeMismatch) {
		t.Errorf("Combine error = %v, want ErrShapeMismatch", err)
	}

	strides, err := structures.DefaultStrides(structures.Shape{3, 3})
	if err != nil {
		t.Fatalf("DefaultStrides failed: %v", err)
	}
	if _, err := structures.NewBufferND[int32](strides, structures.BufferOf[int32](1, 2)); !errors.Is(err, structures.ErrSizeMismatch) {
		t.Errorf("NewBufferND error = %v, want ErrSizeMismatch", err)
	}
}

// TestStridesSharing verifies strides are cached across the public API.
func TestStridesSharing(t *testing.T) {
	a, err := structures.RowMajorStrides(structures.Shape{3, 5})
	if err != nil {
		t.Fatalf("RowMajorStrides failed: %v", err)
	}
	b, err := structures.NewStrides(structures.Shape{3, 5}, structures.RowMajor)
	if err != nil {
		t.Fatalf("NewStrides failed: %v", err)
	}
	if a != b {
		t.Error("equal shapes should share one Strides instance")
	}
}

// TestBufferHelpers verifies the buffer constructors and helpers are reachable
// from the public package.
func TestBufferHelpers(t *testing.T) {
	values := []string{"a", "b", "c"}
	list := structures.ListBufferOf(values)
	values[0] = "z"
	if got := list.Get(0); got != "z" {
		t.Errorf("ListBufferOf should alias its slice, got %q", got)
	}

	arr := structures.ArrayBufferOf[float32](1, 2, 3)
	if arr.DType() != structures.Float32 {
		t.Errorf("expected float32 storage, got %v", arr.DType())
	}

	squares := structures.NewArrayBuffer(4, func(i int) int64 { return int64(i * i) })
	var sum int64
	for v := range structures.Values[int64](squares) {
		sum += v
	}
	if sum != 14 {
		t.Errorf("expected sum 14, got %d", sum)
	}

	cp := structures.Copy[int64](squares, nil)
	cp.Set(0, 100)
	if squares.Get(0) != 0 {
		t.Error("Copy should not share storage with its source")
	}

	boxed := structures.NewListBuffer(2, func(i int) int { return i + 1 })
	if !structures.ContentEquals[int](boxed, structures.BufferOf(1, 2)) {
		t.Error("expected equal contents")
	}
}
