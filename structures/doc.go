// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package structures provides strided N-dimensional structures over flat,
// type-specialized buffers.
//
// # Overview
//
// A structure is a Strides value (the mapping between multi-indices and
// linear offsets for a shape) paired with a Buffer (fixed-size linear
// storage). This package provides:
//   - Buffer / MutableBuffer with primitive (ArrayBuffer) and generic
//     (ListBuffer) representations chosen per element type
//   - Strides for column-major and row-major layouts, cached per shape
//   - NDStructure / MutableNDStructure and their buffer-backed implementations
//   - Builders (New, NewAuto, NewMutable, ...) and element-wise transforms
//     (MapToBuffer, Combine, MapInPlace)
//
// # Basic Usage
//
//	import "github.com/born-ml/ndarray/structures"
//
//	func main() {
//	    s, err := structures.NewAuto(structures.Shape{2, 2}, func(idx []int) float64 {
//	        return float64(idx[0]*10 + idx[1])
//	    })
//	    if err != nil {
//	        panic(err)
//	    }
//
//	    s.At(1, 0) // 10
//
//	    inc, _ := structures.MapToBuffer[float64, float64](s, nil, func(x float64) float64 {
//	        return x + 1
//	    })
//	    inc.At(1, 0) // 11
//	}
//
// # Layouts
//
// DefaultStrides uses column-major order: strides[0] = 1 and the first index
// varies fastest. RowMajorStrides makes the last index vary fastest. Both
// report dim+1 strides, the last one being the linear size.
//
//	s, _ := structures.DefaultStrides(structures.Shape{2, 2})   // [1 2 4]
//	r, _ := structures.RowMajorStrides(structures.Shape{2, 2})  // [2 1 4]
//
// # Storage Specialization
//
// Auto stores float32, float64, int16, int32, int64, uint8 and bool in a
// single byte allocation with a typed view; other types use a plain slice.
// Both behave identically through the Buffer interface.
//
// # Errors
//
// Structure-level accessors return errors wrapping ErrIndexOutOfBounds,
// ErrSizeMismatch, ErrShapeMismatch or ErrInvalidShape. Buffer accessors,
// At and Strides.Index panic with an *IndexError, like slice indexing.
//
// # Concurrency
//
// Structures and buffers are not synchronized. The strides cache is safe for
// concurrent use and publishes exactly one Strides instance per shape.
package structures
