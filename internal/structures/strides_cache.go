package structures

import (
	"fmt"
	"sync"

	"github.com/go-kit/log/level"
	"golang.org/x/sync/singleflight"
)

// stridesCache maps (layout, shape content) to a published Strides instance.
// Entries are never evicted: the set of distinct shapes a program uses is
// expected to be small.
//
// TODO: add a size cap if long-running callers start building structures
// with unbounded numbers of distinct dynamic shapes.
type stridesCache struct {
	entries sync.Map // string -> *layoutStrides
	group   singleflight.Group
}

var defaultCache = &stridesCache{}

func cacheKey(shape Shape, layout Layout) string {
	key := make([]byte, 0, 1+2*len(shape))
	key = append(key, byte(layout))
	return string(shape.appendKey(key))
}

// get returns the cached instance for shape and layout, building and
// publishing it on first use. Concurrent first calls for the same key
// observe the same instance.
func (c *stridesCache) get(shape Shape, layout Layout) *layoutStrides {
	key := cacheKey(shape, layout)
	if s, ok := c.entries.Load(key); ok {
		metrics.cacheHits.Inc()
		return s.(*layoutStrides)
	}

	// Callers that joined another caller's build count as hits.
	ran := false
	v, _, _ := c.group.Do(key, func() (any, error) {
		ran = true
		built := newLayoutStrides(shape, layout)
		actual, loaded := c.entries.LoadOrStore(key, built)
		if loaded {
			metrics.cacheHits.Inc()
		} else {
			metrics.cacheMisses.Inc()
			metrics.cacheEntries.Inc()
			level.Debug(Logger()).Log("msg", "strides cached", "shape", built.shape, "layout", layout, "linear_size", built.LinearSize())
		}
		return actual, nil
	})
	if !ran {
		metrics.cacheHits.Inc()
	}
	return v.(*layoutStrides)
}

// NewStrides returns the cached Strides for shape and layout.
// Equal shapes yield the same instance.
func NewStrides(shape Shape, layout Layout) (Strides, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if layout != ColumnMajor && layout != RowMajor {
		return nil, fmt.Errorf("unknown layout %d", layout)
	}
	return defaultCache.get(shape, layout), nil
}

// DefaultStrides returns the cached column-major Strides for shape.
func DefaultStrides(shape Shape) (Strides, error) {
	return NewStrides(shape, ColumnMajor)
}

// RowMajorStrides returns the cached row-major Strides for shape.
func RowMajorStrides(shape Shape) (Strides, error) {
	return NewStrides(shape, RowMajor)
}
