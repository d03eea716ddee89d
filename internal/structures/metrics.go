package structures

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

type cacheMetrics struct {
	cacheHits    prometheus.Counter
	cacheMisses  prometheus.Counter
	cacheEntries prometheus.Gauge
}

var metrics = newCacheMetrics()

func newCacheMetrics() *cacheMetrics {
	return &cacheMetrics{
		cacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ndarray_strides_cache_hits_total",
			Help: "Total number of strides lookups served from the cache.",
		}),
		cacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ndarray_strides_cache_misses_total",
			Help: "Total number of strides instances built and cached.",
		}),
		cacheEntries: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "ndarray_strides_cache_entries",
			Help: "Number of distinct (layout, shape) entries in the strides cache.",
		}),
	}
}

func (m *cacheMetrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{m.cacheHits, m.cacheMisses, m.cacheEntries}
}

// RegisterMetrics registers the strides cache metrics with reg.
// Registering twice with the same registry is not an error.
func RegisterMetrics(reg prometheus.Registerer) error {
	for _, c := range metrics.collectors() {
		if err := reg.Register(c); err != nil {
			var are prometheus.AlreadyRegisteredError
			if errors.As(err, &are) {
				continue
			}
			return err
		}
	}
	return nil
}
