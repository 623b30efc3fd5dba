// Package metrics exposes cache statistics as Prometheus metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/gostencil/stencil/cache"
)

// StatsFunc returns a snapshot of cache statistics. The cache itself is
// not safe for concurrent use, so a closure handed to New must perform
// whatever synchronization the application uses around the cache; it is
// called from the scrape path at collection time.
type StatsFunc func() cache.Stats

// Metrics holds the Prometheus collectors for one cache. All collectors
// pull from the StatsFunc at scrape time, so the exported values are
// always current without the cache having to push anything.
type Metrics struct {
	// Counter metrics
	Hits      prometheus.CounterFunc
	Misses    prometheus.CounterFunc
	Evictions prometheus.CounterFunc

	// Gauge metrics
	Entries  prometheus.GaugeFunc
	Capacity prometheus.GaugeFunc
}

// New creates and registers collectors for a cache with the given
// namespace. If reg is nil, the default registerer is used. The stats
// closure must not be nil.
//
// Hit rate is deliberately not exported; derive it from the hit and miss
// counters at query time.
func New(reg prometheus.Registerer, namespace string, stats StatsFunc) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		Hits: factory.NewCounterFunc(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "hits_total",
			Help:      "Total number of lookups that found their key",
		}, func() float64 {
			return float64(stats().Hits)
		}),
		Misses: factory.NewCounterFunc(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "misses_total",
			Help:      "Total number of lookups that missed",
		}, func() float64 {
			return float64(stats().Misses)
		}),
		Evictions: factory.NewCounterFunc(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "evictions_total",
			Help:      "Total number of entries evicted to make room",
		}, func() float64 {
			return float64(stats().Evictions)
		}),

		Entries: factory.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "entries",
			Help:      "Current number of cached entries",
		}, func() float64 {
			return float64(stats().Len)
		}),
		Capacity: factory.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "capacity",
			Help:      "Maximum number of entries the cache holds",
		}, func() float64 {
			return float64(stats().Capacity)
		}),
	}
}
