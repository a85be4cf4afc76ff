package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/codewandler/jni-go/core/metrics"
	"github.com/codewandler/jni-go/core/resolver"
)

// resolverMetrics implements resolver.Metrics using Prometheus.
type resolverMetrics struct {
	cacheHits      prometheus.Counter
	cacheMisses    prometheus.Counter
	evictions      prometheus.Counter
	slotsAllocated prometheus.Counter
	lookupDuration *prometheus.HistogramVec
	lookupsTotal   *prometheus.CounterVec
}

// NewResolverMetrics creates a new Prometheus implementation of
// resolver.Metrics and registers its collectors on reg.
func NewResolverMetrics(reg prometheus.Registerer) resolver.Metrics {
	m := &resolverMetrics{
		cacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "jni_resolver_cache_hits_total",
			Help: "Total number of member resolutions answered from the cache",
		}),

		cacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "jni_resolver_cache_misses_total",
			Help: "Total number of member resolutions that fell through to a VM lookup",
		}),

		evictions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "jni_resolver_cache_evictions_total",
			Help: "Total number of LRU entries displaced by inserts into full slots",
		}),

		slotsAllocated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "jni_resolver_slots_allocated_total",
			Help: "Total number of cache slots allocated by the pool",
		}),

		lookupDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "jni_resolver_lookup_duration_seconds",
			Help:    "VM member lookup time in seconds",
			Buckets: defaultBuckets,
		}, []string{"kind"}),

		lookupsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "jni_resolver_lookups_total",
			Help: "Total number of VM member lookups performed",
		}, []string{"kind", "success"}),
	}

	reg.MustRegister(
		m.cacheHits,
		m.cacheMisses,
		m.evictions,
		m.slotsAllocated,
		m.lookupDuration,
		m.lookupsTotal,
	)

	return m
}

func (m *resolverMetrics) CacheHit()      { m.cacheHits.Inc() }
func (m *resolverMetrics) CacheMiss()     { m.cacheMisses.Inc() }
func (m *resolverMetrics) Eviction()      { m.evictions.Inc() }
func (m *resolverMetrics) SlotAllocated() { m.slotsAllocated.Inc() }

func (m *resolverMetrics) LookupDuration(kind string) metrics.Timer {
	return newTimer(m.lookupDuration.WithLabelValues(kind))
}

func (m *resolverMetrics) LookupCompleted(kind string, success bool) {
	m.lookupsTotal.WithLabelValues(kind, boolToStr(success)).Inc()
}

var _ resolver.Metrics = (*resolverMetrics)(nil)
