package resolver

import "github.com/codewandler/jni-go/core/metrics"

// Metrics defines the metrics interface for the resolver. All methods are
// thread-safe.
type Metrics interface {
	// Cache observations, one per resolution.
	CacheHit()
	CacheMiss()
	Eviction()
	SlotAllocated()

	// VM lookup observations. kind is "method" or "field".
	LookupDuration(kind string) metrics.Timer
	LookupCompleted(kind string, success bool)
}

// nopMetrics is a no-op implementation of Metrics.
type nopMetrics struct{}

func (nopMetrics) CacheHit()      {}
func (nopMetrics) CacheMiss()     {}
func (nopMetrics) Eviction()      {}
func (nopMetrics) SlotAllocated() {}

func (nopMetrics) LookupDuration(string) metrics.Timer { return metrics.NopTimer() }
func (nopMetrics) LookupCompleted(string, bool)        {}

// NopMetrics returns a no-op Metrics implementation.
func NopMetrics() Metrics { return nopMetrics{} }
