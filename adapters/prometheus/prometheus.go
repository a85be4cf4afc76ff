// Package prometheus provides Prometheus implementations of the metrics
// interfaces.
package prometheus

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/codewandler/jni-go/core/metrics"
)

// timer wraps a Prometheus histogram to implement the Timer interface.
type timer struct {
	h     prometheus.Observer
	start time.Time
}

func newTimer(h prometheus.Observer) metrics.Timer {
	return &timer{h: h, start: time.Now()}
}

func (t *timer) ObserveDuration() {
	t.h.Observe(time.Since(t.start).Seconds())
}

// Default histogram buckets for lookup latency metrics (in seconds).
// Lookups are fast, so the buckets skew low.
var defaultBuckets = []float64{
	.000001, .0000025, .000005, .00001, .000025, .00005, .0001, .00025, .0005, .001, .0025, .005, .01,
}

func boolToStr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
