package resolver

import "log/slog"

// Option configures a Resolver.
type Option func(*options)

type options struct {
	log          *slog.Logger
	metrics      Metrics
	slotCapacity int
	noCache      bool
}

func newOptions(opts ...Option) *options {
	o := &options{metrics: NopMetrics()}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithLog sets the logger. Defaults to slog.Default().
func WithLog(l *slog.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithMetrics sets the metrics backend. Defaults to no-op.
func WithMetrics(m Metrics) Option {
	return func(o *options) {
		if m != nil {
			o.metrics = m
		}
	}
}

// WithSlotCapacity overrides the per-slot entry bound
// (default: slotpool.DefaultCapacity).
func WithSlotCapacity(n int) Option {
	return func(o *options) { o.slotCapacity = n }
}

// WithoutCache disables the slot pool entirely: every resolution performs
// a VM lookup.
func WithoutCache() Option {
	return func(o *options) { o.noCache = true }
}
