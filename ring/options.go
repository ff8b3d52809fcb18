// File: ring/options.go
//
// Functional options for ring construction.

package ring

import "github.com/prometheus/client_golang/prometheus"

// DropCallback observes elements evicted by overflow.
type DropCallback[T any] func(T)

// Option configures ring behavior using the functional options pattern.
type Option[T any] func(*ringOptions[T])

// ringOptions holds internal configuration for ring instances.
// Statistics are always collected; metrics are opt-in via WithMetrics.
type ringOptions[T any] struct {
	dropCallback DropCallback[T]
	metricsReg   prometheus.Registerer
	name         string
}

// WithDropCallback sets a callback invoked with each element evicted when a
// push lands on a full ring. It runs after the push completes.
func WithDropCallback[T any](callback DropCallback[T]) Option[T] {
	return func(opts *ringOptions[T]) {
		opts.dropCallback = callback
	}
}

// WithMetrics enables Prometheus export of ring statistics, labeled by name.
// Ignored when registerer is nil or name is empty.
func WithMetrics[T any](registerer prometheus.Registerer, name string) Option[T] {
	return func(opts *ringOptions[T]) {
		if registerer != nil && name != "" {
			opts.metricsReg = registerer
			opts.name = name
		}
	}
}

// applyOptions applies functional options to build the final configuration.
func applyOptions[T any](options ...Option[T]) *ringOptions[T] {
	opts := &ringOptions[T]{}
	for _, opt := range options {
		if opt != nil {
			opt(opts)
		}
	}
	return opts
}
