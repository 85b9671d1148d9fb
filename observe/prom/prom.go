// Package prom exposes guard lock activity and detached-unit failures
// as Prometheus metrics.
package prom

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/NetPo4ki/go-guard/guard"
)

// Observer implements guard.Observer on top of Prometheus collectors.
type Observer struct {
	acquired *prometheus.CounterVec
	released *prometheus.CounterVec
	attempts prometheus.Histogram
}

// New creates an Observer and registers its collectors on reg.
// Registering twice on the same registry panics, as usual.
func New(reg prometheus.Registerer) *Observer {
	o := &Observer{
		acquired: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "guard_lock_acquired_total",
			Help: "Lock acquisitions by kind.",
		}, []string{"kind"}),
		released: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "guard_lock_released_total",
			Help: "Lock releases by kind.",
		}, []string{"kind"}),
		attempts: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "guard_lock_attempts",
			Help:    "Acquisition attempts per lock, including the successful one.",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		}),
	}
	reg.MustRegister(o.acquired, o.released, o.attempts)
	return o
}

// LockAcquired records an acquisition and its attempt count.
func (o *Observer) LockAcquired(kind guard.Kind, attempts int) {
	o.acquired.WithLabelValues(kind.String()).Inc()
	o.attempts.Observe(float64(attempts))
}

// LockReleased records a release.
func (o *Observer) LockReleased(kind guard.Kind) {
	o.released.WithLabelValues(kind.String()).Inc()
}

// FailureHook returns an await failure hook that counts panics escaping
// detached background units. The counter is registered on reg.
func FailureHook(reg prometheus.Registerer) func(recovered any) {
	c := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "guard_detached_failures_total",
		Help: "Panics escaping detached background units.",
	})
	reg.MustRegister(c)
	return func(any) { c.Inc() }
}
