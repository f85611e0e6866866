package metrics

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector bundles the Prometheus metrics of the compute pipeline. All
// methods tolerate a nil receiver so instrumentation can be omitted in tests.
type Collector struct {
	gatherer prometheus.Gatherer

	ProviderCalls   *prometheus.CounterVec
	ComputeDuration prometheus.Histogram
}

// NewCollector registers the metrics against the provided registerer,
// defaulting to the global Prometheus registry when nil.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	calls := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "provider_calls_total",
		Help: "Outbound Google Maps calls, labeled by provider and outcome.",
	}, []string{"provider", "status"})
	calls, err := registerCounterVec(reg, calls, "provider_calls_total")
	if err != nil {
		return nil, err
	}

	duration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "compute_location_duration_seconds",
		Help:    "End-to-end latency of the compute-location pipeline.",
		Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20, 30, 60},
	})
	duration, err = registerHistogram(reg, duration, "compute_location_duration_seconds")
	if err != nil {
		return nil, err
	}

	return &Collector{
		gatherer:        gatherer,
		ProviderCalls:   calls,
		ComputeDuration: duration,
	}, nil
}

// RecordProviderCall counts one outbound provider call.
func (c *Collector) RecordProviderCall(provider, status string) {
	if c == nil || c.ProviderCalls == nil {
		return
	}
	c.ProviderCalls.WithLabelValues(provider, status).Inc()
}

// ObserveCompute records the latency of one compute request.
func (c *Collector) ObserveCompute(d time.Duration) {
	if c == nil || c.ComputeDuration == nil {
		return
	}
	c.ComputeDuration.Observe(d.Seconds())
}

// Handler exposes a ready-to-use /metrics handler.
func (c *Collector) Handler() http.Handler {
	gatherer := prometheus.DefaultGatherer
	if c != nil && c.gatherer != nil {
		gatherer = c.gatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerHistogram(reg prometheus.Registerer, hist prometheus.Histogram, name string) (prometheus.Histogram, error) {
	if err := reg.Register(hist); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Histogram); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return hist, nil
}
