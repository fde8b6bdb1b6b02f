// Package metric provides Prometheus metrics for tabsample.
package metric

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/yndnr/tabsample/internal/core/domain"
	"github.com/yndnr/tabsample/pkg/sampler"
	"github.com/yndnr/tabsample/pkg/shape"
)

const namespace = "tabsample"

// Registry holds all application metrics.
type Registry struct {
	registry *prometheus.Registry

	// Sampling metrics
	SamplesTotal   *prometheus.CounterVec
	SampleErrors   *prometheus.CounterVec
	SampleDuration *prometheus.HistogramVec

	// Classification metrics
	Classifications *prometheus.CounterVec
}

// NewRegistry creates a new metrics registry with Go runtime and process
// collectors registered.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	r := &Registry{
		registry: reg,
		SamplesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "samples_total",
			Help:      "Number of successful samples by draw path.",
		}, []string{"path"}),
		SampleErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sample_errors_total",
			Help:      "Number of failed samples by error code.",
		}, []string{"code"}),
		SampleDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "sample_duration_seconds",
			Help:      "Latency of a single sample, classification included.",
			Buckets:   prometheus.ExponentialBuckets(50e-9, 4, 12),
		}, []string{"path"}),
		Classifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "classifications_total",
			Help:      "Number of shape classifications by verdict and deciding step.",
		}, []string{"verdict", "decision"}),
	}

	reg.MustRegister(r.SamplesTotal, r.SampleErrors, r.SampleDuration, r.Classifications)
	return r
}

// Register adds a custom collector to the registry.
func (r *Registry) Register(c prometheus.Collector) error {
	return r.registry.Register(c)
}

// Unregister removes a collector from the registry.
func (r *Registry) Unregister(c prometheus.Collector) bool {
	return r.registry.Unregister(c)
}

// Handler returns an HTTP handler serving this registry.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// ObserveClassification implements sampler.Observer.
func (r *Registry) ObserveClassification(v shape.Verdict, d shape.Decision) {
	r.Classifications.WithLabelValues(v.Kind(), string(d)).Inc()
}

// ObserveSample implements sampler.Observer.
func (r *Registry) ObserveSample(path sampler.Path, elapsed time.Duration, err error) {
	if err != nil {
		code := domain.GetErrorCode(err)
		if code == "" {
			code = "unknown"
		}
		r.SampleErrors.WithLabelValues(code).Inc()
		return
	}
	r.SamplesTotal.WithLabelValues(string(path)).Inc()
	r.SampleDuration.WithLabelValues(string(path)).Observe(elapsed.Seconds())
}

var _ sampler.Observer = (*Registry)(nil)
