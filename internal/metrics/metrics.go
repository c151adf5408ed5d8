// Package metrics exposes Prometheus collectors for the persisted state
// store. Collectors live on their own registry so tests and multiple
// stores in one process do not collide.
package metrics

import (
	"errors"
	"net/http"
	"time"

	"github.com/drahmed023/hamokshaaaaaaaaaaaaaaaa-sub000/internal/state"
	"github.com/drahmed023/hamokshaaaaaaaaaaaaaaaa-sub000/internal/store"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "study_app"

// Recorder implements store.Observer on a private registry.
type Recorder struct {
	registry *prometheus.Registry

	dispatches      *prometheus.CounterVec
	persistDuration *prometheus.HistogramVec
	persistBytes    *prometheus.GaugeVec
	persistErrors   *prometheus.CounterVec
	rehydrations    *prometheus.CounterVec
}

var _ store.Observer = (*Recorder)(nil)

// NewRecorder registers the store collectors, plus the Go runtime and
// process collectors, on a new registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,

		// Labels: key, action, outcome (changed, unchanged, error)
		dispatches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "dispatches_total",
			Help:      "Actions dispatched to a persisted store",
		}, []string{"key", "action", "outcome"}),

		persistDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "persist_duration_seconds",
			Help:      "Time spent serializing and writing state",
			Buckets:   []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 1},
		}, []string{"key"}),

		persistBytes: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "persisted_bytes",
			Help:      "Size of the last successfully written state",
		}, []string{"key"}),

		// Labels: key, reason (quota, other)
		persistErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "persist_errors_total",
			Help:      "Failed state writes",
		}, []string{"key", "reason"}),

		// Labels: key, domain, outcome (recovered, defaulted)
		rehydrations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "rehydrated_domains_total",
			Help:      "Domains restored or defaulted while loading stored state",
		}, []string{"key", "domain", "outcome"}),
	}
}

// Registry returns the registry the collectors are registered on.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Rehydrated implements store.Observer.
func (r *Recorder) Rehydrated(key string, report state.RehydrateReport) {
	for _, domain := range report.Recovered {
		r.rehydrations.WithLabelValues(key, string(domain), "recovered").Inc()
	}
	for domain := range report.Defaulted {
		r.rehydrations.WithLabelValues(key, string(domain), "defaulted").Inc()
	}
}

// Dispatched implements store.Observer.
func (r *Recorder) Dispatched(key string, action state.ActionType, changed bool, err error) {
	outcome := "unchanged"
	switch {
	case err != nil:
		outcome = "error"
	case changed:
		outcome = "changed"
	}
	r.dispatches.WithLabelValues(key, string(action), outcome).Inc()
}

// Persisted implements store.Observer.
func (r *Recorder) Persisted(key string, size int, elapsed time.Duration, err error) {
	r.persistDuration.WithLabelValues(key).Observe(elapsed.Seconds())
	if err != nil {
		reason := "other"
		if errors.Is(err, store.ErrQuotaExceeded) {
			reason = "quota"
		}
		r.persistErrors.WithLabelValues(key, reason).Inc()
		return
	}
	r.persistBytes.WithLabelValues(key).Set(float64(size))
}
