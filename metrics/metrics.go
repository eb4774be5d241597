// Package metrics records flow-run counters. The library reports through the
// Recorder interface; Nop is the default and Prometheus is the concrete backend
// used by the CLI.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder receives run events. Implementations must be safe for concurrent use.
type Recorder interface {
	// OriginsProcessed adds n finished origins for model ("aggregation" or "dispersal").
	OriginsProcessed(model string, n int)
	// WorkerDone observes one worker's wall time.
	WorkerDone(model string, d time.Duration)
	// PartialWritten adds the size of one partial file.
	PartialWritten(bytes int64)
	// RunFailed counts a failed call.
	RunFailed(model string)
}

// Nop discards everything.
type Nop struct{}

func (Nop) OriginsProcessed(string, int) {}
func (Nop) WorkerDone(string, time.Duration) {}
func (Nop) PartialWritten(int64) {}
func (Nop) RunFailed(string) {}

// Prometheus implements Recorder over client_golang collectors.
type Prometheus struct {
	origins  *prometheus.CounterVec
	workers  *prometheus.HistogramVec
	bytes    prometheus.Counter
	failures *prometheus.CounterVec
}

// NewPrometheus registers the lvflow collectors with reg.
// Registering twice on the same registry panics, as promauto does.
func NewPrometheus(reg prometheus.Registerer) *Prometheus {
	f := promauto.With(reg)

	return &Prometheus{
		origins: f.NewCounterVec(prometheus.CounterOpts{
			Name: "lvflow_origins_processed_total",
			Help: "Origins whose shortest-path tree was computed and assigned",
		}, []string{"model"}),
		workers: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "lvflow_worker_duration_seconds",
			Help:    "Wall time of one worker over its origin partition",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
		}, []string{"model"}),
		bytes: f.NewCounter(prometheus.CounterOpts{
			Name: "lvflow_partial_bytes_written_total",
			Help: "Bytes written to partial result files",
		}),
		failures: f.NewCounterVec(prometheus.CounterOpts{
			Name: "lvflow_runs_failed_total",
			Help: "Flow calls that returned an error",
		}, []string{"model"}),
	}
}

func (p *Prometheus) OriginsProcessed(model string, n int) {
	p.origins.WithLabelValues(model).Add(float64(n))
}

func (p *Prometheus) WorkerDone(model string, d time.Duration) {
	p.workers.WithLabelValues(model).Observe(d.Seconds())
}

func (p *Prometheus) PartialWritten(bytes int64) { p.bytes.Add(float64(bytes)) }

func (p *Prometheus) RunFailed(model string) { p.failures.WithLabelValues(model).Inc() }
