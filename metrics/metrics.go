// Package metrics instruments interaction-matrix construction.
//
// The builder talks to a Recorder; NewPrometheus backs it with
// client_golang collectors registered on a caller-supplied registerer, and
// NewNop discards everything.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Build stages reported by the interaction builder.
const (
	StageEvaluate    = "evaluate"    // misfit + hydrogen-bond pass over the neutral block
	StageRenormalize = "renormalize" // reference-state shift of the main matrix
	StagePartials    = "partials"    // reference-state shift of the partial matrices
)

// DefaultDurationBuckets span sub-millisecond toy systems to multi-second
// batches with tens of thousands of segment types.
var DefaultDurationBuckets = []float64{.0005, .001, .005, .01, .05, .1, .5, 1, 5, 10, 30}

// Recorder receives build observations. Implementations must be safe for
// concurrent use.
type Recorder interface {
	ObserveStage(stage string, seconds float64)
	IncBuildError(stage string)
	SetSegmentTypes(n int)
}

// Prometheus is a Recorder backed by prometheus collectors.
type Prometheus struct {
	duration *prometheus.HistogramVec
	errors   *prometheus.CounterVec
	segments prometheus.Gauge
}

// NewPrometheus creates and registers the collectors under namespace
// (default "cosmors"). reg nil selects prometheus.DefaultRegisterer.
func NewPrometheus(reg prometheus.Registerer, namespace string) (*Prometheus, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "cosmors"
	}

	p := &Prometheus{
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "build_duration_seconds",
			Help:      "Duration of interaction-matrix build stages.",
			Buckets:   DefaultDurationBuckets,
		}, []string{"stage"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "build_errors_total",
			Help:      "Failed interaction-matrix build stages.",
		}, []string{"stage"}),
		segments: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "segment_types",
			Help:      "Segment types in the most recently built matrix.",
		}),
	}
	for _, c := range []prometheus.Collector{p.duration, p.errors, p.segments} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("metrics: register collector: %w", err)
		}
	}

	return p, nil
}

func (p *Prometheus) ObserveStage(stage string, seconds float64) {
	p.duration.WithLabelValues(stage).Observe(seconds)
}

func (p *Prometheus) IncBuildError(stage string) { p.errors.WithLabelValues(stage).Inc() }

func (p *Prometheus) SetSegmentTypes(n int) { p.segments.Set(float64(n)) }

type nop struct{}

func (nop) ObserveStage(string, float64) {}
func (nop) IncBuildError(string)         {}
func (nop) SetSegmentTypes(int)          {}

// NewNop returns a Recorder that discards observations.
func NewNop() Recorder { return nop{} }
