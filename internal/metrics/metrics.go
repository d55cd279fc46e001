// Package metrics exposes the results of deployment checks as Prometheus metrics.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/smartcontractkit/deploycheck"
)

const namespace = "deploycheck"

// Run results.
const (
	ResultClean      = "clean"
	ResultViolations = "violations"
	ResultErrors     = "errors"
)

// Recorder records check reports into its own registry.
type Recorder struct {
	registry *prometheus.Registry

	violations  *prometheus.GaugeVec
	chainErrors *prometheus.GaugeVec
	lastRun     prometheus.Gauge
	runs        *prometheus.CounterVec
}

// NewRecorder creates a Recorder with a fresh registry that also collects Go runtime metrics.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		violations: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "violations",
				Help:      "Number of violations found by the last check, by chain and violation type",
			},
			[]string{"chain", "type"},
		),
		chainErrors: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "chain_errors",
				Help:      "Whether the last check of a chain failed (1) or completed (0)",
			},
			[]string{"chain"},
		),
		lastRun: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "last_run_timestamp_seconds",
				Help:      "Unix time of the last completed check",
			},
		),
		runs: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "runs_total",
				Help:      "Total number of checks run, by result",
			},
			[]string{"result"},
		),
	}
}

// Record replaces the per-chain gauges with the content of report. Every checked chain reports
// a value for every violation type, so that fixed violations drop to zero.
func (r *Recorder) Record(report *deploycheck.Report, at time.Time) {
	r.violations.Reset()
	r.chainErrors.Reset()

	for chain, violations := range report.Violations {
		counts := make(map[deploycheck.ViolationType]int, len(violations))
		for _, v := range violations {
			counts[v.Type()]++
		}
		for _, t := range deploycheck.ViolationTypes() {
			r.violations.WithLabelValues(chain.String(), t.String()).Set(float64(counts[t]))
		}
		r.chainErrors.WithLabelValues(chain.String()).Set(0)
	}
	for chain := range report.Errors {
		r.chainErrors.WithLabelValues(chain.String()).Set(1)
	}

	r.lastRun.Set(float64(at.Unix()))
	r.runs.WithLabelValues(result(report)).Inc()
}

func result(report *deploycheck.Report) string {
	switch {
	case len(report.Errors) > 0:
		return ResultErrors
	case report.Count() > 0:
		return ResultViolations
	default:
		return ResultClean
	}
}

// Registry returns the registry metrics are recorded into.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler returns the Prometheus metrics HTTP handler.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
