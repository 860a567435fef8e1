// Package metrics exposes Prometheus counters for repeater runs.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeDone   = "done"
	OutcomeFailed = "failed"
)

type Metrics struct {
	runsStarted      *prometheus.CounterVec
	runsFinished     *prometheus.CounterVec
	iterations       *prometheus.CounterVec
	ignoredCallbacks *prometheus.CounterVec
}

// New registers the repeater metrics on reg. A nil reg leaves them unregistered,
// which is convenient in tests.
func New(reg prometheus.Registerer, prefix string) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		runsStarted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "runs_started_total",
				Help: "Number of repeater runs started",
			},
			[]string{"name"},
		),
		runsFinished: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "runs_finished_total",
				Help: "Number of repeater runs finished, by outcome",
			},
			[]string{"name", "outcome"},
		),
		iterations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "iterations_total",
				Help: "Number of worker invocations that signalled continuation",
			},
			[]string{"name"},
		),
		ignoredCallbacks: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "ignored_callbacks_total",
				Help: "Number of continuation handler calls dropped because the handler was already used",
			},
			[]string{"name"},
		),
	}
}

func (m *Metrics) RunStarted(name string) {
	if m == nil {
		return
	}
	m.runsStarted.WithLabelValues(name).Inc()
}

func (m *Metrics) RunFinished(name, outcome string) {
	if m == nil {
		return
	}
	m.runsFinished.WithLabelValues(name, outcome).Inc()
}

func (m *Metrics) Iteration(name string) {
	if m == nil {
		return
	}
	m.iterations.WithLabelValues(name).Inc()
}

func (m *Metrics) IgnoredCallback(name string) {
	if m == nil {
		return
	}
	m.ignoredCallbacks.WithLabelValues(name).Inc()
}
