package core

import (
	"io"

	log "github.com/sirupsen/logrus"

	"github.com/ib-77/whilst/pkg/rop/metrics"
)

const DefaultName = "whilst"

// Options configure one top-level run.
type Options struct {
	Name    string
	Logger  log.FieldLogger
	Metrics *metrics.Metrics
}

type Option func(*Options)

// WithLogger enables debug tracing of state transitions.
func WithLogger(logger log.FieldLogger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithMetrics records runs, iterations and outcomes on m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(o *Options) {
		o.Metrics = m
	}
}

// WithName labels log entries and metrics of the run.
func WithName(name string) Option {
	return func(o *Options) {
		o.Name = name
	}
}

func Apply(opts ...Option) Options {
	o := Options{Name: DefaultName}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.Logger == nil {
		o.Logger = discardLogger
	}
	return o
}

var discardLogger = newDiscardLogger()

func newDiscardLogger() log.FieldLogger {
	l := log.New()
	l.SetOutput(io.Discard)
	l.SetLevel(log.PanicLevel)
	return l
}
