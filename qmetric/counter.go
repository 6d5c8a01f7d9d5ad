// Package qmetric wraps prometheus counter and summary vectors behind
// small interfaces and hosts the library's default instruments: rows
// evaluated, row failures by reason, per-operation latency. Nothing is
// registered until Init, so the library adds no collectors to hosts
// that do not opt in.
package qmetric

import (
	prom "github.com/prometheus/client_golang/prometheus"
)

// Labels is a set of constant labels attached to an instrument.
type Labels map[string]string

type (
	// CounterVecOpts configures a counter vector.
	CounterVecOpts struct {
		Namespace   string
		Subsystem   string
		Name        string
		Help        string
		Labels      []string
		ConstLabels Labels
	}

	// CounterVec interface represents a counter vector.
	CounterVec interface {
		// Inc increments labels.
		Inc(labels ...string)
		// Add adds labels with v.
		Add(v float64, labels ...string)
		close() bool
	}

	promCounterVec struct {
		counter *prom.CounterVec
	}
)

// NewCounterVec registers and returns a CounterVec.
func NewCounterVec(cfg *CounterVecOpts) CounterVec {
	if cfg == nil {
		return nil
	}

	vec := prom.NewCounterVec(prom.CounterOpts{
		Namespace:   cfg.Namespace,
		Subsystem:   cfg.Subsystem,
		Name:        cfg.Name,
		Help:        cfg.Help,
		ConstLabels: prom.Labels(cfg.ConstLabels),
	}, cfg.Labels)
	prom.MustRegister(vec)

	return &promCounterVec{counter: vec}
}

func (cv *promCounterVec) Inc(labels ...string) {
	cv.counter.WithLabelValues(labels...).Inc()
}

func (cv *promCounterVec) Add(v float64, labels ...string) {
	cv.counter.WithLabelValues(labels...).Add(v)
}

func (cv *promCounterVec) close() bool {
	return prom.Unregister(cv.counter)
}
