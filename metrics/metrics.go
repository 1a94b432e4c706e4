// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package metrics exports ingestion statistics as prometheus metrics.
package metrics

import (
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/go-air/gcnf/guard"
	"github.com/go-air/gcnf/trace"
)

const namespace = "gcnf"

// Sink is a trace.Sink recording ingestion metrics.
type Sink struct {
	ingestions prometheus.Counter
	warnings   prometheus.Counter
	guards     prometheus.Gauge
	depth      prometheus.Gauge
	vars       prometheus.Gauge
	clauses    prometheus.Gauge
	guardVars  prometheus.Histogram
	duration   prometheus.Histogram
}

// NewSink creates a Sink and registers its collectors with reg.
func NewSink(reg prometheus.Registerer) (*Sink, error) {
	s := &Sink{
		ingestions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ingestions_total",
			Help:      "Number of completed ingestions.",
		}),
		warnings: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "warnings_total",
			Help:      "Number of non fatal ingestion warnings.",
		}),
		guards: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "guards",
			Help:      "Number of guards in the last guard tree.",
		}),
		depth: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "guard_depth",
			Help:      "Maximum depth of the last guard tree.",
		}),
		vars: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "variables",
			Help:      "Number of variables in the last ingestion.",
		}),
		clauses: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "clauses",
			Help:      "Number of clauses in the last ingestion.",
		}),
		guardVars: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "guard_variables",
			Help:      "Number of variables owned directly by a guard.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "ingestion_seconds",
			Help:      "Ingestion wall time.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	for _, c := range []prometheus.Collector{
		s.ingestions, s.warnings, s.guards, s.depth,
		s.vars, s.clauses, s.guardVars, s.duration,
	} {
		if e := reg.Register(c); e != nil {
			return nil, e
		}
	}
	return s, nil
}

// TreeClosed implements trace.Sink.
func (s *Sink) TreeClosed(t *guard.Tree) {
	s.guards.Set(float64(t.Len()))
	d := 0
	for i := range t.Guards {
		if di := t.Depth(i); di > d {
			d = di
		}
	}
	s.depth.Set(float64(d))
}

// RangesAssigned implements trace.Sink.
func (s *Sink) RangesAssigned(t *guard.Tree) {
	for i := range t.Guards {
		start, end := t.VarRange(i)
		s.guardVars.Observe(float64(end - start))
	}
}

// Done implements trace.Sink.
func (s *Sink) Done(t *guard.Tree, sum *trace.Summary) {
	s.ingestions.Inc()
	s.warnings.Add(float64(sum.Warnings))
	s.vars.Set(float64(sum.Vars))
	s.clauses.Set(float64(sum.Clauses))
	s.duration.Observe(sum.Dur.Seconds())
}

// WriteText writes all metrics gathered by g in the prometheus
// text exposition format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	mfs, e := g.Gather()
	if e != nil {
		return e
	}
	for _, mf := range mfs {
		if _, e := expfmt.MetricFamilyToText(w, mf); e != nil {
			return e
		}
	}
	return nil
}
