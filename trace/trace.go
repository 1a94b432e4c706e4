// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package trace defines checkpoints observed during ingestion.
package trace

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/go-air/gcnf/guard"
)

// Summary describes a completed ingestion.
type Summary struct {
	DeclaredVars    int
	DeclaredClauses int
	Vars            int
	Clauses         int
	Guards          int
	Warnings        int
	Dur             time.Duration
}

// Sink receives ingestion checkpoints.  The tree passed to a
// Sink must not be modified.
type Sink interface {
	// TreeClosed is called once the guard topology is complete.
	TreeClosed(t *guard.Tree)

	// RangesAssigned is called once variable ranges are assigned.
	RangesAssigned(t *guard.Tree)

	// Done is called once ingestion completed without a fatal error,
	// after all clause ranges are recorded.
	Done(t *guard.Tree, s *Summary)
}

// Nop is a Sink which ignores everything.
type Nop struct{}

func (Nop) TreeClosed(*guard.Tree)     {}
func (Nop) RangesAssigned(*guard.Tree) {}
func (Nop) Done(*guard.Tree, *Summary) {}

// Multi forwards to each of its sinks in order.
type Multi []Sink

func (m Multi) TreeClosed(t *guard.Tree) {
	for _, s := range m {
		s.TreeClosed(t)
	}
}

func (m Multi) RangesAssigned(t *guard.Tree) {
	for _, s := range m {
		s.RangesAssigned(t)
	}
}

func (m Multi) Done(t *guard.Tree, sum *Summary) {
	for _, s := range m {
		s.Done(t, sum)
	}
}

// Log logs checkpoints at debug level, and per guard detail
// at trace level.
type Log struct {
	L logrus.FieldLogger
}

func (l Log) TreeClosed(t *guard.Tree) {
	l.L.WithField("guards", t.Len()).Debug("guard tree closed")
	for i := range t.Guards {
		g := t.Get(i)
		l.L.WithFields(logrus.Fields{
			"guard":    g.ID,
			"parent":   g.Parent,
			"children": g.Children,
		}).Trace("guard")
	}
}

func (l Log) RangesAssigned(t *guard.Tree) {
	l.L.WithFields(logrus.Fields{
		"guards":  t.Len(),
		"lastVar": t.Get(t.Len() - 1).VarEnd,
	}).Debug("variable ranges assigned")
}

func (l Log) Done(t *guard.Tree, s *Summary) {
	l.L.WithFields(logrus.Fields{
		"vars":     s.Vars,
		"clauses":  s.Clauses,
		"guards":   s.Guards,
		"warnings": s.Warnings,
		"dur":      s.Dur,
	}).Debug("ingestion complete")
	for i := range t.Guards {
		g := t.Get(i)
		l.L.WithFields(logrus.Fields{
			"guard":     g.ID,
			"varEnd":    g.VarEnd,
			"clauseEnd": g.ClauseEnd.String(),
		}).Trace("guard ranges")
	}
}
