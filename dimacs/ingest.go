// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package dimacs

import (
	"fmt"
	"io"
	"time"

	"github.com/go-air/gini/z"
	"github.com/sirupsen/logrus"

	"github.com/go-air/gcnf/diag"
	"github.com/go-air/gcnf/guard"
	"github.com/go-air/gcnf/inter"
	"github.com/go-air/gcnf/lex"
	"github.com/go-air/gcnf/trace"
)

// State is the state of an ingestion.
type State int

const (
	AwaitingHeader State = iota
	ReadingClauses
	Done
)

func (s State) String() string {
	switch s {
	case AwaitingHeader:
		return "awaiting header"
	case ReadingClauses:
		return "reading clauses"
	case Done:
		return "done"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Options configure Ingest.
type Options struct {
	// Strict makes a mismatch between the header clause count and
	// the number of clauses read fatal, as well as clauses which
	// reference variables beyond the header variable count.
	Strict bool

	// Side is the guard stream.  If nil, a single guard owns
	// everything.
	Side io.Reader

	// Sink receives checkpoints, may be nil.
	Sink trace.Sink

	// Log receives warnings, defaults to the logrus standard logger.
	Log logrus.FieldLogger
}

// Result describes an ingested problem.
type Result struct {
	State State

	// header counts
	Vars    int
	Clauses int

	// Read is the number of clauses read.
	Read int

	Tree     *guard.Tree
	Warnings []string
}

type ingester struct {
	in   *lex.Reader
	side *Side
	s    inter.S
	opts Options
	res  *Result

	tree *guard.Tree
	// active is the id of the guard receiving clauses, and the
	// number of guards closed so far.
	active    int
	left      int
	unbounded bool

	// maxVar bounds the variables clauses may reference, -1 if
	// the single guard may grow.
	maxVar int
	lits   []z.Lit
	start  time.Time
}

// Ingest reads a dimacs cnf problem from r into s, partitioning
// variables and clauses by the guards given in opts.Side.
//
// s should have no variables and no clauses.  Ingest returns
// a non-nil Result whenever the header was read, even with an
// error.  Errors are *diag.Error values.
func Ingest(r io.Reader, s inter.S, opts Options) (*Result, error) {
	if opts.Log == nil {
		opts.Log = logrus.StandardLogger()
	}
	if opts.Sink == nil {
		opts.Sink = trace.Nop{}
	}
	ig := &ingester{
		in:     lex.New(r),
		s:      s,
		opts:   opts,
		res:    &Result{},
		maxVar: -1,
		lits:   make([]z.Lit, 0, 16),
		start:  time.Now()}
	if opts.Side != nil {
		ig.side = NewSide(opts.Side)
	}
	if e := ig.run(); e != nil {
		return ig.result(), e
	}
	return ig.res, nil
}

func (ig *ingester) result() *Result {
	if ig.res.State == AwaitingHeader {
		return nil
	}
	return ig.res
}

func (ig *ingester) run() error {
	in := ig.in
	for {
		in.SkipWhitespace()
		if in.EOF() {
			break
		}
		switch in.Peek() {
		case 'c':
			in.SkipLine()
		case '%':
			// end of instance marker in some benchmark suites.
			in.SkipLine()
			return ig.finish()
		case 'p':
			if e := ig.header(); e != nil {
				return e
			}
		default:
			if e := ig.clause(); e != nil {
				return e
			}
		}
	}
	if e := in.Err(); e != nil {
		return diag.Wrap(diag.KindIO, e, "reading cnf")
	}
	return ig.finish()
}

func (ig *ingester) header() error {
	in := ig.in
	line := in.Line()
	if ig.res.State != AwaitingHeader {
		return diag.New(diag.KindHeader, "line %d: second header", line)
	}
	in.Advance()
	blank := false
	for in.Peek() == ' ' || in.Peek() == '\t' {
		in.Advance()
		blank = true
	}
	if !blank || !in.MatchPrefix("cnf") {
		return diag.New(diag.KindHeader, "line %d: expected 'p cnf'", line)
	}
	nv, e := in.ParseInt()
	if e != nil {
		return diag.Wrap(diag.KindHeader, e, "variable count")
	}
	nc, e := in.ParseInt()
	if e != nil {
		return diag.Wrap(diag.KindHeader, e, "clause count")
	}
	if nv < 0 || nc < 0 {
		return diag.New(diag.KindHeader, "line %d: negative count in 'p cnf %d %d'", line, nv, nc)
	}
	if in.Line() != line {
		return diag.New(diag.KindHeader, "line %d: incomplete header", line)
	}
	ig.res.Vars, ig.res.Clauses = nv, nc
	ig.res.State = ReadingClauses
	if ig.side != nil || ig.opts.Strict {
		ig.maxVar = nv
	}
	return ig.guards()
}

func (ig *ingester) guards() error {
	sink := ig.opts.Sink
	if ig.side == nil {
		ig.tree = guard.Single()
		ig.res.Tree = ig.tree
		sink.TreeClosed(ig.tree)
		if e := guard.AssignVars(ig.tree, []int{ig.res.Vars}, ig.res.Vars); e != nil {
			return e
		}
		sink.RangesAssigned(ig.tree)
		ig.unbounded = true
		return nil
	}
	t, e := ig.side.ReadTopology()
	if e != nil {
		return e
	}
	ig.tree = t
	ig.res.Tree = t
	sink.TreeClosed(t)
	if e := ig.side.ReadVars(t, ig.res.Vars); e != nil {
		return e
	}
	sink.RangesAssigned(t)
	if ig.side.Len() == 0 {
		ig.unbounded = true
		return nil
	}
	return ig.pull()
}

// pull reads quotas for the active guard, closing guards which
// own no clauses, until a guard with clauses is active or all
// guards are closed.
func (ig *ingester) pull() error {
	for ig.active < ig.tree.Len() {
		q, e := ig.side.Quota()
		if e != nil {
			return e
		}
		if q > 0 {
			ig.left = q
			return nil
		}
		ig.tree.SetClauseEnd(ig.active, ig.s.LastCRef())
		ig.active++
	}
	return nil
}

func (ig *ingester) clause() error {
	if ig.res.State != ReadingClauses {
		return diag.New(diag.KindHeader, "line %d: clause before header", ig.in.Line())
	}
	if !ig.unbounded && ig.active >= ig.tree.Len() {
		return diag.New(diag.KindQuota, "line %d: clause %d after all %d guards closed",
			ig.in.Line(), ig.res.Read+1, ig.tree.Len())
	}
	var e error
	ig.lits, e = ReadClause(ig.in, ig.s, ig.lits[:0], ig.maxVar)
	if e != nil {
		return e
	}
	c := ig.s.AddClause(ig.lits)
	ig.res.Read++
	if ig.unbounded {
		return nil
	}
	ig.left--
	if ig.left > 0 {
		return nil
	}
	ig.tree.SetClauseEnd(ig.active, c)
	ig.active++
	return ig.pull()
}

func (ig *ingester) warn(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	ig.res.Warnings = append(ig.res.Warnings, msg)
	ig.opts.Log.WithField("line", ig.in.Line()).Warn(msg)
}

func (ig *ingester) finish() error {
	res := ig.res
	if res.State == AwaitingHeader {
		return diag.New(diag.KindHeader, "missing 'p cnf' header")
	}
	t := ig.tree
	n := t.Len()
	last := ig.s.LastCRef()
	if ig.unbounded {
		t.SetClauseEnd(n-1, last)
		ig.active = n
	}
	if ig.active < n {
		return diag.New(diag.KindQuota, "end of input with guard %d awaiting %d clauses", ig.active, ig.left)
	}
	if ig.active != n {
		return diag.New(diag.KindQuota, "closed %d guards, declared %d", ig.active, n)
	}
	if end := t.Get(n - 1).ClauseEnd; end != last {
		return diag.New(diag.KindRange, "last clause range ends at %s, last clause is %s", end, last)
	}
	if e := ig.fitVars(); e != nil {
		return e
	}
	if e := t.Check(ig.s.NumVars(), last); e != nil {
		return e
	}
	if res.Read != res.Clauses {
		if ig.opts.Strict {
			return diag.New(diag.KindClauseCount, "header declares %d clauses, read %d", res.Clauses, res.Read)
		}
		ig.warn("header declares %d clauses, read %d", res.Clauses, res.Read)
	}
	res.State = Done
	ig.opts.Sink.Done(t, &trace.Summary{
		DeclaredVars:    res.Vars,
		DeclaredClauses: res.Clauses,
		Vars:            ig.s.NumVars(),
		Clauses:         res.Read,
		Guards:          n,
		Warnings:        len(res.Warnings),
		Dur:             time.Since(ig.start)})
	return nil
}

// fitVars makes the number of solver variables match the guard
// variable ranges.  Variables declared but never referenced are
// allocated.  Referenced variables beyond the declared ones are
// an error unless there is no guard stream and ingestion is not
// strict, in which case the range of the single guard grows.  A
// guard stream declaring 0 or 1 guards fixes the variable count.
func (ig *ingester) fitVars() error {
	t := ig.tree
	want := t.Get(t.Len()-1).VarEnd + 1
	have := ig.s.NumVars()
	if have > want {
		if ig.opts.Strict || ig.side != nil || t.Len() != 1 {
			return diag.New(diag.KindRange, "clauses reference %d variables, guards own %d", have, want)
		}
		ig.warn("clauses reference %d variables, header declares %d", have, want)
		t.Get(0).VarEnd = have - 1
		return nil
	}
	for ig.s.NumVars() < want {
		ig.s.NewVar()
	}
	return nil
}
