// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package dimacs

import (
	"io"

	"github.com/pkg/errors"

	"github.com/go-air/gcnf/diag"
	"github.com/go-air/gcnf/guard"
	"github.com/go-air/gcnf/lex"
)

// Side reads a guard stream.  Its methods must be called in
// stream order: ReadTopology, ReadVars, then Quota once per guard.
type Side struct {
	r      *lex.Reader
	n      int
	quotas int
}

// NewSide creates a Side reading from r.
func NewSide(r io.Reader) *Side {
	return &Side{r: lex.New(r)}
}

// Len returns the number of guards declared by the stream, valid
// after ReadTopology.
func (s *Side) Len() int {
	return s.n
}

func (s *Side) next(k diag.Kind, what string) (int, error) {
	v, e := s.r.ParseInt()
	if e == nil {
		return v, nil
	}
	if s.r.Err() != nil {
		return 0, diag.Wrap(diag.KindIO, e, "guard stream: "+what)
	}
	if errors.Is(e, io.ErrUnexpectedEOF) {
		return 0, diag.Wrap(k, e, "guard stream: "+what)
	}
	return 0, diag.Wrap(diag.KindSyntax, e, "guard stream: "+what)
}

// ReadTopology reads the guard count and child counts and
// reconstructs the guard tree.  A guard count of 0 gives a
// single guard and no further counts are read for it.
func (s *Side) ReadTopology() (*guard.Tree, error) {
	n, e := s.next(diag.KindTopology, "guard count")
	if e != nil {
		return nil, e
	}
	if n < 0 {
		return nil, diag.New(diag.KindTopology, "negative guard count %d", n)
	}
	s.n = n
	b := guard.NewBuilder(n)
	for b.Discovered() < b.Len() {
		k, e := s.next(diag.KindTopology, "child count")
		if e != nil {
			return nil, e
		}
		if e := b.Push(k); e != nil {
			return nil, e
		}
	}
	return b.Close()
}

// ReadVars reads the number of variables owned by each guard of t
// and assigns variable ranges, which must cover total variables.
func (s *Side) ReadVars(t *guard.Tree, total int) error {
	a := guard.NewVarAssigner(t)
	for i := 0; i < s.n; i++ {
		k, e := s.next(diag.KindRange, "variable count")
		if e != nil {
			return e
		}
		if e := a.Next(k); e != nil {
			return e
		}
	}
	if s.n == 0 {
		return guard.AssignVars(t, []int{total}, total)
	}
	return a.Close(total)
}

// Quota reads the number of clauses owned by the next guard.
func (s *Side) Quota() (int, error) {
	if s.quotas >= s.n {
		return 0, diag.New(diag.KindQuota, "clause count for guard %d beyond %d guards", s.quotas, s.n)
	}
	q, e := s.next(diag.KindQuota, "clause count")
	if e != nil {
		return 0, e
	}
	if q < 0 {
		return 0, diag.New(diag.KindQuota, "guard %d: negative clause count %d", s.quotas, q)
	}
	s.quotas++
	return q, nil
}
