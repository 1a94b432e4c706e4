// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package guard

import (
	"github.com/go-air/gcnf/diag"
	"github.com/go-air/gcnf/inter"
)

// VarAssigner computes variable range ends one guard at a time,
// in id order.
type VarAssigner struct {
	t    *Tree
	next int
	end  int
}

// NewVarAssigner creates a VarAssigner for t.
func NewVarAssigner(t *Tree) *VarAssigner {
	return &VarAssigner{t: t, end: -1}
}

// Next records that the next guard directly owns n variables.
func (a *VarAssigner) Next(n int) error {
	if a.next >= a.t.Len() {
		return diag.New(diag.KindRange, "variable count for guard %d beyond %d guards", a.next, a.t.Len())
	}
	if n < 0 {
		return diag.New(diag.KindRange, "guard %d: negative variable count %d", a.next, n)
	}
	a.end += n
	a.t.Guards[a.next].VarEnd = a.end
	a.next++
	return nil
}

// Close checks that all guards received a count and that the
// last range ends at variable index total-1.
func (a *VarAssigner) Close(total int) error {
	if a.next != a.t.Len() {
		return diag.New(diag.KindRange, "got variable counts for %d of %d guards", a.next, a.t.Len())
	}
	if a.end != total-1 {
		return diag.New(diag.KindRange, "guards own %d variables, header declares %d", a.end+1, total)
	}
	return nil
}

// AssignVars sets the variable range ends of t from the number of
// variables each guard owns directly, given in id order.
func AssignVars(t *Tree, owned []int, total int) error {
	a := NewVarAssigner(t)
	for _, n := range owned {
		if e := a.Next(n); e != nil {
			return e
		}
	}
	return a.Close(total)
}

// AssignClauses sets the clause range ends of t from the number of
// clauses each guard owns directly, given in id order, assuming
// clause references are handed out in order starting from 0.
//
// AssignClauses is a helper for building trees whose clause counts
// are known up front; ingestion records clause ends as clauses
// arrive, with SetClauseEnd.
func AssignClauses(t *Tree, quotas []int, total int) error {
	if len(quotas) != t.Len() {
		return diag.New(diag.KindQuota, "got clause counts for %d of %d guards", len(quotas), t.Len())
	}
	end := -1
	for i, q := range quotas {
		if q < 0 {
			return diag.New(diag.KindQuota, "guard %d: negative clause count %d", i, q)
		}
		end += q
		t.Guards[i].ClauseEnd = inter.CRef(end)
	}
	if end != total-1 {
		return diag.New(diag.KindRange, "guards own %d clauses, expected %d", end+1, total)
	}
	return nil
}
