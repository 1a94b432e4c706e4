// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package guard

import (
	"github.com/go-air/gcnf/diag"
	"github.com/go-air/gcnf/inter"
)

// Check verifies the tree invariants of t and that its ranges
// partition nVars variables and the clauses up to last.
func (t *Tree) Check(nVars int, last inter.CRef) error {
	n := t.Len()
	if n == 0 {
		return diag.New(diag.KindTopology, "empty tree")
	}
	if t.Guards[0].Parent != NoParent {
		return diag.New(diag.KindTopology, "root has parent %d", t.Guards[0].Parent)
	}
	kids := make([]int, n)
	for i := 1; i < n; i++ {
		p := t.Guards[i].Parent
		if p < 0 || p >= i {
			return diag.New(diag.KindTopology, "guard %d has parent %d", i, p)
		}
		kids[p]++
	}
	sum := 0
	for i := range t.Guards {
		if kids[i] != t.Guards[i].Children {
			return diag.New(diag.KindTopology, "guard %d has %d children, records %d", i, kids[i], t.Guards[i].Children)
		}
		sum += kids[i]
	}
	if sum != n-1 {
		return diag.New(diag.KindTopology, "child counts sum to %d for %d guards", sum, n)
	}
	pv, pc := -1, inter.CRefNull
	for i := range t.Guards {
		g := &t.Guards[i]
		if g.VarEnd < pv {
			return diag.New(diag.KindRange, "guard %d: variable range end %d before %d", i, g.VarEnd, pv)
		}
		if g.ClauseEnd < pc {
			return diag.New(diag.KindRange, "guard %d: clause range end %s before %s", i, g.ClauseEnd, pc)
		}
		pv, pc = g.VarEnd, g.ClauseEnd
	}
	if pv != nVars-1 {
		return diag.New(diag.KindRange, "variable ranges end at %d, want %d", pv, nVars-1)
	}
	if pc != last {
		return diag.New(diag.KindRange, "clause ranges end at %s, want %s", pc, last)
	}
	return nil
}
