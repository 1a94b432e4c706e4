// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package backend provides solvers which receive ingested
// variables and clauses.
package backend

import (
	"github.com/go-air/gini"
	"github.com/go-air/gini/z"

	"github.com/go-air/gcnf/inter"
)

// Gini feeds ingested clauses to a gini solver.
type Gini struct {
	g        *gini.Gini
	nVars    int
	nClauses int
}

// NewGini creates a Gini backend around a fresh gini solver.
func NewGini() *Gini {
	return &Gini{g: gini.New()}
}

// Solver returns the underlying gini solver.
func (b *Gini) Solver() *gini.Gini {
	return b.g
}

// NewVar implements inter.Vars.
func (b *Gini) NewVar() z.Var {
	b.nVars++
	return z.Var(b.nVars)
}

// NumVars implements inter.Vars.
func (b *Gini) NumVars() int {
	return b.nVars
}

// AddClause implements inter.Adder.  The clause is
// added to gini as the literals of ms followed by
// z.LitNull.
func (b *Gini) AddClause(ms []z.Lit) inter.CRef {
	for _, m := range ms {
		b.g.Add(m)
	}
	b.g.Add(z.LitNull)
	c := inter.CRef(b.nClauses)
	b.nClauses++
	return c
}

// LastCRef implements inter.Adder.
func (b *Gini) LastCRef() inter.CRef {
	return inter.CRef(b.nClauses - 1)
}
