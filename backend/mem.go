// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package backend

import (
	"github.com/go-air/gini/z"

	"github.com/go-air/gcnf/inter"
)

// Mem keeps ingested clauses in memory, in order.
type Mem struct {
	nVars int
	Lits  []z.Lit
	Ends  []int
}

// NewMem creates an empty Mem.
func NewMem() *Mem {
	return &Mem{}
}

// NewVar implements inter.Vars.
func (m *Mem) NewVar() z.Var {
	m.nVars++
	return z.Var(m.nVars)
}

// NumVars implements inter.Vars.
func (m *Mem) NumVars() int {
	return m.nVars
}

// AddClause implements inter.Adder.
func (m *Mem) AddClause(ms []z.Lit) inter.CRef {
	m.Lits = append(m.Lits, ms...)
	m.Ends = append(m.Ends, len(m.Lits))
	return inter.CRef(len(m.Ends) - 1)
}

// LastCRef implements inter.Adder.
func (m *Mem) LastCRef() inter.CRef {
	return inter.CRef(len(m.Ends) - 1)
}

// Len returns the number of clauses.
func (m *Mem) Len() int {
	return len(m.Ends)
}

// Clause returns the literals of clause c.  The result
// aliases internal storage.
func (m *Mem) Clause(c inter.CRef) []z.Lit {
	start := 0
	if c > 0 {
		start = m.Ends[c-1]
	}
	return m.Lits[start:m.Ends[c]]
}

// Dimacs returns clause c in dimacs integer form.
func (m *Mem) Dimacs(c inter.CRef) []int {
	ms := m.Clause(c)
	res := make([]int, len(ms))
	for i, l := range ms {
		res[i] = l.Dimacs()
	}
	return res
}
