// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package inter

import "github.com/go-air/gini/z"

// Vars encapsulates something which allocates
// variables on demand.
type Vars interface {
	// NewVar allocates the next variable.  Variables are
	// allocated densely starting from z.Var(1), so the
	// 0-based index of the result is NumVars()-1 after
	// the call.
	NewVar() z.Var

	// NumVars returns the number of allocated variables.
	NumVars() int
}

// Adder encapsulates something to which whole clauses
// can be added.
type Adder interface {
	// AddClause adds the clause ms and returns its reference.
	// AddClause does not retain ms.
	AddClause(ms []z.Lit) CRef

	// LastCRef returns the reference of the last added
	// clause, or CRefNull if none was added.
	LastCRef() CRef
}

// S is the solver side of ingestion: a sink for variables
// and clauses.
type S interface {
	Vars
	Adder
}
