// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package dimacs ingests dimacs cnf problems whose variables and
// clauses are partitioned by a tree of guards.
//
// The guards are described by a second stream of whitespace
// separated integers:
//
//	n                      number of guards
//	k_0 ... k_{n-1}        child counts, in preorder
//	v_0 ... v_{n-1}        number of variables owned by each guard
//	q_0 ... q_{n-1}        number of clauses owned by each guard
//
// The clause counts q_i are read lazily as the clauses of the
// cnf stream are consumed: guard i owns the q_i clauses following
// those of guard i-1.  Without a guard stream, a single guard owns
// all variables and clauses.
package dimacs
