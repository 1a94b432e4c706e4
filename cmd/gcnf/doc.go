// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Command gcnf ingests guarded dimacs cnf problems.
//
//	gcnf ingest [flags] <input>
//
// reads a dimacs cnf input and, with -g, the guard stream which
// partitions its variables and clauses, and prints one line per guard
//
//	g <id> <parent> <children> <varEnd> <clauseEnd>
//
// If the input is '-', gcnf reads from stdin.
//
//	gcnf topology <guards>
//
// reconstructs only the guard tree from a guard stream.
//
//	gcnf gen [flags] <cnf-out> <guards-out>
//
// writes a random guarded instance.
//
// Exit statuses are
//
//	0 ok
//	1 i/o or usage error
//	3 missing or malformed header
//	4 malformed clause or guard stream token
//	5 guard topology, range or quota inconsistency
//	6 header clause count mismatch with --strict
package main
