// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package guard reconstructs trees of nested guards from their
// preorder child count encoding and assigns to each guard the
// cumulative ranges of variables and clauses it owns.
//
// Guards are numbered in preorder, the root is guard 0.  A guard
// owns a contiguous block of variables and a contiguous block of
// clauses.  The blocks of guards 0..i, taken together, are exactly
// the variables [0, VarEnd(i)] and the clauses up to ClauseEnd(i).
package guard
