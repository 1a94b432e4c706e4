// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package gen generates random guarded cnf instances, for testing
// and benchmarking ingestion.
//
// In a generated instance, each clause of a guard only mentions
// variables owned by the guard or by one of its ancestors.
package gen
