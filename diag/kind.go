// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package diag

// Kind classifies ingestion failures.
type Kind uint32

const (
	KindNone Kind = iota
	KindIO
	KindHeader
	KindSyntax
	KindTopology
	KindRange
	KindQuota
	KindClauseCount
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindIO:
		return "i/o"
	case KindHeader:
		return "header"
	case KindSyntax:
		return "syntax"
	case KindTopology:
		return "topology"
	case KindRange:
		return "range consistency"
	case KindQuota:
		return "quota underrun"
	case KindClauseCount:
		return "clause count mismatch"
	default:
		return "unknown"
	}
}

// Structural reports whether k signals an inconsistency between
// the clause stream and the guard stream.
func (k Kind) Structural() bool {
	switch k {
	case KindTopology, KindRange, KindQuota:
		return true
	}
	return false
}

// ExitCode gives the process exit status for a failure of kind k.
//
//	0 no failure
//	1 i/o or usage
//	3 malformed or missing header
//	4 malformed clause or side stream token
//	5 topology, range or quota inconsistency
//	6 clause count mismatch in strict mode
func (k Kind) ExitCode() int {
	switch k {
	case KindNone:
		return 0
	case KindHeader:
		return 3
	case KindSyntax:
		return 4
	case KindTopology, KindRange, KindQuota:
		return 5
	case KindClauseCount:
		return 6
	default:
		return 1
	}
}
