// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package inter

import "fmt"

// Type CRef identifies an added clause.  Both backends hand
// out references in order of acceptance starting from 0.
type CRef int32

// CRefNull is the reference of "no clause".
const CRefNull CRef = -1

func (c CRef) String() string {
	if c == CRefNull {
		return "c-"
	}
	return fmt.Sprintf("c%d", int32(c))
}
