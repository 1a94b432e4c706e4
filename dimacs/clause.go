// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package dimacs

import (
	"github.com/go-air/gini/z"

	"github.com/go-air/gcnf/diag"
	"github.com/go-air/gcnf/inter"
	"github.com/go-air/gcnf/lex"
)

// ReadClause reads a zero terminated clause from r, appending its
// literals to dst.  Variables not yet known to vs are allocated
// up to and including the largest one referenced.
//
// If max >= 0, a literal whose variable is beyond max is a range
// error and nothing is allocated for it.  With max < 0 any variable
// up to math.MaxInt32 is allocated, one NewVar call at a time.
func ReadClause(r *lex.Reader, vs inter.Vars, dst []z.Lit, max int) ([]z.Lit, error) {
	for {
		d, e := r.ParseInt()
		if e != nil {
			if r.Err() != nil {
				return dst, diag.Wrap(diag.KindIO, e, "reading clause")
			}
			return dst, diag.Wrap(diag.KindSyntax, e, "reading clause")
		}
		if d == 0 {
			return dst, nil
		}
		v := d
		if v < 0 {
			v = -v
		}
		if max >= 0 && v > max {
			return dst, diag.New(diag.KindRange, "line %d: variable %d beyond %d owned by guards", r.Line(), v, max)
		}
		for vs.NumVars() < v {
			vs.NewVar()
		}
		dst = append(dst, z.Dimacs2Lit(d))
	}
}
