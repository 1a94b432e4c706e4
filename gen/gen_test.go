// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gen

import (
	"bytes"
	"io"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-air/gcnf/backend"
	"github.com/go-air/gcnf/dimacs"
	"github.com/go-air/gcnf/guard"
	"github.com/go-air/gcnf/inter"
)

func TestRandIngests(t *testing.T) {
	log := logrus.New()
	log.Out = io.Discard
	r := rand.New(rand.NewSource(11))
	for k := 0; k < 40; k++ {
		in := RandR(r, Params{Guards: 1 + r.Intn(20), MaxVars: 4, MaxClauses: 5, Width: 3})
		var cnf, side bytes.Buffer
		require.NoError(t, in.WriteCnf(&cnf))
		require.NoError(t, in.WriteGuards(&side))

		m := backend.NewMem()
		res, err := dimacs.Ingest(&cnf, m, dimacs.Options{Strict: true, Side: &side, Log: log})
		require.NoError(t, err, "instance %d", k)
		if d := cmp.Diff(in.Parents, res.Tree.Parents()); d != "" {
			t.Fatalf("parents (-gen +ingested):\n%s", d)
		}
		assert.Equal(t, in.Children, guard.Flatten(res.Tree))
		assert.Equal(t, in.Vars, m.NumVars())
		assert.Equal(t, len(in.Clauses), m.Len())

		// each clause only mentions variables in scope of its guard.
		g := 0
		for c := 0; c < m.Len(); c++ {
			for res.Tree.Get(g).ClauseEnd < inter.CRef(c) {
				g++
			}
			for _, d := range m.Dimacs(inter.CRef(c)) {
				if d < 0 {
					d = -d
				}
				o := res.Tree.OwnerOfVar(d - 1)
				assert.True(t, isAncestorOrSelf(res.Tree, o, g), "clause %d guard %d var %d", c, g, d)
			}
		}
	}
}

func isAncestorOrSelf(t *guard.Tree, a, g int) bool {
	for ; g != guard.NoParent; g = t.Get(g).Parent {
		if g == a {
			return true
		}
	}
	return false
}

func TestWriteGuards(t *testing.T) {
	in := &Instance{Children: []int{2, 0, 0}, Owned: []int{1, 2, 3}, Quotas: []int{1, 1, 2}}
	var buf bytes.Buffer
	require.NoError(t, in.WriteGuards(&buf))
	assert.Equal(t, "3\n2 0 0\n1 2 3\n1 1 2\n", buf.String())
}

func TestSeed(t *testing.T) {
	p := Params{Guards: 6, MaxVars: 3, MaxClauses: 3}
	Seed(5)
	a := Rand(p)
	Seed(5)
	b := Rand(p)
	assert.Equal(t, a, b)
}
