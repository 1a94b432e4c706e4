// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package guard

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-air/gcnf/diag"
	"github.com/go-air/gcnf/inter"
)

func TestAssignVarsThreeGuards(t *testing.T) {
	tree, err := BuildTopology([]int{2, 0, 0})
	require.NoError(t, err)
	require.NoError(t, AssignVars(tree, []int{1, 2, 3}, 6))
	ends := []int{}
	for i := range tree.Guards {
		ends = append(ends, tree.Get(i).VarEnd)
	}
	assert.Equal(t, []int{0, 2, 5}, ends)

	s, e := tree.VarRange(1)
	assert.Equal(t, 1, s)
	assert.Equal(t, 3, e)
	assert.Equal(t, 0, tree.OwnerOfVar(0))
	assert.Equal(t, 1, tree.OwnerOfVar(2))
	assert.Equal(t, 2, tree.OwnerOfVar(5))
	assert.Equal(t, -1, tree.OwnerOfVar(6))
}

func TestAssignVarsSingle(t *testing.T) {
	tree := Single()
	require.NoError(t, AssignVars(tree, []int{7}, 7))
	assert.Equal(t, 6, tree.Root().VarEnd)
	require.NoError(t, AssignClauses(tree, []int{4}, 4))
	assert.Equal(t, inter.CRef(3), tree.Root().ClauseEnd)
	require.NoError(t, tree.Check(7, 3))
}

func TestAssignVarsMismatch(t *testing.T) {
	tree, err := BuildTopology([]int{1, 0})
	require.NoError(t, err)
	err = AssignVars(tree, []int{1, 2}, 4)
	assert.True(t, diag.Is(err, diag.KindRange), "%v", err)
	err = AssignVars(tree, []int{1, -1}, 0)
	assert.True(t, diag.Is(err, diag.KindRange), "%v", err)
	err = AssignVars(tree, []int{1}, 1)
	assert.True(t, diag.Is(err, diag.KindRange), "%v", err)
	err = AssignVars(tree, []int{1, 1, 1}, 3)
	assert.True(t, diag.Is(err, diag.KindRange), "%v", err)
}

func TestRangesMonotone(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for k := 0; k < 50; k++ {
		n := 1 + r.Intn(40)
		tree, err := BuildTopology(randPreorder(r, n))
		require.NoError(t, err)
		owned, quotas := make([]int, n), make([]int, n)
		nv, nc := 0, 0
		for i := 0; i < n; i++ {
			owned[i], quotas[i] = r.Intn(4), r.Intn(3)
			nv += owned[i]
			nc += quotas[i]
		}
		require.NoError(t, AssignVars(tree, owned, nv))
		require.NoError(t, AssignClauses(tree, quotas, nc))
		require.NoError(t, tree.Check(nv, inter.CRef(nc-1)))
		for i := 1; i < n; i++ {
			assert.LessOrEqual(t, tree.Get(i-1).VarEnd, tree.Get(i).VarEnd)
			assert.LessOrEqual(t, tree.Get(i-1).ClauseEnd, tree.Get(i).ClauseEnd)
		}
	}
}

func TestCheckDetectsBadParent(t *testing.T) {
	tree, err := BuildTopology([]int{1, 0})
	require.NoError(t, err)
	tree.Get(1).Parent = 1
	assert.True(t, diag.Is(tree.Check(0, inter.CRefNull), diag.KindTopology))
}

func TestDump(t *testing.T) {
	tree, err := BuildTopology([]int{1, 0})
	require.NoError(t, err)
	require.NoError(t, AssignVars(tree, []int{0, 2}, 2))
	require.NoError(t, AssignClauses(tree, []int{1, 0}, 1))
	var buf bytes.Buffer
	require.NoError(t, tree.Dump(&buf))
	assert.Equal(t, "g 0 -1 1 -1 0\ng 1 0 0 1 0\n", buf.String())
}
