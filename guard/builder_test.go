// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package guard

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-air/gcnf/diag"
	"github.com/go-air/gcnf/inter"
)

// randPreorder generates the preorder child counts of a random
// tree with n nodes.
func randPreorder(r *rand.Rand, n int) []int {
	t := newTree(n)
	for i := 1; i < n; i++ {
		t.Guards[i].Parent = r.Intn(i)
	}
	return Flatten(t)
}

func TestBuildTopologyProps(t *testing.T) {
	r := rand.New(rand.NewSource(33))
	for n := 1; n < 200; n += 1 + n/8 {
		for k := 0; k < 8; k++ {
			seq := randPreorder(r, n)
			tree, err := BuildTopology(seq)
			require.NoError(t, err, "seq %v", seq)
			assert.Equal(t, n, tree.Len())
			roots, sum := 0, 0
			for i := range tree.Guards {
				g := tree.Get(i)
				if g.Parent == NoParent {
					roots++
				} else {
					assert.Less(t, g.Parent, g.ID)
				}
				sum += g.Children
			}
			assert.Equal(t, 1, roots)
			assert.Equal(t, n-1, sum)
			if d := cmp.Diff(seq, Flatten(tree)); d != "" {
				t.Errorf("flatten round trip (-want +got):\n%s", d)
			}
			require.NoError(t, tree.Check(0, inter.CRefNull))
		}
	}
}

func TestBuildTopologyThreeGuards(t *testing.T) {
	tree, err := BuildTopology([]int{2, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, []int{NoParent, 0, 0}, tree.Parents())
	assert.Equal(t, 2, tree.Root().Children)
	assert.Equal(t, []int{1, 2}, tree.ChildrenOf(0))
}

func TestBuildTopologyChain(t *testing.T) {
	tree, err := BuildTopology([]int{1, 2, 0, 1, 0})
	require.NoError(t, err)
	assert.Equal(t, []int{NoParent, 0, 1, 1, 3}, tree.Parents())
	assert.Equal(t, 3, tree.Depth(4))
}

func TestBuildTopologyTrivial(t *testing.T) {
	for _, seq := range [][]int{nil, {0}} {
		tree, err := BuildTopology(seq)
		require.NoError(t, err)
		assert.Equal(t, 1, tree.Len())
		assert.Equal(t, NoParent, tree.Root().Parent)
		assert.Equal(t, 0, tree.Root().Children)
	}
}

func TestBuildTopologyMalformed(t *testing.T) {
	for _, seq := range [][]int{
		{1, 0, 0}, // closed before the third guard
		{2, 0},    // root awaits a child
		{1},       // single guard with a child
		{0, 0},
		{1, -1},
		{3, 1, 0, 0},
	} {
		_, err := BuildTopology(seq)
		assert.True(t, diag.Is(err, diag.KindTopology), "seq %v: %v", seq, err)
	}
}

func TestBuilderStickyError(t *testing.T) {
	b := NewBuilder(2)
	require.NoError(t, b.Push(0))
	e1 := b.Push(0)
	require.Error(t, e1)
	assert.Equal(t, e1, b.Push(0))
	_, e2 := b.Close()
	assert.Equal(t, e1, e2)
}

func TestBuilderShort(t *testing.T) {
	b := NewBuilder(3)
	require.NoError(t, b.Push(2))
	require.NoError(t, b.Push(0))
	assert.Equal(t, 2, b.Discovered())
	_, err := b.Close()
	assert.True(t, diag.Is(err, diag.KindTopology))
}
