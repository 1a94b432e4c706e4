// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package guard

// Flatten returns the child counts of t's guards in preorder,
// visiting children in increasing id order.  For a tree built
// by a Builder, Flatten returns the pushed child counts.
func Flatten(t *Tree) []int {
	n := t.Len()
	kids := make([][]int, n)
	for i := 1; i < n; i++ {
		p := t.Guards[i].Parent
		kids[p] = append(kids[p], i)
	}
	res := make([]int, 0, n)
	stack := []int{0}
	for len(stack) > 0 {
		g := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		res = append(res, len(kids[g]))
		ks := kids[g]
		for j := len(ks) - 1; j >= 0; j-- {
			stack = append(stack, ks[j])
		}
	}
	return res
}

// ChildrenOf returns the ids of the direct children of guard i,
// in increasing order.  It scans the guards after i and is meant
// for inspecting small trees; ingestion does not use it.
func (t *Tree) ChildrenOf(i int) []int {
	var res []int
	for j := i + 1; j < t.Len(); j++ {
		if t.Guards[j].Parent == i {
			res = append(res, j)
		}
	}
	return res
}
