// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package guard

import (
	"fmt"
	"io"

	"github.com/go-air/gcnf/inter"
)

// NoParent is the parent of the root guard.
const NoParent = -1

// Guard is a node in a Tree.
type Guard struct {
	ID       int
	Parent   int
	Children int

	// VarEnd is the largest 0-based variable index owned by this
	// guard or any guard with a smaller id, -1 if there is none.
	VarEnd int

	// ClauseEnd is the last clause owned by this guard or any guard
	// with a smaller id, inter.CRefNull if there is none.
	ClauseEnd inter.CRef
}

func (g *Guard) String() string {
	return fmt.Sprintf("g%d", g.ID)
}

// Tree is a rooted tree of guards indexed by id.
type Tree struct {
	Guards []Guard
}

// Single returns a tree consisting of only a root guard.
func Single() *Tree {
	return newTree(1)
}

func newTree(n int) *Tree {
	t := &Tree{Guards: make([]Guard, n)}
	for i := range t.Guards {
		g := &t.Guards[i]
		g.ID = i
		g.Parent = NoParent
		g.VarEnd = -1
		g.ClauseEnd = inter.CRefNull
	}
	return t
}

// Len returns the number of guards.
func (t *Tree) Len() int {
	return len(t.Guards)
}

// Root returns the root guard.
func (t *Tree) Root() *Guard {
	return &t.Guards[0]
}

// Get returns the guard with id i.
func (t *Tree) Get(i int) *Guard {
	return &t.Guards[i]
}

// Parents returns the parent of each guard, in id order.
func (t *Tree) Parents() []int {
	res := make([]int, len(t.Guards))
	for i := range t.Guards {
		res[i] = t.Guards[i].Parent
	}
	return res
}

// Depth returns the number of edges between guard i and the root.
func (t *Tree) Depth(i int) int {
	d := 0
	for p := t.Guards[i].Parent; p != NoParent; p = t.Guards[p].Parent {
		d++
	}
	return d
}

// VarRange returns the half open range [start, end) of 0-based
// variable indices owned directly by guard i.
func (t *Tree) VarRange(i int) (start, end int) {
	start = 0
	if i > 0 {
		start = t.Guards[i-1].VarEnd + 1
	}
	return start, t.Guards[i].VarEnd + 1
}

// OwnerOfVar returns the id of the guard owning 0-based variable
// index v, or -1 if no guard does.
func (t *Tree) OwnerOfVar(v int) int {
	lo, hi := 0, len(t.Guards)
	for lo < hi {
		mid := (lo + hi) / 2
		if t.Guards[mid].VarEnd < v {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo == len(t.Guards) || v < 0 {
		return -1
	}
	return lo
}

// SetClauseEnd records c as the clause range end of guard i.
func (t *Tree) SetClauseEnd(i int, c inter.CRef) {
	t.Guards[i].ClauseEnd = c
}

// Dump writes one line per guard:
//
//	g <id> <parent> <children> <varEnd> <clauseEnd>
//
// with the root's parent written as -1.
func (t *Tree) Dump(w io.Writer) error {
	for i := range t.Guards {
		g := &t.Guards[i]
		if _, e := fmt.Fprintf(w, "g %d %d %d %d %d\n", g.ID, g.Parent, g.Children, g.VarEnd, int32(g.ClauseEnd)); e != nil {
			return e
		}
	}
	return nil
}
