// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package guard

import "github.com/go-air/gcnf/diag"

// open is a guard on the builder stack which still awaits
// some of its children.
type open struct {
	id   int
	left int
}

// Builder reconstructs a Tree from the child counts of its
// guards given in preorder, one at a time.
//
// The zero value is not usable, use NewBuilder.
type Builder struct {
	n     int
	next  int
	tree  *Tree
	stack []open
	err   error
}

// NewBuilder creates a builder for a tree with n guards.  A
// builder for n <= 1 guards produces a single root.
func NewBuilder(n int) *Builder {
	b := &Builder{n: n}
	if n <= 0 {
		b.tree = Single()
		return b
	}
	b.tree = newTree(n)
	b.stack = make([]open, 0, 16)
	return b
}

// Len returns the declared number of guards.
func (b *Builder) Len() int {
	return b.n
}

// Discovered returns the number of guards pushed so far.
func (b *Builder) Discovered() int {
	return b.next
}

// Push gives the child count of the next guard in preorder.
// The parent of the new guard is the innermost open guard.
//
// Once Push returns an error, the builder is unusable and all
// subsequent calls return the same error.
func (b *Builder) Push(children int) error {
	if b.err != nil {
		return b.err
	}
	i := b.next
	switch {
	case children < 0:
		b.err = diag.New(diag.KindTopology, "guard %d: negative child count %d", i, children)
	case i >= b.n:
		b.err = diag.New(diag.KindTopology, "guard %d: more guards than the declared %d", i, b.n)
	case i > 0 && len(b.stack) == 0:
		b.err = diag.New(diag.KindTopology, "guard %d: tree already closed after %d guards", i, i)
	}
	if b.err != nil {
		return b.err
	}
	g := &b.tree.Guards[i]
	if i > 0 {
		top := &b.stack[len(b.stack)-1]
		top.left--
		g.Parent = top.id
		b.tree.Guards[top.id].Children++
	}
	b.stack = append(b.stack, open{id: i, left: children})
	b.next++
	b.closeExhausted()
	return nil
}

func (b *Builder) closeExhausted() {
	for len(b.stack) > 0 && b.stack[len(b.stack)-1].left == 0 {
		b.stack = b.stack[:len(b.stack)-1]
	}
}

// Close finishes reconstruction.  The child counts are well
// formed iff every declared guard was pushed and every guard
// received all its children.
func (b *Builder) Close() (*Tree, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.n <= 0 {
		return b.tree, nil
	}
	if b.next != b.n {
		b.err = diag.New(diag.KindTopology, "got %d of %d child counts", b.next, b.n)
		return nil, b.err
	}
	b.closeExhausted()
	if len(b.stack) != 0 {
		top := b.stack[len(b.stack)-1]
		b.err = diag.New(diag.KindTopology, "guard %d still awaits %d children after %d guards", top.id, top.left, b.n)
		return nil, b.err
	}
	return b.tree, nil
}

// BuildTopology reconstructs a tree from its preorder child counts.
func BuildTopology(children []int) (*Tree, error) {
	b := NewBuilder(len(children))
	for _, c := range children {
		if e := b.Push(c); e != nil {
			return nil, e
		}
	}
	return b.Close()
}
