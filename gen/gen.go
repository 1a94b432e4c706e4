// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gen

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"sync"
)

// make the rng seedable
var rng = rand.New(rand.NewSource(33))
var mu sync.Mutex

func Seed(s int64) {
	mu.Lock()
	defer mu.Unlock()
	rng = rand.New(rand.NewSource(s))
}

// Instance is a cnf together with the guard stream partitioning it.
type Instance struct {
	Vars     int
	Parents  []int
	Children []int // preorder child counts
	Owned    []int // variables owned per guard
	Quotas   []int // clauses owned per guard
	Clauses  [][]int
}

// Guards returns the number of guards.
func (in *Instance) Guards() int {
	return len(in.Children)
}

// Params bound the size of generated instances.
type Params struct {
	Guards     int
	MaxVars    int // per guard
	MaxClauses int // per guard
	Width      int // literals per clause, at most
}

// Rand generates a random instance with the package rng.
func Rand(p Params) *Instance {
	mu.Lock() // for package rng
	defer mu.Unlock()
	return RandR(rng, p)
}

// RandR generates a random instance using r.
func RandR(r *rand.Rand, p Params) *Instance {
	n := p.Guards
	if n < 1 {
		n = 1
	}
	in := &Instance{
		Parents:  make([]int, n),
		Children: make([]int, n),
		Owned:    make([]int, n),
		Quotas:   make([]int, n)}
	in.Parents[0] = -1
	// preorder: the parent of guard i is i-1 or one of its ancestors.
	for i := 1; i < n; i++ {
		q := i - 1
		for q > 0 && r.Intn(3) == 0 {
			q = in.Parents[q]
		}
		in.Parents[i] = q
		in.Children[q]++
	}
	starts := make([]int, n)
	for i := 0; i < n; i++ {
		starts[i] = in.Vars
		if p.MaxVars > 0 {
			in.Owned[i] = r.Intn(p.MaxVars + 1)
		}
		in.Vars += in.Owned[i]
	}
	width := p.Width
	if width < 1 {
		width = 3
	}
	scope := make([]int, 0, 64)
	for i := 0; i < n; i++ {
		scope = scope[:0]
		for g := i; g != -1; g = in.Parents[g] {
			for v := 0; v < in.Owned[g]; v++ {
				scope = append(scope, starts[g]+v+1)
			}
		}
		if len(scope) == 0 || p.MaxClauses <= 0 {
			continue
		}
		in.Quotas[i] = r.Intn(p.MaxClauses + 1)
		for j := 0; j < in.Quotas[i]; j++ {
			in.Clauses = append(in.Clauses, randClause(r, scope, width))
		}
	}
	return in
}

// randClause picks up to w literals over distinct variables of scope.
func randClause(r *rand.Rand, scope []int, w int) []int {
	k := 1 + r.Intn(w)
	if k > len(scope) {
		k = len(scope)
	}
	res := make([]int, 0, k)
	for len(res) < k {
		v := scope[r.Intn(len(scope))]
		dup := false
		for _, m := range res {
			if m == v || m == -v {
				dup = true
				break
			}
		}
		if dup {
			continue
		}
		if r.Intn(2) == 0 {
			v = -v
		}
		res = append(res, v)
	}
	return res
}

// WriteCnf writes the clauses of in in dimacs format.
func (in *Instance) WriteCnf(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "p cnf %d %d\n", in.Vars, len(in.Clauses))
	for _, c := range in.Clauses {
		for _, m := range c {
			fmt.Fprintf(bw, "%d ", m)
		}
		fmt.Fprintf(bw, "0\n")
	}
	return bw.Flush()
}

// WriteGuards writes the guard stream of in.
func (in *Instance) WriteGuards(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n", in.Guards())
	for _, ns := range [][]int{in.Children, in.Owned, in.Quotas} {
		for i, n := range ns {
			if i > 0 {
				bw.WriteByte(' ')
			}
			fmt.Fprintf(bw, "%d", n)
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
