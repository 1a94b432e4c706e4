// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-air/gcnf/dimacs"
)

func newTopologyCmd(ev *env) *cobra.Command {
	return &cobra.Command{
		Use:   "topology <guards>",
		Short: "reconstruct the guard tree of a guard stream",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, e := path2Reader(args[0], ev.stdin)
			if e != nil {
				return e
			}
			defer r.Close()
			t, e := dimacs.NewSide(r).ReadTopology()
			if e != nil {
				return e
			}
			for i := range t.Guards {
				g := t.Get(i)
				fmt.Fprintf(ev.stdout, "g %d %d %d %d\n", g.ID, g.Parent, g.Children, t.Depth(i))
			}
			return nil
		},
	}
}
