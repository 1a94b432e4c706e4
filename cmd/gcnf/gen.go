// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/go-air/gcnf/gen"
)

func newGenCmd(ev *env) *cobra.Command {
	var (
		p    gen.Params
		seed int64
	)
	cmd := &cobra.Command{
		Use:   "gen <cnf-out> <guards-out>",
		Short: "generate a random guarded instance",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if p.Guards < 1 {
				return errors.Errorf("--guards must be positive, got %d", p.Guards)
			}
			gen.Seed(seed)
			in := gen.Rand(p)
			if e := writeFile(args[0], in.WriteCnf); e != nil {
				return e
			}
			return writeFile(args[1], in.WriteGuards)
		},
	}
	fs := cmd.Flags()
	fs.IntVar(&p.Guards, "guards", 8, "number of guards")
	fs.IntVar(&p.MaxVars, "max-vars", 8, "maximum variables per guard")
	fs.IntVar(&p.MaxClauses, "max-clauses", 16, "maximum clauses per guard")
	fs.IntVar(&p.Width, "width", 3, "maximum literals per clause")
	fs.Int64Var(&seed, "seed", 33, "random seed")
	return cmd
}

func writeFile(path string, write func(io.Writer) error) (err error) {
	f, e := os.Create(path)
	if e != nil {
		return e
	}
	defer func() {
		if ce := f.Close(); err == nil {
			err = ce
		}
	}()
	return write(f)
}
