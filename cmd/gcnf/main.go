// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-air/gcnf/diag"
)

var version = "v0.1.0"

type env struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func newRootCmd(ev *env) *cobra.Command {
	root := &cobra.Command{
		Use:           "gcnf",
		Short:         "ingest guarded dimacs cnf problems",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetIn(ev.stdin)
	root.SetOut(ev.stdout)
	root.SetErr(ev.stderr)
	root.AddCommand(newIngestCmd(ev), newTopologyCmd(ev), newGenCmd(ev), &cobra.Command{
		Use:   "version",
		Short: "print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(ev.stdout, version)
		},
	})
	return root
}

func run(args []string, ev *env) int {
	cmd := newRootCmd(ev)
	cmd.SetArgs(args)
	e := cmd.Execute()
	if e == nil {
		return 0
	}
	fmt.Fprintf(ev.stderr, "c [gcnf] error: %s\n", e)
	return diag.KindOf(e).ExitCode()
}

func main() {
	os.Exit(run(os.Args[1:], &env{stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr}))
}
