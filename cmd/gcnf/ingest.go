// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/go-air/gcnf/backend"
	"github.com/go-air/gcnf/config"
	"github.com/go-air/gcnf/dimacs"
	"github.com/go-air/gcnf/inter"
	"github.com/go-air/gcnf/metrics"
	"github.com/go-air/gcnf/trace"
)

func newIngestCmd(ev *env) *cobra.Command {
	c := config.Default()
	var cfgPath string
	cmd := &cobra.Command{
		Use:   "ingest <input>",
		Short: "ingest a cnf input with its guard stream",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfgPath != "" {
				fc, e := config.Load(cfgPath)
				if e != nil {
					return e
				}
				c.Merge(fc, cmd.Flags())
			}
			if e := c.Validate(); e != nil {
				return e
			}
			return ingest(ev, c, args[0])
		},
	}
	cmd.Flags().StringVar(&cfgPath, "config", "", "yaml configuration file")
	c.AddFlags(cmd.Flags())
	return cmd
}

func ingest(ev *env, c *config.Config, path string) error {
	log, e := c.Logger()
	if e != nil {
		return e
	}
	log.Out = ev.stderr

	r, e := path2Reader(path, ev.stdin)
	if e != nil {
		return e
	}
	defer r.Close()
	opts := dimacs.Options{Strict: c.Strict, Log: log}
	if c.Guards != "" {
		side, e := path2Reader(c.Guards, ev.stdin)
		if e != nil {
			return e
		}
		defer side.Close()
		opts.Side = side
	}

	sinks := trace.Multi{trace.Log{L: log}}
	reg := prometheus.NewRegistry()
	if c.Metrics.Enabled {
		ms, e := metrics.NewSink(reg)
		if e != nil {
			return e
		}
		sinks = append(sinks, ms)
	}
	opts.Sink = sinks

	var s inter.S
	switch c.Backend {
	case "mem":
		s = backend.NewMem()
	default:
		s = backend.NewGini()
	}

	start := time.Now()
	res, e := dimacs.Ingest(r, s, opts)
	if e != nil {
		return e
	}
	log.WithFields(logrus.Fields{
		"input":   path,
		"vars":    s.NumVars(),
		"clauses": res.Read,
		"guards":  res.Tree.Len(),
	}).Infof("ingested in %s", time.Since(start))

	if e := res.Tree.Dump(ev.stdout); e != nil {
		return e
	}
	if c.Metrics.Enabled {
		return writeMetrics(ev.stdout, reg)
	}
	return nil
}

func writeMetrics(w io.Writer, reg *prometheus.Registry) error {
	if _, e := fmt.Fprintln(w, "c metrics"); e != nil {
		return e
	}
	return metrics.WriteText(w, reg)
}
