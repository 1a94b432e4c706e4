// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package config holds gcnf settings, read from a yaml file and
// overridden by command line flags.
package config

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// Config holds the settings of an ingestion run.
type Config struct {
	// Guards is the path of the guard stream, empty for none.
	Guards string `yaml:"guards"`

	// Strict makes header clause count mismatches fatal.
	Strict bool `yaml:"strict"`

	// Backend is "gini" or "mem".
	Backend string `yaml:"backend"`

	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

// MetricsConfig configures metrics output.
type MetricsConfig struct {
	// Enabled prints prometheus metrics after ingestion.
	Enabled bool `yaml:"enabled"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Backend: "gini",
		Log:     LogConfig{Level: "info"},
	}
}

// Load reads the yaml file at path over the defaults.
func Load(path string) (*Config, error) {
	c := Default()
	d, e := os.ReadFile(path)
	if e != nil {
		return nil, errors.Wrap(e, "reading config")
	}
	if e := yaml.Unmarshal(d, c); e != nil {
		return nil, errors.Wrapf(e, "parsing config %s", path)
	}
	if e := c.Validate(); e != nil {
		return nil, errors.Wrapf(e, "config %s", path)
	}
	return c, nil
}

// Validate checks c for unknown values.
func (c *Config) Validate() error {
	switch c.Backend {
	case "gini", "mem":
	default:
		return errors.Errorf("unknown backend %q", c.Backend)
	}
	if _, e := logrus.ParseLevel(c.Log.Level); e != nil {
		return e
	}
	return nil
}

// AddFlags registers flags bound to c on fs.  Flag values given
// on the command line override values loaded before parsing.
func (c *Config) AddFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&c.Guards, "guards", "g", c.Guards, "guard stream file")
	fs.BoolVar(&c.Strict, "strict", c.Strict, "fail on header clause count mismatch")
	fs.StringVar(&c.Backend, "backend", c.Backend, "clause sink: gini or mem")
	fs.StringVar(&c.Log.Level, "log-level", c.Log.Level, "log level")
	fs.BoolVar(&c.Log.JSON, "log-json", c.Log.JSON, "log in json")
	fs.BoolVar(&c.Metrics.Enabled, "metrics", c.Metrics.Enabled, "print prometheus metrics after ingestion")
}

// Merge copies into c the values of other whose flags were not
// set explicitly in fs.
func (c *Config) Merge(other *Config, fs *pflag.FlagSet) {
	if !fs.Changed("guards") {
		c.Guards = other.Guards
	}
	if !fs.Changed("strict") {
		c.Strict = other.Strict
	}
	if !fs.Changed("backend") {
		c.Backend = other.Backend
	}
	if !fs.Changed("log-level") {
		c.Log.Level = other.Log.Level
	}
	if !fs.Changed("log-json") {
		c.Log.JSON = other.Log.JSON
	}
	if !fs.Changed("metrics") {
		c.Metrics.Enabled = other.Metrics.Enabled
	}
}

// Logger creates a logger as configured.  Text output prefixes
// lines with "c " so logs may be interleaved with dimacs output.
func (c *Config) Logger() (*logrus.Logger, error) {
	l := logrus.New()
	l.Out = os.Stderr
	lvl, e := logrus.ParseLevel(c.Log.Level)
	if e != nil {
		return nil, e
	}
	l.SetLevel(lvl)
	if c.Log.JSON {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&prefixFormatter{
			prefix: "c [gcnf] ",
			inner:  &logrus.TextFormatter{DisableTimestamp: true, DisableColors: true}})
	}
	return l, nil
}

type prefixFormatter struct {
	prefix string
	inner  logrus.Formatter
}

func (f *prefixFormatter) Format(e *logrus.Entry) ([]byte, error) {
	b, err := f.inner.Format(e)
	if err != nil {
		return nil, err
	}
	return append([]byte(f.prefix), b...), nil
}
