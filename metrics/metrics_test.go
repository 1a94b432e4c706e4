// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package metrics

import (
	"bytes"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-air/gcnf/guard"
	"github.com/go-air/gcnf/trace"
)

var _ trace.Sink = (*Sink)(nil)

func TestSink(t *testing.T) {
	reg := prometheus.NewRegistry()
	s, err := NewSink(reg)
	require.NoError(t, err)

	tree, err := guard.BuildTopology([]int{1, 1, 0})
	require.NoError(t, err)
	require.NoError(t, guard.AssignVars(tree, []int{1, 2, 3}, 6))
	s.TreeClosed(tree)
	s.RangesAssigned(tree)
	s.Done(tree, &trace.Summary{Vars: 6, Clauses: 4, Guards: 3, Warnings: 1, Dur: time.Millisecond})

	assert.Equal(t, 3.0, testutil.ToFloat64(s.guards))
	assert.Equal(t, 2.0, testutil.ToFloat64(s.depth))
	assert.Equal(t, 6.0, testutil.ToFloat64(s.vars))
	assert.Equal(t, 4.0, testutil.ToFloat64(s.clauses))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.ingestions))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.warnings))

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, reg))
	assert.Contains(t, buf.String(), "gcnf_guards 3")
	assert.Contains(t, buf.String(), "gcnf_guard_variables_count 3")
}

func TestSinkRegisterTwice(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewSink(reg)
	require.NoError(t, err)
	_, err = NewSink(reg)
	assert.Error(t, err)
}
