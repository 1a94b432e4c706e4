// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runWith(t *testing.T, stdin string, args ...string) (int, string, string) {
	var out, errOut bytes.Buffer
	code := run(args, &env{stdin: strings.NewReader(stdin), stdout: &out, stderr: &errOut})
	return code, out.String(), errOut.String()
}

func tmp(t *testing.T, name, body string) string {
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0644))
	return p
}

const cnf3 = "p cnf 6 4\n1 0\n-2 3 0\n4 -5 0\n6 1 0\n"

func TestIngest(t *testing.T) {
	g := tmp(t, "p.guards", "3 2 0 0 1 2 3 1 1 2\n")
	code, out, _ := runWith(t, cnf3, "ingest", "--guards", g, "--log-level", "error", "-")
	require.Equal(t, 0, code)
	assert.Equal(t, "g 0 -1 2 0 0\ng 1 0 0 2 1\ng 2 0 0 5 3\n", out)
}

func TestIngestMetrics(t *testing.T) {
	p := tmp(t, "p.cnf", cnf3)
	code, out, _ := runWith(t, "", "ingest", "--metrics", "--backend", "mem", "--log-level", "error", p)
	require.Equal(t, 0, code)
	assert.True(t, strings.HasPrefix(out, "g 0 -1 0 5 3\nc metrics\n"), out)
	assert.Contains(t, out, "gcnf_clauses 4")
}

func TestIngestConfig(t *testing.T) {
	g := tmp(t, "p.guards", "3 2 0 0 1 2 3 1 1 2\n")
	cfg := tmp(t, "gcnf.yaml", "guards: "+g+"\nstrict: true\nlog: {level: error}\n")
	code, out, _ := runWith(t, "p cnf 6 5\n1 0\n-2 3 0\n4 -5 0\n6 1 0\n", "ingest", "--config", cfg, "-")
	assert.Equal(t, 6, code, out)

	code, _, _ = runWith(t, cnf3, "ingest", "--config", cfg, "--strict=false", "-")
	assert.Equal(t, 0, code)
}

func TestIngestExitCodes(t *testing.T) {
	for _, tc := range []struct {
		cnf, guards string
		code        int
	}{
		{"p cnf 1\n", "", 3},
		{"p cnf 1 1\n1 x 0\n", "", 4},
		{"p cnf 2 1\n1 0\n", "3 1 0 0 1 1 0 1 0 0", 5},
		{"p cnf 2 3\n1 0\n2 0\n1 2 0\n", "2 1 0 1 1 1 1", 5},
	} {
		args := []string{"ingest", "--log-level", "panic", "-"}
		if tc.guards != "" {
			args = append(args, "-g", tmp(t, "g", tc.guards))
		}
		code, _, stderr := runWith(t, tc.cnf, args...)
		assert.Equal(t, tc.code, code, "%q: %s", tc.cnf, stderr)
	}
}

func TestIngestMissingFile(t *testing.T) {
	code, _, stderr := runWith(t, "", "ingest", filepath.Join(t.TempDir(), "none.cnf"))
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "none.cnf")

	code, _, _ = runWith(t, "", "ingest", "p.cnf.gz")
	assert.Equal(t, 1, code)
}

func TestTopology(t *testing.T) {
	code, out, _ := runWith(t, "4 2 1 0 0\n", "topology", "-")
	require.Equal(t, 0, code)
	assert.Equal(t, "g 0 -1 2 0\ng 1 0 1 1\ng 2 1 0 2\ng 3 0 0 1\n", out)

	code, _, _ = runWith(t, "3 1 0\n", "topology", "-")
	assert.Equal(t, 5, code)
}

func TestVersion(t *testing.T) {
	code, out, _ := runWith(t, "", "version")
	assert.Equal(t, 0, code)
	assert.Equal(t, version+"\n", out)
}

func TestGenThenIngest(t *testing.T) {
	dir := t.TempDir()
	cnf, g := filepath.Join(dir, "r.cnf"), filepath.Join(dir, "r.guards")
	code, _, stderr := runWith(t, "", "gen", "--guards", "12", "--seed", "3", cnf, g)
	require.Equal(t, 0, code, stderr)
	code, out, stderr := runWith(t, "", "ingest", "--strict", "--log-level", "error", "-g", g, cnf)
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, 12, strings.Count(out, "\n"))

	code, _, _ = runWith(t, "", "gen", "--guards", "0", cnf, g)
	assert.Equal(t, 1, code)
}
