// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoCells = `; two single cells three apart
#..#......
..........
..........
..........
..........
..........
..........
..........
..........
..........
`

// run executes the root command with args and stdin, returning stdout and stderr.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeTemp(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "orgmetrics version "+version+"\n", out)

	out, _, err = run(t, "", "version", "--json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":"`+version+`"}`, out)
}

func TestCompute_HelpMentionsBinaryTokens(t *testing.T) {
	out, _, err := run(t, "", "compute", "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "write 10 as 10.0")
}

func TestCompute_File(t *testing.T) {
	path := writeTemp(t, "grid.txt", twoCells)
	out, logs, err := run(t, "", "compute", path)
	require.NoError(t, err)
	assert.Equal(t, "0 12.000000 7.486483 0.376126 0.568094 0.106859 2 1.000000\n", out)
	assert.Contains(t, logs, "run complete")
	assert.Contains(t, logs, "slices=1")
}

func TestCompute_StdinSeriesJSON(t *testing.T) {
	in := "....\n....\n\n#..#\n....\n"
	out, _, err := run(t, in, "compute", "--json", "--cyclic")
	require.NoError(t, err)

	var rows []map[string]float64
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, 0.0, rows[0]["index"])
	assert.Equal(t, 99.9, rows[0]["scai"])
	assert.Equal(t, 0.0, rows[0]["n"])
	assert.Equal(t, 1.0, rows[1]["index"])
	assert.Equal(t, 1.0, rows[1]["n"])
	assert.Equal(t, 2.0, rows[1]["mean_size"])
}

// TestCompute_ConfigAndFlags: flags win over the config file.
func TestCompute_ConfigAndFlags(t *testing.T) {
	grid := writeTemp(t, "grid.txt", "#.\n.#\n")
	cfg := writeTemp(t, "cfg.yaml", "connectivity: eight\nlogging:\n  level: debug\n")

	out, logs, err := run(t, "", "compute", "--config", cfg, grid)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "0 "))
	assert.Contains(t, out, " 1 2.000000\n")
	assert.Contains(t, logs, "slice computed")

	out, _, err = run(t, "", "compute", "--config", cfg, "--connectivity", "four", grid)
	require.NoError(t, err)
	assert.Contains(t, out, " 2 1.000000\n")
}

// TestCompute_TraceAggregates: trace level adds one record per aggregate.
func TestCompute_TraceAggregates(t *testing.T) {
	grid := writeTemp(t, "grid.txt", twoCells)

	_, logs, err := run(t, "", "compute", "--log-level", "trace", grid)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(logs, "msg=aggregate"))
	assert.Contains(t, logs, "level=TRACE")
	assert.Contains(t, logs, "id=1 cy=0 cx=3 size=1")

	_, logs, err = run(t, "", "compute", "--log-level", "debug", grid)
	require.NoError(t, err)
	assert.Contains(t, logs, "slice computed")
	assert.NotContains(t, logs, "msg=aggregate")
}

func TestCompute_Errors(t *testing.T) {
	_, _, err := run(t, "", "compute")
	assert.ErrorContains(t, err, "no grids")

	_, _, err = run(t, "#.\n..\n\n#..\n...\n", "compute")
	assert.ErrorContains(t, err, "differs")

	_, _, err = run(t, "#.\n", "compute", "--connectivity", "six")
	assert.ErrorContains(t, err, "unknown connectivity")

	_, _, err = run(t, "", "compute", filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
