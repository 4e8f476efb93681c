package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/modalcorr/internal/cli"
	"github.com/katalvlaran/modalcorr/internal/report"
)

const pointScenario = `name: two-points
first:
  points:
    - {name: n1, xyz: [0, 0, 0]}
    - {name: n2, xyz: [1, 0, 0]}
last:
  points:
    - {name: m1, xyz: [0, 0, 0.1]}
    - {name: m2, xyz: [5, 0, 0]}
tolerance: 0.5
`

const modeScenario = `name: beam
first:
  nodes: [p, q]
  modes:
    - {name: a1, frequency: 1.5, shape: [1, 0, 0, 0, 0, 0]}
    - {name: a2, frequency: 3.0, shape: [0, 1, 0, 0, 1, 0]}
last:
  nodes: [p, q]
  modes:
    - {name: b1, frequency: 1.6, shape: [0, 2, 0, 0, 2, 0]}
    - {name: b2, frequency: 2.9, shape: [3, 0, 0, 0, 0, 1]}
`

func writeScenario(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "case.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := cli.NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())

	return out.String(), errOut.String(), err
}

func TestMatchPoints(t *testing.T) {
	path := writeScenario(t, pointScenario)

	out, _, err := run(t, "match", path)
	require.NoError(t, err)
	assert.Contains(t, out, "n1")
	assert.Contains(t, out, "m1")
	assert.NotContains(t, out, "m2")
	assert.Contains(t, out, "(1 pairs)")
}

func TestMatchFlagsOverrideScenario(t *testing.T) {
	path := writeScenario(t, pointScenario)

	out, _, err := run(t, "match", "--scenario", path, "--tolerance", "10", "-o", "json")
	require.NoError(t, err)

	var got report.Summary
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "two-points", got.Scenario)
	assert.Equal(t, "distance", got.Metric)
	assert.Equal(t, "minimize", got.Direction)
	require.Len(t, got.Pairs, 2)
	assert.Equal(t, "n2", got.Pairs[1].First)
	assert.Equal(t, "m2", got.Pairs[1].Last)
}

func TestMatchModes(t *testing.T) {
	path := writeScenario(t, modeScenario)

	out, _, err := run(t, "match", path, "--metric", "mac", "--workers", "2", "--arrange", "-o", "markdown")
	require.NoError(t, err)
	assert.Contains(t, out, "a2")
	assert.Contains(t, out, "b1")
	assert.Contains(t, out, "f1")
	assert.Contains(t, out, "| a1 |", "arranged table rows are named")
}

func TestMatchDebugLogging(t *testing.T) {
	path := writeScenario(t, modeScenario)

	_, logs, err := run(t, "match", path, "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, logs, "greedy match")
	assert.Contains(t, logs, "msg=matched")
}

func TestMatchErrors(t *testing.T) {
	points := writeScenario(t, pointScenario)
	modes := writeScenario(t, modeScenario)

	tests := []struct {
		name string
		args []string
	}{
		{"no scenario", []string{"match"}},
		{"missing file", []string{"match", filepath.Join(t.TempDir(), "nope.yaml")}},
		{"unknown metric", []string{"match", points, "--metric", "cosine"}},
		{"modal metric on points", []string{"match", points, "--metric", "mac"}},
		{"mass metric without mass", []string{"match", modes, "--metric", "ortho"}},
		{"bad output", []string{"match", points, "-o", "xml"}},
		{"bad workers", []string{"match", points, "--workers", "0"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, tt.args...)
			require.Error(t, err)
		})
	}
}

func TestMatchEnvConfig(t *testing.T) {
	path := writeScenario(t, pointScenario)
	t.Setenv("MODALCORR_SCENARIO", path)
	t.Setenv("MODALCORR_OUTPUT", "csv")

	out, _, err := run(t, "match")
	require.NoError(t, err)
	assert.Contains(t, out, "#,first,last,distance")
}

func TestVersionAndMetrics(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "modalcorr "+cli.Version)

	out, _, err = run(t, "metrics")
	require.NoError(t, err)
	for _, want := range []string{"distance", "minimize", "mac", "maximize", "ortho", "needs mass matrix"} {
		assert.Contains(t, out, want)
	}
}
