package report_test

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/modalcorr/correlation"
	"github.com/katalvlaran/modalcorr/internal/report"
)

// macTable returns a 2×2 MAC table with frequencies.
func macTable(t *testing.T) *correlation.Matrix {
	t.Helper()
	m, err := correlation.New(2, 2, correlation.MAC, correlation.WithFrequencies())
	require.NoError(t, err)
	for i, n := range []string{"r1", "r2"} {
		require.NoError(t, m.SetRowName(i, n))
		require.NoError(t, m.SetRowFrequency(i, float64(10*(i+1))))
	}
	for j, n := range []string{"c1", "c2"} {
		require.NoError(t, m.SetColName(j, n))
		require.NoError(t, m.SetColFrequency(j, float64(11*(j+1))))
	}
	vals := [][]float64{{0.1, 0.95}, {0.8, 0.2}}
	for i := range vals {
		for j := range vals[i] {
			require.NoError(t, m.Set(i, j, vals[i][j]))
		}
	}

	return m
}

func TestConnectionTable(t *testing.T) {
	conn, err := macTable(t).MatchGreedy(math.Inf(-1))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.Connection(&buf, report.Header{}, conn, report.FormatTable))
	out := buf.String()

	for _, want := range []string{"first", "f1", "last", "f2", "mac", "r1", "c2", "0.95", "r2", "c1", "0.8", "mean 0.875", "(2 pairs)"} {
		assert.Contains(t, out, want)
	}
	assert.Less(t, strings.Index(out, "r1"), strings.Index(out, "r2"), "best pair first")
}

func TestConnectionWithoutFrequencies(t *testing.T) {
	m, err := correlation.New(1, 1, correlation.Distance)
	require.NoError(t, err)
	require.NoError(t, m.SetRowName(0, "n1"))
	require.NoError(t, m.SetColName(0, "m1"))
	require.NoError(t, m.Set(0, 0, 0.1))
	conn, err := m.MatchGreedy(0.5)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.Connection(&buf, report.Header{}, conn, report.FormatCSV))
	assert.Contains(t, buf.String(), "#,first,last,distance")
	assert.Contains(t, buf.String(), "1,n1,m1,0.1")
	assert.NotContains(t, buf.String(), "f1")
}

func TestConnectionMarkdown(t *testing.T) {
	conn, err := macTable(t).MatchGreedy(0.9)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.Connection(&buf, report.Header{}, conn, report.FormatMarkdown))
	assert.True(t, strings.HasPrefix(buf.String(), "| #"))
	assert.Contains(t, buf.String(), "r1")
	assert.NotContains(t, buf.String(), "r2", "pair below tolerance is dropped")
}

func TestConnectionJSON(t *testing.T) {
	conn, err := macTable(t).MatchGreedy(0.9)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.Connection(&buf, report.Header{Scenario: "beam", Tolerance: 0.9}, conn, report.FormatJSON))

	var got report.Summary
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "beam", got.Scenario)
	assert.Equal(t, "mac", got.Metric)
	assert.Equal(t, "maximize", got.Direction)
	require.NotNil(t, got.Tolerance)
	assert.Equal(t, 0.9, *got.Tolerance)
	require.Len(t, got.Pairs, 1)
	assert.Equal(t, "r1", got.Pairs[0].First)
	require.NotNil(t, got.Pairs[0].LastFrequency)
	assert.Equal(t, 22.0, *got.Pairs[0].LastFrequency)
	require.NotNil(t, got.Stats)
	assert.Equal(t, 1, got.Stats.Count)
}

func TestSummaryOmitsInfiniteTolerance(t *testing.T) {
	conn, err := macTable(t).MatchGreedy(math.Inf(-1))
	require.NoError(t, err)

	s := report.NewSummary(report.Header{Tolerance: math.Inf(-1)}, conn)
	assert.Nil(t, s.Tolerance)

	var buf bytes.Buffer
	require.NoError(t, report.Connection(&buf, report.Header{Tolerance: math.Inf(-1)}, conn, report.FormatJSON))
	assert.NotContains(t, buf.String(), "tolerance")
}

func TestEmptyConnection(t *testing.T) {
	conn, err := macTable(t).MatchGreedy(2)
	require.NoError(t, err)
	require.True(t, conn.IsEmpty())

	var buf bytes.Buffer
	require.NoError(t, report.Connection(&buf, report.Header{}, conn, report.FormatTable))
	assert.Contains(t, buf.String(), "(0 pairs)")

	buf.Reset()
	require.NoError(t, report.Connection(&buf, report.Header{}, conn, report.FormatJSON))
	assert.Contains(t, buf.String(), `"pairs": []`)
	assert.NotContains(t, buf.String(), "stats")
}

func TestMatrix(t *testing.T) {
	arranged := macTable(t).Arrange()

	var plain bytes.Buffer
	require.NoError(t, report.Matrix(&plain, arranged, report.FormatTable, report.MatrixOptions{}))
	assert.Contains(t, plain.String(), "0.95")
	assert.NotContains(t, plain.String(), "\x1b[")
	assert.Less(t, strings.Index(plain.String(), "r1"), strings.Index(plain.String(), "r2"))

	var colored bytes.Buffer
	require.NoError(t, report.Matrix(&colored, arranged, report.FormatTable, report.MatrixOptions{Color: true}))
	assert.Contains(t, colored.String(), "0.95")

	var doc bytes.Buffer
	require.NoError(t, report.Matrix(&doc, arranged, report.FormatJSON, report.MatrixOptions{}))
	var got struct {
		Rows   []string    `json:"rows"`
		Values [][]float64 `json:"values"`
	}
	require.NoError(t, json.Unmarshal(doc.Bytes(), &got))
	assert.Equal(t, []string{"r1", "r2"}, got.Rows)
	assert.Equal(t, 0.95, got.Values[0][0])

	require.Error(t, report.Matrix(&doc, arranged, "xml", report.MatrixOptions{}))
}
