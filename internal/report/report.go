// Package report renders matching results as text tables, Markdown, CSV or JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/katalvlaran/modalcorr/correlation"
)

// Formats accepted by Connection and Matrix.
const (
	FormatTable    = "table"
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
	FormatCSV      = "csv"
)

// Summary is the JSON document written for a connection.
type Summary struct {
	Scenario  string    `json:"scenario,omitempty"`
	Metric    string    `json:"metric"`
	Direction string    `json:"direction"`
	Tolerance *float64  `json:"tolerance,omitempty"`
	Pairs     []PairRow `json:"pairs"`
	Stats     *StatsRow `json:"stats,omitempty"`
}

// StatsRow is correlation.Stats in JSON form.
type StatsRow struct {
	Count int     `json:"count"`
	Mean  float64 `json:"mean"`
	Best  float64 `json:"best"`
	Worst float64 `json:"worst"`
}

// PairRow is one connection pair in JSON form.
type PairRow struct {
	First          string   `json:"first"`
	FirstFrequency *float64 `json:"first_frequency,omitempty"`
	Last           string   `json:"last"`
	LastFrequency  *float64 `json:"last_frequency,omitempty"`
	Score          float64  `json:"score"`
}

// Header describes the run a connection came from.
type Header struct {
	Scenario  string
	Tolerance float64
}

// NewSummary converts a connection into its JSON document.
// Infinite tolerances (accept everything) are omitted.
func NewSummary(h Header, conn *correlation.Connection) Summary {
	s := Summary{
		Scenario:  h.Scenario,
		Metric:    conn.Metric().String(),
		Direction: conn.Direction().String(),
		Pairs:     make([]PairRow, 0, conn.Len()),
	}
	if !math.IsInf(h.Tolerance, 0) && !math.IsNaN(h.Tolerance) {
		tol := h.Tolerance
		s.Tolerance = &tol
	}
	conn.Do(func(_ int, p correlation.Pair) bool {
		row := PairRow{First: p.First, Last: p.Last, Score: p.Score}
		if conn.HasFrequencies() {
			f1, f2 := p.FirstFrequency, p.LastFrequency
			row.FirstFrequency, row.LastFrequency = &f1, &f2
		}
		s.Pairs = append(s.Pairs, row)
		return true
	})
	if !conn.IsEmpty() {
		st := conn.Stats()
		s.Stats = &StatsRow{Count: st.Count, Mean: st.Mean, Best: st.Best, Worst: st.Worst}
	}

	return s
}

// Connection writes conn to w in format.
func Connection(w io.Writer, h Header, conn *correlation.Connection, format string) error {
	if format == FormatJSON {
		return renderJSON(w, NewSummary(h, conn))
	}

	t := newWriter(w)
	header := table.Row{"#", "first"}
	if conn.HasFrequencies() {
		header = append(header, "f1")
	}
	header = append(header, "last")
	if conn.HasFrequencies() {
		header = append(header, "f2")
	}
	header = append(header, conn.Metric().String())
	t.AppendHeader(header)

	conn.Do(func(i int, p correlation.Pair) bool {
		row := table.Row{i + 1, p.First}
		if conn.HasFrequencies() {
			row = append(row, formatFloat(p.FirstFrequency))
		}
		row = append(row, p.Last)
		if conn.HasFrequencies() {
			row = append(row, formatFloat(p.LastFrequency))
		}
		t.AppendRow(append(row, formatFloat(p.Score)))
		return true
	})

	if !conn.IsEmpty() && format == FormatTable {
		st := conn.Stats()
		footer := make(table.Row, len(header))
		for i := range footer {
			footer[i] = ""
		}
		footer[1] = fmt.Sprintf("mean %s", formatFloat(st.Mean))
		footer[len(footer)-1] = fmt.Sprintf("best %s / worst %s", formatFloat(st.Best), formatFloat(st.Worst))
		t.AppendFooter(footer)
	}

	if err := render(t, format); err != nil {
		return err
	}
	if format == FormatTable {
		_, _ = fmt.Fprintf(w, "(%d pairs)\n", conn.Len())
	}

	return nil
}

// MatrixOptions tunes Matrix.
type MatrixOptions struct {
	// Color paints table cells by their Band.
	Color bool
}

// matrixDoc is the JSON form of a score table.
type matrixDoc struct {
	Metric string      `json:"metric"`
	Rows   []string    `json:"rows"`
	Cols   []string    `json:"cols"`
	Values [][]float64 `json:"values"`
}

// Matrix writes the score table cm to w in format. Callers usually pass
// cm.Arrange() so that matched pairs sit on the diagonal.
func Matrix(w io.Writer, cm *correlation.Matrix, format string, o MatrixOptions) error {
	if format == FormatJSON {
		doc := matrixDoc{
			Metric: cm.Metric().String(),
			Rows:   cm.RowNames(),
			Cols:   cm.ColNames(),
			Values: make([][]float64, cm.Rows()),
		}
		for i := range doc.Values {
			doc.Values[i], _ = cm.Row(i)
		}

		return renderJSON(w, doc)
	}

	t := newWriter(w)
	header := table.Row{""}
	for _, c := range cm.ColNames() {
		header = append(header, c)
	}
	t.AppendHeader(header)

	colorize := o.Color && format == FormatTable
	for i, name := range cm.RowNames() {
		row := table.Row{name}
		for j := 0; j < cm.Cols(); j++ {
			v, _ := cm.At(i, j)
			cell := formatFloat(v)
			if colorize {
				band, _ := cm.Band(i, j)
				cell = bandColors(band, cm.Direction()).Sprint(cell)
			}
			row = append(row, cell)
		}
		t.AppendRow(row)
	}

	return render(t, format)
}

// bandColors paints good scores green and poor ones red; mid stays yellow.
func bandColors(b correlation.Band, dir correlation.Direction) text.Colors {
	good, poor := correlation.BandHigh, correlation.BandLow
	if dir == correlation.Minimize {
		good, poor = poor, good
	}
	switch b {
	case good:
		return text.Colors{text.FgGreen}
	case poor:
		return text.Colors{text.FgRed}
	default:
		return text.Colors{text.FgYellow}
	}
}

func newWriter(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	style := table.StyleLight
	style.Format.Header = text.FormatDefault
	style.Format.Footer = text.FormatDefault
	t.SetStyle(style)

	return t
}

func render(t table.Writer, format string) error {
	switch format {
	case FormatTable:
		t.Render()
	case FormatMarkdown:
		t.RenderMarkdown()
	case FormatCSV:
		t.RenderCSV()
	default:
		return fmt.Errorf("report: unknown format %q", format)
	}

	return nil
}

func renderJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
