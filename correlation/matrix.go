package correlation

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/modalcorr/matrix"
)

// Matrix is the score table between a first item set (rows) and a last item
// set (columns). Row/column names and frequencies always move together.
//
// Invariants:
//   - rowFreq/colFreq are nil, or len(rowFreq) == Rows() and len(colFreq) == Cols().
//   - lower ≤ upper.
//   - Every cell is finite (the store rejects NaN/±Inf).
type Matrix struct {
	tab     *matrix.Labeled
	rowFreq []float64
	colFreq []float64
	metric  Metric
	lower   float64
	upper   float64
	log     *slog.Logger
}

// New creates a rows×cols table of zeros for the given metric.
// Frequencies are allocated when WithFrequencies is passed.
// Complexity: O(rows*cols).
func New(rows, cols int, metric Metric, opts ...Option) (*Matrix, error) {
	tab, err := matrix.NewLabeled(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("correlation.New: %w", err)
	}
	o := gatherOptions(opts...)
	m := &Matrix{
		tab:    tab,
		metric: metric,
		lower:  o.lower,
		upper:  o.upper,
		log:    o.logger,
	}
	if o.frequencies {
		m.rowFreq = make([]float64, rows)
		m.colFreq = make([]float64, cols)
	}

	return m, nil
}

// Rows returns the number of first-set items.
func (m *Matrix) Rows() int { return m.tab.Rows() }

// Cols returns the number of last-set items.
func (m *Matrix) Cols() int { return m.tab.Cols() }

// IsEmpty reports whether the table holds no cells.
func (m *Matrix) IsEmpty() bool { return m.tab.IsEmpty() }

// Clear resets the table to 0×0; frequencies (if any) become empty.
func (m *Matrix) Clear() {
	m.tab.Clear()
	if m.rowFreq != nil {
		m.rowFreq = []float64{}
		m.colFreq = []float64{}
	}
}

// Metric returns the metric the table was scored with.
func (m *Matrix) Metric() Metric { return m.metric }

// Direction returns the comparison direction of the metric.
func (m *Matrix) Direction() Direction { return m.metric.Direction() }

// HasFrequencies reports whether rows and columns carry frequencies.
func (m *Matrix) HasFrequencies() bool { return m.rowFreq != nil }

// At returns the score of (first item i, last item j).
func (m *Matrix) At(i, j int) (float64, error) { return m.tab.At(i, j) }

// Set stores the score of (first item i, last item j).
func (m *Matrix) Set(i, j int, v float64) error { return m.tab.Set(i, j, v) }

// RowName returns the name of first item i.
func (m *Matrix) RowName(i int) (string, error) { return m.tab.RowName(i) }

// SetRowName names first item i.
func (m *Matrix) SetRowName(i int, name string) error { return m.tab.SetRowName(i, name) }

// ColName returns the name of last item j.
func (m *Matrix) ColName(j int) (string, error) { return m.tab.ColName(j) }

// SetColName names last item j.
func (m *Matrix) SetColName(j int, name string) error { return m.tab.SetColName(j, name) }

// RowNames returns a copy of the first-item names.
func (m *Matrix) RowNames() []string { return m.tab.RowNames() }

// ColNames returns a copy of the last-item names.
func (m *Matrix) ColNames() []string { return m.tab.ColNames() }

// Row returns a copy of the scores of first item i.
func (m *Matrix) Row(i int) ([]float64, error) { return m.tab.Row(i) }

// RowFrequency returns the frequency of first item i.
func (m *Matrix) RowFrequency(i int) (float64, error) {
	if m.rowFreq == nil {
		return 0, fmt.Errorf("Matrix.RowFrequency(%d): %w", i, ErrNoFrequencies)
	}
	if i < 0 || i >= len(m.rowFreq) {
		return 0, fmt.Errorf("Matrix.RowFrequency(%d): %w", i, matrix.ErrIndexOutOfBounds)
	}

	return m.rowFreq[i], nil
}

// SetRowFrequency sets the frequency of first item i.
func (m *Matrix) SetRowFrequency(i int, f float64) error {
	if m.rowFreq == nil {
		return fmt.Errorf("Matrix.SetRowFrequency(%d): %w", i, ErrNoFrequencies)
	}
	if i < 0 || i >= len(m.rowFreq) {
		return fmt.Errorf("Matrix.SetRowFrequency(%d): %w", i, matrix.ErrIndexOutOfBounds)
	}
	m.rowFreq[i] = f

	return nil
}

// ColFrequency returns the frequency of last item j.
func (m *Matrix) ColFrequency(j int) (float64, error) {
	if m.colFreq == nil {
		return 0, fmt.Errorf("Matrix.ColFrequency(%d): %w", j, ErrNoFrequencies)
	}
	if j < 0 || j >= len(m.colFreq) {
		return 0, fmt.Errorf("Matrix.ColFrequency(%d): %w", j, matrix.ErrIndexOutOfBounds)
	}

	return m.colFreq[j], nil
}

// SetColFrequency sets the frequency of last item j.
func (m *Matrix) SetColFrequency(j int, f float64) error {
	if m.colFreq == nil {
		return fmt.Errorf("Matrix.SetColFrequency(%d): %w", j, ErrNoFrequencies)
	}
	if j < 0 || j >= len(m.colFreq) {
		return fmt.Errorf("Matrix.SetColFrequency(%d): %w", j, matrix.ErrIndexOutOfBounds)
	}
	m.colFreq[j] = f

	return nil
}

// Tolerances returns the display tolerances (lower, upper).
func (m *Matrix) Tolerances() (lower, upper float64) { return m.lower, m.upper }

// SetTolerances replaces the display tolerances.
// lower > upper (or a non-finite bound) is rejected with ErrInvalidTolerance
// and the previous values are kept.
func (m *Matrix) SetTolerances(lower, upper float64) error {
	if !validTolerances(lower, upper) {
		return fmt.Errorf("Matrix.SetTolerances(%g,%g): %w", lower, upper, ErrInvalidTolerance)
	}
	m.lower, m.upper = lower, upper

	return nil
}

// Band classifies cell (i,j) against the display tolerances.
func (m *Matrix) Band(i, j int) (Band, error) {
	v, err := m.tab.At(i, j)
	if err != nil {
		return BandMid, err
	}
	switch {
	case v < m.lower:
		return BandLow, nil
	case v > m.upper:
		return BandHigh, nil
	default:
		return BandMid, nil
	}
}

// SwapRows exchanges first items a and b: scores, names and frequencies.
func (m *Matrix) SwapRows(a, b int) error {
	if err := m.tab.SwapRows(a, b); err != nil {
		return err
	}
	if m.rowFreq != nil {
		m.rowFreq[a], m.rowFreq[b] = m.rowFreq[b], m.rowFreq[a]
	}

	return nil
}

// SwapCols exchanges last items a and b: scores, names and frequencies.
func (m *Matrix) SwapCols(a, b int) error {
	if err := m.tab.SwapCols(a, b); err != nil {
		return err
	}
	if m.colFreq != nil {
		m.colFreq[a], m.colFreq[b] = m.colFreq[b], m.colFreq[a]
	}

	return nil
}

// SortRows reorders/filters first items by name (see matrix.Labeled.SortRows),
// carrying frequencies along.
func (m *Matrix) SortRows(keys []string) error {
	plan := m.tab.RowPlan(keys)
	if err := m.tab.SelectRows(plan); err != nil {
		return err
	}
	m.rowFreq = matrix.PickFloats(m.rowFreq, plan)

	return nil
}

// SortCols reorders/filters last items by name, carrying frequencies along.
func (m *Matrix) SortCols(keys []string) error {
	plan := m.tab.ColPlan(keys)
	if err := m.tab.SelectCols(plan); err != nil {
		return err
	}
	m.colFreq = matrix.PickFloats(m.colFreq, plan)

	return nil
}

// Clone returns an independent deep copy.
func (m *Matrix) Clone() *Matrix {
	cp := *m
	cp.tab = m.tab.Clone()
	cp.rowFreq = cloneFloats(m.rowFreq)
	cp.colFreq = cloneFloats(m.colFreq)

	return &cp
}

// cloneFloats copies src, keeping nil as nil and empty as empty.
func cloneFloats(src []float64) []float64 {
	if src == nil {
		return nil
	}
	out := make([]float64, len(src))
	copy(out, src)

	return out
}

// String renders the underlying labeled table.
func (m *Matrix) String() string { return m.tab.String() }
