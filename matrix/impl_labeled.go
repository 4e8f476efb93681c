// SPDX-License-Identifier: MIT

// Package matrix - Labeled: a Dense table with independently named rows and columns.
//
// Purpose:
//   - Storage substrate for point sets, mode shape sets and score tables.
//   - Name-driven reordering: SortRows/SortCols filter and reorder by an ordered
//     key list, duplicating rows/columns when a key repeats.
//   - Destructive resizing: Rebuild allocates a fresh store; prior cells are lost.
//
// Contracts:
//   - len(rowNames) == Rows(), len(colNames) == Cols() at all times.
//   - Unset ("") names never match a sort key.
//   - RowPlan/ColPlan + SelectRows/SelectCols expose the sort as an index plan so
//     wrappers (ModeSet frequencies, score-table frequencies) apply the same
//     plan to their own per-row/per-column attributes.
//
// Complexity quicksheet:
//   - At/Set/Name accessors: O(1); SwapRows: O(c); SwapCols: O(r);
//   - RowPlan: O(r + k); SortRows: O(r + k + k'·c) for k' selected rows.

package matrix

import (
	"fmt"
	"strings"
)

const (
	ctxLabeled = "Labeled" // type tag used in error wrappers
)

// labeledErrorf wraps err with "Labeled.<method>(a,b)" context.
func labeledErrorf(method string, a, b int, err error) error {
	return fmt.Errorf("%s.%s(%d,%d): %w", ctxLabeled, method, a, b, err)
}

// Labeled is a resizable dense table of float64 values with named rows and columns.
type Labeled struct {
	d        *Dense   // row-major values
	rowNames []string // one per row, Unset when never named
	colNames []string // one per column, Unset when never named
}

// NewLabeled creates a rows×cols table with all values zero and all names unset.
// Zero-sized shapes are legal; negative ones return ErrInvalidDimensions.
// The numeric policy (WithNoValidateNaNInf) is kept across Rebuild and Clone.
// Complexity: Time O(r*c), Space O(r*c).
func NewLabeled(rows, cols int, opts ...Option) (*Labeled, error) {
	if rows < 0 || cols < 0 {
		return nil, labeledErrorf("New", rows, cols, ErrInvalidDimensions)
	}
	o := gatherOptions(opts...)
	d, err := newDenseWithPolicy(rows, cols, o.validateNaNInf)
	if err != nil {
		return nil, err
	}

	return &Labeled{
		d:        d,
		rowNames: make([]string, rows),
		colNames: make([]string, cols),
	}, nil
}

// Rows returns the row count.
func (l *Labeled) Rows() int { return l.d.r }

// Cols returns the column count.
func (l *Labeled) Cols() int { return l.d.c }

// IsEmpty reports whether the table holds no cells (rows == 0 or cols == 0).
func (l *Labeled) IsEmpty() bool { return l.d.r == 0 || l.d.c == 0 }

// Clear resets the table to 0×0, dropping every value and name.
func (l *Labeled) Clear() {
	l.d = &Dense{validateNaNInf: l.d.validateNaNInf, data: []float64{}}
	l.rowNames = []string{}
	l.colNames = []string{}
}

// Rebuild replaces the store with a fresh zero-filled rows×cols one.
// MAIN DESCRIPTION:
//   - Destructive resize: every previous cell value is discarded, even when the
//     shape is unchanged. There is deliberately no resize-preserving variant.
//
// Behavior highlights:
//   - Names on an axis whose length changes are reset to Unset.
//   - Names on an axis whose length is unchanged are kept.
//
// Errors:
//   - ErrInvalidDimensions for negative sizes (table left untouched).
//
// Complexity:
//   - Time O(rows*cols), Space O(rows*cols).
func (l *Labeled) Rebuild(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return labeledErrorf("Rebuild", rows, cols, ErrInvalidDimensions)
	}
	d, err := newDenseWithPolicy(rows, cols, l.d.validateNaNInf)
	if err != nil {
		return err
	}
	if rows != l.d.r {
		l.rowNames = make([]string, rows)
	}
	if cols != l.d.c {
		l.colNames = make([]string, cols)
	}
	l.d = d

	return nil
}

// SetRowCount rebuilds the table with n rows (destructive, see Rebuild).
func (l *Labeled) SetRowCount(n int) error { return l.Rebuild(n, l.d.c) }

// SetColCount rebuilds the table with n columns (destructive, see Rebuild).
func (l *Labeled) SetColCount(n int) error { return l.Rebuild(l.d.r, n) }

// At returns the value at (row, col).
func (l *Labeled) At(row, col int) (float64, error) { return l.d.At(row, col) }

// Set stores v at (row, col) under the numeric policy.
func (l *Labeled) Set(row, col int, v float64) error { return l.d.Set(row, col, v) }

// Row returns a copy of the values of row i.
func (l *Labeled) Row(i int) ([]float64, error) { return l.d.Row(i) }

// SetRow overwrites the values of row i.
func (l *Labeled) SetRow(i int, vals []float64) error { return l.d.SetRow(i, vals) }

// Col returns a copy of the values of column j.
func (l *Labeled) Col(j int) ([]float64, error) { return l.d.Col(j) }

// SetCol overwrites the values of column j.
func (l *Labeled) SetCol(j int, vals []float64) error { return l.d.SetCol(j, vals) }

// RowName returns the name of row i.
func (l *Labeled) RowName(i int) (string, error) {
	if i < 0 || i >= len(l.rowNames) {
		return Unset, labeledErrorf("RowName", i, 0, ErrOutOfRange)
	}

	return l.rowNames[i], nil
}

// SetRowName names row i.
func (l *Labeled) SetRowName(i int, name string) error {
	if i < 0 || i >= len(l.rowNames) {
		return labeledErrorf("SetRowName", i, 0, ErrOutOfRange)
	}
	l.rowNames[i] = name

	return nil
}

// ColName returns the name of column j.
func (l *Labeled) ColName(j int) (string, error) {
	if j < 0 || j >= len(l.colNames) {
		return Unset, labeledErrorf("ColName", 0, j, ErrOutOfRange)
	}

	return l.colNames[j], nil
}

// SetColName names column j.
func (l *Labeled) SetColName(j int, name string) error {
	if j < 0 || j >= len(l.colNames) {
		return labeledErrorf("SetColName", 0, j, ErrOutOfRange)
	}
	l.colNames[j] = name

	return nil
}

// NamedRow returns the name and a copy of the values of row i.
func (l *Labeled) NamedRow(i int) (string, []float64, error) {
	vals, err := l.d.Row(i)
	if err != nil {
		return Unset, nil, err
	}

	return l.rowNames[i], vals, nil
}

// SetNamedRow names row i and overwrites its values in one step.
// The name is only written when the values are accepted.
func (l *Labeled) SetNamedRow(i int, name string, vals []float64) error {
	if err := l.d.SetRow(i, vals); err != nil {
		return err
	}
	l.rowNames[i] = name

	return nil
}

// RowNames returns a copy of all row names in order.
func (l *Labeled) RowNames() []string { return append([]string(nil), l.rowNames...) }

// ColNames returns a copy of all column names in order.
func (l *Labeled) ColNames() []string { return append([]string(nil), l.colNames...) }

// FindRow returns the index of the first row named name, or -1.
func (l *Labeled) FindRow(name string) int { return indexOfName(l.rowNames, name) }

// FindCol returns the index of the first column named name, or -1.
func (l *Labeled) FindCol(name string) int { return indexOfName(l.colNames, name) }

// SwapRows exchanges rows a and b, values and names together.
// Complexity: O(c).
func (l *Labeled) SwapRows(a, b int) error {
	if err := l.d.SwapRows(a, b); err != nil {
		return err
	}
	l.rowNames[a], l.rowNames[b] = l.rowNames[b], l.rowNames[a]

	return nil
}

// SwapCols exchanges columns a and b, values and names together.
// Complexity: O(r).
func (l *Labeled) SwapCols(a, b int) error {
	if err := l.d.SwapCols(a, b); err != nil {
		return err
	}
	l.colNames[a], l.colNames[b] = l.colNames[b], l.colNames[a]

	return nil
}

// RowPlan computes the row index plan of SortRows(keys) without applying it.
// MAIN DESCRIPTION:
//   - For each key in order, append the indices of every row named key, in
//     current row order. Keys matching nothing contribute nothing; rows whose
//     name is never listed are absent from the plan.
//
// Determinism:
//   - Fixed key order, then fixed row order; map is used for lookup only.
//
// Complexity:
//   - Time O(r + k + len(plan)), Space O(r).
func (l *Labeled) RowPlan(keys []string) []int { return NamePlan(l.rowNames, keys) }

// ColPlan computes the column index plan of SortCols(keys) (see RowPlan).
func (l *Labeled) ColPlan(keys []string) []int { return NamePlan(l.colNames, keys) }

// SelectRows rebuilds the table from the rows listed in plan (duplicates allowed).
// Errors leave the table untouched.
// Complexity: Time O(len(plan)*c), Space O(len(plan)*c).
func (l *Labeled) SelectRows(plan []int) error {
	nd, err := l.d.Induced(plan, identityPlan(l.d.c))
	if err != nil {
		return fmt.Errorf("%s.SelectRows: %w", ctxLabeled, err)
	}
	l.rowNames = pickNames(l.rowNames, plan)
	l.d = nd

	return nil
}

// SelectCols rebuilds the table from the columns listed in plan (duplicates allowed).
// Errors leave the table untouched.
// Complexity: Time O(r*len(plan)), Space O(r*len(plan)).
func (l *Labeled) SelectCols(plan []int) error {
	nd, err := l.d.Induced(identityPlan(l.d.r), plan)
	if err != nil {
		return fmt.Errorf("%s.SelectCols: %w", ctxLabeled, err)
	}
	l.colNames = pickNames(l.colNames, plan)
	l.d = nd

	return nil
}

// SortRows reorders and filters rows by keys: SelectRows(RowPlan(keys)).
// Sorting by the current names in current order is the identity.
func (l *Labeled) SortRows(keys []string) error { return l.SelectRows(l.RowPlan(keys)) }

// SortCols reorders and filters columns by keys: SelectCols(ColPlan(keys)).
func (l *Labeled) SortCols(keys []string) error { return l.SelectCols(l.ColPlan(keys)) }

// Clone returns an independent deep copy (values, names, numeric policy).
// Complexity: O(r*c).
func (l *Labeled) Clone() *Labeled {
	return &Labeled{
		d:        l.d.clone(),
		rowNames: append([]string(nil), l.rowNames...),
		colNames: append([]string(nil), l.colNames...),
	}
}

// Do visits each cell in row-major order; see Dense.Do.
func (l *Labeled) Do(f func(i, j int, v float64) bool) { l.d.Do(f) }

// RawRow exposes the live storage of row i for read-only hot loops.
// Callers guarantee 0 ≤ i < Rows and never write through the slice.
func (l *Labeled) RawRow(i int) []float64 { return l.d.RawRow(i) }

// String renders a header line of column names followed by "name: [values]" rows.
func (l *Labeled) String() string {
	var b strings.Builder
	b.WriteString(strings.Join(l.colNames, "\t"))
	b.WriteString("\n")
	var i int
	for i = 0; i < l.d.r; i++ {
		b.WriteString(l.rowNames[i])
		b.WriteString(": ")
		b.WriteString(fmt.Sprint(l.d.RawRow(i)))
		b.WriteString("\n")
	}

	return b.String()
}

// NamePlan implements RowPlan/ColPlan over any name slice: for each key in
// order, the indices of every entry named key. Unset names never match.
// Wrappers with their own name axes (mass matrix nodes) reuse it.
func NamePlan(names, keys []string) []int {
	byName := make(map[string][]int, len(names))
	for i, n := range names {
		if n == Unset {
			continue
		}
		byName[n] = append(byName[n], i)
	}
	plan := make([]int, 0, len(keys))
	for _, k := range keys {
		plan = append(plan, byName[k]...)
	}

	return plan
}

// identityPlan returns [0, 1, ..., n-1].
func identityPlan(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}

// pickNames returns names[plan[0]], names[plan[1]], ...
// Callers validate plan against len(names) first (Induced does).
func pickNames(names []string, plan []int) []string {
	out := make([]string, len(plan))
	for i, p := range plan {
		out[i] = names[p]
	}

	return out
}

// indexOfName returns the first index of name in names, or -1.
func indexOfName(names []string, name string) int {
	if name == Unset {
		return -1
	}
	for i, n := range names {
		if n == name {
			return i
		}
	}

	return -1
}

// PickFloats applies an index plan to a per-row or per-column attribute slice.
// Wrappers call it with the same plan they pass to SelectRows/SelectCols so
// attributes stay in lock-step. A nil src yields nil.
func PickFloats(src []float64, plan []int) []float64 {
	if src == nil {
		return nil
	}
	out := make([]float64, len(plan))
	for i, p := range plan {
		out[i] = src[p]
	}

	return out
}
