// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Support copy-based row/column selection (Induced) used by Labeled sorting.
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// AI-Hints:
//   - Prefer fast paths on the flat data slice in hot loops (scoring, matching).
//   - Use Induced(rows, cols) to materialize a reordered/filtered copy.
//   - DefaultValidateNaNInf is on; greedy matching relies on finite scores.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Swap*: O(c) / O(r); Induced: O(r'*c').

package matrix

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt      = "At"
	ctxSet     = "Set"
	ctxRow     = "Row"
	ctxSetRow  = "SetRow"
	ctxCol     = "Col"
	ctxSetCol  = "SetCol"
	ctxSwapRow = "SwapRows"
	ctxSwapCol = "SwapCols"
	ctxInduce  = "Induced"
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf formats "Dense.<method>(row,col): <err>".
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables optional NaN/Inf rejection in Set (policy default from options.go).
type Dense struct {
	r, c           int       // row and column counts (>=0; zero allowed only for internal zero-OK constructors)
	data           []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil) // *Dense implements our public Matrix interface
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation and default numeric policy.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer and initialize policy.
//
// Behavior highlights:
//   - No panics on user errors; returns sentinel errors.
//   - Empty dimensions are rejected here; Labeled allocates through
//     newDenseWithPolicy because empty tables are legal there.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return newDenseWithPolicy(rows, cols, DefaultValidateNaNInf)
}

// newDenseWithPolicy allocates without shape validation (callers validate)
// and sets validateNaNInf explicitly.
func newDenseWithPolicy(rows, cols int, validateNaNInf bool) (*Dense, error) {
	// make() zero-fills deterministically; a zero-length buffer is legal.
	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols),
		validateNaNInf: validateNaNInf,
	}, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Returns a bare sentinel; public methods wrap it with coordinates and method name.
// Complexity: Time O(1), Space O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// checkFinite applies the numeric policy to a single value.
func (m *Dense) checkFinite(v float64) error {
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return ErrNaNInf
	}

	return nil
}

// At returns the value at (row, col); ErrOutOfRange outside the shape.
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col).
// Errors: ErrOutOfRange; ErrNaNInf when the store is finite-only and v is not.
// The cell is untouched on error.
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if err = m.checkFinite(v); err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Row returns a copy of row i.
// Complexity: Time O(c), Space O(c).
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// SetRow overwrites row i with vals.
// MAIN DESCRIPTION:
//   - All-or-nothing row write: every value is validated before the first store.
//
// Errors:
//   - ErrOutOfRange (bad row), ErrDimensionMismatch (len(vals) != Cols), ErrNaNInf.
//
// Complexity:
//   - Time O(c), Space O(1).
func (m *Dense) SetRow(i int, vals []float64) error {
	if i < 0 || i >= m.r {
		return denseErrorf(ctxSetRow, i, 0, ErrOutOfRange)
	}
	if len(vals) != m.c {
		return denseErrorf(ctxSetRow, i, len(vals), ErrDimensionMismatch)
	}
	var j int
	for j = 0; j < m.c; j++ {
		if err := m.checkFinite(vals[j]); err != nil {
			return denseErrorf(ctxSetRow, i, j, err)
		}
	}
	copy(m.data[i*m.c:(i+1)*m.c], vals)

	return nil
}

// Col returns a copy of column j.
// Complexity: Time O(r), Space O(r).
func (m *Dense) Col(j int) ([]float64, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxCol, 0, j, ErrOutOfRange)
	}
	out := make([]float64, m.r)
	var i int
	for i = 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// SetCol overwrites column j with vals (all-or-nothing, like SetRow).
// Complexity: Time O(r), Space O(1).
func (m *Dense) SetCol(j int, vals []float64) error {
	if j < 0 || j >= m.c {
		return denseErrorf(ctxSetCol, 0, j, ErrOutOfRange)
	}
	if len(vals) != m.r {
		return denseErrorf(ctxSetCol, len(vals), j, ErrDimensionMismatch)
	}
	var i int
	for i = 0; i < m.r; i++ {
		if err := m.checkFinite(vals[i]); err != nil {
			return denseErrorf(ctxSetCol, i, j, err)
		}
	}
	for i = 0; i < m.r; i++ {
		m.data[i*m.c+j] = vals[i]
	}

	return nil
}

// SwapRows exchanges rows a and b in place.
// MAIN DESCRIPTION:
//   - Element-wise exchange over the two row windows of the flat buffer.
//
// Behavior highlights:
//   - a == b is a legal no-op.
//
// Errors:
//   - ErrOutOfRange when either index is invalid.
//
// Complexity:
//   - Time O(c), Space O(1).
func (m *Dense) SwapRows(a, b int) error {
	if a < 0 || a >= m.r || b < 0 || b >= m.r {
		return denseErrorf(ctxSwapRow, a, b, ErrOutOfRange)
	}
	if a == b {
		return nil
	}
	ra := m.data[a*m.c : (a+1)*m.c]
	rb := m.data[b*m.c : (b+1)*m.c]
	var j int
	for j = 0; j < m.c; j++ {
		ra[j], rb[j] = rb[j], ra[j]
	}

	return nil
}

// SwapCols exchanges columns a and b in place.
// Complexity: Time O(r), Space O(1).
func (m *Dense) SwapCols(a, b int) error {
	if a < 0 || a >= m.c || b < 0 || b >= m.c {
		return denseErrorf(ctxSwapCol, a, b, ErrOutOfRange)
	}
	if a == b {
		return nil
	}
	var i, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		m.data[base+a], m.data[base+b] = m.data[base+b], m.data[base+a]
	}

	return nil
}

// Clone returns a deep copy with the same numeric policy, O(r*c).
func (m *Dense) Clone() Matrix { return m.clone() }

func (m *Dense) clone() *Dense {
	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           append([]float64(nil), m.data...),
		validateNaNInf: m.validateNaNInf,
	}
}

// String prints one bracketed row per line, e.g. "[1, 2]\n[3, 4]\n".
func (m *Dense) String() string {
	var b strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(_fmtSep)
			}
			b.WriteString(strconv.FormatFloat(m.data[i*m.c+j], 'g', -1, 64))
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Induced materializes a copy submatrix using explicit index sets.
// MAIN DESCRIPTION:
//   - Copy rows/cols at the given index lists (duplicates allowed, any order).
//
// Implementation:
//   - Stage 1: validate every index up front (no partial result on error).
//   - Stage 2: allocate result (zero-area legal).
//   - Stage 3: nested loops with direct offset math.
//
// Behavior highlights:
//   - Policy is preserved from the base (validateNaNInf).
//   - Duplicates in index sets produce repeated rows/cols in the result.
//
// Errors:
//   - ErrOutOfRange (index outside bounds).
//
// Complexity:
//   - Time O(rp*cp), Space O(rp*cp).
func (m *Dense) Induced(rowsIdx, colsIdx []int) (*Dense, error) {
	rp := len(rowsIdx) // result rows
	cp := len(colsIdx) // result cols

	var i, j int
	for i = 0; i < rp; i++ {
		if rowsIdx[i] < 0 || rowsIdx[i] >= m.r {
			return nil, fmt.Errorf("Dense.%s: row index %d: %w", ctxInduce, rowsIdx[i], ErrOutOfRange)
		}
	}
	for j = 0; j < cp; j++ {
		if colsIdx[j] < 0 || colsIdx[j] >= m.c {
			return nil, fmt.Errorf("Dense.%s: col index %d: %w", ctxInduce, colsIdx[j], ErrOutOfRange)
		}
	}

	res, err := newDenseWithPolicy(rp, cp, m.validateNaNInf)
	if err != nil {
		return nil, err
	}

	// Deterministic double loop; direct offset math in both matrices.
	var src, dst int
	for i = 0; i < rp; i++ {
		src = rowsIdx[i] * m.c // source row base
		dst = i * cp           // destination row base
		for j = 0; j < cp; j++ {
			res.data[dst+j] = m.data[src+colsIdx[j]]
		}
	}

	return res, nil
}

// Do calls f for every cell in row-major order until f returns false.
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	for k, v := range m.data {
		if !f(k/m.c, k%m.c, v) {
			return
		}
	}
}

// RawRow returns the live backing window of row i without copying or bounds
// checks. Callers must guarantee 0 ≤ i < Rows and must not retain the slice
// across a Rebuild.
// Complexity: O(1).
func (m *Dense) RawRow(i int) []float64 {
	return m.data[i*m.c : (i+1)*m.c : (i+1)*m.c]
}
