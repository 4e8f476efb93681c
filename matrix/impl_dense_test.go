// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/modalcorr/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)                      // zero rows
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.NewDense(5, -1)                      // negative columns
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions
}

// TestDenseShape verifies Rows and Cols.
func TestDenseShape(t *testing.T) {
	m, err := matrix.NewDense(3, 4)
	require.NoError(t, err)

	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
}

// TestDenseAtSetOutOfBounds ensures accessors fail with ErrIndexOutOfBounds.
func TestDenseAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)                                // negative row
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds) // expect ErrIndexOutOfBounds

	_, err = m.At(0, 2)                                 // column past the end
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds) // expect ErrIndexOutOfBounds

	err = m.Set(2, 0, 1.23)                             // row past the end
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds) // expect ErrIndexOutOfBounds

	_, err = m.Row(5)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Col(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestDenseRejectsNonFinite checks the default NaN/Inf policy.
func TestDenseRejectsNonFinite(t *testing.T) {
	m, err := matrix.NewDense(1, 2)
	require.NoError(t, err)

	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 1, math.Inf(-1)), matrix.ErrNaNInf)

	err = m.SetRow(0, []float64{1, math.Inf(1)})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	row, err := m.Row(0)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0}, row) // all-or-nothing: nothing written
}

// TestDenseRowCol covers copies and length checks of Row/SetRow/Col/SetCol.
func TestDenseRowCol(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.SetRow(1, []float64{4, 5, 6}))
	require.ErrorIs(t, m.SetRow(0, []float64{1}), matrix.ErrDimensionMismatch)
	require.NoError(t, m.SetCol(0, []float64{7, 8}))
	require.ErrorIs(t, m.SetCol(0, []float64{1, 2, 3}), matrix.ErrDimensionMismatch)

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{8, 5, 6}, row)

	row[0] = 100 // a copy: the store must not change
	v, _ := m.At(1, 0)
	require.Equal(t, 8.0, v)

	col, err := m.Col(0)
	require.NoError(t, err)
	require.Equal(t, []float64{7, 8}, col)
}

// TestDenseSwaps checks row and column exchanges, including the no-op case.
func TestDenseSwaps(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	_ = m.SetRow(0, []float64{1, 2})
	_ = m.SetRow(1, []float64{3, 4})

	require.NoError(t, m.SwapRows(0, 1))
	require.Equal(t, "[3, 4]\n[1, 2]\n", m.String())

	require.NoError(t, m.SwapCols(0, 1))
	require.Equal(t, "[4, 3]\n[2, 1]\n", m.String())

	require.NoError(t, m.SwapRows(1, 1)) // self swap is a no-op
	require.Equal(t, "[4, 3]\n[2, 1]\n", m.String())

	require.ErrorIs(t, m.SwapRows(0, 2), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.SwapCols(-1, 0), matrix.ErrOutOfRange)
}

// TestDenseCloneIndependence ensures Clone() returns a deep copy.
func TestDenseCloneIndependence(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	_ = m.Set(0, 0, 1.0)

	clone := m.Clone()
	_ = clone.Set(0, 0, 3.0) // modify the clone only

	orig, _ := m.At(0, 0)
	require.Equal(t, 1.0, orig) // original unchanged
	cv, _ := clone.At(0, 0)
	require.Equal(t, 3.0, cv) // clone reflects the write
}

// TestDenseInduced covers reorder, duplicate and out-of-range index sets.
func TestDenseInduced(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	_ = m.SetRow(0, []float64{1, 2, 3})
	_ = m.SetRow(1, []float64{4, 5, 6})

	sub, err := m.Induced([]int{1, 1, 0}, []int{2, 0})
	require.NoError(t, err)
	require.Equal(t, "[6, 4]\n[6, 4]\n[3, 1]\n", sub.String())

	empty, err := m.Induced(nil, []int{0})
	require.NoError(t, err)
	require.Equal(t, 0, empty.Rows()) // zero-area results are legal
	require.Equal(t, 1, empty.Cols())

	_, err = m.Induced([]int{0}, []int{3})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestDenseDoEarlyStop checks row-major order and early exit.
func TestDenseDoEarlyStop(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	_ = m.SetRow(0, []float64{1, 2})
	_ = m.SetRow(1, []float64{3, 4})

	var seen []float64
	m.Do(func(_, _ int, v float64) bool {
		seen = append(seen, v)
		return v < 3 // stop after visiting 3
	})
	require.Equal(t, []float64{1, 2, 3}, seen)
}
