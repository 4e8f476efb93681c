package matrix_test

import (
	"testing"

	"github.com/katalvlaran/modalcorr/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// labeled3x2 builds rows a,b,c × columns x,y with values row*10+col.
func labeled3x2(t *testing.T) *matrix.Labeled {
	t.Helper()
	l, err := matrix.NewLabeled(3, 2)
	require.NoError(t, err)
	for i, n := range []string{"a", "b", "c"} {
		require.NoError(t, l.SetNamedRow(i, n, []float64{float64(i * 10), float64(i*10 + 1)}))
	}
	require.NoError(t, l.SetColName(0, "x"))
	require.NoError(t, l.SetColName(1, "y"))

	return l
}

func TestNewLabeledShapes(t *testing.T) {
	l, err := matrix.NewLabeled(0, 0)
	require.NoError(t, err)
	assert.True(t, l.IsEmpty())

	l, err = matrix.NewLabeled(2, 0)
	require.NoError(t, err)
	assert.True(t, l.IsEmpty()) // rows without cells
	assert.Equal(t, 2, l.Rows())

	_, err = matrix.NewLabeled(-1, 2)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	l, err = matrix.NewLabeled(2, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{matrix.Unset, matrix.Unset}, l.RowNames())
	assert.Equal(t, []string{matrix.Unset, matrix.Unset, matrix.Unset}, l.ColNames())
}

func TestLabeledRebuildIsDestructive(t *testing.T) {
	l := labeled3x2(t)

	require.NoError(t, l.Rebuild(3, 2)) // same shape: values still dropped
	v, err := l.At(2, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)
	assert.Equal(t, []string{"a", "b", "c"}, l.RowNames()) // untouched axes keep names
	assert.Equal(t, []string{"x", "y"}, l.ColNames())

	require.NoError(t, l.SetRowCount(4))
	assert.Equal(t, 4, l.Rows())
	assert.Equal(t, []string{"", "", "", ""}, l.RowNames()) // resized axis resets
	assert.Equal(t, []string{"x", "y"}, l.ColNames())

	require.ErrorIs(t, l.SetColCount(-2), matrix.ErrInvalidDimensions)
	assert.Equal(t, 2, l.Cols()) // rejected rebuild leaves the table alone

	l.Clear()
	assert.Equal(t, 0, l.Rows())
	assert.Equal(t, 0, l.Cols())
	assert.True(t, l.IsEmpty())
}

func TestLabeledNamedAccess(t *testing.T) {
	l := labeled3x2(t)

	name, vals, err := l.NamedRow(1)
	require.NoError(t, err)
	assert.Equal(t, "b", name)
	assert.Equal(t, []float64{10, 11}, vals)

	vals, err = l.Col(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 11, 21}, vals)

	require.ErrorIs(t, l.SetNamedRow(0, "z", []float64{1}), matrix.ErrDimensionMismatch)
	n, _ := l.RowName(0)
	assert.Equal(t, "a", n) // name not written on rejected values

	assert.Equal(t, 2, l.FindRow("c"))
	assert.Equal(t, -1, l.FindRow("missing"))
	assert.Equal(t, -1, l.FindRow(matrix.Unset))
	assert.Equal(t, 1, l.FindCol("y"))

	_, err = l.RowName(3)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
	require.ErrorIs(t, l.SetColName(2, "z"), matrix.ErrIndexOutOfBounds)
}

func TestLabeledSwapMovesNames(t *testing.T) {
	l := labeled3x2(t)

	require.NoError(t, l.SwapRows(0, 2))
	require.NoError(t, l.SwapCols(0, 1))
	assert.Equal(t, []string{"c", "b", "a"}, l.RowNames())
	assert.Equal(t, []string{"y", "x"}, l.ColNames())
	row, _ := l.Row(0)
	assert.Equal(t, []float64{21, 20}, row)
}

func TestLabeledSortRows(t *testing.T) {
	tests := []struct {
		name  string
		keys  []string
		names []string
		first []float64 // column x after sorting
	}{
		{"identity", []string{"a", "b", "c"}, []string{"a", "b", "c"}, []float64{0, 10, 20}},
		{"reorder", []string{"c", "a", "b"}, []string{"c", "a", "b"}, []float64{20, 0, 10}},
		{"filter", []string{"b"}, []string{"b"}, []float64{10}},
		{"duplicate", []string{"a", "a"}, []string{"a", "a"}, []float64{0, 0}},
		{"unknown keys", []string{"q", "c"}, []string{"c"}, []float64{20}},
		{"nothing", []string{}, []string{}, []float64{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l := labeled3x2(t)
			require.NoError(t, l.SortRows(tc.keys))
			assert.Equal(t, len(tc.names), l.Rows())
			assert.Equal(t, 2, l.Cols())
			for i, n := range tc.names {
				got, _ := l.RowName(i)
				assert.Equal(t, n, got)
			}
			col, err := l.Col(0)
			require.NoError(t, err)
			assert.Equal(t, tc.first, col)
		})
	}
}

func TestLabeledSortColsDuplicateNames(t *testing.T) {
	l, err := matrix.NewLabeled(1, 4)
	require.NoError(t, err)
	require.NoError(t, l.SetRow(0, []float64{1, 2, 3, 4}))
	for j, n := range []string{"p", "q", "p", matrix.Unset} {
		require.NoError(t, l.SetColName(j, n))
	}

	// every column named p is taken, in current order; unset is dropped
	require.NoError(t, l.SortCols([]string{"q", "p"}))
	row, _ := l.Row(0)
	assert.Equal(t, []float64{2, 1, 3}, row)
	assert.Equal(t, []string{"q", "p", "p"}, l.ColNames())
}

func TestLabeledCloneIndependence(t *testing.T) {
	l := labeled3x2(t)
	c := l.Clone()
	require.NoError(t, c.Set(0, 0, 99))
	require.NoError(t, c.SetRowName(0, "zz"))

	v, _ := l.At(0, 0)
	assert.Equal(t, 0.0, v)
	n, _ := l.RowName(0)
	assert.Equal(t, "a", n)
}

func TestNamePlanAndPickFloats(t *testing.T) {
	plan := matrix.NamePlan([]string{"a", "", "b", "a"}, []string{"a", "", "b"})
	assert.Equal(t, []int{0, 3, 2}, plan)

	assert.Equal(t, []float64{1, 4, 3}, matrix.PickFloats([]float64{1, 2, 3, 4}, plan))
	assert.Nil(t, matrix.PickFloats(nil, plan))
}

func TestLabeledString(t *testing.T) {
	l, err := matrix.NewLabeled(1, 2)
	require.NoError(t, err)
	require.NoError(t, l.SetNamedRow(0, "r", []float64{1, 2.5}))
	require.NoError(t, l.SetColName(0, "c1"))
	require.NoError(t, l.SetColName(1, "c2"))

	assert.Equal(t, "c1\tc2\nr: [1 2.5]\n", l.String())
}
