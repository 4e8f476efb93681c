package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/modalcorr/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionsDefaults(t *testing.T) {
	o := matrix.NewOptions()
	assert.Equal(t, matrix.DefaultEpsilon, o.Epsilon())
	assert.Equal(t, matrix.DefaultValidateNaNInf, o.ValidateNaNInf())

	o = matrix.NewOptions(matrix.WithEpsilon(1e-3), matrix.WithNoValidateNaNInf())
	assert.Equal(t, 1e-3, o.Epsilon())
	assert.False(t, o.ValidateNaNInf())

	o = matrix.NewOptions(matrix.WithEpsilon(1e-3), matrix.WithEpsilon(1e-6))
	assert.Equal(t, 1e-6, o.Epsilon()) // last writer wins
}

func TestWithEpsilonPanics(t *testing.T) {
	assert.Panics(t, func() { matrix.WithEpsilon(-1) })
	assert.Panics(t, func() { matrix.WithEpsilon(math.NaN()) })
	assert.NotPanics(t, func() { matrix.WithEpsilon(0) })
}

func TestLabeledNoValidatePolicySurvivesRebuild(t *testing.T) {
	l, err := matrix.NewLabeled(1, 1, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, l.Set(0, 0, math.Inf(1)))

	require.NoError(t, l.Rebuild(2, 2))
	require.NoError(t, l.Set(1, 1, math.NaN()))

	c := l.Clone()
	require.NoError(t, c.Set(0, 0, math.Inf(-1)))
}
