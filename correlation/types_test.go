package correlation_test

import (
	"testing"

	"github.com/katalvlaran/modalcorr/correlation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirection(t *testing.T) {
	assert.True(t, correlation.Maximize.Better(2, 1))
	assert.False(t, correlation.Maximize.Better(1, 1)) // strict
	assert.True(t, correlation.Minimize.Better(1, 2))

	assert.True(t, correlation.Maximize.Accepts(0.5, 0.5))
	assert.False(t, correlation.Maximize.Accepts(0.4, 0.5))
	assert.True(t, correlation.Minimize.Accepts(0.5, 0.5))
	assert.False(t, correlation.Minimize.Accepts(0.6, 0.5))

	assert.Equal(t, "maximize", correlation.Maximize.String())
	assert.Equal(t, "minimize", correlation.Minimize.String())
}

func TestParseMetric(t *testing.T) {
	tests := []struct {
		in   string
		want correlation.Metric
	}{
		{"distance", correlation.Distance},
		{"dot", correlation.DotProduct},
		{" MAC ", correlation.MAC},
		{"mass", correlation.GeneralizedMass},
		{"ortho", correlation.Orthogonality},
	}
	for _, tc := range tests {
		got, err := correlation.ParseMetric(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got)
		assert.Equal(t, got, mustParse(t, got.String())) // String round-trips
	}

	_, err := correlation.ParseMetric("cosine")
	require.ErrorIs(t, err, correlation.ErrUnknownMetric)
}

func mustParse(t *testing.T, s string) correlation.Metric {
	t.Helper()
	m, err := correlation.ParseMetric(s)
	require.NoError(t, err)

	return m
}

func TestMetricTraits(t *testing.T) {
	assert.Equal(t, correlation.Minimize, correlation.Distance.Direction())
	assert.False(t, correlation.Distance.UsesFrequencies())
	assert.True(t, correlation.MAC.UsesFrequencies())
	assert.False(t, correlation.MAC.UsesMass())
	assert.True(t, correlation.Orthogonality.UsesMass())
	assert.True(t, correlation.GeneralizedMass.UsesMass())
}
