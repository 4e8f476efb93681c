package correlation

import (
	"errors"

	"github.com/katalvlaran/modalcorr/matrix"
)

var (
	// ErrInvalidTolerance indicates lower > upper, or a NaN tolerance.
	ErrInvalidTolerance = errors.New("correlation: invalid tolerance")

	// ErrNoFrequencies indicates a frequency access on a table or connection
	// built without frequencies (point distance tables).
	ErrNoFrequencies = errors.New("correlation: no frequencies on this matrix")

	// ErrOutOfRange indicates a pair index outside the connection. It is
	// matrix.ErrIndexOutOfBounds, so one errors.Is check covers tables and
	// connections alike.
	ErrOutOfRange = matrix.ErrIndexOutOfBounds

	// ErrUnknownMetric indicates a metric name that does not parse.
	ErrUnknownMetric = errors.New("correlation: unknown metric")
)
