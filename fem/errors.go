package fem

import (
	"errors"

	"github.com/katalvlaran/modalcorr/matrix"
)

var (
	// ErrShapeMismatch reports incompatible component layouts: different node
	// counts between two mode sets, or a mass matrix of the wrong size.
	// It is the matrix dimension sentinel, so either name matches with errors.Is.
	ErrShapeMismatch = matrix.ErrDimensionMismatch

	// ErrDegenerateRow reports a zero-norm input row for MAC, or a zero
	// aᵗMa / bᵗMb for the orthogonality check.
	ErrDegenerateRow = errors.New("fem: degenerate row (zero norm)")

	// ErrNilInput reports a nil dataset or mass matrix argument.
	ErrNilInput = errors.New("fem: nil input")
)
