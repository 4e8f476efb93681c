// SPDX-License-Identifier: MIT

// Package matrix: sentinel errors, shared with fem and correlation.
// Operations return them wrapped; match with errors.Is.

package matrix

import "errors"

// Public methods wrap as fmt.Errorf("Type.Method(...): %w", ErrX).
// Check order: nil, then shape/index, then NaN/Inf.

var (
	// ErrInvalidDimensions indicates that requested dimensions are negative
	// (or non-positive for the strict public Dense constructor).
	ErrInvalidDimensions = errors.New("matrix: invalid dimensions")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/Row/...) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. a row slice whose length differs from Cols, or two datasets whose
	// component layouts disagree.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated
	// symmetry within the configured numeric policy (epsilon).
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

// ErrIndexOutOfBounds names the same condition as ErrOutOfRange.
// Both names are kept so errors.Is(err, ErrIndexOutOfBounds) holds everywhere.
var ErrIndexOutOfBounds = ErrOutOfRange
