// SPDX-License-Identifier: MIT

// Package matrix: shared interface and naming constants.
package matrix

// Matrix is the minimal numeric surface implemented by Dense. Labeled
// offers the same accessors over its Dense but clones into *Labeled.
// Index errors wrap ErrOutOfRange; all methods are O(1) except Clone.
type Matrix interface {
	// Rows is the row count.
	Rows() int

	// Cols is the column count.
	Cols() int

	// At reads cell (i, j).
	At(i, j int) (float64, error)

	// Set writes cell (i, j) under the store's numeric policy.
	Set(i, j int, v float64) error

	// Clone returns an independent deep copy, O(rows·cols).
	Clone() Matrix
}

// Unset is the name carried by rows and columns that were never named.
// Unset names never match a sort key.
const Unset = ""
