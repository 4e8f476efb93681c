// Package matrix provides the dense, name-addressable tables that every
// correlation dataset is built on.
//
// The package provides:
//
//   - Dense: a row-major float64 store with bounds-checked accessors, a
//     finite-only numeric policy, row/column swaps and index-based induction.
//   - Labeled: a Dense with independently named rows and columns. Resizing is
//     a destructive Rebuild; SortRows/SortCols filter and reorder by a key list
//     (duplicates allowed) and expose their index plan so wrappers can keep
//     per-row or per-column attributes in lock-step.
//   - Sentinel errors (errors.go), functional options (options.go) and shared
//     validators (validators.go).
//
// All indexers return errors wrapping ErrIndexOutOfBounds instead of panicking.
//
// See the examples in this package and in fem and correlation for usage patterns.
package matrix
