// Package fem models the two finite-element datasets being compared and
// scores them against each other.
//
// 🚀 What is here?
//
//	PointSet  : named 3D points (x, y, z); scored by Euclidean distance.
//	ModeSet   : named mode shapes with a frequency each; columns are (x, y, z)
//	             displacement triples, one triple per named node.
//	MassMatrix: symmetric 3·nodes square mass matrix stored as one triangle.
//
// ✨ Scoring (every call returns a *correlation.Matrix, first set = rows):
//   - PointSet.ScoreAgainst           : distance, Minimize.
//   - ModeSet.DotProduct              : Σ a_k·b_k.
//   - ModeSet.MAC                     : (a·b)² / (|a|²·|b|²), in [0, 1].
//   - ModeSet.GeneralizedMass         : aᵗ·M·b.
//   - ModeSet.Orthogonality           : (aᵗMb)² / ((aᵗMa)·(bᵗMb)).
//
// Each scorer has a Reduced variant that clones both inputs, keeps and orders
// only the selected items and nodes, then scores. Inputs are never mutated.
//
// ⚙️ Usage:
//
//	cm, err := first.MAC(last, fem.WithWorkers(4))
//	conn, err := cm.MatchGreedy(0.8)
//
// Performance:
//
//   - Scoring: O(n·m·c) for c components; mass metrics add O((n+m)·c²).
//   - The pairwise pass fans out over rows with WithWorkers(n > 1).
package fem
