// Package correlation holds pairwise agreement tables between two named item
// sets and extracts one-to-one pairings from them.
//
// 🚀 What is here?
//
//	Matrix     : score of every (first item, last item) pair, with optional
//	              per-row/per-column frequencies and display tolerances.
//	Connection : the compact result of matching: one Pair per accepted
//	              (first, last) correspondence, best first.
//	MatchGreedy: the diagonal greedy heuristic: place the best remaining
//	              score on each successive diagonal slot by swapping one row
//	              and one column, then read the diagonal.
//
// ✨ Key properties:
//   - MatchGreedy never mutates its receiver; it works on a clone.
//   - Any permutation of rows/columns yields the same pairing (distinct scores).
//   - The diagonal comes out sorted best to worst, so tolerance truncation
//     stops at the first failing pair.
//   - One sweep serves both comparison directions: Maximize for similarity
//     metrics (dot product, MAC, generalized mass, orthogonality) and
//     Minimize for Euclidean distance.
//
// ⚠️ Not an optimal assignment: once a row/column is fixed on the diagonal it
// is never revisited, so the total score is not guaranteed maximal.
//
// Performance:
//
//   - MatchGreedy: O(k·n·m) for k = min(n, m)
//   - ExtractDiagonal, Reduce: O(k)
package correlation
