package correlation

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/modalcorr/internal/logging"
)

// ExtractDiagonal reports the current diagonal (i,i), i < min(Rows, Cols),
// verbatim: names, frequencies and scores, in diagonal order.
// It does not search for a pairing; it is meaningful after Arrange or inside
// MatchGreedy.
// Complexity: O(min(n,m)).
func (m *Matrix) ExtractDiagonal() *Connection {
	k := min(m.Rows(), m.Cols())
	conn := newConnection(m.metric, m.HasFrequencies(), k)
	rowNames := m.tab.RowNames()
	colNames := m.tab.ColNames()

	var i int
	for i = 0; i < k; i++ {
		p := Pair{
			First: rowNames[i],
			Last:  colNames[i],
			Score: m.tab.RawRow(i)[i],
		}
		if m.rowFreq != nil {
			p.FirstFrequency = m.rowFreq[i]
			p.LastFrequency = m.colFreq[i]
		}
		conn.pairs = append(conn.pairs, p)
	}

	return conn
}

// MatchGreedy extracts a one-to-one pairing under tol.
// MAIN DESCRIPTION:
//   - Greedy diagonal heuristic; the receiver is never mutated.
//
// Implementation:
//   - Stage 1: clone the receiver.
//   - Stage 2: for each diagonal slot i, move the best cell of the remaining
//     block rows[i:] × cols[i:] onto (i,i) by one row swap and one column swap.
//   - Stage 3: read the diagonal (ExtractDiagonal).
//   - Stage 4: keep the leading pairs accepted by tol (Connection.Reduce).
//
// Behavior highlights:
//   - Ties: the diagonal cell wins; otherwise the first strictly better cell
//     in row-major scan order wins.
//   - Any initial row/column order yields the same pairs (distinct scores).
//   - The diagonal is sorted best to worst for the metric's Direction.
//   - Not an optimal assignment: fixed slots are never revisited.
//
// Errors:
//   - ErrInvalidTolerance when tol is NaN.
//
// Complexity:
//   - Time O(k·n·m) with k=min(n,m), Space O(n·m) for the clone.
func (m *Matrix) MatchGreedy(tol float64) (*Connection, error) {
	if math.IsNaN(tol) {
		return nil, fmt.Errorf("Matrix.MatchGreedy(%g): %w", tol, ErrInvalidTolerance)
	}
	work := m.Clone()
	work.diagonalize()

	conn := work.ExtractDiagonal()
	before := conn.Len()
	if err := conn.Reduce(tol); err != nil {
		return nil, err
	}
	m.log.Debug("greedy match",
		slog.String("metric", m.metric.String()),
		slog.Float64("tolerance", tol),
		slog.Int("candidates", before),
		slog.Int("accepted", conn.Len()))

	return conn, nil
}

// Arrange returns a clone whose rows and columns are ordered by the greedy
// sweep, matched pairs on the diagonal best first. Renderers draw this.
// Complexity: O(k·n·m).
func (m *Matrix) Arrange() *Matrix {
	work := m.Clone()
	work.diagonalize()

	return work
}

// diagonalize runs the greedy sweep in place.
func (m *Matrix) diagonalize() {
	rows, cols := m.Rows(), m.Cols()
	k := min(rows, cols)
	dir := m.Direction()

	var (
		i, r, c      int
		bestR, bestC int
		best         float64
		row          []float64
	)
	for i = 0; i < k; i++ {
		bestR, bestC = i, i
		best = m.tab.RawRow(i)[i]
		for r = i; r < rows; r++ {
			row = m.tab.RawRow(r)
			for c = i; c < cols; c++ {
				if dir.Better(row[c], best) {
					best, bestR, bestC = row[c], r, c
				}
			}
		}
		// Indices are in range by construction; swaps cannot fail.
		if bestR != i {
			_ = m.SwapRows(i, bestR)
		}
		if bestC != i {
			_ = m.SwapCols(i, bestC)
		}
		m.log.Log(context.Background(), logging.LevelTrace, "diagonal slot",
			slog.Int("slot", i),
			slog.Int("row", bestR),
			slog.Int("col", bestC),
			slog.Float64("score", best))
	}
}
