package correlation

import (
	"fmt"
	"math"
)

// Pair is one accepted correspondence between a first item and a last item.
// Frequencies are zero when the connection has no frequencies.
type Pair struct {
	First          string
	FirstFrequency float64
	Last           string
	LastFrequency  float64
	Score          float64
}

// Connection is the ordered list of pairs produced by matching, best first.
// It is read-only for consumers apart from Reduce.
type Connection struct {
	pairs   []Pair
	metric  Metric
	hasFreq bool
}

// newConnection allocates an empty connection with room for k pairs.
func newConnection(metric Metric, hasFreq bool, k int) *Connection {
	return &Connection{
		pairs:   make([]Pair, 0, k),
		metric:  metric,
		hasFreq: hasFreq,
	}
}

// Len returns the number of pairs.
func (c *Connection) Len() int { return len(c.pairs) }

// IsEmpty reports whether no pair was accepted.
func (c *Connection) IsEmpty() bool { return len(c.pairs) == 0 }

// Metric returns the metric of the source table.
func (c *Connection) Metric() Metric { return c.metric }

// Direction returns the comparison direction of the metric.
func (c *Connection) Direction() Direction { return c.metric.Direction() }

// HasFrequencies reports whether pairs carry meaningful frequencies.
func (c *Connection) HasFrequencies() bool { return c.hasFreq }

// Pair returns pair i.
func (c *Connection) Pair(i int) (Pair, error) {
	if i < 0 || i >= len(c.pairs) {
		return Pair{}, fmt.Errorf("Connection.Pair(%d): %w", i, ErrOutOfRange)
	}

	return c.pairs[i], nil
}

// Pairs returns a copy of all pairs in order.
func (c *Connection) Pairs() []Pair { return append([]Pair(nil), c.pairs...) }

// Do calls f for each pair in order; it stops when f returns false.
func (c *Connection) Do(f func(i int, p Pair) bool) {
	for i := range c.pairs {
		if !f(i, c.pairs[i]) {
			return
		}
	}
}

// Reduce truncates the connection to its leading pairs accepted by tol
// (score ≥ tol when maximizing, ≤ tol when minimizing). It stops at the first
// failing pair; later pairs are dropped even if they would pass.
// Re-applying a looser tolerance cannot bring dropped pairs back; re-match for that.
//
// Errors:
//   - ErrInvalidTolerance when tol is NaN (connection untouched).
//
// Complexity: O(k).
func (c *Connection) Reduce(tol float64) error {
	if math.IsNaN(tol) {
		return fmt.Errorf("Connection.Reduce(%g): %w", tol, ErrInvalidTolerance)
	}
	dir := c.Direction()
	keep := 0
	for keep < len(c.pairs) && dir.Accepts(c.pairs[keep].Score, tol) {
		keep++
	}
	c.pairs = c.pairs[:keep]

	return nil
}

// Clone returns an independent copy.
func (c *Connection) Clone() *Connection {
	return &Connection{
		pairs:   append(make([]Pair, 0, len(c.pairs)), c.pairs...),
		metric:  c.metric,
		hasFreq: c.hasFreq,
	}
}

// Stats summarizes the scores of a connection.
type Stats struct {
	Count int
	Mean  float64
	Best  float64
	Worst float64
}

// Stats returns count, mean, best and worst score; the zero Stats when empty.
// Best/Worst follow the metric's Direction.
func (c *Connection) Stats() Stats {
	if len(c.pairs) == 0 {
		return Stats{}
	}
	dir := c.Direction()
	s := Stats{Count: len(c.pairs), Best: c.pairs[0].Score, Worst: c.pairs[0].Score}
	var sum float64
	for _, p := range c.pairs {
		sum += p.Score
		if dir.Better(p.Score, s.Best) {
			s.Best = p.Score
		}
		if dir.Better(s.Worst, p.Score) {
			s.Worst = p.Score
		}
	}
	s.Mean = sum / float64(len(c.pairs))

	return s
}
