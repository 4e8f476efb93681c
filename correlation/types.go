package correlation

import (
	"fmt"
	"strings"
)

// Direction tells which side of a comparison is the better score.
type Direction int

const (
	// Maximize: larger scores are better (similarity metrics).
	Maximize Direction = iota
	// Minimize: smaller scores are better (distances).
	Minimize
)

// String implements fmt.Stringer.
func (d Direction) String() string {
	if d == Minimize {
		return "minimize"
	}

	return "maximize"
}

// Better reports whether a is strictly better than b.
func (d Direction) Better(a, b float64) bool {
	if d == Minimize {
		return a < b
	}

	return a > b
}

// Accepts reports whether score satisfies tol: score ≥ tol when maximizing,
// score ≤ tol when minimizing.
func (d Direction) Accepts(score, tol float64) bool {
	if d == Minimize {
		return score <= tol
	}

	return score >= tol
}

// Metric identifies how a table was scored. It fixes the comparison Direction.
type Metric int

const (
	// Distance is the Euclidean distance between two points.
	Distance Metric = iota
	// DotProduct is Σ a_k·b_k over all displacement components.
	DotProduct
	// MAC is the Modal Assurance Criterion (a·b)² / (|a|²·|b|²).
	MAC
	// GeneralizedMass is aᵗ·M·b.
	GeneralizedMass
	// Orthogonality is (aᵗMb)² / ((aᵗMa)·(bᵗMb)).
	Orthogonality
)

var metricNames = [...]string{
	Distance:        "distance",
	DotProduct:      "dot",
	MAC:             "mac",
	GeneralizedMass: "mass",
	Orthogonality:   "ortho",
}

// String implements fmt.Stringer with the short names accepted by ParseMetric.
func (m Metric) String() string {
	if m < 0 || int(m) >= len(metricNames) {
		return fmt.Sprintf("metric(%d)", int(m))
	}

	return metricNames[m]
}

// Direction returns Minimize for Distance and Maximize for every mode metric.
func (m Metric) Direction() Direction {
	if m == Distance {
		return Minimize
	}

	return Maximize
}

// UsesFrequencies reports whether tables of this metric carry frequencies.
func (m Metric) UsesFrequencies() bool { return m != Distance }

// UsesMass reports whether the metric needs a mass matrix.
func (m Metric) UsesMass() bool { return m == GeneralizedMass || m == Orthogonality }

// ParseMetric maps a short name (case-insensitive) to a Metric.
func ParseMetric(s string) (Metric, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, n := range metricNames {
		if n == key {
			return Metric(i), nil
		}
	}

	return 0, fmt.Errorf("ParseMetric(%q): %w", s, ErrUnknownMetric)
}

// Band classifies a score against the display tolerances of a Matrix.
type Band int

const (
	// BandLow: score < lower tolerance.
	BandLow Band = iota
	// BandMid: lower ≤ score ≤ upper.
	BandMid
	// BandHigh: score > upper tolerance.
	BandHigh
)

// String implements fmt.Stringer.
func (b Band) String() string {
	switch b {
	case BandLow:
		return "low"
	case BandHigh:
		return "high"
	default:
		return "mid"
	}
}
