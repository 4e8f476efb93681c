package fem

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/modalcorr/correlation"
	"github.com/katalvlaran/modalcorr/internal/parallel"
)

// DotProduct scores every (self mode, other mode) pair by Σ a_k·b_k.
// The result carries both mode name lists and both frequency lists.
//
// Errors: ErrNilInput, ErrShapeMismatch (different node counts).
// Complexity: O(n·m·d) for d = 3·nodes.
func (s *ModeSet) DotProduct(other *ModeSet, opts ...Option) (*correlation.Matrix, error) {
	if err := checkPair("ModeSet.DotProduct", s, other); err != nil {
		return nil, err
	}

	return scoreModes(s, other, correlation.DotProduct, gatherOptions(opts...), func(i, j int) float64 {
		return dot(s.tab.RawRow(i), other.tab.RawRow(j))
	})
}

// MAC scores every pair by the Modal Assurance Criterion
// (a·b)² / (|a|²·|b|²), which lies in [0,1].
//
// Errors: ErrNilInput, ErrShapeMismatch, ErrDegenerateRow (a zero shape on
// either side, reported before any cell is computed).
func (s *ModeSet) MAC(other *ModeSet, opts ...Option) (*correlation.Matrix, error) {
	if err := checkPair("ModeSet.MAC", s, other); err != nil {
		return nil, err
	}
	na, err := selfProducts("ModeSet.MAC", s, nil)
	if err != nil {
		return nil, err
	}
	nb, err := selfProducts("ModeSet.MAC", other, nil)
	if err != nil {
		return nil, err
	}

	return scoreModes(s, other, correlation.MAC, gatherOptions(opts...), func(i, j int) float64 {
		ab := dot(s.tab.RawRow(i), other.tab.RawRow(j))
		return clampUnit(ab * ab / (na[i] * nb[j]))
	})
}

// GeneralizedMass scores every pair by aᵗ·M·b, M being the mass matrix of
// the self model. M·b is computed once per other mode. A mass matrix whose
// named nodes come in another order is read in the node order of s.
//
// Errors: ErrNilInput, ErrShapeMismatch (node counts, mass.Dim() != Dim(), or
// a named mode set node missing from the mass matrix).
// Complexity: O(m·d² + n·m·d).
func (s *ModeSet) GeneralizedMass(other *ModeSet, mass *MassMatrix, opts ...Option) (*correlation.Matrix, error) {
	mass, err := checkMass("ModeSet.GeneralizedMass", s, other, mass)
	if err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)
	mb := massProducts(other, mass, o.workers)

	return scoreModes(s, other, correlation.GeneralizedMass, o, func(i, j int) float64 {
		return dot(s.tab.RawRow(i), mb[j])
	})
}

// Orthogonality scores every pair by the mass-weighted MAC
// (aᵗMb)² / ((aᵗMa)·(bᵗMb)).
//
// Errors: ErrNilInput, ErrShapeMismatch, ErrDegenerateRow (aᵗMa or bᵗMb is 0).
func (s *ModeSet) Orthogonality(other *ModeSet, mass *MassMatrix, opts ...Option) (*correlation.Matrix, error) {
	mass, err := checkMass("ModeSet.Orthogonality", s, other, mass)
	if err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)
	ma, err := selfProducts("ModeSet.Orthogonality", s, mass)
	if err != nil {
		return nil, err
	}
	mb := massProducts(other, mass, o.workers)
	nb := make([]float64, len(mb))
	for j, v := range mb {
		nb[j] = dot(other.tab.RawRow(j), v)
		if nb[j] == 0 {
			return nil, fmt.Errorf("ModeSet.Orthogonality: other mode %d: %w", j, ErrDegenerateRow)
		}
	}

	return scoreModes(s, other, correlation.Orthogonality, o, func(i, j int) float64 {
		ab := dot(s.tab.RawRow(i), mb[j])
		return ab * ab / (ma[i] * nb[j])
	})
}

// DotProductReduced clones both sets, restricts each by its Selection, then
// calls DotProduct. Neither input is modified.
func (s *ModeSet) DotProductReduced(other *ModeSet, selfSel, otherSel Selection, opts ...Option) (*correlation.Matrix, error) {
	a, b, err := reducePair("ModeSet.DotProductReduced", s, other, selfSel, otherSel)
	if err != nil {
		return nil, err
	}

	return a.DotProduct(b, opts...)
}

// MACReduced clones both sets, restricts each by its Selection, then calls MAC.
func (s *ModeSet) MACReduced(other *ModeSet, selfSel, otherSel Selection, opts ...Option) (*correlation.Matrix, error) {
	a, b, err := reducePair("ModeSet.MACReduced", s, other, selfSel, otherSel)
	if err != nil {
		return nil, err
	}

	return a.MAC(b, opts...)
}

// GeneralizedMassReduced restricts both sets like MACReduced and the mass
// matrix to selfSel.Nodes, then calls GeneralizedMass.
func (s *ModeSet) GeneralizedMassReduced(other *ModeSet, mass *MassMatrix, selfSel, otherSel Selection, opts ...Option) (*correlation.Matrix, error) {
	a, b, err := reducePair("ModeSet.GeneralizedMassReduced", s, other, selfSel, otherSel)
	if err != nil {
		return nil, err
	}
	m, err := reduceMass("ModeSet.GeneralizedMassReduced", mass, selfSel)
	if err != nil {
		return nil, err
	}

	return a.GeneralizedMass(b, m, opts...)
}

// OrthogonalityReduced restricts both sets and the mass matrix like
// GeneralizedMassReduced, then calls Orthogonality.
func (s *ModeSet) OrthogonalityReduced(other *ModeSet, mass *MassMatrix, selfSel, otherSel Selection, opts ...Option) (*correlation.Matrix, error) {
	a, b, err := reducePair("ModeSet.OrthogonalityReduced", s, other, selfSel, otherSel)
	if err != nil {
		return nil, err
	}
	m, err := reduceMass("ModeSet.OrthogonalityReduced", mass, selfSel)
	if err != nil {
		return nil, err
	}

	return a.Orthogonality(b, m, opts...)
}

// checkPair validates the inputs shared by every modal metric.
func checkPair(op string, s, other *ModeSet) error {
	if s == nil || other == nil {
		return fmt.Errorf("%s: %w", op, ErrNilInput)
	}
	if s.Dim() != other.Dim() {
		return fmt.Errorf("%s: %d vs %d nodes: %w", op, s.NodeCount(), other.NodeCount(), ErrShapeMismatch)
	}

	return nil
}

// checkMass is checkPair plus the mass matrix layout. When both the mass
// matrix and s name every node and the orders differ, a clone of mass is
// sorted into the node order of s; unnamed nodes are matched by position.
func checkMass(op string, s, other *ModeSet, mass *MassMatrix) (*MassMatrix, error) {
	if err := checkPair(op, s, other); err != nil {
		return nil, err
	}
	if mass == nil {
		return nil, fmt.Errorf("%s: mass: %w", op, ErrNilInput)
	}
	nodes := s.Nodes()
	if named(nodes) && named(mass.nodes) && !slices.Equal(nodes, mass.nodes) {
		mass = mass.Clone()
		if err := mass.SortNodes(nodes); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if !slices.Equal(nodes, mass.nodes) {
			return nil, fmt.Errorf("%s: mass nodes do not cover the mode set nodes: %w", op, ErrShapeMismatch)
		}
	}
	if mass.Dim() != s.Dim() {
		return nil, fmt.Errorf("%s: mass over %d nodes, modes over %d: %w", op, mass.NodeCount(), s.NodeCount(), ErrShapeMismatch)
	}

	return mass, nil
}

// named reports whether every name is set.
func named(names []string) bool {
	if len(names) == 0 {
		return false
	}
	for _, n := range names {
		if n == "" {
			return false
		}
	}

	return true
}

func reducePair(op string, s, other *ModeSet, selfSel, otherSel Selection) (*ModeSet, *ModeSet, error) {
	if s == nil || other == nil {
		return nil, nil, fmt.Errorf("%s: %w", op, ErrNilInput)
	}
	a, err := s.reduced(selfSel)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}
	b, err := other.reduced(otherSel)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	return a, b, nil
}

func reduceMass(op string, mass *MassMatrix, sel Selection) (*MassMatrix, error) {
	if mass == nil {
		return nil, fmt.Errorf("%s: mass: %w", op, ErrNilInput)
	}
	m := mass.Clone()
	if sel.Nodes != nil {
		if err := m.SortNodes(sel.Nodes); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	return m, nil
}

// selfProducts returns aᵗa (mass == nil) or aᵗMa for every mode of s and
// fails on the first zero.
func selfProducts(op string, s *ModeSet, mass *MassMatrix) ([]float64, error) {
	out := make([]float64, s.ModeCount())
	var buf []float64
	if mass != nil {
		buf = make([]float64, s.Dim())
	}
	for i := range out {
		a := s.tab.RawRow(i)
		if mass == nil {
			out[i] = dot(a, a)
		} else {
			mass.mulVecInto(a, buf)
			out[i] = dot(a, buf)
		}
		if out[i] == 0 {
			name, _ := s.ModeName(i)
			return nil, fmt.Errorf("%s: mode %d (%q): %w", op, i, name, ErrDegenerateRow)
		}
	}

	return out, nil
}

// massProducts returns M·b for every mode b of s.
func massProducts(s *ModeSet, mass *MassMatrix, workers int) [][]float64 {
	out := make([][]float64, s.ModeCount())
	_ = parallel.Rows(len(out), workers, func(j int) error {
		out[j] = make([]float64, s.Dim())
		mass.mulVecInto(s.tab.RawRow(j), out[j])
		return nil
	})

	return out
}

// scoreModes allocates the result table, copies names and frequencies and
// fills every cell with cell(i,j), one table row per parallel task.
func scoreModes(s, other *ModeSet, metric correlation.Metric, o Options, cell func(i, j int) float64) (*correlation.Matrix, error) {
	n, m := s.ModeCount(), other.ModeCount()
	cm, err := correlation.New(n, m, metric, o.tableOptions(true)...)
	if err != nil {
		return nil, err
	}
	if err = nameTable(cm, s.Modes(), other.Modes()); err != nil {
		return nil, err
	}
	for i, f := range s.freq {
		_ = cm.SetRowFrequency(i, f) // sized by New
	}
	for j, f := range other.freq {
		_ = cm.SetColFrequency(j, f)
	}

	err = parallel.Rows(n, o.workers, func(i int) error {
		for j := 0; j < m; j++ {
			if err := cm.Set(i, j, cell(i, j)); err != nil {
				return fmt.Errorf("%s(%d,%d): %w", metric, i, j, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	o.logger.Debug("scored modes", "metric", metric.String(), "rows", n, "cols", m, "workers", o.workers)

	return cm, nil
}

// dot returns Σ a_k·b_k over the common length.
func dot(a, b []float64) float64 {
	var sum float64
	for k := range a {
		sum += a[k] * b[k]
	}

	return sum
}

// clampUnit pins rounding overshoot of a [0,1] ratio back into range.
func clampUnit(v float64) float64 {
	switch {
	case v > 1:
		return 1
	case v < 0:
		return 0
	default:
		return v
	}
}
