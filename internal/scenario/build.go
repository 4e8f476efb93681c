package scenario

import (
	"fmt"

	"github.com/katalvlaran/modalcorr/correlation"
	"github.com/katalvlaran/modalcorr/fem"
	"github.com/katalvlaran/modalcorr/matrix"
)

// PointSet builds the fem point set of a point dataset.
func (d Dataset) PointSet() (*fem.PointSet, error) {
	if !d.IsPoints() {
		return nil, fmt.Errorf("%w: dataset has no points", ErrInvalid)
	}
	ps, err := fem.NewPointSet(len(d.Points))
	if err != nil {
		return nil, err
	}
	for i, p := range d.Points {
		if err = ps.SetPoint(i, p.Name, p.XYZ); err != nil {
			return nil, fmt.Errorf("point %q: %w", p.Name, err)
		}
	}
	if len(d.Color) == 3 {
		ps.SetColor(fem.Color{R: uint8(d.Color[0]), G: uint8(d.Color[1]), B: uint8(d.Color[2])})
	}

	return ps, nil
}

// ModeSet builds the fem mode set of a mode dataset.
func (d Dataset) ModeSet() (*fem.ModeSet, error) {
	if d.IsPoints() {
		return nil, fmt.Errorf("%w: dataset has no modes", ErrInvalid)
	}
	ms, err := fem.NewModeSet(len(d.Modes), len(d.Nodes))
	if err != nil {
		return nil, err
	}
	for k, n := range d.Nodes {
		if err = ms.SetNodeName(k, n); err != nil {
			return nil, err
		}
	}
	for i, m := range d.Modes {
		if err = ms.SetMode(i, m.Name, m.Frequency, m.Shape); err != nil {
			return nil, fmt.Errorf("mode %q: %w", m.Name, err)
		}
	}

	return ms, nil
}

// MassMatrix builds the packed mass matrix, or returns nil when the scenario
// has none.
func (sc *Scenario) MassMatrix(opts ...matrix.Option) (*fem.MassMatrix, error) {
	if sc.Mass == nil {
		return nil, nil
	}
	n := len(sc.Mass.Matrix)
	if n == 0 {
		return nil, fmt.Errorf("%w: empty mass matrix", ErrInvalid)
	}
	d, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i, row := range sc.Mass.Matrix {
		if err = d.SetRow(i, row); err != nil {
			return nil, fmt.Errorf("mass row %d: %w", i, err)
		}
	}

	return fem.MassMatrixFromDense(d, sc.Mass.Nodes, opts...)
}

// Score builds both datasets and scores them with metric. With a selection
// it uses the reduced variant of the metric.
func (sc *Scenario) Score(metric correlation.Metric, opts ...fem.Option) (*correlation.Matrix, error) {
	if metric == correlation.Distance {
		return sc.scorePoints(opts)
	}

	return sc.scoreModes(metric, opts)
}

func (sc *Scenario) scorePoints(opts []fem.Option) (*correlation.Matrix, error) {
	if !sc.First.IsPoints() {
		return nil, fmt.Errorf("%w: metric distance needs point datasets", ErrInvalid)
	}
	first, err := sc.First.PointSet()
	if err != nil {
		return nil, fmt.Errorf("first: %w", err)
	}
	last, err := sc.Last.PointSet()
	if err != nil {
		return nil, fmt.Errorf("last: %w", err)
	}
	if sc.Selection == nil {
		return first.ScoreAgainst(last, opts...)
	}

	return first.ScoreReduced(last, sc.Selection.First.Points, sc.Selection.Last.Points, opts...)
}

func (sc *Scenario) scoreModes(metric correlation.Metric, opts []fem.Option) (*correlation.Matrix, error) {
	if sc.First.IsPoints() {
		return nil, fmt.Errorf("%w: metric %s needs mode datasets", ErrInvalid, metric)
	}
	first, err := sc.First.ModeSet()
	if err != nil {
		return nil, fmt.Errorf("first: %w", err)
	}
	last, err := sc.Last.ModeSet()
	if err != nil {
		return nil, fmt.Errorf("last: %w", err)
	}
	var mass *fem.MassMatrix
	if metric.UsesMass() {
		if mass, err = sc.MassMatrix(); err != nil {
			return nil, err
		}
		if mass == nil {
			return nil, fmt.Errorf("%w: metric %s needs a mass matrix", ErrInvalid, metric)
		}
	}

	if sc.Selection == nil {
		switch metric {
		case correlation.DotProduct:
			return first.DotProduct(last, opts...)
		case correlation.MAC:
			return first.MAC(last, opts...)
		case correlation.GeneralizedMass:
			return first.GeneralizedMass(last, mass, opts...)
		default:
			return first.Orthogonality(last, mass, opts...)
		}
	}

	selfSel := fem.Selection{Modes: sc.Selection.First.Modes, Nodes: sc.Selection.First.Nodes}
	otherSel := fem.Selection{Modes: sc.Selection.Last.Modes, Nodes: sc.Selection.Last.Nodes}
	switch metric {
	case correlation.DotProduct:
		return first.DotProductReduced(last, selfSel, otherSel, opts...)
	case correlation.MAC:
		return first.MACReduced(last, selfSel, otherSel, opts...)
	case correlation.GeneralizedMass:
		return first.GeneralizedMassReduced(last, mass, selfSel, otherSel, opts...)
	default:
		return first.OrthogonalityReduced(last, mass, selfSel, otherSel, opts...)
	}
}
