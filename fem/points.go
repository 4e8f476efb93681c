package fem

import (
	"fmt"
	"math"

	"github.com/katalvlaran/modalcorr/correlation"
	"github.com/katalvlaran/modalcorr/internal/parallel"
	"github.com/katalvlaran/modalcorr/matrix"
)

// Color is the display color of a point cloud. Scoring ignores it.
type Color struct {
	R, G, B uint8
}

// DefaultPointColor is the color of a new PointSet.
var DefaultPointColor = Color{R: 0x40, G: 0x80, B: 0xff}

// axisNames are the fixed column names of a PointSet.
var axisNames = [Components]string{"x", "y", "z"}

// PointSet is a list of named 3D points. Its three columns are fixed.
type PointSet struct {
	tab   *matrix.Labeled
	color Color
}

// NewPointSet creates n unnamed points at the origin.
func NewPointSet(n int) (*PointSet, error) {
	tab, err := matrix.NewLabeled(n, Components)
	if err != nil {
		return nil, fmt.Errorf("NewPointSet: %w", err)
	}
	p := &PointSet{tab: tab, color: DefaultPointColor}
	p.nameAxes()

	return p, nil
}

func (p *PointSet) nameAxes() {
	for j, n := range axisNames {
		_ = p.tab.SetColName(j, n) // three columns by construction
	}
}

// Len returns the number of points.
func (p *PointSet) Len() int { return p.tab.Rows() }

// IsEmpty reports whether the set holds no point.
func (p *PointSet) IsEmpty() bool { return p.tab.Rows() == 0 }

// Clear drops every point; the set keeps its three axis columns.
func (p *PointSet) Clear() {
	_ = p.tab.Rebuild(0, Components) // non-negative sizes cannot fail
}

// SetPointCount rebuilds the set with n unnamed points at the origin.
// Previous coordinates and names are lost.
func (p *PointSet) SetPointCount(n int) error {
	if err := p.tab.Rebuild(n, Components); err != nil {
		return fmt.Errorf("PointSet.SetPointCount: %w", err)
	}
	// Rebuild keeps names when the count is unchanged; a new point list must not.
	for i := 0; i < n; i++ {
		_ = p.tab.SetRowName(i, matrix.Unset)
	}

	return nil
}

// Name returns the name of point i.
func (p *PointSet) Name(i int) (string, error) { return p.tab.RowName(i) }

// SetName names point i.
func (p *PointSet) SetName(i int, name string) error { return p.tab.SetRowName(i, name) }

// Names returns a copy of all point names.
func (p *PointSet) Names() []string { return p.tab.RowNames() }

// Find returns the index of the first point named name, or -1.
func (p *PointSet) Find(name string) int { return p.tab.FindRow(name) }

// Coords returns the coordinates of point i.
func (p *PointSet) Coords(i int) ([Components]float64, error) {
	var out [Components]float64
	row, err := p.tab.Row(i)
	if err != nil {
		return out, err
	}
	copy(out[:], row)

	return out, nil
}

// Point returns the name and coordinates of point i.
func (p *PointSet) Point(i int) (string, [Components]float64, error) {
	var xyz [Components]float64
	name, row, err := p.tab.NamedRow(i)
	if err != nil {
		return "", xyz, err
	}
	copy(xyz[:], row)

	return name, xyz, nil
}

// SetPoint names point i and sets its coordinates.
func (p *PointSet) SetPoint(i int, name string, xyz [Components]float64) error {
	return p.tab.SetNamedRow(i, name, xyz[:])
}

// SwapPoints exchanges points a and b.
func (p *PointSet) SwapPoints(a, b int) error { return p.tab.SwapRows(a, b) }

// SortPoints reorders/filters points by name (see matrix.Labeled.SortRows).
func (p *PointSet) SortPoints(keys []string) error { return p.tab.SortRows(keys) }

// Color returns the display color.
func (p *PointSet) Color() Color { return p.color }

// SetColor sets the display color.
func (p *PointSet) SetColor(c Color) { p.color = c }

// Clone returns an independent deep copy, color included.
func (p *PointSet) Clone() *PointSet {
	return &PointSet{tab: p.tab.Clone(), color: p.color}
}

// ScoreAgainst returns the Euclidean distance of every (self point, other
// point) pair. Rows are named after p, columns after other; no frequencies.
// The table's metric is correlation.Distance, so matching minimizes.
//
// Errors: ErrNilInput.
// Complexity: O(n·m).
func (p *PointSet) ScoreAgainst(other *PointSet, opts ...Option) (*correlation.Matrix, error) {
	if p == nil || other == nil {
		return nil, fmt.Errorf("PointSet.ScoreAgainst: %w", ErrNilInput)
	}
	o := gatherOptions(opts...)
	n, m := p.Len(), other.Len()
	cm, err := correlation.New(n, m, correlation.Distance, o.tableOptions(false)...)
	if err != nil {
		return nil, err
	}
	if err = nameTable(cm, p.tab.RowNames(), other.tab.RowNames()); err != nil {
		return nil, err
	}

	err = parallel.Rows(n, o.workers, func(i int) error {
		a := p.tab.RawRow(i)
		for j := 0; j < m; j++ {
			if err := cm.Set(i, j, euclid(a, other.tab.RawRow(j))); err != nil {
				return fmt.Errorf("PointSet.ScoreAgainst: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	o.logger.Debug("scored points", "metric", correlation.Distance.String(), "rows", n, "cols", m)

	return cm, nil
}

// ScoreReduced clones both sets, keeps and orders points by selfKeys and
// otherKeys respectively, then scores them. Neither input is modified.
// A nil key list keeps that set as is.
func (p *PointSet) ScoreReduced(other *PointSet, selfKeys, otherKeys []string, opts ...Option) (*correlation.Matrix, error) {
	if p == nil || other == nil {
		return nil, fmt.Errorf("PointSet.ScoreReduced: %w", ErrNilInput)
	}
	a, b := p.Clone(), other.Clone()
	if selfKeys != nil {
		if err := a.SortPoints(selfKeys); err != nil {
			return nil, err
		}
	}
	if otherKeys != nil {
		if err := b.SortPoints(otherKeys); err != nil {
			return nil, err
		}
	}

	return a.ScoreAgainst(b, opts...)
}

// euclid returns the Euclidean distance between two 3-vectors.
func euclid(a, b []float64) float64 {
	dx, dy, dz := a[0]-b[0], a[1]-b[1], a[2]-b[2]

	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// nameTable copies row and column names into a fresh score table.
func nameTable(cm *correlation.Matrix, rows, cols []string) error {
	for i, n := range rows {
		if err := cm.SetRowName(i, n); err != nil {
			return err
		}
	}
	for j, n := range cols {
		if err := cm.SetColName(j, n); err != nil {
			return err
		}
	}

	return nil
}
