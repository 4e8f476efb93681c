package fem

import (
	"fmt"

	"github.com/katalvlaran/modalcorr/matrix"
)

// Selection restricts a reduced scoring call to the listed modes and nodes,
// in the listed order. A nil list keeps that axis as is; an empty non-nil
// list drops everything on it.
type Selection struct {
	Modes []string
	Nodes []string
}

// ModeSet holds named mode shapes over named nodes.
//
// Each row is one mode with its frequency; the columns are grouped by node,
// three per node (x, y, z). Every column of a node triple carries the node
// name, so sorting columns by node names moves whole triples.
//
// Invariants:
//   - Cols() == 3·NodeCount().
//   - len(freq) == ModeCount().
type ModeSet struct {
	tab  *matrix.Labeled
	freq []float64
}

// NewModeSet creates modes×(3·nodes) zero displacements, all names unset and
// all frequencies zero.
func NewModeSet(modes, nodes int) (*ModeSet, error) {
	if nodes < 0 {
		return nil, fmt.Errorf("NewModeSet(%d,%d): %w", modes, nodes, matrix.ErrInvalidDimensions)
	}
	tab, err := matrix.NewLabeled(modes, Components*nodes)
	if err != nil {
		return nil, fmt.Errorf("NewModeSet: %w", err)
	}

	return &ModeSet{tab: tab, freq: make([]float64, modes)}, nil
}

// ModeCount returns the number of modes.
func (s *ModeSet) ModeCount() int { return s.tab.Rows() }

// NodeCount returns the number of nodes.
func (s *ModeSet) NodeCount() int { return s.tab.Cols() / Components }

// Dim returns 3·NodeCount, the length of one mode shape.
func (s *ModeSet) Dim() int { return s.tab.Cols() }

// IsEmpty reports whether the set has no mode or no node.
func (s *ModeSet) IsEmpty() bool { return s.tab.IsEmpty() }

// Clear drops every mode and node.
func (s *ModeSet) Clear() {
	s.tab.Clear()
	s.freq = []float64{}
}

// SetModeCount rebuilds the set with n modes; displacements and frequencies
// are lost, node names are kept.
func (s *ModeSet) SetModeCount(n int) error {
	if err := s.tab.SetRowCount(n); err != nil {
		return fmt.Errorf("ModeSet.SetModeCount: %w", err)
	}
	s.freq = make([]float64, n)

	return nil
}

// SetNodeCount rebuilds the set over n nodes; displacements are lost,
// mode names and frequencies are kept.
func (s *ModeSet) SetNodeCount(n int) error {
	if n < 0 {
		return fmt.Errorf("ModeSet.SetNodeCount(%d): %w", n, matrix.ErrInvalidDimensions)
	}
	if err := s.tab.SetColCount(Components * n); err != nil {
		return fmt.Errorf("ModeSet.SetNodeCount: %w", err)
	}

	return nil
}

// ModeName returns the name of mode i.
func (s *ModeSet) ModeName(i int) (string, error) { return s.tab.RowName(i) }

// SetModeName names mode i.
func (s *ModeSet) SetModeName(i int, name string) error { return s.tab.SetRowName(i, name) }

// Modes returns a copy of the mode names.
func (s *ModeSet) Modes() []string { return s.tab.RowNames() }

// FindMode returns the index of the first mode named name, or -1.
func (s *ModeSet) FindMode(name string) int { return s.tab.FindRow(name) }

// Frequency returns the frequency of mode i.
func (s *ModeSet) Frequency(i int) (float64, error) {
	if i < 0 || i >= len(s.freq) {
		return 0, fmt.Errorf("ModeSet.Frequency(%d): %w", i, matrix.ErrIndexOutOfBounds)
	}

	return s.freq[i], nil
}

// SetFrequency sets the frequency of mode i. NaN and ±Inf are rejected.
func (s *ModeSet) SetFrequency(i int, f float64) error {
	if i < 0 || i >= len(s.freq) {
		return fmt.Errorf("ModeSet.SetFrequency(%d): %w", i, matrix.ErrIndexOutOfBounds)
	}
	if err := matrix.ValidateFinite([]float64{f}); err != nil {
		return fmt.Errorf("ModeSet.SetFrequency(%d): %w", i, err)
	}
	s.freq[i] = f

	return nil
}

// Frequencies returns a copy of all mode frequencies.
func (s *ModeSet) Frequencies() []float64 { return append([]float64(nil), s.freq...) }

// NodeName returns the name of node k.
func (s *ModeSet) NodeName(k int) (string, error) {
	if k < 0 || k >= s.NodeCount() {
		return "", fmt.Errorf("ModeSet.NodeName(%d): %w", k, matrix.ErrIndexOutOfBounds)
	}

	return s.tab.ColName(Components * k)
}

// SetNodeName names node k, i.e. all three columns of its triple.
func (s *ModeSet) SetNodeName(k int, name string) error {
	if k < 0 || k >= s.NodeCount() {
		return fmt.Errorf("ModeSet.SetNodeName(%d): %w", k, matrix.ErrIndexOutOfBounds)
	}
	for a := 0; a < Components; a++ {
		if err := s.tab.SetColName(Components*k+a, name); err != nil {
			return err
		}
	}

	return nil
}

// Nodes returns a copy of the node names, one per triple.
func (s *ModeSet) Nodes() []string {
	cols := s.tab.ColNames()
	out := make([]string, 0, len(cols)/Components)
	for k := 0; k < len(cols); k += Components {
		out = append(out, cols[k])
	}

	return out
}

// FindNode returns the index of the first node named name, or -1.
func (s *ModeSet) FindNode(name string) int {
	j := s.tab.FindCol(name)
	if j < 0 {
		return -1
	}

	return j / Components
}

// Displacement returns component a of node k in mode i.
func (s *ModeSet) Displacement(i, k int, a Axis) (float64, error) {
	if !a.valid() || k < 0 || k >= s.NodeCount() {
		return 0, fmt.Errorf("ModeSet.Displacement(%d,%d%s): %w", i, k, a, matrix.ErrIndexOutOfBounds)
	}

	return s.tab.At(i, Components*k+int(a))
}

// SetDisplacement stores component a of node k in mode i.
func (s *ModeSet) SetDisplacement(i, k int, a Axis, v float64) error {
	if !a.valid() || k < 0 || k >= s.NodeCount() {
		return fmt.Errorf("ModeSet.SetDisplacement(%d,%d%s): %w", i, k, a, matrix.ErrIndexOutOfBounds)
	}

	return s.tab.Set(i, Components*k+int(a), v)
}

// Shape returns a copy of mode i: 3·NodeCount components, node by node.
func (s *ModeSet) Shape(i int) ([]float64, error) { return s.tab.Row(i) }

// SetShape replaces mode i. len(shape) must be Dim().
func (s *ModeSet) SetShape(i int, shape []float64) error { return s.tab.SetRow(i, shape) }

// SetMode names mode i and sets its frequency and shape in one call.
func (s *ModeSet) SetMode(i int, name string, freq float64, shape []float64) error {
	if i < 0 || i >= len(s.freq) {
		return fmt.Errorf("ModeSet.SetMode(%d): %w", i, matrix.ErrIndexOutOfBounds)
	}
	if err := matrix.ValidateFinite([]float64{freq}); err != nil {
		return fmt.Errorf("ModeSet.SetMode(%d): frequency: %w", i, err)
	}
	if err := s.tab.SetNamedRow(i, name, shape); err != nil {
		return err
	}
	s.freq[i] = freq

	return nil
}

// SwapModes exchanges modes a and b with their names and frequencies.
func (s *ModeSet) SwapModes(a, b int) error {
	if err := s.tab.SwapRows(a, b); err != nil {
		return err
	}
	s.freq[a], s.freq[b] = s.freq[b], s.freq[a]

	return nil
}

// SortModes reorders/filters modes by name, carrying frequencies along.
func (s *ModeSet) SortModes(keys []string) error {
	plan := s.tab.RowPlan(keys)
	if err := s.tab.SelectRows(plan); err != nil {
		return err
	}
	s.freq = matrix.PickFloats(s.freq, plan)

	return nil
}

// SortNodes reorders/filters whole node triples by name.
func (s *ModeSet) SortNodes(keys []string) error { return s.tab.SortCols(keys) }

// Clone returns an independent deep copy.
func (s *ModeSet) Clone() *ModeSet {
	return &ModeSet{tab: s.tab.Clone(), freq: append(make([]float64, 0, len(s.freq)), s.freq...)}
}

// reduced returns a clone restricted by sel.
func (s *ModeSet) reduced(sel Selection) (*ModeSet, error) {
	c := s.Clone()
	if sel.Modes != nil {
		if err := c.SortModes(sel.Modes); err != nil {
			return nil, err
		}
	}
	if sel.Nodes != nil {
		if err := c.SortNodes(sel.Nodes); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// String renders the underlying labeled table.
func (s *ModeSet) String() string { return s.tab.String() }
