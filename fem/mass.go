package fem

import (
	"fmt"
	"math"

	"github.com/katalvlaran/modalcorr/matrix"
)

// Components is the number of degrees of freedom per node (x, y, z).
const Components = 3

// Axis selects one component of a node triple.
type Axis int

const (
	// AxisX is the x component.
	AxisX Axis = iota
	// AxisY is the y component.
	AxisY
	// AxisZ is the z component.
	AxisZ
)

// String implements fmt.Stringer.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return fmt.Sprintf("axis(%d)", int(a))
	}
}

func (a Axis) valid() bool { return a >= AxisX && a <= AxisZ }

// MassMatrix is a symmetric (3·nodes)×(3·nodes) matrix stored as its lower
// triangle, packed row by row: entry (k,l) with k ≥ l lives at k(k+1)/2 + l.
// Reads and writes of (l,k) mirror to (k,l).
type MassMatrix struct {
	nodes []string
	dim   int
	data  []float64
}

// NewMassMatrix creates a zero mass matrix over nodeCount unnamed nodes.
// Complexity: O(dim²/2).
func NewMassMatrix(nodeCount int) (*MassMatrix, error) {
	if nodeCount < 0 {
		return nil, fmt.Errorf("NewMassMatrix(%d): %w", nodeCount, matrix.ErrInvalidDimensions)
	}
	m := &MassMatrix{}
	m.rebuild(nodeCount)

	return m, nil
}

// MassMatrixFromDense packs a full symmetric matrix given with its node names.
// It validates the size (3·len(nodes)) and symmetry within the matrix
// package epsilon (matrix.WithEpsilon) and keeps the lower triangle.
//
// Errors: ErrNilInput, ErrShapeMismatch, matrix.ErrNonSquare, matrix.ErrAsymmetry.
func MassMatrixFromDense(d matrix.Matrix, nodes []string, opts ...matrix.Option) (*MassMatrix, error) {
	if err := matrix.ValidateNotNil(d); err != nil {
		return nil, fmt.Errorf("MassMatrixFromDense: %w", ErrNilInput)
	}
	if err := matrix.ValidateSymmetric(d, opts...); err != nil {
		return nil, fmt.Errorf("MassMatrixFromDense: eps %g: %w", matrix.NewOptions(opts...).Epsilon(), err)
	}
	if d.Rows() != Components*len(nodes) {
		return nil, fmt.Errorf("MassMatrixFromDense: %d rows for %d nodes: %w", d.Rows(), len(nodes), ErrShapeMismatch)
	}

	m := &MassMatrix{}
	m.rebuild(len(nodes))
	copy(m.nodes, nodes)
	var k, l int
	var v float64
	for k = 0; k < m.dim; k++ {
		for l = 0; l <= k; l++ {
			v, _ = d.At(k, l) // bounds checked by the shape guard
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("MassMatrixFromDense(%d,%d): %w", k, l, matrix.ErrNaNInf)
			}
			m.data[packedIndex(k, l)] = v
		}
	}

	return m, nil
}

// rebuild reallocates storage for n unnamed nodes (destructive).
func (m *MassMatrix) rebuild(n int) {
	m.nodes = make([]string, n)
	m.dim = Components * n
	m.data = make([]float64, m.dim*(m.dim+1)/2)
}

// packedIndex returns the lower-triangle offset of (k,l), mirroring when k < l.
func packedIndex(k, l int) int {
	if k < l {
		k, l = l, k
	}

	return k*(k+1)/2 + l
}

// NodeCount returns the number of nodes.
func (m *MassMatrix) NodeCount() int { return len(m.nodes) }

// Dim returns 3·NodeCount, the side of the full matrix.
func (m *MassMatrix) Dim() int { return m.dim }

// IsEmpty reports whether the matrix has no nodes.
func (m *MassMatrix) IsEmpty() bool { return m.dim == 0 }

// SetNodeCount rebuilds the matrix over n unnamed nodes; all values are lost.
func (m *MassMatrix) SetNodeCount(n int) error {
	if n < 0 {
		return fmt.Errorf("MassMatrix.SetNodeCount(%d): %w", n, matrix.ErrInvalidDimensions)
	}
	m.rebuild(n)

	return nil
}

// NodeName returns the name of node i.
func (m *MassMatrix) NodeName(i int) (string, error) {
	if i < 0 || i >= len(m.nodes) {
		return "", fmt.Errorf("MassMatrix.NodeName(%d): %w", i, matrix.ErrIndexOutOfBounds)
	}

	return m.nodes[i], nil
}

// SetNodeName names node i.
func (m *MassMatrix) SetNodeName(i int, name string) error {
	if i < 0 || i >= len(m.nodes) {
		return fmt.Errorf("MassMatrix.SetNodeName(%d): %w", i, matrix.ErrIndexOutOfBounds)
	}
	m.nodes[i] = name

	return nil
}

// Nodes returns a copy of the node names.
func (m *MassMatrix) Nodes() []string { return append([]string(nil), m.nodes...) }

// At returns entry (k,l) of the full matrix.
func (m *MassMatrix) At(k, l int) (float64, error) {
	if k < 0 || k >= m.dim || l < 0 || l >= m.dim {
		return 0, fmt.Errorf("MassMatrix.At(%d,%d): %w", k, l, matrix.ErrIndexOutOfBounds)
	}

	return m.data[packedIndex(k, l)], nil
}

// Set stores v at (k,l) and, implicitly, at (l,k).
func (m *MassMatrix) Set(k, l int, v float64) error {
	if k < 0 || k >= m.dim || l < 0 || l >= m.dim {
		return fmt.Errorf("MassMatrix.Set(%d,%d): %w", k, l, matrix.ErrIndexOutOfBounds)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("MassMatrix.Set(%d,%d): %w", k, l, matrix.ErrNaNInf)
	}
	m.data[packedIndex(k, l)] = v

	return nil
}

// Block returns the coupling between component a of node i and component b
// of node j, i.e. M[3i+a, 3j+b].
func (m *MassMatrix) Block(i int, a Axis, j int, b Axis) (float64, error) {
	if !a.valid() || !b.valid() {
		return 0, fmt.Errorf("MassMatrix.Block(%d%s,%d%s): %w", i, a, j, b, matrix.ErrIndexOutOfBounds)
	}
	if i < 0 || i >= len(m.nodes) || j < 0 || j >= len(m.nodes) {
		return 0, fmt.Errorf("MassMatrix.Block(%d%s,%d%s): %w", i, a, j, b, matrix.ErrIndexOutOfBounds)
	}

	return m.data[packedIndex(Components*i+int(a), Components*j+int(b))], nil
}

// SetBlock stores M[3i+a, 3j+b] (and its mirror).
func (m *MassMatrix) SetBlock(i int, a Axis, j int, b Axis, v float64) error {
	if !a.valid() || !b.valid() {
		return fmt.Errorf("MassMatrix.SetBlock(%d%s,%d%s): %w", i, a, j, b, matrix.ErrIndexOutOfBounds)
	}
	if i < 0 || i >= len(m.nodes) || j < 0 || j >= len(m.nodes) {
		return fmt.Errorf("MassMatrix.SetBlock(%d%s,%d%s): %w", i, a, j, b, matrix.ErrIndexOutOfBounds)
	}

	return m.Set(Components*i+int(a), Components*j+int(b), v)
}

// XX returns M[x of node i, x of node j].
func (m *MassMatrix) XX(i, j int) (float64, error) { return m.Block(i, AxisX, j, AxisX) }

// XY returns M[x of node i, y of node j].
func (m *MassMatrix) XY(i, j int) (float64, error) { return m.Block(i, AxisX, j, AxisY) }

// XZ returns M[x of node i, z of node j].
func (m *MassMatrix) XZ(i, j int) (float64, error) { return m.Block(i, AxisX, j, AxisZ) }

// YX returns M[y of node i, x of node j].
func (m *MassMatrix) YX(i, j int) (float64, error) { return m.Block(i, AxisY, j, AxisX) }

// YY returns M[y of node i, y of node j].
func (m *MassMatrix) YY(i, j int) (float64, error) { return m.Block(i, AxisY, j, AxisY) }

// YZ returns M[y of node i, z of node j].
func (m *MassMatrix) YZ(i, j int) (float64, error) { return m.Block(i, AxisY, j, AxisZ) }

// ZX returns M[z of node i, x of node j].
func (m *MassMatrix) ZX(i, j int) (float64, error) { return m.Block(i, AxisZ, j, AxisX) }

// ZY returns M[z of node i, y of node j].
func (m *MassMatrix) ZY(i, j int) (float64, error) { return m.Block(i, AxisZ, j, AxisY) }

// ZZ returns M[z of node i, z of node j].
func (m *MassMatrix) ZZ(i, j int) (float64, error) { return m.Block(i, AxisZ, j, AxisZ) }

// MulVec returns M·x.
// Each packed entry is read once and applied to both triangles.
//
// Errors: ErrShapeMismatch when len(x) != Dim.
// Complexity: O(dim²).
func (m *MassMatrix) MulVec(x []float64) ([]float64, error) {
	if err := matrix.ValidateVecLen(x, m.dim); err != nil {
		return nil, fmt.Errorf("MassMatrix.MulVec: %w", ErrShapeMismatch)
	}
	y := make([]float64, m.dim)
	m.mulVecInto(x, y)

	return y, nil
}

// mulVecInto writes M·x into y; lengths are the caller's responsibility.
func (m *MassMatrix) mulVecInto(x, y []float64) {
	var k, l, base int
	var v float64
	for k = range y {
		y[k] = 0
	}
	for k = 0; k < m.dim; k++ {
		base = k * (k + 1) / 2
		for l = 0; l < k; l++ {
			v = m.data[base+l]
			y[k] += v * x[l] // lower triangle
			y[l] += v * x[k] // mirrored upper triangle
		}
		y[k] += m.data[base+k] * x[k] // diagonal once
	}
}

// Quad returns aᵗ·M·b.
// Errors: ErrShapeMismatch when either length differs from Dim.
func (m *MassMatrix) Quad(a, b []float64) (float64, error) {
	if len(a) != m.dim {
		return 0, fmt.Errorf("MassMatrix.Quad: len(a)=%d: %w", len(a), ErrShapeMismatch)
	}
	mb, err := m.MulVec(b)
	if err != nil {
		return 0, err
	}

	return dot(a, mb), nil
}

// SortNodes reorders/filters node triples on both axes by name, following the
// same rules as matrix.Labeled.SortCols (duplicates allowed, absent dropped).
// Complexity: O(d'²) for d' = 3·len(plan).
func (m *MassMatrix) SortNodes(keys []string) error {
	plan := matrix.NamePlan(m.nodes, keys)
	idx := make([]int, 0, Components*len(plan))
	for _, p := range plan {
		idx = append(idx, Components*p, Components*p+1, Components*p+2)
	}

	next := &MassMatrix{}
	next.rebuild(len(plan))
	for i, p := range plan {
		next.nodes[i] = m.nodes[p]
	}
	var k, l int
	for k = 0; k < next.dim; k++ {
		for l = 0; l <= k; l++ {
			next.data[packedIndex(k, l)] = m.data[packedIndex(idx[k], idx[l])]
		}
	}
	*m = *next

	return nil
}

// Clone returns an independent deep copy.
func (m *MassMatrix) Clone() *MassMatrix {
	return &MassMatrix{
		nodes: append([]string(nil), m.nodes...),
		dim:   m.dim,
		data:  append(make([]float64, 0, len(m.data)), m.data...),
	}
}

// Unpack returns the full dim×dim matrix, both triangles filled.
// Errors: matrix.ErrInvalidDimensions for an empty mass matrix.
func (m *MassMatrix) Unpack() (*matrix.Dense, error) {
	d, err := matrix.NewDense(m.dim, m.dim)
	if err != nil {
		return nil, fmt.Errorf("MassMatrix.Unpack: %w", err)
	}
	var k, l int
	for k = 0; k < m.dim; k++ {
		for l = 0; l < m.dim; l++ {
			_ = d.Set(k, l, m.data[packedIndex(k, l)]) // finite by construction
		}
	}

	return d, nil
}
