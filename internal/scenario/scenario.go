// Package scenario loads YAML correlation cases: two datasets (points or
// modes), an optional mass matrix and an optional selection, and scores them
// with the fem package.
//
// Example:
//
//	name: cantilever
//	metric: mac
//	tolerance: 0.8
//	first:
//	  nodes: [p, q]
//	  modes:
//	    - {name: bend1, frequency: 12.1, shape: [0, 1, 0, 0, 2, 0]}
//	last:
//	  nodes: [p, q]
//	  modes:
//	    - {name: t1, frequency: 12.4, shape: [0, 1.1, 0, 0, 1.9, 0]}
//	selection:
//	  first: {nodes: [q]}
//	  last:  {nodes: [q]}
package scenario

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/modalcorr/correlation"
)

// ErrInvalid indicates a scenario that cannot be turned into datasets.
var ErrInvalid = errors.New("scenario: invalid")

// Point is one named location.
type Point struct {
	Name string     `yaml:"name"`
	XYZ  [3]float64 `yaml:"xyz"`
}

// Mode is one named mode shape; Shape holds x,y,z per node in node order.
type Mode struct {
	Name      string    `yaml:"name"`
	Frequency float64   `yaml:"frequency"`
	Shape     []float64 `yaml:"shape"`
}

// Dataset is one side of a scenario: either points, or modes over nodes.
type Dataset struct {
	Points []Point  `yaml:"points,omitempty"`
	Nodes  []string `yaml:"nodes,omitempty"`
	Modes  []Mode   `yaml:"modes,omitempty"`
	Color  []int    `yaml:"color,omitempty"`
}

// Mass is a full symmetric mass matrix over Nodes, 3 rows per node.
type Mass struct {
	Nodes  []string    `yaml:"nodes"`
	Matrix [][]float64 `yaml:"matrix"`
}

// Side restricts one dataset. Points applies to point datasets; Modes and
// Nodes to mode datasets. An omitted list keeps that axis whole.
type Side struct {
	Points []string `yaml:"points,omitempty"`
	Modes  []string `yaml:"modes,omitempty"`
	Nodes  []string `yaml:"nodes,omitempty"`
}

// Selection restricts both datasets before scoring.
type Selection struct {
	First Side `yaml:"first"`
	Last  Side `yaml:"last"`
}

// Scenario is the decoded YAML document.
type Scenario struct {
	Name      string     `yaml:"name"`
	Metric    string     `yaml:"metric,omitempty"`
	Tolerance *float64   `yaml:"tolerance,omitempty"`
	First     Dataset    `yaml:"first"`
	Last      Dataset    `yaml:"last"`
	Mass      *Mass      `yaml:"mass,omitempty"`
	Selection *Selection `yaml:"selection,omitempty"`
}

// Load reads and parses the scenario at path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	sc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return sc, nil
}

// Parse decodes a scenario document and checks its shape.
func Parse(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if err := sc.validate(); err != nil {
		return nil, err
	}

	return &sc, nil
}

func (sc *Scenario) validate() error {
	for _, side := range []struct {
		label string
		ds    Dataset
	}{{"first", sc.First}, {"last", sc.Last}} {
		hasPoints, hasModes := len(side.ds.Points) > 0, len(side.ds.Modes) > 0
		if hasPoints == hasModes {
			return fmt.Errorf("%w: %s needs either points or modes", ErrInvalid, side.label)
		}
		if hasModes && len(side.ds.Nodes) == 0 {
			return fmt.Errorf("%w: %s modes need nodes", ErrInvalid, side.label)
		}
		if err := checkColor(side.ds.Color); err != nil {
			return fmt.Errorf("%w: %s color: %v", ErrInvalid, side.label, err)
		}
	}
	if sc.First.IsPoints() != sc.Last.IsPoints() {
		return fmt.Errorf("%w: cannot correlate points with modes", ErrInvalid)
	}
	if sc.Metric != "" {
		if _, err := correlation.ParseMetric(sc.Metric); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalid, err)
		}
	}
	if sc.Tolerance != nil && math.IsNaN(*sc.Tolerance) {
		return fmt.Errorf("%w: tolerance is NaN", ErrInvalid)
	}

	return nil
}

func checkColor(c []int) error {
	if len(c) == 0 {
		return nil
	}
	if len(c) != 3 {
		return fmt.Errorf("need 3 components, got %d", len(c))
	}
	for _, v := range c {
		if v < 0 || v > 255 {
			return fmt.Errorf("component %d outside 0..255", v)
		}
	}

	return nil
}

// IsPoints reports whether the dataset holds points.
func (d Dataset) IsPoints() bool { return len(d.Points) > 0 }

// DefaultMetric is the metric used when neither the scenario nor the caller
// picks one: Distance for points, MAC for modes.
func (sc *Scenario) DefaultMetric() correlation.Metric {
	if sc.First.IsPoints() {
		return correlation.Distance
	}

	return correlation.MAC
}

// ResolveMetric returns override when non-empty, else the scenario metric,
// else DefaultMetric.
func (sc *Scenario) ResolveMetric(override string) (correlation.Metric, error) {
	name := override
	if name == "" {
		name = sc.Metric
	}
	if name == "" {
		return sc.DefaultMetric(), nil
	}

	return correlation.ParseMetric(name)
}

// ResolveTolerance returns override when set, else the scenario tolerance,
// else the tolerance that accepts every pair for the metric direction.
func (sc *Scenario) ResolveTolerance(metric correlation.Metric, override *float64) float64 {
	switch {
	case override != nil:
		return *override
	case sc.Tolerance != nil:
		return *sc.Tolerance
	case metric.Direction() == correlation.Minimize:
		return math.Inf(1)
	default:
		return math.Inf(-1)
	}
}
