// Package config resolves modalcorr settings from defaults, a YAML config
// file, MODALCORR_* environment variables and command-line flags.
package config

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/modalcorr/correlation"
	"github.com/katalvlaran/modalcorr/internal/logging"
)

// Defaults applied before any file, env or flag source.
const (
	DefaultWorkers   = 1
	DefaultOutput    = OutputTable
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// Output formats understood by the report package.
const (
	OutputTable    = "table"
	OutputJSON     = "json"
	OutputMarkdown = "markdown"
	OutputCSV      = "csv"
)

// Config is the resolved configuration of one CLI invocation.
type Config struct {
	// Scenario is the path of the YAML scenario to match.
	Scenario string `koanf:"scenario"`
	// Metric overrides the scenario metric when non-empty.
	Metric string `koanf:"metric"`
	// Tolerance overrides the scenario tolerance when set.
	Tolerance *float64 `koanf:"tolerance"`
	Workers   int      `koanf:"workers"`
	Output    string   `koanf:"output"`
	// Arrange also prints the greedily arranged score table.
	Arrange bool `koanf:"arrange"`
	// Color paints the arranged table by score band.
	Color     bool   `koanf:"color"`
	LogLevel  string `koanf:"log_level"`
	LogFormat string `koanf:"log_format"`
}

// Validate checks the values a command cannot run without.
func (c *Config) Validate() error {
	if c.Metric != "" {
		if _, err := correlation.ParseMetric(c.Metric); err != nil {
			return fmt.Errorf("metric: %w", err)
		}
	}
	if c.Tolerance != nil && math.IsNaN(*c.Tolerance) {
		return fmt.Errorf("tolerance must be a number")
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be >= 1, got %d", c.Workers)
	}
	switch c.Output {
	case OutputTable, OutputJSON, OutputMarkdown, OutputCSV:
	default:
		return fmt.Errorf("unknown output format %q (want table, json, markdown or csv)", c.Output)
	}
	if !logging.ValidLevel(c.LogLevel) {
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q (want text or json)", c.LogFormat)
	}

	return nil
}
