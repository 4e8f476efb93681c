package correlation

import (
	"log/slog"
	"math"

	"github.com/katalvlaran/modalcorr/internal/logging"
)

// Display defaults. They only drive Band classification, never matching.
const (
	DefaultLowerTolerance = 0.5
	DefaultUpperTolerance = 0.9
)

const (
	panicTolerances = "correlation: WithTolerances: need finite lower <= upper"
	panicNilLogger  = "correlation: WithLogger: logger must be non-nil"
)

// Option configures a new Matrix.
type Option func(*Options)

// Options is the resolved configuration of a new Matrix.
type Options struct {
	frequencies bool
	lower       float64
	upper       float64
	logger      *slog.Logger
}

// WithFrequencies allocates per-row and per-column frequency slices.
func WithFrequencies() Option {
	return func(o *Options) { o.frequencies = true }
}

// WithTolerances sets the display tolerances.
// Panics when lower > upper or either is not finite (programmer error);
// use Matrix.SetTolerances to validate user input.
func WithTolerances(lower, upper float64) Option {
	if !validTolerances(lower, upper) {
		panic(panicTolerances)
	}

	return func(o *Options) { o.lower, o.upper = lower, upper }
}

// WithLogger routes matching diagnostics to l (debug level).
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = l }
}

func gatherOptions(user ...Option) Options {
	o := Options{
		lower: DefaultLowerTolerance,
		upper: DefaultUpperTolerance,
	}
	for _, set := range user {
		set(&o)
	}
	if o.logger == nil {
		o.logger = logging.Discard()
	}

	return o
}

func validTolerances(lower, upper float64) bool {
	if math.IsNaN(lower) || math.IsNaN(upper) || math.IsInf(lower, 0) || math.IsInf(upper, 0) {
		return false
	}

	return lower <= upper
}
