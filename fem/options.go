package fem

import (
	"log/slog"

	"github.com/katalvlaran/modalcorr/correlation"
	"github.com/katalvlaran/modalcorr/internal/logging"
)

// DefaultWorkers runs the pairwise scoring pass sequentially.
const DefaultWorkers = 1

const (
	panicWorkersInvalid = "fem: WithWorkers: workers must be >= 1"
	panicNilLogger      = "fem: WithLogger: logger must be non-nil"
)

// Option configures a scoring call.
type Option func(*Options)

// Options is the resolved configuration of a scoring call.
type Options struct {
	workers int
	logger  *slog.Logger
	corr    []correlation.Option
}

// WithWorkers sets how many rows of the score table are computed at once.
// The result does not depend on the worker count.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithLogger logs scoring and, through the returned table, matching.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = l }
}

// WithTolerances sets the display tolerances of the returned table.
// It panics like correlation.WithTolerances on lower > upper.
func WithTolerances(lower, upper float64) Option {
	set := correlation.WithTolerances(lower, upper)

	return func(o *Options) { o.corr = append(o.corr, set) }
}

func gatherOptions(user ...Option) Options {
	o := Options{workers: DefaultWorkers}
	for _, set := range user {
		set(&o)
	}
	if o.logger == nil {
		o.logger = logging.Discard()
	}

	return o
}

// tableOptions returns the correlation options for a result table.
func (o Options) tableOptions(frequencies bool) []correlation.Option {
	out := make([]correlation.Option, 0, len(o.corr)+2)
	out = append(out, correlation.WithLogger(o.logger))
	if frequencies {
		out = append(out, correlation.WithFrequencies())
	}

	return append(out, o.corr...)
}
