package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/modalcorr/fem"
	"github.com/katalvlaran/modalcorr/internal/config"
	"github.com/katalvlaran/modalcorr/internal/report"
	"github.com/katalvlaran/modalcorr/internal/scenario"
)

func newMatchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match [scenario.yaml]",
		Short: "Score a scenario and print the greedy pairing",
		Long: `Loads a YAML scenario, scores its first dataset against its last with the
chosen metric and prints the pairs accepted by the tolerance, best first.

Without a tolerance every diagonal pair of the greedy sweep is kept.`,
		Example: `  modalcorr match beam.yaml --metric mac --tolerance 0.8
  modalcorr match -s cloud.yaml -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: runMatch,
	}

	f := cmd.Flags()
	f.StringP("scenario", "s", "", "scenario file")
	f.StringP("metric", "m", "", "metric (distance|dot|mac|mass|ortho); default from the scenario")
	f.Float64P("tolerance", "t", 0, "acceptance tolerance; default from the scenario")
	f.Bool("arrange", false, "also print the arranged score table")
	f.Bool("color", false, "color the arranged table by score band")

	_ = cmd.RegisterFlagCompletionFunc("metric", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return metricNames(), cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func runMatch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := config.FromContext(ctx)
	if cfg == nil {
		return errors.New("configuration not loaded")
	}
	logger := config.GetLogger(ctx)

	path := cfg.Scenario
	if len(args) == 1 {
		path = args[0]
	}
	if path == "" {
		return errors.New("no scenario given (pass a file or --scenario)")
	}

	sc, err := scenario.Load(path)
	if err != nil {
		return err
	}
	metric, err := sc.ResolveMetric(cfg.Metric)
	if err != nil {
		return err
	}
	tol := sc.ResolveTolerance(metric, cfg.Tolerance)

	cm, err := sc.Score(metric, fem.WithWorkers(cfg.Workers), fem.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("scoring %s: %w", path, err)
	}
	conn, err := cm.MatchGreedy(tol)
	if err != nil {
		return err
	}
	logger.Info("matched",
		slog.String("scenario", path),
		slog.String("metric", metric.String()),
		slog.Int("rows", cm.Rows()),
		slog.Int("cols", cm.Cols()),
		slog.Int("pairs", conn.Len()))

	out := cmd.OutOrStdout()
	name := sc.Name
	if name == "" {
		name = path
	}
	if err = report.Connection(out, report.Header{Scenario: name, Tolerance: tol}, conn, cfg.Output); err != nil {
		return err
	}
	if cfg.Arrange {
		return report.Matrix(out, cm.Arrange(), cfg.Output, report.MatrixOptions{Color: cfg.Color})
	}

	return nil
}
