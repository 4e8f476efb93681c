// Package cli provides the modalcorr command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/modalcorr/correlation"
	"github.com/katalvlaran/modalcorr/internal/config"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "modalcorr",
		Short: "Correlate FE point clouds and mode sets",
		Long: `modalcorr scores two datasets against each other (point distances or
modal metrics such as MAC and mass orthogonality) and pairs them greedily.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}
			cfg, err := config.Load(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			logger := cfg.NewLogger(cmd.ErrOrStderr())
			cmd.SetContext(config.WithConfig(cmd.Context(), cfg, logger))

			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default: ./modalcorr.yaml)")
	pf.Int("workers", config.DefaultWorkers, "rows scored concurrently")
	pf.StringP("output", "o", config.DefaultOutput, "output format (table|json|markdown|csv)")
	pf.String("log-level", config.DefaultLogLevel, "log level (info|debug|trace|warn|error)")
	pf.String("log-format", config.DefaultLogFormat, "log format (text|json)")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{config.OutputTable, config.OutputJSON, config.OutputMarkdown, config.OutputCSV}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("log-level", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"info", "debug", "trace", "warn", "error"}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(newMatchCommand())
	rootCmd.AddCommand(newMetricsCommand())
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

func metricNames() []string {
	out := make([]string, 0, 5)
	for m := correlation.Distance; m <= correlation.Orthogonality; m++ {
		out = append(out, m.String())
	}

	return out
}
