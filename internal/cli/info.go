package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/modalcorr/correlation"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "modalcorr %s (commit %s, built %s)\n", Version, GitCommit, BuildDate)
		},
	}
}

func newMetricsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "metrics",
		Short: "List the scoring metrics",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			w := cmd.OutOrStdout()
			for _, name := range metricNames() {
				m, _ := correlation.ParseMetric(name)
				mass := ""
				if m.UsesMass() {
					mass = " (needs mass matrix)"
				}
				fmt.Fprintf(w, "%-8s %s%s\n", name, m.Direction(), mass)
			}
		},
	}
}
