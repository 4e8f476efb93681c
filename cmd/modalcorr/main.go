// Command modalcorr correlates FE datasets from YAML scenarios.
package main

import (
	"os"

	"github.com/katalvlaran/modalcorr/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
