// speccheck - Spec Bundle Validation
// Author: Ariel Frischer
// Source: https://github.com/ariel-frischer/speccheck

package main

import (
	"os"

	"github.com/ariel-frischer/speccheck/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
