// Package main provides the entry point for the aeries CLI.
package main

import (
	"errors"
	"os"

	"github.com/ki-krpto/New-Aeries-Calculator/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		// SilenceErrors suppresses Cobra's own output.
		os.Stderr.WriteString("Error: " + err.Error() + "\n")
		var exitErr *cmd.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}
