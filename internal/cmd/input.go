package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"

	"github.com/ki-krpto/New-Aeries-Calculator/internal/extract"
	"github.com/ki-krpto/New-Aeries-Calculator/internal/gradebook"
	"github.com/ki-krpto/New-Aeries-Calculator/internal/logging"
)

// readPaste returns the text of the file named by args, or stdin when args is
// empty or "-".
func readPaste(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("failed to read paste: %w", err)
	}
	return string(data), nil
}

// parsePaste reads and extracts a record with the configured layout.
func parsePaste(cmd *cobra.Command, args []string) (gradebook.Record, error) {
	text, err := readPaste(cmd, args)
	if err != nil {
		return gradebook.Record{}, err
	}

	p, err := extract.New(cfg.Aeries.Layout, extract.WithLogger(logger))
	if err != nil {
		return gradebook.Record{}, fmt.Errorf("failed to build parser: %w", err)
	}

	var rec gradebook.Record
	logging.TimedStep(logger, "parse", func() {
		rec = p.Parse(text)
	})
	_ = level.Info(logger).Log("msg", "parsed paste",
		"class", rec.ClassName,
		"categories", len(rec.Categories),
		"assignments", len(rec.Assignments))

	if rec.IsEmpty() {
		return rec, NewExitError(ExitNoAssignments, "no assignments found")
	}
	return rec, nil
}

func outputWidth() int {
	if cfg.Aeries.Output.Width > 0 {
		return cfg.Aeries.Output.Width
	}
	return 80
}
