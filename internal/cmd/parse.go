package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ki-krpto/New-Aeries-Calculator/internal/output"
)

var parseFormat string

var parseCmd = &cobra.Command{
	Use:   "parse [FILE|-]",
	Short: "Extract assignments and category weights from a gradebook paste",
	Long: `Read text copied from the Aeries gradebook and print the class, teacher,
category weights and assignments found in it.

Reads stdin when FILE is omitted or "-".

Exit codes:
  0  Assignments found
  1  Error reading input or configuration
  2  No assignments found in the paste

Examples:
    aeries parse gradebook.txt
    pbpaste | aeries parse --format json
    aeries parse gradebook.txt --format csv > assignments.csv`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringVar(&parseFormat, "format", "", "output format: table, json, yaml, csv (default from config)")

	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	name := parseFormat
	if name == "" {
		name = cfg.Aeries.Output.Format
	}
	format, err := output.ParseFormat(name)
	if err != nil {
		return NewExitError(ExitFailure, err.Error())
	}

	rec, err := parsePaste(cmd, args)
	if err != nil {
		return err
	}

	return output.WriteRecord(cmd.OutOrStdout(), rec, format, outputWidth())
}
