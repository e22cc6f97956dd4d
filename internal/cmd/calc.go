package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ki-krpto/New-Aeries-Calculator/internal/gradebook"
)

var (
	calcWeights []string
	calcJSON    bool
)

var calcCmd = &cobra.Command{
	Use:   "calc FILE",
	Short: "Calculate a grade from a saved record or an assignment CSV",
	Long: `Calculate the weighted grade for assignments entered by hand.

FILE is a record written by "aeries new" or "aeries parse --format yaml|json",
or a CSV with the columns description, category, points_earned,
points_possible and comment. A CSV carries no weights, so pass them with
--weight. Weights given on the command line override the matching weights in
the record.

Examples:
    aeries calc biology.yaml
    aeries calc scores.csv --weight Classwork=40 --weight "Tests & Quizzes=60"`,
	Args: cobra.ExactArgs(1),
	RunE: runCalc,
}

func init() {
	calcCmd.Flags().StringArrayVarP(&calcWeights, "weight", "w", nil, `category weight as "Name=40" (repeatable)`)
	calcCmd.Flags().BoolVar(&calcJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(calcCmd)
}

func runCalc(cmd *cobra.Command, args []string) error {
	rec, err := loadManual(args[0])
	if err != nil {
		return err
	}

	for _, w := range calcWeights {
		name, weight, err := gradebook.ParseWeight(w)
		if err != nil {
			return NewExitError(ExitFailure, err.Error())
		}
		rec.Categories[name] = weight
	}

	if err := rec.Validate(); err != nil {
		return NewExitError(ExitFailure, err.Error())
	}
	if len(rec.Categories) == 0 {
		return NewExitError(ExitFailure, "no category weights (use --weight Name=40)")
	}
	if rec.IsEmpty() {
		return NewExitError(ExitNoAssignments, "no assignments found")
	}

	return printGrade(cmd, rec, calcJSON)
}

func loadManual(path string) (gradebook.Record, error) {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		assignments, err := gradebook.LoadCSV(path)
		if err != nil {
			return gradebook.Record{}, fmt.Errorf("failed to load assignments: %w", err)
		}
		rec := gradebook.NewRecord()
		rec.Assignments = assignments
		return rec, nil
	}

	rec, err := gradebook.LoadRecord(path)
	if err != nil {
		return gradebook.Record{}, fmt.Errorf("failed to load record: %w", err)
	}
	return rec, nil
}
