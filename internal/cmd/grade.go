package cmd

import (
	"fmt"
	"strings"

	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"

	"github.com/ki-krpto/New-Aeries-Calculator/internal/calc"
	"github.com/ki-krpto/New-Aeries-Calculator/internal/gradebook"
	"github.com/ki-krpto/New-Aeries-Calculator/internal/output"
)

var gradeJSON bool

var gradeCmd = &cobra.Command{
	Use:   "grade [FILE|-]",
	Short: "Calculate the weighted grade for a gradebook paste",
	Long: `Extract a gradebook paste and calculate the weighted final grade.

Each category's percentage is its total earned points over its total possible
points. Ungraded assignments count toward possible points, so the grade is the
grade "as if everything listed were due now".

Exit codes:
  0  Grade calculated
  1  Error reading input or configuration
  2  No assignments found in the paste`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGrade,
}

func init() {
	gradeCmd.Flags().BoolVar(&gradeJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(gradeCmd)
}

func runGrade(cmd *cobra.Command, args []string) error {
	rec, err := parsePaste(cmd, args)
	if err != nil {
		return err
	}
	return printGrade(cmd, rec, gradeJSON)
}

// gradeResult is the JSON form of a calculated grade.
type gradeResult struct {
	ClassName   string `json:"class_name,omitempty"`
	TeacherName string `json:"teacher_name,omitempty"`
	calc.Report
	Letter     string   `json:"letter"`
	Unweighted []string `json:"unweighted_categories,omitempty"`
}

func printGrade(cmd *cobra.Command, rec gradebook.Record, asJSON bool) error {
	report := calc.Calculate(rec.Assignments, rec.Categories)
	unweighted := rec.UnweightedCategories()
	if len(unweighted) > 0 {
		_ = level.Warn(logger).Log("msg", "assignments in categories without a weight are ignored",
			"categories", strings.Join(unweighted, ","))
	}

	out := cmd.OutOrStdout()
	if asJSON {
		return output.WriteJSON(out, gradeResult{
			ClassName:   rec.ClassName,
			TeacherName: rec.TeacherName,
			Report:      report,
			Letter:      calc.Letter(report.FinalGrade),
			Unweighted:  unweighted,
		})
	}

	width := outputWidth()
	title := rec.ClassName
	if title == "" {
		title = "Grade Report"
	}
	fmt.Fprintln(out, output.Header(title, width))
	if rec.TeacherName != "" {
		fmt.Fprintf(out, "Teacher: %s\n", rec.TeacherName)
	}
	fmt.Fprintf(out, "Assignments: %d\n\n", len(rec.Assignments))
	fmt.Fprint(out, output.ReportTable(report, width))
	if len(unweighted) > 0 {
		fmt.Fprintln(out, output.Color("Ignored (no weight): "+strings.Join(unweighted, ", "), output.Yellow))
	}
	return nil
}
