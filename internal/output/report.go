package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ki-krpto/New-Aeries-Calculator/internal/calc"
	"github.com/ki-krpto/New-Aeries-Calculator/internal/gradebook"
)

// Format is a record output format.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatCSV   Format = "csv"
)

// Formats lists the supported formats.
var Formats = []Format{FormatTable, FormatJSON, FormatYAML, FormatCSV}

// ParseFormat returns the format named s.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if strings.EqualFold(s, string(f)) {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q (want table, json, yaml or csv)", s)
}

// WriteRecord writes rec to w in the given format.
func WriteRecord(w io.Writer, rec gradebook.Record, format Format, width int) error {
	switch format {
	case FormatTable, "":
		_, err := io.WriteString(w, RecordTable(rec, width))
		return err
	case FormatJSON:
		return WriteJSON(w, rec)
	case FormatYAML:
		return WriteYAML(w, rec)
	case FormatCSV:
		return gradebook.WriteCSV(w, rec.Assignments)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

// WriteJSON writes v as indented JSON followed by a newline.
func WriteJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// WriteYAML writes v as YAML.
func WriteYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return enc.Close()
}

// RecordTable renders the class header, category weights and assignments.
func RecordTable(rec gradebook.Record, width int) string {
	var sb strings.Builder

	title := rec.ClassName
	if title == "" {
		title = "Gradebook"
	}
	sb.WriteString(Header(title, width))
	sb.WriteString("\n")
	if rec.TeacherName != "" {
		fmt.Fprintf(&sb, "Teacher: %s\n", rec.TeacherName)
	}
	sb.WriteString("\n")

	if len(rec.Categories) > 0 {
		weights := NewTable("Category", "Weight").RightAlign(1)
		for _, name := range rec.Categories.Names() {
			weights.AddRow(name, FormatWeight(rec.Categories[name]))
		}
		weights.SetFooter("Total", FormatWeight(rec.Categories.Total()))
		sb.WriteString(weights.Render())
		sb.WriteString("\n")
	}

	sb.WriteString(AssignmentTable(rec.Assignments, width))
	return sb.String()
}

// AssignmentTable renders assignments in their original order.
func AssignmentTable(assignments []gradebook.Assignment, width int) string {
	if len(assignments) == 0 {
		return Color("No assignments found.", Dim) + "\n"
	}

	maxDesc := width / 3
	if maxDesc < 20 {
		maxDesc = 20
	}

	t := NewTable("#", "Description", "Category", "Score", "Comment").RightAlign(0, 3)
	for i, a := range assignments {
		score := a.Score()
		if !a.IsGraded() {
			score = Color(score, Dim)
		}
		t.AddRow(fmt.Sprint(i+1), Truncate(a.Description, maxDesc), a.Category, score, a.Comment)
	}
	return t.RenderCompact()
}

// ReportTable renders a per-category breakdown followed by the final grade.
func ReportTable(report calc.Report, width int) string {
	var sb strings.Builder

	sb.WriteString(SubHeader("Grade Breakdown", width))
	sb.WriteString("\n")

	if len(report.CategoryScores) == 0 {
		sb.WriteString(Color("No graded categories.", Dim))
		sb.WriteString("\n")
	} else {
		t := NewTable("Category", "Points", "Percent", "Weight", "Contribution").RightAlign(1, 2, 3, 4)
		for _, name := range report.Categories() {
			s := report.CategoryScores[name]
			t.AddRow(
				name,
				fmt.Sprintf("%s / %s", gradebook.FormatPoints(s.PointsEarned), gradebook.FormatPoints(s.PointsPossible)),
				FormatPercent(s.Percentage),
				FormatWeight(s.Weight),
				fmt.Sprintf("%.2f", s.WeightedContribution),
			)
		}
		t.SetFooter("Total", "", "", FormatWeight(report.IncludedWeight), fmt.Sprintf("%.2f", report.FinalGrade))
		sb.WriteString(t.RenderCompact())
	}

	sb.WriteString("\n")
	fmt.Fprintf(&sb, "Final grade: %s %s %s\n",
		FormatPercent(report.FinalGrade),
		Color("("+calc.Letter(report.FinalGrade)+")", Bold),
		ProgressBar(report.FinalGrade, 20),
	)
	if len(report.CategoryScores) > 0 && report.IncludedWeight < 100 {
		fmt.Fprintf(&sb, "%s\n", Color(fmt.Sprintf(
			"Note: graded categories cover %s of the weight; the grade is not rescaled.",
			FormatWeight(report.IncludedWeight)), Yellow))
	}
	return sb.String()
}
