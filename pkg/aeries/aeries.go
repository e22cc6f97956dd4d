// Package aeries extracts assignments and category weights from text copied
// out of the Aeries student gradebook, and calculates weighted grades.
//
// Basic usage:
//
//	rec := aeries.Parse(pasted)
//	report := aeries.CalculateGrade(rec.Assignments, rec.Categories)
//	fmt.Printf("%s: %.1f%%\n", rec.ClassName, report.FinalGrade)
//
// With a custom layout:
//
//	layout := aeries.DefaultLayout()
//	layout.Categories = append(layout.Categories, "Warm-Ups")
//	p, err := aeries.NewParser(layout)
//	if err != nil {
//	    return err
//	}
//	rec := p.Parse(pasted)
//
// Parse and CalculateGrade never fail: text without a recognizable gradebook
// gives an empty record, and an empty record gives a zero grade.
package aeries

import (
	"github.com/ki-krpto/New-Aeries-Calculator/internal/calc"
	"github.com/ki-krpto/New-Aeries-Calculator/internal/config"
	"github.com/ki-krpto/New-Aeries-Calculator/internal/extract"
	"github.com/ki-krpto/New-Aeries-Calculator/internal/gradebook"
)

type (
	// Record is the result of parsing one gradebook paste.
	Record = gradebook.Record
	// Assignment is one graded or ungraded gradebook entry.
	Assignment = gradebook.Assignment
	// Weights maps category names to percentage weights.
	Weights = gradebook.Weights
	// Report is a calculated grade with its per-category breakdown.
	Report = calc.Report
	// CategoryScore is one category's share of a Report.
	CategoryScore = calc.CategoryScore
	// Layout holds the tables that describe the pasted gradebook layout.
	Layout = config.Layout
	// Parser extracts records using one Layout.
	Parser = extract.Parser
)

var defaultParser = extract.Default()

// DefaultLayout returns the layout of the Aeries gradebook table view.
func DefaultLayout() Layout {
	return config.DefaultLayout()
}

// NewParser creates a parser for layout, which must be valid.
func NewParser(layout Layout) (*Parser, error) {
	return extract.New(layout)
}

// Parse extracts a record from pasted text with the default layout.
func Parse(text string) Record {
	return defaultParser.Parse(text)
}

// CalculateGrade computes the weighted final grade. See calc.Calculate.
func CalculateGrade(assignments []Assignment, weights map[string]float64) Report {
	return calc.Calculate(assignments, weights)
}

// Letter returns the US letter grade for a percentage.
func Letter(pct float64) string {
	return calc.Letter(pct)
}
