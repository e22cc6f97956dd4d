package testutil

import (
	"strings"
	"testing"

	"github.com/ki-krpto/New-Aeries-Calculator/internal/gradebook"
)

// AssignmentOption configures a test assignment.
type AssignmentOption func(*gradebook.Assignment)

// NewTestAssignment creates a graded Classwork assignment worth 10 points, full marks.
func NewTestAssignment(description string, opts ...AssignmentOption) gradebook.Assignment {
	a := gradebook.Assignment{
		Description:    description,
		Category:       "Classwork",
		PointsEarned:   gradebook.Points(10),
		PointsPossible: 10,
	}
	for _, opt := range opts {
		opt(&a)
	}
	return a
}

// WithCategory sets the assignment category.
func WithCategory(category string) AssignmentOption {
	return func(a *gradebook.Assignment) {
		a.Category = category
	}
}

// WithScore sets earned and possible points.
func WithScore(earned, possible float64) AssignmentOption {
	return func(a *gradebook.Assignment) {
		a.PointsEarned = gradebook.Points(earned)
		a.PointsPossible = possible
	}
}

// Ungraded clears the earned points and sets the possible points.
func Ungraded(possible float64) AssignmentOption {
	return func(a *gradebook.Assignment) {
		a.PointsEarned = nil
		a.PointsPossible = possible
	}
}

// WithComment sets the assignment comment.
func WithComment(comment string) AssignmentOption {
	return func(a *gradebook.Assignment) {
		a.Comment = comment
	}
}

// RecordOption configures a test record.
type RecordOption func(*gradebook.Record)

// NewTestRecord creates an empty record with optional configuration.
func NewTestRecord(t *testing.T, opts ...RecordOption) gradebook.Record {
	t.Helper()

	rec := gradebook.NewRecord()
	for _, opt := range opts {
		opt(&rec)
	}
	return rec
}

// WithWeight adds a category weight.
func WithWeight(category string, weight float64) RecordOption {
	return func(r *gradebook.Record) {
		r.Categories[category] = weight
	}
}

// WithAssignments appends assignments.
func WithAssignments(assignments ...gradebook.Assignment) RecordOption {
	return func(r *gradebook.Record) {
		r.Assignments = append(r.Assignments, assignments...)
	}
}

// WithClass sets the class and teacher names.
func WithClass(className, teacherName string) RecordOption {
	return func(r *gradebook.Record) {
		r.ClassName = className
		r.TeacherName = teacherName
	}
}

// Paste builds text shaped like a copy of the Aeries gradebook table view,
// one cell per line.
type Paste struct {
	lines []string
}

// NewPaste starts an empty paste.
func NewPaste() *Paste {
	return &Paste{}
}

// Lines appends raw lines.
func (p *Paste) Lines(lines ...string) *Paste {
	p.lines = append(p.lines, lines...)
	return p
}

// Course appends the bracketed course header and the teacher line.
func (p *Paste) Course(header, teacher string) *Paste {
	return p.Lines("<<"+header+">>", teacher)
}

// Totals appends a totals table closed by the "Transfer Grade" marker.
// Lines are category names each followed by their weight.
func (p *Paste) Totals(lines ...string) *Paste {
	p.Lines("Totals", "Category", "Perc of Grade")
	p.Lines(lines...)
	return p.Lines("Transfer Grade")
}

// Row appends an assignment row: number, description, category, then cells.
func (p *Paste) Row(number, description, category string, cells ...string) *Paste {
	p.Lines(number, description, category)
	return p.Lines(cells...)
}

// GradedRow appends a completed row with score, percent, two dates and "Yes".
func (p *Paste) GradedRow(number, description, category, score string) *Paste {
	return p.Row(number, description, category, score, "100%", "09/05/2025", "09/05/2025", "Yes")
}

// String joins the lines with newlines.
func (p *Paste) String() string {
	return strings.Join(p.lines, "\n") + "\n"
}
