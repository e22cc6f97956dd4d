// Package gradebook provides the grade data model shared by the extractor and calculator.
package gradebook

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// Assignment is a single graded (or not yet graded) piece of work.
type Assignment struct {
	Description string `yaml:"description" json:"description" validate:"required"`
	Category    string `yaml:"category" json:"category" validate:"required"`

	// PointsEarned is nil when the assignment has not been graded yet.
	PointsEarned   *float64 `yaml:"points_earned" json:"points_earned" validate:"omitempty,gte=0"`
	PointsPossible float64  `yaml:"points_possible" json:"points_possible" validate:"gte=0"`

	Comment string `yaml:"comment,omitempty" json:"comment,omitempty"`
}

// Points returns a pointer to v, for building assignments by hand.
func Points(v float64) *float64 {
	return &v
}

// IsGraded reports whether points have been earned on the assignment.
func (a Assignment) IsGraded() bool {
	return a.PointsEarned != nil
}

// Earned returns the earned points, or 0 for an ungraded assignment.
func (a Assignment) Earned() float64 {
	if a.PointsEarned == nil {
		return 0
	}
	return *a.PointsEarned
}

// Score formats the assignment as "earned / possible", leaving earned blank when ungraded.
func (a Assignment) Score() string {
	possible := FormatPoints(a.PointsPossible)
	if a.PointsEarned == nil {
		return "/ " + possible
	}
	return FormatPoints(*a.PointsEarned) + " / " + possible
}

// FormatPoints renders points without trailing zeros.
func FormatPoints(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Weights maps a category name to its percentage weight toward the final grade.
type Weights map[string]float64

// Names returns the category names in sorted order.
func (w Weights) Names() []string {
	names := make([]string, 0, len(w))
	for name := range w {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether the category has a weight entry.
func (w Weights) Has(name string) bool {
	_, ok := w[name]
	return ok
}

// Total returns the sum of all weights.
func (w Weights) Total() float64 {
	total := 0.0
	for _, name := range w.Names() {
		total += w[name]
	}
	return total
}

// ParseWeight parses a "Name=40" flag value into a category name and weight.
// A trailing % on the weight is accepted.
func ParseWeight(s string) (string, float64, error) {
	idx := strings.LastIndex(s, "=")
	if idx <= 0 {
		return "", 0, &WeightError{Value: s, Reason: "expected Name=weight"}
	}
	name := strings.TrimSpace(s[:idx])
	raw := strings.TrimSuffix(strings.TrimSpace(s[idx+1:]), "%")
	if name == "" {
		return "", 0, &WeightError{Value: s, Reason: "empty category name"}
	}
	weight, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(weight) || math.IsInf(weight, 0) {
		return "", 0, &WeightError{Value: s, Reason: "weight is not a number"}
	}
	if weight < 0 {
		return "", 0, &WeightError{Value: s, Reason: "weight must not be negative"}
	}
	return name, weight, nil
}

// WeightError describes a malformed category weight.
type WeightError struct {
	Value  string
	Reason string
}

func (e *WeightError) Error() string {
	return "invalid weight " + strconv.Quote(e.Value) + ": " + e.Reason
}
