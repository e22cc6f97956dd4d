// Package calc computes weighted final grades from raw point totals.
package calc

import (
	"math"
	"sort"

	"github.com/ki-krpto/New-Aeries-Calculator/internal/gradebook"
)

// CategoryScore is one category's share of the final grade.
type CategoryScore struct {
	PointsEarned         float64 `json:"points_earned" yaml:"points_earned"`
	PointsPossible       float64 `json:"points_possible" yaml:"points_possible"`
	Percentage           float64 `json:"percentage" yaml:"percentage"`
	Weight               float64 `json:"weight" yaml:"weight"`
	WeightedContribution float64 `json:"weighted_contribution" yaml:"weighted_contribution"`
}

// Report is the result of a grade calculation.
type Report struct {
	FinalGrade     float64                  `json:"final_grade" yaml:"final_grade"`
	CategoryScores map[string]CategoryScore `json:"category_scores" yaml:"category_scores"`

	// IncludedWeight is the total weight of the categories that had points possible.
	IncludedWeight float64 `json:"included_weight" yaml:"included_weight"`
}

// Categories returns the scored category names in sorted order.
func (r Report) Categories() []string {
	names := make([]string, 0, len(r.CategoryScores))
	for name := range r.CategoryScores {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Calculate computes the final grade for assignments under the category weights.
//
// Points are totalled per category, so a category's percentage is its earned
// points over its possible points, not an average of assignment percentages.
// Ungraded assignments add to possible points but not earned points, giving a
// grade "as if due now". Assignments in categories without a weight are
// ignored, as are categories with no possible points.
//
// The final grade is the sum of the weighted contributions. It is not
// rescaled by the included weight, so weights that cover less than 100 cap
// the grade below 100.
func Calculate(assignments []gradebook.Assignment, weights gradebook.Weights) Report {
	report := Report{CategoryScores: make(map[string]CategoryScore)}
	if len(assignments) == 0 || len(weights) == 0 {
		return report
	}

	groups := make(map[string][]gradebook.Assignment, len(weights))
	for _, a := range assignments {
		if weights.Has(a.Category) {
			groups[a.Category] = append(groups[a.Category], a)
		}
	}

	// Sorted so floating point sums are the same on every call.
	total := 0.0
	for _, name := range weights.Names() {
		group := groups[name]
		if len(group) == 0 {
			continue
		}

		score, ok := scoreCategory(group, weights[name])
		if !ok {
			continue
		}
		report.CategoryScores[name] = score
		total += score.WeightedContribution
		report.IncludedWeight += score.Weight
	}

	if report.IncludedWeight > 0 {
		report.FinalGrade = total
	}
	return report
}

func scoreCategory(group []gradebook.Assignment, weight float64) (CategoryScore, bool) {
	score := CategoryScore{Weight: weight}
	for _, a := range group {
		score.PointsPossible += a.PointsPossible
		score.PointsEarned += a.Earned()
	}
	if score.PointsPossible <= 0 {
		return CategoryScore{}, false
	}

	score.Percentage = score.PointsEarned / score.PointsPossible * 100
	score.WeightedContribution = score.Percentage * weight / 100

	if !finite(score.PointsEarned, score.PointsPossible, score.Percentage, score.WeightedContribution) {
		return CategoryScore{}, false
	}
	return score, true
}

func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
