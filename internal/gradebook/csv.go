package gradebook

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// Assignment CSV columns, in output order.
var csvColumns = []string{
	"description",
	"category",
	"points_earned",
	"points_possible",
	"comment",
}

var requiredColumns = []string{"description", "category", "points_possible"}

// LoadCSV reads assignments from a CSV file.
func LoadCSV(path string) ([]Assignment, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open assignments: %w", err)
	}
	defer file.Close()

	return ReadCSV(file)
}

// ReadCSV reads assignments from a CSV reader with a header row.
// A blank points_earned cell means the assignment is not graded yet.
func ReadCSV(r io.Reader) ([]Assignment, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	colIndex := make(map[string]int, len(header))
	for i, col := range header {
		colIndex[normalizeColumnName(col)] = i
	}
	for _, col := range requiredColumns {
		if _, ok := colIndex[col]; !ok {
			return nil, fmt.Errorf("missing required column: %s", col)
		}
	}

	assignments := make([]Assignment, 0)
	lineNum := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		lineNum++
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row %d: %w", lineNum, err)
		}

		a, err := parseRow(row, colIndex)
		if err != nil {
			return nil, fmt.Errorf("failed to parse row %d: %w", lineNum, err)
		}
		assignments = append(assignments, a)
	}

	return assignments, nil
}

// WriteCSV writes assignments with a header row.
func WriteCSV(w io.Writer, assignments []Assignment) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(csvColumns); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for i, a := range assignments {
		if err := writer.Write(formatRow(a)); err != nil {
			return fmt.Errorf("failed to write CSV row %d: %w", i+1, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// normalizeColumnName lowercases a header and joins words with underscores,
// so "Points Earned" and "points_earned" name the same column.
func normalizeColumnName(name string) string {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(name)))
	return strings.Join(fields, "_")
}

func parseRow(row []string, colIndex map[string]int) (Assignment, error) {
	get := func(col string) string {
		if idx, ok := colIndex[col]; ok && idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	a := Assignment{
		Description: get("description"),
		Category:    get("category"),
		Comment:     get("comment"),
	}
	if a.Description == "" {
		return a, fmt.Errorf("description is required")
	}
	if a.Category == "" {
		return a, fmt.Errorf("category is required")
	}

	possible, err := parsePoints(get("points_possible"))
	if err != nil {
		return a, fmt.Errorf("invalid points_possible %q", get("points_possible"))
	}
	a.PointsPossible = possible

	if raw := get("points_earned"); raw != "" {
		earned, err := parsePoints(raw)
		if err != nil {
			return a, fmt.Errorf("invalid points_earned %q", raw)
		}
		a.PointsEarned = &earned
	}

	return a, nil
}

// parsePoints parses a finite number of points.
func parsePoints(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("points must be finite")
	}
	return v, nil
}

func formatRow(a Assignment) []string {
	earned := ""
	if a.PointsEarned != nil {
		earned = FormatPoints(*a.PointsEarned)
	}
	return []string{
		a.Description,
		a.Category,
		earned,
		FormatPoints(a.PointsPossible),
		a.Comment,
	}
}
