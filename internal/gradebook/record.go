package gradebook

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultCategory is the single category a manually entered record starts with.
const DefaultCategory = "Assignments"

// Record is the structured result of reading a gradebook export.
type Record struct {
	ClassName   string       `yaml:"class_name" json:"class_name"`
	TeacherName string       `yaml:"teacher_name" json:"teacher_name"`
	Categories  Weights      `yaml:"categories" json:"categories" validate:"dive,gte=0"`
	Assignments []Assignment `yaml:"assignments" json:"assignments" validate:"dive"`
}

// NewRecord returns an empty record with non-nil collections.
func NewRecord() Record {
	return Record{
		Categories:  make(Weights),
		Assignments: make([]Assignment, 0),
	}
}

// ManualRecord returns a template for hand entry: one category carrying the full weight.
func ManualRecord(className, teacherName string) Record {
	rec := NewRecord()
	rec.ClassName = strings.TrimSpace(className)
	rec.TeacherName = strings.TrimSpace(teacherName)
	rec.Categories[DefaultCategory] = 100
	return rec
}

// IsEmpty reports whether no assignments were found.
func (r Record) IsEmpty() bool {
	return len(r.Assignments) == 0
}

// UnweightedCategories returns assignment categories that have no weight entry, sorted.
func (r Record) UnweightedCategories() []string {
	seen := make(Weights)
	for _, a := range r.Assignments {
		if !r.Categories.Has(a.Category) {
			seen[a.Category] = 0
		}
	}
	return seen.Names()
}

// LoadRecord reads a record from a YAML or JSON file. The format is chosen by extension.
func LoadRecord(path string) (Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Record{}, fmt.Errorf("failed to read record: %w", err)
	}

	rec := NewRecord()
	if isJSON(path) {
		err = json.Unmarshal(data, &rec)
	} else {
		err = yaml.Unmarshal(data, &rec)
	}
	if err != nil {
		return Record{}, fmt.Errorf("failed to parse record %s: %w", path, err)
	}
	if rec.Categories == nil {
		rec.Categories = make(Weights)
	}
	if rec.Assignments == nil {
		rec.Assignments = make([]Assignment, 0)
	}
	return rec, nil
}

// Save writes the record to path as YAML, or JSON for a .json extension.
func (r Record) Save(path string) error {
	data, err := r.encode(isJSON(path))
	if err != nil {
		return fmt.Errorf("failed to serialize record: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create record directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}
	return nil
}

func (r Record) encode(asJSON bool) ([]byte, error) {
	if !asJSON {
		return yaml.Marshal(r)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func isJSON(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}
