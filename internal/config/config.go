// Package config provides configuration management for the Aeries grade tools.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the tool configuration.
type Config struct {
	Aeries AeriesConfig `yaml:"aeries" json:"aeries"`
}

// AeriesConfig contains the main settings.
type AeriesConfig struct {
	// Layout holds the tables that describe the pasted gradebook layout.
	Layout Layout `yaml:"layout" json:"layout"`

	// Output configures report rendering.
	Output OutputConfig `yaml:"output" json:"output"`
}

// Layout is the configuration data the extractor scans with. Overriding it
// adapts the parser to other table layouts without code changes.
type Layout struct {
	// Categories is the closed set of recognized category names.
	Categories []string `yaml:"categories" json:"categories" validate:"required,min=1,dive,required"`

	// CommentPatterns are case-insensitive regular expressions, in priority order.
	CommentPatterns []string `yaml:"comment_patterns" json:"comment_patterns" validate:"dive,required,regexp"`

	// HeaderTokens are column headings that cannot be an assignment description.
	HeaderTokens []string `yaml:"header_tokens" json:"header_tokens"`

	// TotalsMarkers are exact lines that end an assignment's line window.
	TotalsMarkers []string `yaml:"totals_markers" json:"totals_markers"`

	// TotalsEnter are substrings that switch the weight scan into totals mode.
	// A line that is exactly "Category" also enters totals mode.
	TotalsEnter []string `yaml:"totals_enter" json:"totals_enter" validate:"dive,required"`

	// TotalsExit are substrings that stop the weight scan for good.
	TotalsExit []string `yaml:"totals_exit" json:"totals_exit" validate:"dive,required"`

	// ExcludedNumbers are row index artifacts that only count as assignment
	// numbers when the following lines confirm an assignment.
	ExcludedNumbers []string `yaml:"excluded_numbers" json:"excluded_numbers" validate:"dive,numeric"`

	// TermMarkers end the course title inside the bracketed course header.
	TermMarkers []string `yaml:"term_markers" json:"term_markers" validate:"required,min=1,dive,required"`

	// WeightLookahead is how many lines after a category name may hold its weight.
	WeightLookahead int `yaml:"weight_lookahead" json:"weight_lookahead" validate:"min=1"`

	// WindowSize bounds the lines collected for one assignment.
	WindowSize int `yaml:"window_size" json:"window_size" validate:"min=1"`

	// WindowMinLines is how many lines must be collected before a bare
	// number may start the next assignment.
	WindowMinLines int `yaml:"window_min_lines" json:"window_min_lines" validate:"min=0,ltefield=WindowSize"`

	// StatusWindow is how many trailing lines are checked for Yes/No grading status.
	StatusWindow int `yaml:"status_window" json:"status_window" validate:"min=1"`

	// StatusComplete and StatusPending are the grading-complete column values.
	StatusComplete string `yaml:"status_complete" json:"status_complete" validate:"required"`
	StatusPending  string `yaml:"status_pending" json:"status_pending" validate:"required,nefield=StatusComplete"`
}

// OutputConfig contains report rendering settings.
type OutputConfig struct {
	// Format is the default output format: table, json, yaml or csv.
	Format string `yaml:"format" json:"format" validate:"oneof=table json yaml csv"`

	// Width is the report width in columns.
	Width int `yaml:"width" json:"width" validate:"min=40"`
}

// DefaultLayout returns the layout of the Aeries gradebook table view.
func DefaultLayout() Layout {
	return Layout{
		Categories: []string{
			"Classwork",
			"Homework",
			"Labs",
			"Tests & Quizzes",
			"Tests",
			"Quizzes",
			"Projects",
			"Participation",
			"Assessments",
			"Final Exam",
		},
		CommentPatterns: []string{
			`\bretake\s*\d*`,
			`\bresubmit\s*\d*`,
			`\blate\b`,
			`\bground\s*\d*`,
			`\bsandpaper\b`,
			`\btest corrections\b`,
		},
		HeaderTokens: []string{
			"#",
			"Assignment",
			"Description",
			"Category",
			"Score",
			"Correct",
			"Percent",
			"Status",
			"Date Completed",
			"Due Date",
			"Grading Complete",
			"Comment",
			"Narrative",
			"Totals",
			"Total",
		},
		TotalsMarkers:   []string{"Totals", "Category", "Total"},
		TotalsEnter:     []string{"Totals"},
		TotalsExit:      []string{"Transfer Grade", "Enable Color"},
		ExcludedNumbers: []string{"1", "2", "3", "4", "5"},
		TermMarkers:     []string{"Trimester", "Semester", "Quarter"},
		WeightLookahead: 4,
		WindowSize:      20,
		WindowMinLines:  5,
		StatusWindow:    3,
		StatusComplete:  "Yes",
		StatusPending:   "No",
	}
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Aeries: AeriesConfig{
			Layout: DefaultLayout(),
			Output: OutputConfig{
				Format: "table",
				Width:  80,
			},
		},
	}
}

// Load loads configuration from a file. Keys missing from the file keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// Save saves the configuration to a file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// FindConfig searches for a configuration file starting from the given path.
func FindConfig(startPath string) (string, error) {
	candidates := []string{
		".aeries/config.yaml",
		"aeries.yaml",
		"aeries.yml",
	}

	dir := startPath
	for {
		for _, candidate := range candidates {
			path := filepath.Join(dir, candidate)
			if _, err := os.Stat(path); err == nil {
				return path, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("no aeries configuration found")
}

// LoadFromDir loads configuration from the given directory, falling back to defaults.
func LoadFromDir(dir string) (*Config, error) {
	path, err := FindConfig(dir)
	if err != nil {
		return DefaultConfig(), nil
	}

	return Load(path)
}
