// Package extract turns text copied out of the Aeries gradebook table view into
// a gradebook.Record.
//
// The copied table arrives as a flat run of lines: every cell of every row on
// its own line, with no delimiter between columns. The parser recovers
// structure from content alone:
//
//   - the course title from a bracketed header such as "<<101- Biology 1A- Trimester 2>>"
//   - the teacher from a capitalized name directly followed by an email address
//   - category weights from the totals table (see weights.go)
//   - assignments from number/description/category line runs (see scan.go)
//
// Parsing never fails. Anything unrecognized is left out of the record.
package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-kit/log"

	"github.com/ki-krpto/New-Aeries-Calculator/internal/config"
	"github.com/ki-krpto/New-Aeries-Calculator/internal/gradebook"
)

var (
	teacherPattern = regexp.MustCompile(`(\p{Lu}[\p{L}'.\-]*(?:[ \t]+\p{Lu}[\p{L}'.\-]*)+)[ \t]+[(<]?[A-Za-z0-9._%+\-]+@[A-Za-z0-9\-]+(?:\.[A-Za-z0-9\-]+)+`)
	percentPattern = regexp.MustCompile(`^(\d+(?:\.\d+)?)%$`)
	numberPattern  = regexp.MustCompile(`^\d{1,3}$`)
	numericPattern = regexp.MustCompile(`^\d+(?:\.\d+)?$`)
	datePattern    = regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{4}$`)
	inlineDate     = regexp.MustCompile(`\b\d{1,2}/\d{1,2}/\d{2,4}\b`)
	scorePattern   = regexp.MustCompile(`(\d+(?:\.\d+)?)?\s*/\s*(\d+(?:\.\d+)?)`)
)

// Parser extracts records using one layout. It holds no per-call state and is
// safe for concurrent use.
type Parser struct {
	layout config.Layout

	categories    set
	headers       set
	totalsMarkers set
	excluded      set

	comments []*regexp.Regexp
	course   *regexp.Regexp

	logger log.Logger
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger sets the logger used to trace rejected candidates at debug level.
func WithLogger(logger log.Logger) Option {
	return func(p *Parser) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// New builds a parser for the layout, compiling its comment patterns.
func New(layout config.Layout, opts ...Option) (*Parser, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}

	p := &Parser{
		layout:        layout,
		categories:    newSet(layout.Categories),
		headers:       newSet(layout.HeaderTokens),
		totalsMarkers: newSet(layout.TotalsMarkers),
		excluded:      newSet(layout.ExcludedNumbers),
		logger:        log.NewNopLogger(),
	}

	for _, pattern := range layout.CommentPatterns {
		re, err := regexp.Compile("(?i)" + pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid comment pattern %q: %w", pattern, err)
		}
		p.comments = append(p.comments, re)
	}

	terms := make([]string, len(layout.TermMarkers))
	for i, term := range layout.TermMarkers {
		terms[i] = regexp.QuoteMeta(term)
	}
	p.course = regexp.MustCompile(`<<\s*\d+\s*-\s*([^<>]+?)\s*-?\s*\b(?:` + strings.Join(terms, "|") + `)\b`)

	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Default returns a parser for the stock Aeries layout.
func Default(opts ...Option) *Parser {
	p, err := New(config.DefaultLayout(), opts...)
	if err != nil {
		panic("extract: default layout is invalid: " + err.Error())
	}
	return p
}

// Layout returns the layout the parser was built with.
func (p *Parser) Layout() config.Layout {
	return p.layout
}

// Parse extracts a best-effort record from pasted gradebook text.
func (p *Parser) Parse(text string) gradebook.Record {
	rec := gradebook.NewRecord()
	rec.ClassName = p.className(text)
	rec.TeacherName = teacherName(text)

	lines := splitLines(text)
	rec.Categories = p.weights(lines)
	rec.Assignments = p.assignments(lines)
	return rec
}

func (p *Parser) className(text string) string {
	m := p.course.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(strings.TrimRight(m[1], " -"))
}

func teacherName(text string) string {
	m := teacherPattern.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// splitLines splits on any line ending and trims each line.
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return lines
}

type set map[string]struct{}

func newSet(items []string) set {
	s := make(set, len(items))
	for _, item := range items {
		s[item] = struct{}{}
	}
	return s
}

func (s set) has(item string) bool {
	_, ok := s[item]
	return ok
}
