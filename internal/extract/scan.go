package extract

import (
	"strconv"
	"strings"

	"github.com/go-kit/log/level"

	"github.com/ki-krpto/New-Aeries-Calculator/internal/gradebook"
)

// scanState is a step of the assignment scan.
type scanState int

const (
	seekingNumber scanState = iota
	validatingDescription
	validatingCategory
	collectingWindow
)

func (s scanState) String() string {
	switch s {
	case seekingNumber:
		return "seeking-number"
	case validatingDescription:
		return "validating-description"
	case validatingCategory:
		return "validating-category"
	case collectingWindow:
		return "collecting-window"
	default:
		return "unknown"
	}
}

// candidate is an assignment being assembled from the lines after its number.
type candidate struct {
	start       int // index of the assignment number line
	description string
	category    string
	window      []string
	next        int // first line after the candidate's consumed lines
}

// scanner walks the lines once. pos only moves forward: a rejected candidate
// resumes at the line after its number, an accepted or discarded one after
// its window.
type scanner struct {
	p     *Parser
	lines []string
	pos   int
	state scanState
	cand  candidate
	out   []gradebook.Assignment
}

func (p *Parser) assignments(lines []string) []gradebook.Assignment {
	s := &scanner{p: p, lines: lines, out: make([]gradebook.Assignment, 0)}
	for s.pos < len(s.lines) {
		s.step()
	}
	return s.out
}

func (s *scanner) step() {
	switch s.state {
	case seekingNumber:
		if s.p.isNumber(s.lines[s.pos]) {
			s.cand = candidate{start: s.pos}
			s.state = validatingDescription
			return
		}
		s.pos++

	case validatingDescription:
		line, ok := s.at(s.cand.start + 1)
		if !ok || !s.p.isDescription(line) {
			s.reject("no description")
			return
		}
		s.cand.description = line
		s.state = validatingCategory

	case validatingCategory:
		line, ok := s.at(s.cand.start + 2)
		if !ok || !s.p.categories.has(line) {
			s.reject("unrecognized category")
			return
		}
		s.cand.category = line
		s.state = collectingWindow

	case collectingWindow:
		s.cand.window, s.cand.next = s.p.collect(s.lines, s.cand.start+3)
		if a, ok := s.p.assemble(s.cand); ok {
			s.out = append(s.out, a)
		}
		s.pos = s.cand.next
		s.state = seekingNumber
	}
}

func (s *scanner) at(i int) (string, bool) {
	if i >= len(s.lines) {
		return "", false
	}
	return s.lines[i], true
}

func (s *scanner) reject(reason string) {
	_ = level.Debug(s.p.logger).Log("msg", "rejected assignment candidate",
		"line", s.cand.start+1, "number", s.lines[s.cand.start], "state", s.state, "reason", reason)
	s.pos = s.cand.start + 1
	s.state = seekingNumber
}

// collect gathers the non-blank lines of an assignment's window starting at
// from. It stops after WindowSize lines, at a totals marker, or at a bare
// number once WindowMinLines lines are held. It returns the window and the
// index of the first line not consumed.
func (p *Parser) collect(lines []string, from int) ([]string, int) {
	window := make([]string, 0, p.layout.WindowSize)
	end := from + p.layout.WindowSize
	if end > len(lines) {
		end = len(lines)
	}

	i := from
	for ; i < end; i++ {
		line := lines[i]
		if p.totalsMarkers.has(line) {
			break
		}
		if len(window) >= p.layout.WindowMinLines && p.startsNextAssignment(lines, i) {
			break
		}
		if line != "" {
			window = append(window, line)
		}
	}
	return window, i
}

// startsNextAssignment reports whether line i is a bare number beginning the
// next row. Excluded numbers only qualify when a description and a recognized
// category follow them.
func (p *Parser) startsNextAssignment(lines []string, i int) bool {
	if !numberPattern.MatchString(lines[i]) {
		return false
	}
	if !p.excluded.has(lines[i]) {
		return true
	}
	return i+2 < len(lines) && p.isDescription(lines[i+1]) && p.categories.has(lines[i+2])
}

// assemble turns a collected candidate into an assignment. ok is false when
// the assignment is still pending grading or has no score.
func (p *Parser) assemble(c candidate) (gradebook.Assignment, bool) {
	if p.pending(c.window) {
		_ = level.Debug(p.logger).Log("msg", "skipped assignment pending grading",
			"line", c.start+1, "description", c.description)
		return gradebook.Assignment{}, false
	}

	joined := strings.Join(c.window, " ")
	earned, possible, ok := parseScore(joined)
	if !ok {
		_ = level.Debug(p.logger).Log("msg", "discarded assignment without score",
			"line", c.start+1, "description", c.description)
		return gradebook.Assignment{}, false
	}

	return gradebook.Assignment{
		Description:    c.description,
		Category:       c.category,
		PointsEarned:   earned,
		PointsPossible: possible,
		Comment:        p.comment(joined),
	}, true
}

// pending reports whether grading is incomplete: among the last StatusWindow
// lines, the final status token is StatusPending. Tokens match exactly.
func (p *Parser) pending(window []string) bool {
	tail := window
	if n := p.layout.StatusWindow; len(tail) > n {
		tail = tail[len(tail)-n:]
	}

	last := ""
	for _, line := range tail {
		switch {
		case line == p.layout.StatusComplete:
			last = p.layout.StatusComplete
		case line == p.layout.StatusPending:
			last = p.layout.StatusPending
		}
	}
	return last == p.layout.StatusPending
}

// parseScore finds "earned / possible" in the joined window. Dates are removed
// first so "09/05/2025" is never read as a score. A blank earned side means the
// assignment is ungraded. A score glued to a stray dot or digit, as in ".5 / 1",
// is malformed and matches nothing.
func parseScore(joined string) (*float64, float64, bool) {
	text := inlineDate.ReplaceAllString(joined, " ")
	m := scorePattern.FindStringSubmatchIndex(text)
	if m == nil || malformedScore(text, m) {
		return nil, 0, false
	}

	possible, err := strconv.ParseFloat(text[m[4]:m[5]], 64)
	if err != nil {
		return nil, 0, false
	}
	if m[2] < 0 {
		return nil, possible, true
	}
	earned, err := strconv.ParseFloat(text[m[2]:m[3]], 64)
	if err != nil {
		return nil, 0, false
	}
	return &earned, possible, true
}

// malformedScore reports whether the match at m continues a number on either
// side: a dot or digit just before it, or a dot and digit just after it.
func malformedScore(text string, m []int) bool {
	if start := m[0]; start > 0 && isNumberByte(text[start-1]) {
		return true
	}
	end := m[1]
	return end+1 < len(text) && text[end] == '.' && text[end+1] >= '0' && text[end+1] <= '9'
}

func isNumberByte(b byte) bool {
	return b == '.' || (b >= '0' && b <= '9')
}

// comment returns the first comment pattern match, in pattern priority order.
func (p *Parser) comment(joined string) string {
	for _, re := range p.comments {
		if m := re.FindString(joined); m != "" {
			return strings.TrimSpace(m)
		}
	}
	return ""
}

func (p *Parser) isNumber(line string) bool {
	return numberPattern.MatchString(line)
}

func (p *Parser) isDescription(line string) bool {
	switch {
	case line == "":
		return false
	case p.headers.has(line):
		return false
	case numericPattern.MatchString(line):
		return false
	case datePattern.MatchString(line):
		return false
	}
	return true
}
