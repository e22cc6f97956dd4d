package output

import (
	"strings"
	"unicode/utf8"
)

// Align is the horizontal alignment of a table column.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
)

// Table is an ASCII table in the layout of Python's tabulate "grid" format.
type Table struct {
	headers []string
	aligns  []Align
	rows    [][]string
	footer  []string
	widths  []int
}

// NewTable creates a table with left-aligned columns.
func NewTable(headers ...string) *Table {
	t := &Table{
		headers: headers,
		aligns:  make([]Align, len(headers)),
		widths:  make([]int, len(headers)),
	}
	for i, h := range headers {
		t.widths[i] = displayWidth(h)
	}
	return t
}

// RightAlign right-aligns the columns at the given indexes.
func (t *Table) RightAlign(columns ...int) *Table {
	for _, c := range columns {
		if c >= 0 && c < len(t.aligns) {
			t.aligns[c] = AlignRight
		}
	}
	return t
}

// AddRow adds a row, padding or dropping cells to match the header count.
func (t *Table) AddRow(cells ...string) {
	t.rows = append(t.rows, t.fit(cells))
}

// SetFooter sets a row rendered below a separator after the data rows.
func (t *Table) SetFooter(cells ...string) {
	t.footer = t.fit(cells)
}

func (t *Table) fit(cells []string) []string {
	row := make([]string, len(t.headers))
	copy(row, cells)
	for i, cell := range row {
		if w := displayWidth(cell); w > t.widths[i] {
			t.widths[i] = w
		}
	}
	return row
}

// Render returns the table with a separator between every row.
func (t *Table) Render() string {
	return t.render(true)
}

// RenderCompact returns the table with separators only around the header and footer.
func (t *Table) RenderCompact() string {
	return t.render(false)
}

func (t *Table) render(separateRows bool) string {
	if len(t.headers) == 0 {
		return ""
	}

	var sb strings.Builder
	line := func(s string) {
		sb.WriteString(s)
		sb.WriteString("\n")
	}

	line(t.separator("-"))
	line(t.row(t.headers, false))
	line(t.separator("="))
	for _, row := range t.rows {
		line(t.row(row, true))
		if separateRows {
			line(t.separator("-"))
		}
	}
	if !separateRows && (len(t.rows) > 0 || t.footer == nil) {
		line(t.separator("-"))
	}
	if t.footer != nil {
		line(t.row(t.footer, true))
		line(t.separator("-"))
	}
	return sb.String()
}

// separator creates a line like +-----+-----+
func (t *Table) separator(fill string) string {
	parts := make([]string, len(t.widths))
	for i, w := range t.widths {
		parts[i] = strings.Repeat(fill, w+2)
	}
	return "+" + strings.Join(parts, "+") + "+"
}

// row creates a line like | val | val |
func (t *Table) row(cells []string, aligned bool) string {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		align := AlignLeft
		if aligned {
			align = t.aligns[i]
		}
		parts[i] = " " + pad(cell, t.widths[i], align) + " "
	}
	return "|" + strings.Join(parts, "|") + "|"
}

// displayWidth returns the rune count of s ignoring ANSI escape codes.
func displayWidth(s string) int {
	return utf8.RuneCountInString(stripANSI(s))
}

func stripANSI(s string) string {
	var result strings.Builder
	inEscape := false
	for _, r := range s {
		if r == '\033' {
			inEscape = true
			continue
		}
		if inEscape {
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEscape = false
			}
			continue
		}
		result.WriteRune(r)
	}
	return result.String()
}

func pad(s string, width int, align Align) string {
	short := width - displayWidth(s)
	if short <= 0 {
		return s
	}
	if align == AlignRight {
		return strings.Repeat(" ", short) + s
	}
	return s + strings.Repeat(" ", short)
}
