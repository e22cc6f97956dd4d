// Package output renders records and grade reports for the terminal.
package output

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
)

// ANSI escape sequences used by the reports.
const (
	Reset     = "\033[0m"
	Bold      = "\033[1m"
	Dim       = "\033[2m"
	Red       = "\033[31m"
	Green     = "\033[32m"
	Yellow    = "\033[33m"
	BoldRed   = "\033[1;31m"
	BoldGreen = "\033[1;32m"
)

// colorOff is set by --no-color. Color is also off when stdout is not a terminal.
var colorOff bool

// DisableColor turns colored output off.
func DisableColor() { colorOff = true }

// EnableColor turns colored output back on for terminals.
func EnableColor() { colorOff = false }

// IsColorEnabled reports whether Color will emit escape sequences.
func IsColorEnabled() bool {
	if colorOff {
		return false
	}
	fi, err := os.Stdout.Stat()
	return err == nil && fi.Mode()&os.ModeCharDevice != 0
}

// Color wraps text in an escape sequence when color is enabled.
func Color(text, code string) string {
	if !IsColorEnabled() {
		return text
	}
	return code + text + Reset
}

// gradeBands maps the lowest percentage of each band to its color, best first.
var gradeBands = []struct {
	min  float64
	code string
}{
	{90, BoldGreen},
	{80, Green},
	{70, Yellow},
	{60, Red},
}

// GradeColor returns the color for a percentage grade.
func GradeColor(percent float64) string {
	for _, b := range gradeBands {
		if percent >= b.min {
			return b.code
		}
	}
	return BoldRed
}

// FormatPercent formats a percentage with one decimal in its grade color.
func FormatPercent(percent float64) string {
	return Color(fmt.Sprintf("%.1f%%", percent), GradeColor(percent))
}

// FormatWeight formats a category weight without trailing zeros.
func FormatWeight(weight float64) string {
	return strconv.FormatFloat(weight, 'f', -1, 64) + "%"
}

// ProgressBar draws percent as a bracketed bar width cells wide.
func ProgressBar(percent float64, width int) string {
	if width <= 0 {
		return ""
	}
	filled := clamp(int(math.Floor(percent/100*float64(width))), 0, width)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return Color("["+bar+"]", GradeColor(percent))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Header centers text in a rule of "=" width columns wide.
func Header(text string, width int) string {
	return Color(rule(text, "=", width), Bold)
}

// SubHeader centers text in a rule of "-" width columns wide.
func SubHeader(text string, width int) string {
	return Color(rule(text, "-", width), Dim)
}

func rule(text, fill string, width int) string {
	side := (width - displayWidth(text) - 2) / 2
	if side < 0 {
		side = 0
	}
	line := strings.Repeat(fill, side) + " " + text + " " + strings.Repeat(fill, side)
	if short := width - displayWidth(line); short > 0 {
		line += strings.Repeat(fill, short)
	}
	return line
}

// Truncate shortens text to maxWidth runes, ending with "..." when cut.
func Truncate(text string, maxWidth int) string {
	runes := []rune(text)
	switch {
	case len(runes) <= maxWidth:
		return text
	case maxWidth <= 3:
		return string(runes[:maxWidth])
	default:
		return string(runes[:maxWidth-3]) + "..."
	}
}
