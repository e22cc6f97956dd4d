package extract

import (
	"strconv"
	"strings"

	"github.com/ki-krpto/New-Aeries-Calculator/internal/gradebook"
)

// weights reads category weights out of the totals table.
//
// Outside totals mode every line is skipped until one contains a TotalsEnter
// marker or is exactly "Category". Inside totals mode a line naming a
// recognized category takes the first bare percentage in the following
// WeightLookahead lines as its weight; a category listed again overrides its
// earlier weight. A TotalsExit marker ends the scan.
func (p *Parser) weights(lines []string) gradebook.Weights {
	weights := make(gradebook.Weights)
	inTotals := false

	for i, line := range lines {
		if !inTotals {
			inTotals = p.entersTotals(line)
			continue
		}
		if p.exitsTotals(line) {
			break
		}
		if !p.categories.has(line) {
			continue
		}
		if w, ok := p.lookaheadPercent(lines, i); ok {
			weights[line] = w
		}
	}

	return weights
}

func (p *Parser) entersTotals(line string) bool {
	if line == "Category" {
		return true
	}
	for _, marker := range p.layout.TotalsEnter {
		if strings.Contains(line, marker) {
			return true
		}
	}
	return false
}

func (p *Parser) exitsTotals(line string) bool {
	for _, marker := range p.layout.TotalsExit {
		if strings.Contains(line, marker) {
			return true
		}
	}
	return false
}

func (p *Parser) lookaheadPercent(lines []string, at int) (float64, bool) {
	end := at + p.layout.WeightLookahead
	for j := at + 1; j <= end && j < len(lines); j++ {
		if p.exitsTotals(lines[j]) {
			break
		}
		m := percentPattern.FindStringSubmatch(lines[j])
		if m == nil {
			continue
		}
		w, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		return w, true
	}
	return 0, false
}
