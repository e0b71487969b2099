package text

import (
	"strings"
)

// DefaultTabWidth is the tab stop interval used when a measurer's TabWidth is zero.
const DefaultTabWidth = 4

// SplitLines splits s on newlines and expands tabs to the next multiple of
// tabWidth columns. Carriage returns before a newline are dropped.
func SplitLines(s string, tabWidth int) []string {
	if tabWidth <= 0 {
		tabWidth = DefaultTabWidth
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if strings.ContainsRune(line, '\t') {
			line = expandTabs(line, tabWidth)
		}
		lines[i] = line
	}
	return lines
}

func expandTabs(line string, tabWidth int) string {
	var sb strings.Builder
	col := 0
	for _, r := range line {
		if r == '\t' {
			pad := tabWidth - col%tabWidth
			sb.WriteString(strings.Repeat(" ", pad))
			col += pad
			continue
		}
		sb.WriteRune(r)
		col++
	}
	return sb.String()
}
