package text

import (
	"unicode"

	"golang.org/x/text/width"

	"github.com/grindlemire/boxflow/internal/layout"
)

// CellMeasurer measures text in terminal cells: one row per line, and one
// column per rune except East Asian wide and fullwidth runes, which take two.
type CellMeasurer struct {
	// TabWidth is the tab stop interval. Zero means DefaultTabWidth.
	TabWidth int
}

var _ layout.ContentMeasurer = CellMeasurer{}

// ComputeContentSize returns the cell size of n's text and stores its lines on n.
func (m CellMeasurer) ComputeContentSize(n *layout.Node) layout.Size {
	lines := SplitLines(n.Text(), m.TabWidth)
	n.SetTextLines(lines)

	size := layout.Size{Height: len(lines)}
	for _, line := range lines {
		size.Width = max(size.Width, StringWidth(line))
	}
	return size
}

// StringWidth returns the display width of s in terminal cells.
func StringWidth(s string) int {
	w := 0
	for _, r := range s {
		w += RuneWidth(r)
	}
	return w
}

// RuneWidth returns the display width of r in terminal cells.
// Control characters and nonspacing marks take no cells.
func RuneWidth(r rune) int {
	if r < 0x20 || (r >= 0x7f && r < 0xa0) {
		return 0
	}
	if unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Me, r) {
		return 0
	}
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	default:
		return 1
	}
}
