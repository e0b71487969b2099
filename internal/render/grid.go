package render

import (
	"strings"

	"github.com/grindlemire/boxflow/internal/layout"
	"github.com/grindlemire/boxflow/internal/text"
)

// cell is one grid position. A wide rune occupies its cell with width 2
// and the cell to its right with width 0.
type cell struct {
	r     rune
	width uint8
}

func (c cell) isContinuation() bool { return c.width == 0 }

// Grid is a fixed-size character grid addressed in layout units.
type Grid struct {
	cells  []cell
	origin layout.Point
	width  int
	height int
}

// NewGrid creates a grid covering bounds, filled with spaces.
func NewGrid(bounds layout.Rect) *Grid {
	w, h := max(bounds.Width(), 0), max(bounds.Height(), 0)
	g := &Grid{
		cells:  make([]cell, w*h),
		origin: bounds.TopLeft(),
		width:  w,
		height: h,
	}
	for i := range g.cells {
		g.cells[i] = cell{r: ' ', width: 1}
	}
	return g
}

// Bounds returns the area covered by the grid.
func (g *Grid) Bounds() layout.Rect {
	return layout.RectAt(g.origin, layout.Size{Width: g.width, Height: g.height})
}

func (g *Grid) at(x, y int) *cell {
	p := layout.Pt(x, y)
	if !p.In(g.Bounds()) {
		return nil
	}
	p = p.Sub(g.origin)
	return &g.cells[p.Y*g.width+p.X]
}

// SetRune writes r at (x, y). Positions outside the grid are ignored, and a
// wide rune that does not fit before the right edge is replaced by a space.
func (g *Grid) SetRune(x, y int, r rune) {
	c := g.at(x, y)
	if c == nil {
		return
	}
	w := text.RuneWidth(r)
	if w == 0 {
		return
	}

	// Overwriting half of a wide rune blanks the other half.
	if c.isContinuation() {
		if left := g.at(x-1, y); left != nil {
			*left = cell{r: ' ', width: 1}
		}
	}
	if c.width == 2 {
		if right := g.at(x+1, y); right != nil {
			*right = cell{r: ' ', width: 1}
		}
	}

	if w == 2 {
		right := g.at(x+1, y)
		if right == nil {
			*c = cell{r: ' ', width: 1}
			return
		}
		if right.width == 2 {
			if next := g.at(x+2, y); next != nil {
				*next = cell{r: ' ', width: 1}
			}
		}
		*right = cell{}
	}
	*c = cell{r: r, width: uint8(w)}
}

// SetString writes s starting at (x, y), clipped to clip and to the grid. It
// returns the number of columns written.
func (g *Grid) SetString(x, y int, s string, clip layout.Rect) int {
	clip = clip.Intersect(g.Bounds())
	if y < clip.Y1 || y >= clip.Y2 {
		return 0
	}
	written := 0
	for _, r := range s {
		w := text.RuneWidth(r)
		if x+w > clip.X2 {
			break
		}
		if x >= clip.X1 {
			g.SetRune(x, y, r)
			written += w
		}
		x += w
	}
	return written
}

// String returns the grid rows joined by newlines with trailing spaces removed.
func (g *Grid) String() string {
	var sb strings.Builder
	for y := 0; y < g.height; y++ {
		var line strings.Builder
		for _, c := range g.cells[y*g.width : (y+1)*g.width] {
			if c.isContinuation() {
				continue
			}
			line.WriteRune(c.r)
		}
		sb.WriteString(strings.TrimRight(line.String(), " "))
		if y < g.height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
