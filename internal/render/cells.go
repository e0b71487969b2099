package render

import (
	"github.com/grindlemire/boxflow/internal/layout"
)

// Text draws a cell-measured tree as characters: each visible node's padding
// rect is outlined when it has room for a border, and its prepared text
// lines are written into its content rect.
func Text(root *layout.Node, border Border) *Grid {
	g := NewGrid(Extent(root))
	root.Walk(func(n *layout.Node) bool {
		if !n.Style().IsVisible() {
			return false
		}
		b := n.Bounds()
		DrawBox(g, b.PaddingRect, border)
		for i, line := range n.TextLines() {
			g.SetString(b.ContentRect.X1, b.ContentRect.Y1+i, line, b.ContentRect)
		}
		return true
	})
	return g
}
