package layout

// Rect is an axis-aligned rectangle in absolute integer coordinates.
// (X1, Y1) is the top-left corner (inclusive) and (X2, Y2) the bottom-right
// corner (exclusive).
type Rect struct {
	X1, Y1 int
	X2, Y2 int
}

// NewRect creates a Rect from its top-left corner and dimensions.
func NewRect(x, y, width, height int) Rect {
	return Rect{X1: x, Y1: y, X2: x + width, Y2: y + height}
}

// RectAt creates a Rect of the given size with its top-left corner at p.
func RectAt(p Point, s Size) Rect {
	return NewRect(p.X, p.Y, s.Width, s.Height)
}

// Width returns X2-X1.
func (r Rect) Width() int {
	return r.X2 - r.X1
}

// Height returns Y2-Y1.
func (r Rect) Height() int {
	return r.Y2 - r.Y1
}

// Size returns the dimensions of the rectangle.
func (r Rect) Size() Size {
	return Size{Width: r.Width(), Height: r.Height()}
}

// TopLeft returns the (X1, Y1) corner.
func (r Rect) TopLeft() Point { return Point{X: r.X1, Y: r.Y1} }

// TopRight returns the (X2, Y1) corner.
func (r Rect) TopRight() Point { return Point{X: r.X2, Y: r.Y1} }

// BottomLeft returns the (X1, Y2) corner.
func (r Rect) BottomLeft() Point { return Point{X: r.X1, Y: r.Y2} }

// BottomRight returns the (X2, Y2) corner.
func (r Rect) BottomRight() Point { return Point{X: r.X2, Y: r.Y2} }

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Width() <= 0 || r.Height() <= 0
}

// Contains returns true if the point (x, y) is inside the rectangle.
// Points on the left and top edges are inside; points on the right and bottom edges are outside.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X1 && x < r.X2 && y >= r.Y1 && y < r.Y2
}

// ContainsRect returns true if the other rectangle is fully contained within this rectangle.
func (r Rect) ContainsRect(other Rect) bool {
	if other.IsEmpty() {
		return true
	}
	if r.IsEmpty() {
		return false
	}
	return other.X1 >= r.X1 && other.Y1 >= r.Y1 &&
		other.X2 <= r.X2 && other.Y2 <= r.Y2
}

// Inset returns a new Rect inset by the given Edges.
// Positive values shrink the rectangle; negative values expand it.
func (r Rect) Inset(edges Edges) Rect {
	return Rect{
		X1: r.X1 + edges.Left,
		Y1: r.Y1 + edges.Top,
		X2: r.X2 - edges.Right,
		Y2: r.Y2 - edges.Bottom,
	}
}

// Translate returns a new Rect moved by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	return Rect{X1: r.X1 + dx, Y1: r.Y1 + dy, X2: r.X2 + dx, Y2: r.Y2 + dy}
}

// Intersect returns the intersection of two rectangles.
// If the rectangles don't overlap, returns an empty Rect.
func (r Rect) Intersect(other Rect) Rect {
	out := Rect{
		X1: max(r.X1, other.X1),
		Y1: max(r.Y1, other.Y1),
		X2: min(r.X2, other.X2),
		Y2: min(r.Y2, other.Y2),
	}
	if out.IsEmpty() {
		return Rect{}
	}
	return out
}

// Union returns the smallest rectangle that contains both rectangles.
// If either rectangle is empty, returns the other rectangle.
func (r Rect) Union(other Rect) Rect {
	if r.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return r
	}
	return Rect{
		X1: min(r.X1, other.X1),
		Y1: min(r.Y1, other.Y1),
		X2: max(r.X2, other.X2),
		Y2: max(r.Y2, other.Y2),
	}
}
