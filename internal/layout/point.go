package layout

// Point represents an (X, Y) coordinate.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns a new Point offset by other.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns a new Point with other subtracted.
func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// In returns true if the point is inside the given rectangle.
func (p Point) In(r Rect) bool {
	return r.Contains(p.X, p.Y)
}

// Size is a width/height pair.
type Size struct {
	Width, Height int
}

// Add returns the component-wise sum of two sizes.
func (s Size) Add(other Size) Size {
	return Size{Width: s.Width + other.Width, Height: s.Height + other.Height}
}

// Max returns the component-wise maximum of two sizes.
func (s Size) Max(other Size) Size {
	return Size{Width: max(s.Width, other.Width), Height: max(s.Height, other.Height)}
}

// Grow returns the size enlarged by the total horizontal and vertical insets.
func (s Size) Grow(e Edges) Size {
	return s.Add(e.Size())
}

// Shrink returns the size reduced by the insets, never below zero.
func (s Size) Shrink(e Edges) Size {
	return Size{
		Width:  max(s.Width-e.Horizontal(), 0),
		Height: max(s.Height-e.Vertical(), 0),
	}
}
