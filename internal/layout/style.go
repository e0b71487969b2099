package layout

import "fmt"

// Flow specifies the axis along which a node's children are laid out.
//
// Flow has exactly two values, Horizontal and Vertical. Its representation is
// unexported so no other value can be constructed; the zero Flow is
// Horizontal.
type Flow struct {
	vertical bool
}

var (
	Horizontal = Flow{}               // Children laid out left-to-right
	Vertical   = Flow{vertical: true} // Children laid out top-to-bottom
)

// ParseFlow returns the flow with the given name ("horizontal" or "vertical").
// The empty string resolves to Horizontal.
func ParseFlow(name string) (Flow, error) {
	switch name {
	case "", "horizontal", "row":
		return Horizontal, nil
	case "vertical", "column":
		return Vertical, nil
	}
	return Horizontal, fmt.Errorf("unknown flow %q", name)
}

// IsHorizontal reports whether children are laid out left-to-right.
func (f Flow) IsHorizontal() bool { return !f.vertical }

// IsVertical reports whether children are laid out top-to-bottom.
func (f Flow) IsVertical() bool { return f.vertical }

// String returns "horizontal" or "vertical".
func (f Flow) String() string {
	if f.vertical {
		return "vertical"
	}
	return "horizontal"
}

// main returns the component of s along the flow axis.
func (f Flow) main(s Size) int {
	if f.vertical {
		return s.Height
	}
	return s.Width
}

// cross returns the component of s across the flow axis.
func (f Flow) cross(s Size) int {
	if f.vertical {
		return s.Width
	}
	return s.Height
}

// size builds a Size from main-axis and cross-axis components.
func (f Flow) size(main, cross int) Size {
	if f.vertical {
		return Size{Width: cross, Height: main}
	}
	return Size{Width: main, Height: cross}
}

// Style contains the layout properties the engine reads for a node.
// The zero Style is a visible, auto-sized, horizontal, top-left anchored node.
type Style struct {
	// Flow is the axis along which this node's children are placed.
	Flow Flow
	// Anchor is the zone of the parent's content rect this node asks to be placed in.
	Anchor Anchor

	// Size is the explicit padding-box size per axis. Zero means auto.
	Size Size
	// Gap is the space between consecutive children of one anchor group (flow axis only).
	Gap int

	Padding Edges
	Margin  Edges

	// Stretch grows the node to fill its parent's cross axis when the
	// corresponding Size component is auto.
	Stretch bool
	// Hidden removes the node from its parent's child span. The node stays in the tree.
	Hidden bool
}

// DefaultStyle returns the zero Style.
func DefaultStyle() Style {
	return Style{}
}

// IsFixed reports whether both axes are explicitly sized.
func (s Style) IsFixed() bool {
	return s.Size.Width > 0 && s.Size.Height > 0
}

// IsVisible reports whether the node takes part in its parent's child span.
func (s Style) IsVisible() bool {
	return !s.Hidden
}
