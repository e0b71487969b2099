package layout

import "fmt"

// Anchor is one of nine placement zones inside a parent's content rect.
// A child requests an anchor through its own Style; siblings requesting the
// same anchor form a group that is laid out along the parent's flow axis.
type Anchor uint8

const (
	TopLeft Anchor = iota // Default
	TopCenter
	TopRight
	MiddleLeft
	MiddleCenter
	MiddleRight
	BottomLeft
	BottomCenter
	BottomRight

	anchorCount = int(BottomRight) + 1
)

var anchorNames = [anchorCount]string{
	TopLeft:      "top-left",
	TopCenter:    "top-center",
	TopRight:     "top-right",
	MiddleLeft:   "middle-left",
	MiddleCenter: "middle-center",
	MiddleRight:  "middle-right",
	BottomLeft:   "bottom-left",
	BottomCenter: "bottom-center",
	BottomRight:  "bottom-right",
}

// ParseAnchor returns the anchor with the given name, e.g. "top-right".
// The empty string resolves to TopLeft.
func ParseAnchor(name string) (Anchor, error) {
	if name == "" {
		return TopLeft, nil
	}
	for i, n := range anchorNames {
		if n == name {
			return Anchor(i), nil
		}
	}
	return TopLeft, fmt.Errorf("unknown anchor %q", name)
}

// String returns the anchor's name.
func (a Anchor) String() string {
	if !a.valid() {
		return fmt.Sprintf("Anchor(%d)", uint8(a))
	}
	return anchorNames[a]
}

// resolve falls back to TopLeft for values outside the nine known anchors.
func (a Anchor) resolve() Anchor {
	if !a.valid() {
		return TopLeft
	}
	return a
}

func (a Anchor) valid() bool {
	return int(a) < anchorCount
}

func (a Anchor) column() int { return int(a.resolve()) % 3 }
func (a Anchor) row() int    { return int(a.resolve()) / 3 }

// IsLeft reports whether the anchor sits on the left column.
func (a Anchor) IsLeft() bool { return a.column() == 0 }

// IsCenter reports whether the anchor is horizontally centered.
func (a Anchor) IsCenter() bool { return a.column() == 1 }

// IsRight reports whether the anchor sits on the right column.
func (a Anchor) IsRight() bool { return a.column() == 2 }

// IsTop reports whether the anchor sits on the top row.
func (a Anchor) IsTop() bool { return a.row() == 0 }

// IsMiddle reports whether the anchor is vertically centered.
func (a Anchor) IsMiddle() bool { return a.row() == 1 }

// IsBottom reports whether the anchor sits on the bottom row.
func (a Anchor) IsBottom() bool { return a.row() == 2 }
