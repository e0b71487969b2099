package layout

// Bounds holds the sizes and absolute rectangles computed for a node.
//
// The three boxes nest: MarginRect ⊇ PaddingRect ⊇ ContentRect. Sizes are
// written by the bounding-box and stretch passes; rects by the placement pass.
type Bounds struct {
	// ContentSize is the intrinsic content or child span.
	ContentSize Size
	// PaddingSize is ContentSize plus padding, or the explicit Style.Size.
	PaddingSize Size
	// MarginSize is PaddingSize plus margin, the node's full footprint.
	MarginSize Size

	ContentRect Rect
	PaddingRect Rect
	MarginRect  Rect
}

// OuterWidth returns the margin-box width.
func (b Bounds) OuterWidth() int { return b.MarginSize.Width }

// OuterHeight returns the margin-box height.
func (b Bounds) OuterHeight() int { return b.MarginSize.Height }

// InnerWidth returns the width of the content rect available to children.
func (b Bounds) InnerWidth() int { return b.ContentRect.Width() }

// InnerHeight returns the height of the content rect available to children.
func (b Bounds) InnerHeight() int { return b.ContentRect.Height() }
