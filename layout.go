// layout.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package boxflow

import (
	"time"

	"github.com/grindlemire/boxflow/internal/layout"
)

// Node is an element of the layout tree.
type Node = layout.Node

// Style holds the layout properties for a node.
type Style = layout.Style

// Bounds holds the computed sizes and absolute rects for a node.
type Bounds = layout.Bounds

// Flow specifies the axis along which children are laid out.
type Flow = layout.Flow

var (
	Horizontal = layout.Horizontal
	Vertical   = layout.Vertical
)

// Anchor is one of nine placement zones inside a parent's content rect.
type Anchor = layout.Anchor

const (
	TopLeft      = layout.TopLeft
	TopCenter    = layout.TopCenter
	TopRight     = layout.TopRight
	MiddleLeft   = layout.MiddleLeft
	MiddleCenter = layout.MiddleCenter
	MiddleRight  = layout.MiddleRight
	BottomLeft   = layout.BottomLeft
	BottomCenter = layout.BottomCenter
	BottomRight  = layout.BottomRight
)

// Rect represents a rectangle by its corners.
type Rect = layout.Rect

// Edges represents spacing on four sides (top, right, bottom, left).
type Edges = layout.Edges

// Size represents a width/height pair.
type Size = layout.Size

// Point represents an x/y coordinate.
type Point = layout.Point

// Engine runs reflow passes over a tree.
type Engine = layout.Engine

// EngineOption configures an Engine.
type EngineOption = layout.EngineOption

// Stats counts the work done by the most recent reflow.
type Stats = layout.Stats

// ContentMeasurer supplies the intrinsic content size of text-bearing nodes.
type ContentMeasurer = layout.ContentMeasurer

// MeasurerFunc adapts a function to ContentMeasurer.
type MeasurerFunc = layout.MeasurerFunc

// NewEngine creates an Engine with the given options.
func NewEngine(opts ...EngineOption) *Engine {
	return layout.NewEngine(opts...)
}

// WithMeasurer sets the engine's content measurer.
func WithMeasurer(m ContentMeasurer) EngineOption {
	return layout.WithMeasurer(m)
}

// Reflow lays out the tree rooted at root at the given position using an
// engine without a content measurer.
func Reflow(root *Node, position Point) time.Duration {
	return layout.Reflow(root, position)
}

// ParseFlow returns the flow with the given name.
func ParseFlow(name string) (Flow, error) {
	return layout.ParseFlow(name)
}

// ParseAnchor returns the anchor with the given name, e.g. "bottom-right".
func ParseAnchor(name string) (Anchor, error) {
	return layout.ParseAnchor(name)
}

// Pt creates a Point.
func Pt(x, y int) Point {
	return layout.Pt(x, y)
}

// NewRect creates a Rect from its top-left corner and dimensions.
func NewRect(x, y, width, height int) Rect {
	return layout.NewRect(x, y, width, height)
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n int) Edges {
	return layout.EdgeAll(n)
}

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal (left/right) values.
func EdgeSymmetric(v, h int) Edges {
	return layout.EdgeSymmetric(v, h)
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l int) Edges {
	return layout.EdgeTRBL(t, r, b, l)
}
