package boxflow

import (
	"github.com/hashicorp/go-hclog"

	"github.com/grindlemire/boxflow/internal/layout"
)

// Option configures a Node built with New.
type Option func(*build)

type build struct {
	id       string
	style    Style
	text     string
	children []*Node
}

// New creates a node from the given options.
func New(opts ...Option) *Node {
	b := &build{}
	for _, opt := range opts {
		opt(b)
	}
	n := layout.NewNode(b.style)
	n.SetID(b.id)
	if b.text != "" {
		n.SetText(b.text)
	}
	if len(b.children) > 0 {
		n.AppendChild(b.children...)
	}
	return n
}

// WithID sets the identifier used by QuerySelector.
func WithID(id string) Option {
	return func(b *build) {
		b.id = id
	}
}

// WithStyle replaces the whole style. Options after it still apply.
func WithStyle(style Style) Option {
	return func(b *build) {
		b.style = style
	}
}

// --- Dimension Options ---

// WithWidth sets an explicit width. Zero means auto.
func WithWidth(width int) Option {
	return func(b *build) {
		b.style.Size.Width = width
	}
}

// WithHeight sets an explicit height. Zero means auto.
func WithHeight(height int) Option {
	return func(b *build) {
		b.style.Size.Height = height
	}
}

// WithSize sets both width and height.
func WithSize(width, height int) Option {
	return func(b *build) {
		b.style.Size = Size{Width: width, Height: height}
	}
}

// --- Flow Options ---

// WithFlow sets the axis children are laid out along.
func WithFlow(flow Flow) Option {
	return func(b *build) {
		b.style.Flow = flow
	}
}

// WithAnchor sets the zone of the parent this node is placed in.
func WithAnchor(anchor Anchor) Option {
	return func(b *build) {
		b.style.Anchor = anchor
	}
}

// WithGap sets the space between consecutive children of an anchor group.
func WithGap(gap int) Option {
	return func(b *build) {
		b.style.Gap = gap
	}
}

// WithStretch makes the node fill its parent's cross axis.
func WithStretch() Option {
	return func(b *build) {
		b.style.Stretch = true
	}
}

// WithHidden removes the node from its parent's child span.
func WithHidden() Option {
	return func(b *build) {
		b.style.Hidden = true
	}
}

// --- Spacing Options ---

// WithPadding sets uniform padding on all sides.
func WithPadding(n int) Option {
	return func(b *build) {
		b.style.Padding = EdgeAll(n)
	}
}

// WithPaddingEdges sets padding per side.
func WithPaddingEdges(e Edges) Option {
	return func(b *build) {
		b.style.Padding = e
	}
}

// WithMargin sets uniform margin on all sides.
func WithMargin(n int) Option {
	return func(b *build) {
		b.style.Margin = EdgeAll(n)
	}
}

// WithMarginEdges sets margin per side.
func WithMarginEdges(e Edges) Option {
	return func(b *build) {
		b.style.Margin = e
	}
}

// --- Content Options ---

// WithText sets text content measured by the engine's ContentMeasurer.
func WithText(text string) Option {
	return func(b *build) {
		b.text = text
	}
}

// WithChildren appends children in order.
func WithChildren(children ...*Node) Option {
	return func(b *build) {
		b.children = append(b.children, children...)
	}
}

// WithLogger sets the engine's logger for per-pass trace output.
func WithLogger(logger hclog.Logger) EngineOption {
	return layout.WithLogger(logger)
}
