package layout

import (
	"time"

	"github.com/hashicorp/go-hclog"
)

// ContentMeasurer supplies the intrinsic content size of text-bearing nodes.
//
// ComputeContentSize is called for every node with text on every reflow, even
// when the node is otherwise clean, because implementations also prepare the
// node's render-ready lines (see Node.SetTextLines).
type ContentMeasurer interface {
	ComputeContentSize(n *Node) Size
}

// MeasurerFunc adapts a function to the ContentMeasurer interface.
type MeasurerFunc func(n *Node) Size

// ComputeContentSize calls f(n).
func (f MeasurerFunc) ComputeContentSize(n *Node) Size {
	return f(n)
}

// Stats counts the work done by the most recent reflow.
type Stats struct {
	Measured  int // content measurements requested
	Sized     int // nodes whose sizes were recomputed
	Stretched int // nodes whose size changed while stretching
	Placed    int // nodes whose rects were recomputed
}

// Engine runs reflow passes. An Engine is not safe for concurrent use; run
// one engine per tree or serialize calls.
type Engine struct {
	measurer ContentMeasurer
	logger   hclog.Logger

	stats      Stats
	lastReflow time.Duration
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithMeasurer sets the collaborator that measures text content.
// Without one, text contributes no intrinsic size.
func WithMeasurer(m ContentMeasurer) EngineOption {
	return func(e *Engine) {
		e.measurer = m
	}
}

// WithLogger sets the logger used for per-pass trace output.
func WithLogger(logger hclog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEngine creates an Engine with the given options.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{logger: hclog.NewNullLogger()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Reflow lays out the tree rooted at root with its margin box's top-left
// corner at position, writing each node's Bounds. It returns the elapsed time.
//
// Clean nodes placed at an unchanged position are skipped, so calling Reflow
// again without intervening mutations does no layout work.
func (e *Engine) Reflow(root *Node, position Point) time.Duration {
	if root == nil {
		return 0
	}
	start := time.Now()
	e.stats = Stats{}

	e.boundingBox(root)
	e.stretch(root)
	e.place(root, position)

	e.lastReflow = time.Since(start)
	if e.logger.IsTrace() {
		e.logger.Trace("reflow complete",
			"root", root.id,
			"x", position.X, "y", position.Y,
			"duration", e.lastReflow,
			"measured", e.stats.Measured,
			"sized", e.stats.Sized,
			"stretched", e.stats.Stretched,
			"placed", e.stats.Placed,
		)
	}
	return e.lastReflow
}

// LastReflowTime returns the duration of the most recent Reflow.
func (e *Engine) LastReflowTime() time.Duration {
	return e.lastReflow
}

// Stats returns the work counters of the most recent Reflow.
func (e *Engine) Stats() Stats {
	return e.stats
}

// Reflow lays out the tree rooted at root using an engine without a content
// measurer.
func Reflow(root *Node, position Point) time.Duration {
	return NewEngine().Reflow(root, position)
}
