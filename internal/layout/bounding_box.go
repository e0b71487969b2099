package layout

// boundingBox computes ContentSize, PaddingSize and MarginSize for n after
// recursing into its children.
func (e *Engine) boundingBox(n *Node) {
	for _, child := range n.children {
		e.boundingBox(child)
	}

	// Measurement prepares render-ready text, so it runs even for clean nodes.
	var content Size
	if n.HasText() && e.measurer != nil {
		content = e.measurer.ComputeContentSize(n)
		e.stats.Measured++
	}

	if !n.dirty {
		return
	}
	e.stats.Sized++

	style := n.style
	if !style.IsFixed() {
		content = content.Max(childSpan(n))
	}

	nat := boxSizes{content: content, padding: content.Grow(style.Padding)}

	// Explicit sizes win over measured and child-derived sizes, per axis.
	if w := style.Size.Width; w > 0 {
		nat.content.Width = w
		nat.padding.Width = w
	}
	if h := style.Size.Height; h > 0 {
		nat.content.Height = h
		nat.padding.Height = h
	}
	nat.margin = nat.padding.Grow(style.Margin)

	n.natural = nat
	nat.apply(&n.bounds)
}

// boxSizes are a node's sizes before stretching. The stretch pass derives
// the final sizes from them on every reflow, so a stretched child never feeds
// its stretched size back into its parent's child span.
type boxSizes struct {
	content, padding, margin Size
}

func (s boxSizes) apply(b *Bounds) {
	b.ContentSize = s.content
	b.PaddingSize = s.padding
	b.MarginSize = s.margin
}

func (s boxSizes) equal(b Bounds) bool {
	return s.content == b.ContentSize && s.padding == b.PaddingSize && s.margin == b.MarginSize
}

func naturalOuter(n *Node) Size { return n.natural.margin }
func placedOuter(n *Node) Size  { return n.bounds.MarginSize }

// childSpan returns the size n needs to hold its children. Anchor groups
// overlay each other, so the result is the component-wise maximum of the
// group spans.
func childSpan(n *Node) Size {
	var span Size
	for _, group := range n.groups {
		span = span.Max(groupSpan(n.style.Flow, n.style.Gap, group, naturalOuter))
	}
	return span
}

// groupSpan sums the outer sizes of the visible children along the flow axis
// with one gap between consecutive children, and takes the largest outer
// size across it. Hidden children contribute neither size nor gap.
func groupSpan(flow Flow, gap int, group []*Node, outerSize func(*Node) Size) Size {
	var main, cross, visible int
	for _, child := range group {
		if !child.style.IsVisible() {
			continue
		}
		outer := outerSize(child)
		main += flow.main(outer) + gap
		cross = max(cross, flow.cross(outer))
		visible++
	}
	if visible > 0 {
		main -= gap
	}
	return flow.size(main, cross)
}
