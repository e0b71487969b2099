package layout

// stretch grows nodes with Style.Stretch to fill their parent's cross axis.
// The walk is pre-order: a parent's stretched size is resolved before its
// children read it, so nested stretches chain.
func (e *Engine) stretch(n *Node) {
	if n.style.Stretch {
		e.stretchNode(n)
	}
	for _, child := range n.children {
		e.stretch(child)
	}
}

// stretchNode sets the auto cross-axis size of n to its parent's inner size.
// A vertical parent stretches width and a horizontal parent stretches height;
// the main axis is never stretched. Once stretched, the node's padding is
// absorbed: PaddingSize is reset to ContentSize on both axes.
//
// The result is always derived from the node's natural sizes, so a node that
// can no longer stretch (detached, or its parent changed flow) reverts.
func (e *Engine) stretchNode(n *Node) {
	target := n.natural
	if parent := n.parent; parent != nil {
		inner := parent.innerSize()
		stretched := true
		switch {
		case parent.style.Flow.IsVertical() && n.style.Size.Width == 0:
			target.content.Width = inner.Width
		case parent.style.Flow.IsHorizontal() && n.style.Size.Height == 0:
			target.content.Height = inner.Height
		default:
			stretched = false
		}
		if stretched {
			target.padding = target.content
			target.margin = target.padding.Grow(n.style.Margin)
		}
	}

	if target.equal(n.bounds) {
		return
	}
	target.apply(&n.bounds)
	e.stats.Stretched++
	// Sizes changed after the bounding-box pass, so the node and its
	// ancestors must be placed again.
	n.MarkDirty()
}

// innerSize returns the size the content rect will have once the node is
// placed: the padding box minus padding.
func (n *Node) innerSize() Size {
	return n.bounds.PaddingSize.Shrink(n.style.Padding)
}
