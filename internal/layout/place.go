package layout

// place assigns absolute rects to n with its margin box at position, then
// places each anchor group of children inside n's content rect.
func (e *Engine) place(n *Node, position Point) {
	// Dirty propagates up, so a clean node guarantees a clean subtree
	if !n.dirty && n.position == position {
		return
	}
	e.stats.Placed++
	n.position = position

	style := n.style
	b := &n.bounds
	b.MarginRect = RectAt(position, b.MarginSize)
	b.PaddingRect = b.MarginRect.Inset(style.Margin)
	b.ContentRect = b.PaddingRect.Inset(style.Padding)

	for i, group := range n.groups {
		if len(group) > 0 {
			e.placeGroup(n, Anchor(i), group)
		}
	}

	n.dirty = false
}

// placeGroup positions one anchor group. Groups anchored right (horizontal
// flow) or bottom (vertical flow) grow backwards from that edge; the others
// grow forwards from the start position.
func (e *Engine) placeGroup(n *Node, anchor Anchor, group []*Node) {
	flow := n.style.Flow
	gap := n.style.Gap
	content := n.bounds.ContentRect
	innerW, innerH := content.Width(), content.Height()
	span := groupSpan(flow, gap, group, placedOuter)

	x, y := content.X1, content.Y1
	if anchor.IsCenter() {
		x += (innerW - span.Width) / 2
	}
	if anchor.IsRight() {
		x = content.X1 + innerW
	}
	if anchor.IsMiddle() {
		y += (innerH - span.Height) / 2
	}
	if anchor.IsBottom() {
		y = content.Y1 + innerH
	}

	for _, child := range group {
		outer := child.bounds.MarginSize
		cx, cy := x, y

		// Right and bottom anchors align the child's far edge with the cursor;
		// center and middle anchors center it within the group's cross span.
		if anchor.IsRight() {
			cx = x - outer.Width
		} else if anchor.IsCenter() && flow.IsVertical() {
			cx = x + (span.Width-outer.Width)/2
		}
		if anchor.IsBottom() {
			cy = y - outer.Height
		} else if anchor.IsMiddle() && flow.IsHorizontal() {
			cy = y + (span.Height-outer.Height)/2
		}

		e.place(child, Point{X: cx, Y: cy})

		if !child.style.IsVisible() {
			continue
		}
		if flow.IsHorizontal() {
			if anchor.IsRight() {
				x = cx - gap
			} else {
				x = cx + outer.Width + gap
			}
		} else {
			if anchor.IsBottom() {
				y = cy - gap
			} else {
				y = cy + outer.Height + gap
			}
		}
	}
}
