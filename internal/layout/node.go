package layout

import "slices"

// Node represents an element in the layout tree.
//
// A node owns its children. The parent pointer is a back-link used for dirty
// propagation and anchor regrouping; it carries no ownership.
type Node struct {
	// Configuration (user-set)
	id    string
	style Style
	text  string

	// Tree structure
	children []*Node
	parent   *Node
	// groups holds children keyed by their resolved anchor, in insertion order.
	groups [anchorCount][]*Node

	// Computed (set by layout engine)
	bounds   Bounds
	natural  boxSizes
	lines    []string
	position Point

	// Needs recalculation
	dirty bool
}

// NewNode creates a new node with the given style.
func NewNode(style Style) *Node {
	return &Node{
		style: style,
		dirty: true, // New nodes need layout
	}
}

// ID returns the node's identifier.
func (n *Node) ID() string {
	return n.id
}

// SetID sets the identifier used by QuerySelector.
func (n *Node) SetID(id string) {
	n.id = id
}

// Style returns the node's style.
func (n *Node) Style() Style {
	return n.style
}

// SetStyle updates the style and marks the node dirty.
// If the anchor changes the node moves to its new group in the parent.
func (n *Node) SetStyle(style Style) {
	regroup := n.parent != nil && n.style.Anchor.resolve() != style.Anchor.resolve()
	n.style = style
	if regroup {
		n.parent.regroup()
	}
	n.MarkDirty()
}

// Text returns the node's text content.
func (n *Node) Text() string {
	return n.text
}

// HasText reports whether the node carries text content to be measured.
func (n *Node) HasText() bool {
	return n.text != ""
}

// SetText updates the text content and marks the node dirty.
func (n *Node) SetText(text string) {
	n.text = text
	n.lines = nil
	n.MarkDirty()
}

// TextLines returns the lines prepared by the content measurer during the
// last reflow.
func (n *Node) TextLines() []string {
	return n.lines
}

// SetTextLines stores render-ready lines. Content measurers call it while
// computing the content size; it does not mark the node dirty.
func (n *Node) SetTextLines(lines []string) {
	n.lines = lines
}

// Bounds returns the last computed bounds.
func (n *Node) Bounds() Bounds {
	return n.bounds
}

// Position returns the origin the node was last placed at.
func (n *Node) Position() Point {
	return n.position
}

// AppendChild attaches children in order. A child that already has a parent
// is detached from it first. Appending a node into its own subtree panics.
func (n *Node) AppendChild(children ...*Node) {
	for _, child := range children {
		if child == nil {
			panic("layout: AppendChild called with nil node")
		}
		if child == n || child.isAncestorOf(n) {
			panic("layout: cannot append a node to its own subtree")
		}
		if child.parent != nil {
			child.parent.RemoveChild(child)
		}
		child.parent = n
		n.children = append(n.children, child)
		a := child.style.Anchor.resolve()
		n.groups[a] = append(n.groups[a], child)
	}
	n.MarkDirty()
}

// RemoveChild removes a child by pointer and marks dirty.
// Returns true if the child was found and removed.
func (n *Node) RemoveChild(child *Node) bool {
	i := slices.Index(n.children, child)
	if i < 0 {
		return false
	}
	// Sibling order is load-bearing for placement, so no swap-remove.
	n.children = slices.Delete(n.children, i, i+1)
	a := child.style.Anchor.resolve()
	if j := slices.Index(n.groups[a], child); j >= 0 {
		n.groups[a] = slices.Delete(n.groups[a], j, j+1)
	}
	child.parent = nil
	n.MarkDirty()
	return true
}

// RemoveAllChildren detaches every child and marks dirty.
func (n *Node) RemoveAllChildren() {
	for _, child := range n.children {
		child.parent = nil
	}
	n.children = nil
	n.groups = [anchorCount][]*Node{}
	n.MarkDirty()
}

// Children returns the children in insertion order.
func (n *Node) Children() []*Node {
	return n.children
}

// Parent returns the parent node, or nil if this is the root.
func (n *Node) Parent() *Node {
	return n.parent
}

// AnchorGroup returns the children that requested anchor a, in insertion order.
func (n *Node) AnchorGroup(a Anchor) []*Node {
	if !a.valid() {
		return nil
	}
	return n.groups[a]
}

// Anchors returns the anchors that currently have at least one child, in
// anchor order. This is the order groups are placed in.
func (n *Node) Anchors() []Anchor {
	var out []Anchor
	for i, g := range n.groups {
		if len(g) > 0 {
			out = append(out, Anchor(i))
		}
	}
	return out
}

// MarkDirty marks this node and all ancestors as needing recalculation.
func (n *Node) MarkDirty() {
	for node := n; node != nil && !node.dirty; node = node.parent {
		node.dirty = true
	}
}

// IsDirty returns whether this node needs recalculation.
func (n *Node) IsDirty() bool {
	return n.dirty
}

// Walk visits n and its descendants depth-first in pre-order. Returning
// false from fn skips the node's children.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, child := range n.children {
		child.Walk(fn)
	}
}

// QuerySelector returns the first node in the subtree rooted at n whose ID
// equals id, or nil.
func (n *Node) QuerySelector(id string) *Node {
	var found *Node
	n.Walk(func(node *Node) bool {
		if found != nil {
			return false
		}
		if node.id == id {
			found = node
			return false
		}
		return true
	})
	return found
}

// regroup rebuilds the anchor grouping from the children list.
func (n *Node) regroup() {
	n.groups = [anchorCount][]*Node{}
	for _, child := range n.children {
		a := child.style.Anchor.resolve()
		n.groups[a] = append(n.groups[a], child)
	}
}

func (n *Node) isAncestorOf(other *Node) bool {
	for p := other.parent; p != nil; p = p.parent {
		if p == n {
			return true
		}
	}
	return false
}
