// Package layout implements a retained-mode, integer box-layout engine.
//
// Nodes carry a [Style] (flow direction, anchor, explicit size, gap, padding,
// margin, stretch) and are arranged into a tree. [Engine.Reflow] walks the tree
// in three passes: bounding boxes are computed bottom-up, stretched nodes are
// grown to fill their parent's cross axis, and absolute rectangles are assigned
// top-down. Children are grouped by the anchor they request and each group is
// placed independently inside the parent's content rect.
//
// Work is skipped for nodes that are not dirty. Any mutation through the Node
// API marks the node and its ancestors dirty, so a clean node guarantees a
// clean subtree.
//
// Types are re-exported through the root boxflow package for public use.
package layout
