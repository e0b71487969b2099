// Package boxflow provides a retained-mode box-layout engine with integer geometry.
//
// Build a tree with New and the With* options, then call Reflow (or
// Engine.Reflow with a ContentMeasurer for text) to compute each node's
// content, padding and margin rects:
//
//	root := boxflow.New(
//		boxflow.WithFlow(boxflow.Horizontal),
//		boxflow.WithSize(300, 40),
//		boxflow.WithGap(10),
//		boxflow.WithChildren(
//			boxflow.New(boxflow.WithSize(50, 20), boxflow.WithAnchor(boxflow.TopRight)),
//		),
//	)
//	boxflow.Reflow(root, boxflow.Pt(0, 0))
//	rect := root.Children()[0].Bounds().MarginRect
package boxflow
