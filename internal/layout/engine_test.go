package layout

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hashicorp/go-hclog"
	"github.com/shoenig/test/must"
)

func fixed(w, h int) Style {
	return Style{Size: Size{Width: w, Height: h}}
}

func withAnchor(s Style, a Anchor) Style {
	s.Anchor = a
	return s
}

// lengthMeasurer reports one cell per byte and one row per line.
var lengthMeasurer = MeasurerFunc(func(n *Node) Size {
	lines := strings.Split(n.Text(), "\n")
	n.SetTextLines(lines)
	w := 0
	for _, l := range lines {
		w = max(w, len(l))
	}
	return Size{Width: w, Height: len(lines)}
})

func TestReflow_TopRightGroup(t *testing.T) {
	parent := NewNode(Style{Flow: Horizontal, Size: Size{Width: 300, Height: 40}, Gap: 10})
	var children []*Node
	for i := 0; i < 3; i++ {
		child := NewNode(withAnchor(fixed(50, 20), TopRight))
		children = append(children, child)
		parent.AppendChild(child)
	}

	Reflow(parent, Point{})

	wantX := []int{250, 190, 130}
	for i, child := range children {
		r := child.Bounds().MarginRect
		if r.X1 != wantX[i] || r.Y1 != 0 {
			t.Errorf("child %d at (%d, %d), want (%d, 0)", i, r.X1, r.Y1, wantX[i])
		}
		if r.Width() != 50 || r.Height() != 20 {
			t.Errorf("child %d size %dx%d, want 50x20", i, r.Width(), r.Height())
		}
	}
}

func TestReflow_Stretch(t *testing.T) {
	parent := NewNode(Style{Flow: Vertical, Size: Size{Width: 200, Height: 100}})
	child := NewNode(Style{Stretch: true, Size: Size{Height: 10}})
	parent.AppendChild(child)

	Reflow(parent, Point{})

	must.Eq(t, 200, parent.Bounds().InnerWidth())
	must.Eq(t, 200, child.Bounds().ContentRect.Width())
	must.Eq(t, 10, child.Bounds().ContentRect.Height())
}

func TestReflow_StretchOnlyCrossAxis(t *testing.T) {
	type tc struct {
		flow      Flow
		childSize Size
		padding   Edges
		want      Size
	}

	tests := map[string]tc{
		"vertical parent stretches width": {
			flow:      Vertical,
			childSize: Size{},
			want:      Size{Width: 80, Height: 0},
		},
		"horizontal parent stretches height": {
			flow:      Horizontal,
			childSize: Size{},
			want:      Size{Width: 0, Height: 30},
		},
		"explicit width is never stretched": {
			flow:      Vertical,
			childSize: Size{Width: 12},
			want:      Size{Width: 12, Height: 0},
		},
		"explicit height is never stretched": {
			flow:      Horizontal,
			childSize: Size{Height: 7},
			want:      Size{Width: 0, Height: 7},
		},
		"padding is absorbed on both axes": {
			flow:      Vertical,
			childSize: Size{Height: 6},
			padding:   EdgeAll(2),
			want:      Size{Width: 80, Height: 6},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			parent := NewNode(Style{Flow: tt.flow, Size: Size{Width: 80, Height: 30}})
			child := NewNode(Style{Stretch: true, Size: tt.childSize, Padding: tt.padding})
			parent.AppendChild(child)

			Reflow(parent, Point{})

			b := child.Bounds()
			must.Eq(t, tt.want, b.ContentSize)
			must.Eq(t, b.ContentSize, b.PaddingSize)
			must.Eq(t, tt.want, b.PaddingRect.Size())
		})
	}
}

func TestReflow_StretchResetsPaddingToContent(t *testing.T) {
	parent := NewNode(Style{Flow: Vertical, Size: Size{Width: 200}})
	child := NewNode(Style{Stretch: true, Padding: EdgeAll(5)})
	leaf := NewNode(fixed(10, 10))
	parent.AppendChild(child)
	child.AppendChild(leaf)

	Reflow(parent, Point{})

	b := child.Bounds()
	must.Eq(t, Size{Width: 200, Height: 10}, b.ContentSize)
	must.Eq(t, Size{Width: 200, Height: 10}, b.PaddingSize)
	must.Eq(t, Size{Width: 200, Height: 10}, b.MarginSize)
	// Padding still insets the content rect inside the absorbed padding box.
	must.Eq(t, NewRect(5, 5, 190, 0), b.ContentRect)
}

func TestReflow_SizeSmallerThanPadding(t *testing.T) {
	n := NewNode(Style{Size: Size{Width: 4, Height: 4}, Padding: EdgeAll(5)})

	Reflow(n, Point{})

	b := n.Bounds()
	must.Eq(t, Size{Width: 4, Height: 4}, b.PaddingSize)
	must.Eq(t, NewRect(0, 0, 4, 4), b.PaddingRect)
	// The content rect inverts rather than clamping; callers see it as empty.
	must.Eq(t, Rect{X1: 5, Y1: 5, X2: -1, Y2: -1}, b.ContentRect)
	must.True(t, b.ContentRect.IsEmpty())
}

func TestReflow_NestedStretchAbsorbsPadding(t *testing.T) {
	root := NewNode(Style{Flow: Vertical, Size: Size{Width: 100, Height: 100}})
	panel := NewNode(Style{Flow: Vertical, Stretch: true, Size: Size{Height: 50}, Padding: EdgeAll(5)})
	row := NewNode(Style{Stretch: true, Size: Size{Height: 10}, Padding: EdgeSymmetric(0, 3)})
	root.AppendChild(panel)
	panel.AppendChild(row)

	Reflow(root, Point{})

	must.Eq(t, panel.Bounds().ContentSize, panel.Bounds().PaddingSize)
	must.Eq(t, 100, panel.Bounds().PaddingRect.Width())
	must.Eq(t, 90, panel.Bounds().InnerWidth())
	must.Eq(t, row.Bounds().ContentSize, row.Bounds().PaddingSize)
	must.Eq(t, Size{Width: 90, Height: 10}, row.Bounds().PaddingSize)
	must.Eq(t, NewRect(5, 5, 90, 10), row.Bounds().MarginRect)
	must.Eq(t, 84, row.Bounds().ContentRect.Width())
}

func TestReflow_CenterAnchor(t *testing.T) {
	// 110 wide with 5 padding leaves an inner width of 100.
	parent := NewNode(Style{Flow: Horizontal, Size: Size{Width: 110, Height: 40}, Gap: 10, Padding: EdgeAll(5)})
	a := NewNode(withAnchor(fixed(20, 10), TopCenter))
	b := NewNode(withAnchor(fixed(20, 10), TopCenter))
	parent.AppendChild(a, b)

	Reflow(parent, Point{})

	content := parent.Bounds().ContentRect
	must.Eq(t, 100, content.Width())
	must.Eq(t, content.X1+25, a.Bounds().MarginRect.X1)
	must.Eq(t, content.X1+25+20+10, b.Bounds().MarginRect.X1)
	must.Eq(t, content.Y1, a.Bounds().MarginRect.Y1)
}

func TestReflow_AnchorPlacement(t *testing.T) {
	type tc struct {
		flow   Flow
		anchor Anchor
		sizes  []Size
		want   []Point
	}

	// Parent content rect is (0,0)-(100,40), gap 5.
	tests := map[string]tc{
		"horizontal top-left": {
			flow: Horizontal, anchor: TopLeft,
			sizes: []Size{{10, 10}, {20, 20}},
			want:  []Point{{0, 0}, {15, 0}},
		},
		"horizontal middle-left centers on the cross axis": {
			flow: Horizontal, anchor: MiddleLeft,
			sizes: []Size{{10, 10}, {20, 20}},
			want:  []Point{{0, 15}, {15, 10}},
		},
		"horizontal bottom-left aligns bottom edges": {
			flow: Horizontal, anchor: BottomLeft,
			sizes: []Size{{10, 10}, {20, 20}},
			want:  []Point{{0, 30}, {15, 20}},
		},
		"horizontal bottom-right grows leftward": {
			flow: Horizontal, anchor: BottomRight,
			sizes: []Size{{10, 10}, {20, 20}},
			want:  []Point{{90, 30}, {65, 20}},
		},
		"horizontal middle-center": {
			flow: Horizontal, anchor: MiddleCenter,
			sizes: []Size{{10, 10}, {20, 20}},
			// span 35x20: start x = (100-35)/2 = 32, y = (40-20)/2 = 10
			want: []Point{{32, 15}, {47, 10}},
		},
		"vertical top-left": {
			flow: Vertical, anchor: TopLeft,
			sizes: []Size{{10, 10}, {20, 5}},
			want:  []Point{{0, 0}, {0, 15}},
		},
		"vertical bottom-left grows upward": {
			flow: Vertical, anchor: BottomLeft,
			sizes: []Size{{10, 10}, {20, 5}},
			want:  []Point{{0, 30}, {0, 20}},
		},
		"vertical top-center centers on the cross axis": {
			flow: Vertical, anchor: TopCenter,
			sizes: []Size{{10, 10}, {20, 5}},
			// span 20x20: start x = (100-20)/2 = 40
			want: []Point{{45, 0}, {40, 15}},
		},
		"vertical top-right aligns right edges": {
			flow: Vertical, anchor: TopRight,
			sizes: []Size{{10, 10}, {20, 5}},
			want:  []Point{{90, 0}, {80, 15}},
		},
		"vertical middle-left": {
			flow: Vertical, anchor: MiddleLeft,
			sizes: []Size{{10, 10}, {20, 5}},
			// span height 20: start y = (40-20)/2 = 10
			want: []Point{{0, 10}, {0, 25}},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			parent := NewNode(Style{Flow: tt.flow, Size: Size{Width: 100, Height: 40}, Gap: 5})
			var children []*Node
			for _, s := range tt.sizes {
				child := NewNode(withAnchor(fixed(s.Width, s.Height), tt.anchor))
				children = append(children, child)
				parent.AppendChild(child)
			}

			Reflow(parent, Point{})

			var got []Point
			for _, child := range children {
				got = append(got, child.Bounds().MarginRect.TopLeft())
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("child positions mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReflow_AutoSizeFromChildren(t *testing.T) {
	parent := NewNode(Style{Gap: 3, Padding: EdgeAll(2), Margin: EdgeAll(1)})
	a := NewNode(fixed(10, 5))
	b := NewNode(fixed(20, 8))
	parent.AppendChild(a, b)

	Reflow(parent, Point{})

	want := Bounds{
		ContentSize: Size{Width: 33, Height: 8},
		PaddingSize: Size{Width: 37, Height: 12},
		MarginSize:  Size{Width: 39, Height: 14},
		MarginRect:  Rect{X1: 0, Y1: 0, X2: 39, Y2: 14},
		PaddingRect: Rect{X1: 1, Y1: 1, X2: 38, Y2: 13},
		ContentRect: Rect{X1: 3, Y1: 3, X2: 36, Y2: 11},
	}
	if diff := cmp.Diff(want, parent.Bounds()); diff != "" {
		t.Errorf("parent bounds mismatch (-want +got):\n%s", diff)
	}
	must.Eq(t, Pt(3, 3), a.Bounds().MarginRect.TopLeft())
	must.Eq(t, Pt(16, 3), b.Bounds().MarginRect.TopLeft())
}

func TestReflow_ChildMarginsInsideParent(t *testing.T) {
	parent := NewNode(Style{Flow: Vertical})
	child := NewNode(Style{Size: Size{Width: 10, Height: 4}, Margin: EdgeTRBL(1, 2, 3, 4)})
	parent.AppendChild(child)

	Reflow(parent, Pt(100, 50))

	must.Eq(t, Size{Width: 16, Height: 8}, parent.Bounds().ContentSize)
	must.Eq(t, NewRect(100, 50, 16, 8), child.Bounds().MarginRect)
	must.Eq(t, NewRect(104, 51, 10, 4), child.Bounds().PaddingRect)
}

func TestReflow_AnchorGroupsOverlay(t *testing.T) {
	parent := NewNode(Style{Flow: Horizontal})
	parent.AppendChild(
		NewNode(fixed(10, 10)),
		NewNode(fixed(10, 10)),
		NewNode(withAnchor(fixed(5, 30), BottomRight)),
	)

	Reflow(parent, Point{})

	must.Eq(t, Size{Width: 20, Height: 30}, parent.Bounds().ContentSize)
}

func TestReflow_HiddenChildrenExcluded(t *testing.T) {
	parent := NewNode(Style{Flow: Horizontal, Gap: 5})
	a := NewNode(fixed(10, 10))
	hidden := NewNode(Style{Size: Size{Width: 100, Height: 100}, Hidden: true})
	c := NewNode(fixed(10, 10))
	parent.AppendChild(a, hidden, c)

	Reflow(parent, Point{})

	must.Eq(t, Size{Width: 25, Height: 10}, parent.Bounds().ContentSize)
	must.Len(t, 3, parent.Children(), must.Sprint("hidden children stay in the tree"))
	must.Eq(t, 15, c.Bounds().MarginRect.X1, must.Sprint("hidden child contributes no gap"))
}

func TestReflow_ExplicitSizeOverridesChildren(t *testing.T) {
	parent := NewNode(Style{Size: Size{Width: 50}, Padding: EdgeAll(4)})
	parent.AppendChild(NewNode(fixed(100, 10)))

	Reflow(parent, Point{})

	b := parent.Bounds()
	must.Eq(t, 50, b.ContentSize.Width)
	must.Eq(t, 50, b.PaddingSize.Width)
	must.Eq(t, 50, b.PaddingRect.Width())
	// Height is auto: child span plus padding.
	must.Eq(t, 10, b.ContentSize.Height)
	must.Eq(t, 18, b.PaddingSize.Height)
}

func TestReflow_FixedSizeSkipsChildSpan(t *testing.T) {
	parent := NewNode(fixed(5, 5))
	parent.AppendChild(NewNode(fixed(100, 100)))

	Reflow(parent, Point{})

	must.Eq(t, Size{Width: 5, Height: 5}, parent.Bounds().ContentSize)
}

func TestReflow_MeasuresText(t *testing.T) {
	engine := NewEngine(WithMeasurer(lengthMeasurer))
	root := NewNode(Style{Flow: Vertical})
	label := NewNode(Style{Padding: EdgeSymmetric(0, 1)})
	label.SetText("hello\nworld!")
	root.AppendChild(label)

	engine.Reflow(root, Point{})

	must.Eq(t, Size{Width: 6, Height: 2}, label.Bounds().ContentSize)
	must.Eq(t, Size{Width: 8, Height: 2}, label.Bounds().PaddingSize)
	must.Eq(t, []string{"hello", "world!"}, label.TextLines())
	must.Eq(t, 1, engine.Stats().Measured)

	// Measurement runs again on a clean tree; sizing does not.
	engine.Reflow(root, Point{})
	must.Eq(t, 1, engine.Stats().Measured)
	must.Eq(t, 0, engine.Stats().Sized)
}

func TestReflow_Idempotent(t *testing.T) {
	engine := NewEngine(WithMeasurer(lengthMeasurer))
	root := buildSampleTree()

	engine.Reflow(root, Pt(3, 4))
	first := snapshot(root)
	must.Positive(t, engine.Stats().Placed)

	engine.Reflow(root, Pt(3, 4))
	second := snapshot(root)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("bounds changed on second reflow (-first +second):\n%s", diff)
	}
	stats := engine.Stats()
	must.Eq(t, 0, stats.Sized)
	must.Eq(t, 0, stats.Stretched)
	must.Eq(t, 0, stats.Placed)
}

func TestReflow_MovedRootReplacesWithoutResizing(t *testing.T) {
	engine := NewEngine()
	root := buildSampleTree()
	engine.Reflow(root, Point{})
	before := snapshot(root)

	engine.Reflow(root, Pt(10, 20))

	must.Eq(t, 0, engine.Stats().Sized)
	must.Positive(t, engine.Stats().Placed)
	after := snapshot(root)
	for i := range before {
		must.Eq(t, before[i].MarginRect.Translate(10, 20), after[i].MarginRect)
		must.Eq(t, before[i].ContentRect.Translate(10, 20), after[i].ContentRect)
	}
}

func TestReflow_IncrementalAfterMutation(t *testing.T) {
	engine := NewEngine()
	root := NewNode(Style{Flow: Vertical, Gap: 1})
	top := NewNode(fixed(10, 2))
	bottom := NewNode(fixed(10, 2))
	root.AppendChild(top, bottom)
	engine.Reflow(root, Point{})
	must.Eq(t, 3, bottom.Bounds().MarginRect.Y1)

	top.SetStyle(fixed(10, 6))
	engine.Reflow(root, Point{})

	must.Eq(t, 7, bottom.Bounds().MarginRect.Y1)
	must.Eq(t, 2, engine.Stats().Sized, must.Sprint("only top and root are resized"))
	must.Eq(t, 3, engine.Stats().Placed, must.Sprint("bottom moved, so it is placed again"))
	must.False(t, root.IsDirty())
}

func TestReflow_StretchedChildDoesNotFeedBack(t *testing.T) {
	engine := NewEngine()
	root := NewNode(Style{Flow: Vertical, Padding: EdgeAll(1)})
	wide := NewNode(fixed(30, 2))
	bar := NewNode(Style{Stretch: true, Size: Size{Height: 1}, Margin: EdgeSymmetric(0, 2)})
	root.AppendChild(wide, bar)

	engine.Reflow(root, Point{})
	must.Eq(t, 30, root.Bounds().InnerWidth())
	must.Eq(t, 30, bar.Bounds().PaddingRect.Width())

	// Each dirty pass must size the parent from the bar's natural width,
	// not from the width it was stretched to last time.
	for i := 0; i < 3; i++ {
		root.MarkDirty()
		engine.Reflow(root, Point{})
	}
	must.Eq(t, 30, root.Bounds().InnerWidth())
	must.Eq(t, 30, bar.Bounds().PaddingRect.Width())
	must.Eq(t, 34, bar.Bounds().OuterWidth())
}

func TestReflow_StretchRevertsWhenParentFlowChanges(t *testing.T) {
	root := NewNode(Style{Flow: Vertical, Size: Size{Width: 50, Height: 20}})
	child := NewNode(Style{Stretch: true, Size: Size{Width: 0, Height: 4}})
	root.AppendChild(child)
	engine := NewEngine()
	engine.Reflow(root, Point{})
	must.Eq(t, 50, child.Bounds().ContentSize.Width)

	style := root.Style()
	style.Flow = Horizontal
	root.SetStyle(style)
	engine.Reflow(root, Point{})

	// Height is explicit, so a horizontal parent stretches nothing.
	must.Eq(t, Size{Width: 0, Height: 4}, child.Bounds().ContentSize)
}

func TestReflow_NilRoot(t *testing.T) {
	must.Eq(t, 0, int(Reflow(nil, Point{})))
}

func TestEngine_LastReflowTime(t *testing.T) {
	engine := NewEngine(WithLogger(hclog.NewNullLogger()))
	elapsed := engine.Reflow(buildSampleTree(), Point{})
	must.Eq(t, elapsed, engine.LastReflowTime())
}

func buildSampleTree() *Node {
	root := NewNode(Style{Flow: Vertical, Size: Size{Width: 120}, Padding: EdgeAll(2), Gap: 1})
	header := NewNode(Style{Flow: Horizontal, Stretch: true, Gap: 2})
	title := NewNode(Style{Margin: EdgeSymmetric(0, 1)})
	title.SetText("boxflow")
	closeButton := NewNode(withAnchor(fixed(3, 1), TopRight))
	header.AppendChild(title, closeButton)

	body := NewNode(Style{Flow: Horizontal, Stretch: true, Size: Size{Height: 20}})
	for i := 0; i < 3; i++ {
		body.AppendChild(NewNode(withAnchor(fixed(8, 4), MiddleCenter)))
	}
	footer := NewNode(withAnchor(Style{Stretch: true, Size: Size{Height: 1}}, BottomLeft))
	root.AppendChild(header, body, footer)
	return root
}

func snapshot(root *Node) []Bounds {
	var out []Bounds
	root.Walk(func(n *Node) bool {
		out = append(out, n.Bounds())
		return true
	})
	return out
}
