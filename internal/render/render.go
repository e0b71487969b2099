// Package render draws laid-out trees, either as a PNG wireframe or as box
// outlines on a character grid.
package render

import (
	"fmt"
	"image"
	"io"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/grindlemire/boxflow/internal/layout"
)

// Renderer paints a laid-out tree onto a gg context. Layout units are
// multiplied by the scale, so cell-measured trees can be drawn legibly.
type Renderer struct {
	scale  int
	face   font.Face
	margin int
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithScale sets the number of pixels per layout unit.
func WithScale(scale int) Option {
	return func(r *Renderer) {
		if scale > 0 {
			r.scale = scale
		}
	}
}

// WithFace sets the face used to draw prepared text lines.
func WithFace(face font.Face) Option {
	return func(r *Renderer) {
		if face != nil {
			r.face = face
		}
	}
}

// WithMargin sets the blank border around the drawing in pixels.
func WithMargin(px int) Option {
	return func(r *Renderer) {
		r.margin = max(px, 0)
	}
}

// New creates a Renderer. The default scale is 1 and the default face is
// basicfont.Face7x13.
func New(opts ...Option) *Renderer {
	r := &Renderer{scale: 1, face: basicfont.Face7x13, margin: 4}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Extent returns the union of the margin rects of all visible nodes.
func Extent(root *layout.Node) layout.Rect {
	var extent layout.Rect
	root.Walk(func(n *layout.Node) bool {
		if !n.Style().IsVisible() {
			return false
		}
		extent = extent.Union(n.Bounds().MarginRect)
		return true
	})
	return extent
}

// Render draws root and its visible descendants. The tree must have been
// reflowed.
func (r *Renderer) Render(root *layout.Node) image.Image {
	extent := Extent(root)
	w := max(extent.Width()*r.scale+2*r.margin, 1)
	h := max(extent.Height()*r.scale+2*r.margin, 1)

	dc := gg.NewContext(w, h)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.Translate(float64(r.margin-extent.X1*r.scale), float64(r.margin-extent.Y1*r.scale))
	dc.SetFontFace(r.face)
	dc.SetLineWidth(1)

	root.Walk(func(n *layout.Node) bool {
		if !n.Style().IsVisible() {
			return false
		}
		r.drawNode(dc, n)
		return true
	})
	return dc.Image()
}

// EncodePNG renders root and writes it to w as PNG.
func (r *Renderer) EncodePNG(w io.Writer, root *layout.Node) error {
	dc := gg.NewContextForImage(r.Render(root))
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}

func (r *Renderer) drawNode(dc *gg.Context, n *layout.Node) {
	b := n.Bounds()

	// Margin area is shaded, padding and content are outlined.
	if !n.Style().Margin.IsZero() {
		dc.SetRGBA(1, 0.6, 0.2, 0.15)
		r.rect(dc, b.MarginRect)
		dc.Fill()
	}

	dc.SetRGB(0.2, 0.4, 0.9)
	r.rect(dc, b.PaddingRect)
	dc.Stroke()

	dc.SetRGB(0.2, 0.7, 0.3)
	r.rect(dc, b.ContentRect)
	dc.Stroke()

	lines := n.TextLines()
	if len(lines) == 0 {
		return
	}
	lineHeight := r.face.Metrics().Height.Ceil()
	ascent := r.face.Metrics().Ascent.Ceil()
	x := float64(b.ContentRect.X1 * r.scale)
	y := float64(b.ContentRect.Y1 * r.scale)
	dc.SetRGB(0, 0, 0)
	for i, line := range lines {
		dc.DrawString(line, x, y+float64(ascent+i*lineHeight))
	}
}

// rect adds a path for rc with edges on pixel centers so 1px strokes stay crisp.
func (r *Renderer) rect(dc *gg.Context, rc layout.Rect) {
	if rc.IsEmpty() {
		return
	}
	s := float64(r.scale)
	dc.DrawRectangle(float64(rc.X1)*s+0.5, float64(rc.Y1)*s+0.5, float64(rc.Width())*s-1, float64(rc.Height())*s-1)
}
