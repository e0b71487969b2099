package text

import (
	"fmt"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/grindlemire/boxflow/internal/layout"
)

// FaceMeasurer measures text in pixels using a font face. Width is the
// widest line's advance rounded up, height is the line count times the
// face's line height.
type FaceMeasurer struct {
	face     font.Face
	tabWidth int
}

var _ layout.ContentMeasurer = (*FaceMeasurer)(nil)

// NewFaceMeasurer creates a measurer for face. A nil face selects
// basicfont.Face7x13.
func NewFaceMeasurer(face font.Face) *FaceMeasurer {
	if face == nil {
		face = basicfont.Face7x13
	}
	return &FaceMeasurer{face: face}
}

// LoadFace loads a TrueType font from path at the given point size.
func LoadFace(path string, points float64) (font.Face, error) {
	face, err := gg.LoadFontFace(path, points)
	if err != nil {
		return nil, fmt.Errorf("loading font %s: %w", path, err)
	}
	return face, nil
}

// SetTabWidth sets the tab stop interval in columns.
func (m *FaceMeasurer) SetTabWidth(n int) {
	m.tabWidth = n
}

// Face returns the face used for measurement.
func (m *FaceMeasurer) Face() font.Face {
	return m.face
}

// LineHeight returns the face's line height in whole pixels.
func (m *FaceMeasurer) LineHeight() int {
	return m.face.Metrics().Height.Ceil()
}

// ComputeContentSize returns the pixel size of n's text and stores its lines on n.
func (m *FaceMeasurer) ComputeContentSize(n *layout.Node) layout.Size {
	lines := SplitLines(n.Text(), m.tabWidth)
	n.SetTextLines(lines)

	size := layout.Size{Height: len(lines) * m.LineHeight()}
	for _, line := range lines {
		size.Width = max(size.Width, font.MeasureString(m.face, line).Ceil())
	}
	return size
}
