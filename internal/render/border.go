package render

import (
	"fmt"

	"github.com/grindlemire/boxflow/internal/layout"
)

// Border selects the characters used to outline boxes in a Grid.
type Border int

const (
	BorderSingle Border = iota
	BorderRounded
	BorderDouble
	BorderThick
	BorderASCII
)

var borderNames = [...]string{"single", "rounded", "double", "thick", "ascii"}

// ParseBorder returns the border with the given name.
func ParseBorder(name string) (Border, error) {
	for i, n := range borderNames {
		if n == name {
			return Border(i), nil
		}
	}
	return BorderSingle, fmt.Errorf("unknown border %q", name)
}

func (b Border) String() string {
	if b < 0 || int(b) >= len(borderNames) {
		return fmt.Sprintf("Border(%d)", int(b))
	}
	return borderNames[b]
}

// borderChars holds the characters used to draw a box border.
type borderChars struct {
	topLeft, top, topRight  rune
	left, right             rune
	bottomLeft, bottomRight rune
	bottom                  rune
}

func (b Border) chars() borderChars {
	switch b {
	case BorderRounded:
		return borderChars{'╭', '─', '╮', '│', '│', '╰', '╯', '─'}
	case BorderDouble:
		return borderChars{'╔', '═', '╗', '║', '║', '╚', '╝', '═'}
	case BorderThick:
		return borderChars{'┏', '━', '┓', '┃', '┃', '┗', '┛', '━'}
	case BorderASCII:
		return borderChars{'+', '-', '+', '|', '|', '+', '+', '-'}
	default:
		return borderChars{'┌', '─', '┐', '│', '│', '└', '┘', '─'}
	}
}

// DrawBox outlines rect on g. Rects smaller than 2x2 are not drawn.
func DrawBox(g *Grid, rect layout.Rect, border Border) {
	if rect.Width() < 2 || rect.Height() < 2 {
		return
	}
	chars := border.chars()

	left, right := rect.X1, rect.X2-1
	top, bottom := rect.Y1, rect.Y2-1

	g.SetRune(left, top, chars.topLeft)
	g.SetRune(right, top, chars.topRight)
	g.SetRune(left, bottom, chars.bottomLeft)
	g.SetRune(right, bottom, chars.bottomRight)

	for x := left + 1; x < right; x++ {
		g.SetRune(x, top, chars.top)
		g.SetRune(x, bottom, chars.bottom)
	}
	for y := top + 1; y < bottom; y++ {
		g.SetRune(left, y, chars.left)
		g.SetRune(right, y, chars.right)
	}
}
