// Package treefile loads layout trees from YAML documents.
//
// A document is a single node mapping:
//
//	id: root
//	flow: vertical
//	width: 300
//	padding: [1, 2]
//	children:
//	  - text: hello
//	    anchor: bottom-right
//
// padding and margin accept a scalar or a 1, 2 or 4 element list in
// top/right/bottom/left order.
package treefile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"github.com/grindlemire/boxflow/internal/layout"
)

// Entry is the YAML form of a node.
type Entry struct {
	ID       string  `yaml:"id,omitempty"`
	Flow     string  `yaml:"flow,omitempty"`
	Anchor   string  `yaml:"anchor,omitempty"`
	Width    int     `yaml:"width,omitempty"`
	Height   int     `yaml:"height,omitempty"`
	Gap      int     `yaml:"gap,omitempty"`
	Padding  Spacing `yaml:"padding,omitempty"`
	Margin   Spacing `yaml:"margin,omitempty"`
	Stretch  bool    `yaml:"stretch,omitempty"`
	Hidden   bool    `yaml:"hidden,omitempty"`
	Text     string  `yaml:"text,omitempty"`
	Children []Entry `yaml:"children,omitempty"`
}

// Load reads and builds the tree in the file at path.
func Load(path string) (*layout.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading tree file: %w", err)
	}
	root, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return root, nil
}

// Parse builds the tree described by a YAML document.
func Parse(data []byte) (*layout.Node, error) {
	return Decode(bytes.NewReader(data))
}

// Decode reads one YAML document from r and builds its tree. Unknown keys
// are rejected. All validation problems are reported together.
func Decode(r io.Reader) (*layout.Node, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var entry Entry
	if err := dec.Decode(&entry); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty tree document")
		}
		return nil, fmt.Errorf("decoding tree: %w", err)
	}
	return entry.Build()
}

// Build validates e and its descendants and returns the corresponding tree.
func (e Entry) Build() (*layout.Node, error) {
	var mErr multierror.Error
	b := builder{mErr: &mErr, ids: make(map[string]string)}
	root := b.build(e, "root")
	if err := mErr.ErrorOrNil(); err != nil {
		return nil, err
	}
	return root, nil
}

type builder struct {
	mErr *multierror.Error
	ids  map[string]string // id -> path of first use
}

func (b *builder) errorf(path, format string, args ...any) {
	_ = multierror.Append(b.mErr, fmt.Errorf("%s: %s", path, fmt.Sprintf(format, args...)))
}

func (b *builder) build(e Entry, path string) *layout.Node {
	if e.ID != "" {
		if first, ok := b.ids[e.ID]; ok {
			b.errorf(path, "duplicate id %q, first used at %s", e.ID, first)
		} else {
			b.ids[e.ID] = path
		}
	}

	n := layout.NewNode(b.style(e, path))
	n.SetID(e.ID)
	if e.Text != "" {
		n.SetText(e.Text)
	}
	for i, child := range e.Children {
		n.AppendChild(b.build(child, fmt.Sprintf("%s.children[%d]", path, i)))
	}
	return n
}

func (b *builder) style(e Entry, path string) layout.Style {
	style := layout.DefaultStyle()

	flow, err := layout.ParseFlow(e.Flow)
	if err != nil {
		b.errorf(path, "%v", err)
	}
	style.Flow = flow

	anchor, err := layout.ParseAnchor(e.Anchor)
	if err != nil {
		b.errorf(path, "%v", err)
	}
	style.Anchor = anchor

	for _, f := range []struct {
		name  string
		value int
	}{{"width", e.Width}, {"height", e.Height}, {"gap", e.Gap}} {
		if f.value < 0 {
			b.errorf(path, "%s must not be negative, got %d", f.name, f.value)
		}
	}
	style.Size = layout.Size{Width: max(e.Width, 0), Height: max(e.Height, 0)}
	style.Gap = max(e.Gap, 0)

	if style.Padding, err = e.Padding.Edges(); err != nil {
		b.errorf(path, "padding: %v", err)
	}
	// An explicit size is the padding box, so it must hold the padding.
	if w, p := style.Size.Width, style.Padding.Horizontal(); w > 0 && w < p {
		b.errorf(path, "width %d is smaller than horizontal padding %d", w, p)
	}
	if h, p := style.Size.Height, style.Padding.Vertical(); h > 0 && h < p {
		b.errorf(path, "height %d is smaller than vertical padding %d", h, p)
	}
	if style.Margin, err = e.Margin.Edges(); err != nil {
		b.errorf(path, "margin: %v", err)
	}

	style.Stretch = e.Stretch
	style.Hidden = e.Hidden
	return style
}
