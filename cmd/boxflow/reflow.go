package main

import (
	"fmt"
	"strings"

	"github.com/grindlemire/boxflow/internal/layout"
)

// ReflowCommand lays out a tree file and prints each node's rects.
type ReflowCommand struct {
	Meta
}

func (c *ReflowCommand) Help() string {
	helpText := `
Usage: boxflow reflow [options] <tree.yaml>

  Lays out the tree described by a YAML file and prints the margin,
  padding and content rect of every node as "x,y wxh".

Reflow Options:

  -json
    Output the node rows in JSON format.

  -t
    Format and display the node rows using a Go template.

General Options:
` + metaHelp
	return strings.TrimSpace(helpText)
}

func (c *ReflowCommand) Synopsis() string {
	return "Lay out a tree file and print computed rects"
}

func (c *ReflowCommand) Run(args []string) int {
	var json bool
	var tmpl string

	flags := c.Meta.FlagSet("reflow", "cells")
	flags.Usage = func() { c.Ui.Output(c.Help()) }
	flags.BoolVar(&json, "json", false, "")
	flags.StringVar(&tmpl, "t", "", "")

	if err := flags.Parse(args); err != nil {
		return 1
	}

	args = flags.Args()
	if len(args) != 1 {
		c.Ui.Error("This command takes one argument: <tree.yaml>")
		c.Ui.Error(commandErrorText(c))
		return 1
	}

	logger, closeLog, err := c.Meta.Logger("boxflow")
	if err != nil {
		c.Ui.Error(err.Error())
		return 1
	}
	defer closeLog()

	measurer, _, err := c.Meta.Measurer()
	if err != nil {
		c.Ui.Error(err.Error())
		return 1
	}

	root, err := c.Meta.Layout(args[0], logger, measurer)
	if err != nil {
		c.Ui.Error(fmt.Sprintf("Error loading tree: %s", err))
		return 1
	}
	rows := nodeRows(root)

	if json || len(tmpl) > 0 {
		format := "json"
		if !json {
			format = "template"
		}
		f, err := DataFormat(format, tmpl)
		if err != nil {
			c.Ui.Error(fmt.Sprintf("Error formatting the data: %s", err))
			return 1
		}
		out, err := f.TransformData(rows)
		if err != nil {
			c.Ui.Error(fmt.Sprintf("Error formatting the data: %s", err))
			return 1
		}
		c.Ui.Output(out)
		return 0
	}

	out := make([]string, 0, len(rows)+1)
	out = append(out, "Path|ID|Anchor|Margin|Padding|Content|Hidden")
	for _, r := range rows {
		out = append(out, fmt.Sprintf("%s|%s|%s|%s|%s|%s|%t",
			r.Path, r.ID, r.Anchor, formatRect(r.Margin), formatRect(r.Padding), formatRect(r.Content), r.Hidden))
	}
	c.Ui.Output(formatList(out))
	return 0
}

// NodeRow is the machine-readable form of one laid-out node.
type NodeRow struct {
	Path    string
	ID      string
	Anchor  string
	Margin  layout.Rect
	Padding layout.Rect
	Content layout.Rect
	Hidden  bool
}

// nodeRows lists the nodes of root in pre-order with paths matching the
// ones used in tree file validation errors.
func nodeRows(root *layout.Node) []NodeRow {
	var rows []NodeRow
	var visit func(n *layout.Node, path string)
	visit = func(n *layout.Node, path string) {
		b := n.Bounds()
		rows = append(rows, NodeRow{
			Path:    path,
			ID:      n.ID(),
			Anchor:  n.Style().Anchor.String(),
			Margin:  b.MarginRect,
			Padding: b.PaddingRect,
			Content: b.ContentRect,
			Hidden:  n.Style().Hidden,
		})
		for i, child := range n.Children() {
			visit(child, fmt.Sprintf("%s.children[%d]", path, i))
		}
	}
	visit(root, "root")
	return rows
}

func formatRect(r layout.Rect) string {
	return fmt.Sprintf("%d,%d %dx%d", r.X1, r.Y1, r.Width(), r.Height())
}
