package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/grindlemire/boxflow/internal/layout"
	"github.com/grindlemire/boxflow/internal/render"
)

// RenderCommand lays out a tree file and draws it as a PNG wireframe or as
// box outlines in text.
type RenderCommand struct {
	Meta
}

func (c *RenderCommand) Help() string {
	helpText := `
Usage: boxflow render [options] <tree.yaml>

  Lays out the tree described by a YAML file and draws every visible node.
  The png format shades margins and outlines padding and content rects.
  The text format outlines padding rects with box-drawing characters and
  is meant for trees measured in cells.

Render Options:

  -format=<png|text>
    Output format. Default = png.

  -o=<path>
    Output path. Required for png. Text goes to stdout when omitted.

  -scale=<n>
    Pixels per layout unit for png. Default = 1, or 13 with -measure=cells.

  -border=<single|rounded|double|thick|ascii>
    Border characters for text. Default = single.

General Options:
` + metaHelp
	return strings.TrimSpace(helpText)
}

func (c *RenderCommand) Synopsis() string {
	return "Lay out a tree file and draw it"
}

func (c *RenderCommand) Run(args []string) int {
	var output, format, borderName string
	var scale int

	flags := c.Meta.FlagSet("render", "")
	flags.Usage = func() { c.Ui.Output(c.Help()) }
	flags.StringVar(&format, "format", "png", "")
	flags.StringVar(&output, "o", "", "")
	flags.IntVar(&scale, "scale", 0, "")
	flags.StringVar(&borderName, "border", "single", "")

	if err := flags.Parse(args); err != nil {
		return 1
	}

	args = flags.Args()
	if len(args) != 1 {
		c.Ui.Error("This command takes one argument: <tree.yaml>")
		c.Ui.Error(commandErrorText(c))
		return 1
	}

	switch format {
	case "png":
		if output == "" {
			c.Ui.Error("Missing required -o output path")
			return 1
		}
		if c.measure == "" {
			c.measure = "face"
		}
	case "text":
		if c.measure == "" {
			c.measure = "cells"
		}
	default:
		c.Ui.Error(fmt.Sprintf("Unknown format %q, expected png or text", format))
		return 1
	}

	border, err := render.ParseBorder(borderName)
	if err != nil {
		c.Ui.Error(err.Error())
		return 1
	}

	logger, closeLog, err := c.Meta.Logger("boxflow")
	if err != nil {
		c.Ui.Error(err.Error())
		return 1
	}
	defer closeLog()

	measurer, face, err := c.Meta.Measurer()
	if err != nil {
		c.Ui.Error(err.Error())
		return 1
	}

	root, err := c.Meta.Layout(args[0], logger, measurer)
	if err != nil {
		c.Ui.Error(fmt.Sprintf("Error loading tree: %s", err))
		return 1
	}

	if format == "text" {
		grid := render.Text(root, border)
		if output == "" {
			c.Ui.Output(grid.String())
			return 0
		}
		return c.writeFile(output, func(w io.Writer) error {
			_, err := io.WriteString(w, grid.String()+"\n")
			return err
		})
	}

	if scale <= 0 {
		scale = 1
		if face == nil {
			scale = 13
		}
	}
	r := render.New(render.WithScale(scale), render.WithFace(face))
	code := c.writeFile(output, func(w io.Writer) error {
		return r.EncodePNG(w, root)
	})
	if code == 0 {
		logger.Info("wrote wireframe", "path", output, "extent", render.Extent(root), "origin", c.Origin(), "nodes", countNodes(root))
	}
	return code
}

func (c *RenderCommand) writeFile(path string, write func(io.Writer) error) int {
	f, err := os.Create(path)
	if err != nil {
		c.Ui.Error(fmt.Sprintf("Error creating output: %s", err))
		return 1
	}
	if err := write(f); err != nil {
		f.Close()
		c.Ui.Error(fmt.Sprintf("Error writing %s: %s", path, err))
		return 1
	}
	if err := f.Close(); err != nil {
		c.Ui.Error(fmt.Sprintf("Error writing %s: %s", path, err))
		return 1
	}
	c.Ui.Output(fmt.Sprintf("Wrote %s", path))
	return 0
}

func countNodes(root *layout.Node) int {
	count := 0
	root.Walk(func(*layout.Node) bool {
		count++
		return true
	})
	return count
}
