package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/cli"
	"github.com/hashicorp/go-hclog"
	"golang.org/x/image/font"

	"github.com/grindlemire/boxflow/internal/debug"
	"github.com/grindlemire/boxflow/internal/layout"
	"github.com/grindlemire/boxflow/internal/text"
	"github.com/grindlemire/boxflow/internal/treefile"
)

// Meta holds the flags and collaborators shared by the layout commands.
type Meta struct {
	Ui cli.Ui

	// LogOutput receives log lines. Nil means os.Stderr.
	LogOutput io.Writer

	x, y     int
	measure  string
	fontPath string
	fontSize float64
	logLevel string
}

const metaHelp = `
  -x, -y
    Position of the root's top-left margin corner. Default = 0.

  -measure=<cells|face>
    How text is measured. "cells" counts terminal cells, "face" counts
    pixels of a font face.

  -font=<path>
    TrueType font used by -measure=face. Default is a built-in 7x13 face.

  -font-size=<points>
    Point size for -font. Default = 12.

  -log-level=<level>
    One of trace, debug, info, warn, error. Default = warn. When
    BOXFLOW_DEBUG names a file, trace output goes there instead.`

// FlagSet returns a flag set with the shared flags registered. measure is
// the default for -measure.
func (m *Meta) FlagSet(name, measure string) *flag.FlagSet {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.IntVar(&m.x, "x", 0, "")
	flags.IntVar(&m.y, "y", 0, "")
	flags.StringVar(&m.measure, "measure", measure, "")
	flags.StringVar(&m.fontPath, "font", "", "")
	flags.Float64Var(&m.fontSize, "font-size", 12, "")
	flags.StringVar(&m.logLevel, "log-level", "warn", "")
	flags.SetOutput(io.Discard)
	return flags
}

// Origin returns the position given by -x and -y.
func (m *Meta) Origin() layout.Point {
	return layout.Pt(m.x, m.y)
}

// Logger returns the logger for this invocation and a function releasing it.
func (m *Meta) Logger(name string) (hclog.Logger, func() error, error) {
	if os.Getenv(debug.EnvVar) != "" {
		return debug.FromEnv(name)
	}

	level := hclog.LevelFromString(m.logLevel)
	if level == hclog.NoLevel {
		return nil, nil, fmt.Errorf("invalid log level %q", m.logLevel)
	}
	out := m.LogOutput
	if out == nil {
		out = os.Stderr
	}
	logger := hclog.New(&hclog.LoggerOptions{
		Name:   name,
		Level:  level,
		Output: out,
	})
	return logger, func() error { return nil }, nil
}

// Measurer returns the content measurer selected by -measure, and the face
// it measures with when it is face based.
func (m *Meta) Measurer() (layout.ContentMeasurer, font.Face, error) {
	switch strings.ToLower(m.measure) {
	case "cells", "cell":
		if m.fontPath != "" {
			return nil, nil, fmt.Errorf("-font requires -measure=face")
		}
		return text.CellMeasurer{}, nil, nil
	case "face":
		var face font.Face
		if m.fontPath != "" {
			var err error
			if face, err = text.LoadFace(m.fontPath, m.fontSize); err != nil {
				return nil, nil, err
			}
		}
		fm := text.NewFaceMeasurer(face)
		return fm, fm.Face(), nil
	default:
		return nil, nil, fmt.Errorf("unknown measure %q, expected cells or face", m.measure)
	}
}

// Layout loads the tree file at path and reflows it with the configured
// measurer and logger.
func (m *Meta) Layout(path string, logger hclog.Logger, measurer layout.ContentMeasurer) (*layout.Node, error) {
	root, err := treefile.Load(path)
	if err != nil {
		return nil, err
	}

	engine := layout.NewEngine(layout.WithMeasurer(measurer), layout.WithLogger(logger))
	elapsed := engine.Reflow(root, m.Origin())
	logger.Debug("reflowed tree", "path", path, "duration", elapsed)
	return root, nil
}
