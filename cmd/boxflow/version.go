package main

import (
	"github.com/hashicorp/cli"
)

// VersionCommand prints the CLI version.
type VersionCommand struct {
	Ui cli.Ui
}

func (c *VersionCommand) Help() string {
	return "Usage: boxflow version\n\n  Prints the version of boxflow."
}

func (c *VersionCommand) Synopsis() string {
	return "Prints the boxflow version"
}

func (c *VersionCommand) Run(_ []string) int {
	c.Ui.Output("boxflow v" + version)
	return 0
}

// commandErrorText is used to easily render the same messaging across commands
// when an error is printed.
func commandErrorText(cmd cli.Command) string {
	return "For additional help try 'boxflow " + commandName(cmd) + " -help'"
}

func commandName(cmd cli.Command) string {
	switch cmd.(type) {
	case *ReflowCommand:
		return "reflow"
	case *RenderCommand:
		return "render"
	}
	return "version"
}
