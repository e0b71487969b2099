// Command boxflow lays out YAML tree files and reports or draws the result.
//
// Usage:
//
//	boxflow reflow [options] <tree.yaml>   Print computed rects per node
//	boxflow render [options] <tree.yaml>   Write a PNG wireframe
//	boxflow version                        Print version information
package main

import (
	"os"

	"github.com/hashicorp/cli"
)

const version = "0.1.0"

func main() {
	os.Exit(Run(os.Args[1:]))
}

// Run executes the CLI with args and returns the exit status.
func Run(args []string) int {
	ui := &cli.BasicUi{
		Reader:      os.Stdin,
		Writer:      os.Stdout,
		ErrorWriter: os.Stderr,
	}

	c := cli.NewCLI("boxflow", version)
	c.Args = args
	c.Commands = Commands(Meta{Ui: ui})
	c.HelpWriter = os.Stdout

	exitCode, err := c.Run()
	if err != nil {
		ui.Error("Error executing CLI: " + err.Error())
		return 1
	}
	return exitCode
}

// Commands returns the command factories keyed by name.
func Commands(meta Meta) map[string]cli.CommandFactory {
	return map[string]cli.CommandFactory{
		"reflow": func() (cli.Command, error) {
			return &ReflowCommand{Meta: meta}, nil
		},
		"render": func() (cli.Command, error) {
			return &RenderCommand{Meta: meta}, nil
		},
		"version": func() (cli.Command, error) {
			return &VersionCommand{Ui: meta.Ui}, nil
		},
	}
}
