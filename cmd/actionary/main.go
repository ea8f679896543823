package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
)

var version = "0.1.0"

// Globals carries state shared by every command
type Globals struct {
	Out    io.Writer
	Getenv func(string) string
}

// CLI is the command line definition. Global flags override the config
// file and environment.
type CLI struct {
	Config  string `short:"c" help:"Configuration file path" type:"path"`
	File    string `short:"f" help:"Tasks file for the json backend" type:"path"`
	Backend string `short:"b" help:"Storage backend (json, sqlite)"`
	Theme   string `help:"Theme name (actionary, nord, dracula, gruvbox, catppuccin)"`
	Debug   bool   `short:"d" help:"Enable debug logging"`

	UI      UICmd      `cmd:"" name:"ui" default:"1" help:"Start the interactive task list"`
	Add     AddCmd     `cmd:"" help:"Add a task"`
	List    ListCmd    `cmd:"" help:"Print tasks, To-Do first"`
	Done    DoneCmd    `cmd:"" help:"Toggle completion of task n"`
	Tag     TagCmd     `cmd:"" help:"Set the tag of task n"`
	Rm      RmCmd      `cmd:"" help:"Delete task n"`
	Version VersionCmd `cmd:"" help:"Show version"`
}

func newParser(cli *CLI, g *Globals) (*kong.Kong, error) {
	return kong.New(cli,
		kong.Name("actionary"),
		kong.Description("A to-do list with tags and inline formatting."),
		kong.UsageOnError(),
		kong.Writers(g.Out, os.Stderr),
	)
}

func run(args []string, g *Globals) error {
	var cli CLI
	parser, err := newParser(&cli, g)
	if err != nil {
		return err
	}
	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	return ctx.Run(g, &cli)
}

func main() {
	g := &Globals{Out: os.Stdout, Getenv: os.Getenv}
	if err := run(os.Args[1:], g); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
