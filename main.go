package main

import (
	"os"

	"scrollpage/internal/cli"
	"scrollpage/internal/ui/input/types"
)

// Version information set via ldflags at build time
var version = "dev"

func main() {
	cli.Version = version
	app := &cli.App{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
	os.Exit(cli.Main(app, cli.Options{
		Name:     "scrollpage",
		Mode:     types.ModeScroller,
		Flexible: true,
	}, os.Args[1:]))
}
