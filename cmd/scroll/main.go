package main

import (
	"os"

	"scrollpage/internal/cli"
	"scrollpage/internal/ui/input/types"
)

func main() {
	app := &cli.App{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
	os.Exit(cli.Main(app, cli.Options{Name: "scroll", Mode: types.ModeScroller}, os.Args[1:]))
}
