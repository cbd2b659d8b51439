package main

import (
	"os"

	"scrollpage/internal/cli"
	"scrollpage/internal/ui/input/types"
)

func main() {
	app := &cli.App{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
	os.Exit(cli.Main(app, cli.Options{Name: "more", Mode: types.ModePager}, os.Args[1:]))
}
