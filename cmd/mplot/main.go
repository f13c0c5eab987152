// Command mplot is a thin CLI over the parser/registry/render core: it
// evaluates a single expression, renders a saved document to a PNG, or
// drops into an interactive REPL. None of this is part of the specified
// algorithmic surface -- it exists only to make the core runnable end to
// end without a GUI (SPEC_FULL.md §1).
package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "mplot",
		Usage: "evaluate, render, and explore function-plotter expressions",
		Commands: []*cli.Command{
			evalCommand,
			renderCommand,
			replCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalf("mplot: %s", err)
	}
}
