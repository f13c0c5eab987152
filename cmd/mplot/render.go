package main

import (
	"fmt"
	"image/png"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/pdk/mplot/document"
	"github.com/pdk/mplot/registry"
	"github.com/pdk/mplot/render"
)

var renderCommand = &cli.Command{
	Name:      "render",
	Usage:     "render a saved <mplotdoc> document to a PNG raster",
	ArgsUsage: "<doc.xml> <out.png>",
	Flags: []cli.Flag{
		&cli.IntFlag{Name: "width", Value: 800},
		&cli.IntFlag{Name: "height", Value: 600},
		&cli.Float64Flag{Name: "xmin", Value: -10},
		&cli.Float64Flag{Name: "xmax", Value: 10},
		&cli.Float64Flag{Name: "ymin", Value: -10},
		&cli.Float64Flag{Name: "ymax", Value: 10},
	},
	Action: runRender,
}

func runRender(c *cli.Context) error {
	if c.NArg() != 2 {
		return cli.Exit("render requires <doc.xml> <out.png>", 1)
	}
	docPath := c.Args().Get(0)
	outPath := c.Args().Get(1)

	width, height := c.Int("width"), c.Int("height")
	xMin, xMax := c.Float64("xmin"), c.Float64("xmax")
	yMin, yMax := c.Float64("ymin"), c.Float64("ymax")
	if xMax <= xMin || yMax <= yMin {
		return cli.Exit("xmax/ymax must be greater than xmin/ymin", 1)
	}

	in, err := os.Open(docPath)
	if err != nil {
		return cli.Exit(err, 1)
	}
	defer in.Close()

	reg := registry.New()
	if err := document.Load(in, reg); err != nil {
		return cli.Exit(fmt.Errorf("loading %s: %w", docPath, err), 1)
	}

	params := render.Params{
		Scale:  float64(width) / (xMax - xMin),
		XMin:   xMin,
		YMin:   yMin,
		Width:  width,
		Height: height,
	}

	canvas := render.NewImageCanvas(width, height)
	paintAll(reg, canvas, params)

	out, err := os.Create(outPath)
	if err != nil {
		return cli.Exit(err, 1)
	}
	defer out.Close()

	if err := png.Encode(out, canvas.Img); err != nil {
		return cli.Exit(err, 1)
	}
	return nil
}

// paintAll renders every enabled function in reg's iteration order onto
// canvas, stopping early if a recursive function definition is detected
// (spec.md §4.4, §7: a one-shot event that disables every function and
// breaks the render loop).
func paintAll(reg *registry.Registry, canvas render.Canvas, params render.Params) {
	reg.ClearRecursionFlag()

	for _, fn := range reg.ListFunctions() {
		if !fn.Enabled {
			continue
		}

		switch fn.Kind {
		case registry.Cartesian:
			render.Cartesian(canvas, fn, params)
		case registry.Parametric:
			render.Parametric(canvas, fn, params)
		case registry.Implicit:
			render.Implicit(canvas, fn, params)
		}

		if reg.RecursionDetected() {
			log.Printf("recursion detected while rendering %q -- disabling all functions", fn.Name)
			reg.DisableAll()
			return
		}
	}
}
