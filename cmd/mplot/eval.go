package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/pdk/mplot/parser"
)

var evalCommand = &cli.Command{
	Name:      "eval",
	Usage:     "parse and evaluate a single expression once",
	ArgsUsage: "<expr>",
	Flags: []cli.Flag{
		&cli.StringSliceFlag{
			Name:  "var",
			Usage: "bind a variable for this evaluation, name=value",
		},
	},
	Action: runEval,
}

func runEval(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("eval requires exactly one expression argument", 1)
	}
	expr := c.Args().Get(0)

	bindings, err := parseBindings(c.StringSlice("var"))
	if err != nil {
		return cli.Exit(err, 1)
	}

	ctx := parser.NewContext(nil)
	p := parser.New(ctx)
	if !p.SetExpression(expr) {
		return cli.Exit(fmt.Sprintf("parse error: %s", p.Status()), 1)
	}

	for name, value := range bindings {
		v := value
		p.Env().Bind(name, &v)
	}

	result := p.Value()
	switch {
	case result.LogicErr:
		return cli.Exit("internal logic error -- please report this expression", 1)
	case result.MathErr != 0:
		return cli.Exit(fmt.Sprintf("math error: %s", result.MathErr), 1)
	case result.VariableErr:
		return cli.Exit("unbound variable: pass --var name=value", 1)
	}

	fmt.Printf("%s = %v\n", p.Expression(), result.Value)
	return nil
}

// parseBindings turns a list of "name=value" strings into a map, erroring
// on malformed entries rather than silently skipping them.
func parseBindings(raw []string) (map[string]float64, error) {
	out := make(map[string]float64, len(raw))
	for _, entry := range raw {
		name, text, ok := strings.Cut(entry, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --var %q: expected name=value", entry)
		}
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid --var %q: %w", entry, err)
		}
		out[name] = v
	}
	return out, nil
}
