package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
	"golang.org/x/crypto/ssh/terminal"

	"github.com/pdk/mplot/parser"
	"github.com/pdk/mplot/registry"
)

var replCommand = &cli.Command{
	Name:  "repl",
	Usage: "interactively evaluate expressions and define functions",
	Action: func(c *cli.Context) error {
		if !terminal.IsTerminal(int(os.Stdin.Fd())) {
			runLines(registry.New(), readAllLines(os.Stdin), os.Stdout, os.Stderr)
			return nil
		}

		fmt.Println("mplot 0.0.x")
		startREPL(os.Stdin, os.Stdout, os.Stderr)
		return nil
	},
}

// prompt is shown when the REPL is waiting for a line of input.
const prompt = ">>> "

// startREPL reads lines from in until EOF, evaluating each one against a
// single registry.Registry shared across the whole session -- a function
// defined on one line is visible to every later line (SPEC_FULL.md §6).
func startREPL(in io.Reader, out, errout io.Writer) {
	reg := registry.New()
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprint(out, prompt)
		if !scanner.Scan() {
			return
		}
		evalLine(reg, scanner.Text(), out, errout)
	}
}

// readAllLines drains r into one string per line, for the piped/non-interactive
// stdin path (SPEC_FULL.md §6).
func readAllLines(r io.Reader) []string {
	var lines []string
	s := bufio.NewScanner(r)
	for s.Scan() {
		lines = append(lines, s.Text())
	}
	return lines
}

// runLines replays a batch of lines (piped stdin, or a script file) through
// the same evaluation path as the interactive loop, without the prompt.
func runLines(reg *registry.Registry, lines []string, out, errout io.Writer) {
	for _, line := range lines {
		evalLine(reg, line, out, errout)
	}
}

func evalLine(reg *registry.Registry, line string, out, errout io.Writer) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}
	if line == "quit" || line == "exit" {
		return
	}

	if name, sub, formula, ok := parseDefinition(line); ok {
		defineCartesian(reg, name, sub, formula, out, errout)
		return
	}

	p := parser.New(reg.Context())
	if !p.SetExpression(line) {
		if _, err := fmt.Fprintf(errout, "parse error: %s\n", p.Status()); err != nil {
			log.Fatalf("%s", err)
		}
		return
	}

	result := p.Value()
	switch {
	case result.LogicErr:
		log.Printf("internal logic error evaluating %q", line)
	case result.MathErr != 0:
		if _, err := fmt.Fprintf(errout, "math error: %s\n", result.MathErr); err != nil {
			log.Fatalf("%s", err)
		}
	case result.VariableErr:
		if _, err := fmt.Fprintf(errout, "unbound variable in %q\n", line); err != nil {
			log.Fatalf("%s", err)
		}
	default:
		if _, err := fmt.Fprintf(out, "%v\n", result.Value); err != nil {
			log.Fatalf("%s", err)
		}
	}
}

// parseDefinition recognises the REPL's one piece of surface syntax for
// defining a Cartesian function: "name(x) = formula" or "name(y) = formula".
// Anything else is treated as a plain expression to evaluate.
func parseDefinition(line string) (name string, sub registry.CartesianSubKind, formula string, ok bool) {
	eq := strings.Index(line, "=")
	if eq < 0 {
		return "", 0, "", false
	}
	head := strings.TrimSpace(line[:eq])
	formula = strings.TrimSpace(line[eq+1:])

	open := strings.Index(head, "(")
	if open < 0 || !strings.HasSuffix(head, ")") {
		return "", 0, "", false
	}

	name = strings.TrimSpace(head[:open])
	arg := strings.TrimSpace(head[open+1 : len(head)-1])

	switch arg {
	case "x":
		sub = registry.XToY
	case "y":
		sub = registry.YToX
	default:
		return "", 0, "", false
	}
	if name == "" {
		return "", 0, "", false
	}
	return name, sub, formula, true
}

func defineCartesian(reg *registry.Registry, name string, sub registry.CartesianSubKind, formula string, out, errout io.Writer) {
	fn, ok := reg.Find(name)
	if !ok {
		var err error
		fn, err = reg.Add(registry.Cartesian, name)
		if err != nil {
			if _, werr := fmt.Fprintf(errout, "%s\n", err); werr != nil {
				log.Fatalf("%s", werr)
			}
			return
		}
	} else if fn.Kind != registry.Cartesian {
		if _, err := fmt.Fprintf(errout, "%s is already defined as a %s function\n", name, fn.Kind); err != nil {
			log.Fatalf("%s", err)
		}
		return
	}

	fn.SubKind = sub
	if !fn.Formula.SetExpression(formula) {
		if _, err := fmt.Fprintf(errout, "parse error: %s\n", fn.Formula.Status()); err != nil {
			log.Fatalf("%s", err)
		}
		return
	}

	if _, err := fmt.Fprintf(out, "%s defined\n", name); err != nil {
		log.Fatalf("%s", err)
	}
}
