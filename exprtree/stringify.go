package exprtree

import (
	"strconv"
	"strings"

	"github.com/pdk/mplot/token"
)

// Flatten re-linearizes a validated tree back into a token stream,
// re-inserting the call-parentheses/comma of a CommaBinary node and the
// bracket pair recorded on any node whose Bracketed hint is set.
func Flatten(n *Node) []token.Token {
	if n == nil {
		return nil
	}
	if n.IsLeaf() {
		return []token.Token{n.Tok}
	}

	left := flattenChild(n.Left)
	right := flattenChild(n.Right)

	if n.Tok.Kind.ArgShape() == token.CommaBinary {
		out := make([]token.Token, 0, len(left)+len(right)+4)
		out = append(out, n.Tok)
		out = append(out, token.Token{Kind: token.LeftBracket})
		out = append(out, left...)
		out = append(out, token.Token{Kind: token.Comma})
		out = append(out, right...)
		out = append(out, token.Token{Kind: token.RightBracket})
		return out
	}

	out := make([]token.Token, 0, len(left)+len(right)+1)
	out = append(out, left...)
	out = append(out, n.Tok)
	out = append(out, right...)
	return out
}

func flattenChild(c *Node) []token.Token {
	if c == nil {
		return nil
	}

	toks := Flatten(c)
	if c.Bracketed {
		wrapped := make([]token.Token, 0, len(toks)+2)
		wrapped = append(wrapped, token.Token{Kind: token.LeftBracket})
		wrapped = append(wrapped, toks...)
		wrapped = append(wrapped, token.Token{Kind: token.RightBracket})
		return wrapped
	}
	return toks
}

// NumberFormatter renders a folded/leaf Number token's value as text.
type NumberFormatter func(float64) string

// DefaultNumberFormatter renders with Go's shortest round-trip
// representation, used when no process-wide format/precision is supplied.
func DefaultNumberFormatter(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Stringify renders n back to canonical source text: a flat, single-space
// separated token stream, minimal brackets driven by each node's Bracketed
// hint.
func Stringify(n *Node, fmtNum NumberFormatter) string {
	if n == nil {
		return ""
	}
	if fmtNum == nil {
		fmtNum = DefaultNumberFormatter
	}

	toks := Flatten(n)
	parts := make([]string, len(toks))

	for i, t := range toks {
		parts[i] = tokenText(t, fmtNum)
	}

	return strings.Join(parts, " ")
}

func tokenText(t token.Token, fmtNum NumberFormatter) string {
	switch t.Kind {
	case token.Number:
		return fmtNum(t.Number)
	case token.Identifier, token.ExternalFunction:
		return t.Name
	default:
		return t.Kind.String()
	}
}
