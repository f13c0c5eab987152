package parser

import (
	"github.com/pdk/mplot/eval"
	"github.com/pdk/mplot/exprtree"
	"github.com/pdk/mplot/lexer"
	"github.com/pdk/mplot/token"
)

// Parser is one parsed-expression instance: a tree root, the source text it
// was built from (for Reparse), the last ParseStatus, and a private
// variable environment bound by the renderer between evaluations. Many
// Parser instances may share one *Context.
type Parser struct {
	ctx    *Context
	source string
	root   *exprtree.Node
	status token.ParseStatus
	env    *eval.Env

	// shared marks a clone-shared instance: root and source are borrowed
	// from another Parser and must never be mutated in place (spec §9).
	shared bool
}

// New returns an empty Parser bound to ctx.
func New(ctx *Context) *Parser {
	return &Parser{ctx: ctx, env: eval.NewEnv()}
}

// Env exposes the variable environment a renderer binds into between
// evaluations.
func (p *Parser) Env() *eval.Env {
	return p.env
}

// Context returns the shared process-wide state this parser was
// constructed with.
func (p *Parser) Context() *Context {
	return p.ctx
}

// Status returns the ParseStatus of the last SetExpression/Reparse call.
func (p *Parser) Status() token.ParseStatus {
	return p.status
}

// SetExpression lexes and builds src into a tree, substituting any
// identifier that names a process-wide constant into a Number leaf. It
// returns false (with Status() describing the failure) on any lex or build
// error, leaving the previous tree, if any, untouched.
func (p *Parser) SetExpression(src string) bool {
	var resolver lexer.Resolver
	if p.ctx != nil && p.ctx.Resolver != nil {
		resolver = p.ctx.Resolver
	}

	toks, status := lexer.Lex(src, resolver)
	if !status.OK() {
		p.status = status
		return false
	}

	root, status := exprtree.Build(toks)
	if !status.OK() {
		p.status = status
		return false
	}

	if p.ctx != nil {
		root = substituteConstants(root, p.ctx.Constants)
	}

	p.root = root
	p.source = src
	p.status = token.ParseStatus{}
	p.shared = false
	return true
}

// Reparse re-runs SetExpression against the stored source text (used by
// Registry.ReparseAll after an edit elsewhere invalidates cached trees).
func (p *Parser) Reparse() bool {
	return p.SetExpression(p.source)
}

// Source returns the original expression text last set.
func (p *Parser) Source() string {
	return p.source
}

// Tokens re-linearizes the current tree back into its token stream.
func (p *Parser) Tokens() []token.Token {
	return exprtree.Flatten(p.root)
}

// SetTokens rebuilds the tree directly from a token list, bypassing the
// lexer, for callers that already hold a token stream. The stored source
// text is left as it was, so a later Reparse rebuilds from that text.
func (p *Parser) SetTokens(toks []token.Token) bool {
	root, status := exprtree.Build(toks)
	if !status.OK() {
		p.status = status
		return false
	}
	if p.ctx != nil {
		root = substituteConstants(root, p.ctx.Constants)
	}
	p.root = root
	p.status = token.ParseStatus{}
	p.shared = false
	return true
}

// Expression stringifies the current tree back to canonical source text,
// using the shared Context's number format and precision.
func (p *Parser) Expression() string {
	return exprtree.Stringify(p.root, numberFormatter(p.ctx))
}

// Value evaluates the current tree against this parser's environment.
func (p *Parser) Value() eval.ComputeResult {
	var resolver eval.CallResolver
	if p.ctx != nil {
		resolver = p.ctx.Resolver
	}
	return eval.Value(p.root, p.env, resolver)
}

// Expand destructively constant-folds the current tree in place; see
// eval.Expand. Never call this on a clone-shared parser's tree -- use
// CloneDeep first.
func (p *Parser) Expand(oneStep bool) eval.ComputeResult {
	var resolver eval.CallResolver
	if p.ctx != nil {
		resolver = p.ctx.Resolver
	}
	root, result := eval.Expand(p.root, p.env, resolver, oneStep)
	p.root = root
	return result
}

// VariablesInExpression returns the distinct Identifier names referenced by
// the current tree, in tree-walk order.
func (p *Parser) VariablesInExpression() []string {
	return collectNames(p.root, token.Identifier)
}

// ExternalFunctionsInExpression returns the distinct ExternalFunction names
// referenced by the current tree, in tree-walk order.
func (p *Parser) ExternalFunctionsInExpression() []string {
	return collectNames(p.root, token.ExternalFunction)
}

// CloneShared returns a new Parser that references the same tree and
// source text, with its own fresh variable environment and status. Safe as
// long as neither parser's tree is ever mutated -- i.e. Expand is never
// called on a shared tree (spec §4.6, §9).
func (p *Parser) CloneShared() *Parser {
	return &Parser{
		ctx:    p.ctx,
		source: p.source,
		root:   p.root,
		status: p.status,
		env:    eval.NewEnv(),
		shared: true,
	}
}

// CloneDeep returns a new Parser with its own independent copy of the tree,
// free to Expand without affecting the original.
func (p *Parser) CloneDeep() *Parser {
	return &Parser{
		ctx:    p.ctx,
		source: p.source,
		root:   p.root.Clone(),
		status: p.status,
		env:    eval.NewEnv(),
	}
}

// IsShared reports whether this instance was produced by CloneShared and
// therefore must not mutate its tree.
func (p *Parser) IsShared() bool {
	return p.shared
}

func substituteConstants(n *exprtree.Node, constants map[string]float64) *exprtree.Node {
	if n == nil {
		return nil
	}
	n.Left = substituteConstants(n.Left, constants)
	n.Right = substituteConstants(n.Right, constants)

	if n.Tok.Kind == token.Identifier {
		if v, ok := constants[n.Tok.Name]; ok {
			return &exprtree.Node{Tok: token.Token{Kind: token.Number, Number: v}, Bracketed: n.Bracketed}
		}
	}
	return n
}

func collectNames(n *exprtree.Node, kind token.Kind) []string {
	if n == nil {
		return nil
	}

	var names []string
	seen := make(map[string]bool)

	n.Walk(func(node *exprtree.Node) {
		if node.Tok.Kind != kind {
			return
		}
		if seen[node.Tok.Name] {
			return
		}
		seen[node.Tok.Name] = true
		names = append(names, node.Tok.Name)
	})

	return names
}
