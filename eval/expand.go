package eval

import (
	"github.com/pdk/mplot/exprtree"
	"github.com/pdk/mplot/token"
)

// Expand destructively folds the constant parts of n into Number leaves,
// returning the (possibly rewritten) root and the ComputeResult of
// evaluating it. A subtree is foldable only if it contains no Identifier or
// ExternalFunction reference -- both can change value between evaluations
// (the swept plot variable, a rebindable registry lookup), so folding either
// away would bake in a value that goes stale on the very next sample.
//
// A variable error on an unbound identifier does not abort folding the way a
// math error does: the offending subtree is simply left unfolded (and its
// VariableErr reported), while any sibling that happens to be fully constant
// still gets folded.
//
// When oneStep is true, Expand folds at most one operator per call: it
// descends into the innermost non-leaf child (left first, else right) and
// returns as soon as that recursive call returns, only evaluating/folding
// the current node once neither child has further children to descend
// into. This mirrors original_source/treeparser.cpp's
// TokenNode::computeExpression(variables, once), which recurses the same
// way and returns immediately up each level while once is set. If that
// innermost node references a variable or fails to evaluate, the call folds
// nothing, and later one-step calls reach the same node again. When false,
// it recurses to a full fixpoint in one call.
func Expand(n *exprtree.Node, env *Env, resolver CallResolver, oneStep bool) (*exprtree.Node, ComputeResult) {
	if n == nil {
		return nil, ComputeResult{LogicErr: true}
	}

	switch n.Tok.Kind {
	case token.Number:
		return n, ComputeResult{Value: n.Tok.Number}
	case token.Identifier:
		ref, ok := env.Lookup(n.Tok.Name)
		if !ok {
			return n, ComputeResult{VariableErr: true}
		}
		return n, ComputeResult{Value: *ref}
	}

	if oneStep {
		return expandOneStep(n, env, resolver)
	}

	if n.Left != nil {
		var res ComputeResult
		n.Left, res = Expand(n.Left, env, resolver, false)
		if !res.OK() {
			return n, res
		}
	}
	if n.Right != nil {
		var res ComputeResult
		n.Right, res = Expand(n.Right, env, resolver, false)
		if !res.OK() {
			return n, res
		}
	}

	return foldNode(n, env, resolver)
}

// expandOneStep descends into n's left child if it still has children of
// its own, else its right child, and returns as soon as that recursive
// call does. Once neither child has further children to descend into, n
// itself is the innermost ready node, and is folded.
func expandOneStep(n *exprtree.Node, env *Env, resolver CallResolver) (*exprtree.Node, ComputeResult) {
	if n.Left != nil && !n.Left.IsLeaf() {
		child, res := Expand(n.Left, env, resolver, true)
		n.Left = child
		return n, res
	}
	if n.Right != nil && !n.Right.IsLeaf() {
		child, res := Expand(n.Right, env, resolver, true)
		n.Right = child
		return n, res
	}

	return foldNode(n, env, resolver)
}

// foldNode evaluates n against its (already-expanded) children and, if the
// result is error-free and n's subtree references no variable, rewrites n
// into a Number leaf. Shared terminal step of both full and one-step
// expansion.
func foldNode(n *exprtree.Node, env *Env, resolver CallResolver) (*exprtree.Node, ComputeResult) {
	res := Value(n, env, resolver)
	if !res.OK() {
		return n, res
	}
	if res.VariableErr || containsVariable(n) {
		return n, res
	}

	return &exprtree.Node{Tok: token.Token{Kind: token.Number, Number: res.Value}}, ComputeResult{Value: res.Value}
}

// containsVariable reports whether n's subtree references an Identifier or
// an ExternalFunction -- either marks the subtree as non-constant.
func containsVariable(n *exprtree.Node) bool {
	if n == nil {
		return false
	}
	if n.Tok.Kind == token.Identifier || n.Tok.Kind == token.ExternalFunction {
		return true
	}
	return containsVariable(n.Left) || containsVariable(n.Right)
}
