package exprtree

import (
	"log"

	"github.com/pkg/errors"

	"github.com/pdk/mplot/token"
)

// validate enforces the argument-shape rules of spec component C2 against a
// freshly split node whose children (if any) have already been built and
// validated. It may return a structurally different node than it was given
// (the RightUnary numeric-left rewrite, and CommaBinary comma lifting).
func validate(n *Node) (*Node, token.ParseStatus) {
	switch n.Tok.Kind.ArgShape() {

	case token.Standalone:
		if n.Left != nil || n.Right != nil {
			return nil, internalError(n, "standalone token has children")
		}

	case token.Binary:
		if n.Left == nil || n.Right == nil {
			return nil, token.ParseStatus{Error: token.MissingArgument, Offset: n.Tok.Offset, Offending: n.Tok.Kind.String()}
		}

	case token.RightUnary:
		if n.Right == nil {
			return nil, token.ParseStatus{Error: token.MissingArgument, Offset: n.Tok.Offset, Offending: n.Tok.Kind.String()}
		}
		if n.Left != nil {
			if n.Left.Tok.Kind != token.Number {
				return nil, token.ParseStatus{Error: token.ExtraArgument, Offset: n.Tok.Offset, Offending: n.Tok.Kind.String()}
			}

			// Rewrite: this node becomes an implicit Multiply whose
			// left child is the number and whose right child is a
			// new node carrying the original unary operator over the
			// original right subtree.
			unary := &Node{Tok: n.Tok, Right: n.Right}
			n = &Node{
				Tok:       token.Token{Kind: token.Multiply, Offset: n.Tok.Offset},
				Left:      n.Left,
				Right:     unary,
				Bracketed: n.Bracketed,
			}
			return n, token.ParseStatus{}
		}

	case token.LeftUnary:
		if n.Left == nil {
			return nil, token.ParseStatus{Error: token.MissingArgument, Offset: n.Tok.Offset, Offending: n.Tok.Kind.String()}
		}
		if n.Right != nil {
			return nil, token.ParseStatus{Error: token.ExtraArgument, Offset: n.Tok.Offset, Offending: n.Tok.Kind.String()}
		}

	case token.CommaBinary:
		if n.Right == nil {
			return nil, token.ParseStatus{Error: token.MissingArgument, Offset: n.Tok.Offset, Offending: n.Tok.Kind.String()}
		}
		if n.Left != nil {
			return nil, token.ParseStatus{Error: token.ExtraArgument, Offset: n.Tok.Offset, Offending: n.Tok.Kind.String()}
		}
		if n.Right.Tok.Kind != token.Comma {
			return nil, token.ParseStatus{Error: token.InvalidArgument, Offset: n.Tok.Offset, Offending: n.Tok.Kind.String()}
		}
		if n.Right.Left.Tok.Kind == token.Comma || n.Right.Right.Tok.Kind == token.Comma {
			return nil, token.ParseStatus{Error: token.ExtraArgument, Offset: n.Tok.Offset, Offending: n.Tok.Kind.String()}
		}

		n.Left = n.Right.Left
		n.Right = n.Right.Right

		return n, token.ParseStatus{}
	}

	// A Comma node surviving as a child of anything other than a
	// CommaBinary parent (handled above, which never reaches here) is
	// misplaced.
	if n.Left != nil && n.Left.Tok.Kind == token.Comma {
		return nil, token.ParseStatus{Error: token.MisplacedComma, Offset: n.Left.Tok.Offset, Offending: ","}
	}
	if n.Right != nil && n.Right.Tok.Kind == token.Comma {
		return nil, token.ParseStatus{Error: token.MisplacedComma, Offset: n.Right.Tok.Offset, Offending: ","}
	}

	return n, token.ParseStatus{}
}

// internalError marks a path the tree builder believes is unreachable if
// parsing is correct (spec §9 design notes). The stack trace is captured
// and logged at the point of detection; the caller only ever sees the
// plain LogicError status, never a panic.
func internalError(n *Node, reason string) token.ParseStatus {
	err := errors.Errorf("exprtree: unreachable path reached: %s (token %s)", reason, n.Tok.Kind)
	log.Printf("%+v", err)

	return token.ParseStatus{Error: token.LogicError, Offset: n.Tok.Offset, Offending: n.Tok.Kind.String()}
}
