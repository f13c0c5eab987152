package exprtree

import (
	"github.com/pdk/mplot/token"
)

// Build turns a lexed token stream into a validated expression tree, per the
// rightmost-highest-priority split algorithm of spec component C2.
func Build(toks []token.Token) (*Node, token.ParseStatus) {
	if len(toks) == 0 {
		return nil, token.ParseStatus{Error: token.EmptyExpression}
	}

	if status := checkBrackets(toks); !status.OK() {
		return nil, status
	}

	toks = insertImplicitMultiplies(toks)

	root, status := divide(toks)
	if !status.OK() {
		return nil, status
	}

	if root.Tok.Kind == token.Comma {
		return nil, token.ParseStatus{Error: token.MisplacedComma, Offset: root.Tok.Offset, Offending: ","}
	}

	// The outermost pair of brackets (if any) is never re-emitted on
	// reparse/stringify -- only nested bracket hints survive.
	root.Bracketed = false

	return root, token.ParseStatus{}
}

// checkBrackets verifies the count of left and right brackets match
// globally (step 1).
func checkBrackets(toks []token.Token) token.ParseStatus {
	depth := 0
	for _, t := range toks {
		switch t.Kind {
		case token.LeftBracket:
			depth++
		case token.RightBracket:
			depth--
		}
		if depth < 0 {
			return token.ParseStatus{Error: token.MismatchedBrackets, Offset: t.Offset, Offending: t.Kind.String()}
		}
	}
	if depth != 0 {
		return token.ParseStatus{Error: token.MismatchedBrackets}
	}
	return token.ParseStatus{}
}

// insertImplicitMultiplies rewrites the token list to fixpoint, inserting a
// Multiply token between adjacent pairs where the left is Number,
// Identifier, or RightBracket and the right is Identifier or LeftBracket
// (step 2). Covers "2x", "2(...)", "x y", "x(...)", ")(".
func insertImplicitMultiplies(toks []token.Token) []token.Token {
	for {
		changed := false
		out := make([]token.Token, 0, len(toks)+1)

		for i, t := range toks {
			out = append(out, t)

			if i+1 >= len(toks) {
				continue
			}
			next := toks[i+1]

			leftOK := t.Kind == token.Number || t.Kind == token.Identifier || t.Kind == token.RightBracket
			rightOK := next.Kind == token.Identifier || next.Kind == token.LeftBracket

			if leftOK && rightOK {
				out = append(out, token.Token{Kind: token.Multiply, Offset: next.Offset})
				changed = true
			}
		}

		toks = out
		if !changed {
			return toks
		}
	}
}

// stripEnclosingBrackets removes one pair of enclosing brackets whenever the
// outermost '(' at position 0 matches a ')' at the last position (step 3).
// Returns the (possibly unwrapped) tokens and whether a pair was stripped.
func stripEnclosingBrackets(toks []token.Token) ([]token.Token, bool) {
	stripped := false

	for len(toks) > 0 && toks[0].Kind == token.LeftBracket {
		depth := 0
		matchIdx := -1
		for i, t := range toks {
			switch t.Kind {
			case token.LeftBracket:
				depth++
			case token.RightBracket:
				depth--
				if depth == 0 {
					matchIdx = i
				}
			}
			if matchIdx >= 0 {
				break
			}
		}

		if matchIdx == len(toks)-1 {
			toks = toks[1:matchIdx]
			stripped = true
			continue
		}
		break
	}

	return toks, stripped
}

// divide recursively splits toks into a tree (steps 3-6), then validates the
// resulting node (argument-shape checks, implicit-multiply rewrite for a
// numeric left operand on a RightUnary node, comma lifting).
func divide(toks []token.Token) (*Node, token.ParseStatus) {
	if len(toks) == 0 {
		return nil, token.ParseStatus{Error: token.EmptyExpression}
	}

	var bracketed bool
	toks, bracketed = stripEnclosingBrackets(toks)

	if len(toks) == 0 {
		return nil, token.ParseStatus{Error: token.EmptyBrackets}
	}

	if toks[0].Kind == token.Add {
		toks[0] = toks[0].WithKind(token.Plus)
	} else if toks[0].Kind == token.Subtract {
		toks[0] = toks[0].WithKind(token.Minus)
	}

	if len(toks) == 1 {
		return validate(&Node{Tok: toks[0], Bracketed: bracketed})
	}

	idx, status := findSplit(toks)
	if !status.OK() {
		return nil, status
	}

	leftToks := toks[:idx]
	rightToks := toks[idx+1:]

	if len(leftToks) == 0 && len(rightToks) == 0 {
		return nil, token.ParseStatus{Error: token.MissingArgument, Offset: toks[idx].Offset, Offending: toks[idx].Kind.String()}
	}

	var left, right *Node

	if len(leftToks) > 0 {
		var s token.ParseStatus
		left, s = divide(leftToks)
		if !s.OK() {
			return nil, s
		}
	}

	if len(rightToks) > 0 {
		var s token.ParseStatus
		right, s = divide(rightToks)
		if !s.OK() {
			return nil, s
		}
	}

	return validate(&Node{Tok: toks[idx], Left: left, Right: right, Bracketed: bracketed})
}

// findSplit scans toks from right to left, ignoring bracketed content,
// picking the token with the greatest priority value (ties broken by
// rightmost). Returns its index.
func findSplit(toks []token.Token) (int, token.ParseStatus) {
	depth := 0
	best := -1
	bestPriority := 0

	for i := len(toks) - 1; i >= 0; i-- {
		t := toks[i]

		switch t.Kind {
		case token.RightBracket:
			depth++
			continue
		case token.LeftBracket:
			depth--
			continue
		}

		if depth != 0 {
			continue
		}

		p := t.Kind.Priority()
		if p > 0 && p > bestPriority {
			bestPriority = p
			best = i
		}
	}

	if best < 0 {
		return 0, token.ParseStatus{Error: token.GeneralError, Offset: toks[0].Offset, Offending: toks[0].Kind.String()}
	}

	return best, token.ParseStatus{}
}
