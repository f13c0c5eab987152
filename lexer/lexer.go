// Package lexer turns an expression source string into a stream of tokens
// with source offsets, per spec component C1.
package lexer

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/pdk/mplot/token"
)

// Resolver is queried for identifiers that are not built-in keywords, to
// decide whether they name an external (registry-backed) function rather
// than a plain variable. It is the lexer-facing half of the capability
// object named FunctionResolver in the design notes.
type Resolver interface {
	IsFunction(name string) bool
}

// Lex scans src into a token list. On the first lexical error it returns
// the tokens scanned so far (possibly none) and a non-OK ParseStatus; the
// caller (the tree builder) should stop immediately.
func Lex(src string, resolver Resolver) ([]token.Token, token.ParseStatus) {
	chars := []rune(src)
	var toks []token.Token

	i := 0
	for i < len(chars) {
		n := countWhitespace(chars[i:])
		i += n
		if i >= len(chars) {
			break
		}

		tok, consumed, status := nextToken(chars[i:], i, resolver)
		if !status.OK() {
			return toks, status
		}

		toks = append(toks, tok)
		i += consumed
	}

	return toks, token.ParseStatus{}
}

func nextToken(chars []rune, offset int, resolver Resolver) (token.Token, int, token.ParseStatus) {
	ch := chars[0]

	switch ch {
	case '(', '[', '{':
		return token.Token{Kind: token.LeftBracket, Offset: offset}, 1, token.ParseStatus{}
	case ')', ']', '}':
		return token.Token{Kind: token.RightBracket, Offset: offset}, 1, token.ParseStatus{}
	case ',', ';':
		return token.Token{Kind: token.Comma, Offset: offset}, 1, token.ParseStatus{}
	case '+':
		return token.Token{Kind: token.Add, Offset: offset}, 1, token.ParseStatus{}
	case '-':
		return token.Token{Kind: token.Subtract, Offset: offset}, 1, token.ParseStatus{}
	case '*':
		return token.Token{Kind: token.Multiply, Offset: offset}, 1, token.ParseStatus{}
	case '/':
		return token.Token{Kind: token.Divide, Offset: offset}, 1, token.ParseStatus{}
	case '|':
		return token.Token{Kind: token.Modulus, Offset: offset}, 1, token.ParseStatus{}
	case '^':
		return token.Token{Kind: token.Power, Offset: offset}, 1, token.ParseStatus{}
	case '!':
		return token.Token{Kind: token.Factorial, Offset: offset}, 1, token.ParseStatus{}
	}

	if unicode.IsDigit(ch) || ch == '.' {
		return scanNumber(chars, offset)
	}

	if unicode.IsLetter(ch) {
		return scanIdentifier(chars, offset, resolver)
	}

	return token.Token{}, 1, token.ParseStatus{
		Error:     token.InvalidCharacter,
		Offset:    offset,
		Offending: string(ch),
	}
}

// scanNumber reads digits with at most one '.' and an optional single
// exponent ('e'/'E' with optional sign, digits required).
func scanNumber(chars []rune, offset int) (token.Token, int, token.ParseStatus) {
	var b strings.Builder
	i := 0
	dots := 0
	exps := 0

	for i < len(chars) {
		c := chars[i]

		if c == '.' {
			dots++
			if dots > 1 {
				return token.Token{}, i + 1, token.ParseStatus{
					Error: token.InvalidNumber, Offset: offset, Offending: b.String() + string(c),
				}
			}
			b.WriteRune(c)
			i++
			continue
		}

		if c == 'e' || c == 'E' {
			exps++
			if exps > 1 {
				return token.Token{}, i + 1, token.ParseStatus{
					Error: token.InvalidNumber, Offset: offset, Offending: b.String() + string(c),
				}
			}
			b.WriteRune(c)
			i++
			if i < len(chars) && (chars[i] == '+' || chars[i] == '-') {
				b.WriteRune(chars[i])
				i++
			}
			if i >= len(chars) || !unicode.IsDigit(chars[i]) {
				return token.Token{}, i, token.ParseStatus{
					Error: token.InvalidNumber, Offset: offset, Offending: b.String(),
				}
			}
			continue
		}

		if unicode.IsDigit(c) {
			b.WriteRune(c)
			i++
			continue
		}

		break
	}

	text := b.String()
	v, ok := parseFloat(text)
	if !ok {
		return token.Token{}, i, token.ParseStatus{
			Error: token.InvalidNumber, Offset: offset, Offending: text,
		}
	}

	return token.Token{Kind: token.Number, Offset: offset, Number: v}, i, token.ParseStatus{}
}

func scanIdentifier(chars []rune, offset int, resolver Resolver) (token.Token, int, token.ParseStatus) {
	var b strings.Builder
	i := 0

	for i < len(chars) {
		c := chars[i]
		if unicode.IsLetter(c) || (c == '_' && i > 0) {
			b.WriteRune(unicode.ToLower(c))
			i++
			continue
		}
		break
	}

	name := b.String()

	if kind, ok := token.LookupKeyword(name); ok {
		return token.Token{Kind: kind, Offset: offset, Name: name}, i, token.ParseStatus{}
	}

	if resolver != nil && resolver.IsFunction(name) {
		return token.Token{Kind: token.ExternalFunction, Offset: offset, Name: name}, i, token.ParseStatus{}
	}

	return token.Token{Kind: token.Identifier, Offset: offset, Name: name}, i, token.ParseStatus{}
}

func countWhitespace(chars []rune) int {
	i := 0
	for i < len(chars) && (chars[i] == ' ' || chars[i] == '\t' || chars[i] == '\r' || chars[i] == '\n') {
		i++
	}
	return i
}

// parseFloat parses a number literal of the shape produced by scanNumber:
// digits, at most one '.', optional leading dot, optional trailing dot, and
// an optional exponent. strconv.ParseFloat rejects a bare trailing dot
// ("3."), so pad it with a zero before delegating.
func parseFloat(text string) (float64, bool) {
	if text == "" || text == "." {
		return 0, false
	}

	padded := text
	if strings.HasSuffix(padded, ".") {
		padded += "0"
	}
	if strings.HasPrefix(padded, ".") {
		padded = "0" + padded
	}
	// also handle "1.e5" -> "1.0e5"
	padded = strings.Replace(padded, ".e", ".0e", 1)
	padded = strings.Replace(padded, ".E", ".0E", 1)

	v, err := strconv.ParseFloat(padded, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
