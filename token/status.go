package token

// ParseError enumerates the parse-status channel (spec §7, channel 1).
// Reported to callers via Parser.Status(); never raised as a panic/error.
type ParseError int

const (
	// NoError means the last parse succeeded.
	NoError ParseError = iota
	EmptyExpression
	EmptyBrackets
	InvalidNumber
	InvalidCharacter
	MismatchedBrackets
	MisplacedComma
	MissingArgument
	ExtraArgument
	InvalidArgument
	GeneralError
	// LogicError marks a path the tree builder believes is unreachable if
	// parsing is correct (see design notes). Surfaced to callers as this
	// ordinary status value, never panicked.
	LogicError
)

func (e ParseError) String() string {
	switch e {
	case NoError:
		return "no error"
	case EmptyExpression:
		return "empty expression"
	case EmptyBrackets:
		return "empty brackets"
	case InvalidNumber:
		return "invalid number"
	case InvalidCharacter:
		return "invalid character"
	case MismatchedBrackets:
		return "mismatched brackets"
	case MisplacedComma:
		return "misplaced comma"
	case MissingArgument:
		return "missing argument"
	case ExtraArgument:
		return "extra argument"
	case InvalidArgument:
		return "invalid argument"
	case GeneralError:
		return "general error"
	case LogicError:
		return "internal logic error"
	default:
		return "unknown error"
	}
}

// ParseStatus carries the outcome of one lex+build pass: an error kind, the
// source offset the error was found at, and the offending token text, if
// any. A zero-valued ParseStatus (NoError) means success.
type ParseStatus struct {
	Error     ParseError
	Offset    int
	Offending string
}

// OK reports whether the status represents a successful parse.
func (s ParseStatus) OK() bool {
	return s.Error == NoError
}

func (s ParseStatus) String() string {
	if s.Offending == "" {
		return s.Error.String()
	}
	return s.Error.String() + ": " + s.Offending
}
