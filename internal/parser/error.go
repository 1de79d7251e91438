package parser

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2"

	"pebble/internal/ast"
)

// errNoMatch is the soft failure: the rule did not match here and the
// caller may try another alternative at the same position.
var errNoMatch = errors.New("no match")

type Kind int

const (
	// SyntaxError is a soft failure that reached the entry point.
	SyntaxError Kind = iota
	// DigitSeparator is the hard failure raised when an integer literal is
	// followed by '_' (a dangling separator or a wildcard-looking token).
	DigitSeparator
	// TrailingInput is reported by ParseSource when input remains after
	// the top-level expression.
	TrailingInput
	// TooDeep is raised when nesting exceeds the configured MaxDepth.
	TooDeep
)

func (k Kind) String() string {
	switch k {
	case SyntaxError:
		return "syntax error"
	case DigitSeparator:
		return "invalid digit separator"
	case TrailingInput:
		return "trailing input"
	case TooDeep:
		return "nesting too deep"
	default:
		return "unknown"
	}
}

// Error is the structured failure returned by every entry point.
type Error struct {
	Kind   Kind
	Offset int
	Pos    ast.Position

	// Expected lists the constructs that would have let parsing continue at
	// Offset, in the order they were attempted.
	Expected []string
	// Found describes what sits at Offset ("end of input" at the end).
	Found string
	// Context names the innermost construct being parsed at Offset.
	Context string
	// Backtracked is set when the furthest failure happened inside a
	// `case` or block. Those constructs do not commit after their opening
	// token, so the reported location can be less precise than it looks.
	Backtracked bool
	// Fatal is set for hard failures, which no alternative may retry.
	Fatal bool

	detail string
}

var _ participle.Error = (*Error)(nil)

func (e *Error) Message() string {
	switch e.Kind {
	case SyntaxError:
		if len(e.Expected) == 0 {
			return fmt.Sprintf("unexpected %s", e.Found)
		}
		return fmt.Sprintf("unexpected %s, expected %s", e.Found, joinExpected(e.Expected))
	case TrailingInput:
		return fmt.Sprintf("unexpected trailing input starting with %s", e.Found)
	default:
		return e.detail
	}
}

func (e *Error) Position() ast.Position { return e.Pos }

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Message())
}

// IsFatal reports whether err is a hard failure.
func IsFatal(err error) bool {
	var perr *Error
	return errors.As(err, &perr) && perr.Fatal
}

func isSoft(err error) bool {
	return errors.Is(err, errNoMatch)
}

func joinExpected(expected []string) string {
	switch len(expected) {
	case 1:
		return expected[0]
	case 2:
		return expected[0] + " or " + expected[1]
	default:
		return strings.Join(expected[:len(expected)-1], ", ") + " or " + expected[len(expected)-1]
	}
}

func describeAt(src string, off int) string {
	if off >= len(src) {
		return "end of input"
	}
	r, _ := utf8.DecodeRuneInString(src[off:])
	switch r {
	case '\n':
		return "newline"
	case utf8.RuneError:
		return fmt.Sprintf("byte 0x%02x", src[off])
	}
	return fmt.Sprintf("%q", r)
}

// failure tracks the furthest offset at which any rule failed softly,
// together with what was expected there.
type failure struct {
	far         int
	expected    []string
	context     string
	backtracked bool
}

func (f *failure) record(off int, what, context string, inGroup bool) {
	switch {
	case off > f.far:
		f.far = off
		f.expected = append(f.expected[:0], what)
		f.context = context
		f.backtracked = inGroup
	case off == f.far:
		for _, e := range f.expected {
			if e == what {
				return
			}
		}
		f.expected = append(f.expected, what)
		f.backtracked = f.backtracked || inGroup
	}
}
