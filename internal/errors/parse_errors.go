package errors

import (
	stderrors "errors"
	"fmt"

	"github.com/alecthomas/participle/v2"

	"pebble/internal/ast"
	"pebble/internal/parser"
)

// ErrorBuilder provides a fluent interface for creating diagnostics
type ErrorBuilder struct {
	err CompilerError
}

// NewError creates a new error-level builder
func NewError(code, message string, pos ast.Position) *ErrorBuilder {
	return &ErrorBuilder{
		err: CompilerError{
			Level:    Error,
			Code:     code,
			Message:  message,
			Position: pos,
			Length:   1,
		},
	}
}

func (b *ErrorBuilder) WithLength(length int) *ErrorBuilder {
	b.err.Length = length
	return b
}

func (b *ErrorBuilder) WithSuggestion(message string) *ErrorBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{Message: message})
	return b
}

func (b *ErrorBuilder) WithReplacement(message, replacement string) *ErrorBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{Message: message, Replacement: replacement})
	return b
}

func (b *ErrorBuilder) WithNote(note string) *ErrorBuilder {
	b.err.Notes = append(b.err.Notes, note)
	return b
}

func (b *ErrorBuilder) WithHelp(help string) *ErrorBuilder {
	b.err.HelpText = help
	return b
}

func (b *ErrorBuilder) Build() CompilerError {
	return b.err
}

// FromParseError converts a parse failure into a diagnostic. Any
// participle.Error is accepted; a *parser.Error additionally yields a
// specific code, notes and suggestions. ok is false when err carries no
// position at all.
func FromParseError(err error, source string) (CompilerError, bool) {
	var perr *parser.Error
	if stderrors.As(err, &perr) {
		return fromParserError(perr, source), true
	}

	var pe participle.Error
	if stderrors.As(err, &pe) {
		return NewError(ErrorSyntax, pe.Message(), pe.Position()).Build(), true
	}

	return CompilerError{}, false
}

func fromParserError(perr *parser.Error, source string) CompilerError {
	switch perr.Kind {
	case parser.DigitSeparator:
		return NewError(ErrorDigitSeparator, perr.Message(), perr.Pos).
			WithSuggestion("remove the '_' or separate it from the number with a comma").
			WithHelp("digit separators must sit between two digits, as in 1_000").
			Build()

	case parser.TrailingInput:
		return NewError(ErrorTrailingInput, perr.Message(), perr.Pos).
			WithLength(len(source)-perr.Offset).
			WithHelp("a program is a single expression; use a block { ...; ... } to sequence several").
			Build()

	case parser.TooDeep:
		return NewError(ErrorTooDeep, perr.Message(), perr.Pos).
			WithHelp("flatten the nesting or raise the depth limit").
			Build()
	}

	word := wordAt(source, perr.Offset)
	b := NewError(ErrorSyntax, perr.Message(), perr.Pos).WithLength(len(word))
	if perr.Context != "" {
		b.WithNote(fmt.Sprintf("while parsing %s", perr.Context))
	}
	if perr.Backtracked {
		b.WithNote("case expressions and blocks do not commit after their opening token, so the error may be further inside than reported")
	}
	for _, kw := range similarKeywords(word, perr.Expected) {
		b.WithSuggestion(fmt.Sprintf("did you mean '%s'?", kw))
	}
	return b.Build()
}

// wordAt returns the run of identifier characters at offset, or "" when
// there is none.
func wordAt(source string, offset int) string {
	if offset < 0 || offset > len(source) {
		return ""
	}
	end := offset
	for end < len(source) && isWordByte(source[end]) {
		end++
	}
	return source[offset:end]
}

func isWordByte(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}

// similarKeywords returns the expected keywords that are a small edit away
// from word.
func similarKeywords(word string, expected []string) []string {
	if word == "" {
		return nil
	}

	var similar []string
	for _, e := range expected {
		if len(e) < 3 || e[0] != '\'' || e[len(e)-1] != '\'' {
			continue
		}
		kw := e[1 : len(e)-1]
		if !parser.IsKeyword(kw) || kw == word {
			continue
		}
		if levenshteinDistance(word, kw) <= 1 {
			similar = append(similar, kw)
		}
	}
	return similar
}

func levenshteinDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}
