package errors

import (
	"fmt"
	"strings"
	"testing"

	"github.com/alecthomas/participle/v2"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pebble/internal/ast"
	"pebble/internal/parser"
)

func init() {
	color.NoColor = true
}

func TestErrorReporter(t *testing.T) {
	source := "{\n  x = 1\n  _\n}"
	reporter := NewErrorReporter("test.peb", source)

	_, err := parser.ParseSource("test.peb", source)
	require.Error(t, err)

	diag, ok := FromParseError(err, source)
	require.True(t, ok)
	formatted := reporter.FormatError(diag)

	assert.Contains(t, formatted, "error["+ErrorDigitSeparator+"]")
	assert.Contains(t, formatted, "test.peb:3:3")
	assert.Contains(t, formatted, "  x = 1")
	assert.Contains(t, formatted, "help: digit separators")
}

func TestFromParseErrorSyntax(t *testing.T) {
	source := "f("
	_, err := parser.ParseSource("test.peb", source)
	require.Error(t, err)

	diag, ok := FromParseError(err, source)
	require.True(t, ok)
	assert.Equal(t, Error, diag.Level)
	assert.Equal(t, ErrorSyntax, diag.Code)
	assert.Contains(t, diag.Message, "unexpected end of input")
	assert.Equal(t, 3, diag.Position.Column)
	require.NotEmpty(t, diag.Notes)
	assert.Equal(t, "while parsing argument list", diag.Notes[0])
}

func TestFromParseErrorBacktracked(t *testing.T) {
	source := "case 1 en"
	_, err := parser.ParseSource("test.peb", source)
	require.Error(t, err)

	diag, ok := FromParseError(err, source)
	require.True(t, ok)
	assert.Equal(t, ErrorSyntax, diag.Code)
	assert.Equal(t, 2, diag.Length)

	notes := strings.Join(diag.Notes, "\n")
	assert.Contains(t, notes, "do not commit")

	require.Len(t, diag.Suggestions, 1)
	assert.Equal(t, "did you mean 'end'?", diag.Suggestions[0].Message)
}

func TestFromParseErrorTrailingInput(t *testing.T) {
	source := "x -> x )"
	_, err := parser.ParseSource("test.peb", source)
	require.Error(t, err)

	diag, ok := FromParseError(err, source)
	require.True(t, ok)
	assert.Equal(t, ErrorTrailingInput, diag.Code)
	assert.Equal(t, 1, diag.Length)
}

func TestFromParseErrorTooDeep(t *testing.T) {
	source := "((x))"
	_, err := parser.ParseSource("test.peb", source, parser.MaxDepth(2))
	require.Error(t, err)

	diag, ok := FromParseError(err, source)
	require.True(t, ok)
	assert.Equal(t, ErrorTooDeep, diag.Code)
	assert.Contains(t, diag.Message, "limit of 2")
}

func TestFromParseErrorAcceptsParticipleErrors(t *testing.T) {
	pos := ast.Position{Filename: "other.peb", Line: 2, Column: 5, Offset: 9}
	err := fmt.Errorf("loading: %w", participle.Errorf(pos, "unexpected token %q", "}"))

	diag, ok := FromParseError(err, "x\n{ a }")
	require.True(t, ok)
	assert.Equal(t, ErrorSyntax, diag.Code)
	assert.Equal(t, `unexpected token "}"`, diag.Message)
	assert.Equal(t, pos, diag.Position)
	assert.Empty(t, diag.Notes)

	formatted := NewErrorReporter("main.peb", "x\n{ a }").FormatError(diag)
	assert.Contains(t, formatted, "other.peb:2:5")
}

func TestFromParseErrorWithoutPosition(t *testing.T) {
	_, ok := FromParseError(assert.AnError, "")
	assert.False(t, ok)
}

func TestWarningFormatting(t *testing.T) {
	reporter := NewErrorReporter("test.peb", "x")
	formatted := reporter.FormatError(CompilerError{
		Level:    Warning,
		Message:  "something odd",
		Position: ast.Position{Line: 1, Column: 1},
	})

	assert.Contains(t, formatted, "warning: something odd")
}

func TestSuggestionsAndNotes(t *testing.T) {
	reporter := NewErrorReporter("test.peb", "case x ned")
	diag := NewError(ErrorSyntax, "unexpected 'n'", ast.Position{Line: 1, Column: 8}).
		WithLength(3).
		WithReplacement("did you mean 'end'?", "case x end").
		WithSuggestion("or add an arm").
		WithNote("while parsing case").
		Build()

	formatted := reporter.FormatError(diag)
	assert.Contains(t, formatted, "help try: did you mean 'end'?")
	assert.Contains(t, formatted, "case x end")
	assert.Contains(t, formatted, "or add an arm")
	assert.Contains(t, formatted, "note: while parsing case")
}

func TestErrorMarkerCreation(t *testing.T) {
	reporter := NewErrorReporter("test.peb", "f(x, y)")

	marker := reporter.createMarker(3, 4, Error)
	assert.Equal(t, 2, strings.Count(marker, " "))
	assert.Equal(t, 4, strings.Count(marker, "^"))

	marker = reporter.createMarker(1, 0, Error)
	assert.Equal(t, "^", marker)
}

func TestLevenshteinDistance(t *testing.T) {
	assert.Equal(t, 0, levenshteinDistance("end", "end"))
	assert.Equal(t, 1, levenshteinDistance("ned", "nd"))
	assert.Equal(t, 2, levenshteinDistance("ned", "end"))
	assert.Equal(t, 3, levenshteinDistance("kitten", "sitting"))
	assert.Equal(t, 4, levenshteinDistance("case", ""))
}

func TestErrorCategory(t *testing.T) {
	assert.Equal(t, "Parser", GetErrorCategory(ErrorTooDeep))
	assert.Equal(t, "Tooling", GetErrorCategory(ErrorReadFile))
	assert.Equal(t, "Unknown", GetErrorCategory("E0001"))
	assert.Equal(t, "Unknown error code", GetErrorDescription("E9999"))
}
