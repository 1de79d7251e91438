package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"pebble/internal/ast"
)

// ErrorLevel represents the severity of a diagnostic
type ErrorLevel string

const (
	Error   ErrorLevel = "error"
	Warning ErrorLevel = "warning"
	Note    ErrorLevel = "note"
	Help    ErrorLevel = "help"
)

// CompilerError is a diagnostic ready to be rendered
type CompilerError struct {
	Level       ErrorLevel
	Code        string       // Error code like E0100
	Message     string       // Primary message
	Position    ast.Position // Location in source
	Length      int          // Length of the problematic region in bytes
	Suggestions []Suggestion
	Notes       []string
	HelpText    string
}

// Suggestion is a possible fix shown under the source excerpt
type Suggestion struct {
	Message     string
	Replacement string // optional replacement text
}

// ErrorReporter renders diagnostics against one source buffer
type ErrorReporter struct {
	filename string
	source   string
	lines    []string
}

func NewErrorReporter(filename, source string) *ErrorReporter {
	return &ErrorReporter{
		filename: filename,
		source:   source,
		lines:    strings.Split(source, "\n"),
	}
}

// FormatError renders err with a header, a source excerpt with a caret
// marker, then any suggestions, notes and help text.
func (er *ErrorReporter) FormatError(err CompilerError) string {
	var result strings.Builder

	levelColor := er.getLevelColor(err.Level)
	bold := color.New(color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	// error[E0100]: message
	if err.Code != "" {
		result.WriteString(fmt.Sprintf("%s[%s]: %s\n", levelColor(string(err.Level)), err.Code, err.Message))
	} else {
		result.WriteString(fmt.Sprintf("%s: %s\n", levelColor(string(err.Level)), err.Message))
	}

	filename := err.Position.Filename
	if filename == "" {
		filename = er.filename
	}
	width := er.getLineNumberWidth(err.Position.Line + 1)
	indent := strings.Repeat(" ", width)
	bar := dim("│")

	result.WriteString(fmt.Sprintf("%s %s %s:%d:%d\n", indent, dim("-->"), filename, err.Position.Line, err.Position.Column))
	result.WriteString(fmt.Sprintf("%s %s\n", indent, bar))

	line := err.Position.Line
	if line > 1 && line-1 <= len(er.lines) {
		result.WriteString(fmt.Sprintf("%s %s %s\n", dim(fmt.Sprintf("%*d", width, line-1)), bar, er.lines[line-2]))
	}
	if line > 0 && line <= len(er.lines) {
		result.WriteString(fmt.Sprintf("%s %s %s\n", bold(fmt.Sprintf("%*d", width, line)), bar, er.lines[line-1]))
		result.WriteString(fmt.Sprintf("%s %s %s\n", indent, bar, er.createMarker(err.Position.Column, err.Length, err.Level)))
	}
	if line > 0 && line < len(er.lines) {
		result.WriteString(fmt.Sprintf("%s %s %s\n", dim(fmt.Sprintf("%*d", width, line+1)), bar, er.lines[line]))
	}

	if len(err.Suggestions) > 0 {
		cyan := color.New(color.FgCyan).SprintFunc()
		result.WriteString(fmt.Sprintf("%s %s\n", indent, bar))
		for i, suggestion := range err.Suggestions {
			if i == 0 {
				result.WriteString(fmt.Sprintf("%s %s %s: %s\n", indent, cyan("help"), cyan("try"), suggestion.Message))
			} else {
				result.WriteString(fmt.Sprintf("%s %s %s\n", indent, cyan("    "), suggestion.Message))
			}
			if suggestion.Replacement != "" {
				result.WriteString(fmt.Sprintf("%s %s %s\n", indent, cyan("│"), cyan(suggestion.Replacement)))
			}
		}
	}

	noteColor := color.New(color.FgBlue).SprintFunc()
	for _, note := range err.Notes {
		result.WriteString(fmt.Sprintf("%s %s %s %s\n", indent, bar, noteColor("note:"), note))
	}

	if err.HelpText != "" {
		helpColor := color.New(color.FgGreen).SprintFunc()
		result.WriteString(fmt.Sprintf("%s %s %s %s\n", indent, bar, helpColor("help:"), err.HelpText))
	}

	result.WriteString("\n")
	return result.String()
}

func (er *ErrorReporter) getLevelColor(level ErrorLevel) func(...interface{}) string {
	switch level {
	case Warning:
		return color.New(color.FgYellow, color.Bold).SprintFunc()
	case Note:
		return color.New(color.FgBlue, color.Bold).SprintFunc()
	case Help:
		return color.New(color.FgGreen, color.Bold).SprintFunc()
	default:
		return color.New(color.FgRed, color.Bold).SprintFunc()
	}
}

// createMarker underlines length bytes starting at the 1-based column
func (er *ErrorReporter) createMarker(column, length int, level ErrorLevel) string {
	if length <= 0 {
		length = 1
	}
	spaces := strings.Repeat(" ", max(0, column-1))
	return spaces + er.getLevelColor(level)(strings.Repeat("^", length))
}

// getLineNumberWidth calculates the width needed for line numbers
func (er *ErrorReporter) getLineNumberWidth(line int) int {
	width := len(fmt.Sprintf("%d", line))
	if width < 3 {
		width = 3 // minimum width for visual alignment
	}
	return width
}
