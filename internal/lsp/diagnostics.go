package lsp

import (
	"strings"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"pebble/internal/ast"
	perrors "pebble/internal/errors"
)

// ConvertParseError turns a parse failure into LSP diagnostics. The range
// covers the offending word (or a single character), and the diagnostic
// code matches the one the CLI prints.
func ConvertParseError(err error, source string, uri protocol.DocumentUri) []protocol.Diagnostic {
	diag, ok := perrors.FromParseError(err, source)
	if !ok {
		return []protocol.Diagnostic{{
			Range:    protocol.Range{},
			Severity: ptrSeverity(protocol.DiagnosticSeverityError),
			Source:   ptrString("pebble"),
			Message:  err.Error(),
		}}
	}

	lines := ast.NewLineIndex(uri, source)
	start := diag.Position.Offset
	end := min(start+max(diag.Length, 1), len(source))
	if end < start {
		end = start
	}

	message := diag.Message
	if len(diag.Notes) > 0 {
		message += "\n" + strings.Join(diag.Notes, "\n")
	}
	for _, s := range diag.Suggestions {
		message += "\n" + s.Message
	}

	return []protocol.Diagnostic{{
		Range:    spanToRange(lines, ast.Between(start, end)),
		Severity: ptrSeverity(protocol.DiagnosticSeverityError),
		Code:     &protocol.IntegerOrString{Value: diag.Code},
		Source:   ptrString("pebble"),
		Message:  message,
	}}
}

// spanToRange converts a byte span to a 0-based LSP range
func spanToRange(lines *ast.LineIndex, span ast.Span) protocol.Range {
	start, end := lines.Range(span)
	return protocol.Range{
		Start: protocol.Position{Line: uint32(start.Line - 1), Character: uint32(start.Column - 1)},
		End:   protocol.Position{Line: uint32(end.Line - 1), Character: uint32(end.Column - 1)},
	}
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
