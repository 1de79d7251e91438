package lsp_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"pebble/internal/lsp"
)

const testURI = "file:///workspace/main.peb"

type recorder struct {
	published []*protocol.PublishDiagnosticsParams
}

func (r *recorder) context() *glsp.Context {
	return &glsp.Context{
		Notify: func(method string, params any) {
			if method == protocol.ServerTextDocumentPublishDiagnostics {
				r.published = append(r.published, params.(*protocol.PublishDiagnosticsParams))
			}
		},
	}
}

func (r *recorder) last() *protocol.PublishDiagnosticsParams {
	if len(r.published) == 0 {
		return nil
	}
	return r.published[len(r.published)-1]
}

func open(t *testing.T, handler *lsp.PebbleHandler, ctx *glsp.Context, text string) {
	t.Helper()
	err := handler.TextDocumentDidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{
			URI:        testURI,
			LanguageID: "pebble",
			Version:    1,
			Text:       text,
		},
	})
	require.NoError(t, err)
}

func TestInitializeAdvertisesCapabilities(t *testing.T) {
	handler := lsp.NewPebbleHandler()

	result, err := handler.Initialize(&glsp.Context{}, &protocol.InitializeParams{})
	require.NoError(t, err)

	initResult, ok := result.(*protocol.InitializeResult)
	require.True(t, ok)
	assert.Equal(t, true, initResult.Capabilities.HoverProvider)

	tokens, ok := initResult.Capabilities.SemanticTokensProvider.(*protocol.SemanticTokensOptions)
	require.True(t, ok)
	assert.Equal(t, lsp.SemanticTokenTypes, tokens.Legend.TokenTypes)
}

func TestDidOpenPublishesDiagnostics(t *testing.T) {
	handler := lsp.NewPebbleHandler()
	rec := &recorder{}

	open(t, handler, rec.context(), "f(")

	published := rec.last()
	require.NotNil(t, published)
	assert.Equal(t, testURI, published.URI)
	require.Len(t, published.Diagnostics, 1)

	diag := published.Diagnostics[0]
	assert.Equal(t, "E0100", diag.Code.Value)
	assert.Equal(t, protocol.DiagnosticSeverityError, *diag.Severity)
	assert.Equal(t, protocol.Position{Line: 0, Character: 2}, diag.Range.Start)
	assert.Contains(t, diag.Message, "unexpected end of input")
}

func TestDidChangeClearsDiagnostics(t *testing.T) {
	handler := lsp.NewPebbleHandler()
	rec := &recorder{}
	ctx := rec.context()

	open(t, handler, ctx, "f(")
	err := handler.TextDocumentDidChange(ctx, &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: testURI},
			Version:                2,
		},
		ContentChanges: []any{protocol.TextDocumentContentChangeEventWhole{Text: "f(x)"}},
	})
	require.NoError(t, err)

	require.Len(t, rec.published, 2)
	assert.Empty(t, rec.last().Diagnostics)
}

func TestDidChangeAppliesRangeEdits(t *testing.T) {
	handler := lsp.NewPebbleHandler()
	ctx := (&recorder{}).context()

	open(t, handler, ctx, "f(x)")
	err := handler.TextDocumentDidChange(ctx, &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: testURI},
			Version:                2,
		},
		ContentChanges: []any{protocol.TextDocumentContentChangeEvent{
			Range: &protocol.Range{
				Start: protocol.Position{Line: 0, Character: 2},
				End:   protocol.Position{Line: 0, Character: 3},
			},
			Text: "yy",
		}},
	})
	require.NoError(t, err)

	hover := hoverAt(t, handler, 0, 3)
	require.NotNil(t, hover)
	assert.Contains(t, hover.Contents.(protocol.MarkupContent).Value, "(id yy)")
}

func TestDidChangeUnopenedDocument(t *testing.T) {
	handler := lsp.NewPebbleHandler()

	err := handler.TextDocumentDidChange(&glsp.Context{}, &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: testURI},
		},
	})
	assert.Error(t, err)
}

func TestDidCloseClearsDiagnostics(t *testing.T) {
	handler := lsp.NewPebbleHandler()
	rec := &recorder{}
	ctx := rec.context()

	open(t, handler, ctx, "(1 _)")
	require.Len(t, rec.last().Diagnostics, 1)
	assert.Equal(t, "E0101", rec.last().Diagnostics[0].Code.Value)

	err := handler.TextDocumentDidClose(ctx, &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
	})
	require.NoError(t, err)
	assert.Empty(t, rec.last().Diagnostics)

	// The document is gone, so the handler falls back to the file system.
	_, err = handler.TextDocumentSemanticTokensFull(ctx, &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
	})
	assert.Error(t, err)
}

func hoverAt(t *testing.T, handler *lsp.PebbleHandler, line, char uint32) *protocol.Hover {
	t.Helper()
	hover, err := handler.TextDocumentHover(&glsp.Context{}, &protocol.HoverParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
			Position:     protocol.Position{Line: line, Character: char},
		},
	})
	require.NoError(t, err)
	return hover
}

func TestHover(t *testing.T) {
	handler := lsp.NewPebbleHandler()
	open(t, handler, &glsp.Context{}, "f(x, 1)")

	hover := hoverAt(t, handler, 0, 5)
	require.NotNil(t, hover)

	content, ok := hover.Contents.(protocol.MarkupContent)
	require.True(t, ok)
	assert.Equal(t, protocol.MarkupKindMarkdown, content.Kind)
	assert.Contains(t, content.Value, "**int**")
	assert.Contains(t, content.Value, "(int 1)")
	assert.Equal(t, protocol.Range{
		Start: protocol.Position{Line: 0, Character: 5},
		End:   protocol.Position{Line: 0, Character: 6},
	}, *hover.Range)

	assert.Nil(t, hoverAt(t, handler, 3, 0))
}

func TestHoverWithoutParse(t *testing.T) {
	handler := lsp.NewPebbleHandler()
	open(t, handler, &glsp.Context{}, "f(")

	assert.Nil(t, hoverAt(t, handler, 0, 0))
}

func TestTextDocumentSemanticTokensFull(t *testing.T) {
	handler := lsp.NewPebbleHandler()
	open(t, handler, &glsp.Context{}, "x -> case x of\n  :ok = g(x, ..xs)\nend")

	tokens, err := handler.TextDocumentSemanticTokensFull(&glsp.Context{}, &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
	})
	require.NoError(t, err)

	decoded, err := decodeSemanticTokens(tokens.Data)
	require.NoError(t, err)
	require.Len(t, decoded, 10)

	assertToken(t, &decoded[0], 1, 1, 1, "parameter", []string{"declaration"})
	assertToken(t, &decoded[1], 1, 6, 4, "keyword", nil)
	assertToken(t, &decoded[2], 1, 11, 1, "variable", nil)
	assertToken(t, &decoded[3], 1, 13, 2, "keyword", nil)
	assertToken(t, &decoded[4], 2, 3, 3, "enumMember", nil)
	assertToken(t, &decoded[5], 2, 9, 1, "function", nil)
	assertToken(t, &decoded[6], 2, 11, 1, "variable", nil)
	assertToken(t, &decoded[7], 2, 14, 2, "operator", nil)
	assertToken(t, &decoded[8], 2, 16, 2, "variable", nil)
	assertToken(t, &decoded[9], 3, 1, 3, "keyword", nil)
}

func TestSemanticTokensFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "main.peb")
	require.NoError(t, os.WriteFile(path, []byte("{ a, _ = t; 1_000 }"), 0o644))

	handler := lsp.NewPebbleHandler()
	rec := &recorder{}
	tokens, err := handler.TextDocumentSemanticTokensFull(rec.context(), &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: "file://" + filepath.ToSlash(path)},
	})
	require.NoError(t, err)

	decoded, err := decodeSemanticTokens(tokens.Data)
	require.NoError(t, err)
	require.Len(t, decoded, 4)

	assertToken(t, &decoded[0], 1, 3, 1, "variable", []string{"declaration"})
	assertToken(t, &decoded[1], 1, 6, 1, "variable", []string{"declaration"})
	assertToken(t, &decoded[2], 1, 10, 1, "variable", nil)
	assertToken(t, &decoded[3], 1, 13, 5, "number", nil)

	require.Len(t, rec.published, 1)
	assert.Empty(t, rec.last().Diagnostics)
}

type DecodedToken struct {
	Index     int
	Line      uint32
	Char      uint32
	Length    uint32
	Type      string
	Modifiers []string
}

func decodeSemanticTokens(raw []uint32) ([]DecodedToken, error) {
	if len(raw)%5 != 0 {
		return nil, fmt.Errorf("raw token data length %d is not a multiple of 5", len(raw))
	}

	var (
		decoded []DecodedToken
		line    uint32
		char    uint32
	)

	for i := 0; i < len(raw); i += 5 {
		deltaLine := raw[i]
		deltaStart := raw[i+1]

		if deltaLine == 0 {
			char += deltaStart
		} else {
			line += deltaLine
			char = deltaStart
		}

		var modifiers []string
		for j, name := range lsp.SemanticTokenModifiers {
			if raw[i+4]&(1<<j) != 0 {
				modifiers = append(modifiers, name)
			}
		}

		decoded = append(decoded, DecodedToken{
			Index:     i / 5,
			Line:      line + 1, // LSP uses 0-based indexing
			Char:      char + 1, // LSP uses 0-based indexing
			Length:    raw[i+2],
			Type:      lsp.SemanticTokenTypes[raw[i+3]],
			Modifiers: modifiers,
		})
	}

	return decoded, nil
}

func assertToken(t *testing.T, token *DecodedToken, expectedLine, expectedChar, expectedLength uint32, expectedType string, expectedModifiers []string) {
	require.Equal(t, expectedLine, token.Line, "line mismatch (expected line %d)", expectedLine)
	require.Equal(t, expectedChar, token.Char, "char mismatch (expected char %d)", expectedChar)
	require.Equal(t, expectedLength, token.Length, "length mismatch")
	require.Equal(t, expectedType, token.Type, "type mismatch")
	require.ElementsMatch(t, expectedModifiers, token.Modifiers, "modifiers mismatch")
}
