package lsp

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"pebble/internal/ast"
	"pebble/internal/parser"
)

var log = commonlog.GetLogger("pebble.lsp")

// SemanticTokenTypes is the legend advertised to the client. Token type
// indexes sent on the wire point into this slice.
var SemanticTokenTypes = []string{
	"variable",
	"parameter",
	"function",
	"number",
	"enumMember",
	"keyword",
	"operator",
}

// SemanticTokenModifiers is the modifier legend; a token's modifier field is
// a bitmask over it.
var SemanticTokenModifiers = []string{
	"declaration",
}

// document is one open text buffer and its latest parse. result is nil
// when the latest text does not parse; err then holds the failure.
type document struct {
	path    string
	version int32
	source  string
	lines   *ast.LineIndex
	result  *parser.Result
	err     error
}

// PebbleHandler implements the LSP server handlers for Pebble
type PebbleHandler struct {
	mu   sync.RWMutex
	docs map[protocol.DocumentUri]*document
	opts []parser.Option
}

// NewPebbleHandler creates a handler; opts are passed to every parse.
func NewPebbleHandler(opts ...parser.Option) *PebbleHandler {
	return &PebbleHandler{
		docs: make(map[protocol.DocumentUri]*document),
		opts: opts,
	}
}

// Initialize responds to the client's initialize request and advertises the server's capabilities
func (h *PebbleHandler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log.Info("initialize")

	if params.Trace != nil {
		protocol.SetTraceValue(*params.Trace)
	}

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true),
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
			HoverProvider: true,
			SemanticTokensProvider: &protocol.SemanticTokensOptions{
				Legend: protocol.SemanticTokensLegend{
					TokenTypes:     SemanticTokenTypes,
					TokenModifiers: SemanticTokenModifiers,
				},
				Full: ptrBool(true),
			},
		},
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name: "pebble",
		},
	}, nil
}

func (h *PebbleHandler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Info("initialized")
	return nil
}

func (h *PebbleHandler) Shutdown(ctx *glsp.Context) error {
	log.Info("shutdown")
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

func (h *PebbleHandler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	log.Debugf("trace set to %s", params.Value)
	protocol.SetTraceValue(params.Value)
	return nil
}

// TextDocumentDidOpen parses the opened buffer and publishes its diagnostics
func (h *PebbleHandler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	uri := params.TextDocument.URI
	log.Infof("opened %s", uri)

	path, err := uriToPath(uri)
	if err != nil {
		return err
	}

	doc := h.update(uri, path, params.TextDocument.Version, params.TextDocument.Text)
	publishDiagnostics(ctx, uri, doc)
	return nil
}

// TextDocumentDidChange applies the content changes in order, reparses and
// publishes the new diagnostics
func (h *PebbleHandler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := params.TextDocument.URI
	log.Debugf("changed %s (version %d)", uri, params.TextDocument.Version)

	h.mu.RLock()
	doc, ok := h.docs[uri]
	h.mu.RUnlock()
	if !ok {
		return fmt.Errorf("change for unopened document %s", uri)
	}

	text := doc.source
	for _, change := range params.ContentChanges {
		switch c := change.(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			text = c.Text
		case protocol.TextDocumentContentChangeEvent:
			text = applyRangeChange(text, c)
		default:
			log.Warningf("ignoring content change of type %T", change)
		}
	}

	doc = h.update(uri, doc.path, params.TextDocument.Version, text)
	publishDiagnostics(ctx, uri, doc)
	return nil
}

// TextDocumentDidClose forgets the buffer and clears its diagnostics
func (h *PebbleHandler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	uri := params.TextDocument.URI
	log.Infof("closed %s", uri)

	h.mu.Lock()
	delete(h.docs, uri)
	h.mu.Unlock()

	sendDiagnosticNotification(ctx, uri, []protocol.Diagnostic{})
	return nil
}

// TextDocumentSemanticTokensFull handles semantic token requests for the entire document
func (h *PebbleHandler) TextDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	doc, err := h.getOrLoad(ctx, params.TextDocument.URI)
	if err != nil {
		return nil, err
	}

	data := []protocol.UInteger{}
	if doc.result == nil {
		return &protocol.SemanticTokens{Data: data}, nil
	}

	tokens := collectSemanticTokens(doc.result.Expr, doc.lines)

	// Encode tokens into LSP wire format (using delta-line, delta-start compression)
	var prevLine, prevStart uint32
	for _, token := range tokens {
		deltaLine := token.Line - prevLine
		deltaStart := token.StartChar
		if deltaLine == 0 {
			deltaStart = token.StartChar - prevStart
		}

		data = append(data, deltaLine, deltaStart, token.Length, uint32(token.TokenType), uint32(token.TokenModifiers))

		prevLine = token.Line
		prevStart = token.StartChar
	}

	return &protocol.SemanticTokens{Data: data}, nil
}

// TextDocumentHover shows the innermost syntax node under the cursor
func (h *PebbleHandler) TextDocumentHover(ctx *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc, err := h.getOrLoad(ctx, params.TextDocument.URI)
	if err != nil {
		return nil, err
	}
	if doc.result == nil {
		return nil, nil
	}

	offset := doc.lines.Offset(int(params.Position.Line)+1, int(params.Position.Character)+1)
	node := ast.FindInnermost(doc.result.Expr, offset)
	if node == nil {
		return nil, nil
	}

	span := node.NodeSpan()
	rng := spanToRange(doc.lines, span)
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: fmt.Sprintf("**%s** `%s`\n\n```\n%s\n```", node.NodeType(), span, ast.Format(node, doc.source)),
		},
		Range: &rng,
	}, nil
}

// update parses text and stores it as the current state of uri
func (h *PebbleHandler) update(uri protocol.DocumentUri, path string, version int32, text string) *document {
	doc := &document{
		path:    path,
		version: version,
		source:  text,
		lines:   ast.NewLineIndex(path, text),
	}
	doc.result, doc.err = parser.ParseSource(path, text, h.opts...)
	if doc.err != nil {
		log.Debugf("%s does not parse: %s", path, doc.err)
	}

	h.mu.Lock()
	h.docs[uri] = doc
	h.mu.Unlock()

	return doc
}

// getOrLoad returns the open buffer for uri, reading the file from disk
// when the client asks about a document it never opened
func (h *PebbleHandler) getOrLoad(ctx *glsp.Context, uri protocol.DocumentUri) (*document, error) {
	h.mu.RLock()
	doc, ok := h.docs[uri]
	h.mu.RUnlock()
	if ok {
		return doc, nil
	}

	path, err := uriToPath(uri)
	if err != nil {
		return nil, err
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	doc = h.update(uri, path, 0, string(content))
	publishDiagnostics(ctx, uri, doc)
	return doc, nil
}

// applyRangeChange splices an incremental change into text. Positions are
// taken as byte columns.
func applyRangeChange(text string, change protocol.TextDocumentContentChangeEvent) string {
	if change.Range == nil {
		return change.Text
	}
	lines := ast.NewLineIndex("", text)
	start := lines.Offset(int(change.Range.Start.Line)+1, int(change.Range.Start.Character)+1)
	end := lines.Offset(int(change.Range.End.Line)+1, int(change.Range.End.Character)+1)
	if end < start {
		start, end = end, start
	}
	return text[:start] + change.Text + text[end:]
}

// Convert URI to platform-local file path
func uriToPath(rawURI string) (string, error) {
	u, err := url.Parse(rawURI)
	if err != nil {
		return "", fmt.Errorf("invalid URI %s: %w", rawURI, err)
	}

	path := u.Path

	// On Windows, remove leading slash (e.g., /C:/...)
	if runtime.GOOS == "windows" && strings.HasPrefix(path, "/") && len(path) > 3 && path[2] == ':' {
		path = path[1:]
	}

	return filepath.FromSlash(path), nil
}

func publishDiagnostics(ctx *glsp.Context, uri protocol.DocumentUri, doc *document) {
	diagnostics := []protocol.Diagnostic{}
	if doc.err != nil {
		diagnostics = ConvertParseError(doc.err, doc.source, uri)
	}
	sendDiagnosticNotification(ctx, uri, diagnostics)
}

func sendDiagnosticNotification(ctx *glsp.Context, uri protocol.DocumentUri, diagnostics []protocol.Diagnostic) {
	if ctx == nil || ctx.Notify == nil {
		return
	}

	log.Debugf("publishing %d diagnostics for %s", len(diagnostics), uri)
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
