package lsp

import (
	"sort"

	"pebble/internal/ast"
)

// SemanticToken represents a single LSP semantic token entry
// Line and StartChar are 0-based positions
// TokenType is an index into SemanticTokenTypes
// TokenModifiers is a bitmask based on SemanticTokenModifiers
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int
	TokenModifiers int
}

const declaration = 1

// collectSemanticTokens walks the tree and returns its tokens ordered by
// position, as the delta encoding requires.
func collectSemanticTokens(root ast.Expr, lines *ast.LineIndex) []SemanticToken {
	var tokens []SemanticToken
	if root == nil {
		return tokens
	}

	add := func(span ast.Span, tokenType string, modifiers int) {
		if token, ok := makeToken(lines, span, tokenType, modifiers); ok {
			tokens = append(tokens, token)
		}
	}

	ast.Inspect(root, func(node ast.Node) bool {
		switch n := node.(type) {
		case *ast.IdentExpr:
			add(n.Span, "variable", 0)
		case *ast.IntExpr:
			add(n.Span, "number", 0)
		case *ast.TagExpr:
			add(tagSpan(lines, n.Span, n.Name), "enumMember", 0)
		case *ast.FnExpr:
			add(n.Param, "parameter", declaration)
		case *ast.AppExpr:
			if callee, ok := n.Callee.(*ast.IdentExpr); ok {
				add(callee.Span, "function", 0)
			}
		case *ast.CaseExpr:
			add(ast.Between(n.Span.Start, n.Span.Start+len("case")), "keyword", 0)
			add(ast.Between(n.Span.End-len("end"), n.Span.End), "keyword", 0)
		case *ast.Arm:
			add(ast.Between(n.Span.Start, n.Span.Start+len("of")), "keyword", 0)
		case *ast.ExpandExpr:
			writeEllipsis(add, n.Ellipsis, 0)
		case *ast.IntPattern:
			add(n.Span, "number", 0)
		case *ast.TagPattern:
			add(tagSpan(lines, n.Span, n.Name), "enumMember", 0)
		case *ast.IdentPattern:
			add(n.Span, "variable", declaration)
		case *ast.IgnorePattern:
			add(n.Span, "variable", declaration)
		case *ast.AppPattern:
			if head, ok := n.Head.(*ast.IdentPattern); ok {
				add(head.Span, "function", 0)
			}
		case *ast.CollectPattern:
			writeEllipsis(add, n.Ellipsis, declaration)
		}
		return true
	})

	tokens = dedupe(tokens)
	sort.SliceStable(tokens, func(i, j int) bool {
		if tokens[i].Line != tokens[j].Line {
			return tokens[i].Line < tokens[j].Line
		}
		return tokens[i].StartChar < tokens[j].StartChar
	})
	return tokens
}

// writeEllipsis emits the ".." operator and, if present, the bound name
func writeEllipsis(add func(ast.Span, string, int), e ast.Ellipsis, modifiers int) {
	add(ast.Between(e.Span.Start, e.Span.Start+len("..")), "operator", 0)
	if e.Name != nil {
		add(*e.Name, "variable", modifiers)
	}
}

// tagSpan is the whole tag when it sits on one line, otherwise just its name
func tagSpan(lines *ast.LineIndex, full, name ast.Span) ast.Span {
	start, end := lines.Range(full)
	if start.Line != end.Line {
		return name
	}
	return full
}

// dedupe keeps the first token at each start position. An application's
// callee is visited both as the head of the call ("function") and as an
// identifier ("variable"); the first one wins.
func dedupe(tokens []SemanticToken) []SemanticToken {
	type key struct{ line, char uint32 }
	seen := make(map[key]bool, len(tokens))

	out := tokens[:0]
	for _, t := range tokens {
		k := key{t.Line, t.StartChar}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, t)
	}
	return out
}

// makeToken creates a semantic token for a single-line span
func makeToken(lines *ast.LineIndex, span ast.Span, tokenType string, modifiers int) (SemanticToken, bool) {
	if span.Len() <= 0 {
		return SemanticToken{}, false
	}

	start, end := lines.Range(span)
	if start.Line != end.Line {
		return SemanticToken{}, false
	}

	return SemanticToken{
		Line:           uint32(start.Line - 1),   // LSP uses 0-based line numbers
		StartChar:      uint32(start.Column - 1), // LSP uses 0-based column numbers
		Length:         uint32(span.Len()),
		TokenType:      indexOf(tokenType, SemanticTokenTypes),
		TokenModifiers: modifiers,
	}, true
}

// indexOf returns the index of a string in a slice, or 0 if not found
func indexOf(target string, list []string) int {
	for i, v := range list {
		if v == target {
			return i
		}
	}
	return 0
}
