package ast

import (
	"strings"
)

// Format renders the tree rooted at node as a single-line S-expression.
// Leaf text is sliced out of src, so the output only makes sense for the
// source the tree was parsed from.
func Format(node Node, src string) string {
	var b strings.Builder
	writeNode(&b, node, src)
	return b.String()
}

func writeNode(b *strings.Builder, node Node, src string) {
	if node == nil {
		b.WriteString("nil")
		return
	}

	switch n := node.(type) {
	case *IntExpr:
		writeLeaf(b, n.NodeType(), n.Span.Text(src))
	case *TagExpr:
		writeLeaf(b, n.NodeType(), n.Name.Text(src))
	case *IdentExpr:
		writeLeaf(b, n.NodeType(), n.Span.Text(src))
	case *TupleExpr:
		b.WriteString("(tuple")
		for _, item := range n.Items {
			b.WriteString(" ")
			writeNode(b, item, src)
		}
		b.WriteString(")")
	case *ParenExpr:
		b.WriteString("(paren ")
		writeNode(b, n.Inner, src)
		b.WriteString(")")
	case *FnExpr:
		b.WriteString("(fn ")
		b.WriteString(n.Param.Text(src))
		b.WriteString(" ")
		writeNode(b, n.Body, src)
		b.WriteString(")")
	case *AppExpr:
		b.WriteString("(app ")
		writeNode(b, n.Callee, src)
		writeList(b, exprNodes(n.Args), src)
		b.WriteString(")")
	case *CaseExpr:
		b.WriteString("(case ")
		writeNode(b, n.Subject, src)
		for _, arm := range n.Arms {
			b.WriteString(" ")
			writeNode(b, arm, src)
		}
		b.WriteString(")")
	case *Arm:
		b.WriteString("(arm ")
		writeNode(b, n.Pattern, src)
		b.WriteString(" ")
		writeNode(b, n.Expr, src)
		b.WriteString(")")
	case *DoExpr:
		b.WriteString("(do")
		for _, stmt := range n.Statements {
			b.WriteString(" ")
			writeNode(b, stmt, src)
		}
		if n.Tail != nil {
			b.WriteString(" ")
			writeNode(b, n.Tail, src)
		}
		b.WriteString(")")
	case *ExpandExpr:
		writeEllipsis(b, "expand", n.Ellipsis, src)
	case *AssignStmt:
		b.WriteString("(assign ")
		writeNode(b, n.Pattern, src)
		b.WriteString(" ")
		writeNode(b, n.Expr, src)
		b.WriteString(")")
	case *ExprStmt:
		b.WriteString("(stmt ")
		writeNode(b, n.Expr, src)
		b.WriteString(")")
	case *IntPattern:
		writeLeaf(b, n.NodeType(), n.Span.Text(src))
	case *TagPattern:
		writeLeaf(b, n.NodeType(), n.Name.Text(src))
	case *IdentPattern:
		writeLeaf(b, n.NodeType(), n.Span.Text(src))
	case *IgnorePattern:
		writeLeaf(b, n.NodeType(), n.Span.Text(src))
	case *TuplePattern:
		b.WriteString("(tuple")
		for _, item := range n.Items {
			b.WriteString(" ")
			writeNode(b, item, src)
		}
		b.WriteString(")")
	case *ParenPattern:
		b.WriteString("(paren ")
		writeNode(b, n.Inner, src)
		b.WriteString(")")
	case *AppPattern:
		b.WriteString("(app ")
		writeNode(b, n.Head, src)
		writeList(b, patternNodes(n.Args), src)
		b.WriteString(")")
	case *CollectPattern:
		writeEllipsis(b, "collect", n.Ellipsis, src)
	default:
		b.WriteString("(illegal)")
	}
}

func writeLeaf(b *strings.Builder, t NodeType, text string) {
	b.WriteString("(")
	b.WriteString(t.String())
	b.WriteString(" ")
	b.WriteString(text)
	b.WriteString(")")
}

// writeList writes an argument list as ` [a b c]`.
func writeList(b *strings.Builder, nodes []Node, src string) {
	b.WriteString(" [")
	for i, node := range nodes {
		if i > 0 {
			b.WriteString(" ")
		}
		writeNode(b, node, src)
	}
	b.WriteString("]")
}

func writeEllipsis(b *strings.Builder, head string, e Ellipsis, src string) {
	b.WriteString("(")
	b.WriteString(head)
	if e.Name != nil {
		b.WriteString(" ")
		b.WriteString(e.Name.Text(src))
	}
	b.WriteString(")")
}

func exprNodes(exprs []Expr) []Node {
	nodes := make([]Node, len(exprs))
	for i, e := range exprs {
		nodes[i] = e
	}
	return nodes
}

func patternNodes(patterns []Pattern) []Node {
	nodes := make([]Node, len(patterns))
	for i, p := range patterns {
		nodes[i] = p
	}
	return nodes
}
