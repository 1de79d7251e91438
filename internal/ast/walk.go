package ast

// Children returns the direct children of node in source order.
func Children(node Node) []Node {
	var children []Node

	switch n := node.(type) {
	case *TupleExpr:
		for _, item := range n.Items {
			children = append(children, item)
		}
	case *ParenExpr:
		children = append(children, n.Inner)
	case *FnExpr:
		children = append(children, n.Body)
	case *AppExpr:
		children = append(children, n.Callee)
		for _, arg := range n.Args {
			children = append(children, arg)
		}
	case *CaseExpr:
		children = append(children, n.Subject)
		for _, arm := range n.Arms {
			children = append(children, arm)
		}
	case *Arm:
		children = append(children, n.Pattern, n.Expr)
	case *DoExpr:
		for _, stmt := range n.Statements {
			children = append(children, stmt)
		}
		if n.Tail != nil {
			children = append(children, n.Tail)
		}
	case *AssignStmt:
		children = append(children, n.Pattern, n.Expr)
	case *ExprStmt:
		children = append(children, n.Expr)
	case *TuplePattern:
		for _, item := range n.Items {
			children = append(children, item)
		}
	case *ParenPattern:
		children = append(children, n.Inner)
	case *AppPattern:
		children = append(children, n.Head)
		for _, arg := range n.Args {
			children = append(children, arg)
		}
	}

	return children
}

// Inspect walks the tree rooted at node in pre-order. When fn returns false
// the children of that node are skipped.
func Inspect(node Node, fn func(Node) bool) {
	if node == nil || !fn(node) {
		return
	}
	for _, child := range Children(node) {
		Inspect(child, fn)
	}
}

// FindInnermost returns the deepest node whose span covers offset, or nil
// when root does not cover it.
func FindInnermost(root Node, offset int) Node {
	if root == nil || !root.NodeSpan().Covers(offset) {
		return nil
	}

	current := root
	for {
		var next Node
		for _, child := range Children(current) {
			if child.NodeSpan().Covers(offset) {
				next = child
				break
			}
		}
		if next == nil {
			return current
		}
		current = next
	}
}

// Count returns the number of nodes in the tree rooted at node.
func Count(node Node) int {
	n := 0
	Inspect(node, func(Node) bool {
		n++
		return true
	})
	return n
}
