package ast

type Stmt interface {
	Node
	isStmt()
}

func (*AssignStmt) isStmt() {}
func (*ExprStmt) isStmt()   {}

// AssignStmt binds Pattern to the value of Expr.
type AssignStmt struct {
	Span    Span
	Pattern Pattern
	Expr    Expr
}

type ExprStmt struct {
	Expr Expr
}
