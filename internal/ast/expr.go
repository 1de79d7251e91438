package ast

type Expr interface {
	Node
	isExpr()
}

func (*IntExpr) isExpr()    {}
func (*TagExpr) isExpr()    {}
func (*IdentExpr) isExpr()  {}
func (*TupleExpr) isExpr()  {}
func (*ParenExpr) isExpr()  {}
func (*FnExpr) isExpr()     {}
func (*AppExpr) isExpr()    {}
func (*CaseExpr) isExpr()   {}
func (*DoExpr) isExpr()     {}
func (*ExpandExpr) isExpr() {}

// IntExpr is an integer literal, digit separators included.
type IntExpr struct {
	Span Span
}

// TagExpr is a symbolic constant such as `:ok`. Span starts at the colon,
// Name covers the identifier only.
type TagExpr struct {
	Span Span
	Name Span
}

type IdentExpr struct {
	Span Span
}

// TupleExpr holds zero or more items. Unit `()` is a tuple with no items.
type TupleExpr struct {
	Span  Span
	Items []Expr
}

// ParenExpr keeps explicit grouping visible to later phases.
type ParenExpr struct {
	Span  Span
	Inner Expr
}

// FnExpr is a single-parameter function. Curried literals nest:
// `x y -> e` is FnExpr{x, FnExpr{y, e}}.
type FnExpr struct {
	Span  Span
	Param Span
	Body  Expr
}

// AppExpr applies Callee to one parenthesized argument list. ArgSpan covers
// the list from `(` to `)`.
type AppExpr struct {
	Span    Span
	Callee  Expr
	ArgSpan Span
	Args    []Expr
}

type CaseExpr struct {
	Span    Span
	Subject Expr
	Arms    []*Arm
}

// Arm is one `of <pattern> = <expr>` clause.
type Arm struct {
	Span    Span
	Pattern Pattern
	Expr    Expr
}

// DoExpr is a `{ ... }` block. Tail is nil when the block has no trailing
// value expression.
type DoExpr struct {
	Span       Span
	Statements []Stmt
	Tail       Expr
}

// ExpandExpr spreads a value into the surrounding tuple or argument list.
type ExpandExpr struct {
	Ellipsis Ellipsis
}

// Ellipsis is `..` or `..name`. Name is nil when no identifier follows.
type Ellipsis struct {
	Span Span
	Name *Span
}
