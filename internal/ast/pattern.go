package ast

type Pattern interface {
	Node
	isPattern()
}

func (*IntPattern) isPattern()     {}
func (*TagPattern) isPattern()     {}
func (*IdentPattern) isPattern()   {}
func (*IgnorePattern) isPattern()  {}
func (*TuplePattern) isPattern()   {}
func (*ParenPattern) isPattern()   {}
func (*AppPattern) isPattern()     {}
func (*CollectPattern) isPattern() {}

type IntPattern struct {
	Span Span
}

type TagPattern struct {
	Span Span
	Name Span
}

type IdentPattern struct {
	Span Span
}

// IgnorePattern is the wildcard `_` or a named wildcard such as `_rest`.
type IgnorePattern struct {
	Span Span
}

type TuplePattern struct {
	Span  Span
	Items []Pattern
}

type ParenPattern struct {
	Span  Span
	Inner Pattern
}

// AppPattern matches a constructor application, e.g. `some(x)` or `f(x)(y)`.
type AppPattern struct {
	Span    Span
	Head    Pattern
	ArgSpan Span
	Args    []Pattern
}

// CollectPattern gathers the remaining elements of a tuple or argument list.
type CollectPattern struct {
	Ellipsis Ellipsis
}
