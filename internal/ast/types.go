package ast

type NodeType int

const (
	ILLEGAL NodeType = iota

	// Expressions
	INT_EXPR
	TAG_EXPR
	IDENT_EXPR
	TUPLE_EXPR
	PAREN_EXPR
	FN_EXPR
	APP_EXPR
	CASE_EXPR
	DO_EXPR
	EXPAND_EXPR

	// Patterns
	INT_PATTERN
	TAG_PATTERN
	IDENT_PATTERN
	IGNORE_PATTERN
	TUPLE_PATTERN
	PAREN_PATTERN
	APP_PATTERN
	COLLECT_PATTERN

	// Statements and clauses
	ASSIGN_STMT
	EXPR_STMT
	ARM
)

var nodeTypeNames = map[NodeType]string{
	ILLEGAL:         "illegal",
	INT_EXPR:        "int",
	TAG_EXPR:        "tag",
	IDENT_EXPR:      "id",
	TUPLE_EXPR:      "tuple",
	PAREN_EXPR:      "paren",
	FN_EXPR:         "fn",
	APP_EXPR:        "app",
	CASE_EXPR:       "case",
	DO_EXPR:         "do",
	EXPAND_EXPR:     "expand",
	INT_PATTERN:     "int",
	TAG_PATTERN:     "tag",
	IDENT_PATTERN:   "id",
	IGNORE_PATTERN:  "ignore",
	TUPLE_PATTERN:   "tuple",
	PAREN_PATTERN:   "paren",
	APP_PATTERN:     "app",
	COLLECT_PATTERN: "collect",
	ASSIGN_STMT:     "assign",
	EXPR_STMT:       "stmt",
	ARM:             "arm",
}

// String returns the short lowercase name used in S-expression dumps.
func (t NodeType) String() string {
	if name, ok := nodeTypeNames[t]; ok {
		return name
	}
	return "illegal"
}

// IsPattern reports whether t is one of the pattern node kinds.
func (t NodeType) IsPattern() bool {
	return t >= INT_PATTERN && t <= COLLECT_PATTERN
}
