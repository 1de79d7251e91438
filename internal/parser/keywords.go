package parser

// KEYWORDS are reserved and can never be identifiers.
var KEYWORDS = map[string]struct{}{
	"case": {},
	"of":   {},
	"do":   {},
	"end":  {},
}

func IsKeyword(word string) bool {
	_, ok := KEYWORDS[word]
	return ok
}
