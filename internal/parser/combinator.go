package parser

import "pebble/internal/ast"

// alt tries each rule at the same starting position and returns the first
// success. A hard failure stops the search: no later alternative is tried.
func alt[T any](in Input, rules ...func(Input) (Input, T, error)) (Input, T, error) {
	var zero T
	for _, rule := range rules {
		rest, v, err := rule(in)
		if err == nil {
			return rest, v, nil
		}
		if !isSoft(err) {
			return in, zero, err
		}
	}
	return in, zero, errNoMatch
}

type ruleID uint8

const (
	ruleExpr ruleID = iota
	ruleOther
	rulePattern
	rulePatternOther
)

type memoKey struct {
	rule ruleID
	off  int
}

type memoEntry struct {
	rest Input
	node ast.Node
	err  error
}

// memoize caches the outcome of rule at in. Rules are pure functions of
// their position, so a cached result is exactly what a re-run would give;
// caching keeps nested alternatives from re-parsing the same text
// exponentially often.
func memoize[T ast.Node](p *parser, id ruleID, in Input, rule func(Input) (Input, T, error)) (Input, T, error) {
	if p.memo == nil {
		return rule(in)
	}

	key := memoKey{rule: id, off: in.off}
	if e, ok := p.memo[key]; ok {
		var v T
		if e.node != nil {
			v = e.node.(T)
		}
		return e.rest, v, e.err
	}

	rest, v, err := rule(in)
	entry := memoEntry{rest: rest, err: err}
	if err == nil {
		entry.node = v
	}
	p.memo[key] = entry
	return rest, v, err
}
