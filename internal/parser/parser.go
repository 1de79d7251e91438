package parser

import (
	"errors"
	"fmt"
	"os"

	"pebble/internal/ast"
)

// DefaultMaxDepth bounds grammar recursion. Recursion depth grows with
// source nesting (parentheses, curried parameters, nested blocks), so the
// bound turns pathological input into an error instead of stack growth.
const DefaultMaxDepth = 1000

type config struct {
	filename      string
	maxDepth      int
	memo          bool
	allowTrailing bool
}

// Option configures a parse.
type Option func(*config)

// WithFilename sets the filename reported in error positions.
func WithFilename(name string) Option {
	return func(c *config) { c.filename = name }
}

// MaxDepth sets the nesting limit. Zero or a negative value disables it.
func MaxDepth(n int) Option {
	return func(c *config) { c.maxDepth = n }
}

// WithoutMemo disables result caching. Results are identical either way;
// only the running time differs.
func WithoutMemo() Option {
	return func(c *config) { c.memo = false }
}

// AllowTrailing makes ParseSource accept input left over after the
// top-level expression instead of reporting TrailingInput.
func AllowTrailing() Option {
	return func(c *config) { c.allowTrailing = true }
}

// parser holds the bookkeeping of a single parse. Grammar rules are
// methods so they can record failures; they never change what another rule
// returns for a given Input.
type parser struct {
	cfg     config
	src     string
	lines   *ast.LineIndex
	depth   int
	groups  int // `case` and block constructs currently open
	context []string
	fail    failure
	memo    map[memoKey]memoEntry
}

func newParser(src string, opts []Option) *parser {
	cfg := config{maxDepth: DefaultMaxDepth, memo: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	p := &parser{
		cfg:   cfg,
		src:   src,
		lines: ast.NewLineIndex(cfg.filename, src),
		fail:  failure{far: -1},
	}
	if cfg.memo {
		p.memo = make(map[memoKey]memoEntry)
	}
	return p
}

// expect records that what was expected at in and returns the soft failure.
func (p *parser) expect(in Input, what string) error {
	context := ""
	if len(p.context) > 0 {
		context = p.context[len(p.context)-1]
	}
	p.fail.record(in.off, what, context, p.groups > 0)
	return errNoMatch
}

// fatal builds a hard failure at in.
func (p *parser) fatal(in Input, kind Kind, detail string) error {
	return &Error{
		Kind:   kind,
		Offset: in.off,
		Pos:    p.lines.Position(in.off),
		Found:  describeAt(p.src, in.off),
		Fatal:  true,
		detail: detail,
	}
}

// within pushes name as the construct being parsed and returns the func
// that pops it.
func (p *parser) within(name string) func() {
	p.context = append(p.context, name)
	return func() { p.context = p.context[:len(p.context)-1] }
}

// group is within for constructs that do not commit after their opening
// token.
func (p *parser) group(name string) func() {
	pop := p.within(name)
	p.groups++
	return func() {
		p.groups--
		pop()
	}
}

// enter guards one level of recursion.
func (p *parser) enter(in Input) error {
	p.depth++
	if p.cfg.maxDepth > 0 && p.depth > p.cfg.maxDepth {
		return p.fatal(in, TooDeep, fmt.Sprintf("nesting exceeds the limit of %d levels", p.cfg.maxDepth))
	}
	return nil
}

func (p *parser) leave() {
	p.depth--
}

// toError converts the outcome of a failed top-level rule into an *Error.
func (p *parser) toError(err error) error {
	var perr *Error
	if errors.As(err, &perr) {
		return perr
	}

	off := p.fail.far
	if off < 0 {
		off = 0
	}
	return &Error{
		Kind:        SyntaxError,
		Offset:      off,
		Pos:         p.lines.Position(off),
		Expected:    append([]string(nil), p.fail.expected...),
		Found:       describeAt(p.src, off),
		Context:     p.fail.context,
		Backtracked: p.fail.backtracked,
	}
}

// ParseExpr parses one expression starting at offset 0 of src. On success
// it returns the tree and the unconsumed remainder; deciding whether a
// non-empty remainder is an error is left to the caller.
func ParseExpr(src string, opts ...Option) (ast.Expr, Input, error) {
	p := newParser(src, opts)
	in := NewInput(src)
	rest, expr, err := p.expr(in)
	if err != nil {
		return nil, in, p.toError(err)
	}
	return expr, rest, nil
}

// ParsePattern parses one pattern starting at offset 0 of src.
func ParsePattern(src string, opts ...Option) (ast.Pattern, Input, error) {
	p := newParser(src, opts)
	in := NewInput(src)
	rest, pat, err := p.pattern(in)
	if err != nil {
		return nil, in, p.toError(err)
	}
	return pat, rest, nil
}

// ParseStatement parses one statement (an assignment or an expression)
// starting at offset 0 of src.
func ParseStatement(src string, opts ...Option) (ast.Stmt, Input, error) {
	p := newParser(src, opts)
	in := NewInput(src)
	rest, stmt, err := p.statement(in)
	if err != nil {
		return nil, in, p.toError(err)
	}
	return stmt, rest, nil
}

// Result is a whole-source parse.
type Result struct {
	Filename string
	Source   string
	Expr     ast.Expr
	// Rest is the unconsumed input after trailing whitespace. It is only
	// non-empty when AllowTrailing was given.
	Rest  Input
	Lines *ast.LineIndex
}

// ParseSource parses src as a complete program: one expression followed by
// optional whitespace. Leftover input is reported as TrailingInput unless a
// soft failure got further, in which case that failure is the better
// diagnostic and is returned instead.
func ParseSource(filename, src string, opts ...Option) (*Result, error) {
	p := newParser(src, append([]Option{WithFilename(filename)}, opts...))
	in := NewInput(src)

	rest, expr, err := p.expr(in)
	if err != nil {
		return nil, p.toError(err)
	}
	rest = p.ws(rest)

	if !rest.AtEnd() && !p.cfg.allowTrailing {
		if p.fail.far > rest.off {
			return nil, p.toError(errNoMatch)
		}
		return nil, &Error{
			Kind:   TrailingInput,
			Offset: rest.off,
			Pos:    p.lines.Position(rest.off),
			Found:  describeAt(src, rest.off),
		}
	}

	return &Result{
		Filename: filename,
		Source:   src,
		Expr:     expr,
		Rest:     rest,
		Lines:    p.lines,
	}, nil
}

// ParseFile reads path and parses it with ParseSource.
func ParseFile(path string, opts ...Option) (*Result, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return ParseSource(path, string(source), opts...)
}
