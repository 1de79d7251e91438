package parser

import (
	"fmt"

	"pebble/internal/ast"
)

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isAlpha(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isAlnum(c byte) bool {
	return isAlpha(c) || isDigit(c)
}

// ws skips optional whitespace. It never fails.
func (p *parser) ws(in Input) Input {
	return in.skipWhile(isSpace)
}

// lit matches the exact text s.
func (p *parser) lit(in Input, s string) (Input, error) {
	if !in.hasPrefix(s) {
		return in, p.expect(in, "'"+s+"'")
	}
	return in.advance(len(s)), nil
}

// punct matches s surrounded by optional whitespace.
func (p *parser) punct(in Input, s string) (Input, error) {
	rest, err := p.lit(p.ws(in), s)
	if err != nil {
		return in, err
	}
	return p.ws(rest), nil
}

// word returns the length of the identifier-shaped word at in: a run of
// letters followed by any number of "_" + alphanumeric-run groups. It
// returns 0 when in does not start with a letter.
func word(in Input) int {
	end := in.skipWhile(isAlpha)
	if end.off == in.off {
		return 0
	}
	for end.peek() == '_' && isAlnum(end.peekAt(1)) {
		end = end.advance(1).skipWhile(isAlnum)
	}
	return end.off - in.off
}

// keyword matches the reserved word kw as a whole word.
func (p *parser) keyword(in Input, kw string) (Input, error) {
	if n := word(in); n != len(kw) || !in.hasPrefix(kw) {
		return in, p.expect(in, "'"+kw+"'")
	}
	return in.advance(len(kw)), nil
}

// integer matches digits with optional "_" digit-group separators. Once
// the digits are consumed the next significant character must not be '_';
// if it is, parsing fails hard rather than stopping early.
func (p *parser) integer(in Input) (Input, ast.Span, error) {
	rest := in.skipWhile(isDigit)
	if rest.off == in.off {
		return in, ast.Span{}, p.expect(in, "integer")
	}
	for rest.peek() == '_' && isDigit(rest.peekAt(1)) {
		rest = rest.advance(1).skipWhile(isDigit)
	}

	if after := p.ws(rest); after.peek() == '_' {
		return in, ast.Span{}, p.fatal(after, DigitSeparator,
			fmt.Sprintf("'_' cannot follow integer literal %q", in.SpanTo(rest).Text(in.src)))
	}

	return rest, in.SpanTo(rest), nil
}

// ident matches an identifier that is not a reserved keyword.
func (p *parser) ident(in Input) (Input, ast.Span, error) {
	n := word(in)
	if n == 0 || IsKeyword(in.src[in.off:in.off+n]) {
		return in, ast.Span{}, p.expect(in, "identifier")
	}
	rest := in.advance(n)
	return rest, in.SpanTo(rest), nil
}

// tag matches ':' ws identifier and returns the full span and the name span.
func (p *parser) tag(in Input) (Input, ast.Span, ast.Span, error) {
	defer p.within("tag")()

	rest, err := p.lit(in, ":")
	if err != nil {
		return in, ast.Span{}, ast.Span{}, err
	}
	rest, name, err := p.ident(p.ws(rest))
	if err != nil {
		return in, ast.Span{}, ast.Span{}, err
	}
	return rest, in.SpanTo(rest), name, nil
}

// ellipsis matches ".." ws identifier?.
func (p *parser) ellipsis(in Input) (Input, ast.Ellipsis, error) {
	rest, err := p.lit(in, "..")
	if err != nil {
		return in, ast.Ellipsis{}, err
	}
	var name *ast.Span
	if next, span, err := p.ident(p.ws(rest)); err == nil {
		name = &span
		rest = next
	}

	return rest, ast.Ellipsis{Span: in.SpanTo(rest), Name: name}, nil
}
