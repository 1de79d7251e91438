package parser

import "pebble/internal/ast"

// pattern = tuple | other
func (p *parser) pattern(in Input) (Input, ast.Pattern, error) {
	if err := p.enter(in); err != nil {
		return in, nil, err
	}
	defer p.leave()

	return memoize(p, rulePattern, in, func(in Input) (Input, ast.Pattern, error) {
		return alt(in, p.ptuple, p.pother)
	})
}

// pother = app
func (p *parser) pother(in Input) (Input, ast.Pattern, error) {
	return memoize(p, rulePatternOther, in, p.papp)
}

// patom = int | ident | tag | wildcard | unit | paren
func (p *parser) patom(in Input) (Input, ast.Pattern, error) {
	return alt(in, p.pint, p.pident, p.ptag, p.pignore, p.punit, p.pparen)
}

// pitem = ellipsis | other
func (p *parser) pitem(in Input) (Input, ast.Pattern, error) {
	return alt(in, p.pcollect, p.pother)
}

func (p *parser) pint(in Input) (Input, ast.Pattern, error) {
	rest, span, err := p.integer(in)
	if err != nil {
		return in, nil, err
	}
	return rest, &ast.IntPattern{Span: span}, nil
}

func (p *parser) pident(in Input) (Input, ast.Pattern, error) {
	rest, span, err := p.ident(in)
	if err != nil {
		return in, nil, err
	}
	return rest, &ast.IdentPattern{Span: span}, nil
}

func (p *parser) ptag(in Input) (Input, ast.Pattern, error) {
	rest, span, name, err := p.tag(in)
	if err != nil {
		return in, nil, err
	}
	return rest, &ast.TagPattern{Span: span, Name: name}, nil
}

func (p *parser) pcollect(in Input) (Input, ast.Pattern, error) {
	rest, e, err := p.ellipsis(in)
	if err != nil {
		return in, nil, err
	}
	return rest, &ast.CollectPattern{Ellipsis: e}, nil
}

// pignore = '_' ident?
func (p *parser) pignore(in Input) (Input, ast.Pattern, error) {
	rest, err := p.lit(in, "_")
	if err != nil {
		return in, nil, err
	}
	if next, _, err := p.ident(rest); err == nil {
		rest = next
	}
	return rest, &ast.IgnorePattern{Span: in.SpanTo(rest)}, nil
}

// punit = '(' ws ')'
func (p *parser) punit(in Input) (Input, ast.Pattern, error) {
	rest, err := p.lit(in, "(")
	if err != nil {
		return in, nil, err
	}
	rest, err = p.lit(p.ws(rest), ")")
	if err != nil {
		return in, nil, err
	}
	return rest, &ast.TuplePattern{Span: in.SpanTo(rest)}, nil
}

// pparen = '(' ws pattern ws ')'
func (p *parser) pparen(in Input) (Input, ast.Pattern, error) {
	defer p.within("parenthesized pattern")()

	rest, err := p.lit(in, "(")
	if err != nil {
		return in, nil, err
	}
	rest, inner, err := p.pattern(p.ws(rest))
	if err != nil {
		return in, nil, err
	}
	rest, err = p.lit(p.ws(rest), ")")
	if err != nil {
		return in, nil, err
	}
	return rest, &ast.ParenPattern{Span: in.SpanTo(rest), Inner: inner}, nil
}

// papp = atom args*
//
// Unlike expressions, no whitespace is allowed between the head and an
// argument list.
func (p *parser) papp(in Input) (Input, ast.Pattern, error) {
	rest, head, err := p.patom(in)
	if err != nil {
		return in, nil, err
	}

	for {
		next, argSpan, args, err := p.pargs(rest)
		if err != nil {
			if isSoft(err) {
				break
			}
			return in, nil, err
		}
		head = &ast.AppPattern{
			Span:    head.NodeSpan().To(argSpan),
			Head:    head,
			ArgSpan: argSpan,
			Args:    args,
		}
		rest = next
	}

	return rest, head, nil
}

// pargs = '(' ws (item (ws ',' ws item)*)? ws ')'
func (p *parser) pargs(in Input) (Input, ast.Span, []ast.Pattern, error) {
	defer p.within("pattern argument list")()

	rest, err := p.lit(in, "(")
	if err != nil {
		return in, ast.Span{}, nil, err
	}
	rest = p.ws(rest)

	var args []ast.Pattern
	next, first, err := p.pitem(rest)
	switch {
	case err == nil:
		args = append(args, first)
		rest = next
		for {
			afterSep, err := p.punct(rest, ",")
			if err != nil {
				break
			}
			next, item, err := p.pitem(afterSep)
			if err != nil {
				if isSoft(err) {
					break
				}
				return in, ast.Span{}, nil, err
			}
			args = append(args, item)
			rest = next
		}
	case !isSoft(err):
		return in, ast.Span{}, nil, err
	}

	rest, err = p.lit(p.ws(rest), ")")
	if err != nil {
		return in, ast.Span{}, nil, err
	}
	return rest, in.SpanTo(rest), args, nil
}

// ptuple = (item ws ',' ws)+ item?
func (p *parser) ptuple(in Input) (Input, ast.Pattern, error) {
	defer p.within("tuple pattern")()

	var items []ast.Pattern
	rest := in
	for {
		next, item, err := p.pitem(rest)
		if err != nil {
			if isSoft(err) {
				break
			}
			return in, nil, err
		}
		next, err = p.punct(next, ",")
		if err != nil {
			break
		}
		items = append(items, item)
		rest = next
	}
	if len(items) == 0 {
		return in, nil, errNoMatch
	}

	if next, last, err := p.pitem(rest); err == nil {
		items = append(items, last)
		rest = next
	} else if !isSoft(err) {
		return in, nil, err
	}

	return rest, &ast.TuplePattern{Span: in.SpanTo(rest), Items: items}, nil
}
