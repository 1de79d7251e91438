package parser

import "pebble/internal/ast"

// expr = fn | tuple | other
//
// Function literals come first so `x -> e` is not read as the identifier x
// with input left over; tuples come before other so a top-level comma
// sequence is not cut short after its first item.
func (p *parser) expr(in Input) (Input, ast.Expr, error) {
	if err := p.enter(in); err != nil {
		return in, nil, err
	}
	defer p.leave()

	return memoize(p, ruleExpr, in, func(in Input) (Input, ast.Expr, error) {
		return alt(in, p.efn, p.etuple, p.eother)
	})
}

// eother = app | case | block
func (p *parser) eother(in Input) (Input, ast.Expr, error) {
	return memoize(p, ruleOther, in, func(in Input) (Input, ast.Expr, error) {
		return alt(in, p.eapp, p.ecase, p.edo)
	})
}

// eatom = unit | ident | tag | int | paren
func (p *parser) eatom(in Input) (Input, ast.Expr, error) {
	return alt(in, p.eunit, p.eident, p.etag, p.eint, p.eparen)
}

// eitem is an element of a tuple or an argument list. Function literals
// and bare tuples are excluded; they have to be parenthesized.
func (p *parser) eitem(in Input) (Input, ast.Expr, error) {
	return alt(in, p.eexpand, p.eother)
}

func (p *parser) eint(in Input) (Input, ast.Expr, error) {
	rest, span, err := p.integer(in)
	if err != nil {
		return in, nil, err
	}
	return rest, &ast.IntExpr{Span: span}, nil
}

func (p *parser) eident(in Input) (Input, ast.Expr, error) {
	rest, span, err := p.ident(in)
	if err != nil {
		return in, nil, err
	}
	return rest, &ast.IdentExpr{Span: span}, nil
}

func (p *parser) etag(in Input) (Input, ast.Expr, error) {
	rest, span, name, err := p.tag(in)
	if err != nil {
		return in, nil, err
	}
	return rest, &ast.TagExpr{Span: span, Name: name}, nil
}

func (p *parser) eexpand(in Input) (Input, ast.Expr, error) {
	rest, e, err := p.ellipsis(in)
	if err != nil {
		return in, nil, err
	}
	return rest, &ast.ExpandExpr{Ellipsis: e}, nil
}

// eunit = '(' ws ')'
func (p *parser) eunit(in Input) (Input, ast.Expr, error) {
	rest, err := p.lit(in, "(")
	if err != nil {
		return in, nil, err
	}
	rest, err = p.lit(p.ws(rest), ")")
	if err != nil {
		return in, nil, err
	}
	return rest, &ast.TupleExpr{Span: in.SpanTo(rest)}, nil
}

// eparen = '(' ws expr ws ')'
func (p *parser) eparen(in Input) (Input, ast.Expr, error) {
	defer p.within("parenthesized expression")()

	rest, err := p.lit(in, "(")
	if err != nil {
		return in, nil, err
	}
	rest, inner, err := p.expr(p.ws(rest))
	if err != nil {
		return in, nil, err
	}
	rest, err = p.lit(p.ws(rest), ")")
	if err != nil {
		return in, nil, err
	}
	return rest, &ast.ParenExpr{Span: in.SpanTo(rest), Inner: inner}, nil
}

// eapp = atom (ws args)*
//
// Argument lists fold to the left: f(a)(b) is App(App(f, [a]), [b]), each
// step's span running from the callee's start to the end of its list.
func (p *parser) eapp(in Input) (Input, ast.Expr, error) {
	rest, callee, err := p.eatom(in)
	if err != nil {
		return in, nil, err
	}

	for {
		next, argSpan, args, err := p.eargs(p.ws(rest))
		if err != nil {
			if isSoft(err) {
				break
			}
			return in, nil, err
		}
		callee = &ast.AppExpr{
			Span:    callee.NodeSpan().To(argSpan),
			Callee:  callee,
			ArgSpan: argSpan,
			Args:    args,
		}
		rest = next
	}

	return rest, callee, nil
}

// eargs = '(' ws (item ws ',' ws)* item? ws ')'
func (p *parser) eargs(in Input) (Input, ast.Span, []ast.Expr, error) {
	defer p.within("argument list")()

	rest, err := p.lit(in, "(")
	if err != nil {
		return in, ast.Span{}, nil, err
	}
	rest = p.ws(rest)

	rest, args, err := p.eitems(rest)
	if err != nil {
		return in, ast.Span{}, nil, err
	}
	if next, last, err := p.eitem(rest); err == nil {
		args = append(args, last)
		rest = next
	} else if !isSoft(err) {
		return in, ast.Span{}, nil, err
	}

	rest, err = p.lit(p.ws(rest), ")")
	if err != nil {
		return in, ast.Span{}, nil, err
	}
	return rest, in.SpanTo(rest), args, nil
}

// eitems = (item ws ',' ws)*
//
// An item that is not followed by a comma is left unconsumed for the
// caller's optional final item.
func (p *parser) eitems(in Input) (Input, []ast.Expr, error) {
	var items []ast.Expr
	rest := in
	for {
		next, item, err := p.eitem(rest)
		if err != nil {
			if isSoft(err) {
				return rest, items, nil
			}
			return in, nil, err
		}
		next, err = p.punct(next, ",")
		if err != nil {
			return rest, items, nil
		}
		items = append(items, item)
		rest = next
	}
}

// etuple = (item ws ',' ws)+ (ws item)?
//
// At least one comma is required; a trailing comma makes a one-element
// tuple.
func (p *parser) etuple(in Input) (Input, ast.Expr, error) {
	defer p.within("tuple")()

	rest, items, err := p.eitems(in)
	if err != nil {
		return in, nil, err
	}
	if len(items) == 0 {
		return in, nil, errNoMatch
	}

	if next, last, err := p.eitem(p.ws(rest)); err == nil {
		items = append(items, last)
		rest = next
	} else if !isSoft(err) {
		return in, nil, err
	}

	return rest, &ast.TupleExpr{Span: in.SpanTo(rest), Items: items}, nil
}

// ecase = 'case' ws expr (ws arm)* ws 'end'
//
// There is no commit after 'case': a malformed arm list or a missing 'end'
// fails the whole construct softly.
func (p *parser) ecase(in Input) (Input, ast.Expr, error) {
	defer p.group("case")()

	rest, err := p.keyword(in, "case")
	if err != nil {
		return in, nil, err
	}
	rest, subject, err := p.expr(p.ws(rest))
	if err != nil {
		return in, nil, err
	}

	var arms []*ast.Arm
	for {
		next, arm, err := p.arm(p.ws(rest))
		if err != nil {
			if isSoft(err) {
				break
			}
			return in, nil, err
		}
		arms = append(arms, arm)
		rest = next
	}

	rest, err = p.keyword(p.ws(rest), "end")
	if err != nil {
		return in, nil, err
	}

	return rest, &ast.CaseExpr{
		Span:    in.SpanTo(rest),
		Subject: subject,
		Arms:    arms,
	}, nil
}

// arm = 'of' ws pattern ws '=' ws expr
func (p *parser) arm(in Input) (Input, *ast.Arm, error) {
	defer p.within("case arm")()

	rest, err := p.keyword(in, "of")
	if err != nil {
		return in, nil, err
	}
	rest, pat, err := p.pattern(p.ws(rest))
	if err != nil {
		return in, nil, err
	}
	rest, err = p.punct(rest, "=")
	if err != nil {
		return in, nil, err
	}
	rest, body, err := p.expr(rest)
	if err != nil {
		return in, nil, err
	}

	return rest, &ast.Arm{Span: in.SpanTo(rest), Pattern: pat, Expr: body}, nil
}

// edo = '{' ws (statement ws ';' ws)* expr? ws '}'
//
// Like case, a block does not commit after '{'.
func (p *parser) edo(in Input) (Input, ast.Expr, error) {
	defer p.group("block")()

	rest, err := p.lit(in, "{")
	if err != nil {
		return in, nil, err
	}
	rest = p.ws(rest)

	var stmts []ast.Stmt
	for {
		next, stmt, err := p.statement(rest)
		if err != nil {
			if isSoft(err) {
				break
			}
			return in, nil, err
		}
		next, err = p.punct(next, ";")
		if err != nil {
			break
		}
		stmts = append(stmts, stmt)
		rest = next
	}

	var tail ast.Expr
	if next, e, err := p.expr(rest); err == nil {
		tail = e
		rest = next
	} else if !isSoft(err) {
		return in, nil, err
	}

	rest, err = p.lit(p.ws(rest), "}")
	if err != nil {
		return in, nil, err
	}

	return rest, &ast.DoExpr{
		Span:       in.SpanTo(rest),
		Statements: stmts,
		Tail:       tail,
	}, nil
}

// efn = ident ws efn | ident ws '->' ws expr
//
// Curried parameters nest to the right: `x y -> e` is Fn(x, Fn(y, e)),
// each level spanning from its own parameter to the end of the body.
func (p *parser) efn(in Input) (Input, ast.Expr, error) {
	if err := p.enter(in); err != nil {
		return in, nil, err
	}
	defer p.leave()
	defer p.within("function literal")()

	return alt(in, p.efnCurried, p.efnBody)
}

func (p *parser) efnCurried(in Input) (Input, ast.Expr, error) {
	rest, param, err := p.ident(in)
	if err != nil {
		return in, nil, err
	}
	rest, body, err := p.efn(p.ws(rest))
	if err != nil {
		return in, nil, err
	}
	return rest, &ast.FnExpr{Span: in.SpanTo(rest), Param: param, Body: body}, nil
}

func (p *parser) efnBody(in Input) (Input, ast.Expr, error) {
	rest, param, err := p.ident(in)
	if err != nil {
		return in, nil, err
	}
	rest, err = p.punct(rest, "->")
	if err != nil {
		return in, nil, err
	}
	rest, body, err := p.expr(rest)
	if err != nil {
		return in, nil, err
	}
	return rest, &ast.FnExpr{Span: in.SpanTo(rest), Param: param, Body: body}, nil
}
