package parser

import "pebble/internal/ast"

// statement = assign | expr
//
// Assignment goes first: its left-hand pattern usually also reads as an
// expression prefix.
func (p *parser) statement(in Input) (Input, ast.Stmt, error) {
	return alt(in, p.assign, p.exprStmt)
}

// assign = pattern ws '=' ws expr
func (p *parser) assign(in Input) (Input, ast.Stmt, error) {
	defer p.within("assignment")()

	rest, pat, err := p.pattern(in)
	if err != nil {
		return in, nil, err
	}
	rest, err = p.punct(rest, "=")
	if err != nil {
		return in, nil, err
	}
	rest, value, err := p.expr(rest)
	if err != nil {
		return in, nil, err
	}
	return rest, &ast.AssignStmt{Span: in.SpanTo(rest), Pattern: pat, Expr: value}, nil
}

func (p *parser) exprStmt(in Input) (Input, ast.Stmt, error) {
	rest, e, err := p.expr(in)
	if err != nil {
		return in, nil, err
	}
	return rest, &ast.ExprStmt{Expr: e}, nil
}
