package ast

type Node interface {
	NodeSpan() Span
	NodeType() NodeType
}

func (e *IntExpr) NodeSpan() Span   { return e.Span }
func (*IntExpr) NodeType() NodeType { return INT_EXPR }

func (e *TagExpr) NodeSpan() Span   { return e.Span }
func (*TagExpr) NodeType() NodeType { return TAG_EXPR }

func (e *IdentExpr) NodeSpan() Span   { return e.Span }
func (*IdentExpr) NodeType() NodeType { return IDENT_EXPR }

func (e *TupleExpr) NodeSpan() Span   { return e.Span }
func (*TupleExpr) NodeType() NodeType { return TUPLE_EXPR }

func (e *ParenExpr) NodeSpan() Span   { return e.Span }
func (*ParenExpr) NodeType() NodeType { return PAREN_EXPR }

func (e *FnExpr) NodeSpan() Span   { return e.Span }
func (*FnExpr) NodeType() NodeType { return FN_EXPR }

func (e *AppExpr) NodeSpan() Span   { return e.Span }
func (*AppExpr) NodeType() NodeType { return APP_EXPR }

func (e *CaseExpr) NodeSpan() Span   { return e.Span }
func (*CaseExpr) NodeType() NodeType { return CASE_EXPR }

func (e *DoExpr) NodeSpan() Span   { return e.Span }
func (*DoExpr) NodeType() NodeType { return DO_EXPR }

func (e *ExpandExpr) NodeSpan() Span   { return e.Ellipsis.Span }
func (*ExpandExpr) NodeType() NodeType { return EXPAND_EXPR }

func (p *IntPattern) NodeSpan() Span   { return p.Span }
func (*IntPattern) NodeType() NodeType { return INT_PATTERN }

func (p *TagPattern) NodeSpan() Span   { return p.Span }
func (*TagPattern) NodeType() NodeType { return TAG_PATTERN }

func (p *IdentPattern) NodeSpan() Span   { return p.Span }
func (*IdentPattern) NodeType() NodeType { return IDENT_PATTERN }

func (p *IgnorePattern) NodeSpan() Span   { return p.Span }
func (*IgnorePattern) NodeType() NodeType { return IGNORE_PATTERN }

func (p *TuplePattern) NodeSpan() Span   { return p.Span }
func (*TuplePattern) NodeType() NodeType { return TUPLE_PATTERN }

func (p *ParenPattern) NodeSpan() Span   { return p.Span }
func (*ParenPattern) NodeType() NodeType { return PAREN_PATTERN }

func (p *AppPattern) NodeSpan() Span   { return p.Span }
func (*AppPattern) NodeType() NodeType { return APP_PATTERN }

func (p *CollectPattern) NodeSpan() Span   { return p.Ellipsis.Span }
func (*CollectPattern) NodeType() NodeType { return COLLECT_PATTERN }

func (s *AssignStmt) NodeSpan() Span   { return s.Span }
func (*AssignStmt) NodeType() NodeType { return ASSIGN_STMT }

func (s *ExprStmt) NodeSpan() Span   { return s.Expr.NodeSpan() }
func (*ExprStmt) NodeType() NodeType { return EXPR_STMT }

func (a *Arm) NodeSpan() Span   { return a.Span }
func (*Arm) NodeType() NodeType { return ARM }
