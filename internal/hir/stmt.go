package hir

import "github.com/rlc-lang/rlc/internal/span"

// LetStmt binds a pattern to the value of an initializer expression, with an
// optional type annotation.
type LetStmt struct {
	Pattern Pattern // required
	Type    Type    // optional, nil when elided
	Init    Expr    // required
	span    span.Span
}

func NewLetStmt(pattern Pattern, typ Type, init Expr, sp span.Span) *LetStmt {
	return &LetStmt{Pattern: pattern, Type: typ, Init: init, span: sp}
}

func (n *LetStmt) Span() span.Span { return n.span }
func (n *LetStmt) stmtNode()       {}

// ExprStmt is an expression evaluated for its effect.
type ExprStmt struct {
	Expr Expr // required
	span span.Span
}

func NewExprStmt(expr Expr, sp span.Span) *ExprStmt {
	return &ExprStmt{Expr: expr, span: sp}
}

func (n *ExprStmt) Span() span.Span { return n.span }
func (n *ExprStmt) stmtNode()       {}

// ItemStmt is a nested item declaration appearing within a block.
type ItemStmt struct {
	Item Item // required
	span span.Span
}

func NewItemStmt(item Item, sp span.Span) *ItemStmt {
	return &ItemStmt{Item: item, span: sp}
}

func (n *ItemStmt) Span() span.Span { return n.span }
func (n *ItemStmt) stmtNode()       {}

// EmptyStmt is a bare statement-terminating semicolon.
type EmptyStmt struct {
	span span.Span
}

func NewEmptyStmt(sp span.Span) *EmptyStmt {
	return &EmptyStmt{span: sp}
}

func (n *EmptyStmt) Span() span.Span { return n.span }
func (n *EmptyStmt) stmtNode()       {}
