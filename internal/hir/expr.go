package hir

import "github.com/rlc-lang/rlc/internal/span"

// UnaryOp enumerates the prefix unary operators.
type UnaryOp int

const (
	UnaryNeg UnaryOp = iota
	UnaryNot
	UnaryRef
	UnaryRefMut
	UnaryDeref
)

// BinaryOp enumerates the infix binary operators.
type BinaryOp int

const (
	BinAdd BinaryOp = iota
	BinSub
	BinMul
	BinDiv
	BinRem
	BinEq
	BinNe
	BinLt
	BinLe
	BinGt
	BinGe
	BinAnd
	BinOr
)

// AssignOp enumerates the assignment operators, including compound forms.
type AssignOp int

const (
	AssignPlain AssignOp = iota
	AssignAdd
	AssignSub
	AssignMul
	AssignDiv
	AssignRem
)

// BlockExpr is a brace-delimited sequence of statements followed by an
// optional tail expression. Function bodies, if/loop/while bodies all use
// this node.
type BlockExpr struct {
	Stmts []Stmt
	Tail  Expr // optional, nil when the block has no tail expression
	span  span.Span
}

func NewBlockExpr(stmts []Stmt, tail Expr, sp span.Span) *BlockExpr {
	return &BlockExpr{Stmts: stmts, Tail: tail, span: sp}
}

func (n *BlockExpr) Span() span.Span { return n.span }
func (n *BlockExpr) exprNode()       {}

// UnaryExpr applies a prefix unary operator to an operand.
type UnaryExpr struct {
	Op      UnaryOp
	Operand Expr // required
	span    span.Span
}

func NewUnaryExpr(op UnaryOp, operand Expr, sp span.Span) *UnaryExpr {
	return &UnaryExpr{Op: op, Operand: operand, span: sp}
}

func (n *UnaryExpr) Span() span.Span { return n.span }
func (n *UnaryExpr) exprNode()       {}

// BinaryExpr applies an infix binary operator to two operands.
type BinaryExpr struct {
	Op    BinaryOp
	Left  Expr // required
	Right Expr // required
	span  span.Span
}

func NewBinaryExpr(op BinaryOp, left, right Expr, sp span.Span) *BinaryExpr {
	return &BinaryExpr{Op: op, Left: left, Right: right, span: sp}
}

func (n *BinaryExpr) Span() span.Span { return n.span }
func (n *BinaryExpr) exprNode()       {}

// AssignExpr assigns (or compound-assigns) a value to a place expression.
type AssignExpr struct {
	Op     AssignOp
	Target Expr // required, a place expression
	Value  Expr // required
	span   span.Span
}

func NewAssignExpr(op AssignOp, target, value Expr, sp span.Span) *AssignExpr {
	return &AssignExpr{Op: op, Target: target, Value: value, span: sp}
}

func (n *AssignExpr) Span() span.Span { return n.span }
func (n *AssignExpr) exprNode()       {}

// IfExpr is a conditional expression with an optional else branch. Without an
// else branch the expression's type is unit.
type IfExpr struct {
	Cond Expr       // required
	Then *BlockExpr // required
	Else Expr       // optional: nil, *BlockExpr, or *IfExpr (else-if chain)
	span span.Span
}

func NewIfExpr(cond Expr, then *BlockExpr, els Expr, sp span.Span) *IfExpr {
	return &IfExpr{Cond: cond, Then: then, Else: els, span: sp}
}

func (n *IfExpr) Span() span.Span { return n.span }
func (n *IfExpr) exprNode()       {}

// CallExpr invokes a callee expression with a list of argument expressions.
type CallExpr struct {
	Callee Expr // required
	Args   []Expr
	span   span.Span
}

func NewCallExpr(callee Expr, args []Expr, sp span.Span) *CallExpr {
	return &CallExpr{Callee: callee, Args: args, span: sp}
}

func (n *CallExpr) Span() span.Span { return n.span }
func (n *CallExpr) exprNode()       {}

// CastExpr reinterprets an expression as a target surface type (`as`).
type CastExpr struct {
	Operand Expr // required
	Target  Type // required
	span    span.Span
}

func NewCastExpr(operand Expr, target Type, sp span.Span) *CastExpr {
	return &CastExpr{Operand: operand, Target: target, span: sp}
}

func (n *CastExpr) Span() span.Span { return n.span }
func (n *CastExpr) exprNode()       {}

// PathExpr refers to a named entity (variable, function, const, or
// qualified item path) by its dotted/colon segments.
type PathExpr struct {
	Segments []string
	span     span.Span
}

func NewPathExpr(segments []string, sp span.Span) *PathExpr {
	return &PathExpr{Segments: segments, span: sp}
}

func (n *PathExpr) Span() span.Span { return n.span }
func (n *PathExpr) exprNode()       {}

// GroupedExpr is a parenthesized sub-expression, retained so span
// information for the parentheses is not lost.
type GroupedExpr struct {
	Inner Expr // required
	span  span.Span
}

func NewGroupedExpr(inner Expr, sp span.Span) *GroupedExpr {
	return &GroupedExpr{Inner: inner, span: sp}
}

func (n *GroupedExpr) Span() span.Span { return n.span }
func (n *GroupedExpr) exprNode()       {}

// ArrayInitExpr constructs an array from an explicit element list.
type ArrayInitExpr struct {
	Elements []Expr
	span     span.Span
}

func NewArrayInitExpr(elements []Expr, sp span.Span) *ArrayInitExpr {
	return &ArrayInitExpr{Elements: elements, span: sp}
}

func (n *ArrayInitExpr) Span() span.Span { return n.span }
func (n *ArrayInitExpr) exprNode()       {}

// ArrayRepeatExpr constructs an array by repeating a value expression a
// constant number of times (`[value; count]`).
type ArrayRepeatExpr struct {
	Value Expr // required
	Count Expr // required, must fold to a constant
	span  span.Span
}

func NewArrayRepeatExpr(value, count Expr, sp span.Span) *ArrayRepeatExpr {
	return &ArrayRepeatExpr{Value: value, Count: count, span: sp}
}

func (n *ArrayRepeatExpr) Span() span.Span { return n.span }
func (n *ArrayRepeatExpr) exprNode()       {}

// IndexExpr indexes into an array-typed expression.
type IndexExpr struct {
	Base  Expr // required
	Index Expr // required
	span  span.Span
}

func NewIndexExpr(base, index Expr, sp span.Span) *IndexExpr {
	return &IndexExpr{Base: base, Index: index, span: sp}
}

func (n *IndexExpr) Span() span.Span { return n.span }
func (n *IndexExpr) exprNode()       {}

// StructFieldInit is a single `name: value` pair within a StructExpr.
type StructFieldInit struct {
	Name  string
	Value Expr // required
}

// StructExpr constructs a struct value by naming its type and initializing
// every field.
type StructExpr struct {
	TypeName string
	Fields   []StructFieldInit
	span     span.Span
}

func NewStructExpr(typeName string, fields []StructFieldInit, sp span.Span) *StructExpr {
	return &StructExpr{TypeName: typeName, Fields: fields, span: sp}
}

func (n *StructExpr) Span() span.Span { return n.span }
func (n *StructExpr) exprNode()       {}

// MethodCallExpr invokes a named method on a receiver expression.
type MethodCallExpr struct {
	Receiver Expr // required
	Method   string
	Args     []Expr
	span     span.Span
}

func NewMethodCallExpr(receiver Expr, method string, args []Expr, sp span.Span) *MethodCallExpr {
	return &MethodCallExpr{Receiver: receiver, Method: method, Args: args, span: sp}
}

func (n *MethodCallExpr) Span() span.Span { return n.span }
func (n *MethodCallExpr) exprNode()       {}

// FieldAccessExpr projects a named field out of a struct-typed expression.
type FieldAccessExpr struct {
	Base  Expr // required
	Field string
	span  span.Span
}

func NewFieldAccessExpr(base Expr, field string, sp span.Span) *FieldAccessExpr {
	return &FieldAccessExpr{Base: base, Field: field, span: sp}
}

func (n *FieldAccessExpr) Span() span.Span { return n.span }
func (n *FieldAccessExpr) exprNode()       {}

// LoopExpr is an unconditional loop, exited only via break/return.
type LoopExpr struct {
	Body *BlockExpr // required
	span span.Span
}

func NewLoopExpr(body *BlockExpr, sp span.Span) *LoopExpr {
	return &LoopExpr{Body: body, span: sp}
}

func (n *LoopExpr) Span() span.Span { return n.span }
func (n *LoopExpr) exprNode()       {}

// WhileExpr is a condition-guarded loop.
type WhileExpr struct {
	Cond Expr       // required
	Body *BlockExpr // required
	span span.Span
}

func NewWhileExpr(cond Expr, body *BlockExpr, sp span.Span) *WhileExpr {
	return &WhileExpr{Cond: cond, Body: body, span: sp}
}

func (n *WhileExpr) Span() span.Span { return n.span }
func (n *WhileExpr) exprNode()       {}

// ReturnExpr returns from the enclosing function, with an optional value.
type ReturnExpr struct {
	Value Expr // optional, nil for a bare return
	span  span.Span
}

func NewReturnExpr(value Expr, sp span.Span) *ReturnExpr {
	return &ReturnExpr{Value: value, span: sp}
}

func (n *ReturnExpr) Span() span.Span { return n.span }
func (n *ReturnExpr) exprNode()       {}

// BreakExpr exits the nearest enclosing loop, with an optional value.
type BreakExpr struct {
	Value Expr // optional
	span  span.Span
}

func NewBreakExpr(value Expr, sp span.Span) *BreakExpr {
	return &BreakExpr{Value: value, span: sp}
}

func (n *BreakExpr) Span() span.Span { return n.span }
func (n *BreakExpr) exprNode()       {}

// ContinueExpr jumps to the next iteration of the nearest enclosing loop.
type ContinueExpr struct {
	span span.Span
}

func NewContinueExpr(sp span.Span) *ContinueExpr {
	return &ContinueExpr{span: sp}
}

func (n *ContinueExpr) Span() span.Span { return n.span }
func (n *ContinueExpr) exprNode()       {}

// IntegerLiteralExpr is an integer literal with its exact textual digits
// preserved so later coercion can choose a concrete signedness/width.
type IntegerLiteralExpr struct {
	Text string
	span span.Span
}

func NewIntegerLiteralExpr(text string, sp span.Span) *IntegerLiteralExpr {
	return &IntegerLiteralExpr{Text: text, span: sp}
}

func (n *IntegerLiteralExpr) Span() span.Span { return n.span }
func (n *IntegerLiteralExpr) exprNode()       {}

// BoolLiteralExpr is a `true`/`false` literal.
type BoolLiteralExpr struct {
	Value bool
	span  span.Span
}

func NewBoolLiteralExpr(value bool, sp span.Span) *BoolLiteralExpr {
	return &BoolLiteralExpr{Value: value, span: sp}
}

func (n *BoolLiteralExpr) Span() span.Span { return n.span }
func (n *BoolLiteralExpr) exprNode()       {}

// CharLiteralExpr is a single-character literal, already escape-resolved.
type CharLiteralExpr struct {
	Value rune
	span  span.Span
}

func NewCharLiteralExpr(value rune, sp span.Span) *CharLiteralExpr {
	return &CharLiteralExpr{Value: value, span: sp}
}

func (n *CharLiteralExpr) Span() span.Span { return n.span }
func (n *CharLiteralExpr) exprNode()       {}

// StringLiteralExpr is a string literal, already escape-resolved.
type StringLiteralExpr struct {
	Value string
	span  span.Span
}

func NewStringLiteralExpr(value string, sp span.Span) *StringLiteralExpr {
	return &StringLiteralExpr{Value: value, span: sp}
}

func (n *StringLiteralExpr) Span() span.Span { return n.span }
func (n *StringLiteralExpr) exprNode()       {}

// UnderscoreExpr is the `_` placeholder expression, valid only as an
// assignment target meaning "discard".
type UnderscoreExpr struct {
	span span.Span
}

func NewUnderscoreExpr(sp span.Span) *UnderscoreExpr {
	return &UnderscoreExpr{span: sp}
}

func (n *UnderscoreExpr) Span() span.Span { return n.span }
func (n *UnderscoreExpr) exprNode()       {}
