package visitor

import "github.com/rlc-lang/rlc/internal/hir"

// Base is an embeddable default Visitor[R] implementation providing the
// standard recursive traversal. A concrete visitor embeds Base[R] and sets
// Self to itself so that overridden VisitX methods are still reached when
// Base recurses into children:
//
//	type Counter struct{ visitor.Base[int] }
//	c := &Counter{}
//	c.Self = c
//
// Every default VisitX method returns the zero value of R; override the
// ones a concrete visitor cares about.
type Base[R any] struct {
	// Self is consulted by every recursive call so overrides in an
	// embedding visitor are honored. It must be set to the embedding
	// visitor itself before use; Base falls back to itself when nil.
	Self Visitor[R]
}

func (b *Base[R]) self() Visitor[R] {
	if b.Self != nil {
		return b.Self
	}
	return b
}

// --- Dispatch entry points ---

func (b *Base[R]) VisitItem(item hir.Item) R {
	switch n := item.(type) {
	case *hir.FunctionItem:
		return b.self().VisitFunctionItem(n)
	case *hir.StructItem:
		return b.self().VisitStructItem(n)
	case *hir.EnumItem:
		return b.self().VisitEnumItem(n)
	case *hir.ConstItem:
		return b.self().VisitConstItem(n)
	case *hir.TraitItem:
		return b.self().VisitTraitItem(n)
	case *hir.TraitImplItem:
		return b.self().VisitTraitImplItem(n)
	case *hir.InherentImplItem:
		return b.self().VisitInherentImplItem(n)
	default:
		panic("visitor: unhandled Item concrete type")
	}
}

func (b *Base[R]) VisitStmt(stmt hir.Stmt) R {
	switch n := stmt.(type) {
	case *hir.LetStmt:
		return b.self().VisitLetStmt(n)
	case *hir.ExprStmt:
		return b.self().VisitExprStmt(n)
	case *hir.ItemStmt:
		return b.self().VisitItemStmt(n)
	case *hir.EmptyStmt:
		return b.self().VisitEmptyStmt(n)
	default:
		panic("visitor: unhandled Stmt concrete type")
	}
}

func (b *Base[R]) VisitExpr(expr hir.Expr) R {
	switch n := expr.(type) {
	case *hir.BlockExpr:
		return b.self().VisitBlockExprNode(n)
	case *hir.UnaryExpr:
		return b.self().VisitUnaryExpr(n)
	case *hir.BinaryExpr:
		return b.self().VisitBinaryExpr(n)
	case *hir.AssignExpr:
		return b.self().VisitAssignExpr(n)
	case *hir.IfExpr:
		return b.self().VisitIfExpr(n)
	case *hir.CallExpr:
		return b.self().VisitCallExpr(n)
	case *hir.CastExpr:
		return b.self().VisitCastExpr(n)
	case *hir.PathExpr:
		return b.self().VisitPathExpr(n)
	case *hir.GroupedExpr:
		return b.self().VisitGroupedExpr(n)
	case *hir.ArrayInitExpr:
		return b.self().VisitArrayInitExpr(n)
	case *hir.ArrayRepeatExpr:
		return b.self().VisitArrayRepeatExpr(n)
	case *hir.IndexExpr:
		return b.self().VisitIndexExpr(n)
	case *hir.StructExpr:
		return b.self().VisitStructExpr(n)
	case *hir.MethodCallExpr:
		return b.self().VisitMethodCallExpr(n)
	case *hir.FieldAccessExpr:
		return b.self().VisitFieldAccessExpr(n)
	case *hir.LoopExpr:
		return b.self().VisitLoopExpr(n)
	case *hir.WhileExpr:
		return b.self().VisitWhileExpr(n)
	case *hir.ReturnExpr:
		return b.self().VisitReturnExpr(n)
	case *hir.BreakExpr:
		return b.self().VisitBreakExpr(n)
	case *hir.ContinueExpr:
		return b.self().VisitContinueExpr(n)
	case *hir.IntegerLiteralExpr:
		return b.self().VisitIntegerLiteralExpr(n)
	case *hir.BoolLiteralExpr:
		return b.self().VisitBoolLiteralExpr(n)
	case *hir.CharLiteralExpr:
		return b.self().VisitCharLiteralExpr(n)
	case *hir.StringLiteralExpr:
		return b.self().VisitStringLiteralExpr(n)
	case *hir.UnderscoreExpr:
		return b.self().VisitUnderscoreExpr(n)
	default:
		panic("visitor: unhandled Expr concrete type")
	}
}

func (b *Base[R]) VisitPattern(pattern hir.Pattern) R {
	switch n := pattern.(type) {
	case *hir.LiteralPattern:
		return b.self().VisitLiteralPattern(n)
	case *hir.IdentifierPattern:
		return b.self().VisitIdentifierPattern(n)
	case *hir.ReferencePattern:
		return b.self().VisitReferencePattern(n)
	case *hir.PathPattern:
		return b.self().VisitPathPattern(n)
	case *hir.WildcardPattern:
		return b.self().VisitWildcardPattern(n)
	default:
		panic("visitor: unhandled Pattern concrete type")
	}
}

func (b *Base[R]) VisitType(typ hir.Type) R {
	switch n := typ.(type) {
	case *hir.PathType:
		return b.self().VisitPathType(n)
	case *hir.ArrayType:
		return b.self().VisitArrayType(n)
	case *hir.ReferenceType:
		return b.self().VisitReferenceType(n)
	case *hir.PrimitiveType:
		return b.self().VisitPrimitiveType(n)
	case *hir.UnitType:
		return b.self().VisitUnitType(n)
	default:
		panic("visitor: unhandled Type concrete type")
	}
}

func (b *Base[R]) VisitBlock(block *hir.BlockExpr) R {
	return b.self().VisitBlockExprNode(block)
}

// --- Items ---

func (b *Base[R]) VisitFunctionItem(n *hir.FunctionItem) R {
	self := b.self()
	for _, p := range n.Params {
		self.VisitPattern(p.Pattern)
		self.VisitType(p.Type)
	}
	self.VisitType(n.ReturnType)
	self.VisitBlock(n.Body)
	var zero R
	return zero
}

func (b *Base[R]) VisitStructItem(n *hir.StructItem) R {
	self := b.self()
	for _, f := range n.Fields {
		self.VisitType(f.Type)
	}
	var zero R
	return zero
}

func (b *Base[R]) VisitEnumItem(n *hir.EnumItem) R {
	var zero R
	return zero
}

func (b *Base[R]) VisitConstItem(n *hir.ConstItem) R {
	self := b.self()
	self.VisitType(n.Type)
	self.VisitExpr(n.Value)
	var zero R
	return zero
}

func (b *Base[R]) VisitTraitItem(n *hir.TraitItem) R {
	self := b.self()
	for _, sub := range n.Items {
		self.VisitItem(sub)
	}
	var zero R
	return zero
}

func (b *Base[R]) VisitTraitImplItem(n *hir.TraitImplItem) R {
	self := b.self()
	self.VisitType(n.ForType)
	for _, sub := range n.Items {
		self.VisitItem(sub)
	}
	var zero R
	return zero
}

func (b *Base[R]) VisitInherentImplItem(n *hir.InherentImplItem) R {
	self := b.self()
	self.VisitType(n.ForType)
	for _, sub := range n.Items {
		self.VisitItem(sub)
	}
	var zero R
	return zero
}

// --- Statements ---

func (b *Base[R]) VisitLetStmt(n *hir.LetStmt) R {
	self := b.self()
	self.VisitPattern(n.Pattern)
	if n.Type != nil {
		self.VisitType(n.Type)
	}
	self.VisitExpr(n.Init)
	var zero R
	return zero
}

func (b *Base[R]) VisitExprStmt(n *hir.ExprStmt) R {
	b.self().VisitExpr(n.Expr)
	var zero R
	return zero
}

func (b *Base[R]) VisitItemStmt(n *hir.ItemStmt) R {
	b.self().VisitItem(n.Item)
	var zero R
	return zero
}

func (b *Base[R]) VisitEmptyStmt(n *hir.EmptyStmt) R {
	var zero R
	return zero
}

// --- Expressions ---

func (b *Base[R]) VisitBlockExprNode(n *hir.BlockExpr) R {
	self := b.self()
	for _, s := range n.Stmts {
		self.VisitStmt(s)
	}
	if n.Tail != nil {
		self.VisitExpr(n.Tail)
	}
	var zero R
	return zero
}

func (b *Base[R]) VisitUnaryExpr(n *hir.UnaryExpr) R {
	b.self().VisitExpr(n.Operand)
	var zero R
	return zero
}

func (b *Base[R]) VisitBinaryExpr(n *hir.BinaryExpr) R {
	self := b.self()
	self.VisitExpr(n.Left)
	self.VisitExpr(n.Right)
	var zero R
	return zero
}

func (b *Base[R]) VisitAssignExpr(n *hir.AssignExpr) R {
	self := b.self()
	self.VisitExpr(n.Target)
	self.VisitExpr(n.Value)
	var zero R
	return zero
}

func (b *Base[R]) VisitIfExpr(n *hir.IfExpr) R {
	self := b.self()
	self.VisitExpr(n.Cond)
	self.VisitBlock(n.Then)
	if n.Else != nil {
		self.VisitExpr(n.Else)
	}
	var zero R
	return zero
}

func (b *Base[R]) VisitCallExpr(n *hir.CallExpr) R {
	self := b.self()
	self.VisitExpr(n.Callee)
	for _, arg := range n.Args {
		self.VisitExpr(arg)
	}
	var zero R
	return zero
}

func (b *Base[R]) VisitCastExpr(n *hir.CastExpr) R {
	self := b.self()
	self.VisitExpr(n.Operand)
	self.VisitType(n.Target)
	var zero R
	return zero
}

func (b *Base[R]) VisitPathExpr(n *hir.PathExpr) R {
	var zero R
	return zero
}

func (b *Base[R]) VisitGroupedExpr(n *hir.GroupedExpr) R {
	b.self().VisitExpr(n.Inner)
	var zero R
	return zero
}

func (b *Base[R]) VisitArrayInitExpr(n *hir.ArrayInitExpr) R {
	self := b.self()
	for _, e := range n.Elements {
		self.VisitExpr(e)
	}
	var zero R
	return zero
}

func (b *Base[R]) VisitArrayRepeatExpr(n *hir.ArrayRepeatExpr) R {
	self := b.self()
	self.VisitExpr(n.Value)
	self.VisitExpr(n.Count)
	var zero R
	return zero
}

func (b *Base[R]) VisitIndexExpr(n *hir.IndexExpr) R {
	self := b.self()
	self.VisitExpr(n.Base)
	self.VisitExpr(n.Index)
	var zero R
	return zero
}

func (b *Base[R]) VisitStructExpr(n *hir.StructExpr) R {
	self := b.self()
	for _, f := range n.Fields {
		self.VisitExpr(f.Value)
	}
	var zero R
	return zero
}

func (b *Base[R]) VisitMethodCallExpr(n *hir.MethodCallExpr) R {
	self := b.self()
	self.VisitExpr(n.Receiver)
	for _, arg := range n.Args {
		self.VisitExpr(arg)
	}
	var zero R
	return zero
}

func (b *Base[R]) VisitFieldAccessExpr(n *hir.FieldAccessExpr) R {
	b.self().VisitExpr(n.Base)
	var zero R
	return zero
}

func (b *Base[R]) VisitLoopExpr(n *hir.LoopExpr) R {
	b.self().VisitBlock(n.Body)
	var zero R
	return zero
}

func (b *Base[R]) VisitWhileExpr(n *hir.WhileExpr) R {
	self := b.self()
	self.VisitExpr(n.Cond)
	self.VisitBlock(n.Body)
	var zero R
	return zero
}

func (b *Base[R]) VisitReturnExpr(n *hir.ReturnExpr) R {
	if n.Value != nil {
		b.self().VisitExpr(n.Value)
	}
	var zero R
	return zero
}

func (b *Base[R]) VisitBreakExpr(n *hir.BreakExpr) R {
	if n.Value != nil {
		b.self().VisitExpr(n.Value)
	}
	var zero R
	return zero
}

func (b *Base[R]) VisitContinueExpr(n *hir.ContinueExpr) R {
	var zero R
	return zero
}

func (b *Base[R]) VisitIntegerLiteralExpr(n *hir.IntegerLiteralExpr) R {
	var zero R
	return zero
}

func (b *Base[R]) VisitBoolLiteralExpr(n *hir.BoolLiteralExpr) R {
	var zero R
	return zero
}

func (b *Base[R]) VisitCharLiteralExpr(n *hir.CharLiteralExpr) R {
	var zero R
	return zero
}

func (b *Base[R]) VisitStringLiteralExpr(n *hir.StringLiteralExpr) R {
	var zero R
	return zero
}

func (b *Base[R]) VisitUnderscoreExpr(n *hir.UnderscoreExpr) R {
	var zero R
	return zero
}

// --- Patterns ---

func (b *Base[R]) VisitLiteralPattern(n *hir.LiteralPattern) R {
	b.self().VisitExpr(n.Literal)
	var zero R
	return zero
}

func (b *Base[R]) VisitIdentifierPattern(n *hir.IdentifierPattern) R {
	var zero R
	return zero
}

func (b *Base[R]) VisitReferencePattern(n *hir.ReferencePattern) R {
	b.self().VisitPattern(n.Inner)
	var zero R
	return zero
}

func (b *Base[R]) VisitPathPattern(n *hir.PathPattern) R {
	var zero R
	return zero
}

func (b *Base[R]) VisitWildcardPattern(n *hir.WildcardPattern) R {
	var zero R
	return zero
}

// --- Types ---

func (b *Base[R]) VisitPathType(n *hir.PathType) R {
	var zero R
	return zero
}

func (b *Base[R]) VisitArrayType(n *hir.ArrayType) R {
	self := b.self()
	self.VisitType(n.Element)
	self.VisitExpr(n.Length)
	var zero R
	return zero
}

func (b *Base[R]) VisitReferenceType(n *hir.ReferenceType) R {
	b.self().VisitType(n.Referent)
	var zero R
	return zero
}

func (b *Base[R]) VisitPrimitiveType(n *hir.PrimitiveType) R {
	var zero R
	return zero
}

func (b *Base[R]) VisitUnitType(n *hir.UnitType) R {
	var zero R
	return zero
}
