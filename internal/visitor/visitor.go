// Package visitor implements a generic, recursive tree visitor over
// internal/hir: a Visitor[R] interface with one method per concrete node
// type, a Base[R] embeddable default implementation that performs the
// standard child-visit traversal, and Walk as a convenience entry point.
package visitor

import "github.com/rlc-lang/rlc/internal/hir"

// Visitor dispatches over every concrete hir node type, returning a value of
// type R. Embed Base[R] to get a full default traversal and override only
// the node kinds a concrete visitor cares about.
type Visitor[R any] interface {
	// Items
	VisitFunctionItem(*hir.FunctionItem) R
	VisitStructItem(*hir.StructItem) R
	VisitEnumItem(*hir.EnumItem) R
	VisitConstItem(*hir.ConstItem) R
	VisitTraitItem(*hir.TraitItem) R
	VisitTraitImplItem(*hir.TraitImplItem) R
	VisitInherentImplItem(*hir.InherentImplItem) R

	// Statements
	VisitLetStmt(*hir.LetStmt) R
	VisitExprStmt(*hir.ExprStmt) R
	VisitItemStmt(*hir.ItemStmt) R
	VisitEmptyStmt(*hir.EmptyStmt) R

	// Expressions
	VisitBlockExprNode(*hir.BlockExpr) R
	VisitUnaryExpr(*hir.UnaryExpr) R
	VisitBinaryExpr(*hir.BinaryExpr) R
	VisitAssignExpr(*hir.AssignExpr) R
	VisitIfExpr(*hir.IfExpr) R
	VisitCallExpr(*hir.CallExpr) R
	VisitCastExpr(*hir.CastExpr) R
	VisitPathExpr(*hir.PathExpr) R
	VisitGroupedExpr(*hir.GroupedExpr) R
	VisitArrayInitExpr(*hir.ArrayInitExpr) R
	VisitArrayRepeatExpr(*hir.ArrayRepeatExpr) R
	VisitIndexExpr(*hir.IndexExpr) R
	VisitStructExpr(*hir.StructExpr) R
	VisitMethodCallExpr(*hir.MethodCallExpr) R
	VisitFieldAccessExpr(*hir.FieldAccessExpr) R
	VisitLoopExpr(*hir.LoopExpr) R
	VisitWhileExpr(*hir.WhileExpr) R
	VisitReturnExpr(*hir.ReturnExpr) R
	VisitBreakExpr(*hir.BreakExpr) R
	VisitContinueExpr(*hir.ContinueExpr) R
	VisitIntegerLiteralExpr(*hir.IntegerLiteralExpr) R
	VisitBoolLiteralExpr(*hir.BoolLiteralExpr) R
	VisitCharLiteralExpr(*hir.CharLiteralExpr) R
	VisitStringLiteralExpr(*hir.StringLiteralExpr) R
	VisitUnderscoreExpr(*hir.UnderscoreExpr) R

	// Patterns
	VisitLiteralPattern(*hir.LiteralPattern) R
	VisitIdentifierPattern(*hir.IdentifierPattern) R
	VisitReferencePattern(*hir.ReferencePattern) R
	VisitPathPattern(*hir.PathPattern) R
	VisitWildcardPattern(*hir.WildcardPattern) R

	// Types
	VisitPathType(*hir.PathType) R
	VisitArrayType(*hir.ArrayType) R
	VisitReferenceType(*hir.ReferenceType) R
	VisitPrimitiveType(*hir.PrimitiveType) R
	VisitUnitType(*hir.UnitType) R

	// Dispatch entry points: type-switch the category interface to the
	// concrete node type and call the matching VisitX above.
	VisitItem(hir.Item) R
	VisitStmt(hir.Stmt) R
	VisitExpr(hir.Expr) R
	VisitPattern(hir.Pattern) R
	VisitType(hir.Type) R
	VisitBlock(*hir.BlockExpr) R
}

// Walk is a convenience entry point for visiting a single top-level item.
func Walk[R any](v Visitor[R], root hir.Item) R {
	return v.VisitItem(root)
}

// VisitOptionalItem visits opt if non-nil, returning (result, true); it
// returns the zero value and false when opt is nil.
func VisitOptionalItem[R any](v Visitor[R], opt hir.Item) (r R, ok bool) {
	if opt == nil {
		return r, false
	}
	return v.VisitItem(opt), true
}

// VisitOptionalStmt is VisitOptionalItem's counterpart for statements.
func VisitOptionalStmt[R any](v Visitor[R], opt hir.Stmt) (r R, ok bool) {
	if opt == nil {
		return r, false
	}
	return v.VisitStmt(opt), true
}

// VisitOptionalExpr is VisitOptionalItem's counterpart for expressions.
func VisitOptionalExpr[R any](v Visitor[R], opt hir.Expr) (r R, ok bool) {
	if opt == nil {
		return r, false
	}
	return v.VisitExpr(opt), true
}

// VisitOptionalPattern is VisitOptionalItem's counterpart for patterns.
func VisitOptionalPattern[R any](v Visitor[R], opt hir.Pattern) (r R, ok bool) {
	if opt == nil {
		return r, false
	}
	return v.VisitPattern(opt), true
}

// VisitOptionalType is VisitOptionalItem's counterpart for surface types.
func VisitOptionalType[R any](v Visitor[R], opt hir.Type) (r R, ok bool) {
	if opt == nil {
		return r, false
	}
	return v.VisitType(opt), true
}

// VisitOptionalBlock is VisitOptionalItem's counterpart for block
// expressions, whose category root is a concrete pointer type rather than an
// interface.
func VisitOptionalBlock[R any](v Visitor[R], opt *hir.BlockExpr) (r R, ok bool) {
	if opt == nil {
		return r, false
	}
	return v.VisitBlock(opt), true
}
