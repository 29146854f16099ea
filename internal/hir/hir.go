// Package hir defines the sum-typed abstract syntax / high-level IR tree
// produced by parsing and lowering: items, statements, expressions, patterns,
// and surface-syntax types. Every node carries a source span. Required child
// fields are guaranteed non-nil by the producer; optional child fields use
// the same (nilable) interface or pointer types and may be nil.
package hir

import "github.com/rlc-lang/rlc/internal/span"

// Node is implemented by every tree node.
type Node interface {
	Span() span.Span
}

// Item is a top-level or nested declaration.
type Item interface {
	Node
	itemNode()
}

// Stmt is a statement within a block.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is an expression.
type Expr interface {
	Node
	exprNode()
}

// Pattern is a binding pattern (let/match/function parameter).
type Pattern interface {
	Node
	patternNode()
}

// Type is a surface-syntax type annotation, distinct from types.Type (the
// interned semantic type).
type Type interface {
	Node
	typeNode()
}
