package hir

import "github.com/rlc-lang/rlc/internal/span"

// LiteralPattern matches a literal value exactly.
type LiteralPattern struct {
	Literal Expr // required: one of the *LiteralExpr node types
	span    span.Span
}

func NewLiteralPattern(literal Expr, sp span.Span) *LiteralPattern {
	return &LiteralPattern{Literal: literal, span: sp}
}

func (n *LiteralPattern) Span() span.Span { return n.span }
func (n *LiteralPattern) patternNode()    {}

// IdentifierPattern binds the matched value to a new name.
type IdentifierPattern struct {
	Name string
	Mut  bool
	span span.Span
}

func NewIdentifierPattern(name string, mut bool, sp span.Span) *IdentifierPattern {
	return &IdentifierPattern{Name: name, Mut: mut, span: sp}
}

func (n *IdentifierPattern) Span() span.Span { return n.span }
func (n *IdentifierPattern) patternNode()    {}

// ReferencePattern destructures a reference, binding its referent.
type ReferencePattern struct {
	Mut    bool
	Inner  Pattern // required
	span   span.Span
}

func NewReferencePattern(mut bool, inner Pattern, sp span.Span) *ReferencePattern {
	return &ReferencePattern{Mut: mut, Inner: inner, span: sp}
}

func (n *ReferencePattern) Span() span.Span { return n.span }
func (n *ReferencePattern) patternNode()    {}

// PathPattern matches a nominal value by a named path, e.g. a unit enum
// variant.
type PathPattern struct {
	Segments []string
	span     span.Span
}

func NewPathPattern(segments []string, sp span.Span) *PathPattern {
	return &PathPattern{Segments: segments, span: sp}
}

func (n *PathPattern) Span() span.Span { return n.span }
func (n *PathPattern) patternNode()    {}

// WildcardPattern matches any value without binding it (`_`).
type WildcardPattern struct {
	span span.Span
}

func NewWildcardPattern(sp span.Span) *WildcardPattern {
	return &WildcardPattern{span: sp}
}

func (n *WildcardPattern) Span() span.Span { return n.span }
func (n *WildcardPattern) patternNode()    {}
