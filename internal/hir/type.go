package hir

import "github.com/rlc-lang/rlc/internal/span"

// PathType names a type by a dotted/colon path (a primitive name, struct
// name, or enum name, resolved later against a types.Context).
type PathType struct {
	Segments []string
	span     span.Span
}

func NewPathType(segments []string, sp span.Span) *PathType {
	return &PathType{Segments: segments, span: sp}
}

func (n *PathType) Span() span.Span { return n.span }
func (n *PathType) typeNode()       {}

// ArrayType is a fixed-length array type, `[Element; Length]`.
type ArrayType struct {
	Element Type // required
	Length  Expr // required, must fold to a constant
	span    span.Span
}

func NewArrayType(element Type, length Expr, sp span.Span) *ArrayType {
	return &ArrayType{Element: element, Length: length, span: sp}
}

func (n *ArrayType) Span() span.Span { return n.span }
func (n *ArrayType) typeNode()       {}

// ReferenceType is `&T` or `&mut T`.
type ReferenceType struct {
	Mutable  bool
	Referent Type // required
	span     span.Span
}

func NewReferenceType(mutable bool, referent Type, sp span.Span) *ReferenceType {
	return &ReferenceType{Mutable: mutable, Referent: referent, span: sp}
}

func (n *ReferenceType) Span() span.Span { return n.span }
func (n *ReferenceType) typeNode()       {}

// PrimitiveType names a built-in primitive type directly, bypassing path
// resolution.
type PrimitiveType struct {
	Name string
	span span.Span
}

func NewPrimitiveType(name string, sp span.Span) *PrimitiveType {
	return &PrimitiveType{Name: name, span: sp}
}

func (n *PrimitiveType) Span() span.Span { return n.span }
func (n *PrimitiveType) typeNode()       {}

// UnitType is the zero-element tuple type `()`.
type UnitType struct {
	span span.Span
}

func NewUnitType(sp span.Span) *UnitType {
	return &UnitType{span: sp}
}

func (n *UnitType) Span() span.Span { return n.span }
func (n *UnitType) typeNode()       {}
