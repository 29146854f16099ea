package hir

import "github.com/rlc-lang/rlc/internal/span"

// Param is a single function parameter: a binding pattern and its declared
// type, both required.
type Param struct {
	Pattern Pattern
	Type    Type
}

// FunctionItem declares a function.
type FunctionItem struct {
	Name       string
	Params     []Param
	ReturnType Type // required
	Body       *BlockExpr
	span       span.Span
}

func NewFunctionItem(name string, params []Param, returnType Type, body *BlockExpr, sp span.Span) *FunctionItem {
	return &FunctionItem{Name: name, Params: params, ReturnType: returnType, Body: body, span: sp}
}

func (n *FunctionItem) Span() span.Span { return n.span }
func (n *FunctionItem) itemNode()       {}

// StructField is a single field declaration inside a StructItem.
type StructField struct {
	Name string
	Type Type // required
}

// StructItem declares a struct type.
type StructItem struct {
	Name   string
	Fields []StructField
	span   span.Span
}

func NewStructItem(name string, fields []StructField, sp span.Span) *StructItem {
	return &StructItem{Name: name, Fields: fields, span: sp}
}

func (n *StructItem) Span() span.Span { return n.span }
func (n *StructItem) itemNode()       {}

// EnumVariant is a single variant declaration inside an EnumItem. Variant
// payloads are deliberately not modeled in this core.
type EnumVariant struct {
	Name string
}

// EnumItem declares an enum type.
type EnumItem struct {
	Name     string
	Variants []EnumVariant
	span     span.Span
}

func NewEnumItem(name string, variants []EnumVariant, sp span.Span) *EnumItem {
	return &EnumItem{Name: name, Variants: variants, span: sp}
}

func (n *EnumItem) Span() span.Span { return n.span }
func (n *EnumItem) itemNode()       {}

// ConstItem declares a module-level constant.
type ConstItem struct {
	Name  string
	Type  Type // required
	Value Expr // required
	span  span.Span
}

func NewConstItem(name string, typ Type, value Expr, sp span.Span) *ConstItem {
	return &ConstItem{Name: name, Type: typ, Value: value, span: sp}
}

func (n *ConstItem) Span() span.Span { return n.span }
func (n *ConstItem) itemNode()       {}

// TraitItem declares a trait and its member items.
type TraitItem struct {
	Name  string
	Items []Item
	span  span.Span
}

func NewTraitItem(name string, items []Item, sp span.Span) *TraitItem {
	return &TraitItem{Name: name, Items: items, span: sp}
}

func (n *TraitItem) Span() span.Span { return n.span }
func (n *TraitItem) itemNode()       {}

// TraitImplItem implements a named trait for a type.
type TraitImplItem struct {
	TraitName string
	ForType   Type // required
	Items     []Item
	span      span.Span
}

func NewTraitImplItem(traitName string, forType Type, items []Item, sp span.Span) *TraitImplItem {
	return &TraitImplItem{TraitName: traitName, ForType: forType, Items: items, span: sp}
}

func (n *TraitImplItem) Span() span.Span { return n.span }
func (n *TraitImplItem) itemNode()       {}

// InherentImplItem attaches inherent methods to a type.
type InherentImplItem struct {
	ForType Type // required
	Items   []Item
	span    span.Span
}

func NewInherentImplItem(forType Type, items []Item, sp span.Span) *InherentImplItem {
	return &InherentImplItem{ForType: forType, Items: items, span: sp}
}

func (n *InherentImplItem) Span() span.Span { return n.span }
func (n *InherentImplItem) itemNode()       {}
