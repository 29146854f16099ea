// Package types implements the type-interning context: a per-compilation
// registry that assigns stable integer identities to structural types and
// holds the definitions of nominal types (structs, enums).
package types

import "math"

// TypeID is a stable identifier for an interned Type.
type TypeID uint32

// InvalidType is the sentinel meaning "unresolved".
const InvalidType TypeID = math.MaxUint32

// StructID identifies a registered struct definition, dense from zero in
// registration order.
type StructID uint32

// EnumID identifies a registered enum definition, dense from zero in
// registration order.
type EnumID uint32

// InvalidStructID and InvalidEnumID are returned by total lookups on a miss.
const (
	InvalidStructID StructID = math.MaxUint32
	InvalidEnumID   EnumID   = math.MaxUint32
)

// Kind tags the variant held by a Type.
type Kind int

const (
	KindPrimitive Kind = iota
	KindStruct
	KindEnum
	KindReference
	KindArray
	KindUnit
	KindNever
	KindUnderscore
)

// PrimitiveKind enumerates the primitive type variants, including the two
// numeric-literal placeholders used before a literal's type settles.
type PrimitiveKind int

const (
	I32 PrimitiveKind = iota
	U32
	ISIZE
	USIZE
	BOOL
	CHAR
	STRING
	AnyInt  // __ANYINT__
	AnyUint // __ANYUINT__
)

// Type is a structurally-compared tagged union over the variants spec.md §3
// enumerates. It is a plain comparable struct (not an interface) so that Go's
// built-in == is exactly the spec's "structural identity" and Type can be
// used directly as a map key by Context.
type Type struct {
	Kind Kind

	Prim PrimitiveKind // valid when Kind == KindPrimitive

	Struct StructID // valid when Kind == KindStruct
	Enum   EnumID   // valid when Kind == KindEnum

	Referent TypeID // valid when Kind == KindReference
	Mutable  bool   // valid when Kind == KindReference

	Element TypeID // valid when Kind == KindArray
	Length  uint64 // valid when Kind == KindArray
}

// Primitive constructs a primitive Type value.
func Primitive(kind PrimitiveKind) Type { return Type{Kind: KindPrimitive, Prim: kind} }

// StructType constructs a nominal struct Type value.
func StructType(id StructID) Type { return Type{Kind: KindStruct, Struct: id} }

// EnumType constructs a nominal enum Type value.
func EnumType(id EnumID) Type { return Type{Kind: KindEnum, Enum: id} }

// Reference constructs a reference Type value.
func Reference(referent TypeID, mutable bool) Type {
	return Type{Kind: KindReference, Referent: referent, Mutable: mutable}
}

// Array constructs a fixed-length array Type value.
func Array(element TypeID, length uint64) Type {
	return Type{Kind: KindArray, Element: element, Length: length}
}

// Unit, Never, and Underscore are the zero-payload Type values; each has
// exactly one TypeID once interned (invariant §3).
var (
	Unit       = Type{Kind: KindUnit}
	Never      = Type{Kind: KindNever}
	Underscore = Type{Kind: KindUnderscore}
)

// FieldInfo is a single named, typed field of a struct.
type FieldInfo struct {
	Name string
	Type TypeID
}

// StructInfo holds a struct's name and ordered field list.
type StructInfo struct {
	Name   string
	Fields []FieldInfo
}

// VariantInfo is a single enum variant. Variant payloads are deliberately not
// modeled in this core (spec.md §3).
type VariantInfo struct {
	Name string
}

// EnumInfo holds an enum's name and ordered variant list.
type EnumInfo struct {
	Name     string
	Variants []VariantInfo
}
