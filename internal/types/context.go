package types

import (
	"fmt"

	"fortio.org/safecast"

	"github.com/rlc-lang/rlc/internal/hir"
)

// ErrDuplicateDefinition is returned when a struct or enum name is
// registered twice with a distinct definition node.
var ErrDuplicateDefinition = fmt.Errorf("types: duplicate definition")

// ErrUnknownType is returned by GetType when a TypeID was never interned by
// this Context.
var ErrUnknownType = fmt.Errorf("types: unknown type id")

// ErrUnknownStruct and ErrUnknownEnum are wrapped into the panic raised by
// Struct/Enum/SetStructFields on an out-of-range id. The name lookups do not
// use them: on a miss they return InvalidStructID/InvalidEnumID or false.
var (
	ErrUnknownStruct = fmt.Errorf("types: unknown struct")
	ErrUnknownEnum   = fmt.Errorf("types: unknown enum")
)

// Context is the type-interning registry for one compilation; each
// NewContext call creates an independent registry that callers pass around
// explicitly (there is no package-level instance). It assigns a stable
// TypeID to every distinct structural Type value it sees, and separately
// tracks nominal struct/enum definitions by name.
//
// A Context is not safe for concurrent use; the teacher's single-threaded
// pass pipeline never shares one across goroutines (spec.md Non-goals:
// no multi-threading).
type Context struct {
	list  []Type
	index map[Type]TypeID

	structInfos []StructInfo
	enumInfos   []EnumInfo

	structByName map[string]StructID
	enumByName   map[string]EnumID

	structDefs map[StructID]hir.Node
	enumDefs   map[EnumID]hir.Node
}

// NewContext constructs an empty Context with the three zero-payload types
// (Unit, Never, Underscore) pre-interned, matching TypeContext's constructor.
func NewContext() *Context {
	c := &Context{
		index:        make(map[Type]TypeID),
		structByName: make(map[string]StructID),
		enumByName:   make(map[string]EnumID),
		structDefs:   make(map[StructID]hir.Node),
		enumDefs:     make(map[EnumID]hir.Node),
	}
	c.GetID(Unit)
	c.GetID(Never)
	c.GetID(Underscore)
	return c
}

// GetID interns t if not already present and returns its stable TypeID.
// Two structurally equal Type values always yield the same TypeID
// (invariant: structural identity).
func (c *Context) GetID(t Type) TypeID {
	if id, ok := c.index[t]; ok {
		return id
	}
	n, err := safecast.Conv[uint32](len(c.list))
	if err != nil {
		panic(fmt.Errorf("types: too many interned types: %w", err))
	}
	id := TypeID(n)
	c.list = append(c.list, t)
	c.index[t] = id
	return id
}

// GetType resolves a previously interned TypeID back to its Type value.
func (c *Context) GetType(id TypeID) (Type, error) {
	if int(id) >= len(c.list) {
		return Type{}, fmt.Errorf("%w: %d", ErrUnknownType, id)
	}
	return c.list[id], nil
}

// MustGetType is GetType for call sites that have already validated id, e.g.
// immediately after GetID returned it.
func (c *Context) MustGetType(id TypeID) Type {
	t, err := c.GetType(id)
	if err != nil {
		panic(err)
	}
	return t
}

// RegisterStruct registers a new struct definition under info.Name, keyed to
// def for duplicate-definition detection. Registering the same def pointer
// twice for the same name is a no-op returning the existing id; registering
// a distinct def under an already-used name is ErrDuplicateDefinition.
func (c *Context) RegisterStruct(info StructInfo, def hir.Node) (StructID, error) {
	if existing, ok := c.structByName[info.Name]; ok {
		if c.structDefs[existing] == def {
			return existing, nil
		}
		return InvalidStructID, fmt.Errorf("%w: struct %q", ErrDuplicateDefinition, info.Name)
	}
	n, err := safecast.Conv[uint32](len(c.structInfos))
	if err != nil {
		panic(fmt.Errorf("types: too many registered structs: %w", err))
	}
	id := StructID(n)
	c.structInfos = append(c.structInfos, info)
	c.structByName[info.Name] = id
	c.structDefs[id] = def
	return id, nil
}

// RegisterEnum is RegisterStruct's symmetric counterpart for enums.
func (c *Context) RegisterEnum(info EnumInfo, def hir.Node) (EnumID, error) {
	if existing, ok := c.enumByName[info.Name]; ok {
		if c.enumDefs[existing] == def {
			return existing, nil
		}
		return InvalidEnumID, fmt.Errorf("%w: enum %q", ErrDuplicateDefinition, info.Name)
	}
	n, err := safecast.Conv[uint32](len(c.enumInfos))
	if err != nil {
		panic(fmt.Errorf("types: too many registered enums: %w", err))
	}
	id := EnumID(n)
	c.enumInfos = append(c.enumInfos, info)
	c.enumByName[info.Name] = id
	c.enumDefs[id] = def
	return id, nil
}

// StructIDFor is a total lookup: it returns InvalidStructID on a name miss.
func (c *Context) StructIDFor(name string) StructID {
	id, ok := c.structByName[name]
	if !ok {
		return InvalidStructID
	}
	return id
}

// TryStructIDFor reports whether name is a registered struct.
func (c *Context) TryStructIDFor(name string) (StructID, bool) {
	id, ok := c.structByName[name]
	return id, ok
}

// EnumIDFor is a total lookup: it returns InvalidEnumID on a name miss.
func (c *Context) EnumIDFor(name string) EnumID {
	id, ok := c.enumByName[name]
	if !ok {
		return InvalidEnumID
	}
	return id
}

// TryEnumIDFor reports whether name is a registered enum.
func (c *Context) TryEnumIDFor(name string) (EnumID, bool) {
	id, ok := c.enumByName[name]
	return id, ok
}

// Struct returns the registered StructInfo for id. It panics if id is out of
// range: a caller holding a StructID obtained from this Context has already
// established its validity.
func (c *Context) Struct(id StructID) StructInfo {
	if int(id) >= len(c.structInfos) {
		panic(fmt.Errorf("%w: %d", ErrUnknownStruct, id))
	}
	return c.structInfos[id]
}

// Enum returns the registered EnumInfo for id. It panics if id is out of
// range.
func (c *Context) Enum(id EnumID) EnumInfo {
	if int(id) >= len(c.enumInfos) {
		panic(fmt.Errorf("%w: %d", ErrUnknownEnum, id))
	}
	return c.enumInfos[id]
}

// SetStructFields overwrites the field list of an already-registered
// struct, used by the field-resolution pass once real field TypeIDs are
// known. It panics if id is out of range.
func (c *Context) SetStructFields(id StructID, fields []FieldInfo) {
	if int(id) >= len(c.structInfos) {
		panic(fmt.Errorf("%w: %d", ErrUnknownStruct, id))
	}
	c.structInfos[id].Fields = fields
}

// StructDef returns the hir node a struct was registered with.
func (c *Context) StructDef(id StructID) hir.Node { return c.structDefs[id] }

// EnumDef returns the hir node an enum was registered with.
func (c *Context) EnumDef(id EnumID) hir.Node { return c.enumDefs[id] }
