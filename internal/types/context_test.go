package types

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/rlc-lang/rlc/internal/span"
)

// hirStub is a minimal hir.Node stand-in used only to exercise definition
// identity in RegisterStruct/RegisterEnum.
type hirStub struct{}

func (*hirStub) Span() span.Span { return span.InvalidSpan }

func TestGetIDIsStructural(t *testing.T) {
	ctx := NewContext()
	a := ctx.GetID(Primitive(I32))
	b := ctx.GetID(Primitive(I32))
	require.Equal(t, a, b)

	c := ctx.GetID(Primitive(U32))
	require.NotEqual(t, a, c)
}

func TestZeroPayloadTypesInternedOnce(t *testing.T) {
	ctx := NewContext()
	require.Equal(t, ctx.GetID(Unit), ctx.GetID(Unit))
	require.Equal(t, ctx.GetID(Never), ctx.GetID(Never))
	require.Equal(t, ctx.GetID(Underscore), ctx.GetID(Underscore))

	u1 := ctx.GetID(Unit)
	u2 := ctx.GetID(Never)
	u3 := ctx.GetID(Underscore)
	require.NotEqual(t, u1, u2)
	require.NotEqual(t, u2, u3)
	require.NotEqual(t, u1, u3)
}

func TestReferenceIdentityIncludesMutability(t *testing.T) {
	ctx := NewContext()
	inner := ctx.GetID(Primitive(I32))
	immut := ctx.GetID(Reference(inner, false))
	mut := ctx.GetID(Reference(inner, true))
	require.NotEqual(t, immut, mut)
}

func TestArrayIdentityIncludesLength(t *testing.T) {
	ctx := NewContext()
	elem := ctx.GetID(Primitive(I32))
	a3 := ctx.GetID(Array(elem, 3))
	a4 := ctx.GetID(Array(elem, 4))
	require.NotEqual(t, a3, a4)
	require.Equal(t, a3, ctx.GetID(Array(elem, 3)))
}

func TestRegisterStructDuplicateName(t *testing.T) {
	ctx := NewContext()
	defA := &hirStub{}
	defB := &hirStub{}

	id, err := ctx.RegisterStruct(StructInfo{Name: "Point"}, defA)
	require.NoError(t, err)

	// Re-registering with the same def is idempotent.
	again, err := ctx.RegisterStruct(StructInfo{Name: "Point"}, defA)
	require.NoError(t, err)
	require.Equal(t, id, again)

	// Re-registering the same name with a different def is a conflict.
	_, err = ctx.RegisterStruct(StructInfo{Name: "Point"}, defB)
	require.ErrorIs(t, err, ErrDuplicateDefinition)
}

func TestStructIDForTotalLookup(t *testing.T) {
	ctx := NewContext()
	require.Equal(t, InvalidStructID, ctx.StructIDFor("Missing"))

	id, err := ctx.RegisterStruct(StructInfo{Name: "Point"}, &hirStub{})
	require.NoError(t, err)
	require.Equal(t, id, ctx.StructIDFor("Point"))

	_, ok := ctx.TryStructIDFor("Missing")
	require.False(t, ok)
}

func TestStructPanicsOnOutOfRange(t *testing.T) {
	ctx := NewContext()
	require.Panics(t, func() { ctx.Struct(StructID(99)) })
}

func TestCoercePrimitiveIdentity(t *testing.T) {
	ctx := NewContext()
	i32 := ctx.GetID(Primitive(I32))
	result, ok := Coerce(ctx, i32, i32)
	require.True(t, ok)
	require.Equal(t, i32, result)
}

func TestCoerceAnyIntToConcrete(t *testing.T) {
	ctx := NewContext()
	anyInt := ctx.GetID(Primitive(AnyInt))
	i32 := ctx.GetID(Primitive(I32))
	isize := ctx.GetID(Primitive(ISIZE))
	u32 := ctx.GetID(Primitive(U32))

	result, ok := Coerce(ctx, anyInt, i32)
	require.True(t, ok)
	require.Equal(t, i32, result)

	result, ok = Coerce(ctx, anyInt, isize)
	require.True(t, ok)
	require.Equal(t, isize, result)

	_, ok = Coerce(ctx, anyInt, u32)
	require.False(t, ok)
}

func TestCoerceAnyUintToConcreteOrAnyInt(t *testing.T) {
	ctx := NewContext()
	anyUint := ctx.GetID(Primitive(AnyUint))
	u32 := ctx.GetID(Primitive(U32))
	usize := ctx.GetID(Primitive(USIZE))
	anyInt := ctx.GetID(Primitive(AnyInt))
	i32 := ctx.GetID(Primitive(I32))

	for _, target := range []TypeID{u32, usize, anyInt} {
		result, ok := Coerce(ctx, anyUint, target)
		require.True(t, ok)
		require.Equal(t, target, result)
	}

	_, ok := Coerce(ctx, anyUint, i32)
	require.False(t, ok)
}

func TestRegisterStructSnapshot(t *testing.T) {
	ctx := NewContext()
	info := StructInfo{
		Name: "Point",
		Fields: []FieldInfo{
			{Name: "x", Type: ctx.GetID(Primitive(I32))},
			{Name: "y", Type: ctx.GetID(Primitive(I32))},
		},
	}
	id, err := ctx.RegisterStruct(info, &hirStub{})
	require.NoError(t, err)

	got := ctx.Struct(id)
	if diff := cmp.Diff(info, got); diff != "" {
		t.Errorf("Struct(id) mismatch (-want +got):\n%s", diff)
	}
}

func TestCoerceRejectsNonPrimitive(t *testing.T) {
	ctx := NewContext()
	sid, err := ctx.RegisterStruct(StructInfo{Name: "S"}, &hirStub{})
	require.NoError(t, err)
	structID := ctx.GetID(StructType(sid))
	i32 := ctx.GetID(Primitive(I32))

	_, ok := Coerce(ctx, structID, i32)
	require.False(t, ok)
}
