package types

// Coerce decides whether a value of type `from` may be used where `to` is
// expected, returning the resulting TypeID and true on success. Only
// primitive types coerce; every other combination fails. AnyInt unifies with
// I32 or ISIZE; AnyUint unifies with U32, USIZE, or AnyInt itself. Any other
// pairing coerces only when from and to are identical.
func Coerce(ctx *Context, from, to TypeID) (TypeID, bool) {
	fromType := ctx.MustGetType(from)
	toType := ctx.MustGetType(to)

	if fromType.Kind != KindPrimitive || toType.Kind != KindPrimitive {
		return InvalidType, false
	}

	switch fromType.Prim {
	case AnyInt:
		if toType.Prim == I32 || toType.Prim == ISIZE {
			return to, true
		}
		return InvalidType, false
	case AnyUint:
		if toType.Prim == U32 || toType.Prim == USIZE || toType.Prim == AnyInt {
			return to, true
		}
		return InvalidType, false
	default:
		if fromType.Prim == toType.Prim {
			return from, true
		}
		return InvalidType, false
	}
}
