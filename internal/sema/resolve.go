package sema

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/rlc-lang/rlc/internal/hir"
	"github.com/rlc-lang/rlc/internal/types"
)

// ErrUnresolvedField wraps a resolve callback failure with the owning
// struct and field name for diagnostics.
var ErrUnresolvedField = fmt.Errorf("sema: unresolved field type")

// ResolveFields is the second phase of nominal registration: it walks
// already-skeleton-registered StructItems again and fills in real field
// TypeIDs by invoking resolve against each field's surface hir.Type. resolve
// stands in for the external name-resolution pass, which is out of scope
// here. As with RegisterSkeletons, every field is attempted and failures are
// aggregated via multierr rather than stopping at the first.
func ResolveFields(ctx *types.Context, items []hir.Item, resolve func(hir.Type) (types.TypeID, error)) error {
	var errs error
	for _, item := range items {
		n, ok := item.(*hir.StructItem)
		if !ok {
			continue
		}
		id, ok := ctx.TryStructIDFor(n.Name)
		if !ok {
			errs = multierr.Append(errs, fmt.Errorf("sema: struct %q has no registered skeleton", n.Name))
			continue
		}
		fields := make([]types.FieldInfo, len(n.Fields))
		ok = true
		for i, f := range n.Fields {
			typeID, err := resolve(f.Type)
			if err != nil {
				errs = multierr.Append(errs, fmt.Errorf("%w: %s.%s: %v", ErrUnresolvedField, n.Name, f.Name, err))
				ok = false
				continue
			}
			fields[i] = types.FieldInfo{Name: f.Name, Type: typeID}
		}
		if ok {
			ctx.SetStructFields(id, fields)
		}
	}
	return errs
}

// Coerce is re-exported from internal/types: it is the only type-relation
// primitive semantic passes need in this scope.
var Coerce = types.Coerce
