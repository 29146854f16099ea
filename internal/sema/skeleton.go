// Package sema implements the early semantic passes that run over a parsed
// hir tree before full name resolution: skeleton registration (establishing
// struct/enum identity) and field-type resolution (filling in real field
// types once names can be looked up).
package sema

import (
	"go.uber.org/multierr"

	"github.com/rlc-lang/rlc/internal/hir"
	"github.com/rlc-lang/rlc/internal/types"
)

// RegisterSkeletons registers a skeleton StructInfo/EnumInfo for every
// StructItem/EnumItem in items, establishing their StructID/EnumID before
// name resolution runs. Field types are left as types.InvalidType; a later
// ResolveFields call fills them in. Every item is attempted even after a
// failure; all DuplicateDefinition errors are aggregated and returned
// together via multierr, rather than stopping at the first.
func RegisterSkeletons(ctx *types.Context, items []hir.Item) error {
	var errs error
	for _, item := range items {
		switch n := item.(type) {
		case *hir.StructItem:
			if _, err := registerStructSkeleton(ctx, n); err != nil {
				errs = multierr.Append(errs, err)
			}
		case *hir.EnumItem:
			if _, err := registerEnumSkeleton(ctx, n); err != nil {
				errs = multierr.Append(errs, err)
			}
		}
		// Other item kinds carry no nominal type and need no skeleton.
	}
	return errs
}

func registerStructSkeleton(ctx *types.Context, n *hir.StructItem) (types.StructID, error) {
	fields := make([]types.FieldInfo, len(n.Fields))
	for i, f := range n.Fields {
		fields[i] = types.FieldInfo{Name: f.Name, Type: types.InvalidType}
	}
	return ctx.RegisterStruct(types.StructInfo{Name: n.Name, Fields: fields}, n)
}

func registerEnumSkeleton(ctx *types.Context, n *hir.EnumItem) (types.EnumID, error) {
	variants := make([]types.VariantInfo, len(n.Variants))
	for i, v := range n.Variants {
		variants[i] = types.VariantInfo{Name: v.Name}
	}
	return ctx.RegisterEnum(types.EnumInfo{Name: n.Name, Variants: variants}, n)
}
