package visitor_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rlc-lang/rlc/internal/hir"
	"github.com/rlc-lang/rlc/internal/span"
	"github.com/rlc-lang/rlc/internal/visitor"
)

// recorder records, in traversal order, the nodes whose VisitX methods it
// overrides below; each override logs the node and then defers to Base for
// the default child traversal.
type recorder struct {
	visitor.Base[struct{}]
	order []string
}

func newRecorder() *recorder {
	r := &recorder{}
	r.Self = r
	return r
}

func (r *recorder) VisitBinaryExpr(n *hir.BinaryExpr) struct{} {
	r.order = append(r.order, "BinaryExpr")
	return r.Base.VisitBinaryExpr(n)
}

func (r *recorder) VisitIntegerLiteralExpr(n *hir.IntegerLiteralExpr) struct{} {
	r.order = append(r.order, "IntegerLiteralExpr:"+n.Text)
	return r.Base.VisitIntegerLiteralExpr(n)
}

func (r *recorder) VisitCallExpr(n *hir.CallExpr) struct{} {
	r.order = append(r.order, "CallExpr")
	return r.Base.VisitCallExpr(n)
}

func (r *recorder) VisitPathExpr(n *hir.PathExpr) struct{} {
	r.order = append(r.order, "PathExpr")
	return r.Base.VisitPathExpr(n)
}

func (r *recorder) VisitIdentifierPattern(n *hir.IdentifierPattern) struct{} {
	r.order = append(r.order, "IdentifierPattern:"+n.Name)
	return r.Base.VisitIdentifierPattern(n)
}

func (r *recorder) VisitPrimitiveType(n *hir.PrimitiveType) struct{} {
	r.order = append(r.order, "PrimitiveType:"+n.Name)
	return r.Base.VisitPrimitiveType(n)
}

func TestBinaryExprVisitsLeftBeforeRight(t *testing.T) {
	left := hir.NewIntegerLiteralExpr("1", span.InvalidSpan)
	right := hir.NewIntegerLiteralExpr("2", span.InvalidSpan)
	bin := hir.NewBinaryExpr(hir.BinAdd, left, right, span.InvalidSpan)

	r := newRecorder()
	r.VisitExpr(bin)

	require.Equal(t, []string{"BinaryExpr", "IntegerLiteralExpr:1", "IntegerLiteralExpr:2"}, r.order)
}

func TestCallExprVisitsCalleeBeforeArgs(t *testing.T) {
	callee := hir.NewPathExpr([]string{"foo"}, span.InvalidSpan)
	arg1 := hir.NewIntegerLiteralExpr("1", span.InvalidSpan)
	arg2 := hir.NewIntegerLiteralExpr("2", span.InvalidSpan)
	call := hir.NewCallExpr(callee, []hir.Expr{arg1, arg2}, span.InvalidSpan)

	r := newRecorder()
	r.VisitExpr(call)

	require.Equal(t, []string{"CallExpr", "PathExpr", "IntegerLiteralExpr:1", "IntegerLiteralExpr:2"}, r.order)
}

func TestFunctionItemVisitsParamsReturnTypeThenBody(t *testing.T) {
	pat := hir.NewIdentifierPattern("x", false, span.InvalidSpan)
	paramType := hir.NewPrimitiveType("i32", span.InvalidSpan)
	returnType := hir.NewPrimitiveType("i32", span.InvalidSpan)
	body := hir.NewBlockExpr(nil, hir.NewIntegerLiteralExpr("0", span.InvalidSpan), span.InvalidSpan)
	fn := hir.NewFunctionItem("f", []hir.Param{{Pattern: pat, Type: paramType}}, returnType, body, span.InvalidSpan)

	r := newRecorder()
	r.VisitItem(fn)

	require.Equal(t, []string{"IdentifierPattern:x", "PrimitiveType:i32", "PrimitiveType:i32", "IntegerLiteralExpr:0"}, r.order)
}

func TestVisitOptionalExprHandlesNil(t *testing.T) {
	r := newRecorder()
	_, ok := visitor.VisitOptionalExpr[struct{}](r, nil)
	require.False(t, ok)

	_, ok = visitor.VisitOptionalExpr[struct{}](r, hir.NewIntegerLiteralExpr("5", span.InvalidSpan))
	require.True(t, ok)
}
