package llvmir

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestModuleWithOneFunction(t *testing.T) {
	m := NewModule("demo")
	m.SetDataLayout("e-m:e-p270:32:32")
	m.SetTargetTriple("x86_64-unknown-linux-gnu")
	require.NoError(t, m.AddTypeDefinition("Pair", "{ i32, i32 }"))
	require.NoError(t, m.AddGlobal("@counter = global i32 0"))

	fn, err := m.AddFunction("add", "i32", []Param{{Type: "i32", Name: "%lhs"}, {Type: "i32", Name: "%rhs"}})
	require.NoError(t, err)
	entry, err := fn.EntryBlock()
	require.NoError(t, err)

	params := fn.Parameters()
	sum, err := entry.EmitBinary("add", "i32", params[0].Name, params[1].Name, "sum", "")
	require.NoError(t, err)
	require.NoError(t, entry.EmitRet("i32", sum))

	expected := `; ModuleID = 'demo'
target datalayout = "e-m:e-p270:32:32"
target triple = "x86_64-unknown-linux-gnu"

%Pair = type { i32, i32 }

@counter = global i32 0

define i32 @add(i32 %lhs, i32 %rhs) {
entry:
  %sum = add i32 %lhs, %rhs
  ret i32 %sum
}
`
	require.Equal(t, expected, m.String())
}

func TestModuleWithBranchesAndPhi(t *testing.T) {
	m := NewModule("")
	fn, err := m.AddFunction("branchy", "i32", nil)
	require.NoError(t, err)

	entry, err := fn.EntryBlock()
	require.NoError(t, err)
	cond, err := entry.EmitICmp("eq", "i32", "0", "0", "cond")
	require.NoError(t, err)

	left := fn.CreateBlock("left")
	right := fn.CreateBlock("right")
	exit := fn.CreateBlock("exit")

	require.NoError(t, entry.EmitCondBr(cond, left.Label(), right.Label()))

	leftVal, err := left.EmitBinary("add", "i32", "1", "2", "left_sum", "")
	require.NoError(t, err)
	require.NoError(t, left.EmitBr(exit.Label()))

	rightVal, err := right.EmitBinary("mul", "i32", "3", "4", "right_prod", "")
	require.NoError(t, err)
	require.NoError(t, right.EmitBr(exit.Label()))

	phi, err := exit.EmitPhi("i32", []PhiIncoming{
		{Value: leftVal, Label: left.Label()},
		{Value: rightVal, Label: right.Label()},
	}, "select_val")
	require.NoError(t, err)
	require.NoError(t, exit.EmitRet("i32", phi))

	text := m.String()
	require.Contains(t, text, "br i1 %cond")
	require.Contains(t, text, "phi i32")
	require.Contains(t, text, "ret i32 %select_val")
}

func TestUnterminatedBlockGetsUnreachable(t *testing.T) {
	m := NewModule("")
	fn, err := m.AddFunction("f", "void", nil)
	require.NoError(t, err)
	entry, err := fn.EntryBlock()
	require.NoError(t, err)
	_, err = entry.EmitBinary("add", "i32", "1", "2", "", "")
	require.NoError(t, err)

	require.Contains(t, fn.String(), "  unreachable\n")
}

func TestEmitAfterTerminatorIsError(t *testing.T) {
	m := NewModule("")
	fn, err := m.AddFunction("f", "void", nil)
	require.NoError(t, err)
	entry, err := fn.EntryBlock()
	require.NoError(t, err)
	require.NoError(t, entry.EmitRetVoid())

	_, err = entry.EmitBinary("add", "i32", "1", "2", "", "")
	require.ErrorIs(t, err, ErrBlockTerminated)
}

func TestValueNameCountersDeduplicateHints(t *testing.T) {
	m := NewModule("")
	fn, err := m.AddFunction("f", "i32", nil)
	require.NoError(t, err)
	entry, err := fn.EntryBlock()
	require.NoError(t, err)

	a, err := entry.EmitBinary("add", "i32", "1", "1", "sum", "")
	require.NoError(t, err)
	b, err := entry.EmitBinary("add", "i32", "2", "2", "sum", "")
	require.NoError(t, err)

	require.Equal(t, "%sum", a)
	require.Equal(t, "%sum.1", b)
}

func TestBlockLabelCountersDeduplicate(t *testing.T) {
	m := NewModule("")
	fn, err := m.AddFunction("f", "i32", nil)
	require.NoError(t, err)

	loop1 := fn.CreateBlock("loop")
	loop2 := fn.CreateBlock("loop")
	require.Equal(t, "loop", loop1.Label())
	require.Equal(t, "loop.1", loop2.Label())
}

func TestEmitPhiRejectsEmptyIncomings(t *testing.T) {
	m := NewModule("")
	fn, _ := m.AddFunction("f", "i32", nil)
	entry, _ := fn.EntryBlock()
	_, err := entry.EmitPhi("i32", nil, "")
	require.ErrorIs(t, err, ErrEmptyPhiIncomings)
}

func TestEmitExtractValueRejectsEmptyIndices(t *testing.T) {
	m := NewModule("")
	fn, _ := m.AddFunction("f", "i32", nil)
	entry, _ := fn.EntryBlock()
	_, err := entry.EmitExtractValue("{ i32 }", "%agg", nil, "")
	require.ErrorIs(t, err, ErrEmptyIndices)
}

func TestEmitVoidCallReturnsNoName(t *testing.T) {
	m := NewModule("")
	fn, _ := m.AddFunction("f", "void", nil)
	entry, _ := fn.EntryBlock()
	name, ok, err := entry.EmitCall("void", "@puts", []Arg{{Type: "i8*", Value: "%s"}}, "")
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, "", name)
	require.NoError(t, entry.EmitRetVoid())
	require.Contains(t, fn.String(), "call void @puts(i8* %s)")
}

func TestInternStringDedupesByContent(t *testing.T) {
	m := NewModule("")
	a := m.InternString("hi")
	b := m.InternString("hi")
	c := m.InternString("bye")
	require.Equal(t, a, b)
	require.NotEqual(t, a, c)
	require.Equal(t, "@str.0", a)
	require.Equal(t, "@str.1", c)
}

func TestEscapeStringLiteralEscapesSpecialBytes(t *testing.T) {
	m := NewModule("")
	m.InternString("a\"\\\n\x01")
	require.Contains(t, strings.Join(m.globals, "\n"), `c"a\22\5C\0A\01"`)
}

func TestEmitStringLiteralEmitsGEP(t *testing.T) {
	m := NewModule("")
	fn, _ := m.AddFunction("f", "i8*", nil)
	entry, _ := fn.EntryBlock()
	ptr, err := entry.EmitStringLiteral(m, "hi", "i8*", "greeting")
	require.NoError(t, err)
	require.NoError(t, entry.EmitRet("i8*", ptr))

	text := m.String()
	require.Contains(t, text, `@str.0 = private unnamed_addr constant [2 x i8] c"hi"`)
	require.Contains(t, text, "getelementptr inbounds [2 x i8], [2 x i8]* @str.0, i32 0, i32 0")
	require.NotContains(t, text, "bitcast")
}

func TestEmitStringLiteralCastsToDestType(t *testing.T) {
	m := NewModule("")
	fn, _ := m.AddFunction("f", "%str*", nil)
	entry, _ := fn.EntryBlock()
	ptr, err := entry.EmitStringLiteral(m, "hi", "%str*", "greeting")
	require.NoError(t, err)
	require.NoError(t, entry.EmitRet("%str*", ptr))

	text := m.String()
	require.Contains(t, text, "getelementptr inbounds [2 x i8], [2 x i8]* @str.0, i32 0, i32 0")
	require.Contains(t, text, "bitcast i8* %greeting to %str*")
}

func TestEmitStringLiteralRejectsUnresolvedDestType(t *testing.T) {
	m := NewModule("")
	fn, _ := m.AddFunction("f", "i8*", nil)
	entry, _ := fn.EntryBlock()
	_, err := entry.EmitStringLiteral(m, "hi", "", "greeting")
	require.ErrorIs(t, err, ErrUnresolvedType)
}

func TestEmitBinaryIntoRejectsInvalidSSAName(t *testing.T) {
	m := NewModule("")
	fn, _ := m.AddFunction("f", "i32", nil)
	entry, _ := fn.EntryBlock()

	_, err := entry.EmitBinaryInto("", "add", "i32", "1", "1", "")
	require.ErrorIs(t, err, ErrInvalidSSAName)

	_, err = entry.EmitBinaryInto("sum", "add", "i32", "1", "1", "")
	require.ErrorIs(t, err, ErrInvalidSSAName)
}

func TestEmitCallIntoRejectsVoidReturn(t *testing.T) {
	m := NewModule("")
	fn, _ := m.AddFunction("f", "void", nil)
	entry, _ := fn.EntryBlock()
	_, err := entry.EmitCallInto("%x", "void", "@puts", nil)
	require.ErrorIs(t, err, ErrVoidCallAssignment)
}
