package llvmir

import (
	"fmt"
	"strconv"
	"strings"
)

// InternString registers data as a content-addressed `@str.<n>` global
// constant, returning the existing global name if this exact byte sequence
// was interned before. The declared array length is the raw byte length of
// data, matching a C-style (NUL-terminated elsewhere) or fixed-length
// string constant.
func (m *Module) InternString(data string) string {
	if name, ok := m.stringGlobals[data]; ok {
		return name
	}
	name := "@str." + strconv.Itoa(m.nextStringID)
	m.nextStringID++
	decl := fmt.Sprintf("%s = private unnamed_addr constant [%d x i8] c\"%s\"",
		name, len(data), escapeStringLiteral(data))
	m.globals = append(m.globals, decl)
	m.stringGlobals[data] = name
	return name
}

// charPointerType is the type name get_type_name(CHAR)+"*" always renders to
// in this core, since CHAR is the one primitive backing string literals.
const charPointerType = "i8*"

// EmitStringLiteral interns data and emits a `getelementptr` producing an
// `i8*` pointer to its first byte, then a `bitcast` to destType when
// destType differs from `i8*`. destType must be a resolved type name;
// an empty destType is ErrUnresolvedType.
func (bb *BasicBlock) EmitStringLiteral(m *Module, data, destType, hint string) (string, error) {
	if destType == "" {
		return "", ErrUnresolvedType
	}
	global := m.InternString(data)
	arrayType := fmt.Sprintf("[%d x i8]", len(data))
	pointerType := arrayType + "*"
	indices := []Index{{Type: "i32", Value: "0"}, {Type: "i32", Value: "0"}}

	elementPtr, err := bb.EmitGetElementPtr(arrayType, pointerType, global, indices, true, hint)
	if err != nil {
		return "", err
	}
	if destType == charPointerType {
		return elementPtr, nil
	}
	return bb.EmitCast("bitcast", charPointerType, elementPtr, destType, hint)
}

// EmitStringLiteralInto is EmitStringLiteral with an explicit destination
// name for the final value (the getelementptr step, when a cast follows,
// still gets a freshly allocated intermediate name).
func (bb *BasicBlock) EmitStringLiteralInto(dest string, m *Module, data, destType string) (string, error) {
	if destType == "" {
		return "", ErrUnresolvedType
	}
	global := m.InternString(data)
	arrayType := fmt.Sprintf("[%d x i8]", len(data))
	pointerType := arrayType + "*"
	indices := []Index{{Type: "i32", Value: "0"}, {Type: "i32", Value: "0"}}

	if destType == charPointerType {
		return bb.EmitGetElementPtrInto(dest, arrayType, pointerType, global, indices, true)
	}
	elementPtr, err := bb.EmitGetElementPtr(arrayType, pointerType, global, indices, true, "str")
	if err != nil {
		return "", err
	}
	return bb.EmitCastInto(dest, "bitcast", charPointerType, elementPtr, destType)
}

// escapeStringLiteral renders data as the body of an LLVM `c"..."` string
// constant: backslash, double-quote, and the common control characters get
// their two-hex-digit escapes, every other non-printable byte is escaped as
// `\NN` (uppercase hex), and everything else passes through unescaped.
func escapeStringLiteral(data string) string {
	var b strings.Builder
	for i := 0; i < len(data); i++ {
		ch := data[i]
		switch ch {
		case '\\':
			b.WriteString(`\5C`)
		case '"':
			b.WriteString(`\22`)
		case '\n':
			b.WriteString(`\0A`)
		case '\r':
			b.WriteString(`\0D`)
		case '\t':
			b.WriteString(`\09`)
		default:
			if ch >= 0x20 && ch < 0x7f {
				b.WriteByte(ch)
			} else {
				fmt.Fprintf(&b, `\%02X`, ch)
			}
		}
	}
	return b.String()
}
