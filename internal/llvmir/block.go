package llvmir

import (
	"fmt"
	"strconv"
	"strings"
)

// BasicBlock accumulates already-rendered instruction lines for one labeled
// block of a Function, enforcing that at most one terminator closes it.
type BasicBlock struct {
	parent     *Function
	label      string
	isEntry    bool
	terminated bool
	lines      []string
}

// Label returns the block's freshened label.
func (bb *BasicBlock) Label() string { return bb.label }

// Terminated reports whether a terminator instruction has already closed
// this block.
func (bb *BasicBlock) Terminated() bool { return bb.terminated }

func (bb *BasicBlock) ensureNotTerminated() error {
	if bb.terminated {
		return ErrBlockTerminated
	}
	return nil
}

// emitNamed appends "<name> = <body>" with a freshly allocated name derived
// from hint, and returns that name.
func (bb *BasicBlock) emitNamed(body, hint string) (string, error) {
	if err := bb.ensureNotTerminated(); err != nil {
		return "", err
	}
	name := bb.parent.allocateValueName(hint)
	bb.lines = append(bb.lines, "  "+name+" = "+body)
	return name, nil
}

// emitNamedInto appends "<dest> = <body>" using a caller-forced destination
// name. dest must carry the '%' sigil; an empty or unprefixed dest is
// ErrInvalidSSAName rather than silently coerced or defaulted.
func (bb *BasicBlock) emitNamedInto(body, dest string) (string, error) {
	if err := bb.ensureNotTerminated(); err != nil {
		return "", err
	}
	if dest == "" || dest[0] != '%' {
		return "", ErrInvalidSSAName
	}
	bb.lines = append(bb.lines, "  "+dest+" = "+body)
	return dest, nil
}

func (bb *BasicBlock) emitVoid(text string) error {
	if err := bb.ensureNotTerminated(); err != nil {
		return err
	}
	bb.lines = append(bb.lines, "  "+text)
	return nil
}

func (bb *BasicBlock) emitTerminator(text string) error {
	if err := bb.ensureNotTerminated(); err != nil {
		return err
	}
	bb.lines = append(bb.lines, "  "+text)
	bb.terminated = true
	return nil
}

// EmitBinary appends a two-operand arithmetic/logical instruction, e.g.
// EmitBinary("add", "i32", "%a", "%b", "sum", "").
func (bb *BasicBlock) EmitBinary(opcode, typ, lhs, rhs, hint, flags string) (string, error) {
	return bb.emitNamed(binaryBody(opcode, typ, lhs, rhs, flags), hint)
}

// EmitBinaryInto is EmitBinary with an explicit destination name.
func (bb *BasicBlock) EmitBinaryInto(dest, opcode, typ, lhs, rhs, flags string) (string, error) {
	return bb.emitNamedInto(binaryBody(opcode, typ, lhs, rhs, flags), dest)
}

func binaryBody(opcode, typ, lhs, rhs, flags string) string {
	var b strings.Builder
	b.WriteString(opcode)
	if flags != "" {
		b.WriteByte(' ')
		b.WriteString(flags)
	}
	fmt.Fprintf(&b, " %s %s, %s", typ, lhs, rhs)
	return b.String()
}

// EmitICmp appends an `icmp` instruction.
func (bb *BasicBlock) EmitICmp(predicate, typ, lhs, rhs, hint string) (string, error) {
	return bb.emitNamed(icmpBody(predicate, typ, lhs, rhs), hint)
}

// EmitICmpInto is EmitICmp with an explicit destination name.
func (bb *BasicBlock) EmitICmpInto(dest, predicate, typ, lhs, rhs string) (string, error) {
	return bb.emitNamedInto(icmpBody(predicate, typ, lhs, rhs), dest)
}

func icmpBody(predicate, typ, lhs, rhs string) string {
	return fmt.Sprintf("icmp %s %s %s, %s", predicate, typ, lhs, rhs)
}

// PhiIncoming is one `[ value, %label ]` edge of a phi instruction.
type PhiIncoming struct {
	Value string
	Label string
}

// EmitPhi appends a `phi` instruction with one or more incoming edges.
func (bb *BasicBlock) EmitPhi(typ string, incomings []PhiIncoming, hint string) (string, error) {
	body, err := phiBody(typ, incomings)
	if err != nil {
		return "", err
	}
	return bb.emitNamed(body, hint)
}

// EmitPhiInto is EmitPhi with an explicit destination name.
func (bb *BasicBlock) EmitPhiInto(dest, typ string, incomings []PhiIncoming) (string, error) {
	body, err := phiBody(typ, incomings)
	if err != nil {
		return "", err
	}
	return bb.emitNamedInto(body, dest)
}

func phiBody(typ string, incomings []PhiIncoming) (string, error) {
	if len(incomings) == 0 {
		return "", ErrEmptyPhiIncomings
	}
	var b strings.Builder
	fmt.Fprintf(&b, "phi %s ", typ)
	for i, inc := range incomings {
		if i > 0 {
			b.WriteString(", ")
		}
		label, err := FormatLabelOperand(inc.Label)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "[ %s, %s ]", inc.Value, label)
	}
	return b.String(), nil
}

// Arg is a single "<type> <value>" call argument.
type Arg struct {
	Type  string
	Value string
}

// EmitCall appends a `call` instruction. When returnType is "void" the
// call has no result and ("", false, nil) semantics apply: the returned
// name is empty and ok is false.
func (bb *BasicBlock) EmitCall(returnType, callee string, args []Arg, hint string) (string, bool, error) {
	body := callBody(returnType, callee, args)
	if returnType == "void" {
		if err := bb.emitVoid(body); err != nil {
			return "", false, err
		}
		return "", false, nil
	}
	name, err := bb.emitNamed(body, hint)
	return name, true, err
}

// EmitCallInto is EmitCall with an explicit destination name; it is an
// error to call it with returnType == "void".
func (bb *BasicBlock) EmitCallInto(dest, returnType, callee string, args []Arg) (string, error) {
	if returnType == "void" {
		return "", ErrVoidCallAssignment
	}
	return bb.emitNamedInto(callBody(returnType, callee, args), dest)
}

func callBody(returnType, callee string, args []Arg) string {
	var b strings.Builder
	fmt.Fprintf(&b, "call %s %s(", returnType, callee)
	for i, a := range args {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s %s", a.Type, a.Value)
	}
	b.WriteByte(')')
	return b.String()
}

// EmitLoad appends a `load` instruction. align of 0 omits the alignment
// clause.
func (bb *BasicBlock) EmitLoad(valueType, pointerType, pointerValue string, align uint, hint string) (string, error) {
	return bb.emitNamed(loadBody(valueType, pointerType, pointerValue, align), hint)
}

// EmitLoadInto is EmitLoad with an explicit destination name.
func (bb *BasicBlock) EmitLoadInto(dest, valueType, pointerType, pointerValue string, align uint) (string, error) {
	return bb.emitNamedInto(loadBody(valueType, pointerType, pointerValue, align), dest)
}

func loadBody(valueType, pointerType, pointerValue string, align uint) string {
	var b strings.Builder
	fmt.Fprintf(&b, "load %s, %s %s", valueType, pointerType, pointerValue)
	if align > 0 {
		fmt.Fprintf(&b, ", align %d", align)
	}
	return b.String()
}

// EmitStore appends a `store` instruction.
func (bb *BasicBlock) EmitStore(valueType, value, pointerType, pointerValue string, align uint) error {
	var b strings.Builder
	fmt.Fprintf(&b, "store %s %s, %s %s", valueType, value, pointerType, pointerValue)
	if align > 0 {
		fmt.Fprintf(&b, ", align %d", align)
	}
	return bb.emitVoid(b.String())
}

// ArraySize is the `<type> <value>` operand of a variable-length `alloca`.
type ArraySize struct {
	Type  string
	Value string
}

// EmitAlloca appends an `alloca` instruction. A nil arraySize omits the
// array-size operand; align of 0 omits the alignment clause.
func (bb *BasicBlock) EmitAlloca(allocatedType string, arraySize *ArraySize, align uint, hint string) (string, error) {
	return bb.emitNamed(allocaBody(allocatedType, arraySize, align), hint)
}

// EmitAllocaInto is EmitAlloca with an explicit destination name.
func (bb *BasicBlock) EmitAllocaInto(dest, allocatedType string, arraySize *ArraySize, align uint) (string, error) {
	return bb.emitNamedInto(allocaBody(allocatedType, arraySize, align), dest)
}

func allocaBody(allocatedType string, arraySize *ArraySize, align uint) string {
	var b strings.Builder
	fmt.Fprintf(&b, "alloca %s", allocatedType)
	if arraySize != nil {
		fmt.Fprintf(&b, ", %s %s", arraySize.Type, arraySize.Value)
	}
	if align > 0 {
		fmt.Fprintf(&b, ", align %d", align)
	}
	return b.String()
}

// Index is a single "<type> <value>" getelementptr index operand.
type Index struct {
	Type  string
	Value string
}

// EmitGetElementPtr appends a `getelementptr` instruction, carrying the
// `inbounds` keyword when inbounds is true.
func (bb *BasicBlock) EmitGetElementPtr(pointeeType, pointerType, pointerValue string, indices []Index, inbounds bool, hint string) (string, error) {
	return bb.emitNamed(gepBody(pointeeType, pointerType, pointerValue, indices, inbounds), hint)
}

// EmitGetElementPtrInto is EmitGetElementPtr with an explicit destination
// name.
func (bb *BasicBlock) EmitGetElementPtrInto(dest, pointeeType, pointerType, pointerValue string, indices []Index, inbounds bool) (string, error) {
	return bb.emitNamedInto(gepBody(pointeeType, pointerType, pointerValue, indices, inbounds), dest)
}

func gepBody(pointeeType, pointerType, pointerValue string, indices []Index, inbounds bool) string {
	var b strings.Builder
	b.WriteString("getelementptr ")
	if inbounds {
		b.WriteString("inbounds ")
	}
	fmt.Fprintf(&b, "%s, %s %s", pointeeType, pointerType, pointerValue)
	for _, idx := range indices {
		fmt.Fprintf(&b, ", %s %s", idx.Type, idx.Value)
	}
	return b.String()
}

// EmitCast appends a conversion instruction (`bitcast`, `sext`, `trunc`, …).
func (bb *BasicBlock) EmitCast(opcode, valueType, value, targetType, hint string) (string, error) {
	return bb.emitNamed(castBody(opcode, valueType, value, targetType), hint)
}

// EmitCastInto is EmitCast with an explicit destination name.
func (bb *BasicBlock) EmitCastInto(dest, opcode, valueType, value, targetType string) (string, error) {
	return bb.emitNamedInto(castBody(opcode, valueType, value, targetType), dest)
}

func castBody(opcode, valueType, value, targetType string) string {
	return fmt.Sprintf("%s %s %s to %s", opcode, valueType, value, targetType)
}

// EmitExtractValue appends an `extractvalue` instruction; indices must be
// non-empty.
func (bb *BasicBlock) EmitExtractValue(aggregateType, aggregateValue string, indices []uint, hint string) (string, error) {
	body, err := extractValueBody(aggregateType, aggregateValue, indices)
	if err != nil {
		return "", err
	}
	return bb.emitNamed(body, hint)
}

// EmitExtractValueInto is EmitExtractValue with an explicit destination
// name.
func (bb *BasicBlock) EmitExtractValueInto(dest, aggregateType, aggregateValue string, indices []uint) (string, error) {
	body, err := extractValueBody(aggregateType, aggregateValue, indices)
	if err != nil {
		return "", err
	}
	return bb.emitNamedInto(body, dest)
}

func extractValueBody(aggregateType, aggregateValue string, indices []uint) (string, error) {
	if len(indices) == 0 {
		return "", ErrEmptyIndices
	}
	var b strings.Builder
	fmt.Fprintf(&b, "extractvalue %s %s, ", aggregateType, aggregateValue)
	writeIndices(&b, indices)
	return b.String(), nil
}

// EmitInsertValue appends an `insertvalue` instruction; indices must be
// non-empty.
func (bb *BasicBlock) EmitInsertValue(aggregateType, aggregateValue, elementType, elementValue string, indices []uint, hint string) (string, error) {
	body, err := insertValueBody(aggregateType, aggregateValue, elementType, elementValue, indices)
	if err != nil {
		return "", err
	}
	return bb.emitNamed(body, hint)
}

// EmitInsertValueInto is EmitInsertValue with an explicit destination name.
func (bb *BasicBlock) EmitInsertValueInto(dest, aggregateType, aggregateValue, elementType, elementValue string, indices []uint) (string, error) {
	body, err := insertValueBody(aggregateType, aggregateValue, elementType, elementValue, indices)
	if err != nil {
		return "", err
	}
	return bb.emitNamedInto(body, dest)
}

func insertValueBody(aggregateType, aggregateValue, elementType, elementValue string, indices []uint) (string, error) {
	if len(indices) == 0 {
		return "", ErrEmptyIndices
	}
	var b strings.Builder
	fmt.Fprintf(&b, "insertvalue %s %s, %s %s, ", aggregateType, aggregateValue, elementType, elementValue)
	writeIndices(&b, indices)
	return b.String(), nil
}

func writeIndices(b *strings.Builder, indices []uint) {
	for i, idx := range indices {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.FormatUint(uint64(idx), 10))
	}
}

// EmitRetVoid appends a `ret void` terminator.
func (bb *BasicBlock) EmitRetVoid() error {
	return bb.emitTerminator("ret void")
}

// EmitRet appends a `ret <type> <value>` terminator.
func (bb *BasicBlock) EmitRet(typ, value string) error {
	return bb.emitTerminator(fmt.Sprintf("ret %s %s", typ, value))
}

// EmitBr appends an unconditional `br` terminator.
func (bb *BasicBlock) EmitBr(targetLabel string) error {
	operand, err := FormatLabelOperand(targetLabel)
	if err != nil {
		return err
	}
	return bb.emitTerminator("br label " + operand)
}

// EmitCondBr appends a conditional `br` terminator.
func (bb *BasicBlock) EmitCondBr(condition, trueLabel, falseLabel string) error {
	t, err := FormatLabelOperand(trueLabel)
	if err != nil {
		return err
	}
	f, err := FormatLabelOperand(falseLabel)
	if err != nil {
		return err
	}
	return bb.emitTerminator(fmt.Sprintf("br i1 %s, label %s, label %s", condition, t, f))
}

// SwitchCase is a single "<value> -> label" arm of a `switch` terminator.
type SwitchCase struct {
	Value string
	Label string
}

// EmitSwitch appends a `switch` terminator, with an empty case list
// rendering the single-line form.
func (bb *BasicBlock) EmitSwitch(conditionType, condition, defaultLabel string, cases []SwitchCase) error {
	defaultOperand, err := FormatLabelOperand(defaultLabel)
	if err != nil {
		return err
	}
	var b strings.Builder
	fmt.Fprintf(&b, "switch %s %s, label %s", conditionType, condition, defaultOperand)
	if len(cases) == 0 {
		return bb.emitTerminator(b.String())
	}
	b.WriteString(" [\n")
	for i, c := range cases {
		label, err := FormatLabelOperand(c.Label)
		if err != nil {
			return err
		}
		fmt.Fprintf(&b, "    %s %s, label %s", conditionType, c.Value, label)
		if i+1 < len(cases) {
			b.WriteByte('\n')
		}
	}
	b.WriteString("\n  ]")
	return bb.emitTerminator(b.String())
}

// EmitUnreachable appends an `unreachable` terminator.
func (bb *BasicBlock) EmitUnreachable() error {
	return bb.emitTerminator("unreachable")
}

// EmitComment appends a `; <text>` comment line.
func (bb *BasicBlock) EmitComment(text string) error {
	if err := bb.ensureNotTerminated(); err != nil {
		return err
	}
	bb.lines = append(bb.lines, "  ; "+text)
	return nil
}

// EmitRaw appends an already-rendered line verbatim, with no added
// indentation.
func (bb *BasicBlock) EmitRaw(text string) error {
	if err := bb.ensureNotTerminated(); err != nil {
		return err
	}
	bb.lines = append(bb.lines, text)
	return nil
}
