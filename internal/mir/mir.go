// Package mir implements the thin, string-line MIR program model: a
// container for already-rendered instruction text grouped into blocks and
// functions, with no semantic content of its own. Grounded directly on
// codegen::ProgramCode/FunctionCode/BlockCode.
package mir

import "strings"

// Block is a labeled sequence of already-rendered statement lines.
type Block struct {
	LabelLine string
	StmtLines []string
}

// Function is a header line followed by its basic blocks.
type Function struct {
	HeaderLine string
	Blocks     []Block
}

// Program is the top-level MIR container: free-standing lines (globals,
// declarations) followed by function bodies.
type Program struct {
	IndependentLines []string
	Functions        []Function
}

const indentWidth = 2

func indent(level int) string {
	return strings.Repeat(" ", level*indentWidth)
}

// String renders the program, matching ProgramCode::to_string exactly: a
// blank line separates the independent-line block (if any) from the first
// function, and separates consecutive functions; each function ends with a
// bare "}" line.
func (p Program) String() string {
	var b strings.Builder

	for _, line := range p.IndependentLines {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	for i, fn := range p.Functions {
		if len(p.IndependentLines) > 0 || i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(fn.HeaderLine)
		b.WriteByte('\n')

		for _, block := range fn.Blocks {
			b.WriteString(indent(1))
			b.WriteString(block.LabelLine)
			b.WriteByte('\n')
			for _, stmt := range block.StmtLines {
				b.WriteString(indent(2))
				b.WriteString(stmt)
				b.WriteByte('\n')
			}
		}
		b.WriteString("}\n")
	}

	return b.String()
}
