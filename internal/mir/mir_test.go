package mir

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProgramStringNoIndependentLinesSingleFunction(t *testing.T) {
	p := Program{
		Functions: []Function{
			{
				HeaderLine: "define i32 @main() {",
				Blocks: []Block{
					{LabelLine: "entry:", StmtLines: []string{"ret i32 0"}},
				},
			},
		},
	}
	require.Equal(t, "define i32 @main() {\n  entry:\n    ret i32 0\n}\n", p.String())
}

func TestProgramStringSeparatesIndependentLinesFromFunctions(t *testing.T) {
	p := Program{
		IndependentLines: []string{"@g = global i32 0"},
		Functions: []Function{
			{HeaderLine: "define void @f() {", Blocks: []Block{{LabelLine: "entry:"}}},
		},
	}
	got := p.String()
	require.Equal(t, "@g = global i32 0\n\ndefine void @f() {\n  entry:\n}\n", got)
}

func TestProgramStringSeparatesConsecutiveFunctions(t *testing.T) {
	p := Program{
		Functions: []Function{
			{HeaderLine: "define void @a() {", Blocks: []Block{{LabelLine: "entry:"}}},
			{HeaderLine: "define void @b() {", Blocks: []Block{{LabelLine: "entry:"}}},
		},
	}
	got := p.String()
	require.Equal(t,
		"define void @a() {\n  entry:\n}\n\ndefine void @b() {\n  entry:\n}\n",
		got)
}
