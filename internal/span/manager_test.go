package span

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddFileIsIdempotentPerPath(t *testing.T) {
	m := NewManager()
	id1 := m.AddFile("a.rs", "fn main() {}\n")
	id2 := m.AddFile("a.rs", "fn main() {}\n")
	require.Equal(t, id1, id2)

	id3 := m.AddFile("b.rs", "struct S {}\n")
	require.NotEqual(t, id1, id3)
}

func TestToLineCol(t *testing.T) {
	m := NewManager()
	id := m.AddFile("a.rs", "let x = 1;\nlet y = 2;\n")

	loc, err := m.ToLineCol(id, 0)
	require.NoError(t, err)
	require.Equal(t, LineCol{Line: 1, Column: 1}, loc)

	loc, err = m.ToLineCol(id, 11)
	require.NoError(t, err)
	require.Equal(t, LineCol{Line: 2, Column: 1}, loc)
}

func TestToLineColInvalidFile(t *testing.T) {
	m := NewManager()
	_, err := m.ToLineCol(FileID(7), 0)
	require.ErrorIs(t, err, ErrInvalidFileID)
}

func TestFormatSpanCaretLength(t *testing.T) {
	m := NewManager()
	id := m.AddFile("a.rs", "let abcdef = 1;\n")

	// "abcdef" starts at offset 4 and is 6 bytes long.
	s := Span{File: id, Start: 4, End: 10}
	out, err := m.FormatSpan(s)
	require.NoError(t, err)
	require.Contains(t, out, "a.rs:1:5")
	require.Contains(t, out, "^^^^^^")
}

func TestFormatSpanZeroLengthUsesSingleCaret(t *testing.T) {
	m := NewManager()
	id := m.AddFile("a.rs", "x\n")

	s := Span{File: id, Start: 0, End: 0}
	out, err := m.FormatSpan(s)
	require.NoError(t, err)
	require.Contains(t, out, "^")
	require.NotContains(t, out, "^^")
}

func TestFormatSpanInvalid(t *testing.T) {
	m := NewManager()
	out, err := m.FormatSpan(InvalidSpan)
	require.NoError(t, err)
	require.Equal(t, "<unknown span>", out)
}

func TestMergeSpans(t *testing.T) {
	m := NewManager()
	id := m.AddFile("a.rs", "abcdef\n")

	a := Span{File: id, Start: 2, End: 4}
	b := Span{File: id, Start: 1, End: 5}
	merged := MergeSpans(a, b)
	require.Equal(t, Span{File: id, Start: 1, End: 5}, merged)

	require.Equal(t, b, MergeSpans(InvalidSpan, b))
	require.Equal(t, a, MergeSpans(a, InvalidSpan))
}
