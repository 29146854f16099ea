// Package span tracks source file contents and renders human-readable
// location pointers for diagnostics.
package span

import "math"

// FileID identifies a source file registered with a Manager.
type FileID uint32

// InvalidFileID is the sentinel returned when no file is associated.
const InvalidFileID FileID = math.MaxUint32

// Span is a half-open byte range within a single file.
type Span struct {
	File  FileID
	Start uint32
	End   uint32
}

// InvalidSpan is the span with no associated file (File is InvalidFileID).
// It is not the zero Span, whose File is 0 and which is therefore valid.
var InvalidSpan = Span{File: InvalidFileID}

// Valid reports whether the span refers to a real file.
func (s Span) Valid() bool {
	return s.File != InvalidFileID
}

// Len returns the number of bytes the span covers, or 0 if End <= Start.
func (s Span) Len() uint32 {
	if s.End <= s.Start {
		return 0
	}
	return s.End - s.Start
}

// MergeSpans returns the smallest span covering both a and b. If either span
// is invalid the other is returned unchanged; spans from different files
// cannot be merged and b wins, matching Span::merge in the original source.
func MergeSpans(a, b Span) Span {
	if !a.Valid() {
		return b
	}
	if !b.Valid() {
		return a
	}
	if a.File != b.File {
		return b
	}
	start, end := a.Start, a.End
	if b.Start < start {
		start = b.Start
	}
	if b.End > end {
		end = b.End
	}
	return Span{File: a.File, Start: start, End: end}
}

// LineCol is a 1-based line and column location within a file.
type LineCol struct {
	Line   int
	Column int
}
