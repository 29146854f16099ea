package span

import (
	"fmt"
	"strconv"
	"strings"

	"fortio.org/safecast"
)

// ErrInvalidFileID is returned when a lookup is made against an unknown or
// out-of-range FileID.
var ErrInvalidFileID = fmt.Errorf("span: invalid file id")

type fileRecord struct {
	path        string
	contents    string
	lineOffsets []uint32 // start offset of each line
}

// Manager maps file identifiers to their contents and supports offset ->
// line/column resolution and caret-pointer rendering for diagnostics.
type Manager struct {
	files      []fileRecord
	pathLookup map[string]FileID
}

// NewManager constructs an empty Manager.
func NewManager() *Manager {
	return &Manager{pathLookup: make(map[string]FileID)}
}

// AddFile registers a file's contents and returns its FileID. Re-adding the
// same path returns the previously assigned id without re-scanning the
// contents, matching SourceManager::add_file.
func (m *Manager) AddFile(path, contents string) FileID {
	if id, ok := m.pathLookup[path]; ok {
		return id
	}
	id, err := safecast.Conv[uint32](len(m.files))
	if err != nil {
		panic(fmt.Errorf("span: too many files registered: %w", err))
	}
	rec := fileRecord{
		path:        path,
		contents:    contents,
		lineOffsets: buildLineOffsets(contents),
	}
	m.files = append(m.files, rec)
	m.pathLookup[path] = FileID(id)
	return FileID(id)
}

func buildLineOffsets(contents string) []uint32 {
	offsets := []uint32{0}
	for i := 0; i < len(contents); i++ {
		if contents[i] == '\n' {
			offsets = append(offsets, uint32(i+1))
		}
	}
	return offsets
}

func (m *Manager) lookup(file FileID) (*fileRecord, error) {
	if file == InvalidFileID || int(file) >= len(m.files) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFileID, file)
	}
	return &m.files[file], nil
}

// Filename returns the path a file was registered under.
func (m *Manager) Filename(file FileID) (string, error) {
	rec, err := m.lookup(file)
	if err != nil {
		return "", err
	}
	return rec.path, nil
}

// Source returns the full contents of a file.
func (m *Manager) Source(file FileID) (string, error) {
	rec, err := m.lookup(file)
	if err != nil {
		return "", err
	}
	return rec.contents, nil
}

// ToLineCol converts a byte offset into a 1-based line and column.
func (m *Manager) ToLineCol(file FileID, offset uint32) (LineCol, error) {
	rec, err := m.lookup(file)
	if err != nil {
		return LineCol{}, err
	}
	offsets := rec.lineOffsets
	if len(offsets) == 0 {
		return LineCol{Line: 1, Column: 1}, nil
	}
	line := 0
	for line+1 < len(offsets) && offsets[line+1] <= offset {
		line++
	}
	column := int(offset-offsets[line]) + 1
	return LineCol{Line: line + 1, Column: column}, nil
}

// LineText returns the text of a single 1-based line, without its trailing
// newline.
func (m *Manager) LineText(file FileID, line int) (string, error) {
	rec, err := m.lookup(file)
	if err != nil {
		return "", err
	}
	return lineSlice(rec.contents, rec.lineOffsets, line), nil
}

func lineSlice(source string, offsets []uint32, line int) string {
	if line <= 0 || line > len(offsets) {
		return ""
	}
	start := offsets[line-1]
	var end uint32
	if line < len(offsets) {
		end = offsets[line]
		// Trim the newline that terminates the line.
		if end > start && source[end-1] == '\n' {
			end--
		}
	} else {
		end = uint32(len(source))
	}
	return source[start:end]
}

// FormatSpan renders a span as "path:line:col" followed by a source snippet
// with a caret pointer whose length equals max(1, end-start), matching
// SourceManager::format_span.
func (m *Manager) FormatSpan(s Span) (string, error) {
	if !s.Valid() {
		return "<unknown span>", nil
	}
	loc, err := m.ToLineCol(s.File, s.Start)
	if err != nil {
		return "", err
	}
	filename, err := m.Filename(s.File)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s:%d:%d", filename, loc.Line, loc.Column)

	lineText, err := m.LineText(s.File, loc.Line)
	if err != nil {
		return "", err
	}
	if lineText == "" {
		return b.String(), nil
	}

	lineNum := strconv.Itoa(loc.Line)
	fmt.Fprintf(&b, "\n %s | %s", lineNum, lineText)
	fmt.Fprintf(&b, "\n %s | ", strings.Repeat(" ", len(lineNum)))

	caretStart := 0
	if loc.Column > 0 {
		caretStart = loc.Column - 1
	}
	b.WriteString(strings.Repeat(" ", caretStart))

	length := int(s.End - s.Start)
	if s.End <= s.Start {
		length = 1
	}
	b.WriteString(strings.Repeat("^", length))

	return b.String(), nil
}
