package token

import (
	"fmt"
	"sort"
	"strings"
)

// Location points to a particular place in a source file. Line and Column
// are 1-indexed; Column counts bytes.
type Location struct {
	File   string
	Offset int
	Line   int
	Column int
}

// IsValid reports whether the location refers to a line of a file.
func (l Location) IsValid() bool {
	return l.Line > 0
}

func (l Location) String() string {
	if !l.IsValid() {
		if l.File != "" {
			return l.File
		}
		return "-"
	}
	if l.File == "" {
		return fmt.Sprintf("%d:%d", l.Line, l.Column)
	}
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
}

// Converter maps absolute byte offsets to locations.
type Converter interface {
	Location(offset int) Location
}

// ConverterFunc adapts a function to the Converter interface.
type ConverterFunc func(offset int) Location

// Location implements Converter.
func (f ConverterFunc) Location(offset int) Location {
	return f(offset)
}

// LineTable is a Converter over a complete source text. It also gives access
// to individual lines for diagnostic rendering.
type LineTable struct {
	file   string
	source string
	starts []int
}

// NewLineTable indexes the line starts of source.
func NewLineTable(file, source string) *LineTable {
	starts := []int{0}
	for i := 0; i < len(source); i++ {
		if source[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &LineTable{file: file, source: source, starts: starts}
}

// File returns the file name the table was built for.
func (t *LineTable) File() string {
	return t.file
}

// Location implements Converter. Offsets outside the source are clamped.
func (t *LineTable) Location(offset int) Location {
	if offset < 0 {
		offset = 0
	}
	if offset > len(t.source) {
		offset = len(t.source)
	}
	line := sort.Search(len(t.starts), func(i int) bool { return t.starts[i] > offset }) - 1
	return Location{
		File:   t.file,
		Offset: offset,
		Line:   line + 1,
		Column: offset - t.starts[line] + 1,
	}
}

// LineCount returns the number of lines in the source.
func (t *LineTable) LineCount() int {
	return len(t.starts)
}

// Line returns the text of the 1-indexed line n without its line terminator.
func (t *LineTable) Line(n int) string {
	if n < 1 || n > len(t.starts) {
		return ""
	}
	start := t.starts[n-1]
	end := len(t.source)
	if n < len(t.starts) {
		end = t.starts[n] - 1
	}
	return strings.TrimSuffix(t.source[start:end], "\r")
}
