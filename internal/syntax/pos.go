package syntax

import "fmt"

// Pos represents a position in a source text.
// The zero value is an invalid position.
type Pos struct {
	filename string // source name, may be empty
	offset   int    // 0-based rune offset
	line     uint32 // 1-based line number
	col      uint32 // 1-based column number (in runes)
}

// NewPos creates a new Pos. Line and column numbers are 1-based, offset is 0-based.
func NewPos(filename string, offset int, line, col uint32) Pos {
	return Pos{filename: filename, offset: offset, line: line, col: col}
}

// String returns the position as "filename:line:col", or "line:col" if the
// filename is empty.
func (p Pos) String() string {
	if p.filename != "" {
		return fmt.Sprintf("%s:%d:%d", p.filename, p.line, p.col)
	}
	return fmt.Sprintf("%d:%d", p.line, p.col)
}

// IsValid reports whether the position is valid.
func (p Pos) IsValid() bool {
	return p.line > 0
}

// Offset returns the 0-based rune offset from the start of the source.
func (p Pos) Offset() int {
	return p.offset
}

// Line returns the 1-based line number.
func (p Pos) Line() uint32 {
	return p.line
}

// Col returns the 1-based column number.
func (p Pos) Col() uint32 {
	return p.col
}

// Filename returns the source name.
func (p Pos) Filename() string {
	return p.filename
}
