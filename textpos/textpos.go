// Package textpos provides types for working with line-based positions of
// characters in a textual document.
//
// Lines and columns are 1-based ordinals. Columns count characters (runes),
// not bytes, so a Position matches the cursor location most text editors
// display.
package textpos

import (
	"cmp"
	"fmt"
	"strconv"
)

// Line is the line number of some text in a document.
type Line uint32

// LineFromOffset returns a Line from an offset value (where 0 indicates the
// first line).
func LineFromOffset(o int) Line { return LineFromOrdinal(o + 1) }

// LineFromOrdinal returns a Line from a positive value.
func LineFromOrdinal(o int) Line { return Line(o) }

// Offset returns the line number where 0 indicates the first line.
func (n Line) Offset() int { return n.Ordinal() - 1 }

// Ordinal returns the line number where 1 indicates the first line.
func (n Line) Ordinal() int { return int(n) }

// String returns the ordinal value encoded as a base 10 string.
func (n Line) String() string { return strconv.Itoa(n.Ordinal()) }

// IsValid reports if the line value is valid (ordinal >= 1).
func (n Line) IsValid() bool { return n > 0 }

// Column is a number indicating a horizontal offset within a line of text,
// measured in characters.
type Column uint32

// ColumnFromOffset returns a Column from an offset value (where 0 indicates
// the first column).
func ColumnFromOffset(o int) Column { return ColumnFromOrdinal(o + 1) }

// ColumnFromOrdinal returns a Column from an ordinal value (where 1 indicates
// the first column).
func ColumnFromOrdinal(o int) Column { return Column(o) }

// Offset returns the column number where 0 indicates the first column.
func (n Column) Offset() int { return n.Ordinal() - 1 }

// Ordinal returns the column number where 1 indicates the first column.
func (n Column) Ordinal() int { return int(n) }

// String returns the ordinal value encoded as a base 10 string.
func (n Column) String() string { return strconv.Itoa(n.Ordinal()) }

// IsValid reports if the column value is valid (ordinal >= 1).
func (n Column) IsValid() bool { return n > 0 }

// Position is a two dimensional textual position (line, column).
//
// Position is a small value type. It is compared with == and copied freely.
// The zero value is not a valid position; use Start.
type Position struct {
	Line   Line
	Column Column
}

// Start returns the position of the first character of a document, 1:1.
func Start() Position {
	return Position{Line: 1, Column: 1}
}

// MakePosition returns a new Position from a line and column.
func MakePosition(line Line, col Column) Position {
	return Position{line, col}
}

// NextLine moves p to the first column of the following line.
//
// Overflow is not checked. A document with more than 2^32-1 lines wraps
// around to line 0.
func (p *Position) NextLine() {
	p.Column = 1
	p.Line++
}

// NextColumn moves p one column to the right. Overflow is not checked.
func (p *Position) NextColumn() {
	p.Column++
}

// IsValid reports whether both the line and column are valid.
func (p Position) IsValid() bool {
	return p.Line.IsValid() && p.Column.IsValid()
}

// Compare returns -1, 0 or +1 depending on whether p is before, equal to, or
// after q. Lines are compared first, then columns.
func (p Position) Compare(q Position) int {
	if c := cmp.Compare(p.Line, q.Line); c != 0 {
		return c
	}
	return cmp.Compare(p.Column, q.Column)
}

// Before reports whether p comes strictly before q.
func (p Position) Before(q Position) bool {
	return p.Compare(q) < 0
}

// String returns a string representation of a Position.
//
// If column and line are valid, returns "lineOrdinal:columnOrdinal". Invalid
// components are printed as "-".
func (p Position) String() string {
	l, c := "-", "-"
	if p.Line.IsValid() {
		l = p.Line.String()
	}
	if p.Column.IsValid() {
		c = p.Column.String()
	}
	return fmt.Sprintf("%s:%s", l, c)
}
