package textpos

import "fmt"

// Span is a continuous interval of positions within a document.
//
// Start is the position of the first character in the span. End is the
// position just past the last character, so an empty span has Start == End.
type Span struct {
	Start, End Position
}

// MakeSpan returns a new Span from start (inclusive) to end (exclusive).
func MakeSpan(start, end Position) Span {
	return Span{start, end}
}

// IsValid reports whether both endpoints are valid and End is not before
// Start.
func (s Span) IsValid() bool {
	return s.Start.IsValid() && s.End.IsValid() && !s.End.Before(s.Start)
}

// Contains reports whether p lies within the half-open interval [Start, End).
func (s Span) Contains(p Position) bool {
	return !p.Before(s.Start) && p.Before(s.End)
}

// String is a concise, human-readable representation of the span suitable
// for printing in error messages.
//
// A span on a single line prints as "line:startCol-endCol"; otherwise both
// endpoints are printed in full, as in "1:3-2:4".
func (s Span) String() string {
	if s.Start.Line == s.End.Line && s.Start.Line.IsValid() {
		return fmt.Sprintf("%s-%s", s.Start, s.End.Column)
	}
	return fmt.Sprintf("%s-%s", s.Start, s.End)
}
