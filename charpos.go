// Package charpos decorates a stream of characters with line and column
// positions.
//
// A Tracker wraps any Source of runes, passes each rune through unchanged and
// keeps a cursor holding the position of the next rune it will produce. A
// Tagged stream builds on a Tracker and yields each rune paired with the
// position it occupied. Both are intended for lexers and parsers that need to
// report human-readable source locations.
//
// Only '\n' starts a new line. A carriage return is an ordinary character
// that advances the column, so "a\r\nb" places 'b' at 2:1 and '\n' at 1:3.
//
// Trackers are not safe for concurrent use.
package charpos

import "github.com/google/charpos/textpos"

// Source produces characters one at a time.
//
// Next returns the next rune and true, or false once the source is
// exhausted. Sources used with this package are expected to keep returning
// false after the first false.
type Source interface {
	Next() (rune, bool)
}

// Sizer is implemented by sources that can estimate how many runes remain.
//
// SizeHint returns a lower bound and, if bounded is true, an upper bound on
// the number of runes left.
type Sizer interface {
	SizeHint() (lower, upper int, bounded bool)
}

// Counter is implemented by sources that can consume their remaining runes
// faster than calling Next repeatedly.
//
// Count exhausts the source and returns the number of runes that remained.
type Counter interface {
	Count() int
}

// Char is a rune together with the position it occupies in the text.
type Char struct {
	Rune rune
	Pos  textpos.Position
}

// SizeHint returns src's size estimate if it implements Sizer, and the
// unknown estimate (0, 0, false) otherwise.
func SizeHint(src Source) (lower, upper int, bounded bool) {
	if s, ok := src.(Sizer); ok {
		return s.SizeHint()
	}
	return 0, 0, false
}

// Count exhausts src and returns the number of runes it produced. It uses
// src's Count method when one is available.
//
// Count never returns for an infinite source.
func Count(src Source) int {
	if c, ok := src.(Counter); ok {
		return c.Count()
	}
	n := 0
	for {
		if _, ok := src.Next(); !ok {
			return n
		}
		n++
	}
}

// errSource is implemented by sources that may stop early because of an
// error.
type errSource interface {
	Err() error
}
