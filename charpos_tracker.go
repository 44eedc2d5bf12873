package charpos

import (
	"io"
	"iter"
	"unicode/utf8"

	"github.com/google/charpos/textpos"
)

// Tracker wraps a Source and keeps track of the position of the next rune it
// will produce.
//
// The runes returned by a Tracker are exactly those of the wrapped source.
type Tracker struct {
	src Source
	pos textpos.Position
}

// NewTracker returns a Tracker reading from src, positioned at 1:1.
func NewTracker(src Source) *Tracker {
	return &Tracker{src: src, pos: textpos.Start()}
}

// Position returns the position of the rune the next call to Next will
// return. Once the source is exhausted it is the position just past the last
// rune.
func (t *Tracker) Position() textpos.Position { return t.pos }

// Next returns the next rune from the source and advances the position: to
// the start of the next line if the rune is '\n', otherwise by one column.
// It returns false, leaving the position unchanged, if the source is
// exhausted.
func (t *Tracker) Next() (rune, bool) {
	r, ok := t.src.Next()
	if !ok {
		return 0, false
	}
	if r == '\n' {
		t.pos.NextLine()
	} else {
		t.pos.NextColumn()
	}
	return r, true
}

// Count consumes the rest of the source and returns the number of runes that
// remained.
//
// The runes are discarded without being tracked, so Position is not advanced.
// Use Next to skip runes whose positions matter.
func (t *Tracker) Count() int {
	return Count(t.src)
}

// SizeHint reports the source's estimate of the number of runes left. See
// Sizer.
func (t *Tracker) SizeHint() (lower, upper int, bounded bool) {
	return SizeHint(t.src)
}

// Source returns the wrapped source.
//
// Reading from the returned source bypasses the tracker: runes taken from it
// directly are not counted and Position will no longer match the source's
// read position.
func (t *Tracker) Source() Source { return t.src }

// Err returns the error that ended the source early, if the source reports
// one (as ReaderSource does), and nil otherwise.
func (t *Tracker) Err() error {
	if es, ok := t.src.(errSource); ok {
		return es.Err()
	}
	return nil
}

// ReadRune implements io.RuneReader. The size is the length of the rune's
// UTF-8 encoding. At the end of the source it returns io.EOF, or the
// source's error if it ended early.
func (t *Tracker) ReadRune() (r rune, size int, err error) {
	r, ok := t.Next()
	if !ok {
		if err := t.Err(); err != nil {
			return 0, 0, err
		}
		return 0, 0, io.EOF
	}
	if size = utf8.RuneLen(r); size < 0 {
		size = len(string(utf8.RuneError))
	}
	return r, size, nil
}

// All returns an iterator over the remaining runes. Position may be consulted
// from within the loop body.
func (t *Tracker) All() iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for {
			r, ok := t.Next()
			if !ok || !yield(r) {
				return
			}
		}
	}
}

// Errorf returns a *textpos.Error located at the tracker's current position.
func (t *Tracker) Errorf(document, format string, args ...interface{}) error {
	return textpos.Errorf(document, t.pos, format, args...)
}
