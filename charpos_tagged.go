package charpos

import (
	"iter"

	"github.com/google/charpos/textpos"
)

// Tagged is a stream of characters that tags each rune with the position at
// which it occurs.
type Tagged struct {
	t *Tracker
}

// NewTagged returns a Tagged stream reading from src.
func NewTagged(src Source) *Tagged {
	return &Tagged{NewTracker(src)}
}

// Next returns the next rune along with the position it occupies, or false if
// the source is exhausted.
func (tg *Tagged) Next() (Char, bool) {
	pos := tg.t.Position()
	r, ok := tg.t.Next()
	if !ok {
		return Char{}, false
	}
	return Char{r, pos}, true
}

// Position returns the position of the next rune, or the position just past
// the end once the stream is exhausted. It is useful for reporting an
// unexpected end of input.
func (tg *Tagged) Position() textpos.Position { return tg.t.Position() }

// Count consumes the rest of the stream without tracking positions and
// returns the number of runes that remained.
func (tg *Tagged) Count() int { return tg.t.Count() }

// SizeHint reports the source's estimate of the number of runes left.
func (tg *Tagged) SizeHint() (lower, upper int, bounded bool) { return tg.t.SizeHint() }

// All returns an iterator over the remaining runes and their positions.
func (tg *Tagged) All() iter.Seq2[rune, textpos.Position] {
	return func(yield func(rune, textpos.Position) bool) {
		for {
			c, ok := tg.Next()
			if !ok || !yield(c.Rune, c.Pos) {
				return
			}
		}
	}
}
