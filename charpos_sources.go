package charpos

import (
	"io"
	"iter"
	"unicode/utf8"

	"github.com/golang/glog"
)

// StringSource is a Source reading the runes of a string.
//
// Invalid UTF-8 is decoded the same way a range loop over the string decodes
// it: each bad byte becomes one utf8.RuneError.
type StringSource struct {
	s   string
	off int
}

// FromString returns a Source over the runes of s.
func FromString(s string) *StringSource {
	return &StringSource{s: s}
}

// Next implements Source.
func (src *StringSource) Next() (rune, bool) {
	if src.off >= len(src.s) {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(src.s[src.off:])
	src.off += size
	return r, true
}

// SizeHint implements Sizer. The bounds come from the number of bytes left.
func (src *StringSource) SizeHint() (lower, upper int, bounded bool) {
	rem := len(src.s) - src.off
	return (rem + utf8.UTFMax - 1) / utf8.UTFMax, rem, true
}

// Count implements Counter.
func (src *StringSource) Count() int {
	n := utf8.RuneCountInString(src.s[src.off:])
	src.off = len(src.s)
	return n
}

// Offset returns the byte offset of the next rune within the string.
func (src *StringSource) Offset() int { return src.off }

// SliceSource is a Source reading from a slice of runes.
type SliceSource struct {
	runes []rune
}

// FromRunes returns a Source over rs. The slice is not copied and must not be
// modified while the source is in use.
func FromRunes(rs []rune) *SliceSource {
	return &SliceSource{rs}
}

// Next implements Source.
func (src *SliceSource) Next() (rune, bool) {
	if len(src.runes) == 0 {
		return 0, false
	}
	r := src.runes[0]
	src.runes = src.runes[1:]
	return r, true
}

// SizeHint implements Sizer. The hint is exact.
func (src *SliceSource) SizeHint() (lower, upper int, bounded bool) {
	return len(src.runes), len(src.runes), true
}

// Count implements Counter.
func (src *SliceSource) Count() int {
	n := len(src.runes)
	src.runes = nil
	return n
}

// ReaderSource is a Source reading from an io.RuneReader such as a
// *bufio.Reader or *strings.Reader.
//
// The source ends at io.EOF or at the first other error, which is then
// available from Err.
type ReaderSource struct {
	r    io.RuneReader
	err  error
	done bool
}

// FromReader returns a Source reading runes from r.
func FromReader(r io.RuneReader) *ReaderSource {
	return &ReaderSource{r: r}
}

// Next implements Source.
func (src *ReaderSource) Next() (rune, bool) {
	if src.done {
		return 0, false
	}
	r, _, err := src.r.ReadRune()
	if err != nil {
		src.done = true
		if err != io.EOF {
			src.err = err
			glog.Warningf("charpos: rune reader stopped with error: %v", err)
		}
		return 0, false
	}
	return r, true
}

// Err returns the error that ended the source, or nil if the source is still
// producing runes or reached io.EOF.
func (src *ReaderSource) Err() error { return src.err }

// SeqSource is a Source pulling runes from an iter.Seq.
//
// If the sequence is abandoned before it is exhausted, Stop must be called to
// release the resources held by the iterator.
type SeqSource struct {
	next func() (rune, bool)
	stop func()
}

// FromSeq returns a Source pulling runes from seq.
func FromSeq(seq iter.Seq[rune]) *SeqSource {
	next, stop := iter.Pull(seq)
	return &SeqSource{next, stop}
}

// Next implements Source.
func (src *SeqSource) Next() (rune, bool) { return src.next() }

// Stop ends the iteration. Next returns false after Stop is called.
func (src *SeqSource) Stop() { src.stop() }
