package textpos

import (
	"errors"
	"fmt"
)

// Error is an error that occurred at a particular position within a
// document.
type Error struct {
	// Document names the source of the text. It is only used for printing
	// and may be empty.
	Document string
	Pos      Position
	Err      error
}

// Errorf returns an *Error at pos in the named document with a message
// formatted by fmt.Errorf, so %w may be used to wrap another error.
func Errorf(document string, pos Position, format string, args ...interface{}) error {
	return &Error{document, pos, fmt.Errorf(format, args...)}
}

// Error returns a message of the form "document:line:col: message". The
// document prefix is omitted when Document is empty.
func (e *Error) Error() string {
	if e.Document == "" {
		return fmt.Sprintf("%s: %v", e.Pos, e.Err)
	}
	return fmt.Sprintf("%s:%s: %v", e.Document, e.Pos, e.Err)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error { return e.Err }

// PositionOf returns the position of the first *Error in err's chain.
func PositionOf(err error) (Position, bool) {
	var perr *Error
	if !errors.As(err, &perr) {
		return Position{}, false
	}
	return perr.Pos, true
}
