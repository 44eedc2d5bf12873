package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/google/charpos"
	"github.com/stoewer/go-strcase"
)

// format selects how scanned characters are printed.
type format int

const (
	formatText format = iota
	formatJSONLines
	formatSummary
)

// Keys are kebab-case; parseFormat normalizes user input to match.
var formatsByName = map[string]format{
	"text":       formatText,
	"json-lines": formatJSONLines,
	"summary":    formatSummary,
}

// cancelCheckInterval is the number of runes scanned between checks for
// context cancellation.
const cancelCheckInterval = 4096

func parseFormat(s string) (format, error) {
	f, ok := formatsByName[strcase.KebabCase(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("unknown format %q, want one of text, json-lines, summary", s)
	}
	return f, nil
}

// jsonChar is the record printed for each character in json-lines format.
type jsonChar struct {
	File   string `json:"file"`
	Rune   string `json:"rune"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

func (f format) write(ctx context.Context, name string, r io.RuneReader, w io.Writer) error {
	src := charpos.FromReader(r)
	switch f {
	case formatSummary:
		return writeSummary(ctx, name, charpos.NewTracker(src), w)
	case formatJSONLines:
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		return writeChars(ctx, charpos.NewTagged(src), src, func(c charpos.Char) error {
			return enc.Encode(&jsonChar{name, string(c.Rune), c.Pos.Line.Ordinal(), c.Pos.Column.Ordinal()})
		})
	default:
		return writeChars(ctx, charpos.NewTagged(src), src, func(c charpos.Char) error {
			_, err := fmt.Fprintf(w, "%s:%s\t%q\n", name, c.Pos, c.Rune)
			return err
		})
	}
}

func writeChars(ctx context.Context, tg *charpos.Tagged, src *charpos.ReaderSource, emit func(charpos.Char) error) error {
	for n := 0; ; n++ {
		if n%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		c, ok := tg.Next()
		if !ok {
			break
		}
		if err := emit(c); err != nil {
			return err
		}
	}
	if err := src.Err(); err != nil {
		return fmt.Errorf("%s: read failed: %w", tg.Position(), err)
	}
	return nil
}

func writeSummary(ctx context.Context, name string, tr *charpos.Tracker, w io.Writer) error {
	runes, newlines := 0, 0
	for r := range tr.All() {
		if runes%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		runes++
		if r == '\n' {
			newlines++
		}
	}
	if err := tr.Err(); err != nil {
		return tr.Errorf("", "read failed: %w", err)
	}
	_, err := fmt.Fprintf(w, "%s\t%d runes\t%d newlines\tend %s\n", name, runes, newlines, tr.Position())
	return err
}
