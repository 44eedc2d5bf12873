package charpos_test

import (
	"fmt"

	"github.com/google/charpos"
)

func ExampleTracker() {
	tr := charpos.NewTracker(charpos.FromString("ab\nd"))
	for {
		pos := tr.Position()
		r, ok := tr.Next()
		if !ok {
			break
		}
		fmt.Printf("%s %q\n", pos, r)
	}
	fmt.Println("end", tr.Position())
	// Output:
	// 1:1 'a'
	// 1:2 'b'
	// 1:3 '\n'
	// 2:1 'd'
	// end 2:2
}

func ExampleTagged() {
	tg := charpos.NewTagged(charpos.FromString("a\r\nb"))
	for r, pos := range tg.All() {
		fmt.Printf("%q at %s\n", r, pos)
	}
	// Output:
	// 'a' at 1:1
	// '\r' at 1:2
	// '\n' at 1:3
	// 'b' at 2:1
}

// A lexer can report where the input ended unexpectedly.
func ExampleTracker_Errorf() {
	tr := charpos.NewTracker(charpos.FromString("say \"hello\nworld"))
	inString := false
	for r := range tr.All() {
		if r == '"' {
			inString = !inString
		}
	}
	if inString {
		fmt.Println(tr.Errorf("notes.txt", "unterminated string"))
	}
	// Output:
	// notes.txt:2:6: unterminated string
}
