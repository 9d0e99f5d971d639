// Package parse extracts values from the free-form text printed by the Solana CLI tools.
//
// Each parser walks an ordered list of matchers; the first one that succeeds wins.
package parse

import "fmt"

// Matcher inspects raw tool output and reports whether it found a value.
type Matcher struct {
	Name  string
	Match func(output string) (string, bool)
}

// First runs matchers in order and returns the first hit with the name of the matcher that produced it.
func First(output string, matchers []Matcher) (value, matcher string, ok bool) {
	for _, m := range matchers {
		if v, ok := m.Match(output); ok {
			return v, m.Name, true
		}
	}
	return "", "", false
}

// Error is returned when no matcher recognised the output. Raw keeps the text for diagnostics.
type Error struct {
	What string
	Raw  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("could not parse %s from output", e.What)
}
