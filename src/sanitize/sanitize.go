// Package sanitize cleans feed strings before they reach the terminal.
// A feed is remote input: escape sequences or control characters in a name
// or location must not be able to recolour, move the cursor in, or retitle
// the user's terminal.
package sanitize

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/x/ansi"
)

// StripANSI removes ANSI escape sequences.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// Clean strips escape sequences, replaces remaining control characters
// (newlines and tabs included) with spaces and trims the result.
func Clean(s string) string {
	s = StripANSI(s)
	s = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, s)
	return strings.TrimSpace(s)
}
