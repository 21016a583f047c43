package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// VisualWidth returns the display width of text, accounting for multi-byte characters
func VisualWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate truncates text to maxLen characters (visual width) with optional ellipsis
func Truncate(s string, maxLen int, ellipsis bool) string {
	s = strings.TrimSpace(s)
	if maxLen <= 0 {
		return ""
	}

	visualWidth := VisualWidth(s)
	if visualWidth > maxLen {
		if ellipsis && maxLen > 3 {
			// Truncate to fit maxLen-3 visual characters, then add ellipsis
			return runewidth.Truncate(s, maxLen-3, "") + "..."
		}
		return runewidth.Truncate(s, maxLen, "")
	}
	return s
}

// FitColumns shrinks column widths until they sum to at most budget.
// The widest column gives way first; no column goes below minWidth.
func FitColumns(widths []int, budget, minWidth int) []int {
	fitted := make([]int, len(widths))
	copy(fitted, widths)

	total := 0
	for _, w := range fitted {
		total += w
	}

	for total > budget {
		widest := -1
		for i, w := range fitted {
			if w > minWidth && (widest < 0 || w > fitted[widest]) {
				widest = i
			}
		}
		if widest < 0 {
			break
		}
		fitted[widest]--
		total--
	}

	return fitted
}
