// Package textutil provides width-aware text helpers for terminal output.
// Widths are terminal columns, not bytes or runes, so wide characters
// count as two.
package textutil

import (
	"github.com/mattn/go-runewidth"
)

const ellipsis = "…"

// Width returns the number of terminal columns s occupies.
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate shortens s to at most max columns, appending an ellipsis when
// anything was cut.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if Width(s) <= max {
		return s
	}
	budget := max - Width(ellipsis)
	if budget < 0 {
		return ellipsis
	}
	out := make([]rune, 0, len(s))
	used := 0
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if used+w > budget {
			break
		}
		out = append(out, r)
		used += w
	}
	return string(out) + ellipsis
}

// PadRight pads s with spaces to exactly width columns, truncating when
// it is already wider. Intended for fixed-width list columns.
func PadRight(s string, width int) string {
	w := Width(s)
	if w >= width {
		return Truncate(s, width)
	}
	return s + runewidth.FillRight("", width-w)
}
