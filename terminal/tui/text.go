package tui

import (
	"github.com/mattn/go-runewidth"
)

// Width returns the display width of s in terminal cells
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// MaxWidth returns the widest display width among lines
func MaxWidth(lines []string) int {
	w := 0
	for _, l := range lines {
		w = max(w, Width(l))
	}
	return w
}

// Clip cuts s to at most maxWidth cells without splitting a wide rune
func Clip(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return runewidth.Truncate(s, maxWidth, "")
}
