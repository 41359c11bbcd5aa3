// Package site renders the static parts of the page: link cards, icons, the
// FAQ accordion and showcase cards.
package site

import "github.com/charmbracelet/lipgloss"

var glyphs = map[string]string{
	"book":     "📖",
	"terminal": ">_",
	"download": "⤓",
	"arrow":    "→",
	"search":   "⌕",
	"theme":    "◐",
	"menu":     "☰",
	"close":    "✕",
	"expand":   "▾",
	"collapse": "▴",
	"prev":     "‹",
	"next":     "›",
}

// Glyph returns the glyph for a symbolic icon name, or "•" for unknown names.
func Glyph(name string) string {
	if g, ok := glyphs[name]; ok {
		return g
	}
	return "•"
}

// Icon renders a glyph centered in a box of the given size. Non-positive
// dimensions leave the glyph unpadded in that direction.
func Icon(name string, width, height int) string {
	g := Glyph(name)
	if width <= 0 {
		width = lipgloss.Width(g)
	}
	if height <= 0 {
		height = 1
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, g)
}
