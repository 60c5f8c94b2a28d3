package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Button is one renderable key: a glyph and whether it is currently held.
type Button struct {
	Glyph rune
	Lit   bool
}

// Keypad is the shield's button cluster. Reset sits on the board next to
// the others but is wired to the reset line, so it renders muted and
// never lights up.
type Keypad struct {
	Up, Down, Left, Right, Select, Reset Button
}

// RenderKeypad draws the cluster: the arrow diamond with SELECT below and
// RST off to the side.
func RenderKeypad(k Keypad, lit, idle, muted [3]uint8) string {
	paint := func(b Button) string {
		color := idle
		if b.Lit {
			color = lit
		}
		return renderGlyph(b.Glyph, color)
	}

	dim := lipgloss.NewStyle().Foreground(lipgloss.Color(rgbToHex(muted)))

	lines := []string{
		"    " + paint(k.Up),
		paint(k.Left) + "       " + paint(k.Right) + "   " + dim.Render(string(k.Reset.Glyph)+" RST"),
		"    " + paint(k.Down),
		paint(k.Select) + " " + dim.Render("SELECT"),
	}
	return strings.Join(lines, "\n")
}

// renderGlyph renders a single colored glyph
func renderGlyph(g rune, color [3]uint8) string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(rgbToHex(color)))
	return style.Render(string(g))
}
