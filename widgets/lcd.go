package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderLCD draws the character glass: fixed-width rows in the glyph color
// on the backlight color, wrapped in a bezel-colored border.
func RenderLCD(lines []string, cols int, glyph, backlight, frame [3]uint8) string {
	glass := lipgloss.NewStyle().
		Foreground(lipgloss.Color(rgbToHex(glyph))).
		Background(lipgloss.Color(rgbToHex(backlight))).
		Padding(0, 1)

	bezel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(rgbToHex(frame)))

	rows := make([]string, len(lines))
	for i, line := range lines {
		rows[i] = glass.Render(fitCell(line, cols))
	}
	return bezel.Render(strings.Join(rows, "\n"))
}

// fitCell pads or clips text to exactly width characters.
func fitCell(text string, width int) string {
	if len(text) >= width {
		return text[:width]
	}
	return text + strings.Repeat(" ", width-len(text))
}

func rgbToHex(c [3]uint8) string {
	return fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2])
}
