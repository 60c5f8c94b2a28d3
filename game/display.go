package game

import "strings"

// Geometry of the character display on the shield.
const (
	DisplayRows = 2
	DisplayCols = 16
)

// Display is the character screen the game talks to: a small fixed grid
// addressed by row and column. Writes always succeed; adapters that can
// fail swallow the error and keep going.
type Display interface {
	// ShowAt writes text starting at the given cell. Text running past the
	// last column is clipped by the adapter.
	ShowAt(row, col int, text string)

	// Clear blanks the whole grid.
	Clear()
}

// padLine fits text to a full display row so leftovers from the previous
// screen never bleed through.
func padLine(text string) string {
	if len(text) >= DisplayCols {
		return text[:DisplayCols]
	}
	return text + strings.Repeat(" ", DisplayCols-len(text))
}
