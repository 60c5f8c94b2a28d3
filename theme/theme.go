package theme

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Palette *Palette
	Symbols Symbols
}

// Symbols are the glyphs the keypad widget draws for each button. The
// reset button sits next to the ladder buttons on the shield but is wired
// straight to the reset line, so it gets its own dimmed glyph.
type Symbols struct {
	Up     rune // ▲
	Down   rune // ▼
	Left   rune // ◀
	Right  rune // ▶
	Select rune // ●
	Reset  rune // ◌ never lights up
}

func New(palette *Palette) *Theme {
	return &Theme{
		Palette: palette,
		Symbols: Symbols{
			Up:     '▲',
			Down:   '▼',
			Left:   '◀',
			Right:  '▶',
			Select: '●',
			Reset:  '◌',
		},
	}
}

// ForName returns a built-in theme. Unknown names fall back to classic.
func ForName(name string) *Theme {
	if p, ok := builtins[name]; ok {
		return New(p)
	}
	return New(builtins["classic"])
}

// FromGPL builds a theme from a GIMP palette file.
func FromGPL(path string) (*Theme, error) {
	p, err := LoadGPL(path)
	if err != nil {
		return nil, fmt.Errorf("load palette: %w", err)
	}
	return New(p), nil
}

// Names lists the built-in themes, sorted.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Color roles mapped to palette positions (0-1)
const (
	RoleBacklight = 0.0  // LCD glass at rest
	RoleFrame     = 0.15 // bezel around the glass
	RoleMuted     = 0.3  // help text, idle labels
	RoleKeyIdle   = 0.4  // unpressed button
	RoleGlyph     = 0.6  // characters on the glass
	RoleAccent    = 0.7  // header, highlights
	RoleKeyLit    = 0.8  // pressed button
	RoleWarning   = 0.9  // lose flash
	RoleSuccess   = 1.0  // win flash
)

// Style helpers

func (t *Theme) Backlight() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleBacklight))
}

func (t *Theme) Frame() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleFrame))
}

func (t *Theme) Muted() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleMuted))
}

func (t *Theme) KeyIdle() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleKeyIdle))
}

func (t *Theme) Glyph() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleGlyph))
}

func (t *Theme) Accent() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleAccent))
}

func (t *Theme) KeyLit() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleKeyLit))
}

func (t *Theme) Warning() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleWarning))
}

func (t *Theme) Success() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleSuccess))
}

// Color returns lipgloss color for any normalized value 0-1
func (t *Theme) Color(norm float64) lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(norm))
}

// RGB returns raw RGB for any normalized value (for widgets)
func (t *Theme) RGB(norm float64) RGB {
	return t.Palette.Lookup(norm)
}

func rgbToLipgloss(c RGB) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2]))
}
