package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"simonsays/game"
	"simonsays/theme"
	"simonsays/widgets"
)

type Model struct {
	Screen  *Screen
	Sampler *Sampler
	Theme   *theme.Theme

	showHelp bool
	quitting bool
}

type UpdateMsg struct{}

func NewModel(screen *Screen, sampler *Sampler, th *theme.Theme) Model {
	return Model{
		Screen:  screen,
		Sampler: sampler,
		Theme:   th,
	}
}

func ListenForUpdates(screen *Screen) tea.Cmd {
	return func() tea.Msg {
		<-screen.UpdateChan
		return UpdateMsg{}
	}
}

func (m Model) Init() tea.Cmd {
	return ListenForUpdates(m.Screen)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "up", "k":
			m.Sampler.Press(game.KeyUp)
		case "down", "j":
			m.Sampler.Press(game.KeyDown)
		case "left", "h":
			m.Sampler.Press(game.KeyLeft)
		case "right", "l":
			m.Sampler.Press(game.KeyRight)
		case "enter", " ":
			m.Sampler.Press(game.KeySelect)

		case "?":
			m.showHelp = !m.showHelp
		}

	case UpdateMsg:
		return m, ListenForUpdates(m.Screen)
	}

	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	headerStyle := lipgloss.NewStyle().Foreground(m.Theme.Accent())
	dimStyle := lipgloss.NewStyle().Foreground(m.Theme.Muted())

	pressed := m.Sampler.Active()
	status := ""
	if pressed != game.KeyNone {
		status = "  key:" + pressed.String()
	}
	header := headerStyle.Render(fmt.Sprintf("simonsays  %s%s", m.Theme.Palette.Name, status))

	lines := m.Screen.Lines()
	lcd := widgets.RenderLCD(lines[:], game.DisplayCols,
		m.Theme.RGB(theme.RoleGlyph),
		m.Theme.RGB(theme.RoleBacklight),
		m.Theme.RGB(theme.RoleFrame))

	sym := m.Theme.Symbols
	pad := widgets.Keypad{
		Up:     widgets.Button{Glyph: sym.Up, Lit: pressed == game.KeyUp},
		Down:   widgets.Button{Glyph: sym.Down, Lit: pressed == game.KeyDown},
		Left:   widgets.Button{Glyph: sym.Left, Lit: pressed == game.KeyLeft},
		Right:  widgets.Button{Glyph: sym.Right, Lit: pressed == game.KeyRight},
		Select: widgets.Button{Glyph: sym.Select, Lit: pressed == game.KeySelect},
		Reset:  widgets.Button{Glyph: sym.Reset},
	}
	keypad := widgets.RenderKeypad(pad,
		m.Theme.RGB(theme.RoleKeyLit),
		m.Theme.RGB(theme.RoleKeyIdle),
		m.Theme.RGB(theme.RoleMuted))

	help := dimStyle.Render("arrows/hjkl:press  enter/space:SELECT  ?:help  q:quit")

	var out strings.Builder
	out.WriteString("\n")
	out.WriteString(header)
	out.WriteString("\n\n")
	out.WriteString(lcd)
	out.WriteString("\n\n")
	out.WriteString(keypad)
	out.WriteString("\n\n")
	out.WriteString(help)

	if m.showHelp {
		out.WriteString("\n\n")
		out.WriteString(dimStyle.Render(m.helpView()))
	}

	return out.String()
}

func (m Model) helpView() string {
	return widgets.RenderKeyHelp([]widgets.KeySection{
		{Title: "Keypad", Keys: []widgets.KeyBinding{
			{Key: "up/k", Desc: "press UP"},
			{Key: "down/j", Desc: "press DOWN"},
			{Key: "left/h", Desc: "press LEFT"},
			{Key: "right/l", Desc: "press RIGHT"},
			{Key: "enter/space", Desc: "press SELECT"},
		}},
		{Title: "Simulator", Keys: []widgets.KeyBinding{
			{Key: "?", Desc: "toggle this help"},
			{Key: "q", Desc: "quit"},
		}},
	})
}
