package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

type keyMap struct {
	Toggle  key.Binding
	Plus    key.Binding
	Minus   key.Binding
	Up      key.Binding
	Down    key.Binding
	Preset  key.Binding
	Reset   key.Binding
	History key.Binding
	Clear   key.Binding
	Close   key.Binding
	Quit    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Toggle:  key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "start/pause")),
		Plus:    key.NewBinding(key.WithKeys("+", "=", "right", "l"), key.WithHelp("→/+", "+10s")),
		Minus:   key.NewBinding(key.WithKeys("-", "_", "left", "h"), key.WithHelp("←/-", "-10s")),
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "+1m")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "-1m")),
		Preset:  key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "preset")),
		Reset:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		History: key.NewBinding(key.WithKeys("H", "tab"), key.WithHelp("H", "history")),
		Clear:   key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear history")),
		Close:   key.NewBinding(key.WithKeys("esc", "H", "tab"), key.WithHelp("esc", "close")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// dialHelp lists the bindings shown under the dial.
func (k keyMap) dialHelp(running bool) []key.Binding {
	if running {
		return []key.Binding{k.Toggle, k.History, k.Quit}
	}
	return []key.Binding{k.Toggle, k.Plus, k.Minus, k.Up, k.Down, k.Preset, k.Reset, k.History, k.Quit}
}

func (k keyMap) historyHelp() []key.Binding {
	return []key.Binding{k.Close, k.Clear, k.Quit}
}

// presetIndex maps a digit key to a zero-based preset index.
func presetIndex(s string) (int, bool) {
	if len(s) != 1 || s[0] < '1' || s[0] > '9' {
		return 0, false
	}
	return int(s[0] - '1'), true
}

func renderFooter(bindings []key.Binding, width int) string {
	bg := colorMantle
	keyStyle := lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Background(bg)
	descStyle := lipgloss.NewStyle().Foreground(colorMuted).Background(bg)
	space := lipgloss.NewStyle().Background(bg).Render(" ")
	sep := lipgloss.NewStyle().Background(bg).Render("  ")

	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		if !b.Enabled() || (h.Key == "" && h.Desc == "") {
			continue
		}
		parts = append(parts, keyStyle.Render(h.Key)+space+descStyle.Render(h.Desc))
	}
	line := strings.Join(parts, sep)
	if line == "" {
		line = lipgloss.NewStyle().Foreground(colorMuted).Background(bg).Render("No shortcuts")
	}
	return renderBar(footerStyle, max(1, width), line, bg)
}

func renderStatusBar(msg string, isErr bool, width int) string {
	msg = strings.TrimSpace(msg)
	if msg == "" {
		msg = "Ready"
	}
	if isErr {
		return renderBar(statusErrBarStyle, max(1, width), msg, colorSurface0)
	}
	return renderBar(statusBarStyle, max(1, width), msg, colorSurface0)
}

func renderBar(style lipgloss.Style, width int, text string, bg lipgloss.TerminalColor) string {
	line := strings.ReplaceAll(text, "\n", " ")
	line = ansi.Truncate(line, width, "")
	lineW := ansi.StringWidth(line)
	if lineW < width {
		line += strings.Repeat(" ", width-lineW)
	}
	return style.
		Background(bg).
		Width(width).
		MaxWidth(width).
		Render(line)
}
