package ui

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Theme is a named colour palette. Every demo renders through one.
type Theme struct {
	Name string

	Primary    lipgloss.Color // header bar, borders
	Secondary  lipgloss.Color // success, highlights
	Accent     lipgloss.Color // focus and selection
	Warning    lipgloss.Color
	Error      lipgloss.Color
	Text       lipgloss.Color
	Subtle     lipgloss.Color // help text, secondary info
	Background lipgloss.Color
}

var themes = map[string]Theme{
	"default": {
		Name:       "default",
		Primary:    lipgloss.Color("#7D56F4"),
		Secondary:  lipgloss.Color("#43BF6D"),
		Accent:     lipgloss.Color("#FF8B94"),
		Warning:    lipgloss.Color("#FFA500"),
		Error:      lipgloss.Color("#FF5555"),
		Text:       lipgloss.Color("#FFFFFF"),
		Subtle:     lipgloss.Color("#626262"),
		Background: lipgloss.Color("#1A1A1A"),
	},
	"gruvbox": {
		Name:       "gruvbox",
		Primary:    lipgloss.Color("#FE8019"),
		Secondary:  lipgloss.Color("#B8BB26"),
		Accent:     lipgloss.Color("#8EC07C"),
		Warning:    lipgloss.Color("#FABD2F"),
		Error:      lipgloss.Color("#FB4934"),
		Text:       lipgloss.Color("#EBDBB2"),
		Subtle:     lipgloss.Color("#928374"),
		Background: lipgloss.Color("#282828"),
	},
	"nord": {
		Name:       "nord",
		Primary:    lipgloss.Color("#88C0D0"),
		Secondary:  lipgloss.Color("#A3BE8C"),
		Accent:     lipgloss.Color("#B48EAD"),
		Warning:    lipgloss.Color("#EBCB8B"),
		Error:      lipgloss.Color("#BF616A"),
		Text:       lipgloss.Color("#ECEFF4"),
		Subtle:     lipgloss.Color("#4C566A"),
		Background: lipgloss.Color("#2E3440"),
	},
	"dracula": {
		Name:       "dracula",
		Primary:    lipgloss.Color("#BD93F9"),
		Secondary:  lipgloss.Color("#50FA7B"),
		Accent:     lipgloss.Color("#FF79C6"),
		Warning:    lipgloss.Color("#FFB86C"),
		Error:      lipgloss.Color("#FF5555"),
		Text:       lipgloss.Color("#F8F8F2"),
		Subtle:     lipgloss.Color("#6272A4"),
		Background: lipgloss.Color("#282A36"),
	},
}

// themeOrder is the cycle used by NextTheme.
var themeOrder = []string{"default", "gruvbox", "nord", "dracula"}

// DefaultTheme returns the built-in purple palette.
func DefaultTheme() Theme {
	return themes["default"]
}

// ThemeByName looks up a theme. Unknown names yield the default theme and false.
func ThemeByName(name string) (Theme, bool) {
	t, ok := themes[name]
	if !ok {
		return DefaultTheme(), false
	}
	return t, true
}

// ThemeNames returns the registered theme names, sorted.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for n := range themes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// NextTheme returns the theme after name in the cycle, wrapping around.
func NextTheme(name string) Theme {
	for i, n := range themeOrder {
		if n == name {
			return themes[themeOrder[(i+1)%len(themeOrder)]]
		}
	}
	return themes[themeOrder[0]]
}

// Title styles a bold heading.
func (t Theme) Title() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
}

// Muted styles help text and secondary information.
func (t Theme) Muted() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Subtle)
}

// Panel is a rounded box; focused panels use the accent colour.
func (t Theme) Panel(focused bool) lipgloss.Style {
	border := t.Subtle
	if focused {
		border = t.Accent
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)
}

// Button renders a button label, highlighted when focused.
func (t Theme) Button(label string, focused bool) string {
	style := lipgloss.NewStyle().
		Padding(0, 2).
		Foreground(t.Text).
		Background(t.Subtle)
	if focused {
		style = style.Background(t.Primary).Bold(true)
	}
	return style.Render(label)
}

// ErrorPanel renders an inline error with an optional hint line.
func (t Theme) ErrorPanel(msg, hint string) string {
	body := lipgloss.NewStyle().Foreground(t.Error).Bold(true).Render(FailureMarker + " " + msg)
	if hint != "" {
		body += "\n\n" + t.Muted().Render(hint)
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Error).
		Padding(1, 2).
		Render(body)
}
