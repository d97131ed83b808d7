package ui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Banner is the boxed title printed at the start of a non-interactive
// command, listing the parameters it runs with.
type Banner struct {
	Title   string            // e.g., "SNAPSHOT"
	Command string            // e.g., "tuibox snapshot"
	Params  map[string]string // e.g., {"View": "youtube_data.latest_20"}
	Width   int
}

// NewBanner creates a banner sized to the terminal.
func NewBanner(title, command string, params map[string]string) *Banner {
	return &Banner{
		Title:   title,
		Command: command,
		Params:  params,
		Width:   GetTerminalWidth(),
	}
}

// SetWidth sets the terminal width for responsive rendering
func (b *Banner) SetWidth(width int) *Banner {
	b.Width = width
	return b
}

// Render returns the styled banner. Parameters are listed in key order.
func (b *Banner) Render() string {
	width := b.Width
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}

	top := lipgloss.JoinVertical(lipgloss.Left,
		BannerTitleStyle.Render(strings.ToUpper(b.Title)),
		BannerCommandStyle.Render(b.Command),
	)

	content := top
	if len(b.Params) > 0 {
		dividerWidth := width - 6
		if dividerWidth < 10 {
			dividerWidth = 10
		}
		divider := lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Render(strings.Repeat("─", dividerWidth))

		keys := make([]string, 0, len(b.Params))
		for k := range b.Params {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		lines := make([]string, 0, len(keys))
		for _, k := range keys {
			lines = append(lines, BannerParamKeyStyle.Render(k+":")+" "+BannerParamValueStyle.Render(b.Params[k]))
		}
		content = lipgloss.JoinVertical(lipgloss.Left, top, divider, strings.Join(lines, "\n"))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(PrimaryColor).
		Width(width - 2).
		Render(content)
}

// String implements fmt.Stringer
func (b *Banner) String() string {
	return b.Render()
}
