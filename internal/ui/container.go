package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// Footer renders the short help for keys.
func Footer(h help.Model, keys help.KeyMap) string {
	return h.View(keys)
}

// RenderApplicationContainer lays out a full-screen view using the default
// theme. See Theme.RenderApplicationContainer.
func RenderApplicationContainer(header, content, footer string, width, height int) string {
	return DefaultTheme().RenderApplicationContainer(header, content, footer, width, height)
}

// RenderApplicationContainer wraps every demo screen: header on top, footer
// pinned to the bottom, the content in between, inside an outer border that
// fills the terminal. An empty header or footer is omitted.
//
//	func (m model) View() string {
//	    return m.theme.RenderApplicationContainer(m.header.View(), m.body(), ui.Footer(m.help, m.keys), m.width, m.height)
//	}
func (t Theme) RenderApplicationContainer(header, content, footer string, width, height int) string {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	inner := width - 2

	var sections []string
	used := 0
	if header != "" {
		h := lipgloss.NewStyle().MaxWidth(inner).Render(header)
		sections = append(sections, h)
		used += lipgloss.Height(h)
	}

	var styledFooter string
	if footer != "" {
		styledFooter = lipgloss.NewStyle().
			BorderStyle(lipgloss.Border{Top: "─"}).
			BorderTop(true).
			BorderForeground(t.Primary).
			Foreground(t.Subtle).
			Width(inner).
			Padding(0, 1).
			Render(footer)
		used += lipgloss.Height(styledFooter)
	}

	// Whatever is left between header and footer belongs to the content.
	contentHeight := height - 2 - used
	if contentHeight < 1 {
		contentHeight = 1
	}
	sections = append(sections, lipgloss.NewStyle().
		Width(inner).
		Height(contentHeight).
		MaxHeight(contentHeight).
		Render(content))

	if styledFooter != "" {
		sections = append(sections, styledFooter)
	}

	bordered := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(t.Primary).
		Width(inner).
		Render(lipgloss.JoinVertical(lipgloss.Left, sections...))

	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top, bordered)
}

// RenderModal centres content over a dimmed backdrop filling the screen.
func RenderModal(content string, width, height int) string {
	return DefaultTheme().RenderModal(content, width, height)
}

// RenderModal centres content, boxed in the theme's border, over a dimmed
// backdrop.
func (t Theme) RenderModal(content string, width, height int) string {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(t.Primary).
		Padding(1, 2).
		MaxWidth(SafeModalWidth(width, width)).
		Render(content)

	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		box,
		lipgloss.WithWhitespaceChars("░"),
		lipgloss.WithWhitespaceForeground(lipgloss.Color("240")),
	)
}

// SafeModalWidth caps requestedWidth so a modal never overflows the terminal.
func SafeModalWidth(requestedWidth, terminalWidth int) int {
	maxWidth := terminalWidth - 4
	if maxWidth < 20 {
		maxWidth = 20
	}
	if requestedWidth < maxWidth {
		return requestedWidth
	}
	return maxWidth
}
