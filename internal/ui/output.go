package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// OutputBox is a titled box for verbatim text such as a rendered config file.
type OutputBox struct {
	Title    string
	Content  string
	Width    int
	MaxLines int // 0 = unlimited
}

// NewOutputBox creates a box sized to the terminal.
func NewOutputBox(title, content string) *OutputBox {
	return &OutputBox{
		Title:   title,
		Content: content,
		Width:   GetTerminalWidth(),
	}
}

// SetWidth sets the terminal width for responsive rendering
func (o *OutputBox) SetWidth(width int) *OutputBox {
	o.Width = width
	return o
}

// SetMaxLines limits the number of lines displayed
func (o *OutputBox) SetMaxLines(max int) *OutputBox {
	o.MaxLines = max
	return o
}

// Render returns the box. Trailing blank lines in Content are dropped.
func (o *OutputBox) Render() string {
	width := o.Width
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}

	lines := strings.Split(strings.TrimRight(o.Content, "\n"), "\n")
	if o.MaxLines > 0 && len(lines) > o.MaxLines {
		hidden := len(lines) - o.MaxLines
		lines = append(lines[:o.MaxLines], StepNoteStyle.Render(fmt.Sprintf("... %d more lines", hidden)))
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		OutputTitleStyle.Render(o.Title),
		OutputContentStyle.Render(strings.Join(lines, "\n")),
	)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(MutedColor).
		Width(width-4).
		Padding(0, 1).
		Render(body)
}

// String implements fmt.Stringer
func (o *OutputBox) String() string {
	return o.Render()
}
