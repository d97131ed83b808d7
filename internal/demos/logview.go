package demos

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/tuibox/internal/ui"
)

// logView is an append-only, bordered, scrolling log. Entries may be
// multi-line and pre-styled; the view follows the newest entry.
type logView struct {
	vp      viewport.Model
	theme   ui.Theme
	entries []string
}

func newLogView(theme ui.Theme) logView {
	return logView{vp: viewport.New(ui.DefaultWidth, ui.DefaultHeight), theme: theme}
}

// Write appends an entry.
func (l *logView) Write(entry string) {
	l.entries = append(l.entries, entry)
	l.refresh()
}

// Clear removes every entry.
func (l *logView) Clear() {
	l.entries = nil
	l.refresh()
}

// Entries returns a copy of the log contents.
func (l logView) Entries() []string {
	return append([]string(nil), l.entries...)
}

// SetSize sets the outer size, border included.
func (l *logView) SetSize(width, height int) {
	l.vp.Width = max(width-2, 1)
	l.vp.Height = max(height-2, 1)
	l.refresh()
}

func (l *logView) refresh() {
	wrap := lipgloss.NewStyle().Width(l.vp.Width)
	lines := make([]string, len(l.entries))
	for i, e := range l.entries {
		lines[i] = wrap.Render(e)
	}
	l.vp.SetContent(strings.Join(lines, "\n"))
	l.vp.GotoBottom()
}

func (l logView) Update(msg tea.Msg) (logView, tea.Cmd) {
	var cmd tea.Cmd
	l.vp, cmd = l.vp.Update(msg)
	return l, cmd
}

func (l logView) View() string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(l.theme.Primary).
		Render(l.vp.View())
}

// scriptStep is an entry written after a delay.
type scriptStep struct {
	delay time.Duration
	text  string
}

// scriptMsg delivers step index of the script owned by id.
type scriptMsg struct {
	id    int
	index int
}

// runScript schedules step index of steps for the owner id.
func runScript(id int, steps []scriptStep, index int) tea.Cmd {
	if index >= len(steps) {
		return nil
	}
	msg := scriptMsg{id: id, index: index}
	if steps[index].delay <= 0 {
		return func() tea.Msg { return msg }
	}
	return tea.Tick(steps[index].delay, func(time.Time) tea.Msg { return msg })
}

// advanceScript writes the step carried by msg and schedules the next one.
// Messages for another owner are ignored.
func advanceScript(l *logView, id int, steps []scriptStep, msg scriptMsg) tea.Cmd {
	if msg.id != id || msg.index < 0 || msg.index >= len(steps) {
		return nil
	}
	l.Write(steps[msg.index].text)
	return runScript(id, steps, msg.index+1)
}
