package demos

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/tuibox/internal/ui"
)

// bindings is a help.KeyMap over a flat list of bindings.
type bindings []key.Binding

func (b bindings) ShortHelp() []key.Binding {
	return b
}

func (b bindings) FullHelp() [][]key.Binding {
	return [][]key.Binding{b}
}

func binding(keys, helpKey, desc string, more ...string) key.Binding {
	return key.NewBinding(
		key.WithKeys(append([]string{keys}, more...)...),
		key.WithHelp(helpKey, desc),
	)
}

var quitKey = binding("q", "q", "quit")

// frame holds the size, theme and help shared by every demo screen.
type frame struct {
	theme  ui.Theme
	help   help.Model
	width  int
	height int
}

func newFrame(theme ui.Theme) frame {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(theme.Subtle)
	return frame{theme: theme, help: h, width: ui.DefaultWidth, height: ui.DefaultHeight}
}

func (f *frame) resize(msg tea.WindowSizeMsg) {
	f.width, f.height = msg.Width, msg.Height
	f.help.Width = msg.Width
}

func (f frame) render(header, body string, keys help.KeyMap) string {
	footer := ""
	if keys != nil {
		footer = ui.Footer(f.help, keys)
	}
	return f.theme.RenderApplicationContainer(header, body, footer, f.width, f.height)
}

// innerWidth is the usable width inside the application container.
func (f frame) innerWidth() int {
	if f.width < 4 {
		return 2
	}
	return f.width - 2
}

// bodyHeight is the content height left for a screen with a one-line
// header and footer.
func (f frame) bodyHeight(headerHeight int) int {
	h := f.height - 2 - headerHeight - 2
	if h < 3 {
		return 3
	}
	return h
}

// textItem is a one-line list entry.
type textItem string

func (t textItem) FilterValue() string { return string(t) }

// lineDelegate renders list items on a single line with a cursor marker.
type lineDelegate struct {
	theme  ui.Theme
	render func(item list.Item) string
}

func (d lineDelegate) Height() int                         { return 1 }
func (d lineDelegate) Spacing() int                        { return 0 }
func (d lineDelegate) Update(tea.Msg, *list.Model) tea.Cmd { return nil }

func (d lineDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	text := fmt.Sprint(item)
	if d.render != nil {
		text = d.render(item)
	} else if t, ok := item.(textItem); ok {
		text = string(t)
	}

	if index == m.Index() {
		_, _ = fmt.Fprint(w, lipgloss.NewStyle().Foreground(d.theme.Accent).Bold(true).Render("> "+text))
		return
	}
	_, _ = fmt.Fprint(w, "  "+text)
}

// newList returns a bubbles list with the chrome and global keys turned off;
// demos own quitting and layout.
func newList(items []list.Item, d list.ItemDelegate, width, height int) list.Model {
	l := list.New(items, d, width, height)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(false)
	l.KeyMap.NextPage.SetEnabled(false)
	l.KeyMap.PrevPage.SetEnabled(false)
	l.KeyMap.ShowFullHelp.SetEnabled(false)
	l.KeyMap.CloseFullHelp.SetEnabled(false)
	l.DisableQuitKeybindings()
	return l
}

// button is a focusable label.
type button struct {
	label string
}

func (b button) view(theme ui.Theme, focused bool) string {
	return theme.Button(b.label, focused)
}
