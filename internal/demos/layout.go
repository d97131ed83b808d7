package demos

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/tuibox/internal/logging"
	"github.com/muurk/tuibox/internal/ui"
)

// headerModel shows a header with a clock; h toggles its height.
type headerModel struct {
	frame
	header ui.Header
	keys   bindings
}

func newHeaderDemo(env Env) tea.Model {
	h := ui.NewHeader("Header Example", "").WithClock(env.clockFormat())
	h.Theme = env.Theme
	return headerModel{
		frame:  newFrame(env.Theme),
		header: h,
		keys:   bindings{binding("h", "h", "toggle header"), quitKey},
	}
}

func (m headerModel) Init() tea.Cmd {
	return m.header.Init()
}

func (m headerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg)
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys[0]):
			m.header.ToggleTall()
			logging.LogAction("header", "toggle tall")
			return m, nil
		case key.Matches(msg, quitKey):
			return m, Quit("")
		}
	}

	var cmd tea.Cmd
	m.header, cmd = m.header.Update(msg)
	return m, cmd
}

func (m headerModel) View() string {
	m.header.Width = m.innerWidth()
	return m.render(m.header.View(), "", m.keys)
}

// containersModel lays out two horizontal rows of labels between a header
// and a footer. The theme demo is the same screen with a theme key.
type containersModel struct {
	frame
	header    ui.Header
	keys      bindings
	themeable bool
}

const helloWorld = "Hello, World!"

func newContainersDemo(env Env) tea.Model {
	return newContainers(env, env.Theme, false)
}

func newThemeDemo(env Env) tea.Model {
	theme, _ := ui.ThemeByName("gruvbox")
	return newContainers(env, theme, true)
}

func newContainers(env Env, theme ui.Theme, themeable bool) containersModel {
	keys := bindings{quitKey}
	title := "ContainerApp"
	if themeable {
		keys = bindings{binding("t", "t", "next theme"), quitKey}
	}
	h := ui.NewHeader(title, "")
	m := containersModel{
		frame:     newFrame(theme),
		header:    h,
		keys:      keys,
		themeable: themeable,
	}
	m.applyTheme(theme)
	return m
}

// Theme returns the active theme.
func (m containersModel) Theme() ui.Theme {
	return m.theme
}

func (m *containersModel) applyTheme(t ui.Theme) {
	m.frame = newFrame(t)
	m.header.Theme = t
	if m.themeable {
		m.header.SubTitle = t.Name
	}
}

func (m containersModel) Init() tea.Cmd {
	return nil
}

func (m containersModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg)
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, quitKey):
			return m, Quit("")
		case m.themeable && msg.String() == "t":
			w, h := m.width, m.height
			m.applyTheme(ui.NextTheme(m.theme.Name))
			m.resize(tea.WindowSizeMsg{Width: w, Height: h})
			logging.LogAction("theme", "switch to "+m.theme.Name)
		}
	}
	return m, nil
}

func (m containersModel) View() string {
	label := lipgloss.NewStyle().
		Foreground(m.theme.Text).
		Background(m.theme.Primary).
		Padding(0, 1).
		MarginRight(2)

	row := func() string {
		return lipgloss.JoinHorizontal(lipgloss.Top, label.Render(helloWorld), label.Render(helloWorld))
	}
	body := lipgloss.JoinVertical(lipgloss.Left, row(), "", row())

	m.header.Width = m.innerWidth()
	return m.render(m.header.View(), body, m.keys)
}

// cssModel shows two labels in a vertical container; the second one is
// styled by its id.
type cssModel struct {
	frame
	header ui.Header
	styles map[string]lipgloss.Style
}

func newCSSDemo(env Env) tea.Model {
	return cssModel{
		frame:  newFrame(env.Theme),
		header: ui.NewHeader("ContainerApp", ""),
		styles: map[string]lipgloss.Style{
			"": lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#0000FF")),
			"label_2": lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000")).Background(lipgloss.Color("#008000")),
		},
	}
}

// styleFor returns the style of the label with the given id, falling back to
// the style for all labels.
func (m cssModel) styleFor(id string) lipgloss.Style {
	if s, ok := m.styles[id]; ok {
		return s
	}
	return m.styles[""]
}

func (m cssModel) Init() tea.Cmd {
	return nil
}

func (m cssModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg)
	case tea.KeyMsg:
		if key.Matches(msg, quitKey) {
			return m, Quit("")
		}
	}
	return m, nil
}

func (m cssModel) View() string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		m.styleFor("").Render(helloWorld),
		m.styleFor("label_2").Render(helloWorld),
	)
	m.header.Width = m.innerWidth()
	return m.render(m.header.View(), body, bindings{quitKey})
}
