package demos

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/tuibox/internal/logging"
	"github.com/muurk/tuibox/internal/ui"
)

const (
	popupPrompt  = "Press 'p' to open the popup."
	popupMessage = "This is a popup window!"
	popupClose   = "Close (or press Esc)"
)

var (
	popupKey = binding("p", "p", "open popup")
	escKey   = binding("esc", "esc", "close popup")
)

// popupModel is a main screen with a modal popup pushed over it.
type popupModel struct {
	frame
	header ui.Header
	open   bool
}

func newPopupDemo(env Env) tea.Model {
	h := ui.NewHeader("MainApp", "")
	h.Theme = env.Theme
	return popupModel{frame: newFrame(env.Theme), header: h}
}

// Open reports whether the popup is showing.
func (m popupModel) Open() bool {
	return m.open
}

func (m popupModel) Init() tea.Cmd {
	return nil
}

func (m popupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg)
	case tea.KeyMsg:
		if m.open {
			// The modal gets every key; the close button is always focused.
			if key.Matches(msg, escKey, enterKey) {
				m.open = false
				logging.LogScreen("pop", "popup")
			}
			return m, nil
		}
		switch {
		case key.Matches(msg, popupKey):
			m.open = true
			logging.LogScreen("push", "popup")
		case key.Matches(msg, quitKey):
			return m, Quit("")
		}
	}
	return m, nil
}

func (m popupModel) View() string {
	if m.open {
		dialog := lipgloss.JoinVertical(lipgloss.Center,
			popupMessage,
			"",
			button{label: popupClose}.view(m.theme, true),
		)
		return m.theme.RenderModal(dialog, m.width, m.height)
	}

	m.header.Width = m.innerWidth()
	return m.render(m.header.View(), popupPrompt, bindings{popupKey, quitKey})
}
