package demos

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/tuibox/internal/logging"
	"github.com/muurk/tuibox/internal/ui"
)

const (
	keybindPrompt  = "Press 'h' to see a message, 'c' to clear, or 'q' to quit."
	keybindHello   = "Hello from the keybind action!"
	keybindCleared = "Message cleared. Press 'h' to say hello again."
	keybindExit    = "User pressed 'q' to quit."
)

type keybindModel struct {
	frame
	header  ui.Header
	keys    bindings
	message string
}

var (
	helloKey = binding("h", "h", "say hello")
	clearKey = binding("c", "c", "clear message")
)

func newKeybindDemo(env Env) tea.Model {
	h := ui.NewHeader("KeybindApp", "")
	h.Theme = env.Theme
	return keybindModel{
		frame:   newFrame(env.Theme),
		header:  h,
		keys:    bindings{binding("q", "q", "quit the application"), helloKey, clearKey},
		message: keybindPrompt,
	}
}

// Message is the text currently displayed.
func (m keybindModel) Message() string {
	return m.message
}

func (m keybindModel) Init() tea.Cmd {
	return nil
}

func (m keybindModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg)
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, quitKey):
			logging.LogAction("keybind", "quit")
			return m, Quit(keybindExit)
		case key.Matches(msg, helloKey):
			m.message = keybindHello
		case key.Matches(msg, clearKey):
			m.message = keybindCleared
		}
	}
	return m, nil
}

func (m keybindModel) View() string {
	m.header.Width = m.innerWidth()
	return m.render(m.header.View(), m.message, m.keys)
}
