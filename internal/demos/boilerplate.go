package demos

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/tuibox/internal/logging"
	"github.com/muurk/tuibox/internal/ui"
)

const (
	boilerplateExit    = "Application closed by user."
	boilerplateEcho    = "You entered: '%s' and clicked the button!"
	boilerplateWelcome = "Welcome to your Boilerplate!"
)

var boilerplateQuitKey = binding("ctrl+q", "ctrl+q", "quit app")

// boilerplateModel is an input, a submit button and an output line.
type boilerplateModel struct {
	frame
	header      ui.Header
	input       textinput.Model
	submit      button
	buttonFocus bool
	output      string
	bell        io.Writer
}

func newBoilerplateDemo(env Env) tea.Model {
	h := ui.NewHeader("Boilerplate App", "A Starting Point for Your TUI")
	h.Theme = env.Theme

	in := textinput.New()
	in.Placeholder = "Enter some text here..."
	in.Prompt = "> "
	in.Focus()

	return boilerplateModel{
		frame:  newFrame(env.Theme),
		header: h,
		input:  in,
		submit: button{label: "Submit"},
		bell:   env.Bell,
	}
}

// Output is the text shown below the button.
func (m boilerplateModel) Output() string {
	return m.output
}

func (m boilerplateModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m boilerplateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg)
		m.input.Width = max(m.innerWidth()-6, 10)
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, boilerplateQuitKey):
			return m, Quit(boilerplateExit)
		case key.Matches(msg, tabKey):
			m.buttonFocus = !m.buttonFocus
			if m.buttonFocus {
				m.input.Blur()
				return m, nil
			}
			cmd := m.input.Focus()
			return m, cmd
		case key.Matches(msg, enterKey):
			return m.press()
		}
	}

	if m.buttonFocus {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// press handles the submit button.
func (m boilerplateModel) press() (tea.Model, tea.Cmd) {
	m.output = fmt.Sprintf(boilerplateEcho, m.input.Value())
	m.input.SetValue("")
	logging.LogAction("boilerplate", "submit")
	return m, bell(m.bell)
}

func (m boilerplateModel) View() string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Title().Render(boilerplateWelcome),
		"",
		m.theme.Panel(!m.buttonFocus).Width(max(m.innerWidth()-4, 10)).Render(m.input.View()),
		m.submit.view(m.theme, m.buttonFocus),
		"",
		m.output,
	)
	m.header.Width = m.innerWidth()
	return m.render(m.header.View(), body, bindings{boilerplateQuitKey, tabKey, enterKey})
}
