package demos

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const litany = `I must not fear.
Fear is the mind-killer.
Fear is the little-death that brings total obliteration.
I will face my fear.
I will permit it to pass over me and through me.
And when it has gone past, I will turn the inner eye to see its path.
Where the fear has gone there will be nothing. Only I will remain.`

var logScript = []scriptStep{
	{text: "Hello, World!"},
	{delay: time.Second, text: litany},
	{delay: time.Second, text: litany},
}

// logModel is a bare log filled by a delayed script.
type logModel struct {
	frame
	log logView
	id  int
}

func newLogDemo(env Env) tea.Model {
	m := logModel{frame: newFrame(env.Theme), log: newLogView(env.Theme), id: nextID()}
	m.log.SetSize(m.width, m.height)
	return m
}

func (m logModel) Init() tea.Cmd {
	return runScript(m.id, logScript, 0)
}

func (m logModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg)
		m.log.SetSize(msg.Width, msg.Height)
		return m, nil
	case scriptMsg:
		return m, advanceScript(&m.log, m.id, logScript, msg)
	case tea.KeyMsg:
		if key.Matches(msg, quitKey) {
			return m, Quit("")
		}
	}

	var cmd tea.Cmd
	m.log, cmd = m.log.Update(msg)
	return m, cmd
}

func (m logModel) View() string {
	return m.log.View()
}
