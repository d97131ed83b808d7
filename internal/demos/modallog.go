package demos

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/tuibox/internal/logging"
	"github.com/muurk/tuibox/internal/ui"
)

var closeModalKey = binding("q", "q", "close popup")

// modalLogModel pushes a modal screen holding a log. Each push starts a
// fresh script; steps still in flight for an earlier modal are dropped.
type modalLogModel struct {
	frame
	header ui.Header
	rich   bool
	now    func() time.Time

	open   bool
	log    logView
	script []scriptStep
	id     int
}

func newModalLogDemo(env Env) tea.Model {
	return newModalLog(env, false)
}

func newModalRichLogDemo(env Env) tea.Model {
	return newModalLog(env, true)
}

func newModalLog(env Env, rich bool) modalLogModel {
	h := ui.NewHeader("MainApp", "")
	h.Theme = env.Theme
	return modalLogModel{
		frame:  newFrame(env.Theme),
		header: h,
		rich:   rich,
		now:    env.now,
	}
}

// Open reports whether the modal is showing.
func (m modalLogModel) Open() bool {
	return m.open
}

func (m modalLogModel) Init() tea.Cmd {
	return nil
}

// push opens a new modal, writes its mount lines and starts its script.
func (m modalLogModel) push() (modalLogModel, tea.Cmd) {
	m.open = true
	m.id = nextID()
	m.log = newLogView(m.theme)
	m.log.SetSize(m.modalSize())

	m.log.Write(richLogWelcome)
	if m.rich {
		m.log.Write("Current time: " + m.now().Format(isoLayout))
	}
	m.log.Write(richLogHint)
	m.log.Write("This is a new log entry.")

	if m.rich {
		m.script = []scriptStep{
			{text: richLogReady},
			{delay: time.Second, text: richLogReady},
			{delay: time.Second, text: richLogReady},
		}
	} else {
		line := fmt.Sprintf(richLogEntryFmt, m.now().Format(entryStampLayout))
		m.script = []scriptStep{
			{text: line},
			{delay: time.Second, text: line},
		}
	}

	logging.LogScreen("push", "modal-log")
	return m, runScript(m.id, m.script, 0)
}

func (m modalLogModel) modalSize() (int, int) {
	return m.width * 8 / 10, m.height * 8 / 10
}

func (m modalLogModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg)
		if m.open {
			m.log.SetSize(m.modalSize())
		}
		return m, nil
	case scriptMsg:
		if !m.open {
			return m, nil
		}
		return m, advanceScript(&m.log, m.id, m.script, msg)
	case tea.KeyMsg:
		if m.open {
			if key.Matches(msg, closeModalKey) {
				m.open = false
				m.id = 0
				logging.LogScreen("pop", "modal-log")
				return m, nil
			}
			var cmd tea.Cmd
			m.log, cmd = m.log.Update(msg)
			return m, cmd
		}
		switch {
		case key.Matches(msg, popupKey):
			return m.push()
		case key.Matches(msg, quitKey):
			return m, Quit("")
		}
	}
	return m, nil
}

func (m modalLogModel) View() string {
	if m.open {
		return m.theme.RenderModal(m.log.View(), m.width, m.height)
	}
	m.header.Width = m.innerWidth()
	return m.render(m.header.View(), popupPrompt, bindings{popupKey, quitKey})
}
