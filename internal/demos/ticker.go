package demos

import (
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/tuibox/internal/logging"
	"github.com/muurk/tuibox/internal/ui"
)

const tickerInterval = time.Second

// tickerTickMsg fires once per interval while the ticker runs. gen
// identifies the run that scheduled it; pausing starts a new generation.
type tickerTickMsg struct {
	id  int
	gen int
}

// tickerModel is a label that shows a counter once a timer is started.
type tickerModel struct {
	frame
	header  ui.Header
	keys    bindings
	buttons []button
	focus   int

	label   string
	counter int
	running bool
	id      int
	gen     int
}

var (
	tickerStartKey = binding("s", "s", "start")
	tickerStopKey  = binding("x", "x", "stop")
	tabKey         = binding("tab", "tab", "focus")
	enterKey       = binding("enter", "enter", "press")
)

func newTickerDemo(env Env) tea.Model {
	h := ui.NewHeader("StopwatchApp", "")
	h.Theme = env.Theme
	return tickerModel{
		frame:   newFrame(env.Theme),
		header:  h,
		keys:    bindings{tickerStartKey, tickerStopKey, tabKey, enterKey, quitKey},
		buttons: []button{{label: "start"}, {label: "Stop"}},
		label:   "Static",
		id:      nextID(),
	}
}

func (m tickerModel) Init() tea.Cmd {
	return nil
}

func (m tickerModel) tick() tea.Cmd {
	id, gen := m.id, m.gen
	return tea.Tick(tickerInterval, func(time.Time) tea.Msg {
		return tickerTickMsg{id: id, gen: gen}
	})
}

func (m tickerModel) start() (tickerModel, tea.Cmd) {
	if m.running {
		return m, nil
	}
	m.running = true
	m.gen++
	logging.LogAction("ticker", "start")
	return m, m.tick()
}

func (m tickerModel) stop() tickerModel {
	if !m.running {
		return m
	}
	m.running = false
	m.gen++
	logging.LogAction("ticker", "stop")
	return m
}

func (m tickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg)
	case tickerTickMsg:
		if msg.id != m.id || msg.gen != m.gen || !m.running {
			return m, nil
		}
		m.label = strconv.Itoa(m.counter)
		m.counter++
		return m, m.tick()
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, quitKey):
			return m, Quit("")
		case key.Matches(msg, tickerStartKey):
			return m.start()
		case key.Matches(msg, tickerStopKey):
			return m.stop(), nil
		case key.Matches(msg, tabKey):
			m.focus = (m.focus + 1) % len(m.buttons)
		case key.Matches(msg, enterKey):
			if m.focus == 0 {
				return m.start()
			}
			return m.stop(), nil
		}
	}
	return m, nil
}

func (m tickerModel) View() string {
	parts := []string{lipgloss.NewStyle().Foreground(m.theme.Text).Render(m.label), "  "}
	for i, b := range m.buttons {
		parts = append(parts, b.view(m.theme, i == m.focus), " ")
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Center, parts...)
	body := lipgloss.Place(m.innerWidth(), m.bodyHeight(m.header.Height()), lipgloss.Center, lipgloss.Center, bar)

	m.header.Width = m.innerWidth()
	return m.render(m.header.View(), body, m.keys)
}
