package demos

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/muurk/tuibox/internal/logging"
	"github.com/muurk/tuibox/internal/ui"
)

const (
	stopwatchInterval  = time.Second / 60
	stopwatchRows      = 3 // rendered height of one stopwatch
	initialStopwatches = 3
)

// stopwatchTickMsg refreshes one running stopwatch.
type stopwatchTickMsg struct {
	id   string
	gen  int
	Time time.Time
}

// stopwatch accumulates elapsed time across start/stop cycles.
type stopwatch struct {
	id          string
	started     bool
	startedAt   time.Time
	accumulated time.Duration
	shown       time.Duration
	gen         int
}

func newStopwatch() *stopwatch {
	return &stopwatch{id: uuid.NewString()}
}

func (s *stopwatch) start(now time.Time) tea.Cmd {
	if s.started {
		return nil
	}
	s.started = true
	s.startedAt = now
	s.gen++
	return s.tick()
}

func (s *stopwatch) stop(now time.Time) {
	if !s.started {
		return
	}
	s.accumulated += now.Sub(s.startedAt)
	s.shown = s.accumulated
	s.started = false
	s.gen++
}

func (s *stopwatch) reset(now time.Time) {
	s.accumulated = 0
	s.shown = 0
	if s.started {
		s.startedAt = now
	}
}

func (s *stopwatch) elapsed(now time.Time) time.Duration {
	if !s.started {
		return s.accumulated
	}
	return s.accumulated + now.Sub(s.startedAt)
}

func (s *stopwatch) tick() tea.Cmd {
	id, gen := s.id, s.gen
	return tea.Tick(stopwatchInterval, func(t time.Time) tea.Msg {
		return stopwatchTickMsg{id: id, gen: gen, Time: t}
	})
}

// formatElapsed renders d as HH:MM:SS.ss.
func formatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	hours := int(d / time.Hour)
	d -= time.Duration(hours) * time.Hour
	minutes := int(d / time.Minute)
	d -= time.Duration(minutes) * time.Minute
	seconds := d.Seconds()
	return fmt.Sprintf("%02d:%02d:%05.2f", hours, minutes, seconds)
}

// stopwatchModel is a scrolling column of stopwatches.
type stopwatchModel struct {
	frame
	header  ui.Header
	keys    bindings
	watches []*stopwatch
	focus   int
	offset  int
	now     func() time.Time
}

var (
	swAddKey    = binding("a", "a", "add")
	swRemoveKey = binding("r", "r", "remove last")
	swNextKey   = binding("tab", "tab", "next")
	swPrevKey   = binding("shift+tab", "shift+tab", "prev")
	swStartKey  = binding("s", "s", "start")
	swStopKey   = binding("x", "x", "stop")
	swResetKey  = binding("0", "0", "reset")
)

func newStopwatchDemo(env Env) tea.Model {
	h := ui.NewHeader("StopwatchApp", "")
	h.Theme = env.Theme
	m := stopwatchModel{
		frame:  newFrame(env.Theme),
		header: h,
		keys:   bindings{swAddKey, swRemoveKey, swNextKey, swStartKey, swStopKey, swResetKey, quitKey},
		now:    env.now,
	}
	for i := 0; i < initialStopwatches; i++ {
		m.watches = append(m.watches, newStopwatch())
	}
	return m
}

func (m stopwatchModel) Init() tea.Cmd {
	return nil
}

func (m stopwatchModel) focused() *stopwatch {
	if m.focus < 0 || m.focus >= len(m.watches) {
		return nil
	}
	return m.watches[m.focus]
}

func (m stopwatchModel) visibleCount() int {
	n := m.bodyHeight(m.header.Height()) / stopwatchRows
	if n < 1 {
		return 1
	}
	return n
}

// scrollToFocus adjusts the offset so the focused stopwatch is visible.
func (m *stopwatchModel) scrollToFocus() {
	visible := m.visibleCount()
	if m.focus < m.offset {
		m.offset = m.focus
	}
	if m.focus >= m.offset+visible {
		m.offset = m.focus - visible + 1
	}
	if last := len(m.watches) - visible; m.offset > last {
		m.offset = last
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

func (m stopwatchModel) find(id string) *stopwatch {
	for _, s := range m.watches {
		if s.id == id {
			return s
		}
	}
	return nil
}

func (m stopwatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg)
		m.scrollToFocus()
	case stopwatchTickMsg:
		s := m.find(msg.id)
		if s == nil || !s.started || s.gen != msg.gen {
			return m, nil
		}
		s.shown = s.elapsed(msg.Time)
		return m, s.tick()
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m stopwatchModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, quitKey):
		return m, Quit("")
	case key.Matches(msg, swAddKey):
		m.watches = append(m.watches, newStopwatch())
		m.focus = len(m.watches) - 1
		m.scrollToFocus()
		logging.LogAction("stopwatch", "add")
	case key.Matches(msg, swRemoveKey):
		if len(m.watches) == 0 {
			return m, nil
		}
		m.watches = m.watches[:len(m.watches)-1]
		if m.focus >= len(m.watches) {
			m.focus = len(m.watches) - 1
		}
		if m.focus < 0 {
			m.focus = 0
		}
		m.scrollToFocus()
		logging.LogAction("stopwatch", "remove")
	case key.Matches(msg, swNextKey):
		if len(m.watches) > 0 {
			m.focus = (m.focus + 1) % len(m.watches)
			m.scrollToFocus()
		}
	case key.Matches(msg, swPrevKey):
		if len(m.watches) > 0 {
			m.focus = (m.focus - 1 + len(m.watches)) % len(m.watches)
			m.scrollToFocus()
		}
	case key.Matches(msg, swStartKey):
		if s := m.focused(); s != nil {
			return m, s.start(m.now())
		}
	case key.Matches(msg, swStopKey):
		if s := m.focused(); s != nil {
			s.stop(m.now())
		}
	case key.Matches(msg, swResetKey):
		if s := m.focused(); s != nil {
			s.reset(m.now())
		}
	}
	return m, nil
}

func (m stopwatchModel) View() string {
	rows := make([]string, 0, m.visibleCount())
	end := m.offset + m.visibleCount()
	if end > len(m.watches) {
		end = len(m.watches)
	}
	for i := m.offset; i < end; i++ {
		rows = append(rows, m.renderStopwatch(m.watches[i], i == m.focus))
	}

	m.header.Width = m.innerWidth()
	return m.render(m.header.View(), lipgloss.JoinVertical(lipgloss.Left, rows...), m.keys)
}

func (m stopwatchModel) renderStopwatch(s *stopwatch, focused bool) string {
	start := lipgloss.NewStyle().Padding(0, 2).Background(m.theme.Secondary).Foreground(m.theme.Background).Render("Start")
	stop := lipgloss.NewStyle().Padding(0, 2).Background(m.theme.Error).Foreground(m.theme.Text).Render("Stop")
	reset := lipgloss.NewStyle().Padding(0, 2).Background(m.theme.Subtle).Foreground(m.theme.Text).Render("Reset")

	button := start
	if s.started {
		button = stop
	}

	display := lipgloss.NewStyle().Bold(true).Foreground(m.theme.Text)
	if s.started {
		display = display.Foreground(m.theme.Secondary)
	}

	row := lipgloss.JoinHorizontal(lipgloss.Center, button, " ", reset, "  ", display.Render(formatElapsed(s.shown)))

	width := m.innerWidth() - 4
	if width < 1 {
		width = 1
	}
	return m.theme.Panel(focused).Width(width).Render(row)
}
