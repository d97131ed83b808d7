package ui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const headerIcon = "⭘"

var lastHeaderID int64

func nextHeaderID() int {
	return int(atomic.AddInt64(&lastHeaderID, 1))
}

// ClockTickMsg advances a header's clock.
type ClockTickMsg struct {
	Time time.Time
	id   int
}

// Header is the application title bar: an icon, a centred title and an
// optional clock on the right. It can be toggled between one and three rows.
type Header struct {
	Title       string
	SubTitle    string
	ShowClock   bool
	ClockFormat string
	Tall        bool
	Width       int
	Theme       Theme

	now time.Time
	id  int
}

// NewHeader returns a short header without a clock.
func NewHeader(title, subTitle string) Header {
	return Header{
		Title:       title,
		SubTitle:    subTitle,
		ClockFormat: "15:04:05",
		Theme:       DefaultTheme(),
		now:         time.Now(),
		id:          nextHeaderID(),
	}
}

// WithClock enables the clock using a time.Format layout.
func (h Header) WithClock(format string) Header {
	h.ShowClock = true
	if format != "" {
		h.ClockFormat = format
	}
	return h
}

// Now returns the time currently shown by the clock.
func (h Header) Now() time.Time {
	return h.now
}

// ToggleTall switches between one and three rows.
func (h *Header) ToggleTall() {
	h.Tall = !h.Tall
}

// Height is the number of rows View renders.
func (h Header) Height() int {
	if h.Tall {
		return 3
	}
	return 1
}

// Init starts the clock when it is enabled.
func (h Header) Init() tea.Cmd {
	if !h.ShowClock {
		return nil
	}
	return h.tick()
}

func (h Header) tick() tea.Cmd {
	id := h.id
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return ClockTickMsg{Time: t, id: id}
	})
}

// Update handles clock ticks addressed to this header.
func (h Header) Update(msg tea.Msg) (Header, tea.Cmd) {
	switch msg := msg.(type) {
	case ClockTickMsg:
		if msg.id != h.id || !h.ShowClock {
			return h, nil
		}
		h.now = msg.Time
		return h, h.tick()
	case tea.WindowSizeMsg:
		h.Width = msg.Width
	}
	return h, nil
}

func (h Header) View() string {
	width := h.Width
	if width <= 0 {
		width = DefaultWidth
	}

	left := " " + headerIcon + " "
	right := ""
	if h.ShowClock {
		right = h.now.Format(h.ClockFormat) + " "
	}

	title := h.Title
	if h.SubTitle != "" {
		title += " - " + h.SubTitle
	}

	middle := width - lipgloss.Width(left) - lipgloss.Width(right)
	if middle < 0 {
		middle = 0
	}
	title = lipgloss.NewStyle().MaxWidth(middle).Render(title)
	center := lipgloss.PlaceHorizontal(middle, lipgloss.Center, title)

	style := lipgloss.NewStyle().
		Width(width).
		MaxWidth(width).
		Foreground(h.Theme.Text).
		Background(h.Theme.Primary).
		Bold(true)
	if h.Tall {
		style = style.Height(3).AlignVertical(lipgloss.Center)
	}
	return style.Render(left + center + right)
}
