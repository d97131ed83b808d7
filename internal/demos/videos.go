package demos

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/tuibox/internal/feed"
	"github.com/muurk/tuibox/internal/logging"
	"github.com/muurk/tuibox/internal/store"
	"github.com/muurk/tuibox/internal/ui"
)

var refreshKey = binding("r", "r", "refresh")

// detailsMsg carries the rendered details of one highlight change.
type detailsMsg struct {
	id       int
	seq      int
	markdown string
	rendered string
}

// videosModel lists channels on the left and shows the highlighted
// channel's videos as markdown on the right.
type videosModel struct {
	frame
	header  ui.Header
	keys    bindings
	data    *channelData
	spinner spinner.Model
	list    list.Model
	details viewport.Model
	base    string

	id       int
	seq      int
	markdown string
	current  string
}

func newVideosDemo(env Env) tea.Model {
	h := ui.NewHeader("Video Channel Viewer", string(env.Source))
	h.Theme = env.Theme

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	sp.Style = lipgloss.NewStyle().Foreground(env.Theme.Accent)

	m := videosModel{
		frame:   newFrame(env.Theme),
		header:  h,
		keys:    bindings{cursorDnKey, cursorUpKey, refreshKey, quitKey},
		data:    newChannelData(env),
		spinner: sp,
		details: viewport.New(ui.DefaultWidth/2, ui.DefaultHeight),
		base:    env.watchBase(),
		id:      nextID(),
	}
	m.list = newList(nil, lineDelegate{theme: env.Theme}, ui.DefaultWidth/3, ui.DefaultHeight)
	m.layout()
	return m
}

// Markdown is the source of the details pane currently shown.
func (m videosModel) Markdown() string {
	return m.markdown
}

// Close releases the store.
func (m videosModel) Close() error {
	return m.data.Close()
}

func (m videosModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.data.Start())
}

func (m *videosModel) layout() {
	height := m.bodyHeight(m.header.Height())
	left := max(m.innerWidth()/3, 12)
	m.list.SetSize(left, height)
	m.details.Width = max(m.innerWidth()-left-4, 10)
	m.details.Height = height
}

// requestDetails renders the highlighted channel's details. Only the latest
// request is applied.
func (m *videosModel) requestDetails() tea.Cmd {
	item, ok := m.list.SelectedItem().(textItem)
	if !ok {
		return nil
	}
	ch, ok := feed.Find(m.data.channels, string(item))
	if !ok {
		return nil
	}
	m.current = ch.Name
	m.seq++
	id, seq, width := m.id, m.seq, m.details.Width
	md := feed.DetailsMarkdown(ch, m.base)
	return func() tea.Msg {
		return detailsMsg{id: id, seq: seq, markdown: md, rendered: renderMarkdown(md, width)}
	}
}

func renderMarkdown(md string, width int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}

// setChannels rebuilds the list, keeping the highlighted channel when it
// still exists.
func (m *videosModel) setChannels(channels []feed.Channel) tea.Cmd {
	items := make([]list.Item, len(channels))
	selected := 0
	for i, c := range channels {
		items[i] = textItem(c.Name)
		if c.Name == m.current {
			selected = i
		}
	}
	cmd := m.list.SetItems(items)
	m.list.Select(selected)
	return tea.Batch(cmd, m.requestDetails())
}

func (m videosModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ev, cmd := m.data.Handle(msg); ev != dataIgnored {
		if ev == dataLoaded {
			logging.LogAction("videos", "loaded")
			set := m.setChannels(m.data.channels)
			return m, tea.Batch(cmd, set)
		}
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg)
		m.layout()
		cmd := m.requestDetails()
		return m, cmd
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case detailsMsg:
		if msg.id != m.id || msg.seq != m.seq {
			return m, nil
		}
		m.markdown = msg.markdown
		m.details.SetContent(msg.rendered)
		m.details.GotoTop()
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, quitKey):
			return m, Quit("")
		case key.Matches(msg, refreshKey):
			logging.LogAction("videos", "refresh")
			return m, m.data.Reload()
		case key.Matches(msg, m.details.KeyMap.PageDown, m.details.KeyMap.PageUp):
			var cmd tea.Cmd
			m.details, cmd = m.details.Update(msg)
			return m, cmd
		}
		before := m.list.Index()
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		if m.list.Index() != before {
			details := m.requestDetails()
			return m, tea.Batch(cmd, details)
		}
		return m, cmd
	}
	return m, nil
}

func (m videosModel) View() string {
	var body string
	switch {
	case m.data.err != nil:
		body = storeErrorPanel(m.theme, m.data.err)
	case m.data.Empty():
		body = m.theme.ErrorPanel(noDataMessage, "Press r to retry")
	case !m.data.loaded:
		body = m.spinner.View() + " Loading channels..."
	default:
		left := m.theme.Panel(true).Render(m.list.View())
		right := m.theme.Panel(false).Render(m.details.View())
		body = lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	}
	if m.data.loading && m.data.loaded {
		body = m.spinner.View() + " Refreshing...\n" + body
	}

	m.header.Width = m.innerWidth()
	return m.render(m.header.View(), body, m.keys)
}

// storeErrorPanel shows a store failure with its troubleshooting hints.
func storeErrorPanel(theme ui.Theme, err error) string {
	hints := append(store.Troubleshooting(err), "Press r to retry")
	return theme.ErrorPanel(err.Error(), strings.Join(hints, "\n"))
}
