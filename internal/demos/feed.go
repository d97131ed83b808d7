package demos

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"go.uber.org/zap"

	"github.com/muurk/tuibox/internal/feed"
	"github.com/muurk/tuibox/internal/logging"
	"github.com/muurk/tuibox/internal/store"
	"github.com/muurk/tuibox/internal/ui"
)

const feedTimeLayout = "2006-01-02 15:04"

var (
	toggleSeenKey = binding("t", "t", "toggle seen")
	openVideoKey  = binding("enter", "enter", "open")
	reloadKey     = binding("r", "r", "reload")
)

type seenSavedMsg struct {
	id      int
	videoID string
	seen    bool
	err     error
}

type snapshotChangedMsg struct {
	id int
}

// feedModel shows a channel list and a table of the highlighted channel's
// videos. Seen flags are written back to the store.
type feedModel struct {
	frame
	header  ui.Header
	keys    bindings
	data    *channelData
	list    list.Model
	watcher *store.Watcher
	cancel  context.CancelFunc

	now       func() time.Time
	freshDays int
	base      string
	openURL   func(string) error
	snapshot  string

	id         int
	cursor     int
	tableFocus bool
	status     string
	lastURL    string
}

func newFeedDemo(env Env) tea.Model {
	h := ui.NewHeader("Channel Feed", string(env.Source))
	h.Theme = env.Theme

	m := feedModel{
		frame:     newFrame(env.Theme),
		header:    h,
		keys:      bindings{cursorDnKey, cursorUpKey, focusSwapKey, toggleSeenKey, openVideoKey, reloadKey, quitKey},
		data:      newChannelData(env),
		now:       env.now,
		freshDays: env.freshDays(),
		base:      env.watchBase(),
		openURL:   env.OpenURL,
		id:        nextID(),
	}
	if env.Source == store.SourceSnapshot && env.Config != nil {
		m.snapshot = env.Config.Snapshot.Path
	}
	m.list = newList(nil, lineDelegate{theme: env.Theme}, ui.DefaultWidth/3, ui.DefaultHeight)
	return m
}

// LastURL is the most recently opened watch URL.
func (m feedModel) LastURL() string {
	return m.lastURL
}

// Close stops the snapshot watcher and releases the store.
func (m feedModel) Close() error {
	if m.watcher != nil {
		m.watcher.Stop()
	}
	if m.cancel != nil {
		m.cancel()
	}
	return m.data.Close()
}

func (m feedModel) Init() tea.Cmd {
	return m.data.Start()
}

// channel returns the highlighted channel.
func (m feedModel) channel() (feed.Channel, bool) {
	i := m.list.Index()
	if i < 0 || i >= len(m.data.channels) {
		return feed.Channel{}, false
	}
	return m.data.channels[i], true
}

func (m feedModel) video() (feed.Video, bool) {
	ch, ok := m.channel()
	if !ok || m.cursor < 0 || m.cursor >= len(ch.Videos) {
		return feed.Video{}, false
	}
	return ch.Videos[m.cursor], true
}

// setChannels rebuilds the list labels, keeping the list index and table
// cursor where they were when possible.
func (m *feedModel) setChannels() tea.Cmd {
	now := m.now()
	items := make([]list.Item, len(m.data.channels))
	for i, c := range m.data.channels {
		items[i] = textItem(c.Label(now, m.freshDays))
	}
	index := m.list.Index()
	cmd := m.list.SetItems(items)
	if index >= len(items) {
		index = len(items) - 1
	}
	if index >= 0 {
		m.list.Select(index)
	}
	m.clampCursor()
	return cmd
}

func (m *feedModel) clampCursor() {
	ch, _ := m.channel()
	if m.cursor >= len(ch.Videos) {
		m.cursor = len(ch.Videos) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// watch starts the snapshot watcher once the store is open.
func (m *feedModel) watch() tea.Cmd {
	if m.snapshot == "" || m.watcher != nil {
		return nil
	}
	w, err := store.NewWatcher(m.snapshot, store.DefaultDebounce)
	if err != nil {
		logging.Warn("Failed to watch snapshot", zap.String("path", m.snapshot), zap.Error(err))
		return nil
	}
	ctx, cancel := context.WithCancel(context.Background())
	if err := w.Start(ctx); err != nil {
		cancel()
		w.Stop()
		logging.Warn("Failed to watch snapshot", zap.String("path", m.snapshot), zap.Error(err))
		return nil
	}
	m.watcher, m.cancel = w, cancel
	return waitForChange(m.id, w)
}

func waitForChange(id int, w *store.Watcher) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-w.Changes():
			return snapshotChangedMsg{id: id}
		case <-w.Done():
			return nil
		}
	}
}

func (m feedModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ev, cmd := m.data.Handle(msg); ev != dataIgnored {
		switch ev {
		case dataOpened:
			watch := m.watch()
			return m, tea.Batch(cmd, watch)
		case dataLoaded:
			set := m.setChannels()
			return m, tea.Batch(cmd, set)
		}
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg)
		m.list.SetSize(max(m.innerWidth()/3, 12), m.bodyHeight(m.header.Height()))
		return m, nil

	case snapshotChangedMsg:
		if msg.id != m.id || m.watcher == nil {
			return m, nil
		}
		logging.Debug("Snapshot changed, reloading")
		return m, tea.Batch(m.data.Reload(), waitForChange(m.id, m.watcher))

	case seenSavedMsg:
		if msg.id != m.id {
			return m, nil
		}
		if msg.err != nil {
			// Roll back the optimistic toggle.
			feed.SetSeen(m.data.channels, msg.videoID, !msg.seen)
			m.status = "Could not save: " + msg.err.Error()
			cmd := m.setChannels()
			return m, cmd
		}
		m.status = ""
		return m, nil

	case urlOpenedMsg:
		if msg.err != nil {
			m.status = "Could not open " + msg.url + ": " + msg.err.Error()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m feedModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, quitKey):
		return m, Quit("")
	case key.Matches(msg, reloadKey):
		logging.LogAction("feed", "reload")
		return m, m.data.Reload()
	case key.Matches(msg, focusSwapKey):
		m.tableFocus = !m.tableFocus
		return m, nil
	case key.Matches(msg, toggleSeenKey):
		if !m.tableFocus {
			return m, nil
		}
		return m.toggleSeen()
	case key.Matches(msg, openVideoKey):
		return m.open()
	}

	if m.tableFocus {
		ch, _ := m.channel()
		switch {
		case key.Matches(msg, cursorUpKey) && m.cursor > 0:
			m.cursor--
		case key.Matches(msg, cursorDnKey) && m.cursor < len(ch.Videos)-1:
			m.cursor++
		}
		return m, nil
	}

	before := m.list.Index()
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	if m.list.Index() != before {
		m.cursor = 0
	}
	return m, cmd
}

// toggleSeen flips the cursor row locally and persists it.
func (m feedModel) toggleSeen() (tea.Model, tea.Cmd) {
	ch, ok := m.channel()
	v, vok := m.video()
	s := m.data.Store()
	if !ok || !vok || s == nil {
		return m, nil
	}
	seen, found := feed.ToggleSeen(m.data.channels, ch.Name, v.ID)
	if !found {
		return m, nil
	}
	logging.LogAction("feed", "toggle seen "+v.ID)

	id, videoID := m.id, v.ID
	save := func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()
		return seenSavedMsg{id: id, videoID: videoID, seen: seen, err: s.SetSeen(ctx, videoID, seen)}
	}
	set := m.setChannels()
	return m, tea.Batch(set, save)
}

// open sends the cursor row's watch URL to the browser.
func (m feedModel) open() (tea.Model, tea.Cmd) {
	if !m.tableFocus {
		m.tableFocus = true
		return m, nil
	}
	v, ok := m.video()
	if !ok || m.openURL == nil {
		return m, nil
	}
	url := feed.WatchURL(m.base, v.VideoID)
	m.lastURL = url
	logging.LogAction("feed", "open "+url)

	return m, openURLCmd(m.openURL, url)
}

// titleStyle colours a title by freshness; seen videos are dimmed.
func (m feedModel) titleStyle(v feed.Video) lipgloss.Style {
	s := lipgloss.NewStyle()
	if v.Seen {
		return s.Faint(true)
	}
	switch feed.ClassifyFreshness(m.now(), v.PublishedAt, m.freshDays) {
	case feed.Today:
		return s.Bold(true).Foreground(lipgloss.Color("#FF0000"))
	case feed.Recent:
		return s.Bold(true).Foreground(lipgloss.Color("#00FF00"))
	}
	return s
}

func formatPublished(t time.Time) string {
	if t.IsZero() {
		return feed.NotAvailable
	}
	return t.Format(feedTimeLayout)
}

func (m feedModel) renderTable(width int) string {
	ch, _ := m.channel()
	videos := ch.Videos

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(m.panelBorder())).
		Width(width).
		Headers("Time", "Title", "Duration").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).Foreground(m.theme.Primary).Padding(0, 1)
			}
			s := lipgloss.NewStyle().Padding(0, 1)
			if row >= 0 && row < len(videos) && col == 1 {
				s = s.Inherit(m.titleStyle(videos[row]))
			}
			if m.tableFocus && row == m.cursor {
				s = s.Background(m.theme.Accent)
			}
			return s
		})
	for _, raw := range videos {
		v := raw.Normalize()
		title := v.Title
		if title == "" {
			title = "No Title"
		}
		t.Row(formatPublished(v.PublishedAt), title, v.Duration)
	}
	return t.Render()
}

func (m feedModel) panelBorder() lipgloss.TerminalColor {
	if m.tableFocus {
		return m.theme.Accent
	}
	return m.theme.Subtle
}

func (m feedModel) View() string {
	var body string
	switch {
	case m.data.err != nil:
		body = storeErrorPanel(m.theme, m.data.err)
	case m.data.Empty():
		body = m.theme.ErrorPanel(noDataMessage, "Press r to retry")
	case !m.data.loaded:
		body = "Loading channels..."
	default:
		listWidth := max(m.innerWidth()/3, 12)
		left := m.theme.Panel(!m.tableFocus).Width(listWidth).Render(m.list.View())
		right := m.renderTable(max(m.innerWidth()-listWidth-6, 20))
		body = lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
	}
	if m.status != "" {
		body += "\n" + lipgloss.NewStyle().Foreground(m.theme.Warning).Render(ui.WarningMarker+" "+m.status)
	}

	m.header.Width = m.innerWidth()
	return m.render(m.header.View(), body, m.keys)
}
