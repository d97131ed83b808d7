package demos

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/tuibox/internal/logging"
	"github.com/muurk/tuibox/internal/urls"
)

// listEntry is one row of the list view: a label with an optional switch or
// link target.
type listEntry struct {
	label     string
	hasSwitch bool
	on        bool
	url       string
	selected  bool
}

func (e listEntry) FilterValue() string { return e.label }

var (
	selectKey = binding("enter", "enter", "select")
	switchKey = binding(" ", "space", "toggle switch")
)

type listViewModel struct {
	frame
	list       list.Model
	keys       bindings
	openURL    func(url string) error
	lastAction string
}

func newListViewDemo(env Env) tea.Model {
	items := []list.Item{
		listEntry{label: "One", hasSwitch: true, on: true},
		listEntry{label: "Two"},
		listEntry{label: "Three"},
		listEntry{label: "Go to textualize.io", url: urls.TextualizeHome},
	}

	m := listViewModel{
		frame:   newFrame(env.Theme),
		keys:    bindings{selectKey, switchKey, quitKey},
		openURL: env.OpenURL,
	}
	d := lineDelegate{theme: env.Theme, render: m.renderEntry}
	m.list = newList(items, d, m.innerWidth(), len(items))
	return m
}

// LastAction describes the most recent selection.
func (m listViewModel) LastAction() string {
	return m.lastAction
}

func (m listViewModel) entry(i int) listEntry {
	e, _ := m.list.Items()[i].(listEntry)
	return e
}

func (m listViewModel) renderEntry(item list.Item) string {
	e, ok := item.(listEntry)
	if !ok {
		return ""
	}
	label := e.label
	if e.url != "" {
		label = lipgloss.NewStyle().Underline(true).Foreground(m.theme.Accent).Render(label)
	}
	if e.hasSwitch {
		state := m.theme.Muted().Render("[   off]")
		if e.on {
			state = lipgloss.NewStyle().Foreground(m.theme.Secondary).Render("[on    ]")
		}
		label += "  " + state
	}
	if e.selected {
		label = lipgloss.NewStyle().Background(m.theme.Primary).Render(label)
	}
	return label
}

func (m listViewModel) Init() tea.Cmd {
	return nil
}

func (m listViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg)
		m.list.SetWidth(m.innerWidth())
		return m, nil
	case urlOpenedMsg:
		if msg.err != nil {
			m.lastAction = "Could not open " + msg.url + ": " + msg.err.Error()
		}
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, quitKey):
			return m, Quit("")
		case key.Matches(msg, selectKey):
			return m.selectCurrent()
		case key.Matches(msg, switchKey):
			i := m.list.Index()
			e := m.entry(i)
			if !e.hasSwitch {
				return m, nil
			}
			e.on = !e.on
			cmd := m.list.SetItem(i, e)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m listViewModel) selectCurrent() (tea.Model, tea.Cmd) {
	i := m.list.Index()
	e := m.entry(i)
	e.selected = !e.selected
	m.lastAction = "selected " + e.label
	var open tea.Cmd
	if e.url != "" {
		m.lastAction = e.url
		open = openURLCmd(m.openURL, e.url)
	}
	logging.LogAction("listview", m.lastAction)
	set := m.list.SetItem(i, e)
	return m, tea.Batch(set, open)
}

func (m listViewModel) View() string {
	body := m.list.View()
	if m.lastAction != "" {
		body += "\n\n" + m.theme.Muted().Render(m.lastAction)
	}
	return m.render("", body, m.keys)
}
