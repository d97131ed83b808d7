package demos

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/tuibox/internal/logging"
	"github.com/muurk/tuibox/internal/ui"
)

type task struct {
	ID     int
	Title  string
	Status string
	Due    string
}

var tasks = []task{
	{1, "Implement login feature", "In Progress", "2025-05-20"},
	{2, "Write unit tests", "Completed", "2025-04-30"},
	{3, "Update documentation", "Pending", "2025-05-18"},
	{4, "Refactor codebase", "In Progress", "2025-06-01"},
	{5, "Release version 1.0", "Pending", "2025-06-15"},
}

type metric struct {
	Name  string
	Value int
}

// taskMetrics summarises tasks by status.
func taskMetrics(ts []task) []metric {
	count := func(status string) int {
		n := 0
		for _, t := range ts {
			if t.Status == status {
				n++
			}
		}
		return n
	}
	return []metric{
		{"Total Tasks", len(ts)},
		{"Completed Tasks", count("Completed")},
		{"In Progress Tasks", count("In Progress")},
		{"Pending Tasks", count("Pending")},
	}
}

const dashboardWelcome = "Welcome to the Dashboard!\nUse 'd' to open the Data View or press the button below."

type dashScreen int

const (
	dashboardScreen dashScreen = iota
	dataViewScreen
)

func (s dashScreen) String() string {
	if s == dataViewScreen {
		return "Data View"
	}
	return "Dashboard"
}

var (
	openDataKey = binding("d", "d", "open data view")
	backKey     = binding("esc", "esc", "go back")
)

// dashboardModel keeps a stack of two screens: the dashboard and the data
// view listing every task.
type dashboardModel struct {
	frame
	header  ui.Header
	stack   []dashScreen
	metrics table.Model
	tasks   table.Model
}

func newDashboardDemo(env Env) tea.Model {
	h := ui.NewHeader(dashboardScreen.String(), "")
	h.Theme = env.Theme

	metricRows := make([]table.Row, 0, 4)
	for _, mt := range taskMetrics(tasks) {
		metricRows = append(metricRows, table.Row{mt.Name, strconv.Itoa(mt.Value)})
	}
	taskRows := make([]table.Row, 0, len(tasks))
	for _, t := range tasks {
		taskRows = append(taskRows, table.Row{strconv.Itoa(t.ID), t.Title, t.Status, t.Due})
	}

	return dashboardModel{
		frame:  newFrame(env.Theme),
		header: h,
		stack:  []dashScreen{dashboardScreen},
		metrics: newTable(env.Theme, []table.Column{
			{Title: "Metric", Width: 20},
			{Title: "Value", Width: 6},
		}, metricRows),
		tasks: newTable(env.Theme, []table.Column{
			{Title: "ID", Width: 4},
			{Title: "Task", Width: 26},
			{Title: "Status", Width: 12},
			{Title: "Due Date", Width: 12},
		}, taskRows),
	}
}

func newTable(theme ui.Theme, columns []table.Column, rows []table.Row) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(len(rows)+2),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Subtle).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(theme.Text).
		Background(theme.Primary).
		Bold(false)
	t.SetStyles(s)
	return t
}

// Screen is the screen on top of the stack.
func (m dashboardModel) Screen() dashScreen {
	return m.stack[len(m.stack)-1]
}

func (m dashboardModel) push(s dashScreen) dashboardModel {
	m.stack = append(m.stack, s)
	m.header.Title = s.String()
	logging.LogScreen("push", s.String())
	return m
}

func (m dashboardModel) pop() dashboardModel {
	if len(m.stack) > 1 {
		logging.LogScreen("pop", m.Screen().String())
		m.stack = m.stack[:len(m.stack)-1]
		m.header.Title = m.Screen().String()
	}
	return m
}

func (m dashboardModel) Init() tea.Cmd {
	return nil
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg)
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, quitKey):
			return m, Quit("")
		case m.Screen() == dashboardScreen && key.Matches(msg, openDataKey, enterKey):
			return m.push(dataViewScreen), nil
		case m.Screen() == dataViewScreen && key.Matches(msg, backKey, enterKey):
			return m.pop(), nil
		}
	}

	var cmd tea.Cmd
	if m.Screen() == dataViewScreen {
		m.tasks, cmd = m.tasks.Update(msg)
	} else {
		m.metrics, cmd = m.metrics.Update(msg)
	}
	return m, cmd
}

func (m dashboardModel) View() string {
	var body string
	var keys bindings
	if m.Screen() == dataViewScreen {
		body = lipgloss.JoinVertical(lipgloss.Left,
			m.tasks.View(),
			"",
			button{label: "Back to Dashboard"}.view(m.theme, true),
		)
		keys = bindings{backKey, enterKey, quitKey}
	} else {
		row := lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.NewStyle().Width(max(m.innerWidth()/2, 20)).Render(dashboardWelcome),
			m.metrics.View(),
		)
		body = lipgloss.JoinVertical(lipgloss.Left,
			row,
			"",
			button{label: "Open Data View"}.view(m.theme, true),
		)
		keys = bindings{openDataKey, enterKey, quitKey}
	}
	m.header.Width = m.innerWidth()
	return m.render(m.header.View(), body, keys)
}
