package demos

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/muurk/tuibox/internal/logging"
)

type swimmer struct {
	Lane    int
	Name    string
	Country string
	Time    float64
}

func (s swimmer) cells() []string {
	return []string{strconv.Itoa(s.Lane), s.Name, s.Country, fmt.Sprintf("%.2f", s.Time)}
}

var swimmerColumns = []string{"lane", "swimmer", "country", "time"}

// swimmerKeys maps each list key to the row it appends.
var swimmerKeys = []struct {
	key string
	row swimmer
}{
	{"a", swimmer{4, "Joseph Schooling", "Singapore", 50.39}},
	{"b", swimmer{6, "László Cseh", "Hungary", 51.14}},
	{"c", swimmer{7, "Tom Shields", "United States", 51.73}},
}

var swimmerRows = []swimmer{
	{4, "Joseph Schooling", "Singapore", 50.39},
	{2, "Michael Phelps", "United States", 51.14},
	{5, "Chad le Clos", "South Africa", 51.14},
	{6, "László Cseh", "Hungary", 51.14},
	{3, "Li Zhuhao", "China", 51.26},
	{8, "Mehdy Metella", "France", 51.58},
	{7, "Tom Shields", "United States", 51.73},
	{1, "Aleksandr Sadovnikov", "Russia", 51.84},
	{10, "Darren Burns", "Scotland", 51.84},
}

var (
	focusSwapKey = binding("l", "l", "swap focus")
	cursorUpKey  = binding("k", "k", "up", "up")
	cursorDnKey  = binding("j", "j", "down", "down")
	toggleRowKey = binding("t", "t", "toggle row")
)

// swimmersModel pairs a key list with a table; highlighting a key appends
// that key's row to the table.
type swimmersModel struct {
	frame
	keys        bindings
	list        list.Model
	rows        []swimmer
	styled      map[int]bool
	cursor      int
	tableFocus  bool
	highlighted int
}

func newSwimmersDemo(env Env) tea.Model {
	items := make([]list.Item, len(swimmerKeys))
	for i, k := range swimmerKeys {
		items[i] = textItem(k.key)
	}
	m := swimmersModel{
		frame:       newFrame(env.Theme),
		keys:        bindings{cursorDnKey, cursorUpKey, focusSwapKey, toggleRowKey, quitKey},
		list:        newList(items, lineDelegate{theme: env.Theme}, 8, len(items)),
		rows:        append([]swimmer(nil), swimmerRows...),
		styled:      make(map[int]bool),
		highlighted: -1,
	}
	// The first key is highlighted as soon as the list is shown.
	return m.syncHighlight()
}

// Rows returns the table rows.
func (m swimmersModel) Rows() []swimmer {
	return append([]swimmer(nil), m.rows...)
}

func (m swimmersModel) Init() tea.Cmd {
	return nil
}

// syncHighlight appends the highlighted key's row when the highlight moves.
func (m swimmersModel) syncHighlight() swimmersModel {
	i := m.list.Index()
	if i == m.highlighted || i < 0 || i >= len(swimmerKeys) {
		return m
	}
	m.highlighted = i
	m.rows = append(m.rows, swimmerKeys[i].row)
	logging.LogAction("swimmers", "append "+swimmerKeys[i].key)
	return m
}

func (m swimmersModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg)
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, quitKey):
			return m, Quit("")
		case key.Matches(msg, focusSwapKey):
			m.tableFocus = !m.tableFocus
			return m, nil
		case m.tableFocus && key.Matches(msg, cursorUpKey):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case m.tableFocus && key.Matches(msg, cursorDnKey):
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}
			return m, nil
		case m.tableFocus && key.Matches(msg, toggleRowKey):
			m.styled[m.cursor] = !m.styled[m.cursor]
			return m, nil
		case !m.tableFocus:
			var cmd tea.Cmd
			m.list, cmd = m.list.Update(msg)
			return m.syncHighlight(), cmd
		}
	}
	return m, nil
}

// visibleRows returns the window of rows that fits height around the cursor.
func (m swimmersModel) visibleRows(height int) (int, int) {
	if height < 1 {
		height = 1
	}
	start := 0
	if m.cursor >= height {
		start = m.cursor - height + 1
	}
	end := start + height
	if end > len(m.rows) {
		end = len(m.rows)
	}
	return start, end
}

func (m swimmersModel) View() string {
	height := m.bodyHeight(0)
	listWidth := max(m.innerWidth()/10, 6)
	tableWidth := m.innerWidth() - listWidth - 2

	listBox := m.theme.Panel(!m.tableFocus).Width(listWidth).Render(m.list.View())

	start, end := m.visibleRows(height - 4)
	boldRed := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF0000"))

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(m.panelBorder(m.tableFocus))).
		Width(tableWidth).
		Headers(swimmerColumns...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).Foreground(m.theme.Primary).Padding(0, 1)
			}
			abs := start + row
			s := lipgloss.NewStyle().Padding(0, 1)
			if m.styled[abs] {
				s = s.Inherit(boldRed)
			}
			if m.tableFocus && abs == m.cursor {
				s = s.Background(m.theme.Accent)
			}
			return s
		})
	for _, r := range m.rows[start:end] {
		t.Row(r.cells()...)
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, listBox, " ", t.Render())
	return m.render("", body, m.keys)
}

func (m swimmersModel) panelBorder(focused bool) lipgloss.TerminalColor {
	if focused {
		return m.theme.Accent
	}
	return m.theme.Subtle
}
