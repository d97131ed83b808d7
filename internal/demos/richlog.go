package demos

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"go.uber.org/zap"

	"github.com/muurk/tuibox/internal/logging"
	"github.com/muurk/tuibox/internal/ui"
)

const (
	richLogWelcome   = "Welcome to the RichLog Boilerplate App!"
	richLogHint      = "--- Press key bindings to add more entries ---"
	richLogReady     = "App is ready!"
	richLogCleared   = "Log cleared."
	richLogEntryFmt  = "[%s] A standard log entry has been added."
	entryStampLayout = "2006-01-02 15:04:05"
	isoLayout        = "2006-01-02T15:04:05.000000"

	codeStart  = "--- Go Code Snippet ---"
	codeEnd    = "--- End Code Snippet ---"
	tableStart = "--- Data Table ---"
	tableEnd   = "--- End Data Table ---"
)

const codeSnippet = `package main

import tea "github.com/charmbracelet/bubbletea"

type model struct{}

func (m model) Init() tea.Cmd {
	return tea.Println("\a")
}`

var readyScript = []scriptStep{
	{text: richLogReady},
	{delay: time.Second, text: richLogReady},
}

var (
	addEntryKey  = binding("ctrl+l", "ctrl+l", "add log entry")
	addStyledKey = binding("ctrl+s", "ctrl+s", "add styled entry")
	addCodeKey   = binding("ctrl+c", "ctrl+c", "add code entry")
	addTableKey  = binding("ctrl+t", "ctrl+t", "add table entry")
	clearLogKey  = binding("ctrl+x", "ctrl+x", "clear log")
)

// richLogModel writes styled text, highlighted code and tables to a log.
type richLogModel struct {
	frame
	header ui.Header
	log    logView
	keys   bindings
	now    func() time.Time
	id     int
}

func newRichLogDemo(env Env) tea.Model {
	h := ui.NewHeader("RichLog Boilerplate", "Demonstrating RichLog Capabilities")
	h.Theme = env.Theme
	m := richLogModel{
		frame:  newFrame(env.Theme),
		header: h,
		log:    newLogView(env.Theme),
		keys:   bindings{addEntryKey, addStyledKey, addCodeKey, addTableKey, clearLogKey, quitKey},
		now:    env.now,
		id:     nextID(),
	}
	m.layout()

	m.log.Write(richLogWelcome)
	m.log.Write("Current time: " + m.now().Format(isoLayout))
	m.log.Write(richLogHint)
	m.log.Write(tipLine())
	return m
}

// ClaimsKey keeps ctrl+c for the code entry.
func (m richLogModel) ClaimsKey(k string) bool {
	return k == "ctrl+c"
}

func (m richLogModel) Init() tea.Cmd {
	return runScript(m.id, readyScript, 0)
}

// layout sizes the log to 80% of the body.
func (m *richLogModel) layout() {
	m.log.SetSize(m.innerWidth()*8/10, m.bodyHeight(m.header.Height())*8/10)
}

func (m richLogModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg)
		m.layout()
		return m, nil
	case scriptMsg:
		return m, advanceScript(&m.log, m.id, readyScript, msg)
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, quitKey):
			return m, Quit("")
		case key.Matches(msg, addEntryKey):
			m.log.Write(fmt.Sprintf(richLogEntryFmt, m.now().Format(entryStampLayout)))
		case key.Matches(msg, addStyledKey):
			m.log.Write(styledLine())
			m.log.Write(lipgloss.NewStyle().Faint(true).Render("Styles nest too: lipgloss renders each span on its own."))
		case key.Matches(msg, addCodeKey):
			m.log.Write(codeStart)
			m.log.Write(highlight(codeSnippet, "go"))
			m.log.Write(codeEnd)
		case key.Matches(msg, addTableKey):
			m.log.Write(tableStart)
			m.log.Write(sampleTable())
			m.log.Write(tableEnd)
		case key.Matches(msg, clearLogKey):
			m.log.Clear()
			m.log.Write(richLogCleared)
		default:
			var cmd tea.Cmd
			m.log, cmd = m.log.Update(msg)
			return m, cmd
		}
		logging.LogAction("richlog", msg.String())
	}
	return m, nil
}

func (m richLogModel) View() string {
	body := lipgloss.Place(m.innerWidth(), m.bodyHeight(m.header.Height()), lipgloss.Center, lipgloss.Center, m.log.View())
	m.header.Width = m.innerWidth()
	return m.render(m.header.View(), body, m.keys)
}

func tipLine() string {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#6495ED")).Render("Tip: ") +
		"Use " +
		lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00FF00")).Render("Ctrl+L") +
		" to add a basic log entry."
}

func styledLine() string {
	fancy := lipgloss.NewStyle().
		Bold(true).
		Italic(true).
		Underline(true).
		Foreground(lipgloss.Color("#FF00FF")).
		Background(lipgloss.Color("#00FFFF"))
	return "This is a " + fancy.Render("styled") +
		" entry with multiple styles and " +
		lipgloss.NewStyle().Foreground(lipgloss.Color("#008000")).Render("colors!")
}

// highlight renders code with line numbers in the monokai palette. It falls
// back to the plain source when highlighting fails.
func highlight(code, language string) string {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get("monokai")
	formatter := formatters.Get("terminal256")

	var buf bytes.Buffer
	it, err := lexer.Tokenise(nil, code)
	if err == nil {
		err = formatter.Format(&buf, style, it)
	}
	out := buf.String()
	if err != nil {
		logging.Debug("highlight failed", zap.String("language", language), zap.Error(err))
		out = code
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	number := lipgloss.NewStyle().Foreground(lipgloss.Color("#75715E"))
	for i, line := range lines {
		lines[i] = number.Render(fmt.Sprintf("%3d ", i+1)) + line
	}
	return strings.Join(lines, "\n")
}

func sampleTable() string {
	columns := []lipgloss.Style{
		lipgloss.NewStyle().Foreground(lipgloss.Color("#00FFFF")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("#FF00FF")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("#008000")),
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "Name", "Role").
		Row("1", "Alice", "Developer").
		Row("2", "Bob", "Designer").
		Row("3", "Charlie", "Manager").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).Padding(0, 1)
			}
			return columns[col].Padding(0, 1)
		})

	rendered := t.Render()
	title := lipgloss.PlaceHorizontal(lipgloss.Width(rendered), lipgloss.Center,
		lipgloss.NewStyle().Italic(true).Render("Sample Data Table"))
	return title + "\n" + rendered
}
