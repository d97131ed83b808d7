package demos

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/muurk/tuibox/internal/logging"
	"github.com/muurk/tuibox/internal/ui"
	"github.com/muurk/tuibox/internal/version"
)

// GalleryName is the name the gallery runs under.
const GalleryName = "gallery"

type demoItem struct {
	Demo
}

func (d demoItem) FilterValue() string { return d.Name }

var launchKey = binding("enter", "enter", "launch")

// Gallery lists every demo and runs the chosen one in place. Quitting a demo
// returns to the list.
type Gallery struct {
	frame
	header ui.Header
	env    Env
	list   list.Model
	keys   bindings

	active     tea.Model
	activeName string
	status     string
}

// NewGallery returns the gallery over Demos().
func NewGallery(env Env) *Gallery {
	h := ui.NewHeader("tuibox", version.Version)
	h.Theme = env.Theme

	demos := Demos()
	items := make([]list.Item, len(demos))
	for i, d := range demos {
		items[i] = demoItem{d}
	}

	g := &Gallery{
		frame:  newFrame(env.Theme),
		header: h,
		env:    env,
		keys:   bindings{cursorDnKey, cursorUpKey, launchKey, quitKey},
	}
	g.list = newList(items, lineDelegate{theme: env.Theme, render: g.renderItem}, ui.DefaultWidth, len(items))
	return g
}

// Active returns the running demo, or nil when the list is showing.
func (g *Gallery) Active() tea.Model {
	return g.active
}

func (g *Gallery) renderItem(item list.Item) string {
	d, ok := item.(demoItem)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%-14s %s", d.Name, g.theme.Muted().Render(d.Description))
}

func (g *Gallery) Init() tea.Cmd {
	return nil
}

// ClaimsKey defers to the running demo.
func (g *Gallery) ClaimsKey(k string) bool {
	return g.active != nil && claims(g.active, k)
}

// InterceptQuit closes the running demo and returns to the list.
func (g *Gallery) InterceptQuit(msg QuitMsg) (tea.Model, tea.Cmd, bool) {
	if g.active == nil {
		return g, nil, false
	}
	if err := closeModel(g.active); err != nil {
		logging.Warn("Failed to close demo", zap.String("demo", g.activeName), zap.Error(err))
	}
	logging.LogScreen("exit", g.activeName)

	g.status = ""
	if msg.Value != "" {
		g.status = g.activeName + ": " + msg.Value
	}
	g.active = nil
	g.activeName = ""
	return g, nil, true
}

// Close releases the running demo, if any.
func (g *Gallery) Close() error {
	if g.active == nil {
		return nil
	}
	err := closeModel(g.active)
	g.active = nil
	return err
}

func (g *Gallery) launch() tea.Cmd {
	d, ok := g.list.SelectedItem().(demoItem)
	if !ok {
		return nil
	}
	g.active = d.New(g.env)
	g.activeName = d.Name
	g.status = ""
	logging.LogScreen("start", d.Name)
	return tea.Batch(g.active.Init(), sizeCmd(g.width, g.height))
}

func (g *Gallery) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		g.resize(size)
		g.list.SetWidth(g.innerWidth())
	}

	if g.active != nil {
		var cmd tea.Cmd
		g.active, cmd = g.active.Update(msg)
		return g, cmd
	}

	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, quitKey):
			return g, Quit("")
		case key.Matches(k, launchKey):
			return g, g.launch()
		}
	}

	var cmd tea.Cmd
	g.list, cmd = g.list.Update(msg)
	return g, cmd
}

func (g *Gallery) View() string {
	if g.active != nil {
		return g.active.View()
	}
	body := g.list.View()
	if g.status != "" {
		body += "\n\n" + lipgloss.NewStyle().Foreground(g.theme.Secondary).Render(ui.SuccessMarker+" "+g.status)
	}
	g.header.Width = g.innerWidth()
	return g.render(g.header.View(), body, g.keys)
}

// GalleryDemo wraps the gallery so it runs like any other demo.
func GalleryDemo() Demo {
	return Demo{
		Name:        GalleryName,
		Description: "Browse and launch every demo",
		New:         func(env Env) tea.Model { return NewGallery(env) },
	}
}
