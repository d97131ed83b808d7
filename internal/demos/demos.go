package demos

import (
	"context"
	"io"
	"os"
	"sort"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/browser"

	"github.com/muurk/tuibox/internal/config"
	"github.com/muurk/tuibox/internal/store"
	"github.com/muurk/tuibox/internal/ui"
)

// Demo is one entry in the gallery and one tuibox subcommand.
type Demo struct {
	Name        string
	Description string
	New         func(Env) tea.Model
}

// Env carries what a demo needs from the outside world.
type Env struct {
	Config *config.Config
	Theme  ui.Theme
	Source store.Source

	Now       func() time.Time
	OpenURL   func(url string) error
	OpenStore func(ctx context.Context) (store.Store, error)
	Bell      io.Writer
}

// NewEnv builds the production environment for cfg and src.
func NewEnv(cfg *config.Config, src store.Source) Env {
	theme, _ := ui.ThemeByName(cfg.UI.Theme)

	// The TUI owns the terminal; keep the browser helper quiet.
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard

	return Env{
		Config:  cfg,
		Theme:   theme,
		Source:  src,
		Now:     time.Now,
		OpenURL: browser.OpenURL,
		OpenStore: func(ctx context.Context) (store.Store, error) {
			return store.Open(ctx, cfg, src)
		},
		Bell: os.Stderr,
	}
}

func (e Env) now() time.Time {
	if e.Now == nil {
		return time.Now()
	}
	return e.Now()
}

func (e Env) freshDays() int {
	if e.Config == nil || e.Config.UI.FreshDays <= 0 {
		return config.DefaultFreshDays
	}
	return e.Config.UI.FreshDays
}

func (e Env) watchBase() string {
	if e.Config == nil || e.Config.UI.WatchURLBase == "" {
		return config.DefaultWatchURLBase
	}
	return e.Config.UI.WatchURLBase
}

func (e Env) clockFormat() string {
	if e.Config == nil || e.Config.UI.ClockFormat == "" {
		return config.DefaultClockFormat
	}
	return e.Config.UI.ClockFormat
}

var registry = []Demo{
	{"header", "Header with a clock; h toggles a tall header", newHeaderDemo},
	{"containers", "Header, footer and two horizontal rows of labels", newContainersDemo},
	{"theme", "The containers layout under a switchable theme", newThemeDemo},
	{"css", "Vertical container with a label styled by id", newCSSDemo},
	{"ticker", "A paused counter that a timer advances once a second", newTickerDemo},
	{"stopwatch", "Stopwatches that can be added, removed, started and reset", newStopwatchDemo},
	{"keybind", "Key bindings that update a message and exit with a value", newKeybindDemo},
	{"popup", "A modal popup window pushed over the main screen", newPopupDemo},
	{"richlog", "A log of styled text, highlighted code and tables", newRichLogDemo},
	{"log", "A plain log written to by a delayed background task", newLogDemo},
	{"modal-log", "A modal screen with a log fed by a background task", newModalLogDemo},
	{"modal-richlog", "A modal screen with a rich log fed on ready", newModalRichLogDemo},
	{"listview", "A list view with a switch, plain items and a link", newListViewDemo},
	{"swimmers", "A key list that appends rows to a data table", newSwimmersDemo},
	{"boilerplate", "Input and button that echo what was entered", newBoilerplateDemo},
	{"dashboard", "Dashboard and data view screens on a stack", newDashboardDemo},
	{"videos", "Channel list with markdown details from the store", newVideosDemo},
	{"feed", "Channel feed table with seen flags persisted to the store", newFeedDemo},
}

// Demos returns every demo in gallery order.
func Demos() []Demo {
	return append([]Demo(nil), registry...)
}

// Lookup finds a demo by name.
func Lookup(name string) (Demo, bool) {
	for _, d := range registry {
		if d.Name == name {
			return d, true
		}
	}
	return Demo{}, false
}

// Names returns the demo names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for _, d := range registry {
		names = append(names, d.Name)
	}
	sort.Strings(names)
	return names
}

// QuitMsg asks the host to leave the current demo. Value is the exit value
// printed after a standalone run.
type QuitMsg struct {
	Value string
}

// Quit returns a command that ends the current demo.
func Quit(value string) tea.Cmd {
	return func() tea.Msg { return QuitMsg{Value: value} }
}

// Closer is implemented by demos holding resources such as a store connection.
type Closer interface {
	Close() error
}

// keyClaimer lets a demo take over a key the host would otherwise handle.
type keyClaimer interface {
	ClaimsKey(key string) bool
}

// quitInterceptor is implemented by models hosting other demos. A handled
// QuitMsg ends the inner demo only.
type quitInterceptor interface {
	InterceptQuit(msg QuitMsg) (tea.Model, tea.Cmd, bool)
}

var lastModelID int64

// nextID returns a process-unique id. Demos stamp delayed messages with it so
// messages from a previous instance are ignored.
func nextID() int {
	return int(atomic.AddInt64(&lastModelID, 1))
}

func sizeCmd(width, height int) tea.Cmd {
	if width <= 0 || height <= 0 {
		return nil
	}
	return func() tea.Msg { return tea.WindowSizeMsg{Width: width, Height: height} }
}

// urlOpenedMsg reports the outcome of openURLCmd.
type urlOpenedMsg struct {
	url string
	err error
}

// openURLCmd hands url to the browser off the update loop.
func openURLCmd(open func(string) error, url string) tea.Cmd {
	if open == nil {
		return nil
	}
	return func() tea.Msg {
		return urlOpenedMsg{url: url, err: open(url)}
	}
}

func bell(w io.Writer) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		_, _ = io.WriteString(w, "\a")
		return nil
	}
}
