package demos

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/tuibox/internal/logging"
)

// Host runs a single demo as a whole program. It turns QuitMsg into
// tea.Quit and keeps ctrl+c as a global quit unless the demo claims it.
type Host struct {
	child     tea.Model
	name      string
	exitValue string
	done      bool
}

// NewHost wraps model.
func NewHost(name string, model tea.Model) *Host {
	return &Host{child: model, name: name}
}

// ExitValue is the value the demo quit with.
func (h *Host) ExitValue() string {
	return h.exitValue
}

// Child returns the wrapped model in its latest state.
func (h *Host) Child() tea.Model {
	return h.child
}

func (h *Host) Init() tea.Cmd {
	logging.LogScreen("start", h.name)
	return h.child.Init()
}

func (h *Host) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case QuitMsg:
		if q, ok := h.child.(quitInterceptor); ok {
			if child, cmd, handled := q.InterceptQuit(msg); handled {
				h.child = child
				return h, cmd
			}
		}
		h.exitValue = msg.Value
		h.done = true
		return h, tea.Quit
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" && !claims(h.child, "ctrl+c") {
			h.done = true
			return h, tea.Quit
		}
	}

	var cmd tea.Cmd
	h.child, cmd = h.child.Update(msg)
	return h, cmd
}

func (h *Host) View() string {
	if h.done {
		return ""
	}
	return h.child.View()
}

func claims(m tea.Model, key string) bool {
	c, ok := m.(keyClaimer)
	return ok && c.ClaimsKey(key)
}

func closeModel(m tea.Model) error {
	if c, ok := m.(Closer); ok {
		return c.Close()
	}
	return nil
}

// Run starts d as its own program and returns its exit value.
func Run(ctx context.Context, d Demo, env Env, opts ...tea.ProgramOption) (string, error) {
	host := NewHost(d.Name, d.New(env))
	opts = append(opts, tea.WithContext(ctx))

	final, err := tea.NewProgram(host, opts...).Run()
	if h, ok := final.(*Host); ok {
		host = h
	}
	closeErr := closeModel(host.child)
	logging.LogScreen("exit", d.Name)

	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return host.exitValue, fmt.Errorf("run %s: %w", d.Name, err)
	}
	return host.exitValue, closeErr
}
