package demos

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/tuibox/internal/config"
	"github.com/muurk/tuibox/internal/feed"
	"github.com/muurk/tuibox/internal/store"
	"github.com/muurk/tuibox/internal/ui"
)

var testNow = time.Date(2025, 5, 20, 10, 30, 0, 0, time.UTC)

// testHarness records what demos do to the outside world.
type testHarness struct {
	memory *store.Memory
	opened []string
	bell   bytes.Buffer
}

func newTestEnv(t *testing.T) (Env, *testHarness) {
	t.Helper()
	h := &testHarness{memory: store.NewMemory(feed.SampleChannels(testNow))}
	env := Env{
		Config: config.New(),
		Theme:  ui.DefaultTheme(),
		Source: store.SourceSample,
		Now:    func() time.Time { return testNow },
		OpenURL: func(url string) error {
			h.opened = append(h.opened, url)
			return nil
		},
		OpenStore: func(context.Context) (store.Store, error) {
			return h.memory, nil
		},
		Bell: &h.bell,
	}
	return env, h
}

func keyMsg(k string) tea.KeyMsg {
	special := map[string]tea.KeyType{
		"enter":     tea.KeyEnter,
		"esc":       tea.KeyEscape,
		"tab":       tea.KeyTab,
		"shift+tab": tea.KeyShiftTab,
		"up":        tea.KeyUp,
		"down":      tea.KeyDown,
		"ctrl+c":    tea.KeyCtrlC,
		"ctrl+l":    tea.KeyCtrlL,
		"ctrl+s":    tea.KeyCtrlS,
		"ctrl+t":    tea.KeyCtrlT,
		"ctrl+x":    tea.KeyCtrlX,
		"ctrl+q":    tea.KeyCtrlQ,
	}
	if k == " " {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	if t, ok := special[k]; ok {
		return tea.KeyMsg{Type: t}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

// press feeds keys to m and returns the model and the last command.
func press(m tea.Model, keys ...string) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		m, cmd = m.Update(keyMsg(k))
	}
	return m, cmd
}

// quitValue runs cmd and returns the value of the QuitMsg it produces.
func quitValue(t *testing.T, cmd tea.Cmd) string {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a quit command, got nil")
	}
	q, ok := cmd().(QuitMsg)
	if !ok {
		t.Fatalf("expected QuitMsg")
	}
	return q.Value
}

// drain runs cmd and every command that follows from it, feeding the
// resulting messages back into m. Spinner ticks are dropped so the loop ends.
// Only use it with commands that do not sleep.
func drain(t *testing.T, m tea.Model, cmd tea.Cmd) tea.Model {
	t.Helper()
	queue := []tea.Cmd{cmd}
	for steps := 0; len(queue) > 0; steps++ {
		if steps > 100 {
			t.Fatal("drain did not settle")
		}
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		switch msg := c().(type) {
		case nil, spinner.TickMsg, QuitMsg:
		case tea.BatchMsg:
			queue = append(queue, msg...)
		default:
			var next tea.Cmd
			m, next = m.Update(msg)
			queue = append(queue, next)
		}
	}
	return m
}
