package demos

import (
	"sort"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	names := Names()
	assert.True(t, sort.StringsAreSorted(names))
	assert.Len(t, names, len(Demos()))

	for _, name := range names {
		d, ok := Lookup(name)
		require.True(t, ok, name)
		assert.NotEmpty(t, d.Description, name)
	}

	_, ok := Lookup("nope")
	assert.False(t, ok)
}

func TestEveryDemoRenders(t *testing.T) {
	env, _ := newTestEnv(t)
	for _, d := range Demos() {
		t.Run(d.Name, func(t *testing.T) {
			m := d.New(env)
			require.NotNil(t, m)
			m, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
			assert.NotEmpty(t, m.View())
			assert.NoError(t, closeModel(m))
		})
	}
}

func TestHostQuitMsg(t *testing.T) {
	env, _ := newTestEnv(t)
	h := NewHost("keybind", newKeybindDemo(env))

	_, cmd := h.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	msg := cmd()
	_, cmd = h.Update(msg)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, keybindExit, h.ExitValue())
	assert.Empty(t, h.View())
}

func TestHostCtrlC(t *testing.T) {
	env, _ := newTestEnv(t)

	t.Run("quits by default", func(t *testing.T) {
		h := NewHost("keybind", newKeybindDemo(env))
		_, cmd := h.Update(keyMsg("ctrl+c"))
		require.NotNil(t, cmd)
		assert.Equal(t, tea.QuitMsg{}, cmd())
	})

	t.Run("claimed by richlog", func(t *testing.T) {
		h := NewHost("richlog", newRichLogDemo(env))
		_, cmd := h.Update(keyMsg("ctrl+c"))
		assert.Nil(t, cmd)
		entries := h.Child().(richLogModel).log.Entries()
		assert.Equal(t, codeEnd, entries[len(entries)-1])
	})
}

func TestGalleryReturnsToList(t *testing.T) {
	env, _ := newTestEnv(t)
	g := NewGallery(env)
	h := NewHost(GalleryName, g)

	h.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.Contains(t, h.View(), "keybind")

	// The first entry is the header demo.
	h.Update(keyMsg("enter"))
	require.NotNil(t, g.Active())
	_, isHeader := g.Active().(headerModel)
	assert.True(t, isHeader)

	_, cmd := h.Update(QuitMsg{Value: "bye"})
	assert.Nil(t, cmd)
	assert.Nil(t, g.Active())
	assert.Contains(t, h.View(), "header: bye")

	_, cmd = h.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	_, cmd = h.Update(cmd())
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestGalleryForwardsClaims(t *testing.T) {
	env, _ := newTestEnv(t)
	g := NewGallery(env)
	assert.False(t, g.ClaimsKey("ctrl+c"))

	// Move to richlog and launch it.
	for i, d := range Demos() {
		if d.Name == "richlog" {
			g.list.Select(i)
		}
	}
	g.Update(keyMsg("enter"))
	assert.True(t, g.ClaimsKey("ctrl+c"))
	assert.NoError(t, g.Close())
}
