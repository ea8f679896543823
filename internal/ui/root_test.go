package ui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dori/actionary/internal/app"
	"github.com/dori/actionary/internal/config"
	"github.com/dori/actionary/internal/logging"
	"github.com/dori/actionary/internal/ui/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRoot(t *testing.T, texts ...string) (RootModel, *app.App) {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Default()
	cfg.DataDir = dir
	cfg.File = filepath.Join(dir, "tasks.json")

	a, err := app.New(cfg, logging.Discard())
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })
	for _, text := range texts {
		require.True(t, a.Store.Add(text))
	}

	m := NewRootModel(a)
	return update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30}), a
}

func update(t *testing.T, m RootModel, msg tea.Msg) RootModel {
	t.Helper()
	next, _ := m.Update(msg)
	rm, ok := next.(RootModel)
	require.True(t, ok)
	return rm
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestQuitOnlyOutsideInput(t *testing.T) {
	m, a := newTestRoot(t)

	m = update(t, m, runes("a"))
	next, cmd := m.Update(runes("q"))
	assert.False(t, isQuit(cmd))
	m = next.(RootModel)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, 1, a.Store.Len())
	assert.Equal(t, "q", a.Store.Tasks()[0].Text)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	_, cmd = m.Update(runes("q"))
	assert.True(t, isQuit(cmd))
}

func TestCtrlCFlushesEdit(t *testing.T) {
	m, a := newTestRoot(t, "draft")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, runes("!"))
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, isQuit(cmd))
	assert.Equal(t, "draft!", a.Store.Tasks()[0].Text)
}

func TestHelpToggle(t *testing.T) {
	m, _ := newTestRoot(t)

	m = update(t, m, runes("?"))
	assert.True(t, m.helpVisible)
	assert.Contains(t, m.View(), "Actionary Help")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.helpVisible)
}

func TestThemeCycle(t *testing.T) {
	m, _ := newTestRoot(t)
	before := theme.Current.Theme.Name
	t.Cleanup(func() {
		if th, ok := theme.ByName(before); ok {
			theme.SetTheme(th)
		}
	})

	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})
	assert.NotEqual(t, before, theme.Current.Theme.Name)
	assert.Contains(t, m.statusMsg, theme.Current.Theme.Name)
}

func TestHeaderShowsCounts(t *testing.T) {
	m, _ := newTestRoot(t, "one", "two", "three")

	m = update(t, m, runes("t"))
	view := m.View()
	assert.Contains(t, view, "2 to-do")
	assert.Contains(t, view, "1 in progress")
}
