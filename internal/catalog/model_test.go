package catalog

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glintui/glint/internal/config"
	"github.com/glintui/glint/internal/logger"
	"github.com/glintui/glint/internal/themestore"
	"github.com/glintui/glint/internal/ui/components"
)

// fakeAdapter records theme side effects.
type fakeAdapter struct {
	applied  []string
	reverted int
}

func (f *fakeAdapter) Apply(name string) error {
	f.applied = append(f.applied, name)
	return nil
}

func (f *fakeAdapter) Revert() {
	f.reverted++
}

// closableStory counts shutdowns. It implements Update itself so the
// wrapper survives the browser's view swapping.
type closableStory struct {
	staticStory
	shutdowns *int
}

func (c *closableStory) Update(tea.Msg) (View, tea.Cmd) { return c, nil }
func (c *closableStory) Shutdown()                      { *c.shutdowns++ }

// pointerStory records every pointer event it receives.
type pointerStory struct {
	staticStory
	pointers []PointerMsg
}

func (p *pointerStory) Update(msg tea.Msg) (View, tea.Cmd) {
	if pm, ok := msg.(PointerMsg); ok {
		p.pointers = append(p.pointers, pm)
	}
	return p, nil
}

func newTestModel(t *testing.T) (Model, *fakeAdapter, *themestore.Store, *int) {
	t.Helper()

	shutdowns := 0
	registry := NewRegistry()
	for _, id := range []string{"first", "second"} {
		id := id
		require.NoError(t, registry.Register(Story{
			ID:    id,
			Title: id,
			New: func() View {
				return &closableStory{
					staticStory: staticStory{render: func(components.RenderContext) string { return id }},
					shutdowns:   &shutdowns,
				}
			},
		}))
	}

	store := themestore.NewAt(filepath.Join(t.TempDir(), "theme.yaml"))
	adapter := &fakeAdapter{}
	log, err := logger.New(logger.Options{})
	require.NoError(t, err)

	return NewModel(registry, config.Default(), store, adapter, log), adapter, store, &shutdowns
}

func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
}

func TestModelAppliesThemeOnStartup(t *testing.T) {
	t.Parallel()

	m, adapter, _, _ := newTestModel(t)
	assert.Equal(t, "default", m.Theme().Name)
	require.Equal(t, []string{"default"}, adapter.applied)
}

func TestModelToggleThemePersists(t *testing.T) {
	t.Parallel()

	m, adapter, store, _ := newTestModel(t)

	next, _ := m.Update(keyMsg("t"))
	m = next.(Model)
	assert.Equal(t, "dark", m.Theme().Name)
	assert.Contains(t, adapter.applied, "dark")

	saved, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "dark", saved)

	next, _ = m.Update(keyMsg("t"))
	m = next.(Model)
	assert.Equal(t, "light", m.Theme().Name)
}

func TestModelCursorSwapsStories(t *testing.T) {
	t.Parallel()

	m, _, _, shutdowns := newTestModel(t)
	story, ok := m.ActiveStory()
	require.True(t, ok)
	assert.Equal(t, "first", story.ID)

	next, _ := m.Update(keyMsg("down"))
	m = next.(Model)
	story, _ = m.ActiveStory()
	assert.Equal(t, "second", story.ID)
	// The first instance was torn down when the second opened.
	assert.Equal(t, 1, *shutdowns)

	// Moving past the end stays put.
	next, _ = m.Update(keyMsg("down"))
	m = next.(Model)
	story, _ = m.ActiveStory()
	assert.Equal(t, "second", story.ID)
}

func TestModelQuitTearsDownAndReverts(t *testing.T) {
	t.Parallel()

	m, adapter, _, shutdowns := newTestModel(t)

	next, cmd := m.Update(keyMsg("q"))
	m = next.(Model)
	require.NotNil(t, cmd)
	assert.Equal(t, 1, *shutdowns)
	assert.Equal(t, 1, adapter.reverted)
	assert.Empty(t, m.View())
}

func TestModelQuitClosesSwappedStory(t *testing.T) {
	t.Parallel()

	m, _, _, shutdowns := newTestModel(t)

	// Swap to the second story, then quit: both instances must be torn
	// down, so the swapped-in wrapper has to survive its Update calls.
	next, _ := m.Update(keyMsg("down"))
	m = next.(Model)
	next, _ = m.Update(keyMsg("q"))
	_ = next.(Model)
	assert.Equal(t, 2, *shutdowns)
}

func TestModelForwardsMouseToStory(t *testing.T) {
	t.Parallel()

	story := &pointerStory{
		staticStory: staticStory{render: func(components.RenderContext) string { return "pointer" }},
	}
	registry := NewRegistry()
	require.NoError(t, registry.Register(Story{
		ID:    "pointer",
		Title: "pointer",
		New:   func() View { return story },
	}))

	store := themestore.NewAt(filepath.Join(t.TempDir(), "theme.yaml"))
	log, err := logger.New(logger.Options{})
	require.NoError(t, err)
	m := NewModel(registry, config.Default(), store, &fakeAdapter{}, log)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)

	// Inside the preview body: coordinates arrive preview-local and active.
	next, _ = m.Update(tea.MouseMsg{X: previewBodyLeft + 5, Y: previewBodyTop + 2})
	m = next.(Model)
	require.NotEmpty(t, story.pointers)
	last := story.pointers[len(story.pointers)-1]
	assert.True(t, last.Active)
	assert.Equal(t, 5.0, last.X)
	assert.Equal(t, 2.0, last.Y)

	// Over the story list: the pointer is reported gone.
	next, _ = m.Update(tea.MouseMsg{X: 2, Y: 2})
	_ = next.(Model)
	last = story.pointers[len(story.pointers)-1]
	assert.False(t, last.Active)
}

func TestModelViewShowsStoryList(t *testing.T) {
	t.Parallel()

	m, _, _, _ := newTestModel(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)

	out := m.View()
	assert.Contains(t, out, "glint")
	assert.Contains(t, out, "first")
	assert.Contains(t, out, "second")
}
