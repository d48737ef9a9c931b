package catalog

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/glintui/glint/internal/config"
	"github.com/glintui/glint/internal/logger"
	"github.com/glintui/glint/internal/themestore"
	"github.com/glintui/glint/internal/ui/components"
)

// Model is the Bubbletea state for the story browser: a story list on the
// left, the running story's live preview on the right.
type Model struct {
	cfg     *config.Config
	stories []Story
	store   *themestore.Store
	adapter themestore.Adapter
	log     *logger.Logger

	theme    components.Theme
	cursor   int
	active   View
	width    int
	height   int
	quitting bool
}

// NewModel constructs the browser and opens the first story. The theme
// comes from the preference store, falling back to the configured default;
// stories receive their size once the terminal reports it.
func NewModel(registry *Registry, cfg *config.Config, store *themestore.Store, adapter themestore.Adapter, log *logger.Logger) Model {
	name, err := store.Load()
	if err != nil {
		log.Error(err, "loading theme preference")
	}
	if name == "" {
		name = cfg.Theme
	}
	theme := components.ThemeByName(name)
	if err := adapter.Apply(theme.Name); err != nil {
		log.Error(err, "applying theme")
	}

	m := Model{
		cfg:     cfg,
		stories: registry.List(),
		store:   store,
		adapter: adapter,
		log:     log.WithComponent("catalog"),
		theme:   theme,
	}
	if len(m.stories) > 0 {
		m.active = m.stories[0].New()
	}
	return m
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.frameTick()}
	if m.active != nil {
		cmds = append(cmds, m.active.Init())
	}
	return tea.Batch(cmds...)
}

// Theme returns the active theme.
func (m Model) Theme() components.Theme {
	return m.theme
}

// ActiveStory returns the highlighted story.
func (m Model) ActiveStory() (Story, bool) {
	if m.cursor < 0 || m.cursor >= len(m.stories) {
		return Story{}, false
	}
	return m.stories[m.cursor], true
}

func (m Model) frameTick() tea.Cmd {
	fps := m.cfg.FPS
	if fps <= 0 {
		fps = 30
	}
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return FrameMsg{Time: t}
	})
}

func (m Model) previewSize() (int, int) {
	w := m.width - listWidth - previewChromeWidth
	h := m.height - previewChromeHeight
	if w < minPreviewWidth {
		w = minPreviewWidth
	}
	if h < minPreviewHeight {
		h = minPreviewHeight
	}
	return w, h
}

func (m Model) renderContext() components.RenderContext {
	w, _ := m.previewSize()
	ctx := components.DefaultContext().WithTheme(m.theme)
	ctx.ParentWidth = w
	return ctx.WithConstraints(components.WithMaxWidth(w))
}
