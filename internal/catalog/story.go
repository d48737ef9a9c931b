// Package catalog holds the story registry and the interactive browser that
// presents every component with a live preview.
package catalog

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/glintui/glint/internal/ui/components"
)

// FrameMsg is delivered to the running story once per animation frame.
type FrameMsg struct {
	Time time.Time
}

// SizeMsg tells the running story how much room its preview pane has.
type SizeMsg struct {
	Width  int
	Height int
}

// PointerMsg carries the pointer position in preview-local cell coordinates.
// Active is false when the pointer sits outside the preview body.
type PointerMsg struct {
	X, Y   float64
	Active bool
}

// View is one running story instance. Update receives FrameMsg ticks,
// SizeMsg resizes, and PointerMsg pointer moves, and returns the view to
// use from then on; a type embedding another View must implement Update
// itself, or the promoted method returns the inner value and the wrapper is
// lost. Shutdown releases whatever the story started and must be safe to
// call more than once.
type View interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (View, tea.Cmd)
	ViewWithContext(ctx components.RenderContext) string
	Shutdown()
}

// Story describes one catalog entry. New creates a fresh instance each time
// the story is opened.
type Story struct {
	ID          string
	Title       string
	Description string
	New         func() View
}
