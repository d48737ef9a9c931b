package themestore

import (
	"github.com/charmbracelet/lipgloss"
)

// Adapter applies a theme's side effects to the ambient environment and
// undoes them. It is invoked only at defined lifecycle points (startup,
// theme toggle, shutdown); nothing else may touch terminal state.
type Adapter interface {
	Apply(name string) error
	Revert()
}

// RendererAdapter drives a lipgloss renderer's background profile. Dark
// themes force the dark-background color resolution; Revert restores what
// the renderer detected on its own.
type RendererAdapter struct {
	renderer *lipgloss.Renderer

	applied  bool
	previous bool
}

// NewRendererAdapter wraps a renderer. A nil renderer means the process
// default.
func NewRendererAdapter(renderer *lipgloss.Renderer) *RendererAdapter {
	if renderer == nil {
		renderer = lipgloss.DefaultRenderer()
	}
	return &RendererAdapter{renderer: renderer}
}

// Apply switches the renderer's background assumption to match the theme.
// The first call records the detected state for Revert.
func (a *RendererAdapter) Apply(name string) error {
	if !a.applied {
		a.previous = a.renderer.HasDarkBackground()
		a.applied = true
	}
	a.renderer.SetHasDarkBackground(name == "dark")
	return nil
}

// Revert restores the background assumption recorded by the first Apply.
// Reverting without a prior Apply is a no-op.
func (a *RendererAdapter) Revert() {
	if !a.applied {
		return
	}
	a.renderer.SetHasDarkBackground(a.previous)
	a.applied = false
}
