// Package ui defines the minimal contracts shared by every visual component.
package ui

// Renderable is anything that can draw itself to a string. All components in
// the library implement it, which lets layout containers nest arbitrary
// content without knowing concrete types.
type Renderable interface {
	View() string
}

// RenderableFunc adapts a plain function to the Renderable interface.
type RenderableFunc func() string

// View renders by calling the wrapped function.
func (f RenderableFunc) View() string {
	return f()
}
