package components

import "github.com/charmbracelet/lipgloss"

// Header is a heading with an optional subtitle.
type Header struct {
	BaseComponent
	title    string
	subtitle string
}

// NewHeader creates a header with the given title.
func NewHeader(title string) *Header {
	return &Header{BaseComponent: NewBaseComponent(), title: title}
}

// View renders with the default theme.
func (h *Header) View() string {
	return h.ViewWithContext(DefaultContext())
}

// ViewWithContext renders with the given context.
func (h *Header) ViewWithContext(ctx RenderContext) string {
	style := h.ComputeStyle(ctx.Theme)
	if h.subtitle == "" {
		return style.Render(h.title)
	}
	return lipgloss.JoinVertical(
		lipgloss.Left,
		style.Render(h.title),
		style.Faint(true).Render(h.subtitle),
	)
}

// WithSubtitle adds a subtitle line.
func (h *Header) WithSubtitle(subtitle string) *Header {
	h.subtitle = subtitle
	return h
}

// WithAppliers adds theme-aware style modifiers.
func (h *Header) WithAppliers(appliers ...StyleFunc) *Header {
	h.AddAppliers(appliers...)
	return h
}

// Title returns the header title.
func (h *Header) Title() string {
	return h.title
}

// Subtitle returns the header subtitle.
func (h *Header) Subtitle() string {
	return h.subtitle
}
