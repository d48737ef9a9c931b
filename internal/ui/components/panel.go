package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/glintui/glint/internal/ui"
)

// Panel groups related content with lighter styling than Card. Use it for
// layout sections rather than standalone boxes.
type Panel struct {
	*Container
}

// NewPanel creates a panel with subtle surface styling.
func NewPanel(children ...ui.Renderable) *Panel {
	container := NewContainer(children...).WithPadding(UniformSpacing(1))
	container.WithAppliers(Background(PaletteSurface))
	return &Panel{Container: container}
}

// WithTitle prepends a title header and divider.
func (p *Panel) WithTitle(title string) *Panel {
	header := NewHeader(title).WithAppliers(Typography(TypographyVariantTitle))
	children := make([]ui.Renderable, 0, len(p.Children())+2)
	children = append(children, header, HorizontalDivider())
	children = append(children, p.Children()...)
	p.SetChildren(children)
	return p
}

// WithBorder adds a border to the panel.
func (p *Panel) WithBorder(border lipgloss.Border) *Panel {
	p.Container.WithBorder(border)
	return p
}
