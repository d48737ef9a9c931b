package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/glintui/glint/internal/ui"
)

// Card is a bordered container for grouped content.
type Card struct {
	*Container
}

// NewCard creates a card with the default card styling.
func NewCard(children ...ui.Renderable) *Card {
	container := NewContainer(children...).
		WithBorder(lipgloss.RoundedBorder()).
		WithPadding(UniformSpacing(1))
	container.WithAppliers(CardBaseStyle()...)
	return &Card{Container: container}
}

// WithTitle prepends a title header to the card content.
func (c *Card) WithTitle(title string) *Card {
	header := NewHeader(title).WithAppliers(Typography(TypographyVariantTitle))
	children := make([]ui.Renderable, 0, len(c.Children())+2)
	children = append(children, header, HorizontalDivider())
	children = append(children, c.Children()...)
	c.SetChildren(children)
	return c
}

// WithFooter appends a divider and footer to the card content.
func (c *Card) WithFooter(footer ui.Renderable) *Card {
	c.Add(HorizontalDivider(), footer)
	return c
}
