package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Divider renders a separator line.
type Divider struct {
	BaseComponent
	char      string
	width     int
	direction Direction
}

// NewDivider creates a horizontal divider with the default rule character.
func NewDivider() *Divider {
	return &Divider{
		BaseComponent: NewBaseComponent(),
		char:          "─",
		direction:     DirectionHorizontal,
	}
}

// HorizontalDivider creates a horizontal divider.
func HorizontalDivider() *Divider {
	return NewDivider()
}

// VerticalDivider creates a vertical divider.
func VerticalDivider() *Divider {
	return NewDivider().WithChar("│").WithDirection(DirectionVertical)
}

// View renders with the default theme.
func (d *Divider) View() string {
	return d.ViewWithContext(DefaultContext())
}

// ViewWithContext renders with the given context. Width falls back to the
// constraint width, then the parent width, then 40 cells.
func (d *Divider) ViewWithContext(ctx RenderContext) string {
	width := d.width
	if width <= 0 && ctx.Constraints.HasWidth() && ctx.Constraints.MaxWidth > 0 {
		width = ctx.Constraints.MaxWidth
	}
	if width <= 0 && ctx.ParentWidth > 0 {
		width = ctx.ParentWidth
	}
	if width <= 0 {
		width = 40
	}

	var content string
	if d.direction == DirectionHorizontal {
		content = strings.Repeat(d.char, width)
	} else {
		lines := make([]string, width)
		for i := range lines {
			lines[i] = d.char
		}
		content = lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	return d.ComputeStyle(ctx.Theme).Render(content)
}

// WithChar sets the rule character.
func (d *Divider) WithChar(char string) *Divider {
	if char != "" {
		d.char = char
	}
	return d
}

// WithWidth sets an explicit width.
func (d *Divider) WithWidth(width int) *Divider {
	d.width = width
	return d
}

// WithDirection sets the direction.
func (d *Divider) WithDirection(dir Direction) *Divider {
	d.direction = dir
	return d
}

// WithAppliers adds theme-aware style modifiers.
func (d *Divider) WithAppliers(appliers ...StyleFunc) *Divider {
	d.AddAppliers(appliers...)
	return d
}

// DashedDivider creates a dashed divider.
func DashedDivider() *Divider {
	return NewDivider().WithChar("-")
}

// DoubleDivider creates a double-line divider.
func DoubleDivider() *Divider {
	return NewDivider().WithChar("═")
}

// ThickDivider creates a thick divider.
func ThickDivider() *Divider {
	return NewDivider().WithChar("━")
}
