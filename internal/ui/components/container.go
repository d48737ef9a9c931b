package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/glintui/glint/internal/ui"
)

// Container is a generic box holding children with border, padding, and
// margin. Card and Panel build on it.
type Container struct {
	BaseComponent
	children    []ui.Renderable
	layout      *Stack
	border      lipgloss.Border
	borderColor string
	padding     Spacing
	margin      Spacing
}

// NewContainer creates a container with a vertical layout.
func NewContainer(children ...ui.Renderable) *Container {
	return &Container{
		BaseComponent: NewBaseComponent(),
		children:      children,
		layout:        VStack(children...),
	}
}

// View renders with the default theme.
func (c *Container) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the container and its children. Borders, padding,
// and margins render even when there are no children.
func (c *Container) ViewWithContext(ctx RenderContext) string {
	var content string
	if len(c.children) > 0 {
		content = c.layout.ViewWithContext(ctx)
	}

	style := c.ComputeStyle(ctx.Theme)
	if c.border.Top != "" {
		style = style.BorderStyle(c.border)
		if c.borderColor != "" {
			style = style.BorderForeground(lipgloss.Color(c.borderColor))
		}
	}
	if !c.padding.IsZero() {
		style = style.Padding(c.padding.Top, c.padding.Right, c.padding.Bottom, c.padding.Left)
	}
	if !c.margin.IsZero() {
		style = style.Margin(c.margin.Top, c.margin.Right, c.margin.Bottom, c.margin.Left)
	}

	return style.Render(content)
}

// WithBorder sets the border style.
func (c *Container) WithBorder(border lipgloss.Border) *Container {
	c.border = border
	return c
}

// WithBorderColor sets the border color.
func (c *Container) WithBorderColor(color string) *Container {
	c.borderColor = color
	return c
}

// WithPadding sets the padding.
func (c *Container) WithPadding(padding Spacing) *Container {
	c.padding = padding
	return c
}

// WithMargin sets the margin.
func (c *Container) WithMargin(margin Spacing) *Container {
	c.margin = margin
	return c
}

// WithGap sets the gap between children.
func (c *Container) WithGap(gap int) *Container {
	c.layout.WithGap(gap)
	return c
}

// WithDirection sets the layout axis.
func (c *Container) WithDirection(dir Direction) *Container {
	c.layout.WithDirection(dir)
	return c
}

// WithAppliers adds theme-aware style modifiers.
func (c *Container) WithAppliers(appliers ...StyleFunc) *Container {
	c.AddAppliers(appliers...)
	return c
}

// Add appends children.
func (c *Container) Add(children ...ui.Renderable) *Container {
	c.children = append(c.children, children...)
	c.layout.Add(children...)
	return c
}

// Children returns the current children.
func (c *Container) Children() []ui.Renderable {
	return c.children
}

// SetChildren replaces all children, keeping the layout in sync.
func (c *Container) SetChildren(children []ui.Renderable) *Container {
	c.children = children
	c.layout.SetChildren(children)
	return c
}
