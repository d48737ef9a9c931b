package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/glintui/glint/internal/ui"
)

// StyleStrategy decides how a component's final style is computed from a
// base style and the active theme.
type StyleStrategy interface {
	Apply(base lipgloss.Style, theme Theme) lipgloss.Style
}

// StyleFunc is a single theme-aware style transformation. Modifiers such as
// Background and Padding return StyleFuncs; components compose them.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

// CompositeStrategy applies a sequence of StyleFuncs in order.
type CompositeStrategy struct {
	funcs []StyleFunc
}

// NewCompositeStrategy builds a strategy from style functions.
func NewCompositeStrategy(funcs ...StyleFunc) StyleStrategy {
	return CompositeStrategy{funcs: funcs}
}

// Apply runs every style function against the base style.
func (c CompositeStrategy) Apply(base lipgloss.Style, theme Theme) lipgloss.Style {
	for _, fn := range c.funcs {
		base = fn(base, theme)
	}
	return base
}

// BaseComponent carries the style state shared by every component. Embed it
// to get the standard styling hooks.
type BaseComponent struct {
	style    lipgloss.Style
	strategy StyleStrategy
}

// NewBaseComponent returns a base with an empty style and strategy.
func NewBaseComponent() BaseComponent {
	return BaseComponent{
		style:    lipgloss.NewStyle(),
		strategy: CompositeStrategy{},
	}
}

// ComputeStyle resolves the final style for the given theme.
func (b *BaseComponent) ComputeStyle(theme Theme) lipgloss.Style {
	if b.strategy == nil {
		return b.style
	}
	return b.strategy.Apply(b.style, theme)
}

// SetStyle replaces the raw lipgloss style.
func (b *BaseComponent) SetStyle(style lipgloss.Style) {
	b.style = style
}

// SetStrategy replaces the style strategy.
func (b *BaseComponent) SetStrategy(strategy StyleStrategy) {
	b.strategy = strategy
}

// SetAppliers replaces the strategy with the given style functions.
func (b *BaseComponent) SetAppliers(appliers ...StyleFunc) {
	b.strategy = NewCompositeStrategy(appliers...)
}

// AddAppliers appends style functions to the existing strategy, preserving
// whatever custom strategy is already installed.
func (b *BaseComponent) AddAppliers(appliers ...StyleFunc) {
	if existing, ok := b.strategy.(CompositeStrategy); ok {
		merged := make([]StyleFunc, len(existing.funcs), len(existing.funcs)+len(appliers))
		copy(merged, existing.funcs)
		merged = append(merged, appliers...)
		b.strategy = CompositeStrategy{funcs: merged}
		return
	}

	prior := b.strategy
	b.strategy = NewCompositeStrategy(func(base lipgloss.Style, theme Theme) lipgloss.Style {
		if prior != nil {
			base = prior.Apply(base, theme)
		}
		for _, fn := range appliers {
			base = fn(base, theme)
		}
		return base
	})
}

// Spacing is box spacing in CSS order: top, right, bottom, left.
type Spacing struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// UniformSpacing applies the same value to all four sides.
func UniformSpacing(size int) Spacing {
	return Spacing{Top: size, Right: size, Bottom: size, Left: size}
}

// SymmetricSpacing applies vertical and horizontal values separately.
func SymmetricSpacing(vertical, horizontal int) Spacing {
	return Spacing{Top: vertical, Right: horizontal, Bottom: vertical, Left: horizontal}
}

// IsZero reports whether all sides are zero.
func (s Spacing) IsZero() bool {
	return s.Top == 0 && s.Right == 0 && s.Bottom == 0 && s.Left == 0
}

// Constraints bound the size a component may occupy. -1 means unlimited.
type Constraints struct {
	MinWidth  int
	MaxWidth  int
	MinHeight int
	MaxHeight int
}

// Unconstrained returns constraints without limits.
func Unconstrained() Constraints {
	return Constraints{MaxWidth: -1, MaxHeight: -1}
}

// WithMaxWidth limits only the width.
func WithMaxWidth(maxWidth int) Constraints {
	return Constraints{MaxWidth: maxWidth, MaxHeight: -1}
}

// HasWidth reports whether any width bound is set.
func (c Constraints) HasWidth() bool {
	return c.MinWidth > 0 || c.MaxWidth >= 0
}

// Constrain clamps the given size to the constraints.
func (c Constraints) Constrain(width, height int) (int, int) {
	if c.MinWidth > 0 && width < c.MinWidth {
		width = c.MinWidth
	}
	if c.MaxWidth != -1 && width > c.MaxWidth {
		width = c.MaxWidth
	}
	if c.MinHeight > 0 && height < c.MinHeight {
		height = c.MinHeight
	}
	if c.MaxHeight != -1 && height > c.MaxHeight {
		height = c.MaxHeight
	}
	return width, height
}

// RenderContext carries the theme and layout information down the component
// tree. Passing it explicitly keeps rendering free of global state.
type RenderContext struct {
	Theme       Theme
	Constraints Constraints
	ParentWidth int
}

// DefaultContext returns a context with the default theme and no constraints.
func DefaultContext() RenderContext {
	return RenderContext{
		Theme:       DefaultTheme(),
		Constraints: Unconstrained(),
	}
}

// WithTheme returns a copy of the context using the given theme.
func (r RenderContext) WithTheme(theme Theme) RenderContext {
	r.Theme = theme
	return r
}

// WithConstraints returns a copy of the context with the given constraints.
func (r RenderContext) WithConstraints(c Constraints) RenderContext {
	r.Constraints = c
	return r
}

// ContextualRenderable is a Renderable that also accepts layout context.
type ContextualRenderable interface {
	ui.Renderable
	ViewWithContext(ctx RenderContext) string
}
