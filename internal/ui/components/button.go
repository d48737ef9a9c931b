package components

import "github.com/charmbracelet/lipgloss"

// ButtonState is the button's interaction state. It only changes through
// the named event methods, never by poking fields.
type ButtonState int

const (
	ButtonStateIdle ButtonState = iota
	ButtonStateHovered
	ButtonStatePressed
	ButtonStateDisabled
)

// Button is a visual button with variant styling and an interaction state.
type Button struct {
	BaseComponent
	label   string
	variant ButtonVariant
	state   ButtonState
}

// NewButton creates a primary button with the given label.
func NewButton(label string) *Button {
	return &Button{
		BaseComponent: NewBaseComponent(),
		label:         label,
		variant:       ButtonVariantPrimary,
	}
}

// View renders with the default theme.
func (b *Button) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders with the given context.
func (b *Button) ViewWithContext(ctx RenderContext) string {
	return b.computeStyle(ctx.Theme).Render(b.label)
}

func (b *Button) computeStyle(theme Theme) lipgloss.Style {
	style := b.ComputeStyle(theme)
	if theme.Variants != nil {
		if strategy := theme.Variants.Get(b.variant); strategy != nil {
			style = strategy.Apply(style, theme)
		}
	}

	switch b.state {
	case ButtonStateHovered:
		style = style.Underline(true)
	case ButtonStatePressed:
		style = style.Bold(true).Reverse(true)
	case ButtonStateDisabled:
		style = style.Faint(true)
	}
	return style
}

// Hover marks the button hovered. No-op while disabled.
func (b *Button) Hover() *Button {
	if b.state != ButtonStateDisabled {
		b.state = ButtonStateHovered
	}
	return b
}

// Leave clears hover or press state. No-op while disabled.
func (b *Button) Leave() *Button {
	if b.state != ButtonStateDisabled {
		b.state = ButtonStateIdle
	}
	return b
}

// Press marks the button pressed. No-op while disabled.
func (b *Button) Press() *Button {
	if b.state != ButtonStateDisabled {
		b.state = ButtonStatePressed
	}
	return b
}

// Release returns a pressed button to hovered.
func (b *Button) Release() *Button {
	if b.state == ButtonStatePressed {
		b.state = ButtonStateHovered
	}
	return b
}

// Disable disables the button, discarding any hover or press state.
func (b *Button) Disable() *Button {
	b.state = ButtonStateDisabled
	return b
}

// Enable re-enables a disabled button.
func (b *Button) Enable() *Button {
	if b.state == ButtonStateDisabled {
		b.state = ButtonStateIdle
	}
	return b
}

// State returns the current interaction state.
func (b *Button) State() ButtonState {
	return b.state
}

// WithVariant sets the button variant.
func (b *Button) WithVariant(variant ButtonVariant) *Button {
	b.variant = variant
	return b
}

// WithAppliers adds theme-aware style modifiers.
func (b *Button) WithAppliers(appliers ...StyleFunc) *Button {
	b.AddAppliers(appliers...)
	return b
}

// Label returns the button label.
func (b *Button) Label() string {
	return b.label
}

// SetLabel replaces the button label.
func (b *Button) SetLabel(label string) *Button {
	b.label = label
	return b
}

// PrimaryButton creates a primary button.
func PrimaryButton(label string) *Button {
	return NewButton(label)
}

// SecondaryButton creates a secondary button.
func SecondaryButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonVariantSecondary)
}

// SuccessButton creates a success button.
func SuccessButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonVariantSuccess)
}

// DangerButton creates a danger button.
func DangerButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonVariantDanger)
}

// WarningButton creates a warning button.
func WarningButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonVariantWarning)
}

// InfoButton creates an info button.
func InfoButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonVariantInfo)
}

// GhostButton creates a muted button.
func GhostButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonVariantGhost)
}
