package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/glintui/glint/internal/ui"
)

// Alert displays a notification message with an icon and variant styling.
type Alert struct {
	BaseComponent
	message string
	title   string
	icon    string
	variant AlertVariant
}

// NewAlert creates an info alert with the given message.
func NewAlert(message string) *Alert {
	return &Alert{
		BaseComponent: NewBaseComponent(),
		message:       message,
		variant:       AlertVariantInfo,
		icon:          "ℹ",
	}
}

// View renders with the default theme.
func (a *Alert) View() string {
	return a.ViewWithContext(DefaultContext())
}

// ViewWithContext renders with the given context.
func (a *Alert) ViewWithContext(ctx RenderContext) string {
	line := a.icon + " " + a.message

	var children []ui.Renderable
	if a.title != "" {
		children = []ui.Renderable{EmphasisText(a.title), NewText(line)}
	} else {
		children = []ui.Renderable{NewText(line)}
	}

	container := NewContainer(children...).
		WithPadding(SymmetricSpacing(0, 1)).
		WithBorder(lipgloss.NormalBorder())

	theme := ctx.Theme
	if theme.Variants != nil {
		if strategy := theme.Variants.Get(a.variant); strategy != nil {
			container.WithAppliers(func(base lipgloss.Style, theme Theme) lipgloss.Style {
				return strategy.Apply(base, theme)
			})
		}
	}
	container.WithAppliers(a.borderTint())

	return container.ViewWithContext(ctx)
}

func (a *Alert) borderTint() StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		var color lipgloss.AdaptiveColor
		switch a.variant {
		case AlertVariantSuccess:
			color = theme.Palette.Success.Base
		case AlertVariantWarning:
			color = theme.Palette.Warning.Base
		case AlertVariantError:
			color = theme.Palette.Danger.Base
		case AlertVariantInfo:
			color = theme.Palette.Info.Base
		default:
			return base
		}
		return base.BorderForeground(color)
	}
}

// WithVariant sets the alert variant and its default icon.
func (a *Alert) WithVariant(variant AlertVariant) *Alert {
	a.variant = variant
	switch variant {
	case AlertVariantSuccess:
		a.icon = "✓"
	case AlertVariantWarning:
		a.icon = "⚠"
	case AlertVariantError:
		a.icon = "✗"
	case AlertVariantInfo:
		a.icon = "ℹ"
	}
	return a
}

// WithIcon sets a custom icon.
func (a *Alert) WithIcon(icon string) *Alert {
	a.icon = icon
	return a
}

// WithTitle adds a title line.
func (a *Alert) WithTitle(title string) *Alert {
	a.title = title
	return a
}

// Message returns the alert message.
func (a *Alert) Message() string {
	return a.message
}

// SuccessAlert creates a success alert.
func SuccessAlert(message string) *Alert {
	return NewAlert(message).WithVariant(AlertVariantSuccess)
}

// WarningAlert creates a warning alert.
func WarningAlert(message string) *Alert {
	return NewAlert(message).WithVariant(AlertVariantWarning)
}

// ErrorAlert creates an error alert.
func ErrorAlert(message string) *Alert {
	return NewAlert(message).WithVariant(AlertVariantError)
}

// InfoAlert creates an info alert.
func InfoAlert(message string) *Alert {
	return NewAlert(message).WithVariant(AlertVariantInfo)
}
