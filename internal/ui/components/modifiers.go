package components

import "github.com/charmbracelet/lipgloss"

// Style modifiers. Each returns a StyleFunc bound to a design token so that
// the actual values always come from the active theme.

// Background applies a semantic background and the matching content color.
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// Foreground applies a semantic text color, leaving the background alone.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(slot(theme.Palette).Base)
	}
}

// Border applies a border token.
func Border(variant BorderVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Border(BorderForVariant(theme, variant))
	}
}

// BorderTint colors the border with a semantic slot's base color.
func BorderTint(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.BorderForeground(slot(theme.Palette).Base)
	}
}

// Padding applies uniform padding from the theme scale.
func Padding(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Padding(spacingLookup(theme.Spacing.Padding, size))
	}
}

// PaddingX applies horizontal padding from the theme scale.
func PaddingX(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		v := spacingLookup(theme.Spacing.Padding, size)
		return base.PaddingLeft(v).PaddingRight(v)
	}
}

// PaddingY applies vertical padding from the theme scale.
func PaddingY(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		v := spacingLookup(theme.Spacing.Padding, size)
		return base.PaddingTop(v).PaddingBottom(v)
	}
}

// Margin applies uniform margin from the theme scale.
func Margin(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Margin(spacingLookup(theme.Spacing.Margin, size))
	}
}

// MarginX applies horizontal margin from the theme scale.
func MarginX(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		v := spacingLookup(theme.Spacing.Margin, size)
		return base.MarginLeft(v).MarginRight(v)
	}
}

// MarginY applies vertical margin from the theme scale.
func MarginY(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		v := spacingLookup(theme.Spacing.Margin, size)
		return base.MarginTop(v).MarginBottom(v)
	}
}

// Typography inherits a typography preset.
func Typography(variant TypographyVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Inherit(TypographyStyle(theme, variant))
	}
}

// Utility shade helpers, for when a component needs a specific scale step
// rather than a semantic slot.

// BackgroundShade styles with a background from a shade scale.
func BackgroundShade(theme Theme, family PaletteFamily, shade PaletteShade) lipgloss.Style {
	if color, ok := PaletteColor(theme, family, shade); ok {
		return lipgloss.NewStyle().Background(color)
	}
	return lipgloss.NewStyle()
}

// ForegroundShade styles with a foreground from a shade scale.
func ForegroundShade(theme Theme, family PaletteFamily, shade PaletteShade) lipgloss.Style {
	if color, ok := PaletteColor(theme, family, shade); ok {
		return lipgloss.NewStyle().Foreground(color)
	}
	return lipgloss.NewStyle()
}

// CardBaseStyle is the default applier bundle for cards.
func CardBaseStyle() []StyleFunc {
	return []StyleFunc{
		Background(PaletteSurface),
		Border(BorderVariantRounded),
		Padding(SpacingSizeSmall),
	}
}
