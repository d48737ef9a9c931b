package components

import (
	"github.com/charmbracelet/lipgloss"
)

const shadeCount = 10

// ShadeScale is a ten-step color ramp from lightest to darkest.
type ShadeScale struct {
	colors [shadeCount]lipgloss.Color
}

// NewShadeScale builds a scale from up to ten colors ordered light to dark.
func NewShadeScale(colors ...lipgloss.Color) ShadeScale {
	var s ShadeScale
	for i := 0; i < shadeCount && i < len(colors); i++ {
		s.colors[i] = colors[i]
	}
	return s
}

// Color returns the color at the given shade, or "" if out of range.
func (s ShadeScale) Color(shade PaletteShade) lipgloss.Color {
	i := int(shade)
	if i < 0 || i >= shadeCount {
		return ""
	}
	return s.colors[i]
}

// ColorScales groups the utility shade scales, one per palette family.
type ColorScales struct {
	Slate  ShadeScale
	Blue   ShadeScale
	Green  ShadeScale
	Red    ShadeScale
	Amber  ShadeScale
	Violet ShadeScale
	Cyan   ShadeScale
}

// Scale returns the shade scale for a palette family.
func (c ColorScales) Scale(family PaletteFamily) ShadeScale {
	switch family {
	case PaletteBlue:
		return c.Blue
	case PaletteGreen:
		return c.Green
	case PaletteRed:
		return c.Red
	case PaletteAmber:
		return c.Amber
	case PaletteViolet:
		return c.Violet
	case PaletteCyan:
		return c.Cyan
	default:
		return c.Slate
	}
}

// ColorSet is a semantic color slot: a base color, a content color that
// reads well on it, a muted variant, and an accent that pops against it.
// All colors adapt to light and dark terminals.
type ColorSet struct {
	Base     lipgloss.AdaptiveColor
	OnBase   lipgloss.AdaptiveColor
	Muted    lipgloss.AdaptiveColor
	Contrast lipgloss.AdaptiveColor
}

// Palette holds the semantic color slots components draw from.
type Palette struct {
	Primary   ColorSet
	Secondary ColorSet
	Surface   ColorSet
	Success   ColorSet
	Warning   ColorSet
	Danger    ColorSet
	Info      ColorSet
	Neutral   ColorSet
}

// PaletteSlot selects one semantic slot from a palette. The predefined slots
// below give modifiers type-safe access to theme colors.
type PaletteSlot func(Palette) ColorSet

var (
	PalettePrimary   PaletteSlot = func(p Palette) ColorSet { return p.Primary }
	PaletteSecondary PaletteSlot = func(p Palette) ColorSet { return p.Secondary }
	PaletteSurface   PaletteSlot = func(p Palette) ColorSet { return p.Surface }
	PaletteSuccess   PaletteSlot = func(p Palette) ColorSet { return p.Success }
	PaletteWarning   PaletteSlot = func(p Palette) ColorSet { return p.Warning }
	PaletteDanger    PaletteSlot = func(p Palette) ColorSet { return p.Danger }
	PaletteInfo      PaletteSlot = func(p Palette) ColorSet { return p.Info }
	PaletteNeutral   PaletteSlot = func(p Palette) ColorSet { return p.Neutral }
)

// BorderSet groups the reusable border definitions.
type BorderSet struct {
	None    lipgloss.Border
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
	Double  lipgloss.Border
}

// SpacingConfig holds the padding and margin scales.
type SpacingConfig struct {
	Padding spacingTable
	Margin  spacingTable
}

// TypographyScale holds the semantic typography presets.
type TypographyScale struct {
	Base     lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Code     lipgloss.Style
	Emphasis lipgloss.Style
	Caption  lipgloss.Style
}

// VariantRegistry maps component variants to styling strategies, letting a
// theme define variant styling as data rather than per-component code.
type VariantRegistry struct {
	strategies map[any]StyleStrategy
}

// NewVariantRegistry creates an empty registry.
func NewVariantRegistry() *VariantRegistry {
	return &VariantRegistry{strategies: make(map[any]StyleStrategy)}
}

// Register maps a variant value to its strategy.
func (vr *VariantRegistry) Register(variant any, strategy StyleStrategy) {
	vr.strategies[variant] = strategy
}

// Get returns the strategy for a variant, or nil.
func (vr *VariantRegistry) Get(variant any) StyleStrategy {
	return vr.strategies[variant]
}

// Theme is an immutable bundle of design tokens. Create once, pass through
// RenderContext; derived themes are copies, never mutations.
type Theme struct {
	Name       string
	Palette    Palette
	Scales     ColorScales
	Borders    BorderSet
	Spacing    SpacingConfig
	Typography TypographyScale
	Variants   *VariantRegistry
}

// Normalize fills zero-valued fields with defaults so partially specified
// themes stay usable.
func (t Theme) Normalize() Theme {
	if spacingTableIsZero(t.Spacing.Padding) {
		t.Spacing.Padding = defaultSpacingTable()
	}
	if spacingTableIsZero(t.Spacing.Margin) {
		t.Spacing.Margin = defaultSpacingTable()
	}
	if t.Variants == nil {
		t.Variants = NewVariantRegistry()
		registerVariants(t.Variants)
	}
	return t
}

func spacingTableIsZero(table spacingTable) bool {
	for _, v := range table {
		if v != 0 {
			return false
		}
	}
	return true
}

func defaultSpacingTable() spacingTable {
	return spacingTable{
		SpacingSizeNone:             0,
		SpacingSizeExtraSmall:       1,
		SpacingSizeSmall:            2,
		SpacingSizeMedium:           3,
		SpacingSizeLarge:            4,
		SpacingSizeExtraLarge:       6,
		SpacingSizeDoubleExtraLarge: 8,
	}
}

func adaptive(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

// DefaultTheme returns the library's stock theme.
func DefaultTheme() Theme {
	palette := Palette{
		Primary: ColorSet{
			Base:     adaptive("#2563eb", "#60a5fa"),
			OnBase:   adaptive("#f8fafc", "#0b1120"),
			Muted:    adaptive("#1d4ed8", "#1e40af"),
			Contrast: adaptive("#fbbf24", "#b45309"),
		},
		Secondary: ColorSet{
			Base:     adaptive("#9333ea", "#c084fc"),
			OnBase:   adaptive("#faf5ff", "#1e1b4b"),
			Muted:    adaptive("#7c3aed", "#6b21a8"),
			Contrast: adaptive("#f472b6", "#f472b6"),
		},
		Surface: ColorSet{
			Base:     adaptive("#f8fafc", "#0f172a"),
			OnBase:   adaptive("#0f172a", "#f1f5f9"),
			Muted:    adaptive("#e2e8f0", "#1e293b"),
			Contrast: adaptive("#2563eb", "#60a5fa"),
		},
		Success: ColorSet{
			Base:     adaptive("#16a34a", "#4ade80"),
			OnBase:   adaptive("#f0fdf4", "#052e16"),
			Muted:    adaptive("#15803d", "#166534"),
			Contrast: adaptive("#f8fafc", "#f8fafc"),
		},
		Warning: ColorSet{
			Base:     adaptive("#d97706", "#fbbf24"),
			OnBase:   adaptive("#451a03", "#451a03"),
			Muted:    adaptive("#b45309", "#92400e"),
			Contrast: adaptive("#0f172a", "#0f172a"),
		},
		Danger: ColorSet{
			Base:     adaptive("#dc2626", "#f87171"),
			OnBase:   adaptive("#fef2f2", "#450a0a"),
			Muted:    adaptive("#b91c1c", "#991b1b"),
			Contrast: adaptive("#f8fafc", "#f8fafc"),
		},
		Info: ColorSet{
			Base:     adaptive("#0891b2", "#22d3ee"),
			OnBase:   adaptive("#ecfeff", "#083344"),
			Muted:    adaptive("#0e7490", "#155e75"),
			Contrast: adaptive("#f8fafc", "#f8fafc"),
		},
		Neutral: ColorSet{
			Base:     adaptive("#64748b", "#94a3b8"),
			OnBase:   adaptive("#f1f5f9", "#0f172a"),
			Muted:    adaptive("#475569", "#334155"),
			Contrast: adaptive("#f8fafc", "#f8fafc"),
		},
	}

	scales := ColorScales{
		Slate: NewShadeScale(
			"#f8fafc", "#f1f5f9", "#e2e8f0", "#cbd5e1", "#94a3b8",
			"#64748b", "#475569", "#334155", "#1e293b", "#0f172a",
		),
		Blue: NewShadeScale(
			"#eff6ff", "#dbeafe", "#bfdbfe", "#93c5fd", "#60a5fa",
			"#3b82f6", "#2563eb", "#1d4ed8", "#1e40af", "#1e3a8a",
		),
		Green: NewShadeScale(
			"#f0fdf4", "#dcfce7", "#bbf7d0", "#86efac", "#4ade80",
			"#22c55e", "#16a34a", "#15803d", "#166534", "#14532d",
		),
		Red: NewShadeScale(
			"#fef2f2", "#fee2e2", "#fecaca", "#fca5a5", "#f87171",
			"#ef4444", "#dc2626", "#b91c1c", "#991b1b", "#7f1d1d",
		),
		Amber: NewShadeScale(
			"#fffbeb", "#fef3c7", "#fde68a", "#fcd34d", "#fbbf24",
			"#f59e0b", "#d97706", "#b45309", "#92400e", "#78350f",
		),
		Violet: NewShadeScale(
			"#f5f3ff", "#ede9fe", "#ddd6fe", "#c4b5fd", "#a78bfa",
			"#8b5cf6", "#7c3aed", "#6d28d9", "#5b21b6", "#4c1d95",
		),
		Cyan: NewShadeScale(
			"#ecfeff", "#cffafe", "#a5f3fc", "#67e8f9", "#22d3ee",
			"#06b6d4", "#0891b2", "#0e7490", "#155e75", "#164e63",
		),
	}

	borders := BorderSet{
		None:    lipgloss.Border{},
		Normal:  lipgloss.NormalBorder(),
		Rounded: lipgloss.RoundedBorder(),
		Thick:   lipgloss.ThickBorder(),
		Double:  lipgloss.DoubleBorder(),
	}

	variants := NewVariantRegistry()
	registerVariants(variants)

	theme := Theme{
		Name:       "default",
		Palette:    palette,
		Scales:     scales,
		Borders:    borders,
		Spacing:    SpacingConfig{Padding: defaultSpacingTable(), Margin: defaultSpacingTable()},
		Typography: defaultTypography(palette),
		Variants:   variants,
	}

	return theme.Normalize()
}

// LightTheme is an alias for the default theme.
func LightTheme() Theme {
	t := DefaultTheme()
	t.Name = "light"
	return t
}

// DarkTheme returns a variant tuned for dark terminals.
func DarkTheme() Theme {
	t := DefaultTheme()
	t.Name = "dark"

	t.Palette.Surface = ColorSet{
		Base:     adaptive("#0f172a", "#020617"),
		OnBase:   adaptive("#f1f5f9", "#e2e8f0"),
		Muted:    adaptive("#1e293b", "#0f172a"),
		Contrast: adaptive("#60a5fa", "#93c5fd"),
	}
	t.Palette.Neutral = ColorSet{
		Base:     adaptive("#475569", "#334155"),
		OnBase:   adaptive("#e2e8f0", "#cbd5e1"),
		Muted:    adaptive("#334155", "#1e293b"),
		Contrast: adaptive("#f8fafc", "#f8fafc"),
	}

	t.Typography = defaultTypography(t.Palette)
	t.Variants = NewVariantRegistry()
	registerVariants(t.Variants)

	return t.Normalize()
}

// ThemeByName resolves a stored theme name. Unknown names fall back to the
// default theme so stale preference files never break startup.
func ThemeByName(name string) Theme {
	switch name {
	case "dark":
		return DarkTheme()
	case "light":
		return LightTheme()
	default:
		return DefaultTheme()
	}
}

func defaultTypography(p Palette) TypographyScale {
	base := lipgloss.NewStyle().Foreground(p.Surface.OnBase)
	return TypographyScale{
		Base:     base,
		Title:    base.Bold(true).Foreground(p.Primary.Base),
		Subtitle: base.Foreground(p.Secondary.Muted).Faint(true),
		Body:     base,
		Code:     base.Foreground(p.Secondary.Base).Background(p.Surface.Muted).Padding(0, 1),
		Emphasis: base.Bold(true),
		Caption:  base.Faint(true),
	}
}

func registerVariants(registry *VariantRegistry) {
	registerButtonVariants(registry)
	registerBadgeVariants(registry)
	registerAlertVariants(registry)
}

func registerButtonVariants(registry *VariantRegistry) {
	slots := map[ButtonVariant]PaletteSlot{
		ButtonVariantPrimary:   PalettePrimary,
		ButtonVariantSecondary: PaletteSecondary,
		ButtonVariantSuccess:   PaletteSuccess,
		ButtonVariantDanger:    PaletteDanger,
		ButtonVariantWarning:   PaletteWarning,
		ButtonVariantInfo:      PaletteInfo,
		ButtonVariantGhost:     PaletteNeutral,
	}
	for variant, slot := range slots {
		registry.Register(variant, NewCompositeStrategy(
			Background(slot),
			PaddingX(SpacingSizeMedium),
		))
	}
}

func registerBadgeVariants(registry *VariantRegistry) {
	slots := map[BadgeVariant]PaletteSlot{
		BadgeVariantDefault:   PaletteNeutral,
		BadgeVariantPrimary:   PalettePrimary,
		BadgeVariantSecondary: PaletteSecondary,
		BadgeVariantSuccess:   PaletteSuccess,
		BadgeVariantWarning:   PaletteWarning,
		BadgeVariantError:     PaletteDanger,
		BadgeVariantInfo:      PaletteInfo,
	}
	for variant, slot := range slots {
		registry.Register(variant, NewCompositeStrategy(
			Background(slot),
			PaddingX(SpacingSizeSmall),
		))
	}
}

func registerAlertVariants(registry *VariantRegistry) {
	slots := map[AlertVariant]PaletteSlot{
		AlertVariantInfo:    PaletteInfo,
		AlertVariantSuccess: PaletteSuccess,
		AlertVariantWarning: PaletteWarning,
		AlertVariantError:   PaletteDanger,
	}
	for variant, slot := range slots {
		registry.Register(variant, NewCompositeStrategy(Background(slot)))
	}
}

// PaletteColor returns the utility color for a family and shade.
func PaletteColor(theme Theme, family PaletteFamily, shade PaletteShade) (lipgloss.Color, bool) {
	color := theme.Scales.Scale(family).Color(shade)
	if color == "" {
		return "", false
	}
	return color, true
}

// BorderForVariant resolves a border token against the theme.
func BorderForVariant(theme Theme, variant BorderVariant) lipgloss.Border {
	switch variant {
	case BorderVariantNormal:
		return theme.Borders.Normal
	case BorderVariantRounded:
		return theme.Borders.Rounded
	case BorderVariantThick:
		return theme.Borders.Thick
	case BorderVariantDouble:
		return theme.Borders.Double
	default:
		return theme.Borders.None
	}
}

// TypographyStyle resolves a typography token against the theme.
func TypographyStyle(theme Theme, variant TypographyVariant) lipgloss.Style {
	typo := theme.Typography
	switch variant {
	case TypographyVariantTitle:
		return typo.Title
	case TypographyVariantSubtitle:
		return typo.Subtitle
	case TypographyVariantBody:
		return typo.Body
	case TypographyVariantCode:
		return typo.Code
	case TypographyVariantEmphasis:
		return typo.Emphasis
	case TypographyVariantCaption:
		return typo.Caption
	default:
		return typo.Base
	}
}

func spacingLookup(table spacingTable, size SpacingSize) int {
	i := int(size)
	if i < 0 || i >= len(table) {
		i = int(SpacingSizeMedium)
	}
	return table[i]
}
