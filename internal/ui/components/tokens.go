package components

// Design tokens. Components never hard-code colors, spacing, or type styles;
// they reference these tokens and the active Theme supplies the values.

// SpacingSize is a step on the theme's spacing scale.
type SpacingSize int

const (
	SpacingSizeNone SpacingSize = iota
	SpacingSizeExtraSmall
	SpacingSizeSmall
	SpacingSizeMedium
	SpacingSizeLarge
	SpacingSizeExtraLarge
	SpacingSizeDoubleExtraLarge
)

const spacingSizeCount = int(SpacingSizeDoubleExtraLarge) + 1

type spacingTable [spacingSizeCount]int

// TypographyVariant selects a typography preset from the theme.
type TypographyVariant int

const (
	TypographyVariantBase TypographyVariant = iota
	TypographyVariantTitle
	TypographyVariantSubtitle
	TypographyVariantBody
	TypographyVariantCode
	TypographyVariantEmphasis
	TypographyVariantCaption
)

// PaletteFamily names a shade scale in the color palette.
type PaletteFamily int

const (
	PaletteSlate PaletteFamily = iota
	PaletteBlue
	PaletteGreen
	PaletteRed
	PaletteAmber
	PaletteViolet
	PaletteCyan
)

// PaletteShade indexes a shade scale, 50 (lightest) through 900 (darkest),
// following the Tailwind numbering.
type PaletteShade int

const (
	PaletteShade50 PaletteShade = iota
	PaletteShade100
	PaletteShade200
	PaletteShade300
	PaletteShade400
	PaletteShade500
	PaletteShade600
	PaletteShade700
	PaletteShade800
	PaletteShade900
)

// BorderVariant selects a border from the theme's border set.
type BorderVariant int

const (
	BorderVariantNone BorderVariant = iota
	BorderVariantNormal
	BorderVariantRounded
	BorderVariantThick
	BorderVariantDouble
)

// ButtonVariant selects a button's semantic styling.
type ButtonVariant int

const (
	ButtonVariantPrimary ButtonVariant = iota
	ButtonVariantSecondary
	ButtonVariantSuccess
	ButtonVariantDanger
	ButtonVariantWarning
	ButtonVariantInfo
	ButtonVariantGhost
)

// AlertVariant selects an alert's semantic styling.
type AlertVariant int

const (
	AlertVariantInfo AlertVariant = iota
	AlertVariantSuccess
	AlertVariantWarning
	AlertVariantError
)

// Direction is a layout axis for stacks and dividers.
type Direction int

const (
	DirectionVertical Direction = iota
	DirectionHorizontal
)

// CrossAxisAlignment positions children across the layout axis.
type CrossAxisAlignment int

const (
	CrossStart CrossAxisAlignment = iota
	CrossCenter
	CrossEnd
)
