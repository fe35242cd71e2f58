package components

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

var (
	BackgroundColor    = color.NRGBA{R: 0x1e, G: 0x1e, B: 0x1e, A: 0xff}
	DigitKeyColor      = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
	FunctionKeyColor   = color.NRGBA{R: 0xa6, G: 0xa6, B: 0xa6, A: 0xff}
	OperatorKeyColor   = color.NRGBA{R: 0xff, G: 0x95, B: 0x00, A: 0xff}
	PrimaryTextColor   = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	SecondaryTextColor = color.NRGBA{R: 0x8e, G: 0x8e, B: 0x93, A: 0xff}
	ErrorTextColor     = color.NRGBA{R: 0xff, G: 0x45, B: 0x3a, A: 0xff}
)

// CalculatorTheme is a fixed dark theme. Digit keys use the button
// colour, function keys the warning colour and operator keys the
// primary colour, so widget importance selects the key style.
type CalculatorTheme struct {
	base fyne.Theme
}

func NewCalculatorTheme() *CalculatorTheme {
	return &CalculatorTheme{base: theme.DefaultTheme()}
}

func (t *CalculatorTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return BackgroundColor
	case theme.ColorNameButton:
		return DigitKeyColor
	case theme.ColorNameWarning:
		return FunctionKeyColor
	case theme.ColorNamePrimary:
		return OperatorKeyColor
	case theme.ColorNameForeground, theme.ColorNameForegroundOnPrimary:
		return PrimaryTextColor
	case theme.ColorNameForegroundOnWarning:
		return color.Black
	case theme.ColorNameError:
		return ErrorTextColor
	case theme.ColorNameHover:
		return color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x26}
	case theme.ColorNamePressed:
		return color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x40}
	}
	return t.base.Color(name, theme.VariantDark)
}

func (t *CalculatorTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

func (t *CalculatorTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

func (t *CalculatorTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 24
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInputRadius:
		return 8
	}
	return t.base.Size(name)
}
