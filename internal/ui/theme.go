package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// UploaderTheme is a compact theme with the uploader's indigo accent
type UploaderTheme struct{}

// NewUploaderTheme creates a new uploader theme
func NewUploaderTheme() fyne.Theme {
	return &UploaderTheme{}
}

// Color returns theme colors
func (t *UploaderTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameSuccess:
		return color.RGBA{R: 16, G: 185, B: 129, A: 255} // Emerald for the upload-complete flash
	case theme.ColorNameError:
		return color.RGBA{R: 245, G: 101, B: 101, A: 255} // Coral for rejected files
	case theme.ColorNamePrimary:
		return color.RGBA{R: 102, G: 126, B: 234, A: 255} // Indigo for the drop zone and progress
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 24, G: 24, B: 32, A: 255}
		}
		return color.RGBA{R: 248, G: 248, B: 252, A: 255}
	case theme.ColorNameForeground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 240, G: 240, B: 245, A: 255}
		}
		return color.RGBA{R: 31, G: 41, B: 55, A: 255}
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *UploaderTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *UploaderTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *UploaderTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameText:
		return 13
	case theme.SizeNameHeadingText:
		return 20
	case theme.SizeNameCaptionText:
		return 10
	case theme.SizeNameInputRadius:
		return 4
	}

	return theme.DefaultTheme().Size(name)
}

// progressTheme swaps the primary color for the success color once an upload completes,
// so the progress fill turns green. Everything else follows the app theme.
type progressTheme struct {
	complete bool
}

func (t *progressTheme) base() fyne.Theme {
	if app := fyne.CurrentApp(); app != nil && app.Settings().Theme() != nil {
		return app.Settings().Theme()
	}
	return theme.DefaultTheme()
}

// Color returns theme colors
func (t *progressTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if t.complete && name == theme.ColorNamePrimary {
		name = theme.ColorNameSuccess
	}
	return t.base().Color(name, variant)
}

// Font returns theme fonts
func (t *progressTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base().Font(style)
}

// Icon returns theme icons
func (t *progressTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base().Icon(name)
}

// Size returns theme sizes
func (t *progressTheme) Size(name fyne.ThemeSizeName) float32 {
	return t.base().Size(name)
}
