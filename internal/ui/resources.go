package ui

import (
	_ "embed"

	"fyne.io/fyne/v2"
)

//go:embed assets/image-drop.png
var appIconPNG []byte

// AppIcon is the window icon
var AppIcon = fyne.NewStaticResource("image-drop.png", appIconPNG)
