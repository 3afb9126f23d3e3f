package gui

import (
	_ "embed"

	"fyne.io/fyne/v2"
)

//go:embed assets/icon.svg
var iconSVG []byte

// AppIcon is the application icon, used for the window and the header button.
var AppIcon = fyne.NewStaticResource("samtalsstod.svg", iconSVG)
