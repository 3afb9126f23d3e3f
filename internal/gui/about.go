package gui

import (
	"net/url"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// AboutInfo is the metadata shown in the about dialog.
type AboutInfo struct {
	Name       string
	Version    string
	Comments   string
	Developers []string
	Website    string
	License    string
	CloseLabel string
}

func newAboutContent(info AboutInfo) fyne.CanvasObject {
	icon := canvas.NewImageFromResource(AppIcon)
	icon.FillMode = canvas.ImageFillContain
	icon.SetMinSize(fyne.NewSquareSize(96))

	name := widget.NewLabelWithStyle(info.Name, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	name.SizeName = theme.SizeNameHeadingText

	items := []fyne.CanvasObject{
		icon,
		name,
		widget.NewLabelWithStyle(info.Version, fyne.TextAlignCenter, fyne.TextStyle{}),
		widget.NewLabelWithStyle(info.Comments, fyne.TextAlignCenter, fyne.TextStyle{Italic: true}),
	}

	if u, err := url.Parse(info.Website); err == nil && info.Website != "" {
		link := widget.NewHyperlink(info.Website, u)
		link.Alignment = fyne.TextAlignCenter
		items = append(items, link)
	}

	for _, dev := range info.Developers {
		items = append(items, widget.NewLabelWithStyle(dev, fyne.TextAlignCenter, fyne.TextStyle{}))
	}

	if info.License != "" {
		license := widget.NewLabelWithStyle(info.License, fyne.TextAlignCenter, fyne.TextStyle{})
		license.Importance = widget.LowImportance
		items = append(items, license)
	}

	return container.NewVBox(items...)
}

// ShowAbout opens the about dialog over the manager's window.
func (m *Manager) ShowAbout(info AboutInfo) {
	closeLabel := info.CloseLabel
	if closeLabel == "" {
		closeLabel = "OK"
	}
	d := dialog.NewCustom(info.Name, closeLabel, newAboutContent(info), m.window)
	d.Show()

	m.logger.Debug("GUIManager", "about dialog shown", nil)
}
