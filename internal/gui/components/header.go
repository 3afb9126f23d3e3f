package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Header mimics a title bar: app icon on the left, title, menu on the right.
type Header struct {
	container  *fyne.Container
	IconButton *widget.Button
	MenuButton *widget.Button
	titleLabel *widget.Label

	menu        *fyne.Menu
	iconHandler func()
}

func NewHeader(title string, icon fyne.Resource) *Header {
	h := &Header{}

	h.IconButton = widget.NewButtonWithIcon("", icon, h.onIconClicked)
	h.IconButton.Importance = widget.LowImportance

	h.MenuButton = widget.NewButtonWithIcon("", theme.MenuIcon(), h.onMenuClicked)
	h.MenuButton.Importance = widget.LowImportance

	h.titleLabel = widget.NewLabelWithStyle(title, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	h.container = container.NewBorder(nil, nil, h.IconButton, h.MenuButton, h.titleLabel)
	return h
}

func (h *Header) GetContainer() *fyne.Container {
	return h.container
}

func (h *Header) SetIconHandler(handler func()) {
	h.iconHandler = handler
}

// SetMenu sets the popup menu opened by the menu button.
func (h *Header) SetMenu(menu *fyne.Menu) {
	h.menu = menu
}

func (h *Header) onIconClicked() {
	if h.iconHandler != nil {
		h.iconHandler()
	}
}

func (h *Header) onMenuClicked() {
	if h.menu == nil {
		return
	}
	driver := fyne.CurrentApp().Driver()
	c := driver.CanvasForObject(h.MenuButton)
	if c == nil {
		return
	}
	pos := driver.AbsolutePositionForObject(h.MenuButton).Add(fyne.NewPos(0, h.MenuButton.Size().Height))
	widget.ShowPopUpMenuAtPosition(h.menu, c, pos)
}
