package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"samtalsstod/internal/cards"
)

// CardTile is one tappable card in the grid: a large icon above a caption.
type CardTile struct {
	widget.BaseWidget

	Card    cards.Card
	caption string

	OnTapped func(cards.Card)
}

func NewCardTile(card cards.Card, caption string, onTapped func(cards.Card)) *CardTile {
	tile := &CardTile{
		Card:     card,
		caption:  caption,
		OnTapped: onTapped,
	}
	tile.ExtendBaseWidget(tile)
	return tile
}

func (t *CardTile) Caption() string {
	return t.caption
}

func (t *CardTile) Tapped(*fyne.PointEvent) {
	if t.OnTapped != nil {
		t.OnTapped(t.Card)
	}
}

func (t *CardTile) Cursor() desktop.Cursor {
	return desktop.PointerCursor
}

func (t *CardTile) CreateRenderer() fyne.WidgetRenderer {
	background := canvas.NewRectangle(theme.Color(theme.ColorNameButton))
	background.CornerRadius = theme.Size(theme.SizeNameInputRadius)

	icon := widget.NewLabelWithStyle(t.Card.Icon, fyne.TextAlignCenter, fyne.TextStyle{})
	icon.SizeName = theme.SizeNameHeadingText

	name := widget.NewLabelWithStyle(t.caption, fyne.TextAlignCenter, fyne.TextStyle{})
	name.SizeName = theme.SizeNameCaptionText
	name.Truncation = fyne.TextTruncateEllipsis

	content := container.NewStack(
		background,
		container.NewPadded(container.NewVBox(icon, name)),
	)
	return widget.NewSimpleRenderer(content)
}
