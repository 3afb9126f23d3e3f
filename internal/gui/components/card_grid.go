package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"samtalsstod/internal/cards"
	gridlayout "samtalsstod/internal/gui/layout"
)

const (
	GridColumns = 3
	GridSpacing = 8
)

// CardGrid lays the cards out in a scrollable grid of GridColumns columns.
type CardGrid struct {
	container fyne.CanvasObject
	tiles     []*CardTile

	selectHandler func(cards.Card)
}

// NewCardGrid builds a tile per card. translate renders each caption.
func NewCardGrid(deck []cards.Card, translate func(string) string) *CardGrid {
	g := &CardGrid{}

	objects := make([]fyne.CanvasObject, 0, len(deck))
	for _, card := range deck {
		tile := NewCardTile(card, translate(card.Name), g.onCardTapped)
		g.tiles = append(g.tiles, tile)
		objects = append(objects, tile)
	}

	grid := container.New(gridlayout.NewCardGridLayout(GridColumns, GridSpacing), objects...)
	g.container = container.NewVScroll(container.NewPadded(grid))
	return g
}

func (g *CardGrid) GetContainer() fyne.CanvasObject {
	return g.container
}

func (g *CardGrid) Tiles() []*CardTile {
	return g.tiles
}

func (g *CardGrid) SetSelectHandler(handler func(cards.Card)) {
	g.selectHandler = handler
}

func (g *CardGrid) onCardTapped(card cards.Card) {
	if g.selectHandler != nil {
		g.selectHandler(card)
	}
}
