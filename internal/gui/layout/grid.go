package layout

import (
	"math"

	"fyne.io/fyne/v2"
)

// CardGridLayout places objects in a fixed number of equal-width columns.
// Every cell gets the largest minimum size so rows stay homogeneous.
type CardGridLayout struct {
	columns int
	spacing float32
}

func NewCardGridLayout(columns int, spacing float32) *CardGridLayout {
	if columns < 1 {
		columns = 1
	}
	return &CardGridLayout{
		columns: columns,
		spacing: spacing,
	}
}

func (l *CardGridLayout) Layout(objects []fyne.CanvasObject, containerSize fyne.Size) {
	visible := visibleObjects(objects)
	if len(visible) == 0 {
		return
	}

	cols := float32(l.columns)
	cellWidth := (containerSize.Width - l.spacing*(cols-1)) / cols
	cellHeight := l.cellSize(visible).Height

	for i, obj := range visible {
		row := i / l.columns
		col := i % l.columns

		x := float32(col) * (cellWidth + l.spacing)
		y := float32(row) * (cellHeight + l.spacing)

		obj.Resize(fyne.NewSize(cellWidth, cellHeight))
		obj.Move(fyne.NewPos(x, y))
	}
}

func (l *CardGridLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	visible := visibleObjects(objects)
	if len(visible) == 0 {
		return fyne.NewSize(0, 0)
	}

	cell := l.cellSize(visible)
	rows := l.rows(len(visible))
	cols := float32(l.columns)

	return fyne.NewSize(
		cell.Width*cols+l.spacing*(cols-1),
		cell.Height*float32(rows)+l.spacing*float32(rows-1),
	)
}

func (l *CardGridLayout) rows(count int) int {
	return int(math.Ceil(float64(count) / float64(l.columns)))
}

func (l *CardGridLayout) cellSize(objects []fyne.CanvasObject) fyne.Size {
	var size fyne.Size
	for _, obj := range objects {
		size = size.Max(obj.MinSize())
	}
	return size
}

func visibleObjects(objects []fyne.CanvasObject) []fyne.CanvasObject {
	out := make([]fyne.CanvasObject, 0, len(objects))
	for _, obj := range objects {
		if obj.Visible() {
			out = append(out, obj)
		}
	}
	return out
}
