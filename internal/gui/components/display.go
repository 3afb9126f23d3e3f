package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Display shows the selected card as a large headline over a dimmed subtext.
type Display struct {
	container     *fyne.Container
	headlineLabel *widget.Label
	subtextLabel  *widget.Label
}

func NewDisplay() *Display {
	headlineLabel := widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	headlineLabel.SizeName = theme.SizeNameHeadingText
	headlineLabel.Wrapping = fyne.TextWrapWord

	subtextLabel := widget.NewLabel("")
	subtextLabel.Alignment = fyne.TextAlignCenter
	subtextLabel.SizeName = theme.SizeNameSubHeadingText
	subtextLabel.Importance = widget.LowImportance
	subtextLabel.Wrapping = fyne.TextWrapWord

	return &Display{
		container:     container.NewVBox(headlineLabel, subtextLabel),
		headlineLabel: headlineLabel,
		subtextLabel:  subtextLabel,
	}
}

func (d *Display) GetContainer() *fyne.Container {
	return d.container
}

func (d *Display) SetHeadline(text string) {
	d.headlineLabel.SetText(text)
}

func (d *Display) SetSubtext(text string) {
	d.subtextLabel.SetText(text)
}

func (d *Display) Headline() string {
	return d.headlineLabel.Text
}

func (d *Display) Subtext() string {
	return d.subtextLabel.Text
}
