package components

import (
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"

	"samtalsstod/internal/timer"
)

const ToastTimeout = 3 * time.Second

// Toast is an overlay notification near the bottom edge that hides itself
// after ToastTimeout. Stack its Layer above the window content.
type Toast struct {
	layer     *fyne.Container
	text      *canvas.Text
	scheduler timer.Scheduler

	pending    timer.Timer
	generation uint64
}

func NewToast(scheduler timer.Scheduler) *Toast {
	text := canvas.NewText("", color.White)
	text.Alignment = fyne.TextAlignCenter
	text.TextStyle = fyne.TextStyle{Bold: true}

	background := canvas.NewRectangle(color.NRGBA{R: 0x30, G: 0x30, B: 0x30, A: 0xe6})
	background.CornerRadius = theme.Size(theme.SizeNameInputRadius) * 2

	panel := container.NewStack(background, container.NewPadded(text))

	layer := container.NewVBox(
		layout.NewSpacer(),
		container.NewCenter(panel),
		container.NewPadded(layout.NewSpacer()),
	)
	layer.Hide()

	return &Toast{
		layer:     layer,
		text:      text,
		scheduler: scheduler,
	}
}

func (t *Toast) Layer() *fyne.Container {
	return t.layer
}

// Show displays text, replacing any visible toast and restarting the timeout.
func (t *Toast) Show(text string) {
	t.cancel()
	t.text.Text = text
	t.text.Refresh()
	t.layer.Show()

	gen := t.generation
	t.pending = t.scheduler.AfterFunc(ToastTimeout, func() {
		if gen != t.generation {
			return
		}
		t.pending = nil
		t.layer.Hide()
	})
}

func (t *Toast) Visible() bool {
	return t.layer.Visible()
}

func (t *Toast) Text() string {
	return t.text.Text
}

// Dismiss hides the toast immediately.
func (t *Toast) Dismiss() {
	t.cancel()
	t.layer.Hide()
}

func (t *Toast) cancel() {
	t.generation++
	if t.pending != nil {
		t.pending.Stop()
		t.pending = nil
	}
}
