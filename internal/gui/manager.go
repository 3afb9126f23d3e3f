package gui

import (
	"samtalsstod/internal/cards"
	"samtalsstod/internal/gui/components"
	"samtalsstod/internal/logger"
	"samtalsstod/internal/timer"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Translator renders a message key for display.
type Translator interface {
	T(key string) string
}

type Manager struct {
	window     fyne.Window
	translator Translator
	logger     logger.Logger
	isShutdown bool

	header  *components.Header
	display *components.Display
	grid    *components.CardGrid
	toast   *components.Toast

	content fyne.CanvasObject

	cardSelectHandler func(cards.Card)
	iconClickHandler  func()
	aboutHandler      func()
}

func NewManager(window fyne.Window, translator Translator, scheduler timer.Scheduler, log logger.Logger) *Manager {
	m := &Manager{
		window:     window,
		translator: translator,
		logger:     log,
	}

	m.header = components.NewHeader(translator.T("Conversation Support"), AppIcon)
	m.display = components.NewDisplay()
	m.grid = components.NewCardGrid(cards.All(), translator.T)
	m.toast = components.NewToast(scheduler)

	m.header.SetIconHandler(m.onIconClicked)
	m.header.SetMenu(fyne.NewMenu("",
		fyne.NewMenuItem(translator.T("About"), m.onAbout),
	))
	m.grid.SetSelectHandler(m.onCardSelected)

	main := container.NewBorder(
		container.NewVBox(
			m.header.GetContainer(),
			widget.NewSeparator(),
			m.display.GetContainer(),
		),
		nil, nil, nil,
		m.grid.GetContainer(),
	)
	m.content = container.NewStack(main, m.toast.Layer())

	log.Info("GUIManager", "initialized", map[string]interface{}{
		"cards":   len(m.grid.Tiles()),
		"columns": components.GridColumns,
	})

	return m
}

func (m *Manager) GetMainContainer() fyne.CanvasObject {
	return m.content
}

func (m *Manager) GetWindow() fyne.Window {
	return m.window
}

// Display is where the selection state writes its headline and subtext.
func (m *Manager) Display() *components.Display {
	return m.display
}

func (m *Manager) Header() *components.Header {
	return m.header
}

func (m *Manager) Grid() *components.CardGrid {
	return m.grid
}

func (m *Manager) Toast() *components.Toast {
	return m.toast
}

// MainMenu builds the window menu bar.
func (m *Manager) MainMenu() *fyne.MainMenu {
	helpMenu := fyne.NewMenu(m.translator.T("Help"),
		fyne.NewMenuItem(m.translator.T("About"), m.onAbout),
	)
	return fyne.NewMainMenu(helpMenu)
}

func (m *Manager) SetCardSelectHandler(handler func(cards.Card)) {
	m.cardSelectHandler = handler
}

func (m *Manager) SetIconClickHandler(handler func()) {
	m.iconClickHandler = handler
}

func (m *Manager) SetAboutHandler(handler func()) {
	m.aboutHandler = handler
}

func (m *Manager) ShowToast(text string) {
	if m.isShutdown {
		return
	}
	m.toast.Show(text)
	m.logger.Debug("GUIManager", "toast shown", map[string]interface{}{
		"text": text,
	})
}

func (m *Manager) onCardSelected(card cards.Card) {
	if m.cardSelectHandler != nil {
		m.cardSelectHandler(card)
	}
}

func (m *Manager) onIconClicked() {
	if m.iconClickHandler != nil {
		m.iconClickHandler()
	}
}

func (m *Manager) onAbout() {
	if m.aboutHandler != nil {
		m.aboutHandler()
	}
}

func (m *Manager) Shutdown() {
	if m.isShutdown {
		return
	}

	m.isShutdown = true
	m.toast.Dismiss()
	m.logger.Info("GUIManager", "shutdown initiated", nil)
}
