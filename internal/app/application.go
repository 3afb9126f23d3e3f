package app

import (
	"samtalsstod/internal/config"
	"samtalsstod/internal/easteregg"
	"samtalsstod/internal/gui"
	"samtalsstod/internal/i18n"
	"samtalsstod/internal/logger"
	"samtalsstod/internal/selection"
	"samtalsstod/internal/shutdown"
	"samtalsstod/internal/sound"
	"samtalsstod/internal/timer"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const (
	AppName      = "Conversation Support"
	AppID        = "se.danielnylander.samtalsstod"
	AppVersion   = "0.1.0"
	WindowWidth  = 550
	WindowHeight = 550
)

type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	guiManager *gui.Manager
	selection  *selection.State
	counter    *easteregg.Counter
	player     *sound.Player
	handlers   *Handlers
	lifecycle  *Lifecycle
	shutdown   *shutdown.Manager
	logger     logger.Logger
}

func NewApplication(cfg config.Config, log logger.Logger) (*Application, error) {
	fyneApp := app.NewWithID(AppID)
	return newApplication(fyneApp, cfg, log, timer.NewUIScheduler(fyne.Do))
}

func newApplication(fyneApp fyne.App, cfg config.Config, log logger.Logger, scheduler timer.Scheduler) (*Application, error) {
	translator := loadTranslator(cfg.Locale, log)

	fyneApp.SetIcon(gui.AppIcon)
	window := fyneApp.NewWindow(translator.T(AppName))
	window.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	window.SetIcon(gui.AppIcon)
	window.CenterOnScreen()
	window.SetMaster()

	log.Info("Application", "starting application", map[string]interface{}{
		"version": AppVersion,
		"locale":  translator.Tag().String(),
		"sound":   cfg.Sound,
	})

	guiManager := gui.NewManager(window, translator, scheduler, log)
	state := selection.NewState(guiManager.Display(), translator, log)
	player := sound.NewPlayer(cfg, log)

	handlers := NewHandlers(state, player, guiManager, translator, log)
	counter := easteregg.NewCounter(scheduler, handlers.HandleEasterEgg, easteregg.WithLogger(log))
	handlers.SetCounter(counter)

	lifecycle := NewLifecycle(guiManager, counter, log)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		guiManager: guiManager,
		selection:  state,
		counter:    counter,
		player:     player,
		handlers:   handlers,
		lifecycle:  lifecycle,
		shutdown:   shutdown.NewManager(log),
		logger:     log,
	}

	application.setupHandlers()
	application.setupShutdown()

	log.Info("Application", "initialization complete", nil)
	return application, nil
}

func loadTranslator(locale string, log logger.Logger) *i18n.Translator {
	bundle, err := i18n.LoadEmbedded()
	if err != nil {
		log.Warning("Application", "translations unavailable, using source strings", map[string]interface{}{
			"error": err.Error(),
		})
		return i18n.Identity()
	}
	return bundle.Translator(locale)
}

func (a *Application) setupHandlers() {
	a.guiManager.SetCardSelectHandler(a.handlers.HandleCardSelected)
	a.guiManager.SetIconClickHandler(a.handlers.HandleIconClicked)
	a.guiManager.SetAboutHandler(a.handlers.HandleAbout)
	a.window.SetMainMenu(a.guiManager.MainMenu())
}

func (a *Application) setupShutdown() {
	// signals arrive off the UI goroutine
	a.shutdown.Register(shutdown.Func(func() {
		fyne.Do(func() {
			a.lifecycle.Shutdown()
			a.fyneApp.Quit()
		})
	}))
}

func (a *Application) Run() error {
	a.window.SetCloseIntercept(func() {
		a.logger.Info("Application", "shutdown requested", nil)
		a.lifecycle.Shutdown()
		a.window.Close()
	})

	a.window.SetContent(a.guiManager.GetMainContainer())
	a.window.Show()

	a.shutdown.Listen()
	defer a.shutdown.Stop()

	a.logger.Info("Application", "GUI displayed", nil)
	a.fyneApp.Run()

	a.lifecycle.Shutdown()
	return nil
}
