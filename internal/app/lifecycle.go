package app

import (
	"samtalsstod/internal/easteregg"
	"samtalsstod/internal/gui"
	"samtalsstod/internal/logger"
)

// Lifecycle tears the window state down. Call it on the UI goroutine.
type Lifecycle struct {
	guiManager *gui.Manager
	counter    *easteregg.Counter
	logger     logger.Logger
	isShutdown bool
}

func NewLifecycle(gm *gui.Manager, counter *easteregg.Counter, log logger.Logger) *Lifecycle {
	return &Lifecycle{
		guiManager: gm,
		counter:    counter,
		logger:     log,
	}
}

func (l *Lifecycle) Shutdown() {
	if l.isShutdown {
		return
	}

	l.isShutdown = true
	l.logger.Info("Lifecycle", "shutdown sequence initiated", nil)

	if l.counter != nil {
		l.counter.Shutdown()
		l.logger.Debug("Lifecycle", "easter egg timer stopped", nil)
	}

	if l.guiManager != nil {
		l.guiManager.Shutdown()
		l.logger.Debug("Lifecycle", "GUI manager shutdown completed", nil)
	}

	l.logger.Info("Lifecycle", "shutdown sequence completed", nil)
}

func (l *Lifecycle) IsShutdown() bool {
	return l.isShutdown
}
