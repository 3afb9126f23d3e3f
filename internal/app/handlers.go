package app

import (
	"samtalsstod/internal/cards"
	"samtalsstod/internal/easteregg"
	"samtalsstod/internal/gui"
	"samtalsstod/internal/i18n"
	"samtalsstod/internal/logger"
	"samtalsstod/internal/selection"
	"samtalsstod/internal/sound"
)

// ToastMessage is shown when the easter egg fires.
const ToastMessage = "🎉 Du hittade hemligheten!"

type Handlers struct {
	selection  *selection.State
	counter    *easteregg.Counter
	player     *sound.Player
	guiManager *gui.Manager
	translator *i18n.Translator
	logger     logger.Logger
}

func NewHandlers(state *selection.State, player *sound.Player, gm *gui.Manager, tr *i18n.Translator, log logger.Logger) *Handlers {
	return &Handlers{
		selection:  state,
		player:     player,
		guiManager: gm,
		translator: tr,
		logger:     log,
	}
}

// SetCounter wires the click counter, which itself needs HandleEasterEgg.
func (h *Handlers) SetCounter(counter *easteregg.Counter) {
	h.counter = counter
}

func (h *Handlers) HandleCardSelected(card cards.Card) {
	h.selection.Select(card)
}

func (h *Handlers) HandleIconClicked() {
	if h.counter != nil {
		h.counter.Click()
	}
}

func (h *Handlers) HandleEasterEgg() {
	played := h.player.Play()
	h.logger.Debug("Handlers", "easter egg sound", map[string]interface{}{
		"played": played,
	})
	h.guiManager.ShowToast(h.translator.T(ToastMessage))
}

func (h *Handlers) HandleAbout() {
	h.guiManager.ShowAbout(aboutInfo(h.translator))
}

func aboutInfo(tr *i18n.Translator) gui.AboutInfo {
	return gui.AboutInfo{
		Name:       tr.T(AppName),
		Version:    AppVersion,
		Comments:   tr.T("Visual conversation support cards"),
		Developers: []string{"Daniel Nylander <daniel@danielnylander.se>"},
		Website:    "https://github.com/yeager/samtalsstod",
		License:    "GPL-3.0-or-later",
		CloseLabel: tr.T("Close"),
	}
}
