// Package selection tracks which card is on display.
package selection

import (
	"samtalsstod/internal/cards"
	"samtalsstod/internal/logger"
)

// Prompt is the headline shown before any card has been tapped.
const Prompt = "Tap a card to show it"

// Display receives the two strings describing the current card.
type Display interface {
	SetHeadline(text string)
	SetSubtext(text string)
}

// Translator renders a message key for display.
type Translator interface {
	T(key string) string
}

// State is the card currently on display in one window.
type State struct {
	display    Display
	translator Translator
	logger     logger.Logger

	active   *cards.Card
	headline string
	subtext  string
}

// NewState shows the prompt on display and starts with no active card.
func NewState(display Display, translator Translator, log logger.Logger) *State {
	if log == nil {
		log = logger.Nop()
	}
	s := &State{
		display:    display,
		translator: translator,
		logger:     log,
	}
	s.show(s.translate(Prompt), "")
	return s
}

// Select puts card on display. Selecting the same card again is a no-op in effect.
func (s *State) Select(card cards.Card) {
	c := card
	s.active = &c
	s.show(
		cards.Headline(card.Icon, s.translate(card.Name)),
		s.translate(card.Description),
	)
	s.logger.Debug("Selection", "card selected", map[string]interface{}{
		"card": card.Name,
	})
}

// Active returns the card on display, if any.
func (s *State) Active() (cards.Card, bool) {
	if s.active == nil {
		return cards.Card{}, false
	}
	return *s.active, true
}

// Headline returns the text last pushed as headline.
func (s *State) Headline() string {
	return s.headline
}

// Subtext returns the text last pushed below the headline.
func (s *State) Subtext() string {
	return s.subtext
}

func (s *State) show(headline, subtext string) {
	s.headline = headline
	s.subtext = subtext
	if s.display != nil {
		s.display.SetHeadline(headline)
		s.display.SetSubtext(subtext)
	}
}

func (s *State) translate(key string) string {
	if s.translator == nil {
		return key
	}
	return s.translator.T(key)
}
