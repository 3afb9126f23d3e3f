// Package cards holds the fixed set of conversation support cards.
package cards

// Card is one tappable symbol. Name and Description are source-language
// message keys; translate them before display.
type Card struct {
	Name        string
	Icon        string
	Description string
}

// Headline formats the prominent line shown for a selected card.
func Headline(icon, name string) string {
	return icon + " " + name
}

var registry = [...]Card{
	{Name: "My Turn", Icon: "🗣️", Description: "It is my turn to talk now"},
	{Name: "Your Turn", Icon: "👂", Description: "It is your turn to talk now"},
	{Name: "Wait", Icon: "✋", Description: "Please wait, I am thinking"},
	{Name: "I Don't Understand", Icon: "❓", Description: "Can you explain again?"},
	{Name: "Too Loud", Icon: "🔇", Description: "It is too loud for me"},
	{Name: "Break", Icon: "⏸️", Description: "I need a break"},
	{Name: "Yes", Icon: "✅", Description: "Yes, I agree"},
	{Name: "No", Icon: "❌", Description: "No, I don't want that"},
	{Name: "Help", Icon: "🆘", Description: "I need help"},
	{Name: "Happy", Icon: "😊", Description: "I feel happy right now"},
	{Name: "Sad", Icon: "😢", Description: "I feel sad right now"},
	{Name: "Thank You", Icon: "🙏", Description: "Thank you!"},
}

// All returns the registry in display order. The slice is a copy.
func All() []Card {
	out := make([]Card, len(registry))
	copy(out, registry[:])
	return out
}

// Len is the number of cards in the registry.
func Len() int {
	return len(registry)
}

// At returns the card at position i.
func At(i int) (Card, bool) {
	if i < 0 || i >= len(registry) {
		return Card{}, false
	}
	return registry[i], true
}

// Lookup finds a card by its source-language name.
func Lookup(name string) (Card, bool) {
	for _, c := range registry {
		if c.Name == name {
			return c, true
		}
	}
	return Card{}, false
}
