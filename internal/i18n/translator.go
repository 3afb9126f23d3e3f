package i18n

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Translator renders message keys in one locale.
type Translator struct {
	tag     language.Tag
	printer *message.Printer
}

// T translates key. Keys are never treated as format strings.
func (t *Translator) T(key string) string {
	if t == nil || t.printer == nil || strings.Contains(key, "%") {
		return key
	}
	return t.printer.Sprintf(key)
}

func (t *Translator) Tag() language.Tag {
	if t == nil {
		return BaseLocale
	}
	return t.tag
}

// Identity returns a translator that leaves every key untouched.
func Identity() *Translator {
	return &Translator{tag: BaseLocale}
}
