// Package i18n translates user-facing strings from embedded catalogs.
//
// Message keys are the English source strings, so an untranslated key
// renders as itself, the same way gettext behaves.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"
)

// BaseLocale is the catalog used when nothing else matches.
var BaseLocale = language.English

//go:embed locales/*.yaml
var embeddedLocales embed.FS

type catalogFile struct {
	Locale   string            `yaml:"locale"`
	Messages map[string]string `yaml:"messages"`
}

// Bundle is the set of parsed catalogs.
type Bundle struct {
	builder  *catalog.Builder
	tags     []language.Tag
	matcher  language.Matcher
	messages map[language.Tag]map[string]string
}

// LoadEmbedded parses the catalogs compiled into the binary.
func LoadEmbedded() (*Bundle, error) {
	return LoadFromFS(embeddedLocales)
}

// LoadFromFS parses every locales/*.yaml file in fsys.
func LoadFromFS(fsys fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(fsys, "locales/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalog files found")
	}
	sort.Strings(paths)

	b := &Bundle{
		builder:  catalog.NewBuilder(catalog.Fallback(BaseLocale)),
		messages: map[language.Tag]map[string]string{},
	}

	for _, path := range paths {
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", path, err)
		}
		var file catalogFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", path, err)
		}
		if err := b.add(path, file); err != nil {
			return nil, err
		}
	}

	if _, ok := b.messages[BaseLocale]; !ok {
		return nil, fmt.Errorf("base locale %s is not defined in catalogs", BaseLocale)
	}

	// base locale first so the matcher falls back to it
	sort.SliceStable(b.tags, func(i, j int) bool {
		return b.tags[i] == BaseLocale && b.tags[j] != BaseLocale
	})
	b.matcher = language.NewMatcher(b.tags)
	return b, nil
}

func (b *Bundle) add(path string, file catalogFile) error {
	tag, err := language.Parse(strings.TrimSpace(file.Locale))
	if err != nil {
		return fmt.Errorf("catalog %s: parse locale %q: %w", path, file.Locale, err)
	}
	if _, exists := b.messages[tag]; exists {
		return fmt.Errorf("catalog %s: locale %s defined twice", path, tag)
	}
	if len(file.Messages) == 0 {
		return fmt.Errorf("catalog %s: messages map is required", path)
	}

	messages := make(map[string]string, len(file.Messages))
	for key, value := range file.Messages {
		if strings.TrimSpace(key) == "" {
			return fmt.Errorf("catalog %s: message key cannot be blank", path)
		}
		if err := b.builder.SetString(tag, key, value); err != nil {
			return fmt.Errorf("catalog %s: set %q: %w", path, key, err)
		}
		messages[key] = value
	}

	b.messages[tag] = messages
	b.tags = append(b.tags, tag)
	return nil
}

// Locales lists the catalog tags, base locale first.
func (b *Bundle) Locales() []language.Tag {
	out := make([]language.Tag, len(b.tags))
	copy(out, b.tags)
	return out
}

// Match resolves a user locale string (BCP 47 or POSIX) to a catalog tag.
func (b *Bundle) Match(locale string) language.Tag {
	tag, err := ParseLocale(locale)
	if err != nil {
		return BaseLocale
	}
	_, index, confidence := b.matcher.Match(tag)
	if confidence == language.No {
		return BaseLocale
	}
	return b.tags[index]
}

// Translator returns a translator for the best match of locale.
func (b *Bundle) Translator(locale string) *Translator {
	tag := b.Match(locale)
	return &Translator{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(b.builder)),
	}
}

// ParseLocale accepts "sv", "sv-SE" and POSIX forms such as "sv_SE.UTF-8@euro".
func ParseLocale(locale string) (language.Tag, error) {
	value := strings.TrimSpace(locale)
	if i := strings.IndexAny(value, ".@"); i >= 0 {
		value = value[:i]
	}
	value = strings.ReplaceAll(value, "_", "-")
	if value == "" {
		return language.Und, fmt.Errorf("empty locale")
	}
	return language.Parse(value)
}
