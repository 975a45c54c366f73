// Package i18n loads the embedded message catalogues.
package i18n

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"github.com/leonelquinteros/gotext"
)

// DefaultLanguage is used when the requested language has no catalogue
const DefaultLanguage = "en"

//go:embed locales/*.po
var locales embed.FS

var current = mustLoad(DefaultLanguage)

func load(lang string) (*gotext.Po, error) {
	data, err := locales.ReadFile("locales/" + lang + ".po")
	if err != nil {
		return nil, fmt.Errorf("no catalogue for %q: %w", lang, err)
	}
	po := gotext.NewPo()
	po.Parse(data)
	return po, nil
}

func mustLoad(lang string) *gotext.Po {
	po, err := load(lang)
	if err != nil {
		panic(err)
	}
	return po
}

// normalize reduces "es_ES.UTF-8" style locale names to "es"
func normalize(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if i := strings.IndexAny(lang, "_-."); i >= 0 {
		lang = lang[:i]
	}
	return lang
}

// Use selects the catalogue for lang and returns the language actually in
// use. Unknown languages fall back to DefaultLanguage.
func Use(lang string) string {
	lang = normalize(lang)
	po, err := load(lang)
	if err != nil {
		current = mustLoad(DefaultLanguage)
		return DefaultLanguage
	}
	current = po
	return lang
}

// T returns the message for key in the current language. Messages with
// verbs are format strings for fmt.Sprintf.
func T(key string) string {
	return current.Get(key, []any{}...)
}

// Languages lists the embedded catalogues
func Languages() []string {
	entries, err := locales.ReadDir("locales")
	if err != nil {
		return []string{DefaultLanguage}
	}
	var langs []string
	for _, e := range entries {
		langs = append(langs, strings.TrimSuffix(e.Name(), ".po"))
	}
	sort.Strings(langs)
	return langs
}
