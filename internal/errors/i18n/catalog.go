// Package i18n holds localized message catalogs for error codes.
//
// Codes are plain strings here rather than the errors package type; the
// errors package imports this one, so sharing the type would cycle.
package i18n

import (
	"bytes"
	"maps"
	"strings"
	"sync"
	"text/template"

	"golang.org/x/text/language"
)

// Code is a machine-readable error code.
type Code = string

// BaseLocale is the locale every lookup falls back to.
const BaseLocale = "en-US"

// Catalog maps error codes to message templates for one locale.
type Catalog struct {
	locale   string
	messages map[Code]string
}

var (
	mu       sync.RWMutex
	registry = map[string]*Catalog{}
	// order preserves registration order; index 0 is the matcher fallback.
	order []string
	match language.Matcher
)

func init() {
	RegisterCatalog(BaseLocale, enUSCatalog)
}

// NewCatalog builds a catalog over a copy of messages.
func NewCatalog(locale string, messages map[Code]string) *Catalog {
	return &Catalog{locale: locale, messages: maps.Clone(messages)}
}

// RegisterCatalog installs cat for locale, replacing any previous
// registration for the same tag. Locales must parse as BCP 47 tags.
func RegisterCatalog(locale string, cat *Catalog) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := registry[locale]; !exists {
		order = append(order, locale)
	}
	registry[locale] = cat
	rebuildMatcher()
}

// rebuildMatcher must run with mu held for writing.
func rebuildMatcher() {
	tags := make([]language.Tag, len(order))
	for i, locale := range order {
		tags[i] = language.Make(locale)
	}
	match = language.NewMatcher(tags)
}

// GetCatalog picks the best catalog for a BCP 47 locale tag. Exact
// registrations win; otherwise the language matcher decides, and anything
// unparseable or unmatched falls back to the base locale.
func GetCatalog(locale string) *Catalog {
	mu.RLock()
	defer mu.RUnlock()

	requested := strings.TrimSpace(locale)
	if requested == "" {
		requested = BaseLocale
	}
	if cat, ok := registry[requested]; ok {
		return cat
	}

	tag, err := language.Parse(requested)
	if err != nil {
		return registry[BaseLocale]
	}
	if _, index, conf := match.Match(tag); conf != language.No {
		return registry[order[index]]
	}
	return registry[BaseLocale]
}

// Locale reports which locale this catalog serves.
func (c *Catalog) Locale() string { return c.locale }

// Format renders the message registered for code using metadata as template
// data. Unknown codes render as the code itself so a missing translation
// still yields something actionable, and a template that fails to parse or
// execute renders raw. Templates always run, even with empty metadata.
func (c *Catalog) Format(code Code, metadata map[string]string) string {
	raw, ok := c.messages[code]
	if !ok {
		return code
	}
	if metadata == nil {
		metadata = map[string]string{}
	}

	tmpl, err := template.New(code).Parse(raw)
	if err != nil {
		return raw
	}
	var out bytes.Buffer
	if err := tmpl.Execute(&out, metadata); err != nil {
		return raw
	}
	return out.String()
}
