// Package i18n loads the UI string catalogues and picks one per request.
//
// Catalogues are flat YAML maps embedded in the binary, one file per
// language under locales/. Month and weekday names inside calendar data come
// localized from the API; only the page chrome is translated here.
package i18n

import (
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// Catalog holds the strings of one language.
type Catalog struct {
	Tag      language.Tag
	messages map[string]string
}

// T returns the message for key, or the key itself when it is missing so
// gaps show up on the page instead of rendering blank.
func (c *Catalog) T(key string) string {
	if msg, ok := c.messages[key]; ok {
		return msg
	}
	return key
}

// Lang returns the BCP 47 code, for the html lang attribute.
func (c *Catalog) Lang() string {
	base, _ := c.Tag.Base()
	return base.String()
}

// Name returns the language's name in its own script, e.g. "العربية".
func (c *Catalog) Name() string {
	return display.Self.Name(c.Tag)
}

// RTL reports whether the language is written right to left.
func (c *Catalog) RTL() bool {
	return c.T("dir") == "rtl"
}

// Bundle is the set of available catalogues with a matcher over them.
type Bundle struct {
	catalogs []*Catalog
	matcher  language.Matcher
}

// Load reads every embedded catalogue. fallback names the language used when
// nothing matches; it must be one of the embedded ones.
func Load(fallback string) (*Bundle, error) {
	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("failed to list locales: %w", err)
	}

	var catalogs []*Catalog
	for _, e := range entries {
		name := e.Name()
		data, err := localeFS.ReadFile(path.Join("locales", name))
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", name, err)
		}

		var messages map[string]string
		if err := yaml.Unmarshal(data, &messages); err != nil {
			return nil, fmt.Errorf("yaml parse error in %s: %w", name, err)
		}

		tag, err := language.Parse(strings.TrimSuffix(name, path.Ext(name)))
		if err != nil {
			return nil, fmt.Errorf("invalid locale file name %s: %w", name, err)
		}
		catalogs = append(catalogs, &Catalog{Tag: tag, messages: messages})
	}

	fbTag, err := language.Parse(fallback)
	if err != nil {
		return nil, fmt.Errorf("invalid fallback language %q: %w", fallback, err)
	}

	// The matcher returns the first tag on ties, so the fallback goes first.
	sort.SliceStable(catalogs, func(i, j int) bool {
		return catalogs[i].Tag == fbTag && catalogs[j].Tag != fbTag
	})
	if len(catalogs) == 0 || catalogs[0].Tag != fbTag {
		return nil, fmt.Errorf("no catalogue for fallback language %q", fallback)
	}

	tags := make([]language.Tag, len(catalogs))
	for i, c := range catalogs {
		tags[i] = c.Tag
	}

	return &Bundle{catalogs: catalogs, matcher: language.NewMatcher(tags)}, nil
}

// Languages returns the available language codes, fallback first.
func (b *Bundle) Languages() []string {
	out := make([]string, len(b.catalogs))
	for i, c := range b.catalogs {
		out[i] = c.Lang()
	}
	return out
}

// Catalogs returns every catalogue, fallback first.
func (b *Bundle) Catalogs() []*Catalog {
	return b.catalogs
}

// Match picks the catalogue for an explicit choice (e.g. ?lang=ar) and an
// Accept-Language header, in that order of preference.
func (b *Bundle) Match(explicit, acceptLanguage string) *Catalog {
	var prefs []language.Tag
	if explicit != "" {
		if tag, err := language.Parse(explicit); err == nil {
			prefs = append(prefs, tag)
		}
	}
	if tags, _, err := language.ParseAcceptLanguage(acceptLanguage); err == nil {
		prefs = append(prefs, tags...)
	}

	_, idx, conf := b.matcher.Match(prefs...)
	if conf == language.No {
		return b.catalogs[0]
	}
	return b.catalogs[idx]
}
