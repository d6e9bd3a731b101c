// Package taxonomy holds the static locale and category tables that drive
// catalog collection. The tables are process-lifetime constants: they are
// defined at init and never mutated.
package taxonomy

import "strings"

// Locale describes one collection locale and its per-source language
// parameters. An empty parameter means the source is queried without a
// language filter for that locale; use LanguageParam's second return value
// to distinguish "no filter" from "locale unknown".
type Locale struct {
	Code   string // full locale code, e.g. "pt_BR"
	Name   string
	Params map[string]string // source name -> language parameter
}

// Category describes one image category and its keyword lists keyed by
// base language code.
type Category struct {
	Key      string
	Name     string
	Keywords map[string][]string
}

// Locales returns all collection locales in table order.
func Locales() []Locale {
	return locales
}

// Categories returns all image categories in table order.
func Categories() []Category {
	return categories
}

// CategoryByKey returns the category for key, or false if the key is not in
// the table.
func CategoryByKey(key string) (Category, bool) {
	for _, c := range categories {
		if c.Key == key {
			return c, true
		}
	}
	return Category{}, false
}

// LocaleByCode returns the locale for code, or false if the code is not in
// the table.
func LocaleByCode(code string) (Locale, bool) {
	for _, l := range locales {
		if l.Code == code {
			return l, true
		}
	}
	return Locale{}, false
}

// BaseLanguage extracts the bare language code from a locale code:
// "pt_BR" -> "pt".
func BaseLanguage(localeCode string) string {
	if i := strings.IndexByte(localeCode, '_'); i >= 0 {
		return localeCode[:i]
	}
	return localeCode
}

// KeywordsFor resolves the keyword list for a category and locale.
// Resolution order: exact match on the full locale code, then the base
// language, then the English list. Returns nil when every tier misses or
// the category key is unknown.
func KeywordsFor(categoryKey, localeCode string) []string {
	cat, ok := CategoryByKey(categoryKey)
	if !ok {
		return nil
	}
	if kws, ok := cat.Keywords[localeCode]; ok {
		return kws
	}
	if kws, ok := cat.Keywords[BaseLanguage(localeCode)]; ok {
		return kws
	}
	if kws, ok := cat.Keywords["en"]; ok {
		return kws
	}
	return nil
}

// LanguageParam returns the language parameter to pass to the named source
// for a locale. The second return value reports whether the locale exists in
// the table at all; an empty parameter with ok=true means the source is
// queried unfiltered for this locale.
func LanguageParam(localeCode, source string) (string, bool) {
	l, ok := LocaleByCode(localeCode)
	if !ok {
		return "", false
	}
	return l.Params[source], true
}

// highPriorityLangs is the shortlist of primary-source language codes with
// good API coverage. Locales mapping to one of these are collected first.
var highPriorityLangs = map[string]bool{
	"en": true, "es": true, "fr": true, "de": true, "it": true,
	"pt": true, "ru": true, "zh": true, "ja": true, "ko": true,
}

// HighPriority reports whether a locale belongs to the first collection
// phase: its primary-source language parameter is non-empty and on the
// well-supported shortlist.
func HighPriority(l Locale) bool {
	p := l.Params[SourcePixabay]
	return p != "" && highPriorityLangs[p]
}

// LocationTerms returns location keywords used to bias unfiltered sources
// toward a locale, or nil when the locale has no entry.
func LocationTerms(localeCode string) []string {
	return locationTerms[localeCode]
}
