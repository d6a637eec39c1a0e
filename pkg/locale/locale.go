package locale

import (
	"strings"

	"golang.org/x/text/language"
)

// Separator joins the language and region of a locale tag, as in "en_US".
const Separator = "_"

// Locale identifies a language and an optional region.
// It is a comparable value: two locales are equal when language and region are equal.
// The zero value is the root locale.
type Locale struct {
	language string
	region   string
}

// Make returns the locale for a language and an optional region.
// The language is lower-cased and the region upper-cased; nothing else is validated.
func Make(lang, region string) Locale {
	return Locale{
		language: strings.ToLower(lang),
		region:   strings.ToUpper(region),
	}
}

// Parse turns a tag such as "en" or "pt_BR" into a Locale. It never fails.
//
// Text before the first "_" is the language and text between the first and
// second "_" is the region; anything after a second "_" is ignored. A missing or
// empty region yields a language-only locale, so "en_" parses as "en".
// The empty tag parses as the root locale.
func Parse(tag string) Locale {
	lang, rest, found := strings.Cut(tag, Separator)
	if !found {
		return Make(tag, "")
	}
	region, _, _ := strings.Cut(rest, Separator)
	return Make(lang, region)
}

// FromTag converts a BCP 47 tag. Only an explicitly present region is kept:
// "en" stays language-only even though x/text would guess "US" for it.
func FromTag(tag language.Tag) Locale {
	if tag == language.Und {
		return Locale{}
	}
	base, conf := tag.Base()
	if conf == language.No {
		return Locale{}
	}
	var region string
	if r, conf := tag.Region(); conf == language.Exact {
		region = r.String()
	}
	return Make(base.String(), region)
}

// Language returns the lower-cased language subtag.
func (l Locale) Language() string { return l.language }

// Region returns the upper-cased region subtag, empty for language-only locales.
func (l Locale) Region() string { return l.region }

// IsRoot reports whether l has neither language nor region.
func (l Locale) IsRoot() bool { return l.language == "" && l.region == "" }

// String returns the underscore form, e.g. "en_US" or "en".
func (l Locale) String() string {
	if l.region == "" {
		return l.language
	}
	return l.language + Separator + l.region
}

// Tag returns the BCP 47 equivalent of l. Locales x/text cannot parse map to language.Und.
func (l Locale) Tag() language.Tag {
	if l.language == "" {
		return language.Und
	}
	s := l.language
	if l.region != "" {
		s += "-" + l.region
	}
	tag, err := language.Parse(s)
	if err != nil {
		return language.Und
	}
	return tag
}
