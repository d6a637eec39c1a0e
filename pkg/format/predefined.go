package format

import (
	"context"

	"github.com/dmitrymomot/localekit/pkg/locale"
)

var time24 = WithTimeLayouts("15:04", "15:04:05", "15:04:05 MST", "15:04:05 MST")

// numericDates reuses the medium layout for long and full forms.
func numericDates(short, medium string) Option {
	return WithDateLayouts(short, medium, medium, medium)
}

type entry struct {
	locale locale.Locale
	format *Format
}

var us = New()

// The first entry is the fallback when nothing matches. Plain "en" has its own
// entry so a language-only request gets US conventions instead of the last
// English region.
var table = []entry{
	{locale.Make("en", "US"), us},
	{locale.Make("en", ""), us},
	{locale.Make("en", "GB"), New(
		WithCurrency("£", false),
		WithDateLayouts("02/01/2006", "2 Jan 2006", "2 January 2006", "Monday, 2 January 2006"),
		time24,
	)},
	{locale.Make("de", "DE"), New(
		WithSeparators(",", "."),
		WithCurrency("€", true),
		numericDates("02.01.06", "02.01.2006"),
		time24,
	)},
	{locale.Make("fr", "FR"), New(
		WithSeparators(",", " "),
		WithCurrency("€", true),
		numericDates("02/01/2006", "02/01/2006"),
		time24,
	)},
	{locale.Make("es", "ES"), New(
		WithSeparators(",", "."),
		WithCurrency("€", true),
		numericDates("02/01/06", "02/01/2006"),
		time24,
	)},
	{locale.Make("pt", "BR"), New(
		WithSeparators(",", "."),
		WithCurrency("R$", false),
		numericDates("02/01/06", "02/01/2006"),
		time24,
	)},
	{locale.Make("ja", "JP"), New(
		WithCurrency("¥", false),
		numericDates("2006/01/02", "2006/01/02"),
		time24,
	)},
	{locale.Make("zh", "CN"), New(
		WithCurrency("¥", false),
		numericDates("2006/1/2", "2006-01-02"),
		time24,
	)},
	{locale.Make("ru", "RU"), New(
		WithSeparators(",", " "),
		WithCurrency("₽", true),
		numericDates("02.01.06", "02.01.2006"),
		time24,
	)},
	{locale.Make("ar", "SA"), New(
		WithCurrency("SAR", true),
		numericDates("02/01/06", "02/01/2006"),
	)},
}

// Supported lists the locales with built-in conventions, fallback first.
func Supported() []locale.Locale {
	out := make([]locale.Locale, len(table))
	for i, e := range table {
		out[i] = e.locale
	}
	return out
}

// ForLocale returns the built-in conventions closest to l.
func ForLocale(l locale.Locale) *Format {
	best := locale.ClosestLocale(l, Supported())
	for _, e := range table {
		if e.locale == best {
			return e.format
		}
	}
	return table[0].format
}

// FromContext returns the conventions for the locale settings resolve for ctx.
// Like Settings.Resolve it may pin the default locale on the scope bound to ctx.
func FromContext(ctx context.Context, settings *locale.Settings) *Format {
	return ForLocale(settings.Resolve(ctx))
}
