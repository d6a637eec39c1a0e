// Package locale decides which locale governs formatting for each execution context
// of a multi-tenant process, and picks the closest supported locale for a requested one.
//
// # Locales
//
// A Locale is an immutable language plus optional region, written "en" or "en_US".
// Parse never fails: text before the first underscore is the language, text up to the
// next underscore is the region, the rest is ignored.
//
//	locale.Parse("pt_BR")        // pt_BR
//	locale.Parse("en_")          // en
//	locale.Parse("sr_RS_latin")  // sr_RS
//
// # Resolution
//
// Settings is the process-wide configuration object; a Scope holds the state of a single
// execution context (usually one HTTP request) and travels in its context.Context:
//
//	settings := locale.NewSettings(locale.WithLogger(log))
//
//	sc := settings.NewScope()
//	ctx = locale.ToContext(ctx, sc)
//	sc.SetLocale(locale.Make("de", "DE"))
//
//	settings.Resolve(ctx) // de_DE
//
// Resolution order is override, then context locale, then the process default. The
// default is detected from the host (LC_ALL, LC_MESSAGES, LANG) the first time it is
// needed. Falling through to the default pins it as the scope's context locale, so a
// scope keeps the locale it first resolved even if the default changes later.
//
// Scopes are isolated from one another: state set on one is never visible through another.
// Create a new scope per execution context, or Reset a pooled one before reuse.
//
// # Process-wide values
//
// The default locale, system encoding and text direction live in Settings and are
// swapped atomically, last writer wins. There is no locking beyond that; concurrent
// writers race.
//
// # Closest match
//
// Closest negotiates a requested tag against a fixed list of shipped tags:
//
//	locale.Closest("en_US", []string{"fr", "en_US", "en"})  // "en_US"
//	locale.Closest("en_GB", []string{"en_US", "fr", "en_CA"}) // "en_CA"
//
// Exact match beats a region (five-character prefix) match, which beats a language
// (two-character prefix) match, which beats the first entry. Within a tier the last
// matching entry wins.
//
// # Configuration
//
// LoadConfig reads an optional YAML file and overlays LOCALE_DEFAULT, LOCALE_ENCODING
// and LOCALE_TEXT_DIRECTION from the environment; NewSettingsFromConfig validates it.
package locale
