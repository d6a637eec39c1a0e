package locale

import (
	"context"
	"sync"
)

// Scope carries the locale state of one execution context: an override set by
// explicit administrative or debug action, and the context locale set by normal
// request handling. Bind it to a context.Context with ToContext.
//
// A scope must not outlive its execution context. Call Reset before reusing one.
// Scopes normally come from Settings.NewScope; the zero value falls back to a
// package-level Settings shared by all zero scopes.
type Scope struct {
	settings *Settings

	mu       sync.Mutex
	override *Locale
	locale   *Locale
}

// SetOverride forces l for this scope, bypassing the context locale and the default.
func (sc *Scope) SetOverride(l Locale) {
	sc.mu.Lock()
	sc.override = &l
	sc.mu.Unlock()
}

// ParseAndSetOverride parses tag with Parse and binds the result as the override.
func (sc *Scope) ParseAndSetOverride(tag string) Locale {
	l := Parse(tag)
	sc.SetOverride(l)
	return l
}

// Override returns the override, false if none is set.
func (sc *Scope) Override() (Locale, bool) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	if sc.override == nil {
		return Locale{}, false
	}
	return *sc.override, true
}

// ClearOverride removes the override; resolution falls back to the context locale.
func (sc *Scope) ClearOverride() {
	sc.mu.Lock()
	sc.override = nil
	sc.mu.Unlock()
}

// SetLocale binds the context locale.
func (sc *Scope) SetLocale(l Locale) {
	sc.mu.Lock()
	sc.locale = &l
	sc.mu.Unlock()
}

// Locale returns the context locale, false if none is bound.
func (sc *Scope) Locale() (Locale, bool) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	if sc.locale == nil {
		return Locale{}, false
	}
	return *sc.locale, true
}

// ClearLocale unbinds the context locale, including one pinned by Resolve.
func (sc *Scope) ClearLocale() {
	sc.mu.Lock()
	sc.locale = nil
	sc.mu.Unlock()
}

// Reset clears both override and context locale.
func (sc *Scope) Reset() {
	sc.mu.Lock()
	sc.override = nil
	sc.locale = nil
	sc.mu.Unlock()
}

// Resolve returns the override, else the context locale, else the process default.
//
// Resolve is not a pure read. When it falls through to the default (detecting it
// from the host if it was never set) it binds that default as the context locale,
// so later resolutions in this scope keep returning it even after the process
// default changes. ClearLocale undoes the pin.
func (sc *Scope) Resolve() Locale {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.override != nil {
		return *sc.override
	}
	if sc.locale != nil {
		return *sc.locale
	}

	l := sc.source().defaultOrHost()
	sc.locale = &l
	return l
}

// current is Resolve without side effects; false when nothing would resolve
// without detecting the default.
func (sc *Scope) current() (Locale, bool) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.override != nil {
		return *sc.override, true
	}
	if sc.locale != nil {
		return *sc.locale, true
	}
	return sc.source().DefaultLocale()
}

var detached Settings

func (sc *Scope) source() *Settings {
	if sc.settings == nil {
		return &detached
	}
	return sc.settings
}

type scopeKey struct{}

// ToContext binds sc to ctx.
func ToContext(ctx context.Context, sc *Scope) context.Context {
	return context.WithValue(ctx, scopeKey{}, sc)
}

// FromContext returns the scope bound to ctx, if any.
func FromContext(ctx context.Context) (*Scope, bool) {
	sc, ok := ctx.Value(scopeKey{}).(*Scope)
	return sc, ok && sc != nil
}
