package middlewares

import (
	"net/http"

	"github.com/dmitrymomot/localekit/pkg/locale"
)

// LocaleSource extracts the context locale of a request, e.g. from a cookie or the session.
type LocaleSource func(r *http.Request) (locale.Locale, bool)

type localeScopeConfig struct {
	overrideParam string
	source        LocaleSource
}

// LocaleScopeOption configures the LocaleScope middleware.
type LocaleScopeOption func(*localeScopeConfig)

// WithOverrideParam sets the request parameter that forces an override.
// Defaults to locale.UserLocaleParam; an empty name disables overrides.
func WithOverrideParam(name string) LocaleScopeOption {
	return func(cfg *localeScopeConfig) {
		cfg.overrideParam = name
	}
}

// WithLocaleSource sets how the context locale is read from the request.
func WithLocaleSource(src LocaleSource) LocaleScopeOption {
	return func(cfg *localeScopeConfig) {
		cfg.source = src
	}
}

// FromCookie returns a LocaleSource reading a tag such as "de_DE" from the named cookie.
func FromCookie(name string) LocaleSource {
	return func(r *http.Request) (locale.Locale, bool) {
		c, err := r.Cookie(name)
		if err != nil || c.Value == "" {
			return locale.Locale{}, false
		}
		return locale.Parse(c.Value), true
	}
}

// LocaleScope binds a fresh locale.Scope to every request context, so locale state
// can never leak between requests. The context locale comes from the configured
// source; a non-empty override parameter (query or form) is parsed into the override.
func LocaleScope(settings *locale.Settings, opts ...LocaleScopeOption) func(http.Handler) http.Handler {
	cfg := &localeScopeConfig{overrideParam: locale.UserLocaleParam}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sc := settings.NewScope()

			if cfg.source != nil {
				if l, ok := cfg.source(r); ok {
					sc.SetLocale(l)
				}
			}

			if cfg.overrideParam != "" {
				if tag := r.FormValue(cfg.overrideParam); tag != "" {
					sc.ParseAndSetOverride(tag)
				}
			}

			next.ServeHTTP(w, r.WithContext(locale.ToContext(r.Context(), sc)))
		})
	}
}
