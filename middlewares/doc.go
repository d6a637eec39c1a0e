// Package middlewares provides net/http middleware that wires locale resolution into
// request handling.
//
// LocaleScope creates a new locale.Scope for every request and binds it to the request
// context. Handlers then resolve the request locale through the shared Settings:
//
//	settings := locale.NewSettings()
//
//	r := chi.NewRouter()
//	r.Use(middlewares.LocaleScope(settings,
//		middlewares.WithLocaleSource(middlewares.FromCookie("lang")),
//	))
//	r.Get("/report", func(w http.ResponseWriter, r *http.Request) {
//		f := format.FromContext(r.Context(), settings)
//		// ...
//	})
//
// The "user_locale" parameter (configurable with WithOverrideParam) forces an override
// for the request, which is meant for support and debugging.
package middlewares
