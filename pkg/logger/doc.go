// Package logger builds log/slog loggers whose records are enriched from the context.
//
// A ContextExtractor turns request-scoped state into an attribute. Extractors run on every
// log call, so a value bound after the logger was created (such as the locale resolved
// for the request) is still picked up:
//
//	log := logger.New(locale.LogAttr())
//	log.InfoContext(ctx, "report rendered")
//	// {"level":"INFO","msg":"report rendered","locale":"de_DE"}
//
// WithExtractors decorates any slog.Handler, NewWithWriter targets an arbitrary writer
// (handy in tests), and NewNope discards output for components that log optionally.
package logger
