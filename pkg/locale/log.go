package locale

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/localekit/pkg/logger"
)

// LogAttr returns an extractor adding the locale of the scope bound to the context
// as the "locale" attribute. It never pins a locale or triggers host detection.
func LogAttr() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		sc, ok := FromContext(ctx)
		if !ok {
			return slog.Attr{}, false
		}
		l, ok := sc.current()
		if !ok {
			return slog.Attr{}, false
		}
		return slog.String("locale", l.String()), true
	}
}
