package locale

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/dmitrymomot/localekit/pkg/charset"
	"github.com/dmitrymomot/localekit/pkg/logger"
)

// UserLocaleParam is the request parameter conventionally used to force a locale override.
const UserLocaleParam = "user_locale"

// TextDirection is the reading direction of rendered text.
type TextDirection string

const (
	LeftToRight TextDirection = "LTR"
	RightToLeft TextDirection = "RTL"
)

// Settings holds the process-wide locale configuration: the default locale, the
// system encoding and the text direction. Create one per process (or per test)
// and hand it to whatever needs it.
//
// Each value is swapped atomically with last-writer-wins semantics. Concurrent
// setters race and one of them silently wins; no further ordering is provided.
//
// The zero value is usable and behaves like NewSettings() without options.
type Settings struct {
	defaultLocale atomic.Pointer[Locale]
	encoding      atomic.Pointer[string]
	direction     atomic.Pointer[TextDirection]

	host   func() Locale
	logger *slog.Logger
}

var nopLogger = logger.NewNope()

// Option configures Settings during construction.
type Option func(*Settings)

// WithLogger sets the logger used for configuration warnings.
func WithLogger(l *slog.Logger) Option {
	return func(s *Settings) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithHostLocale replaces host locale detection used for lazy default initialization.
func WithHostLocale(fn func() Locale) Option {
	return func(s *Settings) {
		if fn != nil {
			s.host = fn
		}
	}
}

// WithDefaultLocale sets the default locale up front, disabling lazy detection.
func WithDefaultLocale(l Locale) Option {
	return func(s *Settings) {
		s.defaultLocale.Store(&l)
	}
}

// NewSettings returns settings with UTF-8 encoding, left-to-right text and no default
// locale; the default is detected from the host on first resolution.
func NewSettings(opts ...Option) *Settings {
	s := &Settings{
		host:   HostLocale,
		logger: nopLogger,
	}

	enc := charset.UTF8
	s.encoding.Store(&enc)
	dir := LeftToRight
	s.direction.Store(&dir)

	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetDefaultLocale replaces the process-wide default. Every scope that has
// neither override nor context locale sees the new value on its next resolution.
func (s *Settings) SetDefaultLocale(l Locale) {
	s.defaultLocale.Store(&l)
}

// DefaultLocale returns the current default, false if it was never set nor detected.
func (s *Settings) DefaultLocale() (Locale, bool) {
	if p := s.defaultLocale.Load(); p != nil {
		return *p, true
	}
	return Locale{}, false
}

// defaultOrHost returns the default locale, detecting it from the host the first time.
func (s *Settings) defaultOrHost() Locale {
	if p := s.defaultLocale.Load(); p != nil {
		return *p
	}

	host := s.host
	if host == nil {
		host = HostLocale
	}
	l := host()
	if s.defaultLocale.CompareAndSwap(nil, &l) {
		s.log().Debug("default locale detected from host", slog.String("locale", l.String()))
		return l
	}
	return *s.defaultLocale.Load()
}

// SetEncoding sets the system encoding used by ToSystemEncoding. Unknown charset
// names fail with charset.ErrUnsupportedEncoding and leave the setting untouched.
// An encoding other than UTF-8, the encoding of Go strings, is accepted with a warning.
func (s *Settings) SetEncoding(name string) error {
	canonical, err := charset.CanonicalName(name)
	if err != nil {
		return err
	}
	if canonical != charset.UTF8 {
		s.log().Warn("system encoding differs from native string encoding",
			slog.String("encoding", canonical),
			slog.String("native", charset.UTF8),
		)
	}
	s.encoding.Store(&name)
	return nil
}

// Encoding returns the system encoding name as it was set, UTF-8 if never set.
func (s *Settings) Encoding() string {
	if p := s.encoding.Load(); p != nil {
		return *p
	}
	return charset.UTF8
}

// SetTextDirection sets the process-wide text direction. The value is not validated.
func (s *Settings) SetTextDirection(d TextDirection) {
	s.direction.Store(&d)
}

// TextDirection returns the process-wide text direction, left-to-right if never set.
func (s *Settings) TextDirection() TextDirection {
	if p := s.direction.Load(); p != nil {
		return *p
	}
	return LeftToRight
}

// ToSystemEncoding re-encodes text from the given charset into the system encoding.
func (s *Settings) ToSystemEncoding(from, text string) (string, error) {
	return charset.Convert(text, from, s.Encoding())
}

// FromISO re-encodes ISO-8859-1 text, typically a form or query value, into the system encoding.
func (s *Settings) FromISO(text string) (string, error) {
	return s.ToSystemEncoding(charset.Latin1, text)
}

func (s *Settings) log() *slog.Logger {
	if s.logger == nil {
		return nopLogger
	}
	return s.logger
}

// NewScope returns an empty scope for one execution context, such as a request.
func (s *Settings) NewScope() *Scope {
	return &Scope{settings: s}
}

// Resolve returns the locale for ctx. With a Scope bound to ctx this is Scope.Resolve;
// without one it is the default locale (detected from the host if unset) and nothing is pinned.
func (s *Settings) Resolve(ctx context.Context) Locale {
	if sc, ok := FromContext(ctx); ok {
		return sc.Resolve()
	}
	return s.defaultOrHost()
}
