package locale_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localekit/pkg/locale"
	"github.com/dmitrymomot/localekit/pkg/logger"
)

func TestLogAttr(t *testing.T) {
	t.Parallel()

	record := func(t *testing.T, buf *bytes.Buffer) map[string]any {
		t.Helper()
		var rec map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
		return rec
	}

	t.Run("adds resolved locale", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.NewWithWriter(&buf, slog.LevelInfo, locale.LogAttr())

		s := locale.NewSettings()
		sc := s.NewScope()
		sc.SetOverride(locale.Make("de", "CH"))

		log.InfoContext(locale.ToContext(t.Context(), sc), "rendered")
		assert.Equal(t, "de_CH", record(t, &buf)["locale"])
	})

	t.Run("no scope no attribute", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.NewWithWriter(&buf, slog.LevelInfo, locale.LogAttr())

		log.InfoContext(t.Context(), "rendered")
		assert.NotContains(t, record(t, &buf), "locale")
	})

	t.Run("does not pin or detect", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.NewWithWriter(&buf, slog.LevelInfo, locale.LogAttr())

		s := locale.NewSettings(locale.WithHostLocale(func() locale.Locale {
			t.Error("logging must not trigger host detection")
			return locale.Locale{}
		}))
		sc := s.NewScope()

		log.InfoContext(locale.ToContext(t.Context(), sc), "rendered")
		assert.NotContains(t, record(t, &buf), "locale")

		_, pinned := sc.Locale()
		assert.False(t, pinned)
	})

	t.Run("reports default without pinning", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.NewWithWriter(&buf, slog.LevelInfo, locale.LogAttr())

		s := locale.NewSettings(locale.WithDefaultLocale(locale.Make("ko", "KR")))
		sc := s.NewScope()

		log.InfoContext(locale.ToContext(t.Context(), sc), "rendered")
		assert.Equal(t, "ko_KR", record(t, &buf)["locale"])

		_, pinned := sc.Locale()
		assert.False(t, pinned)
	})
}
