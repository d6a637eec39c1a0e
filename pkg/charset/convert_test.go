package charset_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localekit/pkg/charset"
)

func TestConvert(t *testing.T) {
	t.Parallel()

	t.Run("empty input is returned unchanged", func(t *testing.T) {
		t.Parallel()
		out, err := charset.Convert("", "UTF-8", "ISO-8859-1")
		require.NoError(t, err)
		require.Empty(t, out)
	})

	t.Run("empty input skips charset lookup", func(t *testing.T) {
		t.Parallel()
		out, err := charset.Convert("", "no-such-charset", "neither-this")
		require.NoError(t, err)
		require.Empty(t, out)
	})

	t.Run("unknown source charset", func(t *testing.T) {
		t.Parallel()
		_, err := charset.Convert("abc", "no-such-charset", "UTF-8")
		require.ErrorIs(t, err, charset.ErrUnsupportedEncoding)
	})

	t.Run("unknown target charset", func(t *testing.T) {
		t.Parallel()
		_, err := charset.Convert("abc", "UTF-8", "no-such-charset")
		require.ErrorIs(t, err, charset.ErrUnsupportedEncoding)
	})

	t.Run("utf-8 bytes read as latin-1", func(t *testing.T) {
		t.Parallel()
		out, err := charset.Convert("café", "UTF-8", "ISO-8859-1")
		require.NoError(t, err)
		require.Equal(t, "cafÃ©", out)
	})

	t.Run("latin-1 bytes read as utf-8", func(t *testing.T) {
		t.Parallel()
		out, err := charset.Convert("cafÃ©", "ISO-8859-1", "UTF-8")
		require.NoError(t, err)
		require.Equal(t, "café", out)
	})

	t.Run("ascii text is unchanged", func(t *testing.T) {
		t.Parallel()
		out, err := charset.Convert("plain text 123", "UTF-8", "ISO-8859-1")
		require.NoError(t, err)
		require.Equal(t, "plain text 123", out)
	})

	t.Run("unrepresentable runes are replaced", func(t *testing.T) {
		t.Parallel()
		out, err := charset.Convert("a日b", "ISO-8859-1", "ISO-8859-1")
		require.NoError(t, err)
		assert.NotContains(t, out, "日")
		assert.True(t, len(out) >= 2)
		assert.Equal(t, byte('a'), out[0])
	})

	t.Run("ascii label is strict us-ascii", func(t *testing.T) {
		t.Parallel()
		out, err := charset.Convert("café", "UTF-8", "ascii")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out, "caf"))
		assert.NotContains(t, out, "Ã")
	})

	t.Run("charset names are case-insensitive aliases", func(t *testing.T) {
		t.Parallel()
		out, err := charset.Convert("café", "utf-8", "latin1")
		require.NoError(t, err)
		require.Equal(t, "cafÃ©", out)
	})
}

func TestConvertRoundTrip(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"cafe",
		"café",
		"naïve façade",
		"Übergrößenträger",
		"ÿ¡¿ ±½ ©®",
		"tab\tand\nnewline",
	}

	for _, s := range inputs {
		t.Run(s, func(t *testing.T) {
			t.Parallel()
			iso, err := charset.Convert(s, "UTF-8", "ISO-8859-1")
			require.NoError(t, err)

			back, err := charset.Convert(iso, "ISO-8859-1", "UTF-8")
			require.NoError(t, err)
			require.Equal(t, s, back)
		})
	}
}

func TestConvertRoundTripAllLatin1(t *testing.T) {
	t.Parallel()

	for r := rune(0x01); r <= 0xFF; r++ {
		s := string(r)
		iso, err := charset.Convert(s, "UTF-8", "ISO-8859-1")
		require.NoError(t, err)

		back, err := charset.Convert(iso, "ISO-8859-1", "UTF-8")
		require.NoError(t, err)
		require.Equal(t, s, back, "rune %U", r)
	}
}

func TestISOHelpers(t *testing.T) {
	t.Parallel()

	iso, err := charset.UTF8ToISO("año")
	require.NoError(t, err)
	require.Equal(t, "aÃ±o", iso)

	utf, err := charset.ISOToUTF8(iso)
	require.NoError(t, err)
	require.Equal(t, "año", utf)
}

func TestCanonicalName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "mime name", input: "ISO-8859-1", expected: "ISO-8859-1"},
		{name: "iana alias", input: "latin1", expected: "ISO-8859-1"},
		{name: "lower case utf-8", input: "utf-8", expected: "UTF-8"},
		{name: "whatwg label", input: "utf8", expected: "UTF-8"},
		{name: "ascii", input: "us-ascii", expected: "US-ASCII"},
		{name: "bare ascii label", input: "ascii", expected: "US-ASCII"},
		{name: "upper case ascii label", input: "ASCII", expected: "US-ASCII"},
		{name: "surrounding spaces", input: "  UTF-8 ", expected: "UTF-8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := charset.CanonicalName(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.expected, got)
		})
	}

	t.Run("unknown name", func(t *testing.T) {
		t.Parallel()
		_, err := charset.CanonicalName("klingon-8")
		require.ErrorIs(t, err, charset.ErrUnsupportedEncoding)
	})

	t.Run("empty name", func(t *testing.T) {
		t.Parallel()
		_, err := charset.Lookup("")
		require.ErrorIs(t, err, charset.ErrUnsupportedEncoding)
	})
}
