package charset

import (
	"bytes"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// IsWithinCharset reports whether the UTF-8 bytes of text decode under the named charset
// without a single coding error. An unknown charset name reports false.
func IsWithinCharset(text, name string) bool {
	enc, err := Lookup(name)
	if err != nil {
		return false
	}
	return decodesStrictly(enc, []byte(text))
}

// IsASCII reports whether text lies entirely within US-ASCII.
func IsASCII(text string) bool {
	return IsWithinCharset(text, ASCII)
}

// IsLatin1 reports whether text decodes under ISO-8859-1.
func IsLatin1(text string) bool {
	return IsWithinCharset(text, Latin1)
}

// decodesStrictly fails on the first byte the decoder would have to replace.
// x/text decoders substitute U+FFFD instead of returning errors, so strictness is checked here.
func decodesStrictly(enc encoding.Encoding, b []byte) bool {
	switch nameOf(enc) {
	case ASCII:
		for _, c := range b {
			if c >= utf8.RuneSelf {
				return false
			}
		}
		return true
	case UTF8:
		return utf8.Valid(b)
	}

	if cm, ok := enc.(*charmap.Charmap); ok {
		for _, c := range b {
			if cm.DecodeByte(c) == utf8.RuneError {
				return false
			}
		}
		return true
	}

	out, err := enc.NewDecoder().Bytes(b)
	if err != nil {
		return false
	}
	return !bytes.ContainsRune(out, utf8.RuneError)
}
