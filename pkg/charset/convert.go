package charset

import (
	"fmt"

	"golang.org/x/text/encoding"
)

// Convert encodes text with the from charset and decodes the resulting bytes with the to charset.
// Empty text is returned unchanged and neither name is looked up.
func Convert(text, from, to string) (string, error) {
	if text == "" {
		return text, nil
	}

	src, err := Lookup(from)
	if err != nil {
		return "", err
	}
	dst, err := Lookup(to)
	if err != nil {
		return "", err
	}

	raw, err := encoding.ReplaceUnsupported(src.NewEncoder()).Bytes([]byte(text))
	if err != nil {
		return "", fmt.Errorf("%w: encode as %s: %v", ErrConversion, from, err)
	}

	out, err := dst.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("%w: decode as %s: %v", ErrConversion, to, err)
	}

	return string(out), nil
}

// ISOToUTF8 reinterprets the Latin-1 bytes of text as UTF-8.
func ISOToUTF8(text string) (string, error) {
	return Convert(text, Latin1, UTF8)
}

// UTF8ToISO reinterprets the UTF-8 bytes of text as Latin-1.
func UTF8ToISO(text string) (string, error) {
	return Convert(text, UTF8, Latin1)
}
