package charset

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
)

// Preferred MIME names of the charsets used throughout the package.
const (
	UTF8   = "UTF-8"
	ASCII  = "US-ASCII"
	Latin1 = "ISO-8859-1"
)

// asciiLabels are spellings of US-ASCII missing from the IANA registry.
// WHATWG maps them to windows-1252, which would accept any byte.
var asciiLabels = map[string]struct{}{
	"ascii":    {},
	"us_ascii": {},
	"usascii":  {},
	"iso646":   {},
}

// Lookup returns the encoding registered under name.
// IANA names and aliases take precedence over WHATWG labels, so "ISO-8859-1"
// resolves to Latin-1 rather than the windows-1252 superset browsers use,
// and "ascii" resolves to US-ASCII.
func Lookup(name string) (encoding.Encoding, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: empty name", ErrUnsupportedEncoding)
	}
	if _, ok := asciiLabels[strings.ToLower(name)]; ok {
		name = ASCII
	}

	// ianaindex reports (nil, nil) for registered names it has no codec for.
	if enc, err := ianaindex.IANA.Encoding(name); err == nil && enc != nil {
		return enc, nil
	}

	if enc, err := htmlindex.Get(name); err == nil {
		return enc, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnsupportedEncoding, name)
}

// CanonicalName returns the preferred name of the named charset, e.g. "ISO-8859-1" for "latin1".
func CanonicalName(name string) (string, error) {
	enc, err := Lookup(name)
	if err != nil {
		return "", err
	}
	return nameOf(enc), nil
}

func nameOf(enc encoding.Encoding) string {
	if n, err := ianaindex.MIME.Name(enc); err == nil && n != "" {
		return n
	}
	if n, err := ianaindex.IANA.Name(enc); err == nil && n != "" {
		return n
	}
	if n, err := htmlindex.Name(enc); err == nil {
		return n
	}
	return ""
}
