// Package charset re-encodes text between named character sets and tests whether text
// fits within a character set.
//
// Charset names are resolved against the IANA registry first (names and aliases such as
// "ISO-8859-1", "latin1", "US-ASCII", "windows-1252") and then against the WHATWG encoding
// labels ("utf8", "cp1252"). Matching is case-insensitive. The bare "ascii" label always
// means US-ASCII, never the windows-1252 codec WHATWG assigns to it.
//
// # Conversion
//
// Convert encodes a string with one charset and decodes the resulting bytes with another.
// This is the classic repair for form values that were decoded with the wrong charset:
//
//	fixed, err := charset.Convert(value, "ISO-8859-1", "UTF-8")
//	if err != nil {
//		// unknown charset name: a configuration bug, not a per-request condition
//	}
//
// Empty input is returned unchanged without looking up either charset. Runes the source
// charset cannot represent are replaced with the codec's substitute byte; byte sequences the
// target charset cannot decode become U+FFFD. Unknown names fail with ErrUnsupportedEncoding.
//
// # Membership
//
// IsWithinCharset reports whether the UTF-8 bytes of a string decode strictly under a charset.
// It never fails: coding errors and unknown names report false.
//
//	charset.IsASCII("cafe")  // true
//	charset.IsASCII("café")  // false
//
// Single-byte charsets that assign every byte value, ISO-8859-1 among them, accept any input.
package charset
