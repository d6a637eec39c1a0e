package locale

// Closest picks the entry of supported that best fits requested.
//
// An exact string match wins. Otherwise a candidate sharing the first five
// characters of requested (language, separator and region) beats one sharing only
// the two-character language prefix, and with no match at all the first supported
// entry is returned. Within the region and language tiers the LAST matching
// candidate wins; callers depend on this, do not turn it into first-match.
//
// With no supported entries requested is returned unchanged; an empty requested
// returns the first supported entry.
//
// Prefixes are measured in bytes. Locale tags are ASCII, so bytes and characters
// agree; a non-ASCII tag may be cut inside a multi-byte character and then only
// matches candidates that share those exact bytes.
func Closest(requested string, supported []string) string {
	if len(supported) == 0 {
		return requested
	}
	if requested == "" {
		return supported[0]
	}

	langPrefix := requested[:min(2, len(requested))]
	regionPrefix := langPrefix
	if len(requested) > 4 {
		regionPrefix = requested[:5]
	}

	exactIdx, closeIdx, looseIdx := -1, -1, -1
	for i, candidate := range supported {
		if candidate == requested {
			exactIdx = i
			break
		}
		if len(candidate) > 4 && candidate[:5] == regionPrefix {
			closeIdx = i
		}
		if len(candidate) > 1 && candidate[:2] == langPrefix {
			looseIdx = i
		}
	}

	switch {
	case exactIdx >= 0:
		return supported[exactIdx]
	case closeIdx >= 0:
		return supported[closeIdx]
	case looseIdx >= 0:
		return supported[looseIdx]
	default:
		return supported[0]
	}
}

// ClosestLocale is Closest over Locale values, compared in their underscore form.
func ClosestLocale(requested Locale, supported []Locale) Locale {
	if len(supported) == 0 {
		return requested
	}

	tags := make([]string, len(supported))
	for i, l := range supported {
		tags[i] = l.String()
	}

	best := Closest(requested.String(), tags)
	for i, tag := range tags {
		if tag == best {
			return supported[i]
		}
	}
	return requested
}
