package locale

import (
	"os"
	"strings"

	golocale "github.com/jeandeaual/go-locale"
	"golang.org/x/text/language"
)

// hostEnvVars are consulted in order; the first usable value wins.
var hostEnvVars = []string{"LC_ALL", "LC_MESSAGES", "LANG"}

var fallbackLocale = Make("en", "")

// HostLocale returns the ambient locale of the host: the POSIX locale variables
// first, then the preferred languages reported by the operating system (the user
// language list on macOS and Windows, LANGUAGE on other Unix systems), then "en".
func HostLocale() Locale {
	return hostLocale(os.Getenv, golocale.GetLocales)
}

func hostLocale(getenv func(string) string, system func() ([]string, error)) Locale {
	for _, name := range hostEnvVars {
		if l, ok := parsePOSIXLocale(getenv(name)); ok {
			return l
		}
	}
	if l, ok := systemLocale(system); ok {
		return l
	}
	return fallbackLocale
}

// parsePOSIXLocale accepts values like "de_DE.UTF-8" or "sr_RS@latin".
func parsePOSIXLocale(val string) (Locale, bool) {
	val = strings.TrimSpace(val)
	if i := strings.IndexAny(val, ".@"); i >= 0 {
		val = val[:i]
	}
	if val == "" || val == "C" || val == "POSIX" {
		return Locale{}, false
	}
	return parseHostTag(strings.ReplaceAll(val, Separator, "-"))
}

// systemLocale returns the first usable BCP 47 tag the system reports.
func systemLocale(system func() ([]string, error)) (Locale, bool) {
	tags, err := system()
	if err != nil {
		return Locale{}, false
	}
	for _, tag := range tags {
		if l, ok := parseHostTag(tag); ok {
			return l, true
		}
	}
	return Locale{}, false
}

func parseHostTag(s string) (Locale, bool) {
	tag, err := language.Parse(strings.TrimSpace(s))
	if err != nil {
		return Locale{}, false
	}
	l := FromTag(tag)
	if l.IsRoot() {
		return Locale{}, false
	}
	return l, true
}
