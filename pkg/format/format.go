package format

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Style selects the verbosity of a date or time layout.
type Style int

const (
	Short Style = iota
	Medium
	Long
	Full
)

// Ignore leaves the date or time part out of Layout and DateTime.
const Ignore Style = -1

// Format holds the conventions of one locale. It is immutable and safe for concurrent use.
type Format struct {
	decimal       string
	thousand      string
	currency      string
	currencyAfter bool
	dateLayouts   [4]string
	timeLayouts   [4]string
}

// Option configures a Format.
type Option func(*Format)

// WithSeparators sets the decimal and thousands separators.
func WithSeparators(decimal, thousand string) Option {
	return func(f *Format) {
		f.decimal = decimal
		f.thousand = thousand
	}
}

// WithCurrency sets the currency symbol and whether it follows the amount.
// A leading symbol is written as given ("$", "R$"), a trailing one after a space.
func WithCurrency(symbol string, after bool) Option {
	return func(f *Format) {
		f.currency = symbol
		f.currencyAfter = after
	}
}

// WithDateLayouts sets the date layouts (time package syntax) for Short, Medium, Long and Full.
func WithDateLayouts(short, medium, long, full string) Option {
	return func(f *Format) {
		f.dateLayouts = [4]string{short, medium, long, full}
	}
}

// WithTimeLayouts sets the time layouts for Short, Medium, Long and Full.
func WithTimeLayouts(short, medium, long, full string) Option {
	return func(f *Format) {
		f.timeLayouts = [4]string{short, medium, long, full}
	}
}

// New returns a Format; without options it follows US English conventions.
func New(opts ...Option) *Format {
	f := &Format{
		decimal:  ".",
		thousand: ",",
		currency: "$",
		dateLayouts: [4]string{
			"1/2/06", "Jan 2, 2006", "January 2, 2006", "Monday, January 2, 2006",
		},
		timeLayouts: [4]string{
			"3:04 PM", "3:04:05 PM", "3:04:05 PM MST", "3:04:05 PM MST",
		},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Number formats n with at most two fraction digits, trailing zeros dropped.
func (f *Format) Number(n float64) string {
	intPart, frac := split(n)
	frac = strings.TrimRight(frac, "0")

	out := f.group(intPart)
	if frac != "" {
		out += f.decimal + frac
	}
	if n < 0 && out != "0" {
		out = "-" + out
	}
	return out
}

// Currency formats amount with exactly two fraction digits and the currency symbol.
func (f *Format) Currency(amount float64) string {
	intPart, frac := split(amount)
	num := f.group(intPart) + f.decimal + frac

	var out string
	if f.currencyAfter {
		out = num + " " + f.currency
	} else {
		out = f.currency + num
	}
	if amount < 0 && (intPart != "0" || frac != "00") {
		out = "-" + out
	}
	return out
}

// Layout returns the time package layout for the given date and time styles.
// Either part may be Ignore; with both ignored there is no layout.
func (f *Format) Layout(date, tm Style) (string, bool) {
	switch {
	case date != Ignore && tm != Ignore:
		return f.dateLayout(date) + " " + f.timeLayout(tm), true
	case date != Ignore:
		return f.dateLayout(date), true
	case tm != Ignore:
		return f.timeLayout(tm), true
	default:
		return "", false
	}
}

// DateTime formats t with the given styles, empty when both are Ignore.
func (f *Format) DateTime(t time.Time, date, tm Style) string {
	layout, ok := f.Layout(date, tm)
	if !ok {
		return ""
	}
	return t.Format(layout)
}

// Date formats the date part of t.
func (f *Format) Date(t time.Time, style Style) string {
	return f.DateTime(t, style, Ignore)
}

// Time formats the time-of-day part of t.
func (f *Format) Time(t time.Time, style Style) string {
	return f.DateTime(t, Ignore, style)
}

// Unknown styles fall back to Medium.
func (f *Format) dateLayout(s Style) string {
	if s < Short || s > Full {
		s = Medium
	}
	return f.dateLayouts[s]
}

func (f *Format) timeLayout(s Style) string {
	if s < Short || s > Full {
		s = Medium
	}
	return f.timeLayouts[s]
}

// split rounds |n| to cents and returns the integer digits and the two fraction digits.
func split(n float64) (string, string) {
	s := strconv.FormatFloat(math.Round(math.Abs(n)*100)/100, 'f', 2, 64)
	intPart, frac, _ := strings.Cut(s, ".")
	return intPart, frac
}

func (f *Format) group(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(f.thousand)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
