// Package format renders numbers, amounts and dates for a resolved locale.
//
// It is deliberately thin: a fixed table of locale conventions, chosen for a
// requested locale with locale.ClosestLocale, so "de_AT" formats like "de_DE" and
// "en_AU" like "en_GB".
//
//	f := format.FromContext(ctx, settings)
//	f.Number(1234.5)                             // "1.234,5" for de_DE
//	f.DateTime(now, format.Medium, format.Short) // "15.03.2024 14:30"
//
// Month and weekday names come from the time package and are English. Locales whose
// long forms would need translated names reuse their Medium layout for Long and Full.
package format
