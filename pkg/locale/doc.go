// Package locale provides the calendar vocabulary used to format dates:
// month and weekday names, ordinal suffixes, meridiem labels, localized
// layouts, relative time phrases and week settings.
//
// Built-in locales (en, en-gb, de, fr, es, pt-br, ru, pl, ja) are loaded
// into a process-wide registry. Lookups normalize the code and fall back
// to the base language, then to "en":
//
//	l := locale.Get("de-AT")         // "de"
//	l.Months.Name(time.March, "MMMM") // "März"
//	l.Ordinal(3, "D")                 // "3."
//
// Languages with a genitive month form pick it when the layout puts a day
// before the month:
//
//	ru := locale.Get("ru")
//	ru.Months.Name(time.May, "MMMM")   // "май"
//	ru.Months.Name(time.May, "D MMMM") // "мая"
//
// Custom locales are added with Register and adjusted with Update:
//
//	err := locale.Update("en", func(l *locale.Locale) {
//		l.Calendar.SameDay = "[Today,] LT"
//	})
//
// Registered locales are immutable; Update stores a modified copy.
package locale
