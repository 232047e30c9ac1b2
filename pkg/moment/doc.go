// Package moment provides an immutable date value with localized
// formatting, forgiving parsing, calendar arithmetic and humanized
// relative times.
//
// A Moment pairs a time.Time with the zone it is displayed in and a
// locale from package locale:
//
//	m, err := moment.Parse("2024-03-10T09:30:00+01:00")
//	m.Format("dddd, MMMM Do YYYY, h:mm a") // "Sunday, March 10th 2024, 9:30 am"
//	m.WithLocale("de").Format("LLLL")      // "Sonntag, 10. März 2024 09:30"
//
// # Invalid Dates
//
// Parsing never panics. Input that cannot be read yields an invalid
// Moment together with an error wrapping ErrInvalidDate. Invalid Moments
// can still be passed around: Format returns the locale's invalid date
// text ("Invalid date"), comparisons are false and Diff is NaN.
//
// # Formatting
//
// Layouts are made of tokens such as YYYY, MMM, Do, HH, A and Z. Text in
// square brackets is copied verbatim, and LT, LTS, L, LL, LLL, LLLL and
// their lowercase forms expand to the locale's layouts.
//
// # Parsing
//
// Parse understands ISO 8601 (calendar, week and ordinal dates, basic and
// extended forms) and RFC 2822. ParseFormat takes a token layout and is
// forgiving unless Strict is given. Input without an offset is read in the
// process local zone, or in the zone chosen with UseLocation or UseZone.
//
// # Arithmetic
//
// Add, Subtract, StartOf, EndOf and Set work in calendar units and keep
// the wall clock across DST changes. Month steps clamp to the end of the
// month. Diff measures months on the calendar.
//
// # Relative Time
//
//	past.FromNow(false)      // "3 days ago"
//	m.Calendar(moment.Now()) // "Yesterday at 9:30 AM"
package moment
