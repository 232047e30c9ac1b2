package locale

import (
	"fmt"
	"maps"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrymomot/babel/pkg/plural"
)

// DefaultInvalidDate is rendered for dates that failed to parse.
const DefaultInvalidDate = "Invalid date"

// Long date format keys.
const (
	LT   = "LT"
	LTS  = "LTS"
	L    = "L"
	LL   = "LL"
	LLL  = "LLL"
	LLLL = "LLLL"
)

var longDateKeys = []string{LT, LTS, L, LL, LLL, LLLL}

// Locale holds the calendar vocabulary of one language: month and weekday
// names, ordinal suffixes, localized layouts and relative time phrases.
// Registered locales are never mutated; Update replaces them with a copy.
type Locale struct {
	Code string

	Months      MonthNames
	MonthsShort MonthNames

	// Weekdays start on Sunday, matching time.Weekday.
	Weekdays      [7]string
	WeekdaysShort [7]string
	WeekdaysMin   [7]string

	// LongDateFormat maps LT, LTS, L, LL, LLL and LLLL to layouts.
	LongDateFormat map[string]string

	Meridiem func(hour, minute int, lower bool) string
	Ordinal  func(n int, token string) string

	RelativeTime RelativeTime
	Calendar     Calendar
	Week         Week
	Plural       plural.Rule

	InvalidDate string
}

// MonthNames keeps the nominative (standalone) and genitive (format) forms
// of month names. Languages without a genitive leave Format empty.
type MonthNames struct {
	Standalone [12]string
	Format     [12]string
}

// Week describes the locale week: Dow is the first day of the week
// (0 = Sunday) and Doy decides which week is the first of the year
// (the week containing January 7+Dow-Doy).
type Week struct {
	Dow int
	Doy int
}

// Calendar holds layouts used by calendar-style rendering
// ("Today at 2:30 PM").
type Calendar struct {
	SameDay  string
	NextDay  string
	NextWeek string
	LastDay  string
	LastWeek string
	SameElse string
}

// Forms maps plural categories to patterns. "%d" is replaced with the count.
type Forms map[string]string

// RelativeTime holds the phrases of humanized durations. Units are keyed
// s, ss, m, mm, h, hh, d, dd, w, ww, M, MM, y and yy. Suffixed overrides
// Units when the phrase is wrapped in Future or Past, for languages whose
// noun changes case after a preposition.
type RelativeTime struct {
	Future string
	Past   string

	Units    map[string]Forms
	Suffixed map[string]Forms
}

// genitiveMonth matches a day token followed by a month name token.
var genitiveMonth = regexp.MustCompile(`D[oD]?(\[[^\[\]]*\]|\s)+MMMM?`)

// Name returns the month name for layout. The genitive form is used when
// the layout places a day before the month ("D MMMM").
func (n MonthNames) Name(m time.Month, layout string) string {
	if m < time.January || m > time.December {
		return ""
	}
	i := int(m) - 1
	if n.Format[i] != "" && genitiveMonth.MatchString(layout) {
		return n.Format[i]
	}
	return n.Standalone[i]
}

// LongDate returns the layout behind a localized format macro. Lowercase
// keys (l, ll, lll, llll) are derived from their uppercase variants with
// shortened month and weekday names.
func (l *Locale) LongDate(key string) string {
	if f, ok := l.LongDateFormat[key]; ok {
		return f
	}
	upper := strings.ToUpper(key)
	f, ok := l.LongDateFormat[upper]
	if !ok || upper == key {
		return ""
	}
	return shortenLayout(f)
}

// shortenLayout drops one letter from MMMM, MM, DD and dddd outside of
// bracketed literals.
func shortenLayout(layout string) string {
	var b strings.Builder
	for i := 0; i < len(layout); {
		if layout[i] == '[' {
			end := strings.IndexByte(layout[i:], ']')
			if end < 0 {
				b.WriteString(layout[i:])
				break
			}
			b.WriteString(layout[i : i+end+1])
			i += end + 1
			continue
		}
		matched := false
		for _, tok := range []string{"MMMM", "dddd", "MM", "DD"} {
			if strings.HasPrefix(layout[i:], tok) {
				b.WriteString(tok[1:])
				i += len(tok)
				matched = true
				break
			}
		}
		if !matched {
			b.WriteByte(layout[i])
			i++
		}
	}
	return b.String()
}

// FormatRelative renders n units as a relative phrase. key is a unit key
// such as "mm" or "d"; withoutSuffix omits the Future/Past wrapper.
func (l *Locale) FormatRelative(n int, key string, withoutSuffix, future bool) string {
	forms, ok := l.RelativeTime.Units[key]
	if !withoutSuffix {
		if s, found := l.RelativeTime.Suffixed[key]; found {
			forms, ok = s, true
		}
	}
	if !ok {
		return strconv.Itoa(n)
	}

	s := strings.ReplaceAll(l.pick(forms, n), "%d", strconv.Itoa(n))
	if withoutSuffix {
		return s
	}
	wrapper := l.RelativeTime.Past
	if future {
		wrapper = l.RelativeTime.Future
	}
	if wrapper == "" {
		return s
	}
	return strings.ReplaceAll(wrapper, "%s", s)
}

func (l *Locale) pick(forms Forms, n int) string {
	rule := l.Plural
	if rule == nil {
		rule = plural.Default
	}
	if s, ok := forms[rule(n)]; ok {
		return s
	}
	return forms[plural.Other]
}

// CalendarFormat returns the calendar layout for a day difference between
// a date and the reference date, as moment does: less than -6 days or
// more than 6 days renders SameElse.
func (l *Locale) CalendarFormat(diffDays float64) string {
	switch {
	case diffDays < -6:
		return l.Calendar.SameElse
	case diffDays < -1:
		return l.Calendar.LastWeek
	case diffDays < 0:
		return l.Calendar.LastDay
	case diffDays < 1:
		return l.Calendar.SameDay
	case diffDays < 2:
		return l.Calendar.NextDay
	case diffDays < 7:
		return l.Calendar.NextWeek
	default:
		return l.Calendar.SameElse
	}
}

// Clone returns a deep copy of the locale.
func (l *Locale) Clone() *Locale {
	c := *l
	c.LongDateFormat = maps.Clone(l.LongDateFormat)
	c.RelativeTime.Units = cloneForms(l.RelativeTime.Units)
	c.RelativeTime.Suffixed = cloneForms(l.RelativeTime.Suffixed)
	return &c
}

func cloneForms(src map[string]Forms) map[string]Forms {
	if src == nil {
		return nil
	}
	out := make(map[string]Forms, len(src))
	for k, f := range src {
		out[k] = maps.Clone(f)
	}
	return out
}

// validate fills optional fields with defaults and rejects incomplete
// definitions.
func (l *Locale) validate() error {
	if l.Code == "" {
		return ErrEmptyCode
	}
	for i, name := range l.Months.Standalone {
		if name == "" {
			return fmt.Errorf("%w: %s: month %d has no name", ErrInvalidLocale, l.Code, i+1)
		}
	}
	if l.MonthsShort.Standalone[0] == "" {
		l.MonthsShort = l.Months
	}
	for i, name := range l.Weekdays {
		if name == "" {
			return fmt.Errorf("%w: %s: weekday %d has no name", ErrInvalidLocale, l.Code, i)
		}
	}
	if l.WeekdaysShort[0] == "" {
		l.WeekdaysShort = l.Weekdays
	}
	if l.WeekdaysMin[0] == "" {
		l.WeekdaysMin = l.WeekdaysShort
	}
	for _, key := range longDateKeys {
		if l.LongDateFormat[key] == "" {
			return fmt.Errorf("%w: %s: missing long date format %s", ErrInvalidLocale, l.Code, key)
		}
	}
	if l.Week.Dow < 0 || l.Week.Dow > 6 || l.Week.Doy < 0 || l.Week.Doy > 12 {
		return fmt.Errorf("%w: %s: week dow/doy out of range", ErrInvalidLocale, l.Code)
	}
	if l.Meridiem == nil {
		l.Meridiem = englishMeridiem
	}
	if l.Ordinal == nil {
		l.Ordinal = plainOrdinal
	}
	if l.Plural == nil {
		l.Plural = plural.ForLanguage(l.Code)
	}
	if l.InvalidDate == "" {
		l.InvalidDate = DefaultInvalidDate
	}
	if l.Calendar.SameElse == "" {
		l.Calendar.SameElse = L
	}
	return nil
}

func englishMeridiem(hour, _ int, lower bool) string {
	if hour < 12 {
		if lower {
			return "am"
		}
		return "AM"
	}
	if lower {
		return "pm"
	}
	return "PM"
}

func plainOrdinal(n int, _ string) string {
	return strconv.Itoa(n)
}
