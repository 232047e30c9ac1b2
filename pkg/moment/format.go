package moment

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/dmitrymomot/babel/pkg/locale"
)

// formattingTokens splits a layout into bracketed literals, escaped
// characters and tokens. Anything else is a single literal character.
var formattingTokens = regexp.MustCompile(`\[[^\[]*\]|\\.|(Mo|MM?M?M?|Do|DDDo|DD?D?D?|ddd?d?|do?|w[o|w]?|W[o|W]?|Qo?|YYYYYY|YYYYY|YYYY|YY|gg(ggg?)?|GG(GGG?)?|e|E|a|A|hh?|HH?|kk?|mm?|ss?|S{1,9}|x|X|zz?|ZZ?|.)`)

// localFormattingTokens finds localized macros outside of literals.
var localFormattingTokens = regexp.MustCompile(`(\[[^\[]*\])|(\\)?(LTS|LT|LL?L?L?|l{1,4})`)

type token struct {
	text    string
	literal bool
}

// tokenize splits an expanded layout into tokens.
func tokenize(layout string) []token {
	parts := formattingTokens.FindAllString(layout, -1)
	out := make([]token, 0, len(parts))
	for _, p := range parts {
		switch {
		case len(p) >= 2 && p[0] == '[' && p[len(p)-1] == ']':
			out = append(out, token{text: p[1 : len(p)-1], literal: true})
		case len(p) >= 2 && p[0] == '\\':
			out = append(out, token{text: p[1:], literal: true})
		default:
			_, known := formatters[p]
			out = append(out, token{text: p, literal: !known})
		}
	}
	return out
}

// expandLayout replaces LT, LTS, L and friends with the locale's layouts.
// Macros may refer to other macros, so expansion runs a few times.
func expandLayout(layout string, loc *locale.Locale) string {
	expand := func(s string) string {
		sub := localFormattingTokens.FindStringSubmatch(s)
		if sub[1] != "" || sub[2] != "" {
			return s
		}
		if f := loc.LongDate(sub[3]); f != "" {
			return f
		}
		return s
	}
	for range 5 {
		if !localFormattingTokens.MatchString(layout) {
			break
		}
		next := localFormattingTokens.ReplaceAllStringFunc(layout, expand)
		if next == layout {
			break
		}
		layout = next
	}
	return layout
}

// Format renders the Moment with a layout made of Moment tokens
// ("dddd, MMMM Do YYYY, h:mm:ss a"). Text in square brackets is copied
// as is. An empty layout uses DefaultFormat. Invalid Moments render as
// the locale's invalid date text.
func (m Moment) Format(layout string) string {
	if !m.valid {
		return m.Locale().InvalidDate
	}
	if layout == "" {
		layout = DefaultFormat
	}

	full := expandLayout(layout, m.Locale())

	var b strings.Builder
	for _, tok := range tokenize(full) {
		if tok.literal {
			b.WriteString(tok.text)
			continue
		}
		b.WriteString(formatters[tok.text](m, full))
	}
	return b.String()
}

type formatFunc func(m Moment, layout string) string

var formatters map[string]formatFunc

func init() {
	ord := func(token string, value func(Moment) int) formatFunc {
		return func(m Moment, _ string) string {
			return m.Locale().Ordinal(value(m), token)
		}
	}
	num := func(width int, value func(Moment) int) formatFunc {
		return func(m Moment, _ string) string {
			return zeroFill(value(m), width, false)
		}
	}
	month := func(m Moment) int { return int(m.Month()) }
	hour12 := func(m Moment) int {
		if h := m.Hour() % 12; h != 0 {
			return h
		}
		return 12
	}
	hour24 := func(m Moment) int {
		if h := m.Hour(); h != 0 {
			return h
		}
		return 24
	}
	localeWeekday := func(m Moment) int {
		return (int(m.Weekday()) + 7 - m.Locale().Week.Dow) % 7
	}
	isoWeekday := func(m Moment) int {
		if d := int(m.Weekday()); d != 0 {
			return d
		}
		return 7
	}
	lastTwo := func(value func(Moment) int) func(Moment) int {
		return func(m Moment) int { return abs(value(m)) % 100 }
	}

	formatters = map[string]formatFunc{
		"Y": func(m Moment, _ string) string {
			if y := m.Year(); y > 9999 {
				return "+" + strconv.Itoa(y)
			}
			return zeroFill(m.Year(), 4, false)
		},
		"YY":     num(2, lastTwo(Moment.Year)),
		"YYYY":   num(4, Moment.Year),
		"YYYYY":  num(5, Moment.Year),
		"YYYYYY": func(m Moment, _ string) string { return zeroFill(m.Year(), 6, true) },

		"Q":  num(1, Moment.Quarter),
		"Qo": ord("Q", Moment.Quarter),

		"M":  num(1, month),
		"Mo": ord("M", month),
		"MM": num(2, month),
		"MMM": func(m Moment, layout string) string {
			return m.Locale().MonthsShort.Name(m.Month(), layout)
		},
		"MMMM": func(m Moment, layout string) string {
			return m.Locale().Months.Name(m.Month(), layout)
		},

		"D":    num(1, Moment.Day),
		"Do":   ord("D", Moment.Day),
		"DD":   num(2, Moment.Day),
		"DDD":  num(1, Moment.DayOfYear),
		"DDDo": ord("DDD", Moment.DayOfYear),
		"DDDD": num(3, Moment.DayOfYear),

		"d":    num(1, func(m Moment) int { return int(m.Weekday()) }),
		"do":   ord("d", func(m Moment) int { return int(m.Weekday()) }),
		"dd":   func(m Moment, _ string) string { return m.Locale().WeekdaysMin[m.Weekday()] },
		"ddd":  func(m Moment, _ string) string { return m.Locale().WeekdaysShort[m.Weekday()] },
		"dddd": func(m Moment, _ string) string { return m.Locale().Weekdays[m.Weekday()] },
		"e":    num(1, localeWeekday),
		"E":    num(1, isoWeekday),

		"w":  num(1, Moment.Week),
		"wo": ord("w", Moment.Week),
		"ww": num(2, Moment.Week),
		"W":  num(1, Moment.ISOWeek),
		"Wo": ord("W", Moment.ISOWeek),
		"WW": num(2, Moment.ISOWeek),

		"gg":    num(2, lastTwo(Moment.WeekYear)),
		"gggg":  num(4, Moment.WeekYear),
		"ggggg": num(5, Moment.WeekYear),
		"GG":    num(2, lastTwo(Moment.ISOWeekYear)),
		"GGGG":  num(4, Moment.ISOWeekYear),
		"GGGGG": num(5, Moment.ISOWeekYear),

		"H":  num(1, Moment.Hour),
		"HH": num(2, Moment.Hour),
		"h":  num(1, hour12),
		"hh": num(2, hour12),
		"k":  num(1, hour24),
		"kk": num(2, hour24),
		"m":  num(1, Moment.Minute),
		"mm": num(2, Moment.Minute),
		"s":  num(1, Moment.Second),
		"ss": num(2, Moment.Second),

		"a": func(m Moment, _ string) string { return m.Locale().Meridiem(m.Hour(), m.Minute(), true) },
		"A": func(m Moment, _ string) string { return m.Locale().Meridiem(m.Hour(), m.Minute(), false) },

		"Z":  func(m Moment, _ string) string { return formatOffset(m.UTCOffset(), ":") },
		"ZZ": func(m Moment, _ string) string { return formatOffset(m.UTCOffset(), "") },
		"z":  Moment.zoneAbbr,
		"zz": Moment.zoneAbbr,

		"X": func(m Moment, _ string) string { return strconv.FormatInt(m.Unix(), 10) },
		"x": func(m Moment, _ string) string { return strconv.FormatInt(m.UnixMilli(), 10) },
	}

	for n := 1; n <= 9; n++ {
		formatters[strings.Repeat("S", n)] = func(m Moment, _ string) string {
			return zeroFill(m.t.Nanosecond(), 9, false)[:n]
		}
	}
}

func (m Moment) zoneAbbr(string) string {
	if m.isUTC {
		return "UTC"
	}
	name, _ := m.t.Zone()
	return name
}

// formatOffset renders minutes east of UTC as "+hh:mm" or "+hhmm".
func formatOffset(offset int, sep string) string {
	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}
	return sign + zeroFill(offset/60, 2, false) + sep + zeroFill(offset%60, 2, false)
}

// zeroFill pads the absolute value of n to width digits and prefixes the
// sign; a "+" is only written when forceSign is set.
func zeroFill(n, width int, forceSign bool) string {
	digits := strconv.Itoa(abs(n))
	if pad := width - len(digits); pad > 0 {
		digits = strings.Repeat("0", pad) + digits
	}
	switch {
	case n < 0:
		return "-" + digits
	case forceSign:
		return "+" + digits
	}
	return digits
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
