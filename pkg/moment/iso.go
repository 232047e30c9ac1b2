package moment

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/dmitrymomot/babel/pkg/tz"
)

var (
	extendedISO = regexp.MustCompile(`^\s*((?:[+-]\d{6}|\d{4})-(?:\d\d-\d\d|W\d\d-\d|W\d\d|\d\d\d|\d\d))(?:(T| )(\d\d(?::\d\d(?::\d\d(?:[.,]\d+)?)?)?)([+-]\d\d(?::?\d\d)?|\s*Z)?)?$`)
	basicISO    = regexp.MustCompile(`^\s*((?:[+-]\d{6}|\d{4})(?:\d\d\d\d|W\d\d\d|W\d\d|\d\d\d|\d\d|))(?:(T| )(\d\d(?:\d\d(?:\d\d(?:[.,]\d+)?)?)?)([+-]\d\d(?::?\d\d)?|\s*Z)?)?$`)
	isoTZ       = regexp.MustCompile(`Z|[+-]\d\d(?::?\d\d)?`)
)

type isoLayout struct {
	layout    string
	re        *regexp.Regexp
	allowTime bool
}

// Tried in order; the first match wins.
var isoDates = []isoLayout{
	{"YYYYYY-MM-DD", regexp.MustCompile(`[+-]\d{6}-\d\d-\d\d`), true},
	{"YYYY-MM-DD", regexp.MustCompile(`\d{4}-\d\d-\d\d`), true},
	{"GGGG-[W]WW-E", regexp.MustCompile(`\d{4}-W\d\d-\d`), true},
	{"GGGG-[W]WW", regexp.MustCompile(`\d{4}-W\d\d`), false},
	{"YYYY-DDD", regexp.MustCompile(`\d{4}-\d{3}`), true},
	{"YYYY-MM", regexp.MustCompile(`\d{4}-\d\d`), false},
	{"YYYYYYMMDD", regexp.MustCompile(`[+-]\d{10}`), true},
	{"YYYYMMDD", regexp.MustCompile(`\d{8}`), true},
	{"GGGG[W]WWE", regexp.MustCompile(`\d{4}W\d{3}`), true},
	{"GGGG[W]WW", regexp.MustCompile(`\d{4}W\d{2}`), false},
	{"YYYYDDD", regexp.MustCompile(`\d{7}`), true},
	{"YYYYMM", regexp.MustCompile(`\d{6}`), false},
	{"YYYY", regexp.MustCompile(`\d{4}`), false},
}

var isoTimes = []isoLayout{
	{"HH:mm:ss.SSSS", regexp.MustCompile(`\d\d:\d\d:\d\d\.\d+`), true},
	{"HH:mm:ss,SSSS", regexp.MustCompile(`\d\d:\d\d:\d\d,\d+`), true},
	{"HH:mm:ss", regexp.MustCompile(`\d\d:\d\d:\d\d`), true},
	{"HH:mm", regexp.MustCompile(`\d\d:\d\d`), true},
	{"HHmmss.SSSS", regexp.MustCompile(`\d\d\d\d\d\d\.\d+`), true},
	{"HHmmss,SSSS", regexp.MustCompile(`\d\d\d\d\d\d,\d+`), true},
	{"HHmmss", regexp.MustCompile(`\d\d\d\d\d\d`), true},
	{"HHmm", regexp.MustCompile(`\d\d\d\d`), true},
	{"HH", regexp.MustCompile(`\d\d`), true},
}

// Parse reads an ISO 8601 string ("2024-03-10", "2024-W10-7",
// "2024-070T09:30:00.5+01:00") or, failing that, an RFC 2822 date
// ("Sun, 10 Mar 2024 09:30:00 GMT"). Anything else yields an invalid
// Moment and an error wrapping ErrInvalidDate.
func Parse(s string, opts ...ParseOption) (Moment, error) {
	cfg := newParseConfig(opts)
	if layout, ok := isoLayoutFor(s); ok {
		return parseFormat(s, layout, cfg)
	}
	if m, ok := parseRFC2822(s, cfg); ok {
		return m, nil
	}
	return invalid(cfg), fmt.Errorf("%w: %q is neither ISO 8601 nor RFC 2822", ErrInvalidDate, s)
}

// ParseIn parses s like Parse and reads wall clock input in zone. Input
// carrying its own offset is converted to zone.
func ParseIn(s string, zone *tz.Zone, opts ...ParseOption) (Moment, error) {
	if zone == nil {
		return Invalid(), ErrNilZone
	}
	return Parse(s, append(opts, UseZone(zone))...)
}

// isoLayoutFor returns the token layout matching an ISO 8601 string.
func isoLayoutFor(s string) (string, bool) {
	match := extendedISO.FindStringSubmatch(s)
	if match == nil {
		match = basicISO.FindStringSubmatch(s)
	}
	if match == nil {
		return "", false
	}

	var date *isoLayout
	for i := range isoDates {
		if isoDates[i].re.MatchString(match[1]) {
			date = &isoDates[i]
			break
		}
	}
	if date == nil {
		return "", false
	}
	layout := date.layout

	if match[3] != "" {
		if !date.allowTime {
			return "", false
		}
		sep := match[2]
		if sep == "" {
			sep = " "
		}
		found := false
		for _, t := range isoTimes {
			if t.re.MatchString(match[3]) {
				layout += sep + t.layout
				found = true
				break
			}
		}
		if !found {
			return "", false
		}
	}

	if match[4] != "" {
		if !isoTZ.MatchString(match[4]) {
			return "", false
		}
		layout += "Z"
	}
	return layout, true
}

var (
	rfc2822 = regexp.MustCompile(`^(?:(Mon|Tue|Wed|Thu|Fri|Sat|Sun),?\s)?(\d{1,2})\s(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)\s(\d{2,4})\s(\d\d):(\d\d)(?::(\d\d))?\s(?:(UT|GMT|[ECMP][SD]T)|([A-IK-Za-ik-z])|([+-]\d{4}))$`)

	rfcComments = regexp.MustCompile(`\([^)]*\)|[\n\t]`)
	rfcSpaces   = regexp.MustCompile(`\s\s+`)

	rfcWeekdays = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	rfcMonths   = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

	// Obsolete zone names, minutes east.
	obsOffsets = map[string]int{
		"UT": 0, "GMT": 0,
		"EDT": -4 * 60, "EST": -5 * 60,
		"CDT": -5 * 60, "CST": -6 * 60,
		"MDT": -6 * 60, "MST": -7 * 60,
		"PDT": -7 * 60, "PST": -8 * 60,
	}
)

// parseRFC2822 reads an RFC 2822 date. Comments are ignored, two and three
// digit years are widened (49 and below to the 2000s), and military zone
// letters are taken as UTC.
func parseRFC2822(s string, cfg *parseConfig) (Moment, bool) {
	s = rfcComments.ReplaceAllString(s, " ")
	s = strings.TrimSpace(rfcSpaces.ReplaceAllString(s, " "))

	match := rfc2822.FindStringSubmatch(s)
	if match == nil {
		return Moment{}, false
	}

	year := toInt(match[4])
	switch {
	case year <= 49:
		year += 2000
	case year <= 999:
		year += 1900
	}

	p := &parsed{hasOffset: true}
	p.setField(fYear, year)
	p.setField(fMonth, indexOf(rfcMonths, match[3]))
	p.setField(fDay, toInt(match[2]))
	p.setField(fHour, toInt(match[5]))
	p.setField(fMinute, toInt(match[6]))
	if match[7] != "" {
		p.setField(fSecond, toInt(match[7]))
	}
	switch {
	case match[8] != "":
		p.offset = obsOffsets[match[8]]
	case match[9] != "":
		p.offset = 0
	default:
		p.offset = parseOffset(match[10])
	}

	m, err := build(p, cfg, s)
	if err != nil {
		return Moment{}, false
	}
	if match[1] != "" {
		// The weekday is checked against the written date, not the instant.
		written := time.Date(year, time.Month(p.fields[fMonth]+1), p.fields[fDay], 0, 0, 0, 0, time.UTC)
		if int(written.Weekday()) != indexOf(rfcWeekdays, match[1]) {
			return Moment{}, false
		}
	}
	return m, true
}

func indexOf(list []string, s string) int {
	for i, v := range list {
		if v == s {
			return i
		}
	}
	return -1
}
