package moment

import (
	"fmt"
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/dmitrymomot/babel/pkg/locale"
	"github.com/dmitrymomot/babel/pkg/tz"
)

// ParseOption configures parsing.
type ParseOption func(*parseConfig)

type parseConfig struct {
	strict      bool
	loc         *locale.Locale
	location    *time.Location
	hasLocation bool
	zone        *tz.Zone
}

// Strict requires the input to match the layout exactly: no skipped
// characters, no unmatched tokens.
func Strict() ParseOption {
	return func(c *parseConfig) { c.strict = true }
}

// UseLocale parses month and weekday names, meridiems and ordinals with
// the locale for code. The result carries that locale.
func UseLocale(code string) ParseOption {
	return func(c *parseConfig) { c.loc = locale.Get(code) }
}

// UseLocation reads wall clock input without an offset in loc and
// displays every result there. The process local zone is used otherwise.
func UseLocation(loc *time.Location) ParseOption {
	return func(c *parseConfig) {
		if loc != nil {
			c.location = loc
			c.hasLocation = true
		}
	}
}

// UseZone reads wall clock input without an offset in a tz zone and
// displays the result there.
func UseZone(z *tz.Zone) ParseOption {
	return func(c *parseConfig) { c.zone = z }
}

func newParseConfig(opts []ParseOption) *parseConfig {
	c := &parseConfig{location: time.Local}
	for _, opt := range opts {
		opt(c)
	}
	if c.loc == nil {
		c.loc = DefaultLocale()
	}
	return c
}

// Indexes into parsed.fields.
const (
	fYear = iota
	fMonth
	fDay
	fHour
	fMinute
	fSecond
	fNano
)

// parsed collects what the tokens of a layout found in the input.
type parsed struct {
	fields [7]int
	set    [7]bool

	dayOfYear    int
	hasDayOfYear bool
	week         map[string]int

	offset    int
	hasOffset bool

	instant    time.Time
	hasInstant bool

	meridiem    bool
	isPM        bool
	bigHour     bool
	matched     bool
	badName     bool
	unusedToken bool
	leftover    int
}

func (p *parsed) setField(i, v int) {
	p.fields[i] = v
	p.set[i] = true
}

func (p *parsed) setWeek(key string, v int) {
	if p.week == nil {
		p.week = make(map[string]int)
	}
	p.week[key] = v
}

// ParseFormat parses s with a layout of Moment tokens, the same tokens
// Format writes. Parsing is forgiving by default: each token is searched
// for in the rest of the input, and characters in between are skipped.
// With Strict the input has to match the layout exactly.
//
// Input with an offset ("Z", "+02:00") keeps that offset for display
// unless a location or zone option is given. The returned Moment is
// invalid when parsing fails, and the error wraps ErrInvalidDate.
func ParseFormat(s, layout string, opts ...ParseOption) (Moment, error) {
	cfg := newParseConfig(opts)
	return parseFormat(s, layout, cfg)
}

// ParseFormats tries each layout in order and returns the first valid
// result.
func ParseFormats(s string, layouts []string, opts ...ParseOption) (Moment, error) {
	cfg := newParseConfig(opts)
	var lastErr error
	for _, layout := range layouts {
		m, err := parseFormat(s, layout, cfg)
		if err == nil {
			return m, nil
		}
		lastErr = err
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("%w: no layouts", ErrInvalidDate)
	}
	return invalid(cfg), lastErr
}

func parseFormat(s, layout string, cfg *parseConfig) (Moment, error) {
	p := &parsed{}
	rest := s
	consumed := 0
	parsers := parsersFor(cfg.loc)

	for _, tok := range tokenize(expandLayout(layout, cfg.loc)) {
		var re *regexp.Regexp
		var tp *tokenParser
		if tok.literal {
			re = literalRegexp(tok.text)
		} else if tp = parsers.get(tok.text); tp != nil {
			re = tp.lenient
			if cfg.strict && tp.strict != nil {
				re = tp.strict
			}
		}

		var input string
		if re != nil {
			if loc := re.FindStringIndex(rest); loc != nil && loc[1] > loc[0] {
				input = rest[loc[0]:loc[1]]
				rest = rest[loc[1]:]
				consumed += len(input)
			}
		}

		switch {
		case tok.literal:
			if cfg.strict && input == "" && tok.text != "" {
				p.unusedToken = true
			}
		case input == "":
			p.unusedToken = true
		default:
			p.matched = true
			tp.apply(p, input, parsers)
		}
	}
	p.leftover = len(s) - consumed

	if !p.matched {
		return invalid(cfg), fmt.Errorf("%w: %q does not match %q", ErrInvalidDate, s, layout)
	}
	if cfg.strict && (p.leftover > 0 || p.unusedToken) {
		return invalid(cfg), fmt.Errorf("%w: %q does not strictly match %q", ErrInvalidDate, s, layout)
	}
	if p.badName {
		return invalid(cfg), fmt.Errorf("%w: %q has an unknown month or weekday name", ErrInvalidDate, s)
	}

	if p.bigHour && p.fields[fHour] > 0 && p.fields[fHour] <= 12 {
		p.bigHour = false
	}
	if cfg.strict && p.bigHour {
		return invalid(cfg), fmt.Errorf("%w: %q: 12-hour clock out of range", ErrInvalidDate, s)
	}
	if p.meridiem {
		switch h := p.fields[fHour]; {
		case p.isPM && h < 12:
			p.fields[fHour] = h + 12
		case !p.isPM && h == 12:
			p.fields[fHour] = 0
		}
	}
	return build(p, cfg, s)
}

// build turns parsed fields into a Moment, filling missing date parts
// from the current date and rejecting overflowing fields.
func build(p *parsed, cfg *parseConfig, s string) (Moment, error) {
	if p.hasInstant {
		return display(p.instant, cfg, false), nil
	}

	nowIn := cfg.location
	if p.hasOffset {
		nowIn = time.FixedZone("", p.offset*60)
	}
	now := time.Now().In(nowIn)
	if !p.hasOffset && cfg.zone != nil {
		now = cfg.zone.In(now)
	}

	fromWeek := p.week != nil && !p.set[fDay] && !p.set[fMonth]
	if fromWeek {
		if err := p.resolveWeek(cfg.loc.Week, now); err != nil {
			return invalid(cfg), fmt.Errorf("%w: %q: %w", ErrInvalidDate, s, err)
		}
	}

	if p.hasDayOfYear {
		year := now.Year()
		if p.set[fYear] {
			year = p.fields[fYear]
		}
		if p.dayOfYear < 1 || p.dayOfYear > daysInYear(year) {
			return invalid(cfg), fmt.Errorf("%w: %q: day of year out of range", ErrInvalidDate, s)
		}
		d := time.Date(year, time.January, p.dayOfYear, 0, 0, 0, 0, time.UTC)
		p.setField(fMonth, int(d.Month())-1)
		p.setField(fDay, d.Day())
	}

	// Missing leading date parts come from today; the rest default to the
	// start of their range.
	current := [3]int{now.Year(), int(now.Month()) - 1, now.Day()}
	i := 0
	for ; i < 3 && !p.set[i]; i++ {
		p.fields[i] = current[i]
	}
	for ; i < 7; i++ {
		if !p.set[i] {
			p.fields[i] = 0
			if i == fDay {
				p.fields[i] = 1
			}
		}
	}

	f := p.fields
	switch {
	case f[fMonth] < 0 || f[fMonth] > 11:
		return invalid(cfg), fmt.Errorf("%w: %q: month out of range", ErrInvalidDate, s)
	case f[fDay] < 1 || f[fDay] > daysIn(f[fYear], time.Month(f[fMonth]+1)):
		return invalid(cfg), fmt.Errorf("%w: %q: day out of range", ErrInvalidDate, s)
	case f[fHour] < 0 || f[fHour] > 24 || f[fHour] == 24 && (f[fMinute] != 0 || f[fSecond] != 0 || f[fNano] != 0):
		return invalid(cfg), fmt.Errorf("%w: %q: hour out of range", ErrInvalidDate, s)
	case f[fMinute] < 0 || f[fMinute] > 59:
		return invalid(cfg), fmt.Errorf("%w: %q: minute out of range", ErrInvalidDate, s)
	case f[fSecond] < 0 || f[fSecond] > 59:
		return invalid(cfg), fmt.Errorf("%w: %q: second out of range", ErrInvalidDate, s)
	}

	// 24:00 is midnight at the end of the day.
	nextDay := f[fHour] == 24
	if nextDay {
		f[fHour] = 0
	}

	var t time.Time
	month := time.Month(f[fMonth] + 1)
	switch {
	case p.hasOffset:
		t = time.Date(f[fYear], month, f[fDay], f[fHour], f[fMinute], f[fSecond], f[fNano], time.FixedZone("", p.offset*60))
	case cfg.zone != nil:
		t = cfg.zone.Date(f[fYear], month, f[fDay], f[fHour], f[fMinute], f[fSecond], f[fNano])
	default:
		t = time.Date(f[fYear], month, f[fDay], f[fHour], f[fMinute], f[fSecond], f[fNano], cfg.location)
	}

	if wd, ok := p.week["d"]; ok && !fromWeek && int(t.Weekday()) != wd {
		return invalid(cfg), fmt.Errorf("%w: %q: weekday does not match the date", ErrInvalidDate, s)
	}

	m := display(t, cfg, p.hasOffset)
	if nextDay {
		m = m.Add(1, Day)
	}
	return m, nil
}

// resolveWeek converts week tokens (w, W, gg, GG, d, e, E) into a year
// and a day of year.
func (p *parsed) resolveWeek(lw locale.Week, now time.Time) error {
	w := p.week
	var dow, doy, weekYear, week, weekday int

	_, isoGG := w["GG"]
	_, isoW := w["W"]
	_, isoE := w["E"]
	if isoGG || isoW || isoE {
		dow, doy = 1, 4
		_, curYear := weekOfYear(now, 1, 4)
		weekYear = valueOr(w, "GG", p.yearOr(curYear))
		week = valueOr(w, "W", 1)
		weekday = valueOr(w, "E", 1)
		if weekday < 1 || weekday > 7 {
			return fmt.Errorf("iso weekday %d out of range", weekday)
		}
	} else {
		dow, doy = lw.Dow, lw.Doy
		curWeek, curYear := weekOfYear(now, dow, doy)
		weekYear = valueOr(w, "gg", p.yearOr(curYear))
		week = valueOr(w, "w", curWeek)
		switch {
		case hasKey(w, "d"):
			weekday = w["d"]
			if weekday < 0 || weekday > 6 {
				return fmt.Errorf("weekday %d out of range", weekday)
			}
		case hasKey(w, "e"):
			if w["e"] < 0 || w["e"] > 6 {
				return fmt.Errorf("locale weekday %d out of range", w["e"])
			}
			weekday = w["e"] + dow
		default:
			weekday = dow
		}
	}

	if week < 1 || week > weeksInYear(weekYear, dow, doy) {
		return fmt.Errorf("week %d out of range", week)
	}
	year, dayOfYear := dayOfYearFromWeeks(weekYear, week, weekday, dow, doy)
	p.setField(fYear, year)
	p.dayOfYear = dayOfYear
	p.hasDayOfYear = true
	return nil
}

func (p *parsed) yearOr(def int) int {
	if p.set[fYear] {
		return p.fields[fYear]
	}
	return def
}

func valueOr(m map[string]int, key string, def int) int {
	if v, ok := m[key]; ok {
		return v
	}
	return def
}

func hasKey(m map[string]int, key string) bool {
	_, ok := m[key]
	return ok
}

// display applies the parse options to a parsed instant.
func display(t time.Time, cfg *parseConfig, keepOffset bool) Moment {
	m := New(t)
	m.loc = cfg.loc
	switch {
	case cfg.zone != nil:
		return m.Tz(cfg.zone)
	case keepOffset && !cfg.hasLocation:
		_, offset := t.Zone()
		m.isUTC = offset == 0
		return m
	}
	return m.In(cfg.location)
}

func invalid(cfg *parseConfig) Moment {
	return Moment{loc: cfg.loc}
}

var literalCache sync.Map

func literalRegexp(text string) *regexp.Regexp {
	if re, ok := literalCache.Load(text); ok {
		return re.(*regexp.Regexp)
	}
	re := regexp.MustCompile(regexp.QuoteMeta(text))
	literalCache.Store(text, re)
	return re
}

// tokenParser matches a token in the input and stores what it found.
type tokenParser struct {
	lenient *regexp.Regexp
	strict  *regexp.Regexp
	apply   func(p *parsed, input string, lp *localeParsers)
}

const (
	match1           = `\d`
	match2           = `\d\d`
	match3           = `\d{3}`
	match4           = `\d{4}`
	match6           = `[+-]?\d{6}`
	match1to2        = `\d\d?`
	match1to3        = `\d{1,3}`
	match1to4        = `\d{1,4}`
	match1to6        = `[+-]?\d{1,6}`
	matchUnsigned    = `\d+`
	matchSigned      = `[+-]?\d+`
	matchShortOffset = `(?i)Z|[+-]\d\d(?::?\d\d)?`
	matchTimestamp   = `[+-]?\d+(\.\d{1,3})?`
)

var tokenParsers map[string]*tokenParser

func init() {
	tp := func(lenient, strict string, apply func(*parsed, string, *localeParsers)) *tokenParser {
		t := &tokenParser{lenient: regexp.MustCompile(lenient), apply: apply}
		if strict != "" {
			t.strict = regexp.MustCompile(strict)
		}
		return t
	}
	field := func(i int) func(*parsed, string, *localeParsers) {
		return func(p *parsed, in string, _ *localeParsers) { p.setField(i, toInt(in)) }
	}
	week := func(key string) func(*parsed, string, *localeParsers) {
		return func(p *parsed, in string, _ *localeParsers) { p.setWeek(key, toInt(in)) }
	}
	twoDigitWeekYear := func(key string) func(*parsed, string, *localeParsers) {
		return func(p *parsed, in string, _ *localeParsers) { p.setWeek(key, parseTwoDigitYear(in)) }
	}
	month := func(p *parsed, in string, _ *localeParsers) { p.setField(fMonth, toInt(in)-1) }
	hour12 := func(p *parsed, in string, _ *localeParsers) {
		p.setField(fHour, toInt(in))
		p.bigHour = true
	}
	dayOfYear := func(p *parsed, in string, _ *localeParsers) {
		p.dayOfYear = toInt(in)
		p.hasDayOfYear = true
	}
	fraction := func(p *parsed, in string, _ *localeParsers) {
		digits := (in + "000000000")[:9]
		p.setField(fNano, toInt(digits))
	}
	offset := func(p *parsed, in string, _ *localeParsers) {
		p.offset = parseOffset(in)
		p.hasOffset = true
	}

	tokenParsers = map[string]*tokenParser{
		"Y": tp(matchSigned, "", field(fYear)),
		"YY": tp(match1to2, match2, func(p *parsed, in string, _ *localeParsers) {
			p.setField(fYear, parseTwoDigitYear(in))
		}),
		"YYYY": tp(match1to4, match4, func(p *parsed, in string, _ *localeParsers) {
			if len(in) == 2 {
				p.setField(fYear, parseTwoDigitYear(in))
				return
			}
			p.setField(fYear, toInt(in))
		}),
		"YYYYY":  tp(match1to6, match6, field(fYear)),
		"YYYYYY": tp(match1to6, match6, field(fYear)),

		"Q": tp(match1, "", func(p *parsed, in string, _ *localeParsers) {
			p.setField(fMonth, (toInt(in)-1)*3)
		}),

		"M":  tp(match1to2, "", month),
		"MM": tp(match1to2, match2, month),

		"D":    tp(match1to2, "", field(fDay)),
		"DD":   tp(match1to2, match2, field(fDay)),
		"DDD":  tp(match1to3, "", dayOfYear),
		"DDDD": tp(match3, "", dayOfYear),

		"d": tp(match1, "", week("d")),
		"e": tp(match1, "", week("e")),
		"E": tp(match1, "", week("E")),

		"w":  tp(match1to2, "", week("w")),
		"ww": tp(match1to2, match2, week("w")),
		"W":  tp(match1to2, "", week("W")),
		"WW": tp(match1to2, match2, week("W")),

		"gg":    tp(match1to2, match2, twoDigitWeekYear("gg")),
		"gggg":  tp(match1to4, match4, week("gg")),
		"ggggg": tp(match1to6, match6, week("gg")),
		"GG":    tp(match1to2, match2, twoDigitWeekYear("GG")),
		"GGGG":  tp(match1to4, match4, week("GG")),
		"GGGGG": tp(match1to6, match6, week("GG")),

		"H":  tp(match1to2, "", field(fHour)),
		"HH": tp(match1to2, match2, field(fHour)),
		"k":  tp(match1to2, "", field(fHour)),
		"kk": tp(match1to2, match2, field(fHour)),
		"h":  tp(match1to2, "", hour12),
		"hh": tp(match1to2, match2, hour12),
		"m":  tp(match1to2, "", field(fMinute)),
		"mm": tp(match1to2, match2, field(fMinute)),
		"s":  tp(match1to2, "", field(fSecond)),
		"ss": tp(match1to2, match2, field(fSecond)),

		"S":   tp(match1to3, match1, fraction),
		"SS":  tp(match1to3, match2, fraction),
		"SSS": tp(match1to3, match3, fraction),

		"Z":  tp(matchShortOffset, "", offset),
		"ZZ": tp(matchShortOffset, "", offset),

		"X": tp(matchTimestamp, "", func(p *parsed, in string, _ *localeParsers) {
			sec, _ := strconv.ParseFloat(in, 64)
			p.instant = time.UnixMilli(int64(math.Round(sec * 1000)))
			p.hasInstant = true
		}),
		"x": tp(matchSigned, "", func(p *parsed, in string, _ *localeParsers) {
			ms, _ := strconv.ParseInt(in, 10, 64)
			p.instant = time.UnixMilli(ms)
			p.hasInstant = true
		}),
	}
	for n := 4; n <= 9; n++ {
		tokenParsers[strings.Repeat("S", n)] = tp(matchUnsigned, "", fraction)
	}
}

// localeParsers holds the name based token parsers of one locale.
type localeParsers struct {
	loc    *locale.Locale
	tokens map[string]*tokenParser

	months    map[string]int
	weekdays  map[string]int
	meridiems map[string]bool
}

func (lp *localeParsers) get(token string) *tokenParser {
	if t, ok := lp.tokens[token]; ok {
		return t
	}
	return tokenParsers[token]
}

var localeParserCache sync.Map

func parsersFor(loc *locale.Locale) *localeParsers {
	if lp, ok := localeParserCache.Load(loc); ok {
		return lp.(*localeParsers)
	}
	lp := newLocaleParsers(loc)
	actual, _ := localeParserCache.LoadOrStore(loc, lp)
	return actual.(*localeParsers)
}

func newLocaleParsers(loc *locale.Locale) *localeParsers {
	lp := &localeParsers{
		loc:       loc,
		months:    make(map[string]int),
		weekdays:  make(map[string]int),
		meridiems: make(map[string]bool),
	}

	var long, short []string
	for i := range 12 {
		for _, name := range []string{loc.Months.Standalone[i], loc.Months.Format[i]} {
			if name != "" {
				long = append(long, name)
				lp.months[strings.ToLower(name)] = i
			}
		}
		for _, name := range []string{loc.MonthsShort.Standalone[i], loc.MonthsShort.Format[i]} {
			if name != "" {
				short = append(short, name)
				lp.months[strings.ToLower(name)] = i
			}
		}
	}
	for i := range 7 {
		for _, name := range []string{loc.Weekdays[i], loc.WeekdaysShort[i], loc.WeekdaysMin[i]} {
			lp.weekdays[strings.ToLower(name)] = i
		}
	}

	// The meridiem is PM when the earliest hour producing it is after noon.
	firstHour := make(map[string]int)
	var meridiems []string
	for h := 23; h >= 0; h-- {
		for _, minute := range []int{0, 30} {
			for _, lower := range []bool{false, true} {
				s := loc.Meridiem(h, minute, lower)
				if s == "" {
					continue
				}
				key := strings.ToLower(s)
				if _, seen := firstHour[key]; !seen {
					meridiems = append(meridiems, s)
				}
				firstHour[key] = h
			}
		}
	}
	for key, h := range firstHour {
		lp.meridiems[key] = h >= 12
	}
	meridiemRe := `(?i)` + alternation(meridiems)
	if loc.Meridiem(0, 0, true) == "am" {
		meridiemRe += `|[ap]\.?m?\.?`
	}

	monthApply := func(p *parsed, in string, lp *localeParsers) {
		if i, ok := lp.months[strings.ToLower(in)]; ok {
			p.setField(fMonth, i)
			return
		}
		p.badName = true
	}
	weekdayApply := func(p *parsed, in string, lp *localeParsers) {
		if i, ok := lp.weekdays[strings.ToLower(in)]; ok {
			p.setWeek("d", i)
			return
		}
		p.badName = true
	}
	meridiemApply := func(p *parsed, in string, lp *localeParsers) {
		p.meridiem = true
		if pm, ok := lp.meridiems[strings.ToLower(in)]; ok {
			p.isPM = pm
			return
		}
		p.isPM = strings.HasPrefix(strings.ToLower(in), "p")
	}
	anchored := func(names ...[]string) *regexp.Regexp {
		return regexp.MustCompile(`(?i)^(?:` + alternation(slices.Concat(names...)) + `)`)
	}
	weekdays := func(names [7]string) []string { return names[:] }

	ordinal := regexp.MustCompile(ordinalPattern(loc, false))
	ordinalStrict := regexp.MustCompile(ordinalPattern(loc, true))

	meridiemParser := &tokenParser{lenient: regexp.MustCompile(meridiemRe), apply: meridiemApply}
	allWeekdays := anchored(weekdays(loc.Weekdays), weekdays(loc.WeekdaysShort), weekdays(loc.WeekdaysMin))

	lp.tokens = map[string]*tokenParser{
		"MMM":  {lenient: anchored(long, short), strict: anchored(short), apply: monthApply},
		"MMMM": {lenient: anchored(long, short), strict: anchored(long), apply: monthApply},
		"dd":   {lenient: allWeekdays, strict: anchored(weekdays(loc.WeekdaysMin)), apply: weekdayApply},
		"ddd":  {lenient: allWeekdays, strict: anchored(weekdays(loc.WeekdaysShort)), apply: weekdayApply},
		"dddd": {lenient: allWeekdays, strict: anchored(weekdays(loc.Weekdays)), apply: weekdayApply},
		"a":    meridiemParser,
		"A":    meridiemParser,
		"Do": {lenient: ordinal, strict: ordinalStrict, apply: func(p *parsed, in string, _ *localeParsers) {
			p.setField(fDay, toInt(leadingDigits(in)))
		}},
	}
	return lp
}

// ordinalPattern matches a day of month written with the locale's
// ordinal suffixes ("1st", "2e", "3.").
func ordinalPattern(loc *locale.Locale, strict bool) string {
	var suffixes []string
	optional := !strict
	for n := 1; n <= 31; n++ {
		num := strconv.Itoa(n)
		out := loc.Ordinal(n, "D")
		suffix, ok := strings.CutPrefix(out, num)
		if !ok {
			continue
		}
		if suffix == "" {
			optional = true
			continue
		}
		if !slices.Contains(suffixes, suffix) {
			suffixes = append(suffixes, suffix)
		}
	}
	if len(suffixes) == 0 {
		return match1to2
	}
	pattern := match1to2 + `(?:` + alternation(suffixes) + `)`
	if optional {
		pattern += "?"
	}
	return pattern
}

// alternation joins quoted names longest first, so a short name never
// shadows a longer one with the same prefix.
func alternation(names []string) string {
	sorted := slices.Clone(names)
	slices.SortStableFunc(sorted, func(a, b string) int { return len(b) - len(a) })
	quoted := make([]string, 0, len(sorted))
	for _, n := range sorted {
		if n != "" {
			quoted = append(quoted, regexp.QuoteMeta(n))
		}
	}
	return strings.Join(quoted, "|")
}

func leadingDigits(s string) string {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return s[:i]
}

func toInt(s string) int {
	n, _ := strconv.Atoi(strings.TrimPrefix(s, "+"))
	return n
}

// parseTwoDigitYear maps 69-99 to the 1900s and 00-68 to the 2000s.
func parseTwoDigitYear(s string) int {
	y := toInt(s)
	if y > 68 {
		return 1900 + y
	}
	return 2000 + y
}

// parseOffset converts "Z", "+05", "-0330" or "+05:30" to minutes east.
func parseOffset(s string) int {
	if s == "" || s[0] == 'Z' || s[0] == 'z' {
		return 0
	}
	digits := strings.ReplaceAll(s[1:], ":", "")
	minutes := toInt(digits[:2]) * 60
	if len(digits) >= 4 {
		minutes += toInt(digits[2:4])
	}
	if s[0] == '-' {
		return -minutes
	}
	return minutes
}
