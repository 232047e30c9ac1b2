package moment

import "math"

// Thresholds decide where one relative time unit gives way to the next.
// A value below the threshold keeps the smaller unit.
type Thresholds struct {
	SS int // seconds rendered as "a few seconds"
	S  int // seconds before switching to minutes
	M  int // minutes before switching to hours
	H  int // hours before switching to days
	D  int // days before switching to months
	MO int // months before switching to years
}

// DefaultThresholds are used by From, To and their Now variants.
var DefaultThresholds = Thresholds{SS: 44, S: 45, M: 45, H: 22, D: 26, MO: 11}

// From renders the time from other to m as a phrase such as "in 3 days"
// or "a month ago", in m's locale. withoutSuffix drops the "in"/"ago"
// wrapper.
func (m Moment) From(other Moment, withoutSuffix bool) string {
	return m.FromWithThresholds(other, withoutSuffix, DefaultThresholds)
}

// FromWithThresholds is From with custom unit thresholds.
func (m Moment) FromWithThresholds(other Moment, withoutSuffix bool, th Thresholds) string {
	loc := m.Locale()
	if !m.valid || !other.valid {
		return loc.InvalidDate
	}

	months, ms := momentsDifference(other, m)
	future := float64(months)*2592e6+ms > 0
	if months < 0 || ms < 0 {
		months, ms = -months, -ms
	}

	// Unit totals of a months+milliseconds duration, the way durations
	// convert between calendar and clock units.
	days := math.Round(monthsToDays(float64(months)))
	seconds := round(days*86400 + ms/1e3)
	minutes := round(days*1440 + ms/6e4)
	hours := round(days*24 + ms/36e5)
	totalDays := round(days + ms/864e5)
	totalMonths := round(float64(months) + daysToMonths(ms/864e5))
	years := round((float64(months) + daysToMonths(ms/864e5)) / 12)

	key, n := "yy", years
	switch {
	case seconds <= th.SS:
		key, n = "s", seconds
	case seconds < th.S:
		key, n = "ss", seconds
	case minutes <= 1:
		key, n = "m", 1
	case minutes < th.M:
		key, n = "mm", minutes
	case hours <= 1:
		key, n = "h", 1
	case hours < th.H:
		key, n = "hh", hours
	case totalDays <= 1:
		key, n = "d", 1
	case totalDays < th.D:
		key, n = "dd", totalDays
	case totalMonths <= 1:
		key, n = "M", 1
	case totalMonths < th.MO:
		key, n = "MM", totalMonths
	case years <= 1:
		key, n = "y", 1
	}
	return loc.FormatRelative(n, key, withoutSuffix, future)
}

// FromNow is From with the current time.
func (m Moment) FromNow(withoutSuffix bool) string {
	return m.From(Now(), withoutSuffix)
}

// To renders the time from m to other: "in 3 days" when other is three
// days after m.
func (m Moment) To(other Moment, withoutSuffix bool) string {
	return other.WithLocale(m.Locale().Code).From(m, withoutSuffix)
}

// ToNow is To with the current time.
func (m Moment) ToNow(withoutSuffix bool) string {
	return m.To(Now(), withoutSuffix)
}

// Calendar renders m relative to the day of ref using the locale's
// calendar layouts: "Today at 2:30 PM", "Last Monday at 9:00 AM", or the
// plain date when m is more than a week away.
func (m Moment) Calendar(ref Moment) string {
	if !m.valid || !ref.valid {
		return m.Locale().InvalidDate
	}
	sod := m.in(ref).StartOf(Day)
	layout := m.Locale().CalendarFormat(m.Diff(sod, Day, true))
	return m.Format(layout)
}

// momentsDifference splits to minus from into whole calendar months and
// the remaining milliseconds, both carrying the sign of the difference.
func momentsDifference(from, to Moment) (int, float64) {
	to = from.in(to)
	if from.t.Before(to.t) {
		return positiveMomentsDifference(from, to)
	}
	months, ms := positiveMomentsDifference(to, from)
	return -months, -ms
}

func positiveMomentsDifference(base, other Moment) (int, float64) {
	months := int(other.t.Month()-base.t.Month()) + (other.t.Year()-base.t.Year())*12
	if base.addMonths(months).t.After(other.t) {
		months--
	}
	return months, msBetween(base.addMonths(months).t, other.t)
}

// 400 years have 146097 days and 4800 months.
func monthsToDays(months float64) float64 { return months * 146097 / 4800 }
func daysToMonths(days float64) float64   { return days * 4800 / 146097 }

func round(f float64) int {
	return int(math.Round(f))
}
