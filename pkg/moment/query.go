package moment

import (
	"math"
	"time"
)

// IsBefore reports whether m is before other. With a unit the comparison
// is made at that granularity: m.IsBefore(other, Day) is true only when
// m's whole day ends before other. An empty unit compares instants.
// Comparisons involving an invalid Moment are false.
func (m Moment) IsBefore(other Moment, unit Unit) bool {
	if !m.valid || !other.valid {
		return false
	}
	if unit == "" {
		return m.t.Before(other.t)
	}
	return m.EndOf(unit).t.Before(other.t)
}

// IsAfter reports whether m is after other at the unit's granularity.
func (m Moment) IsAfter(other Moment, unit Unit) bool {
	if !m.valid || !other.valid {
		return false
	}
	if unit == "" {
		return m.t.After(other.t)
	}
	return other.t.Before(m.StartOf(unit).t)
}

// IsSame reports whether other falls into the same unit as m, in m's
// time zone.
func (m Moment) IsSame(other Moment, unit Unit) bool {
	if !m.valid || !other.valid {
		return false
	}
	if unit == "" {
		return m.t.Equal(other.t)
	}
	start, end := m.StartOf(unit).t, m.EndOf(unit).t
	return !other.t.Before(start) && !other.t.After(end)
}

// IsSameOrBefore is IsSame or IsBefore.
func (m Moment) IsSameOrBefore(other Moment, unit Unit) bool {
	return m.IsSame(other, unit) || m.IsBefore(other, unit)
}

// IsSameOrAfter is IsSame or IsAfter.
func (m Moment) IsSameOrAfter(other Moment, unit Unit) bool {
	return m.IsSame(other, unit) || m.IsAfter(other, unit)
}

// IsBetween reports whether m lies between from and to. inclusivity is one
// of "()", "[]", "[)" and "(]"; a square bracket includes that end. An
// empty inclusivity excludes both ends.
func (m Moment) IsBetween(from, to Moment, unit Unit, inclusivity string) bool {
	if !m.valid || !from.valid || !to.valid {
		return false
	}
	if len(inclusivity) != 2 {
		inclusivity = "()"
	}

	var afterFrom, beforeTo bool
	if inclusivity[0] == '[' {
		afterFrom = !m.IsBefore(from, unit)
	} else {
		afterFrom = m.IsAfter(from, unit)
	}
	if inclusivity[1] == ']' {
		beforeTo = !m.IsAfter(to, unit)
	} else {
		beforeTo = m.IsBefore(to, unit)
	}
	return afterFrom && beforeTo
}

// Diff returns m minus other in the given unit. Months, quarters and years
// are measured on the calendar, so Jan 15 to Feb 15 is exactly one month
// whatever the month lengths; days and weeks ignore DST shifts between the
// two instants. Unless asFloat is set the result is truncated toward zero.
// An invalid operand yields NaN.
func (m Moment) Diff(other Moment, unit Unit, asFloat bool) float64 {
	if !m.valid || !other.valid {
		return math.NaN()
	}
	that := m.in(other)
	zoneDelta := float64(that.UTCOffset()-m.UTCOffset()) * 60000
	delta := msBetween(that.t, m.t)

	var out float64
	switch unit {
	case Year:
		out = monthDiff(m, that) / 12
	case Quarter:
		out = monthDiff(m, that) / 3
	case Month:
		out = monthDiff(m, that)
	case Week, ISOWeek:
		out = (delta - zoneDelta) / 6048e5
	case Day:
		out = (delta - zoneDelta) / 864e5
	case Hour:
		out = delta / 36e5
	case Minute:
		out = delta / 6e4
	case Second:
		out = delta / 1e3
	default:
		out = delta
	}
	if asFloat {
		return out
	}
	return absFloor(out)
}

// monthDiff counts calendar months from b back to a, with the partial
// month measured against the length of the month it falls in.
func monthDiff(a, b Moment) float64 {
	if a.t.Day() < b.t.Day() {
		return -monthDiff(b, a)
	}
	whole := (b.t.Year()-a.t.Year())*12 + int(b.t.Month()-a.t.Month())
	anchor := a.addMonths(whole)

	var adjust float64
	if b.t.Before(anchor.t) {
		anchor2 := a.addMonths(whole - 1)
		adjust = msBetween(anchor.t, b.t) / msBetween(anchor2.t, anchor.t)
	} else {
		anchor2 := a.addMonths(whole + 1)
		adjust = msBetween(anchor.t, b.t) / msBetween(anchor.t, anchor2.t)
	}

	out := -(float64(whole) + adjust)
	if out == 0 {
		return 0
	}
	return out
}

// in returns other displayed the way m is displayed.
func (m Moment) in(other Moment) Moment {
	return m.at(other.t)
}

// msBetween returns b minus a in milliseconds.
func msBetween(a, b time.Time) float64 {
	return float64(b.Unix()-a.Unix())*1000 + float64(b.Nanosecond()-a.Nanosecond())/1e6
}

// absFloor truncates toward zero without producing negative zero.
func absFloor(f float64) float64 {
	t := math.Trunc(f)
	if t == 0 {
		return 0
	}
	return t
}
