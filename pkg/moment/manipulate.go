package moment

import "time"

// Add returns a copy moved by n units. Calendar units (years, quarters,
// months, weeks, days) keep the wall clock; a month step that lands past
// the end of a month is clamped to its last day, so January 31 plus one
// month is the last day of February. Clock units move the instant.
func (m Moment) Add(n int, unit Unit) Moment {
	if !m.valid || n == 0 {
		return m
	}
	switch unit {
	case Year:
		return m.addMonths(n * 12)
	case Quarter:
		return m.addMonths(n * 3)
	case Month:
		return m.addMonths(n)
	case Week, ISOWeek:
		return m.addDays(n * 7)
	case Day:
		return m.addDays(n)
	case Hour:
		return m.at(m.t.Add(time.Duration(n) * time.Hour))
	case Minute:
		return m.at(m.t.Add(time.Duration(n) * time.Minute))
	case Second:
		return m.at(m.t.Add(time.Duration(n) * time.Second))
	case Millisecond:
		return m.at(m.t.Add(time.Duration(n) * time.Millisecond))
	}
	return m
}

// Subtract is Add with -n.
func (m Moment) Subtract(n int, unit Unit) Moment {
	return m.Add(-n, unit)
}

// AddDuration moves the instant by d.
func (m Moment) AddDuration(d time.Duration) Moment {
	if !m.valid {
		return m
	}
	return m.at(m.t.Add(d))
}

func (m Moment) addMonths(n int) Moment {
	y, mo, d := m.t.Date()
	total := int(mo) - 1 + n
	year := y + floorDiv(total, 12)
	month := time.Month(total-floorDiv(total, 12)*12) + 1
	day := min(d, daysIn(year, month))
	return m.wall(year, month, day, m.t.Hour(), m.t.Minute(), m.t.Second(), m.t.Nanosecond())
}

func (m Moment) addDays(n int) Moment {
	y, mo, d := m.t.Date()
	return m.wall(y, mo, d+n, m.t.Hour(), m.t.Minute(), m.t.Second(), m.t.Nanosecond())
}

// StartOf returns the first instant of the unit containing m. Weeks start
// on the locale's first day of the week, ISO weeks on Monday.
func (m Moment) StartOf(unit Unit) Moment {
	if !m.valid {
		return m
	}
	y, mo, d := m.t.Date()

	switch unit {
	case Year:
		return m.wall(y, time.January, 1, 0, 0, 0, 0)
	case Quarter:
		return m.wall(y, mo-(mo-1)%3, 1, 0, 0, 0, 0)
	case Month:
		return m.wall(y, mo, 1, 0, 0, 0, 0)
	case Week:
		back := (int(m.t.Weekday()) + 7 - m.Locale().Week.Dow) % 7
		return m.wall(y, mo, d-back, 0, 0, 0, 0)
	case ISOWeek:
		back := (int(m.t.Weekday()) + 6) % 7
		return m.wall(y, mo, d-back, 0, 0, 0, 0)
	case Day:
		return m.wall(y, mo, d, 0, 0, 0, 0)
	case Hour:
		// Hours are aligned to the local offset, so +05:30 zones start
		// their hours at :30 UTC.
		_, offset := m.t.Zone()
		ms := m.t.UnixMilli()
		ms -= mod(ms+int64(offset)*1000, int64(time.Hour/time.Millisecond))
		return m.at(time.UnixMilli(ms))
	case Minute:
		return m.at(m.t.Truncate(time.Minute))
	case Second:
		return m.at(m.t.Truncate(time.Second))
	case Millisecond:
		return m.at(m.t.Truncate(time.Millisecond))
	}
	return m
}

// EndOf returns the last nanosecond of the unit containing m.
func (m Moment) EndOf(unit Unit) Moment {
	if !m.valid {
		return m
	}
	if _, ok := unitAliases[string(unit)]; !ok {
		return m
	}
	next := m.StartOf(unit).Add(1, unit)
	return next.at(next.t.Add(-time.Nanosecond))
}

// Set returns a copy with one field replaced. Out of range values roll
// over into the next unit, except that setting the year or month clamps
// the day to the length of the target month.
func (m Moment) Set(unit Unit, value int) Moment {
	if !m.valid {
		return m
	}
	y, mo, d := m.t.Date()
	h, mi, s, ns := m.t.Hour(), m.t.Minute(), m.t.Second(), m.t.Nanosecond()

	switch unit {
	case Year:
		return m.wall(value, mo, min(d, daysIn(value, mo)), h, mi, s, ns)
	case Quarter:
		return m.addMonths((value - m.Quarter()) * 3)
	case Month:
		return m.addMonths(value - int(mo))
	case Week:
		return m.addDays((value - m.Week()) * 7)
	case ISOWeek:
		return m.addDays((value - m.ISOWeek()) * 7)
	case Day:
		return m.wall(y, mo, value, h, mi, s, ns)
	case Hour:
		return m.wall(y, mo, d, value, mi, s, ns)
	case Minute:
		return m.wall(y, mo, d, h, value, s, ns)
	case Second:
		return m.wall(y, mo, d, h, mi, value, ns)
	case Millisecond:
		return m.wall(y, mo, d, h, mi, s, value*int(time.Millisecond)+ns%int(time.Millisecond))
	}
	return m
}

// SetWeekday moves to a day of the same week, counting from Sunday.
// Values outside 0..6 move into neighbouring weeks.
func (m Moment) SetWeekday(day time.Weekday) Moment {
	if !m.valid {
		return m
	}
	return m.addDays(int(day) - int(m.t.Weekday()))
}

func mod(a, b int64) int64 {
	return ((a % b) + b) % b
}
