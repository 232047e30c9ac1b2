package moment

import "time"

// Week returns the locale week of the year.
func (m Moment) Week() int {
	if !m.valid {
		return 0
	}
	w := m.Locale().Week
	week, _ := weekOfYear(m.t, w.Dow, w.Doy)
	return week
}

// WeekYear returns the year the locale week belongs to.
func (m Moment) WeekYear() int {
	if !m.valid {
		return 0
	}
	w := m.Locale().Week
	_, year := weekOfYear(m.t, w.Dow, w.Doy)
	return year
}

// ISOWeek returns the ISO 8601 week of the year.
func (m Moment) ISOWeek() int {
	if !m.valid {
		return 0
	}
	week, _ := weekOfYear(m.t, 1, 4)
	return week
}

// ISOWeekYear returns the ISO 8601 week-numbering year.
func (m Moment) ISOWeekYear() int {
	if !m.valid {
		return 0
	}
	_, year := weekOfYear(m.t, 1, 4)
	return year
}

// WeeksInYear returns the number of locale weeks in the Moment's year.
func (m Moment) WeeksInYear() int {
	if !m.valid {
		return 0
	}
	w := m.Locale().Week
	return weeksInYear(m.t.Year(), w.Dow, w.Doy)
}

// ISOWeeksInYear returns 52 or 53.
func (m Moment) ISOWeeksInYear() int {
	if !m.valid {
		return 0
	}
	return weeksInYear(m.t.Year(), 1, 4)
}

// firstWeekOffset returns the day of year, relative to January 1st, on
// which week 1 starts. It is zero or negative.
func firstWeekOffset(year, dow, doy int) int {
	// January fwd always falls in the first week.
	fwd := 7 + dow - doy
	fwdlw := (7 + int(time.Date(year, time.January, fwd, 0, 0, 0, 0, time.UTC).Weekday()) - dow) % 7
	return -fwdlw + fwd - 1
}

func weeksInYear(year, dow, doy int) int {
	offset := firstWeekOffset(year, dow, doy)
	next := firstWeekOffset(year+1, dow, doy)
	return (daysInYear(year) - offset + next) / 7
}

func weekOfYear(t time.Time, dow, doy int) (week, year int) {
	year = t.Year()
	offset := firstWeekOffset(year, dow, doy)
	week = floorDiv(t.YearDay()-offset-1, 7) + 1

	switch {
	case week < 1:
		year--
		week += weeksInYear(year, dow, doy)
	case week > weeksInYear(year, dow, doy):
		week -= weeksInYear(year, dow, doy)
		year++
	}
	return week, year
}

// dayOfYearFromWeeks converts a week date to a year and day of year.
// weekday counts from Sunday.
func dayOfYearFromWeeks(year, week, weekday, dow, doy int) (int, int) {
	localWeekday := (7 + weekday - dow) % 7
	dayOfYear := 1 + 7*(week-1) + localWeekday + firstWeekOffset(year, dow, doy)

	switch {
	case dayOfYear <= 0:
		return year - 1, daysInYear(year-1) + dayOfYear
	case dayOfYear > daysInYear(year):
		return year + 1, dayOfYear - daysInYear(year)
	}
	return year, dayOfYear
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
