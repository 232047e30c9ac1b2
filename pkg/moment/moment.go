package moment

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/dmitrymomot/babel/pkg/locale"
	"github.com/dmitrymomot/babel/pkg/tz"
)

// DefaultFormat is the layout used by String and by Format with an empty
// layout.
const DefaultFormat = "YYYY-MM-DDTHH:mm:ssZ"

// Moment is an immutable date value: an instant, the location its wall
// clock is read in, and the locale used for names and phrases. A Moment
// produced by a failed parse is invalid; accessors then return zero values
// and Format returns the locale's invalid date text.
type Moment struct {
	t     time.Time
	loc   *locale.Locale
	zone  *tz.Zone
	valid bool
	isUTC bool
}

var defaultLocale atomic.Pointer[locale.Locale]

// SetDefaultLocale changes the locale of Moments created afterwards.
func SetDefaultLocale(code string) {
	defaultLocale.Store(locale.Get(code))
}

// DefaultLocale returns the locale new Moments start with.
func DefaultLocale() *locale.Locale {
	if l := defaultLocale.Load(); l != nil {
		return l
	}
	return locale.Get(locale.Fallback)
}

// New wraps t, keeping its location.
func New(t time.Time) Moment {
	return Moment{t: t, loc: DefaultLocale(), valid: true, isUTC: t.Location() == time.UTC}
}

// Now returns the current local time.
func Now() Moment {
	return New(time.Now())
}

// Unix creates a local Moment from Unix seconds.
func Unix(sec int64) Moment {
	return New(time.Unix(sec, 0))
}

// UnixMilli creates a local Moment from Unix milliseconds.
func UnixMilli(ms int64) Moment {
	return New(time.UnixMilli(ms))
}

// Date creates a Moment from wall clock fields in loc. Out of range values
// are normalized the way time.Date does.
func Date(year int, month time.Month, day, hour, minute, sec, nsec int, loc *time.Location) Moment {
	return New(time.Date(year, month, day, hour, minute, sec, nsec, loc))
}

// Invalid returns an invalid Moment.
func Invalid() Moment {
	return Moment{loc: DefaultLocale()}
}

// IsValid reports whether the Moment holds a real date.
func (m Moment) IsValid() bool { return m.valid }

// Time returns the underlying time. It is the zero time for invalid
// Moments.
func (m Moment) Time() time.Time {
	if !m.valid {
		return time.Time{}
	}
	return m.t
}

// Locale returns the locale used for formatting.
func (m Moment) Locale() *locale.Locale {
	if m.loc == nil {
		return DefaultLocale()
	}
	return m.loc
}

// WithLocale returns a copy using the locale for code, resolved through
// the locale registry.
func (m Moment) WithLocale(code string) Moment {
	m.loc = locale.Get(code)
	return m
}

// Zone returns the tz zone set with Tz, or nil.
func (m Moment) Zone() *tz.Zone { return m.zone }

// UTC returns a copy displayed in UTC.
func (m Moment) UTC() Moment {
	m.t = m.t.UTC()
	m.zone = nil
	m.isUTC = true
	return m
}

// Local returns a copy displayed in the process local time zone.
func (m Moment) Local() Moment {
	m.t = m.t.Local()
	m.zone = nil
	m.isUTC = false
	return m
}

// In returns a copy displayed in loc.
func (m Moment) In(loc *time.Location) Moment {
	m.t = m.t.In(loc)
	m.zone = nil
	m.isUTC = loc == time.UTC
	return m
}

// WithOffset returns a copy displayed at a fixed offset, in minutes east
// of UTC. Values between -16 and 16 are taken as hours.
func (m Moment) WithOffset(offset int) Moment {
	if offset > -16 && offset < 16 {
		offset *= 60
	}
	m.t = m.t.In(time.FixedZone("", offset*60))
	m.zone = nil
	m.isUTC = offset == 0
	return m
}

// Tz returns a copy displayed in a tz zone. The zone's abbreviation is
// reported by the z token.
func (m Moment) Tz(z *tz.Zone) Moment {
	if z == nil {
		return m
	}
	m.zone = z
	m.isUTC = false
	m.t = z.In(m.t)
	return m
}

// IsUTC reports whether the Moment is displayed in UTC.
func (m Moment) IsUTC() bool { return m.isUTC }

// UTCOffset returns the offset in effect, in minutes east of UTC.
func (m Moment) UTCOffset() int {
	if !m.valid {
		return 0
	}
	_, offset := m.t.Zone()
	return int(math.Round(float64(offset) / 60))
}

// Unix returns Unix seconds.
func (m Moment) Unix() int64 { return m.Time().Unix() }

// UnixMilli returns Unix milliseconds.
func (m Moment) UnixMilli() int64 { return m.Time().UnixMilli() }

// Year returns the year, or 0 for an invalid Moment.
func (m Moment) Year() int {
	if !m.valid {
		return 0
	}
	return m.t.Year()
}

// Month returns the month, or 0 for an invalid Moment.
func (m Moment) Month() time.Month {
	if !m.valid {
		return 0
	}
	return m.t.Month()
}

// Day returns the day of the month, or 0 for an invalid Moment.
func (m Moment) Day() int {
	if !m.valid {
		return 0
	}
	return m.t.Day()
}

func (m Moment) Weekday() time.Weekday { return m.Time().Weekday() }
func (m Moment) Hour() int             { return m.Time().Hour() }
func (m Moment) Minute() int           { return m.Time().Minute() }
func (m Moment) Second() int           { return m.Time().Second() }

// Millisecond returns the millisecond within the second.
func (m Moment) Millisecond() int {
	return m.Time().Nanosecond() / int(time.Millisecond)
}

// DayOfYear returns the day of the year, 1 to 366.
func (m Moment) DayOfYear() int {
	if !m.valid {
		return 0
	}
	return m.t.YearDay()
}

// Quarter returns the quarter, 1 to 4.
func (m Moment) Quarter() int {
	if !m.valid {
		return 0
	}
	return (int(m.t.Month())-1)/3 + 1
}

// DaysInMonth returns the number of days in the Moment's month.
func (m Moment) DaysInMonth() int {
	if !m.valid {
		return 0
	}
	return daysIn(m.t.Year(), m.t.Month())
}

// IsLeapYear reports whether the Moment's year is a leap year.
func (m Moment) IsLeapYear() bool {
	return m.valid && isLeap(m.t.Year())
}

// String formats with DefaultFormat.
func (m Moment) String() string {
	return m.Format(DefaultFormat)
}

// at moves the Moment to another instant, keeping how it is displayed.
func (m Moment) at(t time.Time) Moment {
	if m.zone != nil {
		m.t = m.zone.In(t)
	} else {
		m.t = t.In(m.t.Location())
	}
	return m
}

// wall sets the wall clock, resolving it in the Moment's zone or location.
func (m Moment) wall(year int, month time.Month, day, hour, minute, sec, nsec int) Moment {
	if m.zone != nil {
		m.t = m.zone.Date(year, month, day, hour, minute, sec, nsec)
	} else {
		m.t = time.Date(year, month, day, hour, minute, sec, nsec, m.t.Location())
	}
	return m
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func daysIn(year int, month time.Month) int {
	switch month {
	case time.February:
		if isLeap(year) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	}
	return 31
}

func daysInYear(year int) int {
	if isLeap(year) {
		return 366
	}
	return 365
}
