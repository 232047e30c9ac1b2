package moment

// Unit is a calendar or clock unit used by Add, StartOf, Diff and the
// comparison helpers.
type Unit string

const (
	Year        Unit = "year"
	Quarter     Unit = "quarter"
	Month       Unit = "month"
	Week        Unit = "week"
	ISOWeek     Unit = "isoWeek"
	Day         Unit = "day"
	Hour        Unit = "hour"
	Minute      Unit = "minute"
	Second      Unit = "second"
	Millisecond Unit = "millisecond"
)

var unitAliases = map[string]Unit{
	"y": Year, "year": Year, "years": Year,
	"Q": Quarter, "quarter": Quarter, "quarters": Quarter,
	"M": Month, "month": Month, "months": Month,
	"w": Week, "week": Week, "weeks": Week,
	"W": ISOWeek, "isoWeek": ISOWeek, "isoWeeks": ISOWeek, "isoweek": ISOWeek,
	"d": Day, "day": Day, "days": Day,
	"D": Day, "date": Day, "dates": Day,
	"h": Hour, "hour": Hour, "hours": Hour,
	"m": Minute, "minute": Minute, "minutes": Minute,
	"s": Second, "second": Second, "seconds": Second,
	"ms": Millisecond, "millisecond": Millisecond, "milliseconds": Millisecond,
}

// ParseUnit resolves a unit name or alias ("M", "months", "isoWeek").
// Single letter aliases are case sensitive: "M" is month, "m" is minute.
func ParseUnit(s string) (Unit, bool) {
	u, ok := unitAliases[s]
	return u, ok
}
