package tz

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Zone is the offset history of one IANA zone. Period i is in effect
// until Untils[i] (Unix milliseconds, exclusive); the last period runs
// forever. Offsets are minutes west of UTC, the tzdata convention, so
// New York standard time is 300.
type Zone struct {
	Name       string
	Abbrs      []string
	Offsets    []float64
	Untils     []float64
	Population int64

	moveAmbiguousForward bool
	moveInvalidForward   bool
}

// Unpack decodes a zone in the packed format
// "Name|ABBRS|OFFSETS|INDICES|UNTILS|POPULATION".
func Unpack(packed string) (*Zone, error) {
	fields := strings.Split(packed, "|")
	if len(fields) < 5 || len(fields) > 6 || fields[0] == "" {
		return nil, fmt.Errorf("%w: expected 5 or 6 fields", ErrInvalidPacked)
	}

	abbrs := strings.Fields(fields[1])
	offsetTokens := strings.Fields(fields[2])
	if len(abbrs) == 0 || len(abbrs) != len(offsetTokens) {
		return nil, fmt.Errorf("%w: %s: abbreviations and offsets differ in length", ErrInvalidPacked, fields[0])
	}

	offsets := make([]float64, len(offsetTokens))
	for i, tok := range offsetTokens {
		v, err := UnpackBase60(tok)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: offset: %w", ErrInvalidPacked, fields[0], err)
		}
		offsets[i] = v
	}

	indices := fields[3]
	if indices == "" {
		return nil, fmt.Errorf("%w: %s: no periods", ErrInvalidPacked, fields[0])
	}
	untilTokens := strings.Fields(fields[4])
	if len(untilTokens) < len(indices)-1 {
		return nil, fmt.Errorf("%w: %s: %d periods but %d transitions", ErrInvalidPacked, fields[0], len(indices), len(untilTokens))
	}

	z := &Zone{
		Name:               fields[0],
		Abbrs:              make([]string, len(indices)),
		Offsets:            make([]float64, len(indices)),
		Untils:             make([]float64, len(indices)),
		moveInvalidForward: true,
	}

	var last float64
	for i := 0; i < len(indices); i++ {
		idx, ok := base60Digit(indices[i])
		if !ok || idx >= len(abbrs) {
			return nil, fmt.Errorf("%w: %s: bad index %q", ErrInvalidPacked, fields[0], indices[i])
		}
		z.Abbrs[i] = abbrs[idx]
		z.Offsets[i] = offsets[idx]

		if i == len(indices)-1 {
			z.Untils[i] = math.Inf(1)
			break
		}
		delta, err := UnpackBase60(untilTokens[i])
		if err != nil {
			return nil, fmt.Errorf("%w: %s: until: %w", ErrInvalidPacked, fields[0], err)
		}
		last = math.Round(last + delta*60000)
		z.Untils[i] = last
	}

	if len(fields) == 6 && fields[5] != "" {
		pop, err := strconv.ParseFloat(fields[5], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: population: %w", ErrInvalidPacked, fields[0], err)
		}
		z.Population = int64(pop)
	}

	return z, nil
}

// Pack encodes a zone in the packed format. Periods are deduplicated into
// abbreviation/offset pairs, so at most 60 distinct pairs are supported.
func Pack(z *Zone) (string, error) {
	if err := z.Validate(); err != nil {
		return "", err
	}

	type pair struct {
		abbr   string
		offset float64
	}
	pairIndex := make(map[pair]int)
	var abbrs, offsets []string
	var indices strings.Builder

	for i := range z.Abbrs {
		p := pair{z.Abbrs[i], math.Round(z.Offsets[i]*60) / 60}
		idx, ok := pairIndex[p]
		if !ok {
			idx = len(abbrs)
			if idx >= len(base60Digits) {
				return "", fmt.Errorf("%w: %s", ErrTooManyPeriods, z.Name)
			}
			pairIndex[p] = idx
			abbrs = append(abbrs, p.abbr)
			offsets = append(offsets, PackBase60(p.offset, 1))
		}
		indices.WriteByte(base60Digits[idx])
	}

	untils := make([]string, 0, len(z.Untils))
	var last float64
	for _, u := range z.Untils[:len(z.Untils)-1] {
		untils = append(untils, PackBase60(math.Round((u-last)/1000)/60, 1))
		last = u
	}

	return strings.Join([]string{
		z.Name,
		strings.Join(abbrs, " "),
		strings.Join(offsets, " "),
		indices.String(),
		strings.Join(untils, " "),
		strconv.FormatInt(z.Population, 10),
	}, "|"), nil
}

// Validate reports whether z has a name, at least one period, and as
// many abbreviations and offsets as untils.
func (z *Zone) Validate() error {
	if z == nil || z.Name == "" || len(z.Abbrs) == 0 ||
		len(z.Abbrs) != len(z.Offsets) || len(z.Abbrs) != len(z.Untils) {
		name := ""
		if z != nil {
			name = z.Name
		}
		return fmt.Errorf("%w: inconsistent zone %q", ErrInvalidPacked, name)
	}
	return nil
}

// Index returns the period in effect at the Unix millisecond ms, or -1
// for a zone without periods.
func (z *Zone) Index(ms int64) int {
	target := float64(ms)
	for i, u := range z.Untils {
		if target < u {
			return i
		}
	}
	return len(z.Untils) - 1
}

// Abbr returns the abbreviation in effect at ms.
func (z *Zone) Abbr(ms int64) string {
	i := z.Index(ms)
	if i < 0 || i >= len(z.Abbrs) {
		return ""
	}
	return z.Abbrs[i]
}

// Offset returns the offset at ms in minutes west of UTC.
func (z *Zone) Offset(ms int64) float64 {
	i := z.Index(ms)
	if i < 0 || i >= len(z.Offsets) {
		return 0
	}
	return z.Offsets[i]
}

// UTCOffset returns the offset at ms in minutes east of UTC, the sign
// convention of time.Time.Zone.
func (z *Zone) UTCOffset(ms int64) float64 {
	return -z.Offset(ms)
}

// Parse returns the offset, in minutes west, that applies to a wall clock
// reading. localMs is the wall clock expressed as if it were UTC.
//
// Wall times skipped by a forward transition are resolved with the offset
// before the gap, which moves them forward. Wall times that occur twice
// resolve to the earlier offset. Both can be changed on the Database.
func (z *Zone) Parse(localMs int64) float64 {
	target := float64(localMs)
	last := len(z.Untils) - 1

	for i := 0; i < last; i++ {
		offset := z.Offsets[i]
		next := z.Offsets[i+1]
		prev := z.Offsets[max(i-1, 0)]

		if offset < next && z.moveAmbiguousForward {
			offset = next
		} else if offset > prev && z.moveInvalidForward {
			offset = prev
		}

		if target < z.Untils[i]-offset*60000 {
			return z.Offsets[i]
		}
	}
	return z.Offsets[last]
}

// Location returns a fixed time.Location with the abbreviation and offset
// in effect at ms.
func (z *Zone) Location(ms int64) *time.Location {
	i := z.Index(ms)
	return time.FixedZone(z.Abbrs[i], int(math.Round(-z.Offsets[i]*60)))
}

// In converts t to the zone, returning a time carrying the zone's
// abbreviation and offset at that instant.
func (z *Zone) In(t time.Time) time.Time {
	return t.In(z.Location(t.UnixMilli()))
}

// Date returns the instant at which the zone's wall clock shows the given
// date and time.
func (z *Zone) Date(year int, month time.Month, day, hour, minute, sec, nsec int) time.Time {
	wall := time.Date(year, month, day, hour, minute, sec, nsec, time.UTC)
	offset := z.Parse(wall.UnixMilli())
	utc := wall.Add(time.Duration(offset * float64(time.Minute)))
	return z.In(utc)
}

func (z *Zone) clone() *Zone {
	c := *z
	return &c
}
