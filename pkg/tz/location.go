package tz

import (
	"fmt"
	"math"
	"sync"
	"time"
	_ "time/tzdata"
)

// FromLocation builds a Zone from a Go location by walking its transitions
// between from and to. The period in effect at to is extended forever.
func FromLocation(loc *time.Location, from, to time.Time) (*Zone, error) {
	if loc == nil || !from.Before(to) {
		return nil, ErrInvalidLocation
	}

	z := &Zone{Name: loc.String(), moveInvalidForward: true}

	t := from
	for {
		local := t.In(loc)
		abbr, offset := local.Zone()
		_, end := local.ZoneBounds()

		west := float64(-offset) / 60
		until := math.Inf(1)
		if !end.IsZero() && end.Before(to) {
			until = float64(end.UnixMilli())
		}

		n := len(z.Abbrs)
		if n > 0 && z.Abbrs[n-1] == abbr && z.Offsets[n-1] == west {
			z.Untils[n-1] = until
		} else {
			z.Abbrs = append(z.Abbrs, abbr)
			z.Offsets = append(z.Offsets, west)
			z.Untils = append(z.Untils, until)
		}

		if math.IsInf(until, 1) {
			break
		}
		t = end
	}

	return z, nil
}

// Range of transitions kept by Default.
var (
	defaultFrom = time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)
	defaultTo   = time.Date(2038, time.January, 1, 0, 0, 0, 0, time.UTC)
)

// DefaultZones lists the zones preloaded by Default.
var DefaultZones = []string{
	"UTC",
	"Africa/Cairo",
	"Africa/Johannesburg",
	"Africa/Lagos",
	"America/Chicago",
	"America/Denver",
	"America/Los_Angeles",
	"America/Mexico_City",
	"America/New_York",
	"America/Sao_Paulo",
	"America/Toronto",
	"Asia/Dubai",
	"Asia/Kolkata",
	"Asia/Shanghai",
	"Asia/Singapore",
	"Asia/Tokyo",
	"Australia/Sydney",
	"Europe/Berlin",
	"Europe/Kyiv",
	"Europe/London",
	"Europe/Madrid",
	"Europe/Moscow",
	"Europe/Paris",
	"Europe/Warsaw",
	"Pacific/Auckland",
}

// DefaultLinks are aliases registered by Default.
var DefaultLinks = []string{
	"UTC|Etc/UTC",
	"UTC|Etc/GMT",
	"America/New_York|US/Eastern",
	"America/Chicago|US/Central",
	"America/Denver|US/Mountain",
	"America/Los_Angeles|US/Pacific",
	"Asia/Kolkata|Asia/Calcutta",
	"Asia/Tokyo|Japan",
	"Europe/Kyiv|Europe/Kiev",
	"Europe/London|GB",
}

var defaultDB = sync.OnceValues(func() (*Database, error) {
	return FromGoTZData(DefaultZones, DefaultLinks)
})

// Default returns a database built from the Go tzdata embedded in the
// binary for DefaultZones and DefaultLinks. It is built once.
func Default() (*Database, error) {
	return defaultDB()
}

// FromGoTZData builds a database from Go tzdata for the given zone names
// and packed links. The version is reported as "go".
func FromGoTZData(names, links []string, opts ...Option) (*Database, error) {
	db := NewDatabase(opts...)

	zones := make([]*Zone, 0, len(names))
	for _, name := range names {
		loc, err := time.LoadLocation(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrZoneNotFound, name, err)
		}
		z, err := FromLocation(loc, defaultFrom, defaultTo)
		if err != nil {
			return nil, err
		}
		zones = append(zones, z)
	}
	if err := db.AddZone(zones...); err != nil {
		return nil, err
	}

	if err := db.Link(links...); err != nil {
		return nil, err
	}

	db.mu.Lock()
	db.version = "go"
	db.mu.Unlock()

	return db, nil
}
