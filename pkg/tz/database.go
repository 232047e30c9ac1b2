package tz

import (
	"cmp"
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"strings"
	"sync"
	"time"
)

// PackedBundle is the JSON document exchanged by packed zone databases.
type PackedBundle struct {
	Version string   `json:"version"`
	Zones   []string `json:"zones"`
	Links   []string `json:"links"`
}

// ParseBundle decodes a packed bundle document.
func ParseBundle(data []byte) (PackedBundle, error) {
	var b PackedBundle
	if err := json.Unmarshal(data, &b); err != nil {
		return PackedBundle{}, fmt.Errorf("%w: bundle: %w", ErrInvalidPacked, err)
	}
	return b, nil
}

// Database is a concurrency-safe set of zones and links with
// case-insensitive lookup.
type Database struct {
	mu      sync.RWMutex
	zones   map[string]*Zone
	links   map[string]string
	names   map[string]string
	version string

	moveAmbiguousForward bool
	moveInvalidForward   bool
}

// Option configures a Database.
type Option func(*Database)

// WithMoveAmbiguousForward resolves wall times that occur twice to the
// later offset instead of the earlier one.
func WithMoveAmbiguousForward(move bool) Option {
	return func(db *Database) {
		db.moveAmbiguousForward = move
	}
}

// WithMoveInvalidForward controls whether wall times skipped by a forward
// transition move forward (default) or resolve with the new offset.
func WithMoveInvalidForward(move bool) Option {
	return func(db *Database) {
		db.moveInvalidForward = move
	}
}

// NewDatabase creates an empty database.
func NewDatabase(opts ...Option) *Database {
	db := &Database{
		zones:              make(map[string]*Zone),
		links:              make(map[string]string),
		names:              make(map[string]string),
		moveInvalidForward: true,
	}
	for _, opt := range opts {
		opt(db)
	}
	return db
}

func normalizeName(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, "/", "_"))
}

// Add unpacks and stores zones.
func (db *Database) Add(packed ...string) error {
	zones := make([]*Zone, 0, len(packed))
	for _, p := range packed {
		z, err := Unpack(p)
		if err != nil {
			return err
		}
		zones = append(zones, z)
	}
	return db.AddZone(zones...)
}

// AddZone stores already unpacked zones. Nothing is stored unless every
// zone passes Validate.
func (db *Database) AddZone(zones ...*Zone) error {
	for _, z := range zones {
		if err := z.Validate(); err != nil {
			return err
		}
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	for _, z := range zones {
		key := normalizeName(z.Name)
		db.zones[key] = z.clone()
		db.names[key] = z.Name
	}
	return nil
}

// Link registers aliases in the packed link format "Canonical|Alias".
// Links work in both directions.
func (db *Database) Link(packed ...string) error {
	type link struct{ a, b string }
	parsed := make([]link, 0, len(packed))
	for _, p := range packed {
		a, b, ok := strings.Cut(p, "|")
		if !ok || a == "" || b == "" || strings.Contains(b, "|") {
			return fmt.Errorf("%w: %q", ErrInvalidLink, p)
		}
		parsed = append(parsed, link{a, b})
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	for _, l := range parsed {
		na, nb := normalizeName(l.a), normalizeName(l.b)
		db.links[na] = nb
		db.names[na] = l.a
		db.links[nb] = na
		db.names[nb] = l.b
	}
	return nil
}

// Load adds the zones and links of a bundle and records its version.
func (db *Database) Load(b PackedBundle) error {
	if err := db.Add(b.Zones...); err != nil {
		return err
	}
	if err := db.Link(b.Links...); err != nil {
		return err
	}
	db.mu.Lock()
	db.version = b.Version
	db.mu.Unlock()
	return nil
}

// Zone returns the zone for name, following links. The match is
// case-insensitive and the returned zone carries the requested name.
func (db *Database) Zone(name string) (*Zone, error) {
	key := normalizeName(name)

	db.mu.RLock()
	defer db.mu.RUnlock()

	z, ok := db.zones[key]
	if !ok {
		target, linked := db.links[key]
		if !linked {
			return nil, fmt.Errorf("%w: %q", ErrZoneNotFound, name)
		}
		if z, ok = db.zones[target]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrZoneNotFound, name)
		}
	}

	c := z.clone()
	c.Name = db.names[key]
	c.moveAmbiguousForward = db.moveAmbiguousForward
	c.moveInvalidForward = db.moveInvalidForward
	return c, nil
}

// Names returns the sorted display names of all zones and links.
func (db *Database) Names() []string {
	db.mu.RLock()
	defer db.mu.RUnlock()

	names := make([]string, 0, len(db.names))
	for key, name := range db.names {
		if _, ok := db.zones[key]; ok {
			names = append(names, name)
			continue
		}
		if target, ok := db.links[key]; ok {
			if _, ok := db.zones[target]; ok {
				names = append(names, name)
			}
		}
	}
	slices.Sort(names)
	return names
}

// Version returns the version of the last loaded bundle.
func (db *Database) Version() string {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return db.version
}

// Guess returns the name of the zone the process runs in. The name of
// time.Local (or $TZ) is used when the database knows it; otherwise the
// zone whose offsets match the local clock at sample instants is picked,
// preferring the most populated. "UTC" is returned when nothing matches.
func (db *Database) Guess() string {
	for _, candidate := range []string{time.Local.String(), os.Getenv("TZ")} {
		if candidate == "" || candidate == "Local" {
			continue
		}
		if z, err := db.Zone(candidate); err == nil {
			return z.Name
		}
	}

	if name := db.guessByOffsets(time.Local, time.Now()); name != "" {
		return name
	}
	return "UTC"
}

// guessByOffsets compares offsets at the start and middle of the current
// and the previous four years.
func (db *Database) guessByOffsets(loc *time.Location, now time.Time) string {
	var samples []time.Time
	for y := now.Year() - 4; y <= now.Year(); y++ {
		samples = append(samples,
			time.Date(y, time.January, 15, 12, 0, 0, 0, time.UTC),
			time.Date(y, time.July, 15, 12, 0, 0, 0, time.UTC),
		)
	}

	db.mu.RLock()
	defer db.mu.RUnlock()

	var matches []*Zone
	for _, z := range db.zones {
		ok := true
		for _, s := range samples {
			_, offset := s.In(loc).Zone()
			if z.UTCOffset(s.UnixMilli())*60 != float64(offset) {
				ok = false
				break
			}
		}
		if ok {
			matches = append(matches, z)
		}
	}
	if len(matches) == 0 {
		return ""
	}

	slices.SortFunc(matches, func(a, b *Zone) int {
		if c := cmp.Compare(b.Population, a.Population); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return matches[0].Name
}
