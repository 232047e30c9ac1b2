// Package tz resolves UTC offsets from packed time zone histories.
//
// A zone is a list of periods, each with an abbreviation, an offset in
// minutes west of UTC and the instant it ends. Zones travel in a compact
// text form, one line per zone:
//
//	America/New_York|EST EDT|50 40|0101|1Lz50 1zb0|21e6
//
// The fields are the name, the distinct abbreviations, their offsets, the
// per-period index into those lists, the transition deltas in minutes and
// the population. Numbers use base 60 with the digits 0-9a-zA-X. Links
// ("America/New_York|US/Eastern") alias one name to another.
//
// A Database holds zones and links:
//
//	db := tz.NewDatabase()
//	err := db.Load(bundle)
//	ny, err := db.Zone("us/eastern")
//	ny.Abbr(time.Now().UnixMilli())  // "EDT"
//
// Wall clock readings are resolved with Zone.Parse or Zone.Date. Times
// inside a spring-forward gap move forward; times that occur twice pick the
// earlier offset unless WithMoveAmbiguousForward is set.
//
// Default builds a database from the Go tzdata embedded in the binary, so
// no packed data has to be shipped. FromLocation converts any
// *time.Location the same way.
package tz
