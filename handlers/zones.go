package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrymomot/babel/internal"
	"github.com/dmitrymomot/babel/pkg/moment"
	"github.com/dmitrymomot/babel/pkg/tz"
)

// ZoneListResponse is the body of GET /v1/tz.
type ZoneListResponse struct {
	Version string   `json:"version"`
	Names   []string `json:"names"`
}

// ZoneResponse is the body of GET /v1/tz/{zone}.
type ZoneResponse struct {
	Name string `json:"name"`
	Abbr string `json:"abbr"`
	// Offset is in minutes east of UTC.
	Offset float64 `json:"offset"`
	At     string  `json:"at"`
	Local  string  `json:"local"`
}

// Zones exposes the tz database.
type Zones struct {
	db *tz.Database
}

func NewZones(db *tz.Database) *Zones {
	return &Zones{db: db}
}

func (h *Zones) Routes(r internal.Router) {
	r.GET("/v1/tz", h.list)
	r.GET("/v1/tz/*", h.lookup)
}

// list returns the zone names, optionally filtered by a case-insensitive
// prefix in q.
func (h *Zones) list(c internal.Context) error {
	names := h.db.Names()
	if q := strings.ToLower(c.Query("q")); q != "" {
		filtered := names[:0:0]
		for _, n := range names {
			if strings.HasPrefix(strings.ToLower(n), q) {
				filtered = append(filtered, n)
			}
		}
		names = filtered
	}
	return c.JSON(http.StatusOK, ZoneListResponse{Version: h.db.Version(), Names: names})
}

// lookup reports the abbreviation and offset of a zone at an instant.
//
//	GET /v1/tz/America/New_York?at=2024-07-01T12:00:00Z
//
// at accepts ISO 8601 or Unix milliseconds and defaults to now.
func (h *Zones) lookup(c internal.Context) error {
	z, err := h.db.Zone(c.Param("*"))
	if err != nil {
		return domainError(err)
	}

	at := time.Now()
	if v := c.Query("at"); v != "" {
		if ms, err := strconv.ParseInt(v, 10, 64); err == nil {
			at = time.UnixMilli(ms)
		} else {
			m, err := moment.Parse(v, moment.UseLocation(time.UTC))
			if err != nil {
				return internal.ErrBadRequest("at must be ISO 8601 or Unix milliseconds", internal.WithErrorCode(CodeInvalidTime), internal.WithError(err))
			}
			at = m.Time()
		}
	}

	ms := at.UnixMilli()
	return c.JSON(http.StatusOK, ZoneResponse{
		Name:   z.Name,
		Abbr:   z.Abbr(ms),
		Offset: z.UTCOffset(ms),
		At:     at.UTC().Format(time.RFC3339),
		Local:  z.In(at).Format("2006-01-02T15:04:05-07:00"),
	})
}
