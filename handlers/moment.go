package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/dmitrymomot/babel/internal"
	"github.com/dmitrymomot/babel/pkg/locale"
	"github.com/dmitrymomot/babel/pkg/moment"
	"github.com/dmitrymomot/babel/pkg/tz"
)

// FormatResponse is the body of GET /v1/moment/format.
type FormatResponse struct {
	Result string `json:"result"`
	Valid  bool   `json:"valid"`
	ISO    string `json:"iso,omitempty"`
	Locale string `json:"locale"`
	Zone   string `json:"zone"`
}

// RelativeResponse is the body of GET /v1/moment/relative.
type RelativeResponse struct {
	Result   string `json:"result"`
	Calendar string `json:"calendar"`
	Valid    bool   `json:"valid"`
	Locale   string `json:"locale"`
}

// Moment formats dates and relative times.
type Moment struct {
	zones *tz.Database
}

func NewMoment(zones *tz.Database) *Moment {
	return &Moment{zones: zones}
}

func (h *Moment) Routes(r internal.Router) {
	r.GET("/v1/moment/format", h.format)
	r.GET("/v1/moment/relative", h.relative)
}

// format renders value with a layout of moment tokens.
//
//	GET /v1/moment/format?value=2024-03-10T09:30:00Z&format=LLLL&locale=de&tz=Europe/Berlin
//
// value may be an ISO 8601 or RFC 2822 string or Unix milliseconds; it
// defaults to now. parse gives a layout for other inputs. Without tz the
// result is shown in UTC. Unparsable input yields the locale's invalid
// date text, not an error.
func (h *Moment) format(c internal.Context) error {
	code := momentLocale(c)
	zone, err := h.zone(c.Query("tz"))
	if err != nil {
		return err
	}

	m := h.parse(c.Query("value"), c.Query("parse"), code, zone)
	resp := FormatResponse{
		Result: m.Format(c.Query("format")),
		Valid:  m.IsValid(),
		ISO:    m.ToISOString(),
		Locale: code,
		Zone:   "UTC",
	}
	if zone != nil {
		resp.Zone = zone.Name
	}
	return c.JSON(http.StatusOK, resp)
}

// relative describes value relative to ref ("3 days ago", "in an hour").
//
//	GET /v1/moment/relative?value=2024-03-07T12:00:00Z&ref=2024-03-10T12:00:00Z&locale=fr
func (h *Moment) relative(c internal.Context) error {
	code := momentLocale(c)
	zone, err := h.zone(c.Query("tz"))
	if err != nil {
		return err
	}

	m := h.parse(c.Query("value"), c.Query("parse"), code, zone)
	ref := h.parse(c.Query("ref"), c.Query("parse"), code, zone)
	withoutSuffix, _, err := internal.QueryValue[bool](c, "without_suffix", internal.WithErrorCode(CodeInvalidParam))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, RelativeResponse{
		Result:   m.From(ref, withoutSuffix),
		Calendar: m.Calendar(ref),
		Valid:    m.IsValid() && ref.IsValid(),
		Locale:   code,
	})
}

func (h *Moment) parse(value, layout, code string, zone *tz.Zone) moment.Moment {
	opts := []moment.ParseOption{moment.UseLocale(code), moment.UseLocation(time.UTC)}
	if zone != nil {
		opts = append(opts, moment.UseZone(zone))
	}

	var m moment.Moment
	switch {
	case layout != "" && value != "":
		m, _ = moment.ParseFormat(value, layout, opts...)
		return m
	case value == "":
		m = moment.Now()
	default:
		ms, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			m, _ = moment.Parse(value, opts...)
			return m
		}
		m = moment.UnixMilli(ms)
	}
	if zone != nil {
		return m.Tz(zone).WithLocale(code)
	}
	return m.UTC().WithLocale(code)
}

func (h *Moment) zone(name string) (*tz.Zone, error) {
	if name == "" || h.zones == nil {
		return nil, nil
	}
	z, err := h.zones.Zone(name)
	if err != nil {
		return nil, domainError(err)
	}
	return z, nil
}

// momentLocale picks the calendar locale: an explicit locale parameter
// matched against the registered calendar locales, else the locale the
// I18n middleware negotiated.
func momentLocale(c internal.Context) string {
	if q := c.Query("locale"); q != "" {
		return locale.Match(q).Code
	}
	return c.LocaleInfo().Code
}
