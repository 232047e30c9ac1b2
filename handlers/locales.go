package handlers

import (
	"net/http"

	"github.com/dmitrymomot/babel/internal"
	"github.com/dmitrymomot/babel/pkg/locale"
)

// LocaleResponse is the body of GET /v1/locales/{code}.
type LocaleResponse struct {
	Code           string            `json:"code"`
	Months         [12]string        `json:"months"`
	MonthsGenitive [12]string        `json:"months_genitive,omitzero"`
	MonthsShort    [12]string        `json:"months_short"`
	Weekdays       [7]string         `json:"weekdays"`
	WeekdaysShort  [7]string         `json:"weekdays_short"`
	WeekdaysMin    [7]string         `json:"weekdays_min"`
	LongDateFormat map[string]string `json:"long_date_format"`
	Ordinals       []string          `json:"ordinals"`
	Week           WeekResponse      `json:"week"`
	InvalidDate    string            `json:"invalid_date"`
}

// WeekResponse describes the locale week.
type WeekResponse struct {
	Dow int `json:"dow"`
	Doy int `json:"doy"`
}

// Locales exposes the calendar locales of a registry.
type Locales struct {
	registry *locale.Registry
}

// NewLocales serves registry, or the default registry when nil.
func NewLocales(registry *locale.Registry) *Locales {
	if registry == nil {
		registry = locale.Default()
	}
	return &Locales{registry: registry}
}

func (h *Locales) Routes(r internal.Router) {
	r.GET("/v1/locales", h.list)
	r.GET("/v1/locales/{code}", h.get)
}

func (h *Locales) list(c internal.Context) error {
	return c.JSON(http.StatusOK, map[string][]string{"locales": h.registry.Codes()})
}

// get returns the vocabulary of one locale. Codes must be registered
// exactly; no base language fallback applies here.
func (h *Locales) get(c internal.Context) error {
	l, ok := h.registry.Lookup(c.Param("code"))
	if !ok {
		return internal.ErrNotFound("locale not found", internal.WithErrorCode(CodeLocaleNotFound))
	}

	resp := LocaleResponse{
		Code:           l.Code,
		Months:         l.Months.Standalone,
		MonthsGenitive: l.Months.Format,
		MonthsShort:    l.MonthsShort.Standalone,
		Weekdays:       l.Weekdays,
		WeekdaysShort:  l.WeekdaysShort,
		WeekdaysMin:    l.WeekdaysMin,
		LongDateFormat: l.LongDateFormat,
		Week:           WeekResponse{Dow: l.Week.Dow, Doy: l.Week.Doy},
		InvalidDate:    l.InvalidDate,
	}
	if l.Ordinal != nil {
		for n := 1; n <= 4; n++ {
			resp.Ordinals = append(resp.Ordinals, l.Ordinal(n, "D"))
		}
	}
	return c.JSON(http.StatusOK, resp)
}
