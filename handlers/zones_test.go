package handlers_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/babel/handlers"
	"github.com/dmitrymomot/babel/internal"
	"github.com/dmitrymomot/babel/pkg/tz"
)

func zonesApp(t *testing.T) *internal.App {
	t.Helper()

	zones, err := tz.Default()
	require.NoError(t, err)
	return internal.New(internal.WithHandlers(handlers.NewZones(zones)))
}

func TestZonesList(t *testing.T) {
	t.Parallel()

	app := zonesApp(t)

	w := do(t, app, http.MethodGet, "/v1/tz", "")
	require.Equal(t, http.StatusOK, w.Code)
	all := decode[handlers.ZoneListResponse](t, w)
	assert.NotEmpty(t, all.Version)
	assert.Contains(t, all.Names, "America/New_York")

	w = do(t, app, http.MethodGet, "/v1/tz?q=europe/", "")
	require.Equal(t, http.StatusOK, w.Code)
	europe := decode[handlers.ZoneListResponse](t, w)
	assert.Contains(t, europe.Names, "Europe/Berlin")
	assert.NotContains(t, europe.Names, "America/New_York")
	for _, n := range europe.Names {
		assert.True(t, strings.HasPrefix(n, "Europe/"), n)
	}
}

func TestZonesLookup(t *testing.T) {
	t.Parallel()

	app := zonesApp(t)

	tests := []struct {
		name   string
		target string
		want   handlers.ZoneResponse
	}{
		{
			name:   "summer time",
			target: "/v1/tz/America/New_York?at=2024-07-01T12:00:00Z",
			want:   handlers.ZoneResponse{Name: "America/New_York", Abbr: "EDT", Offset: -240, At: "2024-07-01T12:00:00Z", Local: "2024-07-01T08:00:00-04:00"},
		},
		{
			name:   "standard time from unix milliseconds",
			target: "/v1/tz/America/New_York?at=1704110400000",
			want:   handlers.ZoneResponse{Name: "America/New_York", Abbr: "EST", Offset: -300, At: "2024-01-01T12:00:00Z", Local: "2024-01-01T07:00:00-05:00"},
		},
		{
			name:   "case-insensitive name",
			target: "/v1/tz/asia/tokyo?at=2024-07-01T12:00:00Z",
			want:   handlers.ZoneResponse{Name: "Asia/Tokyo", Abbr: "JST", Offset: 540, At: "2024-07-01T12:00:00Z", Local: "2024-07-01T21:00:00+09:00"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := do(t, app, http.MethodGet, tt.target, "")
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			assert.Equal(t, tt.want, decode[handlers.ZoneResponse](t, w))
		})
	}
}

func TestZonesLookupErrors(t *testing.T) {
	t.Parallel()

	app := zonesApp(t)

	w := do(t, app, http.MethodGet, "/v1/tz/Mars/Olympus", "")
	requireError(t, w, http.StatusNotFound, handlers.CodeZoneNotFound)

	w = do(t, app, http.MethodGet, "/v1/tz/Europe/Berlin?at=soon", "")
	requireError(t, w, http.StatusBadRequest, handlers.CodeInvalidTime)
}
