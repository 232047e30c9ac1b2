package middlewares_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/babel/internal"
	"github.com/dmitrymomot/babel/middlewares"
	"github.com/dmitrymomot/babel/pkg/logger"
)

func TestRequestID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		opts       []middlewares.RequestIDOption
		headers    map[string]string
		wantHeader string
		want       string
	}{
		{
			name:       "reuses X-Request-ID",
			headers:    map[string]string{"X-Request-ID": "upstream-1"},
			wantHeader: "X-Request-ID",
			want:       "upstream-1",
		},
		{
			name:       "falls back to X-Correlation-ID",
			headers:    map[string]string{"X-Correlation-ID": "corr-7"},
			wantHeader: "X-Request-ID",
			want:       "corr-7",
		},
		{
			name:       "custom headers in priority order",
			opts:       []middlewares.RequestIDOption{middlewares.WithRequestIDHeaders("X-Custom-ID", "X-Trace-ID")},
			headers:    map[string]string{"X-Trace-ID": "trace-2", "X-Request-ID": "ignored"},
			wantHeader: "X-Request-ID",
			want:       "trace-2",
		},
		{
			name:       "custom generator",
			opts:       []middlewares.RequestIDOption{middlewares.WithRequestIDGenerator(func() string { return "gen-1" })},
			wantHeader: "X-Request-ID",
			want:       "gen-1",
		},
		{
			name:       "custom response header",
			opts:       []middlewares.RequestIDOption{middlewares.WithRequestIDResponseHeader("X-Trace")},
			headers:    map[string]string{"X-Request-ID": "abc"},
			wantHeader: "X-Trace",
			want:       "abc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()
			c := newTestContext(rec, req)

			var got string
			err := middlewares.RequestID(tt.opts...)(func(c internal.Context) error {
				got = middlewares.GetRequestID(c)
				return nil
			})(c)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want, rec.Header().Get(tt.wantHeader))
			assert.Equal(t, tt.want, c.RequestID())
		})
	}
}

func TestRequestIDGeneratesUUID(t *testing.T) {
	t.Parallel()

	c := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, middlewares.RequestID()(func(internal.Context) error { return nil })(c))

	_, err := uuid.Parse(middlewares.GetRequestID(c))
	require.NoError(t, err)
	assert.Empty(t, middlewares.GetRequestID(newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))))
}

func TestRequestIDExtractor(t *testing.T) {
	t.Parallel()

	extract := middlewares.RequestIDExtractor()

	_, ok := extract(context.Background())
	assert.False(t, ok)

	attr, ok := extract(context.WithValue(context.Background(), internal.RequestIDKey{}, "req-42"))
	require.True(t, ok)
	assert.Equal(t, "request_id", attr.Key)
	assert.Equal(t, "req-42", attr.Value.String())
}

func TestRequestIDInLogsAndErrors(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, logger.Config{Level: "debug", Format: "json"}, middlewares.RequestIDExtractor())

	app := internal.New(
		internal.WithCustomLogger(log),
		internal.WithMiddleware(middlewares.RequestID()),
		internal.WithHandlers(funcHandler(func(r internal.Router) {
			r.GET("/", func(c internal.Context) error {
				c.LogInfo("looking up key")
				return internal.ErrNotFound("missing")
			})
		})),
	)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "req-abc")
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)

	var body internal.ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "req-abc", body.Error.RequestID)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.SplitN(buf.Bytes(), []byte("\n"), 2)[0], &entry))
	assert.Equal(t, "looking up key", entry[slog.MessageKey])
	assert.Equal(t, "req-abc", entry["request_id"])
}

type funcHandler func(internal.Router)

func (f funcHandler) Routes(r internal.Router) { f(r) }
