package internal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"

	"github.com/dmitrymomot/babel/pkg/i18n"
	"github.com/dmitrymomot/babel/pkg/job"
	"github.com/dmitrymomot/babel/pkg/locale"
	"github.com/dmitrymomot/babel/pkg/moment"
)

// Default limit for JSON request bodies.
const defaultMaxBodyBytes = 1 << 20

// TranslatorKey is the context key used to store the i18n Translator.
type TranslatorKey struct{}

// LocaleKey is the context key used to store the negotiated locale code.
type LocaleKey struct{}

// LocaleInfoKey is the context key used to store the *locale.Locale that
// matches the negotiated locale.
type LocaleInfoKey struct{}

// RequestIDKey is the context key used to store the request ID.
type RequestIDKey struct{}

// Context provides request/response access and helper methods.
// It also implements context.Context by delegating to the underlying request context.
type Context interface {
	context.Context

	// Request returns the underlying *http.Request.
	Request() *http.Request

	// Response returns the underlying http.ResponseWriter.
	Response() http.ResponseWriter

	// Context returns the request's context.Context.
	Context() context.Context

	// Param returns the URL parameter value by name.
	// Returns empty string if the parameter doesn't exist.
	Param(name string) string

	// Query returns the query parameter value by name.
	Query(name string) string

	// QueryDefault returns the query parameter value or a default.
	QueryDefault(name, defaultValue string) string

	// QueryValues returns all query parameters.
	QueryValues() url.Values

	// Header returns the request header value by name.
	Header(name string) string

	// SetHeader sets a response header.
	SetHeader(name, value string)

	// Cookie returns a plain cookie value.
	Cookie(name string) (string, error)

	// JSON writes a JSON response with the given status code.
	JSON(code int, v any) error

	// String writes a plain text response with the given status code.
	String(code int, s string) error

	// NoContent writes a response with no body.
	NoContent(code int) error

	// Error creates and returns an HTTPError without writing a response.
	// The error should be returned from the handler to trigger the error handler.
	Error(code int, message string, opts ...HTTPErrorOption) *HTTPError

	// BindJSON decodes the JSON body into v. Unknown fields and trailing
	// data are rejected; the body is capped at 1MB.
	BindJSON(v any) error

	// Written returns true if a response has already been written.
	Written() bool

	// ResponseWriter returns the wrapped writer.
	ResponseWriter() *ResponseWriter

	// RequestID returns the ID set by the RequestID middleware.
	RequestID() string

	// Logger returns the logger for advanced usage.
	Logger() *slog.Logger

	LogDebug(msg string, attrs ...any)
	LogInfo(msg string, attrs ...any)
	LogWarn(msg string, attrs ...any)
	LogError(msg string, attrs ...any)

	// Set stores a value in the request context.
	Set(key any, value any)

	// Get retrieves a value from the request context.
	// Returns nil if the key is not found.
	Get(key any) any

	// Enqueue adds a job to the queue for background processing.
	// Returns job.ErrNotConfigured if WithJobs was not called.
	Enqueue(name string, payload any, opts ...job.EnqueueOption) error

	// EnqueueTx adds a job to the queue within a transaction.
	// The job is only visible after the transaction commits.
	EnqueueTx(tx pgx.Tx, name string, payload any, opts ...job.EnqueueOption) error

	// Translator returns the Translator stored by the I18n middleware, or nil.
	Translator() *i18n.Translator

	// T translates a key in the negotiated locale.
	// Returns the key itself if no translator is in context.
	T(key string, values ...i18n.M) string

	// Tn translates a key with pluralization.
	// Returns the key itself if no translator is in context.
	Tn(key string, n int, values ...i18n.M) string

	// Locale returns the negotiated locale code, or "" without the I18n middleware.
	Locale() string

	// LocaleInfo returns month names, layouts and relative time phrases
	// for the negotiated locale. Falls back to English.
	LocaleInfo() *locale.Locale

	// FormatNumber formats a number using locale-specific separators.
	FormatNumber(n float64) string

	// FormatCurrency formats a currency amount using locale-specific formatting.
	FormatCurrency(amount float64) string

	// FormatPercent formats a ratio as a percentage.
	FormatPercent(n float64) string

	// FormatDate formats t with the locale's L layout.
	FormatDate(t time.Time) string

	// FormatDateTime formats t with the locale's LLL layout.
	FormatDateTime(t time.Time) string
}

// requestContext implements the Context interface.
type requestContext struct {
	response       http.ResponseWriter
	request        *http.Request
	responseWriter *ResponseWriter
	logger         *slog.Logger
	jobs           Enqueuer
}

// newContext creates a new context with the response wrapper.
// An already wrapped writer is reused so middleware and handlers share
// the written state.
func newContext(w http.ResponseWriter, r *http.Request, app *App) *requestContext {
	rw, ok := w.(*ResponseWriter)
	if !ok {
		rw = NewResponseWriter(w)
	}

	return &requestContext{
		request:        r,
		response:       rw,
		responseWriter: rw,
		logger:         app.logger,
		jobs:           app.jobs,
	}
}

func (c *requestContext) Request() *http.Request {
	return c.request
}

func (c *requestContext) Response() http.ResponseWriter {
	return c.response
}

func (c *requestContext) Context() context.Context {
	return c.request.Context()
}

func (c *requestContext) Param(name string) string {
	return chi.URLParam(c.request, name)
}

func (c *requestContext) Query(name string) string {
	return c.request.URL.Query().Get(name)
}

func (c *requestContext) QueryDefault(name, defaultValue string) string {
	v := c.request.URL.Query().Get(name)
	if v == "" {
		return defaultValue
	}
	return v
}

func (c *requestContext) QueryValues() url.Values {
	return c.request.URL.Query()
}

func (c *requestContext) Deadline() (time.Time, bool) {
	return c.request.Context().Deadline()
}

func (c *requestContext) Done() <-chan struct{} {
	return c.request.Context().Done()
}

func (c *requestContext) Err() error {
	return c.request.Context().Err()
}

func (c *requestContext) Value(key any) any {
	return c.request.Context().Value(key)
}

func (c *requestContext) Header(name string) string {
	return c.request.Header.Get(name)
}

func (c *requestContext) SetHeader(name, value string) {
	c.response.Header().Set(name, value)
}

func (c *requestContext) Cookie(name string) (string, error) {
	ck, err := c.request.Cookie(name)
	if err != nil {
		return "", err
	}
	return ck.Value, nil
}

func (c *requestContext) JSON(code int, v any) error {
	c.response.Header().Set("Content-Type", "application/json; charset=utf-8")
	c.response.WriteHeader(code)
	return json.NewEncoder(c.response).Encode(v)
}

func (c *requestContext) String(code int, s string) error {
	c.response.Header().Set("Content-Type", "text/plain; charset=utf-8")
	c.response.WriteHeader(code)
	_, err := c.response.Write([]byte(s))
	return err
}

func (c *requestContext) NoContent(code int) error {
	c.response.WriteHeader(code)
	return nil
}

func (c *requestContext) Error(code int, message string, opts ...HTTPErrorOption) *HTTPError {
	err := NewHTTPError(code, message)
	for _, opt := range opts {
		opt(err)
	}
	return err
}

func (c *requestContext) BindJSON(v any) error {
	if c.request.Body == nil {
		return ErrBadRequest("request body is empty", WithErrorCode("empty_body"))
	}
	dec := json.NewDecoder(http.MaxBytesReader(c.response, c.request.Body, defaultMaxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrBadRequest("request body is empty", WithErrorCode("empty_body"))
		}
		return ErrBadRequest("invalid JSON body", WithErrorCode("invalid_json"), WithDetail(err.Error()), WithError(err))
	}
	if dec.More() {
		return ErrBadRequest("invalid JSON body", WithErrorCode("invalid_json"), WithDetail("unexpected data after the JSON value"))
	}
	return nil
}

func (c *requestContext) Written() bool {
	return c.responseWriter.Written()
}

func (c *requestContext) ResponseWriter() *ResponseWriter {
	return c.responseWriter
}

func (c *requestContext) RequestID() string {
	id, _ := c.Get(RequestIDKey{}).(string)
	return id
}

func (c *requestContext) Logger() *slog.Logger {
	return c.logger
}

func (c *requestContext) LogDebug(msg string, attrs ...any) {
	c.logger.DebugContext(c.request.Context(), msg, attrs...)
}

func (c *requestContext) LogInfo(msg string, attrs ...any) {
	c.logger.InfoContext(c.request.Context(), msg, attrs...)
}

func (c *requestContext) LogWarn(msg string, attrs ...any) {
	c.logger.WarnContext(c.request.Context(), msg, attrs...)
}

func (c *requestContext) LogError(msg string, attrs ...any) {
	c.logger.ErrorContext(c.request.Context(), msg, attrs...)
}

func (c *requestContext) Set(key, value any) {
	ctx := context.WithValue(c.request.Context(), key, value)
	c.request = c.request.WithContext(ctx)
}

func (c *requestContext) Get(key any) any {
	return c.request.Context().Value(key)
}

func (c *requestContext) Enqueue(name string, payload any, opts ...job.EnqueueOption) error {
	if c.jobs == nil {
		return job.ErrNotConfigured
	}
	return c.jobs.Enqueue(c.Context(), name, payload, opts...)
}

func (c *requestContext) EnqueueTx(tx pgx.Tx, name string, payload any, opts ...job.EnqueueOption) error {
	if c.jobs == nil {
		return job.ErrNotConfigured
	}
	return c.jobs.EnqueueTx(c.Context(), tx, name, payload, opts...)
}

func (c *requestContext) Translator() *i18n.Translator {
	if tr, ok := c.Get(TranslatorKey{}).(*i18n.Translator); ok {
		return tr
	}
	return nil
}

func (c *requestContext) T(key string, values ...i18n.M) string {
	if tr := c.Translator(); tr != nil {
		return tr.T(key, values...)
	}
	return key
}

func (c *requestContext) Tn(key string, n int, values ...i18n.M) string {
	if tr := c.Translator(); tr != nil {
		return tr.Tn(key, n, values...)
	}
	return key
}

func (c *requestContext) Locale() string {
	if v, ok := c.Get(LocaleKey{}).(string); ok {
		return v
	}
	if tr := c.Translator(); tr != nil {
		return tr.Locale()
	}
	return ""
}

func (c *requestContext) LocaleInfo() *locale.Locale {
	if l, ok := c.Get(LocaleInfoKey{}).(*locale.Locale); ok && l != nil {
		return l
	}
	return locale.Get(c.Locale())
}

func (c *requestContext) FormatNumber(n float64) string {
	if tr := c.Translator(); tr != nil {
		return tr.FormatNumber(n)
	}
	return fmt.Sprintf("%g", n)
}

func (c *requestContext) FormatCurrency(amount float64) string {
	if tr := c.Translator(); tr != nil {
		return tr.FormatCurrency(amount)
	}
	return fmt.Sprintf("%.2f", amount)
}

func (c *requestContext) FormatPercent(n float64) string {
	if tr := c.Translator(); tr != nil {
		return tr.FormatPercent(n)
	}
	return fmt.Sprintf("%.0f%%", n*100)
}

func (c *requestContext) FormatDate(t time.Time) string {
	return moment.New(t).WithLocale(c.LocaleInfo().Code).Format("L")
}

func (c *requestContext) FormatDateTime(t time.Time) string {
	return moment.New(t).WithLocale(c.LocaleInfo().Code).Format("LLL")
}
