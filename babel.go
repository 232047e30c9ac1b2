package babel

import (
	"context"
	"log/slog"
	"time"

	"github.com/dmitrymomot/babel/internal"
	"github.com/dmitrymomot/babel/pkg/health"
	"github.com/dmitrymomot/babel/pkg/i18n"
	"github.com/dmitrymomot/babel/pkg/job"
	"github.com/dmitrymomot/babel/pkg/logger"
)

// Type aliases - public API
type (
	// App serves the HTTP API. It manages routing, middleware, health
	// health checks, job workers and graceful shutdown.
	App = internal.App

	// Router is the interface handlers use to declare routes.
	Router = internal.Router

	// Context provides request/response access, the negotiated locale and
	// helper methods.
	Context = internal.Context

	// Handler declares routes on a router.
	Handler = internal.Handler

	// HandlerFunc is the signature for route handlers.
	HandlerFunc = internal.HandlerFunc

	// Middleware wraps a HandlerFunc to add cross-cutting concerns.
	Middleware = internal.Middleware

	// ErrorHandler handles errors returned from handlers.
	ErrorHandler = internal.ErrorHandler

	// Option configures the application.
	Option = internal.Option

	// RunOption configures the server runtime.
	RunOption = internal.RunOption

	// HealthOption configures health check endpoints.
	HealthOption = internal.HealthOption

	// HTTPError is an error with an HTTP status and an optional error code.
	HTTPError = internal.HTTPError

	// HTTPErrorOption configures an HTTPError.
	HTTPErrorOption = internal.HTTPErrorOption

	// Extractor reads a value from the first source that has it.
	Extractor = internal.Extractor

	// ExtractorSource reads one value from the request.
	ExtractorSource = internal.ExtractorSource

	// Enqueuer dispatches background jobs.
	Enqueuer = internal.Enqueuer

	// ContextExtractor extracts a slog attribute from context.
	// Used with WithLogger to add request-scoped values to logs.
	ContextExtractor = logger.ContextExtractor

	// Translator renders messages in one locale.
	Translator = i18n.Translator

	// M holds interpolation values.
	M = i18n.M

	// JobManager runs background jobs on River.
	JobManager = job.Manager

	// EnqueueOption configures job enqueueing.
	EnqueueOption = job.EnqueueOption
)

// New creates an application. The App is immutable after creation.
//
// Example:
//
//	app := babel.New(
//	    babel.WithLogger("babeld", middlewares.RequestIDExtractor()),
//	    babel.WithMiddleware(middlewares.RequestID(), middlewares.I18n(catalogs)),
//	    babel.WithHandlers(handlers.NewTranslate(catalogs)),
//	)
//
//	err := app.Run(":8080", babel.StartupHook(catalogs.Reload))
func New(opts ...Option) *App {
	return internal.New(opts...)
}

// App options

// WithMiddleware adds global middleware. Middleware is applied in the
// order provided.
func WithMiddleware(mw ...Middleware) Option {
	return internal.WithMiddleware(mw...)
}

// WithHandlers registers handlers that declare routes.
func WithHandlers(h ...Handler) Option {
	return internal.WithHandlers(h...)
}

// WithErrorHandler replaces DefaultErrorHandler.
func WithErrorHandler(h ErrorHandler) Option {
	return internal.WithErrorHandler(h)
}

// WithNotFoundHandler sets a custom 404 handler.
func WithNotFoundHandler(h HandlerFunc) Option {
	return internal.WithNotFoundHandler(h)
}

// WithMethodNotAllowedHandler sets a custom 405 handler.
func WithMethodNotAllowedHandler(h HandlerFunc) Option {
	return internal.WithMethodNotAllowedHandler(h)
}

// WithHealthChecks enables the liveness and readiness endpoints.
//
// Example:
//
//	babel.WithHealthChecks(
//	    babel.WithReadinessCheck("postgres", db.Healthcheck(pool)),
//	    babel.WithReadinessInfo(func(context.Context) map[string]any {
//	        return map[string]any{"catalog_revision": catalogs.Revision()}
//	    }),
//	)
func WithHealthChecks(opts ...HealthOption) Option {
	return internal.WithHealthChecks(opts...)
}

// WithLogger creates a logger tagged with component. Extractors add
// request-scoped values such as the request ID.
func WithLogger(component string, extractors ...ContextExtractor) Option {
	return internal.WithLogger(component, extractors...)
}

// WithCustomLogger sets a fully custom logger.
func WithCustomLogger(l *slog.Logger) Option {
	return internal.WithCustomLogger(l)
}

// WithJobs enables c.Enqueue and runs the manager's workers.
func WithJobs(m *JobManager) Option {
	return internal.WithJobs(m)
}

// WithJobEnqueuer enables c.Enqueue without running workers.
func WithJobEnqueuer(e Enqueuer) Option {
	return internal.WithJobEnqueuer(e)
}

// Health check options

// WithLivenessPath sets a custom liveness endpoint path.
// Defaults to "/health/live".
func WithLivenessPath(path string) HealthOption {
	return internal.WithLivenessPath(path)
}

// WithReadinessPath sets a custom readiness endpoint path.
// Defaults to "/health/ready".
func WithReadinessPath(path string) HealthOption {
	return internal.WithReadinessPath(path)
}

// WithReadinessCheck adds a named readiness check.
func WithReadinessCheck(name string, fn health.CheckFunc) HealthOption {
	return internal.WithReadinessCheck(name, fn)
}

// WithReadinessInfo adds static or computed fields to the readiness body.
func WithReadinessInfo(fn func(context.Context) map[string]any) HealthOption {
	return internal.WithReadinessInfo(fn)
}

// Run options

// Logger sets the server logger. Defaults to the app logger.
func Logger(l *slog.Logger) RunOption {
	return internal.Logger(l)
}

// ShutdownTimeout sets the timeout for graceful shutdown.
// Defaults to 30 seconds.
func ShutdownTimeout(d time.Duration) RunOption {
	return internal.ShutdownTimeout(d)
}

// StartupHook registers a function to run before the server accepts
// requests. The first error aborts startup.
func StartupHook(fn func(context.Context) error) RunOption {
	return internal.StartupHook(fn)
}

// ShutdownHook registers a cleanup function to run during shutdown.
func ShutdownHook(fn func(context.Context) error) RunOption {
	return internal.ShutdownHook(fn)
}

// WithContext sets the base context. Cancelling it shuts the server down.
func WithContext(ctx context.Context) RunOption {
	return internal.WithContext(ctx)
}

// OnReady is called with the bound address once the server listens.
func OnReady(fn func(addr string)) RunOption {
	return internal.OnReady(fn)
}

// Extractors

// NewExtractor tries sources in order.
func NewExtractor(sources ...ExtractorSource) Extractor {
	return internal.NewExtractor(sources...)
}

// FromHeader reads a request header.
func FromHeader(name string) ExtractorSource { return internal.FromHeader(name) }

// FromQuery reads a query parameter.
func FromQuery(name string) ExtractorSource { return internal.FromQuery(name) }

// FromCookie reads a cookie value.
func FromCookie(name string) ExtractorSource { return internal.FromCookie(name) }

// FromParam reads a route parameter.
func FromParam(name string) ExtractorSource { return internal.FromParam(name) }

// Context helpers

// ContextValue retrieves a typed value from the context.
// Returns the zero value of T if the key is not found or the type differs.
func ContextValue[T any](c Context, key any) T {
	return internal.ContextValue[T](c, key)
}

// Scalar lists the types Param, Query and QueryValue convert to.
type Scalar = internal.Scalar

// Param returns a route parameter converted to T.
func Param[T Scalar](c Context, name string) T {
	return internal.Param[T](c, name)
}

// Query returns a query parameter converted to T.
func Query[T Scalar](c Context, name string) T {
	return internal.Query[T](c, name)
}

// QueryDefault returns a query parameter converted to T, or defaultValue.
func QueryDefault[T Scalar](c Context, name string, defaultValue T) T {
	return internal.QueryDefault[T](c, name, defaultValue)
}

// QueryValue returns a query parameter converted to T and whether it was
// set. A value that does not convert is a 400 HTTPError.
func QueryValue[T Scalar](c Context, name string, opts ...HTTPErrorOption) (T, bool, error) {
	return internal.QueryValue[T](c, name, opts...)
}

// Errors

// DefaultErrorHandler renders errors as localized JSON.
func DefaultErrorHandler(c Context, err error) error {
	return internal.DefaultErrorHandler(c, err)
}

// NewHTTPError creates an HTTPError.
func NewHTTPError(code int, message string) *HTTPError {
	return internal.NewHTTPError(code, message)
}

// WithErrorCode sets a machine-readable code, also used as the
// "errors.<code>" translation key.
func WithErrorCode(code string) HTTPErrorOption { return internal.WithErrorCode(code) }

// WithTitle sets a short summary.
func WithTitle(title string) HTTPErrorOption { return internal.WithTitle(title) }

// WithDetail sets a longer explanation.
func WithDetail(detail string) HTTPErrorOption { return internal.WithDetail(detail) }

// WithError attaches the underlying error. It is logged, never rendered.
func WithError(err error) HTTPErrorOption { return internal.WithError(err) }

func ErrBadRequest(message string, opts ...HTTPErrorOption) *HTTPError {
	return internal.ErrBadRequest(message, opts...)
}

func ErrNotFound(message string, opts ...HTTPErrorOption) *HTTPError {
	return internal.ErrNotFound(message, opts...)
}

func ErrConflict(message string, opts ...HTTPErrorOption) *HTTPError {
	return internal.ErrConflict(message, opts...)
}

func ErrUnprocessable(message string, opts ...HTTPErrorOption) *HTTPError {
	return internal.ErrUnprocessable(message, opts...)
}

func ErrInternal(message string, opts ...HTTPErrorOption) *HTTPError {
	return internal.ErrInternal(message, opts...)
}

func ErrServiceUnavailable(message string, opts ...HTTPErrorOption) *HTTPError {
	return internal.ErrServiceUnavailable(message, opts...)
}

// AsHTTPError unwraps err to an *HTTPError, or returns nil.
func AsHTTPError(err error) *HTTPError {
	return internal.AsHTTPError(err)
}

// Jobs

// InQueue specifies which queue to use for the job.
func InQueue(name string) EnqueueOption { return job.InQueue(name) }

// ScheduledIn schedules the job to run after a duration.
func ScheduledIn(d time.Duration) EnqueueOption { return job.ScheduledIn(d) }

// MaxAttempts sets the maximum number of attempts.
func MaxAttempts(n int) EnqueueOption { return job.MaxAttempts(n) }

// UniqueFor skips a job while one with the same name and payload,
// enqueued within d, has not finished. Enqueue then returns
// ErrJobDuplicate.
func UniqueFor(d time.Duration) EnqueueOption { return job.UniqueFor(d) }

// Job errors for checking return values.
var (
	ErrJobNotConfigured = job.ErrNotConfigured
	ErrJobUnknownTask   = job.ErrUnknownTask
	ErrJobDuplicate     = job.ErrDuplicate
)
