package internal

import (
	"log/slog"

	"github.com/dmitrymomot/babel/pkg/health"
	"github.com/dmitrymomot/babel/pkg/job"
	"github.com/dmitrymomot/babel/pkg/logger"
)

// Option configures the application.
type Option func(*App)

// WithMiddleware adds global middleware to the application.
// Middleware is applied in the order provided.
func WithMiddleware(mw ...Middleware) Option {
	return func(a *App) {
		a.middlewares = append(a.middlewares, mw...)
	}
}

// WithHandlers registers handlers that declare routes.
// Each handler's Routes method is called during setup.
func WithHandlers(h ...Handler) Option {
	return func(a *App) {
		a.handlers = append(a.handlers, h...)
	}
}

// WithErrorHandler replaces DefaultErrorHandler.
//
// Example:
//
//	babel.WithErrorHandler(func(c babel.Context, err error) error {
//	    return c.String(http.StatusInternalServerError, err.Error())
//	})
func WithErrorHandler(h ErrorHandler) Option {
	return func(a *App) {
		if h != nil {
			a.errorHandler = h
		}
	}
}

// WithNotFoundHandler sets a custom 404 handler.
func WithNotFoundHandler(h HandlerFunc) Option {
	return func(a *App) {
		a.notFoundHandler = h
	}
}

// WithMethodNotAllowedHandler sets a custom 405 handler.
func WithMethodNotAllowedHandler(h HandlerFunc) Option {
	return func(a *App) {
		a.methodNotAllowedHandler = h
	}
}

// WithHealthChecks enables health check endpoints with optional configuration.
// Liveness (/health/live): Always returns OK if process is running.
// Readiness (/health/ready): Runs all configured checks.
//
// Example:
//
//	babel.WithHealthChecks(
//	    babel.WithReadinessCheck("postgres", db.Healthcheck(pool)),
//	    babel.WithReadinessCheck("redis", redis.Healthcheck(client)),
//	)
func WithHealthChecks(opts ...HealthOption) Option {
	return func(a *App) {
		cfg := &healthConfig{
			livenessPath:  defaultLivenessPath,
			readinessPath: defaultReadinessPath,
			checks:        make(health.Checks),
		}
		for _, opt := range opts {
			opt(cfg)
		}
		a.healthConfig = cfg
	}
}

// WithLogger creates a logger with a component name and optional extractors.
// The component name is added to every log entry for easy filtering.
//
// Example:
//
//	babel.New(
//	    babel.WithLogger("babeld", middlewares.RequestIDExtractor()),
//	)
func WithLogger(component string, extractors ...logger.ContextExtractor) Option {
	return func(a *App) {
		a.logger = logger.New(logger.Config{}, extractors...).With("component", component)
	}
}

// WithCustomLogger sets a fully custom logger.
func WithCustomLogger(l *slog.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithJobs enables c.Enqueue and starts the manager's workers with Run.
// The manager is built by the caller so other components, such as an
// override store, can enqueue through it as well.
//
// Example:
//
//	jobs, err := job.NewManager(pool, job.WithScheduledTask(reload))
//	babel.New(babel.WithJobs(jobs))
func WithJobs(m *job.Manager) Option {
	return func(a *App) {
		if m == nil {
			return
		}
		a.jobs = m
		a.workers = append(a.workers, m)
	}
}

// WithJobEnqueuer enables c.Enqueue without running workers in this
// process.
func WithJobEnqueuer(e Enqueuer) Option {
	return func(a *App) {
		a.jobs = e
	}
}
