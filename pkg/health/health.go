package health

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"
)

const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)

// CheckFunc matches the Healthcheck closures of pkg/db, pkg/redis and
// pkg/job.
type CheckFunc func(ctx context.Context) error

// Checks names the dependencies checked by the readiness endpoint.
type Checks map[string]CheckFunc

// Response is the JSON body of both endpoints.
type Response struct {
	Status string           `json:"status"`
	Checks map[string]Check `json:"checks,omitempty"`
	Info   map[string]any   `json:"info,omitempty"`
}

// Check is the outcome of one dependency check.
type Check struct {
	Status   string `json:"status"`
	Error    string `json:"error,omitempty"`
	Duration string `json:"duration"`
}

type config struct {
	timeout time.Duration
	logger  *slog.Logger
	info    func(context.Context) map[string]any
}

// Option configures the readiness handler.
type Option func(*config)

// WithTimeout bounds the whole readiness check. Default: 5s.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithLogger logs failing checks.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithInfo adds static facts to the response, such as the catalog
// revision or the tz database version.
func WithInfo(fn func(context.Context) map[string]any) Option {
	return func(c *config) { c.info = fn }
}

func newConfig(opts ...Option) *config {
	c := &config{timeout: 5 * time.Second, logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run executes the checks concurrently under one deadline.
func Run(ctx context.Context, checks Checks, opts ...Option) *Response {
	return run(ctx, checks, newConfig(opts...))
}

func run(ctx context.Context, checks Checks, cfg *config) *Response {
	resp := &Response{Status: StatusHealthy}
	if cfg.info != nil {
		resp.Info = cfg.info(ctx)
	}
	if len(checks) == 0 {
		return resp
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.timeout)
	defer cancel()

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	resp.Checks = make(map[string]Check, len(checks))
	for name, check := range checks {
		wg.Go(func() {
			start := time.Now()
			err := check(ctx)
			if errors.Is(err, context.DeadlineExceeded) {
				err = errors.Join(ErrCheckTimeout, err)
			}
			c := Check{Status: StatusHealthy, Duration: time.Since(start).Round(time.Microsecond).String()}
			if err != nil {
				c.Status, c.Error = StatusUnhealthy, err.Error()
				cfg.logger.WarnContext(ctx, "health check failed",
					slog.String("check", name),
					slog.Any("error", err),
				)
			}

			mu.Lock()
			defer mu.Unlock()
			resp.Checks[name] = c
			if err != nil {
				resp.Status = StatusUnhealthy
			}
		})
	}
	wg.Wait()
	return resp
}
