package redis

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Option tunes the client built by Open.
type Option func(*options)

type options struct {
	poolSize     int
	minIdle      int
	attempts     int
	backoff      time.Duration
	ioTimeout    time.Duration
	dialTimeout  time.Duration
	connLifetime time.Duration
	logger       *slog.Logger
}

// WithPoolSize sets the pool bounds. Default: 10 connections, 2 idle.
func WithPoolSize(size, minIdle int) Option {
	return func(o *options) {
		o.poolSize, o.minIdle = size, minIdle
	}
}

// WithRetry sets how many times Open pings before giving up and the
// base delay, which grows linearly between attempts. Default: 3, 2s.
func WithRetry(attempts int, backoff time.Duration) Option {
	return func(o *options) {
		o.attempts, o.backoff = attempts, backoff
	}
}

// WithTimeouts sets the dial and read/write timeouts. Default: 5s, 3s.
func WithTimeouts(dial, io time.Duration) Option {
	return func(o *options) {
		o.dialTimeout, o.ioTimeout = dial, io
	}
}

// WithConnLifetime caps how long a pooled connection lives. Default: 30m.
func WithConnLifetime(d time.Duration) Option {
	return func(o *options) { o.connLifetime = d }
}

// WithLogger reports failed connection attempts.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// Open parses a redis:// or rediss:// URL and returns a client that
// answered PING.
func Open(ctx context.Context, url string, opts ...Option) (redis.UniversalClient, error) {
	if url == "" {
		return nil, ErrEmptyConnectionURL
	}
	if !strings.HasPrefix(url, "redis://") && !strings.HasPrefix(url, "rediss://") {
		return nil, ErrFailedToParseURL
	}

	o := &options{
		poolSize:     10,
		minIdle:      2,
		attempts:     3,
		backoff:      2 * time.Second,
		ioTimeout:    3 * time.Second,
		dialTimeout:  5 * time.Second,
		connLifetime: 30 * time.Minute,
		logger:       slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(o)
	}

	ro, err := redis.ParseURL(url)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseURL, err)
	}
	ro.PoolSize = o.poolSize
	ro.MinIdleConns = o.minIdle
	ro.ConnMaxLifetime = o.connLifetime
	ro.DialTimeout = o.dialTimeout
	ro.ReadTimeout = o.ioTimeout
	ro.WriteTimeout = o.ioTimeout

	var lastErr error
	for i := range max(o.attempts, 1) {
		client := redis.NewClient(ro)
		if lastErr = client.Ping(ctx).Err(); lastErr == nil {
			return client, nil
		}
		_ = client.Close()
		o.logger.WarnContext(ctx, "redis ping failed",
			slog.Int("attempt", i+1),
			slog.Any("error", lastErr),
		)

		if i+1 == max(o.attempts, 1) {
			break
		}
		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrConnectionFailed, ctx.Err())
		case <-time.After(time.Duration(i+1) * o.backoff):
		}
	}
	return nil, errors.Join(ErrConnectionFailed, lastErr)
}
