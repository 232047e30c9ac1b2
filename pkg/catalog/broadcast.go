package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ReloadChannel is the Postgres notification channel reloads are
// announced on.
const ReloadChannel = "babel_catalog_reload"

// Execer runs a statement. *pgxpool.Pool and pgx.Tx satisfy it.
type Execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Broadcast asks every replica running a Listener to reload. Inside a
// transaction the notification is delivered on commit.
func Broadcast(ctx context.Context, db Execer) error {
	if _, err := db.Exec(ctx, "SELECT pg_notify($1, '')", ReloadChannel); err != nil {
		return fmt.Errorf("catalog: broadcast reload: %w", err)
	}
	return nil
}

type notificationConn interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	WaitForNotification(ctx context.Context) (*pgconn.Notification, error)
	Release()
}

type poolConn struct{ *pgxpool.Conn }

func (c poolConn) WaitForNotification(ctx context.Context) (*pgconn.Notification, error) {
	return c.Conn.Conn().WaitForNotification(ctx)
}

// Listener reloads a Manager whenever a reload is broadcast on
// ReloadChannel. Run one per process.
type Listener struct {
	connect func(ctx context.Context) (notificationConn, error)
	reload  func(ctx context.Context) error
	log     *slog.Logger
	retry   time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// ListenerOption configures a Listener.
type ListenerOption func(*Listener)

// WithListenerLogger sets the logger for connection and reload failures.
func WithListenerLogger(l *slog.Logger) ListenerOption {
	return func(ln *Listener) {
		if l != nil {
			ln.log = l
		}
	}
}

// WithRetryInterval sets the pause before reconnecting. Defaults to 5s.
func WithRetryInterval(d time.Duration) ListenerOption {
	return func(ln *Listener) {
		if d > 0 {
			ln.retry = d
		}
	}
}

// NewListener listens on a dedicated connection from pool and reloads m.
func NewListener(pool *pgxpool.Pool, m *Manager, opts ...ListenerOption) *Listener {
	return newListener(func(ctx context.Context) (notificationConn, error) {
		conn, err := pool.Acquire(ctx)
		if err != nil {
			return nil, err
		}
		return poolConn{conn}, nil
	}, m.Reload, opts...)
}

func newListener(connect func(context.Context) (notificationConn, error), reload func(context.Context) error, opts ...ListenerOption) *Listener {
	l := &Listener{
		connect: connect,
		reload:  reload,
		log:     slog.New(slog.DiscardHandler),
		retry:   5 * time.Second,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Start listens in the background until Stop. The listener outlives ctx
// cancellation, so it can be started from a startup hook.
func (l *Listener) Start(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cancel != nil {
		return ErrListenerStarted
	}
	ctx, l.cancel = context.WithCancel(context.WithoutCancel(ctx))
	l.done = make(chan struct{})
	go l.run(ctx)
	return nil
}

// Stop ends the listener and waits for it, or for ctx.
func (l *Listener) Stop(ctx context.Context) error {
	l.mu.Lock()
	cancel, done := l.cancel, l.done
	l.cancel = nil
	l.mu.Unlock()
	if cancel == nil {
		return nil
	}
	cancel()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (l *Listener) run(ctx context.Context) {
	defer close(l.done)
	first := true
	for ctx.Err() == nil {
		err := l.listen(ctx, !first)
		first = false
		if ctx.Err() != nil {
			return
		}
		l.log.WarnContext(ctx, "catalog listener disconnected", slog.Any("error", err))
		select {
		case <-ctx.Done():
			return
		case <-time.After(l.retry):
		}
	}
}

// listen subscribes and reloads on every notification. After a reconnect
// it reloads once to cover notifications sent while it was away.
func (l *Listener) listen(ctx context.Context, reconnect bool) error {
	conn, err := l.connect(ctx)
	if err != nil {
		return err
	}
	defer func() {
		// The connection goes back to the pool, so it must stop listening.
		uctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), time.Second)
		defer cancel()
		_, _ = conn.Exec(uctx, "UNLISTEN "+ReloadChannel)
		conn.Release()
	}()

	if _, err := conn.Exec(ctx, "LISTEN "+ReloadChannel); err != nil {
		return err
	}
	if reconnect {
		l.reloadNow(ctx)
	}
	for {
		if _, err := conn.WaitForNotification(ctx); err != nil {
			return err
		}
		l.reloadNow(ctx)
	}
}

func (l *Listener) reloadNow(ctx context.Context) {
	if err := l.reload(ctx); err != nil {
		l.log.ErrorContext(ctx, "catalog reload failed", slog.Any("error", err))
	}
}
