package catalog

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/babel/pkg/i18n"
)

type fakeNotifyConn struct {
	notes chan struct{}

	mu       sync.Mutex
	execs    []string
	released int
}

func newFakeNotifyConn() *fakeNotifyConn {
	return &fakeNotifyConn{notes: make(chan struct{}, 4)}
}

func (c *fakeNotifyConn) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.execs = append(c.execs, sql)
	return pgconn.NewCommandTag("LISTEN"), nil
}

func (c *fakeNotifyConn) WaitForNotification(ctx context.Context) (*pgconn.Notification, error) {
	select {
	case <-c.notes:
		return &pgconn.Notification{Channel: ReloadChannel}, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (c *fakeNotifyConn) Release() {
	c.mu.Lock()
	c.released++
	c.mu.Unlock()
}

func (c *fakeNotifyConn) snapshot() ([]string, int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.execs...), c.released
}

func waitReloads(t *testing.T, reloads <-chan struct{}, n int) {
	t.Helper()
	for range n {
		select {
		case <-reloads:
		case <-time.After(2 * time.Second):
			t.Fatalf("expected %d reloads", n)
		}
	}
}

func TestListenerReloadsOnNotification(t *testing.T) {
	t.Parallel()

	conn := newFakeNotifyConn()
	reloads := make(chan struct{}, 4)
	l := newListener(
		func(context.Context) (notificationConn, error) { return conn, nil },
		func(context.Context) error {
			reloads <- struct{}{}
			return nil
		},
	)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, l.Start(ctx))
	cancel() // the listener keeps running after the start context ends
	require.ErrorIs(t, l.Start(context.Background()), ErrListenerStarted)

	conn.notes <- struct{}{}
	conn.notes <- struct{}{}
	waitReloads(t, reloads, 2)

	require.NoError(t, l.Stop(context.Background()))
	require.NoError(t, l.Stop(context.Background()))

	execs, released := conn.snapshot()
	assert.Equal(t, []string{"LISTEN " + ReloadChannel, "UNLISTEN " + ReloadChannel}, execs)
	assert.Equal(t, 1, released)
}

func TestListenerReloadsAfterReconnect(t *testing.T) {
	t.Parallel()

	conn := newFakeNotifyConn()
	var attempts atomic.Int32
	reloads := make(chan struct{}, 4)
	l := newListener(
		func(context.Context) (notificationConn, error) {
			if attempts.Add(1) == 1 {
				return nil, errors.New("connection refused")
			}
			return conn, nil
		},
		func(context.Context) error {
			reloads <- struct{}{}
			return nil
		},
		WithRetryInterval(time.Millisecond),
	)

	require.NoError(t, l.Start(context.Background()))
	t.Cleanup(func() { _ = l.Stop(context.Background()) })

	// No notification was sent: the reload covers the time offline.
	waitReloads(t, reloads, 1)
	assert.GreaterOrEqual(t, attempts.Load(), int32(2))
}

type recordingExecer struct {
	sql  string
	args []any
	err  error
}

func (e *recordingExecer) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	e.sql, e.args = sql, args
	return pgconn.CommandTag{}, e.err
}

func TestBroadcast(t *testing.T) {
	t.Parallel()

	db := &recordingExecer{}
	require.NoError(t, Broadcast(context.Background(), db))
	assert.Equal(t, "SELECT pg_notify($1, '')", db.sql)
	assert.Equal(t, []any{ReloadChannel}, db.args)

	db.err = errors.New("conn closed")
	require.ErrorContains(t, Broadcast(context.Background(), db), "conn closed")
}

func TestReloadTaskBroadcasts(t *testing.T) {
	t.Parallel()

	m, err := NewManager(WithSource(NewStaticSource("static", map[string]i18n.Translations{
		"en": {"a": "b"},
	})))
	require.NoError(t, err)

	db := &recordingExecer{}
	task := NewReloadTask(m, "@hourly").BroadcastTo(db)
	require.NoError(t, task.Handle(context.Background()))
	assert.Equal(t, []any{ReloadChannel}, db.args)
	assert.Empty(t, m.Revision())
}
