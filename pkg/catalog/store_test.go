package catalog_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/babel/pkg/catalog"
	"github.com/dmitrymomot/babel/pkg/job"
)

// memPool keeps committed overrides keyed by "locale/key".
type memPool struct {
	mu   sync.Mutex
	rows map[string]string
}

func newMemPool() *memPool { return &memPool{rows: make(map[string]string)} }

func (p *memPool) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, errors.New("query not supported")
}

func (p *memPool) Begin(context.Context) (pgx.Tx, error) {
	return &memTx{pool: p, writes: make(map[string]string)}, nil
}

func (p *memPool) get(locale, key string) (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	v, ok := p.rows[locale+"/"+key]
	return v, ok
}

type memTx struct {
	pgx.Tx
	pool   *memPool
	writes map[string]string
}

func (tx *memTx) QueryRow(_ context.Context, _ string, args ...any) pgx.Row {
	tx.writes[args[0].(string)+"/"+args[1].(string)] = args[2].(string)
	return memRow(args)
}

func (tx *memTx) Commit(context.Context) error {
	tx.pool.mu.Lock()
	defer tx.pool.mu.Unlock()
	for k, v := range tx.writes {
		tx.pool.rows[k] = v
	}
	return nil
}

func (tx *memTx) Rollback(context.Context) error { return nil }

type memRow []any

func (r memRow) Scan(dest ...any) error {
	*dest[0].(*string) = r[0].(string)
	*dest[1].(*string) = r[1].(string)
	*dest[2].(*string) = r[2].(string)
	*dest[3].(*time.Time) = time.Now()
	return nil
}

type txEnqueuer struct {
	mu    sync.Mutex
	calls []int
	err   error
}

func (e *txEnqueuer) EnqueueTx(_ context.Context, tx pgx.Tx, name string, _ any, opts ...job.EnqueueOption) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if tx == nil || name != catalog.ReloadTaskName {
		return errors.New("unexpected enqueue")
	}
	if e.err != nil {
		return e.err
	}
	e.calls = append(e.calls, len(opts))
	return nil
}

func TestStoreEnqueuesReloadForEveryWrite(t *testing.T) {
	t.Parallel()

	pool := newMemPool()
	jobs := &txEnqueuer{}
	store := catalog.NewStore(pool, catalog.EnqueueReload(jobs))

	_, err := store.Upsert(context.Background(), "de", "greeting", "Servus")
	require.NoError(t, err)
	_, err = store.Upsert(context.Background(), "de", "farewell", "Tschüss")
	require.NoError(t, err)

	// One reload per write, with no uniqueness window to swallow the second.
	assert.Equal(t, []int{0, 0}, jobs.calls)

	v, ok := pool.get("de", "greeting")
	require.True(t, ok)
	assert.Equal(t, "Servus", v)
	v, ok = pool.get("de", "farewell")
	require.True(t, ok)
	assert.Equal(t, "Tschüss", v)
}

func TestStoreRollsBackWhenEnqueueFails(t *testing.T) {
	t.Parallel()

	pool := newMemPool()
	boom := errors.New("queue down")
	store := catalog.NewStore(pool, catalog.EnqueueReload(&txEnqueuer{err: boom}))

	_, err := store.Upsert(context.Background(), "de", "greeting", "Servus")
	require.ErrorIs(t, err, boom)

	_, ok := pool.get("de", "greeting")
	assert.False(t, ok)
}
