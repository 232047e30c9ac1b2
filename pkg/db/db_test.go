package db_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/babel/pkg/db"
)

type fakeTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
}

func (f *fakeTx) Commit(context.Context) error {
	f.committed = true
	return nil
}

func (f *fakeTx) Rollback(context.Context) error {
	f.rolledBack = true
	return nil
}

type beginner struct {
	tx  *fakeTx
	err error
}

func (b beginner) Begin(context.Context) (pgx.Tx, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.tx, nil
}

func TestWithTx(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("commits", func(t *testing.T) {
		t.Parallel()
		tx := &fakeTx{}
		require.NoError(t, db.WithTx(ctx, beginner{tx: tx}, func(pgx.Tx) error { return nil }))
		require.True(t, tx.committed)
		require.False(t, tx.rolledBack)
	})

	t.Run("rolls back on error", func(t *testing.T) {
		t.Parallel()
		tx := &fakeTx{}
		boom := errors.New("boom")
		err := db.WithTx(ctx, beginner{tx: tx}, func(pgx.Tx) error { return boom })
		require.ErrorIs(t, err, boom)
		require.True(t, tx.rolledBack)
		require.False(t, tx.committed)
	})

	t.Run("rolls back and re-panics", func(t *testing.T) {
		t.Parallel()
		tx := &fakeTx{}
		require.PanicsWithValue(t, "bad", func() {
			_ = db.WithTx(ctx, beginner{tx: tx}, func(pgx.Tx) error { panic("bad") })
		})
		require.True(t, tx.rolledBack)
	})

	t.Run("begin error", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("no connection")
		err := db.WithTx(ctx, beginner{err: boom}, func(pgx.Tx) error {
			t.Fatal("fn must not run")
			return nil
		})
		require.ErrorIs(t, err, boom)
	})
}

func TestConnectBadURL(t *testing.T) {
	t.Parallel()

	_, err := db.Connect(context.Background(), db.Config{URL: "postgres://%zz"}, nil)
	require.ErrorIs(t, err, db.ErrFailedToParseDBConfig)
}

func TestHealthcheckNilPool(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, db.Healthcheck(nil)(context.Background()), db.ErrHealthcheckFailed)
}
