//go:build integration

package catalog_test

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/babel/pkg/catalog"
	"github.com/dmitrymomot/babel/pkg/db"
)

func TestPostgresOverrides(t *testing.T) {
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		t.Skip("DATABASE_URL not set")
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, db.Config{URL: url, MaxConns: 4, RetryAttempts: 1}, nil)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, db.Migrate(ctx, pool, catalog.Migrations, "babel_test_migrations", nil))
	_, err = pool.Exec(ctx, "TRUNCATE translation_overrides")
	require.NoError(t, err)

	changes := 0
	store := catalog.NewStore(pool, catalog.OnChange(func(context.Context, pgx.Tx) error {
		changes++
		return nil
	}))

	o, err := store.Upsert(ctx, "de", "greeting", "Servus")
	require.NoError(t, err)
	assert.Equal(t, "de", o.Locale)
	assert.False(t, o.UpdatedAt.IsZero())

	_, err = store.Upsert(ctx, "de", "errors.not_found", "Weg")
	require.NoError(t, err)
	_, err = store.Upsert(ctx, "de", "greeting", "Grüß Gott")
	require.NoError(t, err)
	assert.Equal(t, 3, changes)

	list, err := store.List(ctx, "de")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "errors.not_found", list[0].Key)
	assert.Equal(t, "Grüß Gott", list[1].Value)

	catalogs, err := catalog.NewPostgresSource(pool).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Grüß Gott", catalogs["de"]["greeting"])

	require.NoError(t, store.Delete(ctx, "de", "greeting"))
	require.ErrorIs(t, store.Delete(ctx, "de", "greeting"), catalog.ErrOverrideNotFound)
	assert.Equal(t, 4, changes)
}
