package catalog_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/babel/pkg/cache"
	"github.com/dmitrymomot/babel/pkg/catalog"
	"github.com/dmitrymomot/babel/pkg/storage"
)

func TestStorageSource(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := storage.NewMemory()
	payloads := cache.NewMemory[[]byte]()
	src := catalog.NewStorageSource(store, "/catalogs/", catalog.WithPayloadCache(payloads, 0))

	assert.Equal(t, "storage", src.Name())

	empty, err := src.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	require.NoError(t, src.Put(ctx, "de.yaml", []byte("greeting: Hallo\n")))
	require.NoError(t, src.Put(ctx, "/de/errors.json", []byte(`{"not_found": "Nicht gefunden"}`)))
	require.NoError(t, store.Put(ctx, "catalogs/notes.txt", bytes.NewReader([]byte("x")), 1, "text/plain"))
	require.NoError(t, store.Put(ctx, "elsewhere/en.json", bytes.NewReader([]byte(`{"a":"b"}`)), 9, "application/json"))

	catalogs, err := src.Load(ctx)
	require.NoError(t, err)
	require.Contains(t, catalogs, "de")
	assert.NotContains(t, catalogs, "en")
	assert.Equal(t, "Hallo", catalogs["de"]["greeting"])
	assert.Equal(t, map[string]any{"not_found": "Nicht gefunden"}, catalogs["de"]["errors"])
	assert.Equal(t, 2, payloads.Stats().Entries)

	bundles, err := src.Bundles(ctx)
	require.NoError(t, err)
	names := make([]string, 0, len(bundles))
	for _, b := range bundles {
		names = append(names, b.Key)
	}
	assert.Equal(t, []string{"de.yaml", "de/errors.json", "notes.txt"}, names)

	// A changed object gets a new ETag and is fetched again.
	require.NoError(t, src.Put(ctx, "de.yaml", []byte("greeting: Servus\n")))
	catalogs, err = src.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Servus", catalogs["de"]["greeting"])

	require.NoError(t, src.Invalidate(ctx))
	assert.Equal(t, 0, payloads.Stats().Entries)

	require.NoError(t, src.Remove(ctx, "de.yaml"))
	catalogs, err = src.Load(ctx)
	require.NoError(t, err)
	assert.NotContains(t, catalogs["de"], "greeting")
}

func TestStorageSourceRejectsInvalidBundle(t *testing.T) {
	t.Parallel()

	src := catalog.NewStorageSource(storage.NewMemory(), "catalogs")

	err := src.Put(context.Background(), "de.json", []byte(`{"greeting":`))
	require.ErrorIs(t, err, catalog.ErrInvalidBundle)

	err = src.Put(context.Background(), "de.txt", []byte("greeting"))
	require.ErrorIs(t, err, catalog.ErrInvalidBundle)
}
