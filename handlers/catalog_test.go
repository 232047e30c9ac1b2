package handlers_test

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/babel/handlers"
	"github.com/dmitrymomot/babel/internal"
	"github.com/dmitrymomot/babel/pkg/catalog"
	"github.com/dmitrymomot/babel/pkg/i18n"
	"github.com/dmitrymomot/babel/pkg/job"
	"github.com/dmitrymomot/babel/pkg/storage"
)

type memOverrides struct {
	mu   sync.Mutex
	rows map[string]catalog.Override
}

func newMemOverrides() *memOverrides {
	return &memOverrides{rows: make(map[string]catalog.Override)}
}

func (m *memOverrides) Upsert(_ context.Context, locale, key, value string) (catalog.Override, error) {
	if strings.Contains(key, "..") {
		return catalog.Override{}, catalog.ErrInvalidKey
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	o := catalog.Override{Locale: locale, Key: key, Value: value, UpdatedAt: time.Now()}
	m.rows[locale+"/"+key] = o
	return o, nil
}

func (m *memOverrides) Delete(_ context.Context, locale, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[locale+"/"+key]; !ok {
		return catalog.ErrOverrideNotFound
	}
	delete(m.rows, locale+"/"+key)
	return nil
}

func (m *memOverrides) List(_ context.Context, locale string) ([]catalog.Override, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []catalog.Override
	for _, o := range m.rows {
		if o.Locale == locale {
			out = append(out, o)
		}
	}
	return out, nil
}

type recordingEnqueuer struct {
	mu      sync.Mutex
	names   []string
	pending bool
}

// Enqueue reports ErrDuplicate while a job is pending, the way River
// reports a unique job skipped as a duplicate.
func (e *recordingEnqueuer) Enqueue(_ context.Context, name string, _ any, _ ...job.EnqueueOption) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.pending {
		return job.ErrDuplicate
	}
	e.names = append(e.names, name)
	return nil
}

func (e *recordingEnqueuer) finish() {
	e.mu.Lock()
	e.pending = false
	e.mu.Unlock()
}

func (e *recordingEnqueuer) EnqueueTx(ctx context.Context, _ pgx.Tx, name string, payload any, opts ...job.EnqueueOption) error {
	return e.Enqueue(ctx, name, payload, opts...)
}

func TestCatalogStatus(t *testing.T) {
	t.Parallel()

	catalogs := newCatalog(t)
	app := internal.New(internal.WithHandlers(handlers.NewCatalogAdmin(catalogs)))

	w := do(t, app, http.MethodGet, "/v1/catalog/status", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	st := decode[catalog.Status](t, w)
	assert.Equal(t, catalogs.Revision(), st.Revision)
	assert.ElementsMatch(t, []string{"en", "de"}, st.Locales)
	require.Len(t, st.Sources, 1)
	assert.Equal(t, "test", st.Sources[0].Name)
}

func TestCatalogReload(t *testing.T) {
	t.Parallel()

	t.Run("queued", func(t *testing.T) {
		t.Parallel()

		jobs := &recordingEnqueuer{}
		app := internal.New(
			internal.WithJobEnqueuer(jobs),
			internal.WithHandlers(handlers.NewCatalogAdmin(newCatalog(t))),
		)

		w := do(t, app, http.MethodPost, "/v1/catalog/reload", "")
		require.Equal(t, http.StatusAccepted, w.Code, w.Body.String())
		assert.True(t, decode[handlers.ReloadResponse](t, w).Queued)
		assert.Equal(t, []string{catalog.ReloadTaskName}, jobs.names)
	})

	t.Run("pending reload", func(t *testing.T) {
		t.Parallel()

		jobs := &recordingEnqueuer{pending: true}
		app := internal.New(
			internal.WithJobEnqueuer(jobs),
			internal.WithHandlers(handlers.NewCatalogAdmin(newCatalog(t))),
		)

		w := do(t, app, http.MethodPost, "/v1/catalog/reload", "")
		require.Equal(t, http.StatusAccepted, w.Code, w.Body.String())
		assert.False(t, decode[handlers.ReloadResponse](t, w).Queued)
		assert.Empty(t, jobs.names)

		jobs.finish()
		w = do(t, app, http.MethodPost, "/v1/catalog/reload", "")
		require.Equal(t, http.StatusAccepted, w.Code, w.Body.String())
		assert.True(t, decode[handlers.ReloadResponse](t, w).Queued)
		assert.Equal(t, []string{catalog.ReloadTaskName}, jobs.names)
	})

	t.Run("inline without a queue", func(t *testing.T) {
		t.Parallel()

		catalogs := newCatalog(t)
		before := catalogs.Status().LoadedAt
		app := internal.New(internal.WithHandlers(handlers.NewCatalogAdmin(catalogs)))

		w := do(t, app, http.MethodPost, "/v1/catalog/reload", "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		body := decode[handlers.ReloadResponse](t, w)
		assert.False(t, body.Queued)
		require.NotNil(t, body.Status)
		assert.False(t, body.Status.LoadedAt.Before(before))
	})
}

func TestCatalogOverrides(t *testing.T) {
	t.Parallel()

	overrides := newMemOverrides()
	app := internal.New(internal.WithHandlers(
		handlers.NewCatalogAdmin(newCatalog(t), handlers.WithOverrides(overrides)),
	))

	w := do(t, app, http.MethodPut, "/v1/catalog/de/home.title", `{"value":"Start"}`, "Content-Type", "application/json")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	saved := decode[catalog.Override](t, w)
	assert.Equal(t, "de", saved.Locale)
	assert.Equal(t, "home.title", saved.Key)
	assert.Equal(t, "Start", saved.Value)

	w = do(t, app, http.MethodGet, "/v1/catalog/de/overrides", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	list := decode[[]catalog.Override](t, w)
	require.Len(t, list, 1)
	assert.Equal(t, "Start", list[0].Value)

	w = do(t, app, http.MethodGet, "/v1/catalog/fr/overrides", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = do(t, app, http.MethodDelete, "/v1/catalog/de/home.title", "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, app, http.MethodDelete, "/v1/catalog/de/home.title", "")
	requireError(t, w, http.StatusNotFound, handlers.CodeOverrideNotFound)

	w = do(t, app, http.MethodPut, "/v1/catalog/de/home..title", `{"value":"x"}`, "Content-Type", "application/json")
	requireError(t, w, http.StatusBadRequest, handlers.CodeInvalidKey)
}

func TestCatalogOverrideRoutesNeedStore(t *testing.T) {
	t.Parallel()

	app := internal.New(internal.WithHandlers(handlers.NewCatalogAdmin(newCatalog(t))))

	w := do(t, app, http.MethodPut, "/v1/catalog/de/home.title", `{"value":"Start"}`, "Content-Type", "application/json")
	assert.NotEqual(t, http.StatusOK, w.Code)
}

func TestCatalogBundles(t *testing.T) {
	t.Parallel()

	bundles := catalog.NewStorageSource(storage.NewMemory(), "catalogs")
	catalogs, err := catalog.NewManager(
		catalog.WithSource(catalog.NewStaticSource("base", map[string]i18n.Translations{
			"en": {"home": i18n.Translations{"title": "Home"}},
		})),
		catalog.WithSource(bundles),
	)
	require.NoError(t, err)
	require.NoError(t, catalogs.Reload(context.Background()))

	app := internal.New(internal.WithHandlers(
		handlers.NewTranslate(catalogs),
		handlers.NewCatalogAdmin(catalogs, handlers.WithBundles(bundles)),
	))

	w := do(t, app, http.MethodPut, "/v1/bundles/de.yaml", "home:\n  title: Startseite\n")
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

	w = do(t, app, http.MethodPut, "/v1/bundles/fr.json", `{"home": `)
	requireError(t, w, http.StatusUnprocessableEntity, handlers.CodeInvalidBundle)

	w = do(t, app, http.MethodPut, "/v1/bundles/big.json", strings.Repeat(" ", 5<<20+1))
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)

	w = do(t, app, http.MethodGet, "/v1/bundles", "")
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[[]storage.Object](t, w)
	require.Len(t, list, 1)
	assert.Equal(t, "de.yaml", list[0].Key)

	w = do(t, app, http.MethodGet, "/v1/translate/home.title?locale=de", "")
	assert.False(t, decode[handlers.TranslateResponse](t, w).Found)

	w = do(t, app, http.MethodPost, "/v1/catalog/reload", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = do(t, app, http.MethodGet, "/v1/translate/home.title?locale=de", "")
	got := decode[handlers.TranslateResponse](t, w)
	assert.True(t, got.Found)
	assert.Equal(t, "Startseite", got.Value)

	w = do(t, app, http.MethodDelete, "/v1/bundles/de.yaml", "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, app, http.MethodGet, "/v1/bundles", "")
	assert.JSONEq(t, `[]`, w.Body.String())
}
