package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/babel/pkg/i18n"
)

// Manager owns the live translation store. Reload builds a new store
// from all sources and swaps it in; readers never see a partial store.
type Manager struct {
	sources []Source
	opts    []i18n.Option
	log     *slog.Logger
	now     func() time.Time

	reloadMu sync.Mutex
	current  atomic.Pointer[snapshot]
	lastErr  atomic.Pointer[reloadError]
}

type snapshot struct {
	store    *i18n.I18n
	revision string
	loadedAt time.Time
	sources  []SourceStatus
}

type reloadError struct {
	err error
	at  time.Time
}

// SourceStatus describes what one source contributed to a revision.
type SourceStatus struct {
	Name     string        `json:"name"`
	Locales  int           `json:"locales"`
	Keys     int           `json:"keys"`
	Duration time.Duration `json:"duration"`
}

// Status is a point in time view of the manager.
type Status struct {
	Revision  string         `json:"revision"`
	LoadedAt  time.Time      `json:"loaded_at"`
	Locales   []string       `json:"locales"`
	Sources   []SourceStatus `json:"sources"`
	LastError string         `json:"last_error,omitempty"`
	FailedAt  *time.Time     `json:"failed_at,omitempty"`
}

// Option configures a Manager.
type Option func(*Manager)

// WithSource appends a source. Later sources override earlier ones key
// by key.
func WithSource(s Source) Option {
	return func(m *Manager) {
		if s != nil {
			m.sources = append(m.sources, s)
		}
	}
}

// WithI18nOptions sets options applied to every store built, such as the
// default locale, fallbacks and plural rules.
func WithI18nOptions(opts ...i18n.Option) Option {
	return func(m *Manager) { m.opts = append(m.opts, opts...) }
}

// WithLogger logs reloads.
func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.log = l
		}
	}
}

// NewManager creates a manager holding an empty store. Call Reload to
// load the sources.
func NewManager(opts ...Option) (*Manager, error) {
	m := &Manager{log: slog.New(slog.DiscardHandler), now: time.Now}
	for _, opt := range opts {
		opt(m)
	}
	if len(m.sources) == 0 {
		return nil, ErrNoSources
	}

	empty, err := i18n.New(m.opts...)
	if err != nil {
		return nil, err
	}
	m.current.Store(&snapshot{store: empty})
	return m, nil
}

// Current returns the live store.
func (m *Manager) Current() *i18n.I18n { return m.current.Load().store }

// Revision identifies the live store; empty before the first reload.
func (m *Manager) Revision() string { return m.current.Load().revision }

// Sources returns the registered sources in merge order.
func (m *Manager) Sources() []Source { return m.sources }

// Status reports the live revision and the last failed reload, if any
// failed after it.
func (m *Manager) Status() Status {
	snap := m.current.Load()
	st := Status{
		Revision: snap.revision,
		LoadedAt: snap.loadedAt,
		Locales:  snap.store.Locales(),
		Sources:  snap.sources,
	}
	if le := m.lastErr.Load(); le != nil && le.at.After(snap.loadedAt) {
		at := le.at
		st.LastError, st.FailedAt = le.err.Error(), &at
	}
	return st
}

// Reload loads every source concurrently, merges them in registration
// order and swaps in the result. On any failure the live store is kept
// and the error is returned.
func (m *Manager) Reload(ctx context.Context) error {
	m.reloadMu.Lock()
	defer m.reloadMu.Unlock()

	start := m.now()
	results := make([]map[string]i18n.Translations, len(m.sources))
	statuses := make([]SourceStatus, len(m.sources))

	g, gctx := errgroup.WithContext(ctx)
	for i, src := range m.sources {
		g.Go(func() error {
			t := time.Now()
			catalogs, err := src.Load(gctx)
			if err != nil {
				return fmt.Errorf("%w: source %s: %w", ErrReloadFailed, src.Name(), err)
			}
			results[i] = catalogs
			statuses[i] = SourceStatus{
				Name:     src.Name(),
				Locales:  len(catalogs),
				Keys:     countKeys(catalogs),
				Duration: time.Since(t),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return m.fail(ctx, err)
	}

	merged := make(map[string]i18n.Translations)
	for _, catalogs := range results {
		i18n.MergeCatalogs(merged, catalogs)
	}

	store, err := i18n.New(append(m.opts[:len(m.opts):len(m.opts)], i18n.WithCatalogs(merged))...)
	if err != nil {
		return m.fail(ctx, fmt.Errorf("%w: %w", ErrReloadFailed, err))
	}

	snap := &snapshot{
		store:    store,
		revision: uuid.NewString(),
		loadedAt: m.now(),
		sources:  statuses,
	}
	m.current.Store(snap)

	m.log.InfoContext(ctx, "catalog reloaded",
		slog.String("revision", snap.revision),
		slog.Int("locales", len(store.Locales())),
		slog.Duration("took", m.now().Sub(start)),
	)
	return nil
}

func (m *Manager) fail(ctx context.Context, err error) error {
	m.lastErr.Store(&reloadError{err: err, at: m.now()})
	m.log.ErrorContext(ctx, "catalog reload failed",
		slog.String("revision", m.Revision()),
		slog.Any("error", err),
	)
	return err
}

func countKeys(catalogs map[string]i18n.Translations) int {
	n := 0
	var walk func(i18n.Translations)
	walk = func(t i18n.Translations) {
		for _, v := range t {
			if sub, ok := v.(i18n.Translations); ok {
				walk(sub)
				continue
			}
			n++
		}
	}
	for _, tree := range catalogs {
		walk(tree)
	}
	return n
}
