package cache

import (
	"container/list"
	"context"
	"sync"
	"time"
)

type memoryEntry[V any] struct {
	key     string
	value   V
	expires time.Time // zero: never
}

// Memory is a process local cache with per entry expiry and an optional
// least recently used bound. Expired entries are dropped when touched.
type Memory[V any] struct {
	mu      sync.Mutex
	index   map[string]*list.Element
	order   *list.List // front is most recent
	ttl     time.Duration
	limit   int
	closed  bool
	hits    uint64
	misses  uint64
	nowFunc func() time.Time
}

// MemoryOption configures a Memory cache.
type MemoryOption func(*memoryConfig)

type memoryConfig struct {
	ttl   time.Duration
	limit int
	now   func() time.Time
}

// WithDefaultTTL sets the expiry used when Set gets a zero ttl. Default: 1h.
func WithDefaultTTL(d time.Duration) MemoryOption {
	return func(c *memoryConfig) { c.ttl = d }
}

// WithMaxEntries bounds the cache size. Zero means unbounded.
func WithMaxEntries(n int) MemoryOption {
	return func(c *memoryConfig) { c.limit = n }
}

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) MemoryOption {
	return func(c *memoryConfig) { c.now = now }
}

// NewMemory creates an empty in-memory cache.
func NewMemory[V any](opts ...MemoryOption) *Memory[V] {
	cfg := memoryConfig{ttl: time.Hour, now: time.Now}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Memory[V]{
		index:   make(map[string]*list.Element),
		order:   list.New(),
		ttl:     cfg.ttl,
		limit:   cfg.limit,
		nowFunc: cfg.now,
	}
}

func (m *Memory[V]) Get(_ context.Context, key string) (V, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var zero V
	if m.closed {
		return zero, ErrClosed
	}
	el, ok := m.index[key]
	if !ok {
		m.misses++
		return zero, ErrNotFound
	}
	e := el.Value.(*memoryEntry[V])
	if !e.expires.IsZero() && !m.nowFunc().Before(e.expires) {
		m.remove(el)
		m.misses++
		return zero, ErrNotFound
	}
	m.order.MoveToFront(el)
	m.hits++
	return e.value, nil
}

func (m *Memory[V]) Set(_ context.Context, key string, value V, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}
	if ttl == 0 {
		ttl = m.ttl
	}
	var expires time.Time
	if ttl > 0 {
		expires = m.nowFunc().Add(ttl)
	}

	if el, ok := m.index[key]; ok {
		e := el.Value.(*memoryEntry[V])
		e.value, e.expires = value, expires
		m.order.MoveToFront(el)
		return nil
	}
	if m.limit > 0 && m.order.Len() >= m.limit {
		m.remove(m.order.Back())
	}
	m.index[key] = m.order.PushFront(&memoryEntry[V]{key: key, value: value, expires: expires})
	return nil
}

func (m *Memory[V]) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}
	if el, ok := m.index[key]; ok {
		m.remove(el)
	}
	return nil
}

func (m *Memory[V]) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}
	clear(m.index)
	m.order.Init()
	return nil
}

// Close releases the entries. Later calls return ErrClosed.
func (m *Memory[V]) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	m.index = nil
	m.order.Init()
	return nil
}

// Stats reports the number of live entries and the lookup counters.
type Stats struct {
	Entries int    `json:"entries"`
	Hits    uint64 `json:"hits"`
	Misses  uint64 `json:"misses"`
}

func (m *Memory[V]) Stats() Stats {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Stats{Entries: m.order.Len(), Hits: m.hits, Misses: m.misses}
}

func (m *Memory[V]) remove(el *list.Element) {
	if el == nil {
		return
	}
	m.order.Remove(el)
	delete(m.index, el.Value.(*memoryEntry[V]).key)
}

var _ Cache[[]byte] = (*Memory[[]byte])(nil)
