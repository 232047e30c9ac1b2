package catalog

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/dmitrymomot/babel/pkg/cache"
	"github.com/dmitrymomot/babel/pkg/i18n"
	"github.com/dmitrymomot/babel/pkg/storage"
)

// StorageSource reads catalog bundles kept in object storage under a
// prefix: <prefix>/<locale>.json, <prefix>/<locale>/<namespace>.yaml and
// so on. Raw payloads are cached by key and ETag, so an unchanged object
// is fetched once per cache lifetime.
type StorageSource struct {
	store  storage.Storage
	prefix string
	cache  cache.Cache[[]byte]
	ttl    time.Duration
}

// StorageOption configures a StorageSource.
type StorageOption func(*StorageSource)

// WithPayloadCache caches fetched payloads in c for ttl.
func WithPayloadCache(c cache.Cache[[]byte], ttl time.Duration) StorageOption {
	return func(s *StorageSource) {
		s.cache, s.ttl = c, ttl
	}
}

func NewStorageSource(store storage.Storage, prefix string, opts ...StorageOption) *StorageSource {
	s := &StorageSource{
		store:  store,
		prefix: strings.Trim(prefix, "/"),
		cache:  cache.NewMemory[[]byte](cache.WithMaxEntries(256)),
		ttl:    10 * time.Minute,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *StorageSource) Name() string { return "storage" }

func (s *StorageSource) Load(ctx context.Context) (map[string]i18n.Translations, error) {
	objects, err := s.store.List(ctx, s.prefix)
	if err != nil {
		return nil, fmt.Errorf("list bundles: %w", err)
	}

	out := make(map[string]i18n.Translations)
	for _, obj := range objects {
		rel := strings.TrimPrefix(strings.TrimPrefix(obj.Key, s.prefix), "/")
		if _, ok := i18n.FormatFromExt(path.Ext(rel)); !ok {
			continue
		}

		data, err := cache.GetOrSet(ctx, s.cache, obj.Key+"@"+obj.ETag, func(ctx context.Context) ([]byte, time.Duration, error) {
			b, err := storage.ReadAll(ctx, s.store, obj.Key)
			return b, s.ttl, err
		})
		if err != nil {
			return nil, fmt.Errorf("fetch %s: %w", obj.Key, err)
		}

		catalogs, err := i18n.DecodeFile(rel, data)
		if err != nil {
			return nil, err
		}
		i18n.MergeCatalogs(out, catalogs)
	}
	return out, nil
}

// Put validates a bundle by decoding it and stores it as
// <prefix>/<name>. name is a file name such as "de.yaml" or
// "de/errors.json".
func (s *StorageSource) Put(ctx context.Context, name string, data []byte) error {
	name = strings.Trim(name, "/")
	if _, err := i18n.DecodeFile(name, data); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidBundle, err)
	}
	key := s.key(name)
	if err := storage.ValidateKey(key); err != nil {
		return err
	}
	return s.store.Put(ctx, key, bytes.NewReader(data), int64(len(data)), storage.ContentType(key))
}

// Remove deletes a bundle stored with Put.
func (s *StorageSource) Remove(ctx context.Context, name string) error {
	return s.store.Delete(ctx, s.key(strings.Trim(name, "/")))
}

// Bundles lists the stored bundle names relative to the prefix.
func (s *StorageSource) Bundles(ctx context.Context) ([]storage.Object, error) {
	objects, err := s.store.List(ctx, s.prefix)
	if err != nil {
		return nil, err
	}
	for i := range objects {
		objects[i].Key = strings.TrimPrefix(strings.TrimPrefix(objects[i].Key, s.prefix), "/")
	}
	return objects, nil
}

// Invalidate drops the cached payloads.
func (s *StorageSource) Invalidate(ctx context.Context) error {
	return s.cache.Clear(ctx)
}

func (s *StorageSource) key(name string) string {
	if s.prefix == "" {
		return name
	}
	return s.prefix + "/" + name
}
