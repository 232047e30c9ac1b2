package catalog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/dmitrymomot/babel/pkg/db"
	"github.com/dmitrymomot/babel/pkg/i18n"
)

// Override is one stored translation override.
type Override struct {
	Locale    string    `json:"locale"`
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Pool is what Store needs from *pgxpool.Pool.
type Pool interface {
	Querier
	db.TxBeginner
}

// Store edits translation_overrides. Every change runs in a transaction
// that also calls the change hook, so a reload job can be enqueued
// atomically with the write.
type Store struct {
	pool     Pool
	onChange func(ctx context.Context, tx pgx.Tx) error
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// OnChange runs fn inside the transaction of every successful write.
func OnChange(fn func(ctx context.Context, tx pgx.Tx) error) StoreOption {
	return func(s *Store) { s.onChange = fn }
}

func NewStore(pool Pool, opts ...StoreOption) *Store {
	s := &Store{pool: pool}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Upsert sets the override for locale and dotted key.
func (s *Store) Upsert(ctx context.Context, locale, key, value string) (Override, error) {
	locale, key, err := validateOverride(locale, key)
	if err != nil {
		return Override{}, err
	}

	var o Override
	err = db.WithTx(ctx, s.pool, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO translation_overrides (locale, key, value)
			VALUES ($1, $2, $3)
			ON CONFLICT (locale, key) DO UPDATE
			SET value = EXCLUDED.value, updated_at = now()
			RETURNING locale, key, value, updated_at`,
			locale, key, value,
		).Scan(&o.Locale, &o.Key, &o.Value, &o.UpdatedAt)
		if err != nil {
			return fmt.Errorf("upsert override: %w", err)
		}
		return s.changed(ctx, tx)
	})
	return o, err
}

// Delete removes an override; ErrOverrideNotFound when there is none.
func (s *Store) Delete(ctx context.Context, locale, key string) error {
	locale, key, err := validateOverride(locale, key)
	if err != nil {
		return err
	}
	return db.WithTx(ctx, s.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `DELETE FROM translation_overrides WHERE locale = $1 AND key = $2`, locale, key)
		if err != nil {
			return fmt.Errorf("delete override: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("%w: %s %s", ErrOverrideNotFound, locale, key)
		}
		return s.changed(ctx, tx)
	})
}

// List returns the overrides of a locale ordered by key.
func (s *Store) List(ctx context.Context, locale string) ([]Override, error) {
	locale = i18n.NormalizeLocale(locale)
	if locale == "" {
		return nil, ErrInvalidLocale
	}
	rows, err := s.pool.Query(ctx, `
		SELECT locale, key, value, updated_at FROM translation_overrides
		WHERE locale = $1 ORDER BY key`, locale)
	if err != nil {
		return nil, fmt.Errorf("list overrides: %w", err)
	}
	return pgx.CollectRows(rows, pgx.RowToStructByPos[Override])
}

func (s *Store) changed(ctx context.Context, tx pgx.Tx) error {
	if s.onChange == nil {
		return nil
	}
	return s.onChange(ctx, tx)
}

func validateOverride(locale, key string) (string, string, error) {
	locale = i18n.NormalizeLocale(locale)
	if locale == "" || strings.ContainsAny(locale, " ./") {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidLocale, locale)
	}
	key = strings.TrimSpace(key)
	if key == "" || strings.HasPrefix(key, ".") || strings.HasSuffix(key, ".") || strings.Contains(key, "..") {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return locale, key, nil
}
