package catalog

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/jackc/pgx/v5"

	"github.com/dmitrymomot/babel/pkg/i18n"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Migrations holds the goose migrations for the override table, rooted
// at the migration files. Pass it to db.Migrate.
var Migrations = func() fs.FS {
	sub, err := fs.Sub(migrations, "migrations")
	if err != nil {
		panic(err)
	}
	return sub
}()

// Querier is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// PostgresSource turns rows of translation_overrides into catalogs.
// Registered last, it lets operators patch single keys without touching
// the bundles.
type PostgresSource struct {
	db Querier
}

func NewPostgresSource(db Querier) *PostgresSource {
	return &PostgresSource{db: db}
}

func (s *PostgresSource) Name() string { return "postgres" }

func (s *PostgresSource) Load(ctx context.Context) (map[string]i18n.Translations, error) {
	rows, err := s.db.Query(ctx, `SELECT locale, key, value FROM translation_overrides ORDER BY locale, key`)
	if err != nil {
		return nil, fmt.Errorf("query overrides: %w", err)
	}
	overrides, err := pgx.CollectRows(rows, pgx.RowToStructByPos[overrideRow])
	if err != nil {
		return nil, fmt.Errorf("scan overrides: %w", err)
	}
	return treesFromOverrides(overrides), nil
}

type overrideRow struct {
	Locale string
	Key    string
	Value  string
}

func treesFromOverrides(rows []overrideRow) map[string]i18n.Translations {
	out := make(map[string]i18n.Translations)
	for _, r := range rows {
		locale := i18n.NormalizeLocale(r.Locale)
		tree, ok := out[locale]
		if !ok {
			tree = make(i18n.Translations)
			out[locale] = tree
		}
		i18n.SetPath(tree, r.Key, r.Value)
	}
	return out
}
