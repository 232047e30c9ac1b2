package catalog

import (
	"context"
	"io/fs"

	"github.com/dmitrymomot/babel/pkg/i18n"
)

// Source produces catalogs keyed by normalized locale.
type Source interface {
	Name() string
	Load(ctx context.Context) (map[string]i18n.Translations, error)
}

// FSSource reads JSON, YAML and TOML catalog files from a file system,
// usually os.DirFS of the catalog directory or an embed.FS.
type FSSource struct {
	name string
	fsys fs.FS
}

func NewFSSource(name string, fsys fs.FS) *FSSource {
	return &FSSource{name: name, fsys: fsys}
}

func (s *FSSource) Name() string { return s.name }

func (s *FSSource) Load(ctx context.Context) (map[string]i18n.Translations, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return i18n.LoadFS(s.fsys)
}

// StaticSource serves catalogs built in code.
type StaticSource struct {
	name     string
	catalogs map[string]i18n.Translations
}

func NewStaticSource(name string, catalogs map[string]i18n.Translations) *StaticSource {
	return &StaticSource{name: name, catalogs: catalogs}
}

func (s *StaticSource) Name() string { return s.name }

// Load returns a deep copy, so later merges cannot change the source.
func (s *StaticSource) Load(context.Context) (map[string]i18n.Translations, error) {
	out := make(map[string]i18n.Translations, len(s.catalogs))
	i18n.MergeCatalogs(out, s.catalogs)
	return out, nil
}
