package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	dotenvOnce sync.Once
	loaded     sync.Map // reflect.Type -> *entry
)

type entry struct {
	once  sync.Once
	value any
	err   error
}

// Load fills v from the environment using `env` and `envDefault` struct
// tags. A .env file in the working directory is read once, before the
// first Load; variables already set take precedence over it. Each type is
// parsed once and later calls receive a copy of the cached value.
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	dotenvOnce.Do(func() { _ = godotenv.Load() })

	e, _ := loaded.LoadOrStore(reflect.TypeFor[T](), &entry{})
	ent := e.(*entry)
	ent.once.Do(func() {
		var fresh T
		if err := env.Parse(&fresh); err != nil {
			ent.err = errors.Join(ErrParsingConfig, err)
			return
		}
		ent.value = fresh
	})
	if ent.err != nil {
		return ent.err
	}
	*v = ent.value.(T)
	return nil
}

// MustLoad is Load that panics on error, for use in main.
func MustLoad[T any]() T {
	var v T
	if err := Load(&v); err != nil {
		panic(fmt.Sprintf("config: %v", err))
	}
	return v
}

// Parse reads the environment into a new T without the cache, with extra
// env options such as a variable prefix. Tests use it with
// env.Options{Environment: map[string]string{...}}.
func Parse[T any](opts env.Options) (T, error) {
	var v T
	if err := env.ParseWithOptions(&v, opts); err != nil {
		return v, errors.Join(ErrParsingConfig, err)
	}
	return v, nil
}
