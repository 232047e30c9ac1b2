// Package config loads typed configuration from environment variables.
//
//	type Config struct {
//		Addr   string `env:"HTTP_ADDR" envDefault:":8080"`
//		Locale string `env:"DEFAULT_LOCALE" envDefault:"en"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// Nested structs are parsed too, so package configs such as db.Config and
// storage.Config can be embedded as fields.
package config
