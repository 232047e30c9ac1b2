package db

import "errors"

var (
	ErrFailedToParseDBConfig    = errors.New("db: parse database config")
	ErrFailedToOpenDBConnection = errors.New("db: open database connection")
	ErrHealthcheckFailed        = errors.New("db: healthcheck failed")
	ErrSetDialect               = errors.New("db: set migration dialect")
	ErrApplyMigrations          = errors.New("db: apply migrations")
)
