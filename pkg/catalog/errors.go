package catalog

import "errors"

var (
	ErrNoSources        = errors.New("catalog: no sources configured")
	ErrReloadFailed     = errors.New("catalog: reload failed")
	ErrInvalidLocale    = errors.New("catalog: invalid locale")
	ErrInvalidKey       = errors.New("catalog: invalid key")
	ErrOverrideNotFound = errors.New("catalog: override not found")
	ErrInvalidBundle    = errors.New("catalog: invalid bundle")
	ErrListenerStarted  = errors.New("catalog: listener already started")
)
