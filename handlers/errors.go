package handlers

import (
	"errors"

	"github.com/dmitrymomot/babel/internal"
	"github.com/dmitrymomot/babel/pkg/catalog"
	"github.com/dmitrymomot/babel/pkg/storage"
	"github.com/dmitrymomot/babel/pkg/tz"
)

// Error codes of the JSON API. They double as "errors.<code>" i18n keys.
const (
	CodeLocaleNotFound   = "locale_not_found"
	CodeOverrideNotFound = "override_not_found"
	CodeZoneNotFound     = "zone_not_found"
	CodeBundleNotFound   = "bundle_not_found"
	CodeInvalidLocale    = "invalid_locale"
	CodeInvalidKey       = "invalid_key"
	CodeInvalidBundle    = "invalid_bundle"
	CodeInvalidCount     = "invalid_count"
	CodeInvalidTime      = "invalid_time"
	CodeInvalidParam     = "invalid_param"
	CodeReloadFailed     = "reload_failed"
)

// domainError maps package errors to HTTP errors. Unknown errors pass
// through and become 500.
func domainError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, catalog.ErrInvalidLocale):
		return internal.ErrBadRequest("invalid locale", internal.WithErrorCode(CodeInvalidLocale), internal.WithError(err))
	case errors.Is(err, catalog.ErrInvalidKey), errors.Is(err, storage.ErrInvalidKey):
		return internal.ErrBadRequest("invalid key", internal.WithErrorCode(CodeInvalidKey), internal.WithError(err))
	case errors.Is(err, catalog.ErrInvalidBundle):
		return internal.ErrUnprocessable("bundle cannot be decoded", internal.WithErrorCode(CodeInvalidBundle), internal.WithDetail(err.Error()), internal.WithError(err))
	case errors.Is(err, catalog.ErrOverrideNotFound):
		return internal.ErrNotFound("override not found", internal.WithErrorCode(CodeOverrideNotFound), internal.WithError(err))
	case errors.Is(err, storage.ErrNotFound):
		return internal.ErrNotFound("bundle not found", internal.WithErrorCode(CodeBundleNotFound), internal.WithError(err))
	case errors.Is(err, tz.ErrZoneNotFound):
		return internal.ErrNotFound("time zone not found", internal.WithErrorCode(CodeZoneNotFound), internal.WithError(err))
	case errors.Is(err, catalog.ErrReloadFailed):
		return internal.ErrServiceUnavailable("catalog reload failed", internal.WithErrorCode(CodeReloadFailed), internal.WithError(err))
	}
	return err
}
