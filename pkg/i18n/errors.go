package i18n

import "errors"

var (
	ErrEmptyLocale        = errors.New("i18n: locale cannot be empty")
	ErrNilPluralRule      = errors.New("i18n: plural rule cannot be nil")
	ErrNilPlaceholderFunc = errors.New("i18n: missing placeholder func cannot be nil")
	ErrInvalidFile        = errors.New("i18n: invalid translation file")
	ErrUnsupportedFormat  = errors.New("i18n: unsupported translation file format")
)
