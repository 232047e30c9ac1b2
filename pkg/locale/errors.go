package locale

import "errors"

var (
	ErrEmptyCode      = errors.New("locale: empty code")
	ErrInvalidLocale  = errors.New("locale: invalid locale definition")
	ErrLocaleNotFound = errors.New("locale: locale not found")
)
