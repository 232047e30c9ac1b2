package tz

import "errors"

var (
	ErrInvalidPacked   = errors.New("tz: invalid packed zone")
	ErrInvalidLink     = errors.New("tz: invalid packed link")
	ErrInvalidBase60   = errors.New("tz: invalid base60 number")
	ErrZoneNotFound    = errors.New("tz: zone not found")
	ErrTooManyPeriods  = errors.New("tz: too many distinct abbreviation/offset pairs to pack")
	ErrInvalidLocation = errors.New("tz: invalid location range")
)
