package moment

import "errors"

var (
	ErrInvalidDate = errors.New("moment: invalid date")
	ErrNilZone     = errors.New("moment: nil zone")
)
