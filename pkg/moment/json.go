package moment

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ToISOString renders the instant in UTC with millisecond precision,
// "2024-03-10T08:30:00.000Z". Years outside 0..9999 use the six digit
// signed form. Invalid Moments render as "".
func (m Moment) ToISOString() string {
	if !m.valid {
		return ""
	}
	u := m.UTC()
	if y := u.Year(); y < 0 || y > 9999 {
		return u.Format("YYYYYY-MM-DD[T]HH:mm:ss.SSS[Z]")
	}
	return u.Format("YYYY-MM-DD[T]HH:mm:ss.SSS[Z]")
}

// MarshalJSON writes the ISO string, or null for an invalid Moment.
func (m Moment) MarshalJSON() ([]byte, error) {
	if !m.valid {
		return []byte("null"), nil
	}
	return json.Marshal(m.ToISOString())
}

// UnmarshalJSON reads an ISO 8601 or RFC 2822 string. null leaves an
// invalid Moment.
func (m *Moment) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*m = Invalid()
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("moment: decode json: %w", err)
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
