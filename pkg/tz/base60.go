package tz

import (
	"fmt"
	"math"
	"strings"
)

const base60Digits = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWX"

// base60Epsilon absorbs float error when packing fractions.
const base60Epsilon = 0.000001

func base60Digit(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'x':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'X':
		return int(c-'A') + 36, true
	}
	return 0, false
}

// UnpackBase60 decodes a base60 number with an optional leading "-" and
// an optional "." fraction ("1.u" is 1.5).
func UnpackBase60(s string) (float64, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidBase60)
	}

	sign := 1.0
	body := s
	if body[0] == '-' {
		sign = -1
		body = body[1:]
	}
	whole, fraction, _ := strings.Cut(body, ".")

	var out float64
	for i := 0; i < len(whole); i++ {
		d, ok := base60Digit(whole[i])
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrInvalidBase60, s)
		}
		out = out*60 + float64(d)
	}

	multiplier := 1.0
	for i := 0; i < len(fraction); i++ {
		d, ok := base60Digit(fraction[i])
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrInvalidBase60, s)
		}
		multiplier /= 60
		out += float64(d) * multiplier
	}

	return out * sign, nil
}

// PackBase60 encodes n with up to precision fraction digits.
func PackBase60(n float64, precision int) string {
	precision = min(max(precision, 0), 10)

	abs := math.Abs(n)
	whole := math.Floor(abs)
	fraction := packBase60Fraction(abs-whole, precision)

	var out string
	for w := int64(whole); w > 0; w /= 60 {
		out = string(base60Digits[w%60]) + out
	}
	if n < 0 {
		out = "-" + out
	}

	switch {
	case fraction != "":
		return out + fraction
	case out == "" || out == "-":
		return "0"
	}
	return out
}

func packBase60Fraction(fraction float64, precision int) string {
	var out, buffer strings.Builder
	buffer.WriteByte('.')
	for ; precision > 0; precision-- {
		fraction *= 60
		current := int(math.Floor(fraction + base60Epsilon))
		current = min(current, 59)
		buffer.WriteByte(base60Digits[current])
		fraction -= float64(current)
		if current != 0 {
			out.WriteString(buffer.String())
			buffer.Reset()
		}
	}
	return out.String()
}
