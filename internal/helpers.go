package internal

import (
	"fmt"
	"reflect"
	"strconv"
)

// Scalar lists the types route and query parameters convert to. Named
// types work too, e.g. a `type Locale string`.
type Scalar interface {
	~string | ~int | ~int64 | ~float64 | ~bool
}

// ContextValue returns the value stored under key, or the zero T.
func ContextValue[T any](c Context, key any) T {
	if v, ok := c.Get(key).(T); ok {
		return v
	}
	var zero T
	return zero
}

// Param returns a route parameter as T, or the zero T if it does not
// convert.
func Param[T Scalar](c Context, name string) T {
	v, _ := parseScalar[T](c.Param(name))
	return v
}

// Query returns a query parameter as T, or the zero T if it is absent or
// does not convert.
func Query[T Scalar](c Context, name string) T {
	v, _ := parseScalar[T](c.Query(name))
	return v
}

// QueryDefault returns a query parameter as T, or def if it is absent or
// does not convert.
func QueryDefault[T Scalar](c Context, name string, def T) T {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	v, err := parseScalar[T](raw)
	if err != nil {
		return def
	}
	return v
}

// QueryValue returns a query parameter as T and whether it was set. A
// value that does not convert is a 400 HTTPError built with opts:
//
//	n, ok, err := internal.QueryValue[int](c, "count", internal.WithErrorCode("invalid_count"))
func QueryValue[T Scalar](c Context, name string, opts ...HTTPErrorOption) (T, bool, error) {
	raw := c.Query(name)
	if raw == "" {
		var zero T
		return zero, false, nil
	}
	v, err := parseScalar[T](raw)
	if err != nil {
		opts = append([]HTTPErrorOption{WithError(err)}, opts...)
		return v, true, ErrBadRequest(fmt.Sprintf("%s must be %s", name, scalarName[T]()), opts...)
	}
	return v, true, nil
}

func parseScalar[T Scalar](raw string) (T, error) {
	var out T
	v := reflect.ValueOf(&out).Elem()
	switch v.Kind() {
	case reflect.String:
		v.SetString(raw)
	case reflect.Int, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, v.Type().Bits())
		if err != nil {
			return out, err
		}
		v.SetInt(n)
	case reflect.Float64:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return out, err
		}
		v.SetFloat(f)
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return out, err
		}
		v.SetBool(b)
	}
	return out, nil
}

func scalarName[T Scalar]() string {
	var zero T
	switch reflect.TypeOf(zero).Kind() {
	case reflect.Int, reflect.Int64:
		return "an integer"
	case reflect.Float64:
		return "a number"
	case reflect.Bool:
		return "a boolean"
	default:
		return "a string"
	}
}
