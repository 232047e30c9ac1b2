package i18n

import (
	"maps"
	"strings"
)

// M holds interpolation values keyed by token name.
type M = map[string]any

// CallOption configures a single Translate call.
type CallOption func(*callOptions)

type callOptions struct {
	values       M
	count        *int
	defaultValue *string
	scope        string
	defaultKeys  []string
}

func newCallOptions(opts ...CallOption) *callOptions {
	o := &callOptions{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// path prefixes key with the configured scope.
func (o *callOptions) path(key string) string {
	if o.scope == "" {
		return key
	}
	return strings.TrimSuffix(o.scope, Separator) + Separator + strings.TrimPrefix(key, Separator)
}

// WithValues supplies interpolation values. Repeated calls merge, later
// values win.
func WithValues(values M) CallOption {
	return func(o *callOptions) {
		if len(values) == 0 {
			return
		}
		if o.values == nil {
			o.values = make(M, len(values))
		}
		maps.Copy(o.values, values)
	}
}

// WithCount selects a plural sub-key and exposes the count as {{count}}.
func WithCount(n int) CallOption {
	return func(o *callOptions) {
		o.count = &n
	}
}

// WithDefault sets the message used when the key resolves nowhere.
// The default is interpolated like a regular translation.
func WithDefault(message string) CallOption {
	return func(o *callOptions) {
		o.defaultValue = &message
	}
}

// WithDefaultKeys lists alternative keys tried, in order, before the
// default message.
func WithDefaultKeys(keys ...string) CallOption {
	return func(o *callOptions) {
		o.defaultKeys = append(o.defaultKeys, keys...)
	}
}

// WithScope prefixes the key with a dotted scope.
func WithScope(scope string) CallOption {
	return func(o *callOptions) {
		o.scope = strings.Trim(scope, Separator)
	}
}

func mergeValues(values ...M) M {
	switch len(values) {
	case 0:
		return nil
	case 1:
		return values[0]
	}
	merged := make(M)
	for _, v := range values {
		maps.Copy(merged, v)
	}
	return merged
}

// withCount returns a copy of values with "count" set unless the caller
// provided one.
func withCount(values M, n int) M {
	out := make(M, len(values)+1)
	out["count"] = n
	maps.Copy(out, values)
	return out
}
