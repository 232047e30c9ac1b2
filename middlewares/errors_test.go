package middlewares_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/babel/middlewares"
)

func TestErrorMessages(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "panic: catalog missing", (&middlewares.PanicError{Value: "catalog missing"}).Error())
	assert.Equal(t, "panic: 42", (&middlewares.PanicError{Value: 42}).Error())
	assert.Equal(t, "panic: <nil>", (&middlewares.PanicError{}).Error())
	assert.Equal(t, "request timeout after 5s", (&middlewares.TimeoutError{Duration: 5 * time.Second}).Error())
	assert.Equal(t, "request timeout after 250ms", (&middlewares.TimeoutError{Duration: 250 * time.Millisecond}).Error())
}

func TestErrorMatching(t *testing.T) {
	t.Parallel()

	panicErr := fmt.Errorf("handler: %w", &middlewares.PanicError{Value: "x"})
	timeoutErr := fmt.Errorf("handler: %w", &middlewares.TimeoutError{Duration: time.Second})
	plain := errors.New("plain")

	assert.True(t, middlewares.IsPanicError(panicErr))
	assert.False(t, middlewares.IsPanicError(timeoutErr))
	assert.False(t, middlewares.IsPanicError(nil))

	assert.True(t, middlewares.IsTimeoutError(timeoutErr))
	assert.False(t, middlewares.IsTimeoutError(plain))
	assert.False(t, middlewares.IsTimeoutError(nil))

	pe, ok := middlewares.AsPanicError(panicErr)
	assert.True(t, ok)
	assert.Equal(t, "x", pe.Value)

	_, ok = middlewares.AsPanicError(plain)
	assert.False(t, ok)

	te, ok := middlewares.AsTimeoutError(timeoutErr)
	assert.True(t, ok)
	assert.Equal(t, time.Second, te.Duration)

	_, ok = middlewares.AsTimeoutError(plain)
	assert.False(t, ok)
}
