package internal

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseWriterWriteHeader(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	rw := NewResponseWriter(w)

	assert.False(t, rw.Written())
	rw.WriteHeader(http.StatusNotFound)
	rw.WriteHeader(http.StatusOK)

	assert.Equal(t, http.StatusNotFound, rw.Status())
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.True(t, rw.Written())
}

func TestResponseWriterWrite(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	rw := NewResponseWriter(w)

	n, err := rw.Write([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	_, err = rw.Write([]byte(" world"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rw.Status())
	assert.Equal(t, int64(11), rw.Size())
	assert.Equal(t, "hello world", w.Body.String())
}

func TestResponseWriterHooks(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	rw := NewResponseWriter(w)

	var calls []string
	rw.OnBeforeWrite(func() {
		calls = append(calls, "first")
		rw.Header().Set("X-Revision", "abc")
	})
	rw.OnBeforeWrite(func() { calls = append(calls, "second") })

	_, _ = rw.Write([]byte("x"))
	_, _ = rw.Write([]byte("y"))
	rw.WriteHeader(http.StatusTeapot)

	assert.Equal(t, []string{"first", "second"}, calls)
	assert.Equal(t, "abc", w.Header().Get("X-Revision"))
	assert.Same(t, w, rw.Unwrap())
}

func TestResponseWriterFlushAndHijack(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	rw := NewResponseWriter(w)

	rw.Flush()
	assert.True(t, w.Flushed)

	_, _, err := rw.Hijack()
	require.ErrorIs(t, err, http.ErrNotSupported)
}
