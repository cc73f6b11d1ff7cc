package responsewriter_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openkcm/employee-dashboard/internal/middleware/responsewriter"
)

func TestMiddleware(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/list", nil)

	var called bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true

		got, err := responsewriter.FromContext(r.Context())
		if assert.NoError(t, err) {
			assert.Same(t, rec, got)
		}
		assert.Same(t, rec, w)
	})

	responsewriter.Middleware(next).ServeHTTP(rec, req)

	assert.True(t, called)
}

func TestFromContext(t *testing.T) {
	rec := httptest.NewRecorder()

	t.Run("Stored writer", func(t *testing.T) {
		got, err := responsewriter.FromContext(responsewriter.WithWriter(t.Context(), rec))
		require.NoError(t, err)
		assert.Same(t, rec, got)
	})

	t.Run("Missing writer", func(t *testing.T) {
		_, err := responsewriter.FromContext(t.Context())
		assert.ErrorIs(t, err, responsewriter.ErrNoResponseWriter)
	})

	t.Run("Nil writer", func(t *testing.T) {
		_, err := responsewriter.FromContext(responsewriter.WithWriter(t.Context(), nil))
		assert.ErrorIs(t, err, responsewriter.ErrNoResponseWriter)
	})
}
