// Package responsewriter carries the response writer of the current request
// in its context so that code deep inside the dashboard, such as the
// navigator, can annotate the response it belongs to.
package responsewriter

import (
	"context"
	"errors"
	"net/http"
)

type contextKey struct{}

var ErrNoResponseWriter = errors.New("response writer not found in context")

// WithWriter returns a copy of ctx that carries w.
func WithWriter(ctx context.Context, w http.ResponseWriter) context.Context {
	return context.WithValue(ctx, contextKey{}, w)
}

// Middleware stores the response writer of every request in its context.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(WithWriter(r.Context(), w)))
	})
}

// FromContext returns the writer stored by Middleware or WithWriter.
func FromContext(ctx context.Context) (http.ResponseWriter, error) {
	w, ok := ctx.Value(contextKey{}).(http.ResponseWriter)
	if !ok || w == nil {
		return nil, ErrNoResponseWriter
	}

	return w, nil
}
