package kvstoremock

import (
	"context"
	"sync"

	"github.com/openkcm/employee-dashboard/internal/kvstore"
	"github.com/openkcm/employee-dashboard/internal/serviceerr"
)

type BackendOption func(*Backend)

// Backend is an in-memory kvstore.Backend with injectable failures.
type Backend struct {
	mu     sync.Mutex
	values map[string]string

	getErr, setErr, deleteErr error
}

func WithValue(key, value string) BackendOption {
	return func(b *Backend) { b.values[key] = value }
}

func WithGetError(err error) BackendOption {
	return func(b *Backend) { b.getErr = err }
}

func WithSetError(err error) BackendOption {
	return func(b *Backend) { b.setErr = err }
}

func WithDeleteError(err error) BackendOption {
	return func(b *Backend) { b.deleteErr = err }
}

var _ = kvstore.Backend(&Backend{})

func NewInMemBackend(opts ...BackendOption) *Backend {
	b := &Backend{
		values: make(map[string]string),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(b)
		}
	}
	return b
}

func (b *Backend) Get(_ context.Context, key string) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.getErr != nil {
		return "", b.getErr
	}
	if value, ok := b.values[key]; ok {
		return value, nil
	}
	return "", serviceerr.ErrNotFound
}

func (b *Backend) Set(_ context.Context, key, value string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.setErr != nil {
		return b.setErr
	}
	b.values[key] = value
	return nil
}

func (b *Backend) Delete(_ context.Context, key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.deleteErr != nil {
		return b.deleteErr
	}
	delete(b.values, key)
	return nil
}

// Value reads the raw stored value, bypassing any injected error.
func (b *Backend) Value(key string) (string, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	value, ok := b.values[key]
	return value, ok
}
