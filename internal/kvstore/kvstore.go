// Package kvstore is the only place that touches raw persistence.
//
// Backends report failures as errors; the Adapter swallows them so callers
// see a missing value on read and a no-op on write. A nil backend models an
// environment without any persistence at all.
package kvstore

import (
	"context"
	"errors"

	slogctx "github.com/veqryn/slog-context"

	"github.com/openkcm/employee-dashboard/internal/serviceerr"
)

// Store is the failure-tolerant view every stateful component depends on.
type Store interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string)
	Remove(ctx context.Context, key string)
}

// Backend is a raw persistence medium. Get returns serviceerr.ErrNotFound
// when the key is absent.
type Backend interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

type Adapter struct {
	backend Backend
}

var _ = Store(&Adapter{})

func NewAdapter(backend Backend) *Adapter {
	return &Adapter{backend: backend}
}

func (a *Adapter) Get(ctx context.Context, key string) (string, bool) {
	if a.backend == nil {
		return "", false
	}

	value, err := a.backend.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, serviceerr.ErrNotFound) {
			slogctx.Warn(ctx, "Storage read failed; treating value as absent", "key", key, "error", err)
		}
		return "", false
	}

	return value, true
}

func (a *Adapter) Set(ctx context.Context, key, value string) {
	if a.backend == nil {
		return
	}

	if err := a.backend.Set(ctx, key, value); err != nil {
		slogctx.Warn(ctx, "Storage write failed; value not persisted", "key", key, "error", err)
	}
}

func (a *Adapter) Remove(ctx context.Context, key string) {
	if a.backend == nil {
		return
	}

	if err := a.backend.Delete(ctx, key); err != nil {
		slogctx.Warn(ctx, "Storage delete failed", "key", key, "error", err)
	}
}
