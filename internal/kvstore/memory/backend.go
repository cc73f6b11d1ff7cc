// Package kvstorememory keeps values in process memory. It is the default
// backend and the one used by tests.
package kvstorememory

import (
	"context"
	"fmt"

	gocache "github.com/patrickmn/go-cache"

	"github.com/openkcm/employee-dashboard/internal/kvstore"
	"github.com/openkcm/employee-dashboard/internal/serviceerr"
)

type Backend struct {
	items *gocache.Cache
}

var _ = kvstore.Backend(&Backend{})

func New() *Backend {
	return &Backend{
		items: gocache.New(gocache.NoExpiration, 0),
	}
}

func (b *Backend) Get(_ context.Context, key string) (string, error) {
	item, ok := b.items.Get(key)
	if !ok {
		return "", serviceerr.ErrNotFound
	}

	value, ok := item.(string)
	if !ok {
		return "", fmt.Errorf("unexpected value type %T for key %q", item, key)
	}

	return value, nil
}

func (b *Backend) Set(_ context.Context, key, value string) error {
	b.items.Set(key, value, gocache.NoExpiration)
	return nil
}

func (b *Backend) Delete(_ context.Context, key string) error {
	b.items.Delete(key)
	return nil
}
