// Package kvstorevalkey persists dashboard state in ValKey so that several
// dashboard processes observe the same preferences.
package kvstorevalkey

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/valkey-io/valkey-go"

	"github.com/openkcm/employee-dashboard/internal/kvstore"
	"github.com/openkcm/employee-dashboard/internal/serviceerr"
)

const objectType = "kv"

type Backend struct {
	valkey valkey.Client
	prefix string
}

var _ = kvstore.Backend(&Backend{})

func New(valkeyClient valkey.Client, prefix string) *Backend {
	prefix = strings.TrimSuffix(prefix, ":")
	return &Backend{
		valkey: valkeyClient,
		prefix: prefix,
	}
}

func (b *Backend) Get(ctx context.Context, key string) (string, error) {
	value, err := b.valkey.Do(ctx, b.valkey.B().Get().Key(b.key(key)).Build()).ToString()
	if err != nil {
		valkeyErr, ok := valkey.IsValkeyErr(err)
		if ok && valkeyErr.IsNil() {
			return "", errors.Join(valkeyErr, serviceerr.ErrNotFound)
		}

		return "", fmt.Errorf("executing get command: %w", err)
	}

	return value, nil
}

func (b *Backend) Set(ctx context.Context, key, value string) error {
	if err := b.valkey.Do(ctx, b.valkey.B().Set().Key(b.key(key)).Value(value).Build()).Error(); err != nil {
		return fmt.Errorf("executing set command: %w", err)
	}

	return nil
}

func (b *Backend) Delete(ctx context.Context, key string) error {
	if err := b.valkey.Do(ctx, b.valkey.B().Del().Key(b.key(key)).Build()).Error(); err != nil {
		return fmt.Errorf("executing del command: %w", err)
	}

	return nil
}

func (b *Backend) key(key string) string {
	if b.prefix == "" {
		return fmt.Sprintf("%s:%s", objectType, key)
	}

	return fmt.Sprintf("%s:%s:%s", b.prefix, objectType, key)
}
