// Package kvstoresql persists dashboard state in the kv_entries table
// created by the migrations in the sql directory.
package kvstoresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/openkcm/employee-dashboard/internal/kvstore"
	"github.com/openkcm/employee-dashboard/internal/serviceerr"
)

type Backend struct {
	db        *pgxpool.Pool
	namespace string
}

var _ = kvstore.Backend(&Backend{})

func New(db *pgxpool.Pool, namespace string) *Backend {
	return &Backend{
		db:        db,
		namespace: namespace,
	}
}

func (b *Backend) Get(ctx context.Context, key string) (value string, _ error) {
	if err := b.db.QueryRow(ctx, `SELECT value
FROM kv_entries
WHERE namespace = $1
	AND key = $2;`,
		b.namespace, key,
	).Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", serviceerr.ErrNotFound
		}

		return "", fmt.Errorf("selecting from kv_entries: %w", err)
	}

	return value, nil
}

func (b *Backend) Set(ctx context.Context, key, value string) error {
	if _, err := b.db.Exec(ctx, `INSERT INTO kv_entries (namespace, key, value, updated_at)
	VALUES ($1, $2, $3, now())
	ON CONFLICT (namespace, key)
	DO UPDATE SET (value, updated_at) = (EXCLUDED.value, EXCLUDED.updated_at);`,
		b.namespace, key, value,
	); err != nil {
		return fmt.Errorf("upserting into kv_entries: %w", err)
	}

	return nil
}

func (b *Backend) Delete(ctx context.Context, key string) error {
	if _, err := b.db.Exec(ctx, `DELETE FROM kv_entries WHERE namespace = $1 AND key = $2;`, b.namespace, key); err != nil {
		return fmt.Errorf("deleting from kv_entries: %w", err)
	}

	return nil
}
