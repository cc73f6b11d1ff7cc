// Package postgrestest runs a throwaway PostgreSQL container with the
// dashboard schema applied.
package postgrestest

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/docker/go-connections/nat"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	_ "github.com/jackc/pgx/v5/stdlib"

	slogctx "github.com/veqryn/slog-context"

	migrations "github.com/openkcm/employee-dashboard/sql"
)

const (
	DBHost     = "localhost"
	DBUser     = "postgres"
	DBPassword = "secret"
	DBName     = "employee_dashboard"
	DBSSLMode  = "disable"
)

// Start launches PostgreSQL, applies the migrations and returns a pool and
// the connection string. Everything is released when the test finishes.
func Start(t testing.TB) (*pgxpool.Pool, string) {
	t.Helper()

	ctx := context.Background()

	pgContainer, err := postgres.Run(
		ctx,
		"postgres:17-alpine",
		postgres.WithDatabase(DBName),
		postgres.WithUsername(DBUser),
		postgres.WithPassword(DBPassword),
		postgres.BasicWaitStrategies(),
	)
	require.NoError(t, err, "starting PostgreSQL container")

	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			slogctx.Error(ctx, "Failed to terminate PostgreSQL container", "error", err)
		}
	})

	port, err := pgContainer.MappedPort(ctx, nat.Port("5432"))
	require.NoError(t, err, "mapping PostgreSQL port")

	connStr := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		DBHost, DBUser, DBPassword, DBName, port.Port(), DBSSLMode)

	migrate(ctx, t, connStr)

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err, "creating pgx pool")
	t.Cleanup(pool.Close)

	return pool, connStr
}

func migrate(ctx context.Context, t testing.TB, connStr string) {
	t.Helper()

	db, err := sql.Open("pgx", connStr)
	require.NoError(t, err)
	defer db.Close()

	goose.SetBaseFS(migrations.FS)
	require.NoError(t, goose.SetDialect("pgx"))
	require.NoError(t, goose.UpContext(ctx, db, "."))
}
