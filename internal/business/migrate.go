package business

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/XSAM/otelsql"
	"github.com/pressly/goose/v3"
	"github.com/samber/oops"

	// Register pgx driver
	_ "github.com/jackc/pgx/v5/stdlib"

	slogctx "github.com/veqryn/slog-context"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"

	"github.com/openkcm/employee-dashboard/internal/config"
	migrations "github.com/openkcm/employee-dashboard/sql"
)

// MigrateMain applies the kv_entries schema of the postgres storage backend.
// The other backends keep no schema and the job is a no-op for them.
func MigrateMain(ctx context.Context, cfg *config.Config) error {
	if cfg.Storage.Backend != config.StoragePostgres {
		slogctx.Info(ctx, "Nothing to migrate", "backend", cfg.Storage.Backend)
		return nil
	}

	fsys, err := migrationsFS(cfg.Migrate.Source)
	if err != nil {
		return err
	}

	db, closeDB, err := openMigrationDB(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeDB()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, fsys)
	if err != nil {
		return fmt.Errorf("creating migration provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("applying migrations: %w", err)
	}

	for _, res := range results {
		slogctx.Info(ctx, "Applied migration", "version", res.Source.Version, "duration", res.Duration)
	}
	slogctx.Info(ctx, "Storage schema is up to date", "applied", len(results))

	return nil
}

func migrationsFS(source string) (fs.FS, error) {
	switch {
	case source == "" || source == config.MigrateSourceEmbedded:
		return migrations.FS, nil
	case strings.HasPrefix(source, "file://"):
		return os.DirFS(strings.TrimPrefix(source, "file://")), nil
	default:
		return nil, oops.In("migrate").With("source", source).Errorf("unsupported migration source")
	}
}

func openMigrationDB(ctx context.Context, cfg *config.Config) (*sql.DB, func(), error) {
	const driver = "pgx"
	dbSystemName := semconv.DBSystemNamePostgreSQL

	connStr, err := config.MakeConnStr(cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("making connection string from config: %w", err)
	}

	db, err := otelsql.Open(driver, connStr, otelsql.WithAttributes(dbSystemName))
	if err != nil {
		return nil, nil, oops.In("migrate").Wrapf(err, "opening DB connection")
	}

	reg, err := otelsql.RegisterDBStatsMetrics(db, otelsql.WithAttributes(dbSystemName))
	if err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("registering db stats metrics: %w", err)
	}

	return db, func() {
		if err := reg.Unregister(); err != nil {
			slogctx.Error(ctx, "Failed to unregister db stats metrics", "error", err)
		}
		if err := db.Close(); err != nil {
			slogctx.Error(ctx, "Failed to close migration DB", "error", err)
		}
	}, nil
}
