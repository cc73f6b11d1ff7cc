package business

import (
	"context"
	"fmt"
	"os"

	slogctx "github.com/veqryn/slog-context"

	"github.com/openkcm/employee-dashboard/internal/config"
	"github.com/openkcm/employee-dashboard/internal/employee"
	"github.com/openkcm/employee-dashboard/internal/views"
)

// ExportMain returns the export job writing the employee table to path.
// The job performs exactly one fetch and needs no login.
func ExportMain(path string) func(context.Context, *config.Config) error {
	return func(ctx context.Context, cfg *config.Config) error {
		source, err := sourceFromConfig(cfg)
		if err != nil {
			return fmt.Errorf("creating employee source: %w", err)
		}

		return export(ctx, source, path)
	}
}

func export(ctx context.Context, source employee.Source, path string) error {
	cache := employee.NewCache(source)
	cache.Refresh(ctx)

	snap := cache.Snapshot()
	if snap.State == employee.StateFailed {
		return fmt.Errorf("exporting employees: %s", snap.ErrorMessage)
	}
	if len(snap.Records) == 0 {
		slogctx.Info(ctx, "No employees to export")
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	if err := views.WriteCSV(f, snap.Records); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}

	slogctx.Info(ctx, "Employees exported", "records", len(snap.Records), "path", path)

	return nil
}
