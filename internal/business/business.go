package business

import (
	"context"
	"fmt"
	"sync"

	slogctx "github.com/veqryn/slog-context"

	"github.com/openkcm/employee-dashboard/internal/business/server"
	"github.com/openkcm/employee-dashboard/internal/config"
	"github.com/openkcm/employee-dashboard/internal/dashboard"
	"github.com/openkcm/employee-dashboard/internal/kvstore"
	"github.com/openkcm/employee-dashboard/internal/session"
)

// Main starts the dashboard API server
func Main(ctx context.Context, cfg *config.Config) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	registry, closeFn, err := initClients(ctx, cfg, server.NewHeaderNavigator())
	if err != nil {
		return fmt.Errorf("initialising the dashboard: %w", err)
	}
	defer closeFn()

	// errChan is used to capture the first error and shutdown the servers.
	errChan := make(chan error, 1)

	// wg is used to wait for all servers to shutdown.
	var wg sync.WaitGroup

	wg.Go(func() {
		errChan <- server.StartHTTPServer(ctx, cfg, registry)
	})

	// wait for any error to initiate the shutdown
	if err := <-errChan; err != nil {
		slogctx.Error(ctx, "Shutting down servers", "error", err)
	}
	cancel()

	// wait for all servers to shutdown
	wg.Wait()

	return nil
}

// initClients builds the registry handing out one dashboard instance per
// client. Instances share the employee source and the storage backend; the
// keys of each instance live under its own prefix. The returned function
// closes every instance and the storage.
func initClients(ctx context.Context, cfg *config.Config, navigator session.Navigator) (_ *dashboard.Registry, closeFn func(), _ error) {
	password, err := config.SessionPassword(cfg.Session)
	if err != nil {
		return nil, nil, err
	}

	source, err := sourceFromConfig(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("creating employee source: %w", err)
	}

	backend, closeBackend, err := backendFromConfig(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("opening storage: %w", err)
	}

	appCfg := dashboard.Config{
		Credentials:    session.Credentials{Username: cfg.Session.Username, Password: password},
		SearchDebounce: cfg.Search.Debounce,
		ChartLimit:     cfg.Chart.Limit,
	}
	registry := dashboard.NewRegistry(func(ctx context.Context, clientID string) *dashboard.App {
		store := kvstore.NewAdapter(kvstore.WithPrefix(backend, clientKeyPrefix(clientID)))
		return dashboard.New(ctx, store, source, appCfg, dashboard.WithNavigator(navigator))
	}, cfg.Clients.IdleTimeout)

	slogctx.Info(ctx, "Dashboard initialised",
		"storage", string(cfg.Storage.Backend),
		"endpoint", cfg.DataSource.Endpoint,
		"idleTimeout", cfg.Clients.IdleTimeout,
	)

	return registry, func() {
		registry.Close()
		closeBackend()
	}, nil
}

func clientKeyPrefix(clientID string) string {
	return "client/" + clientID + "/"
}
