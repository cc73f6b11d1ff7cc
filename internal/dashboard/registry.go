package dashboard

import (
	"context"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"

	slogctx "github.com/veqryn/slog-context"
)

// Factory builds the dashboard instance of one client.
type Factory func(ctx context.Context, clientID string) *App

// Registry keeps one dashboard instance per client. Instances that stay
// idle for longer than the idle timeout are closed; their persisted state
// is picked up again by the next instance of the same client.
type Registry struct {
	factory Factory

	mu   sync.Mutex
	apps *gocache.Cache
}

func NewRegistry(factory Factory, idleTimeout time.Duration) *Registry {
	apps := gocache.New(idleTimeout, idleTimeout/2)
	apps.OnEvicted(func(_ string, item any) {
		if app, ok := item.(*App); ok {
			app.Close()
		}
	})

	return &Registry{factory: factory, apps: apps}
}

// Get returns the instance of clientID and builds it on first use. Every
// call restarts the idle timeout of the instance.
func (r *Registry) Get(ctx context.Context, clientID string) *App {
	r.mu.Lock()
	defer r.mu.Unlock()

	if item, ok := r.apps.Get(clientID); ok {
		app := item.(*App)
		r.apps.SetDefault(clientID, app)

		return app
	}

	// Expired instances not yet collected are closed before one of them is
	// replaced.
	r.apps.DeleteExpired()

	app := r.factory(context.WithoutCancel(ctx), clientID)
	r.apps.SetDefault(clientID, app)
	slogctx.Debug(ctx, "Dashboard instance created", "instances", r.apps.ItemCount())

	return app
}

// Len reports how many instances are open.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.apps.DeleteExpired()

	return r.apps.ItemCount()
}

// Close closes every instance.
func (r *Registry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.apps.DeleteExpired()
	for clientID := range r.apps.Items() {
		r.apps.Delete(clientID)
	}
}
