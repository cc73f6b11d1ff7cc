package employee

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	slogctx "github.com/veqryn/slog-context"
)

// Snapshot is a consistent read of the cache: the records and the state
// always come from the same instant.
type Snapshot struct {
	Records      Collection
	State        FetchState
	ErrorMessage string
	UpdatedAt    time.Time
}

// Cache holds the canonical employee collection and its fetch lifecycle.
//
// The first Activate starts exactly one fetch no matter how many callers race
// on it. After that only Refresh fetches again. In-flight fetches are never
// cancelled; when refreshes overlap, the one that completes last decides the
// final state.
type Cache struct {
	source Source

	mu        sync.Mutex
	records   Collection
	state     FetchState
	errMsg    string
	updatedAt time.Time
	started   bool
	initial   chan struct{}
}

func NewCache(source Source) *Cache {
	return &Cache{
		source:  source,
		records: Collection{},
		state:   StateIdle,
		initial: make(chan struct{}),
	}
}

func (c *Cache) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Snapshot{
		Records:      slices.Clip(c.records),
		State:        c.state,
		ErrorMessage: c.errMsg,
		UpdatedAt:    c.updatedAt,
	}
}

// Activate starts the initial fetch in the background unless a fetch has
// already been started. The returned channel is closed once the initial
// fetch has settled; every call returns the same channel.
func (c *Cache) Activate(ctx context.Context) <-chan struct{} {
	c.mu.Lock()
	if c.started {
		c.mu.Unlock()
		return c.initial
	}
	c.started = true
	c.beginLocked()
	c.mu.Unlock()

	go func() {
		defer close(c.initial)
		c.load(context.WithoutCancel(ctx))
	}()

	return c.initial
}

// Refresh starts a new fetch regardless of the current state and returns
// once it has settled. The outcome is reported through Snapshot.
func (c *Cache) Refresh(ctx context.Context) {
	c.mu.Lock()
	first := !c.started
	c.started = true
	c.beginLocked()
	c.mu.Unlock()

	c.load(context.WithoutCancel(ctx))

	if first {
		close(c.initial)
	}
}

func (c *Cache) beginLocked() {
	c.state = StateLoading
	c.errMsg = ""
}

func (c *Cache) load(ctx context.Context) {
	records, err := c.source.Fetch(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.state = StateFailed
		c.errMsg = fetchMessage(err)
		slogctx.Warn(ctx, "Employee fetch failed; keeping previous collection", "records", len(c.records))
		return
	}

	if records == nil {
		records = Collection{}
	}
	c.records = records
	c.state = StateReady
	c.errMsg = ""
	c.updatedAt = time.Now()
	slogctx.Info(ctx, "Employee collection replaced", "records", len(records))
}

func fetchMessage(err error) string {
	if errors.Is(err, ErrFetch) {
		return ErrFetch.Error()
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return ErrFetch.Error()
}
