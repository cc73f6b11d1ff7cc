package dashboard

import (
	"context"
	"sync"
	"time"

	slogctx "github.com/veqryn/slog-context"

	"github.com/openkcm/employee-dashboard/internal/debounce"
	"github.com/openkcm/employee-dashboard/internal/preferences"
)

const DefaultSearchDebounce = 250 * time.Millisecond

// SearchState is what the list view shows: the text as typed and the query
// actually applied to the collection.
type SearchState struct {
	Input   string `json:"input"`
	Applied string `json:"applied"`
}

// Search keeps the list query in step with typed input. Input is applied
// once it has been quiet for the debounce delay, and the applied query is
// persisted.
type Search struct {
	ctx       context.Context //nolint:containedctx
	prefs     *preferences.Preferences
	debouncer *debounce.Debouncer[string]

	mu    sync.Mutex
	state SearchState
}

// NewSearch restores the last persisted query as both input and applied
// query.
func NewSearch(ctx context.Context, prefs *preferences.Preferences, delay time.Duration) *Search {
	if delay <= 0 {
		delay = DefaultSearchDebounce
	}

	last := prefs.LastSearch(ctx)
	s := &Search{
		ctx:   context.WithoutCancel(ctx),
		prefs: prefs,
		state: SearchState{Input: last, Applied: last},
	}
	s.debouncer = debounce.New(delay, s.apply)

	return s
}

func (s *Search) Input(text string) SearchState {
	s.mu.Lock()
	s.state.Input = text
	state := s.state
	s.mu.Unlock()

	s.debouncer.Schedule(text)

	return state
}

func (s *Search) State() SearchState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

// Flush applies pending input immediately.
func (s *Search) Flush() SearchState {
	s.debouncer.Flush()
	return s.State()
}

func (s *Search) Close() {
	s.debouncer.Flush()
	s.debouncer.Stop()
}

func (s *Search) apply(text string) {
	s.mu.Lock()
	s.state.Applied = text
	s.mu.Unlock()

	s.prefs.SetLastSearch(s.ctx, text)
	slogctx.Debug(s.ctx, "Search query applied", "query", text)
}
