// Package session holds the binary authentication state that gates the
// rest of the dashboard.
package session

import (
	"context"
	"sync"

	slogctx "github.com/veqryn/slog-context"

	"github.com/openkcm/employee-dashboard/internal/kvstore"
)

const (
	AuthKey = "auth_is_authenticated"

	authenticatedValue = "true"

	LoggedOutMessage = "You have been logged out."
)

type State int

const (
	StateAnonymous State = iota
	StateAuthenticated
)

func (s State) String() string {
	if s == StateAuthenticated {
		return "authenticated"
	}
	return "anonymous"
}

// Credentials is the single accepted username and password pair.
type Credentials struct {
	Username string
	Password string
}

type Option func(*Machine)

func WithNavigator(n Navigator) Option {
	return func(m *Machine) {
		if n != nil {
			m.navigator = n
		}
	}
}

func WithNotifier(n Notifier) Option {
	return func(m *Machine) {
		if n != nil {
			m.notifier = n
		}
	}
}

type Machine struct {
	store     kvstore.Store
	creds     Credentials
	navigator Navigator
	notifier  Notifier

	// transitionMu is held from the store write until the state reflects it.
	transitionMu sync.Mutex

	mu        sync.Mutex
	state     State
	listeners []func(context.Context, State)
}

// NewMachine resolves the initial state from the store exactly once.
// Anything other than the persisted "true" flag starts anonymous.
func NewMachine(ctx context.Context, store kvstore.Store, creds Credentials, opts ...Option) *Machine {
	m := &Machine{
		store:     store,
		creds:     creds,
		navigator: nopNavigator{},
		notifier:  nopNotifier{},
		state:     StateAnonymous,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}

	if value, ok := store.Get(ctx, AuthKey); ok && value == authenticatedValue {
		m.state = StateAuthenticated
	}

	return m
}

func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.state
}

func (m *Machine) IsAuthenticated() bool {
	return m.State() == StateAuthenticated
}

// OnChange registers fn to be called after every state transition.
// Listeners run on the goroutine that caused the transition.
func (m *Machine) OnChange(fn func(ctx context.Context, state State)) {
	if fn == nil {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.listeners = append(m.listeners, fn)
}

// Login compares the pair against the configured credentials. It reports
// the outcome only as a boolean.
func (m *Machine) Login(ctx context.Context, username, password string) bool {
	if username == m.creds.Username && password == m.creds.Password {
		m.transition(ctx, StateAuthenticated, func() { m.store.Set(ctx, AuthKey, authenticatedValue) })
		slogctx.Info(ctx, "Login succeeded", "username", username)

		return true
	}

	m.transition(ctx, StateAnonymous, func() { m.store.Remove(ctx, AuthKey) })
	slogctx.Info(ctx, "Login rejected", "username", username)

	return false
}

// Logout always succeeds and may be called repeatedly.
func (m *Machine) Logout(ctx context.Context) {
	m.transition(ctx, StateAnonymous, func() { m.store.Remove(ctx, AuthKey) })
	slogctx.Info(ctx, "Logged out")

	m.navigator.Navigate(ctx, Intent{Path: LoginPath, Replace: true})
	m.notifier.Notify(ctx, Notification{Message: LoggedOutMessage, Level: LevelInfo})
}

// Gate decides whether a protected location may be shown. When it may not,
// the returned intent leads to the login view and remembers the request.
func (m *Machine) Gate(requested string) (Intent, bool) {
	if m.IsAuthenticated() {
		return Intent{}, true
	}

	return Intent{Path: LoginPath, Replace: true, From: requested}, false
}

// transition persists the flag and switches to next as one step, so two
// concurrent transitions can never leave the state and the store apart.
// Listeners run after the step completes.
func (m *Machine) transition(ctx context.Context, next State, persist func()) {
	m.transitionMu.Lock()
	persist()

	m.mu.Lock()
	prev := m.state
	m.state = next
	listeners := m.listeners
	m.mu.Unlock()
	m.transitionMu.Unlock()

	if prev == next {
		return
	}

	slogctx.Debug(ctx, "Session state changed", "from", prev.String(), "to", next.String())
	for _, fn := range listeners {
		fn(ctx, next)
	}
}
