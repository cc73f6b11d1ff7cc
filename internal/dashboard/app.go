// Package dashboard composes one dashboard instance: session, employee
// cache, preferences, search and notifications, wired to a single store.
package dashboard

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	slogctx "github.com/veqryn/slog-context"

	"github.com/openkcm/employee-dashboard/internal/employee"
	"github.com/openkcm/employee-dashboard/internal/kvstore"
	"github.com/openkcm/employee-dashboard/internal/preferences"
	"github.com/openkcm/employee-dashboard/internal/serviceerr"
	"github.com/openkcm/employee-dashboard/internal/session"
	"github.com/openkcm/employee-dashboard/internal/views"
)

type Config struct {
	Credentials    session.Credentials
	SearchDebounce time.Duration
	ChartLimit     int
}

type Option func(*App)

// WithNavigator routes navigation intents to n instead of dropping them.
func WithNavigator(n session.Navigator) Option {
	return func(a *App) {
		if n != nil {
			a.navigator = n
		}
	}
}

type App struct {
	Session       *session.Machine
	Employees     *employee.Cache
	Preferences   *preferences.Preferences
	Search        *Search
	Notifications *Notifications

	navigator  session.Navigator
	chartLimit int
	closeOnce  sync.Once
}

// Status is the fetch lifecycle as every protected view reports it.
type Status struct {
	State        string    `json:"state"`
	ErrorMessage string    `json:"error,omitempty"`
	UpdatedAt    time.Time `json:"updatedAt,omitzero"`
}

type ListView struct {
	Status
	Query     string              `json:"query"`
	Total     int                 `json:"total"`
	Employees employee.Collection `json:"employees"`
}

type DetailView struct {
	Status
	Employee employee.Record `json:"employee"`
}

type ChartView struct {
	Status
	Bars []views.SalaryBar `json:"bars"`
}

type MapView struct {
	Status
	Points []views.CityPoint `json:"points"`
}

func New(ctx context.Context, store kvstore.Store, source employee.Source, cfg Config, opts ...Option) *App {
	a := &App{
		Employees:     employee.NewCache(source),
		Notifications: NewNotifications(),
		navigator:     session.NavigatorFunc(func(context.Context, session.Intent) {}),
		chartLimit:    cfg.ChartLimit,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(a)
		}
	}
	if a.chartLimit <= 0 {
		a.chartLimit = views.DefaultChartLimit
	}

	a.Preferences = preferences.New(ctx, store)
	a.Search = NewSearch(ctx, a.Preferences, cfg.SearchDebounce)
	a.Session = session.NewMachine(ctx, store, cfg.Credentials,
		session.WithNavigator(a.navigator),
		session.WithNotifier(a.Notifications),
	)

	a.Session.OnChange(func(ctx context.Context, state session.State) {
		if state == session.StateAuthenticated {
			a.Employees.Activate(ctx)
		}
	})
	if a.Session.IsAuthenticated() {
		a.Employees.Activate(ctx)
	}

	return a
}

// Close applies any pending search input and stops the debouncer.
func (a *App) Close() {
	a.closeOnce.Do(a.Search.Close)
}

// Login trims the username before checking it. On success the returned
// intent leads back to from, or to the list.
func (a *App) Login(ctx context.Context, username, password, from string) (session.Intent, bool) {
	if !a.Session.Login(ctx, strings.TrimSpace(username), password) {
		return session.Intent{}, false
	}

	intent := session.Intent{Path: session.RedirectAfterLogin(from), Replace: true}
	a.navigator.Navigate(ctx, intent)

	return intent, true
}

func (a *App) Logout(ctx context.Context) {
	a.Session.Logout(ctx)
}

func (a *App) List(ctx context.Context, query string) (ListView, error) {
	snap, err := a.load(ctx, session.ListPath)
	if err != nil {
		return ListView{}, err
	}

	matches := views.Filter(snap.Records, query)

	return ListView{
		Status:    statusOf(snap),
		Query:     strings.TrimSpace(query),
		Total:     len(snap.Records),
		Employees: matches,
	}, nil
}

// AppliedList is the list filtered by the debounced search query.
func (a *App) AppliedList(ctx context.Context) (ListView, error) {
	return a.List(ctx, a.Search.State().Applied)
}

// Employee shows one record. Without an id the last viewed record is shown,
// and a client that is not logged in is sent back to the list afterwards.
// Every record shown becomes the last viewed one.
func (a *App) Employee(ctx context.Context, id string) (DetailView, error) {
	route := session.ListPath
	if id != "" {
		route = session.DetailPath(id)
	}

	snap, err := a.load(ctx, route)
	if err != nil {
		return DetailView{}, err
	}

	if id == "" {
		last, ok := a.Preferences.LastViewed(ctx)
		if !ok {
			return DetailView{}, fmt.Errorf("%w: no employee viewed yet", serviceerr.ErrNotFound)
		}
		id = last
	}

	record, ok := views.FindByID(snap.Records, id)
	if !ok {
		if snap.State == employee.StateFailed {
			return DetailView{}, fmt.Errorf("%w: %s", serviceerr.ErrFetchFailed, snap.ErrorMessage)
		}
		return DetailView{}, fmt.Errorf("%w: employee %q", serviceerr.ErrNotFound, id)
	}

	a.Preferences.SetLastViewed(ctx, record.ID)

	return DetailView{Status: statusOf(snap), Employee: record}, nil
}

func (a *App) Chart(ctx context.Context, limit int) (ChartView, error) {
	snap, err := a.load(ctx, session.ChartPath)
	if err != nil {
		return ChartView{}, err
	}
	if limit <= 0 {
		limit = a.chartLimit
	}

	return ChartView{Status: statusOf(snap), Bars: views.TopSalaries(snap.Records, limit)}, nil
}

func (a *App) Map(ctx context.Context) (MapView, error) {
	snap, err := a.load(ctx, session.MapPath)
	if err != nil {
		return MapView{}, err
	}

	return MapView{Status: statusOf(snap), Points: views.AggregateByCity(snap.Records)}, nil
}

// Export writes the whole cached collection as CSV and reports how many
// records were written.
func (a *App) Export(ctx context.Context, w io.Writer) (int, error) {
	snap, err := a.load(ctx, session.ListPath)
	if err != nil {
		return 0, err
	}

	if err := views.WriteCSV(w, snap.Records); err != nil {
		return 0, fmt.Errorf("exporting employees: %w", err)
	}
	slogctx.Info(ctx, "Employees exported", "records", len(snap.Records))

	return len(snap.Records), nil
}

// Refresh refetches the collection and blocks until the attempt settles.
func (a *App) Refresh(ctx context.Context) (Status, error) {
	if err := a.authorize(ctx, session.ListPath); err != nil {
		return Status{}, err
	}

	a.Employees.Refresh(ctx)

	return statusOf(a.Employees.Snapshot()), nil
}

func (a *App) SearchInput(ctx context.Context, text string) (SearchState, error) {
	if err := a.authorize(ctx, session.ListPath); err != nil {
		return SearchState{}, err
	}

	return a.Search.Input(text), nil
}

func (a *App) SearchState(ctx context.Context) (SearchState, error) {
	if err := a.authorize(ctx, session.ListPath); err != nil {
		return SearchState{}, err
	}

	return a.Search.State(), nil
}

func (a *App) authorize(ctx context.Context, route string) error {
	intent, ok := a.Session.Gate(route)
	if ok {
		return nil
	}

	a.navigator.Navigate(ctx, intent)

	return serviceerr.ErrUnauthorized
}

// load gates the route, activates the cache and waits for the initial
// fetch to settle.
func (a *App) load(ctx context.Context, route string) (employee.Snapshot, error) {
	if err := a.authorize(ctx, route); err != nil {
		return employee.Snapshot{}, err
	}

	select {
	case <-a.Employees.Activate(ctx):
	case <-ctx.Done():
		return employee.Snapshot{}, fmt.Errorf("waiting for employees: %w", ctx.Err())
	}

	return a.Employees.Snapshot(), nil
}

func statusOf(snap employee.Snapshot) Status {
	return Status{
		State:        snap.State.String(),
		ErrorMessage: snap.ErrorMessage,
		UpdatedAt:    snap.UpdatedAt,
	}
}
