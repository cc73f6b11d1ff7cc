package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	slogctx "github.com/veqryn/slog-context"

	"github.com/openkcm/employee-dashboard/internal/config"
	"github.com/openkcm/employee-dashboard/internal/dashboard"
	"github.com/openkcm/employee-dashboard/internal/serviceerr"
	"github.com/openkcm/employee-dashboard/pkg/csrf"
)

const headerCSRFToken = "X-CSRF-Token"

var errNoApp = errors.New("dashboard instance not found in context")

type appContextKey struct{}

func withApp(ctx context.Context, app *dashboard.App) context.Context {
	return context.WithValue(ctx, appContextKey{}, app)
}

func appFromContext(ctx context.Context) (*dashboard.App, error) {
	app, ok := ctx.Value(appContextKey{}).(*dashboard.App)
	if !ok || app == nil {
		return nil, errNoApp
	}

	return app, nil
}

// clients identifies the caller of every request by its session cookie
// and hands the request its own dashboard instance.
type clients struct {
	registry   *dashboard.Registry
	conf       config.Clients
	csrfSecret []byte
}

func newClients(registry *dashboard.Registry, conf config.Clients, csrfSecret []byte) *clients {
	return &clients{registry: registry, conf: conf, csrfSecret: csrfSecret}
}

// middleware resolves the dashboard instance of the caller. A request
// without a valid session cookie starts a new client and receives its
// session and csrf cookies. State changing requests of a known client must
// echo the csrf cookie in the X-CSRF-Token header.
func (c *clients) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		clientID, known := c.clientID(r)
		switch {
		case !known:
			http.SetCookie(w, c.conf.SessionCookie.ToCookie(clientID))
			if !c.issueCSRFCookie(ctx, w, clientID) {
				return
			}
			slogctx.Debug(ctx, "New dashboard client", "path", r.URL.Path)
		case !safeMethod(r.Method):
			if !csrf.Validate(r.Header.Get(headerCSRFToken), clientID, c.csrfSecret) {
				slogctx.Warn(ctx, "Rejecting request with invalid csrf token", "method", r.Method, "path", r.URL.Path)
				writeError(ctx, w, serviceerr.ErrInvalidCSRF)
				return
			}
		default:
			if _, err := r.Cookie(c.conf.CSRFCookie.Name); err != nil && !c.issueCSRFCookie(ctx, w, clientID) {
				return
			}
		}

		app := c.registry.Get(ctx, clientID)
		next.ServeHTTP(w, r.WithContext(withApp(ctx, app)))
	})
}

// clientID reads the session cookie. Anything but a UUID is replaced by a
// fresh id.
func (c *clients) clientID(r *http.Request) (id string, known bool) {
	cookie, err := r.Cookie(c.conf.SessionCookie.Name)
	if err == nil {
		if parsed, err := uuid.Parse(cookie.Value); err == nil {
			return parsed.String(), true
		}
	}

	return uuid.NewString(), false
}

func (c *clients) issueCSRFCookie(ctx context.Context, w http.ResponseWriter, clientID string) bool {
	token, err := csrf.NewToken(clientID, c.csrfSecret)
	if err != nil {
		slogctx.Error(ctx, "Failed to issue csrf token", "error", err)
		writeError(ctx, w, serviceerr.ErrUnknown)
		return false
	}

	http.SetCookie(w, c.conf.CSRFCookie.ToCookie(token))
	return true
}

func safeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodTrace:
		return true
	default:
		return false
	}
}

// writeError renders err outside the strict handlers.
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	body, status := toErrorModel(err)
	writeErrorModel(ctx, w, body, status)
}

func writeErrorModel(ctx context.Context, w http.ResponseWriter, body any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		slogctx.Error(ctx, "Failed to encode error response", "error", err)
	}
}
