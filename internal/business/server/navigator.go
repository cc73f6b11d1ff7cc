package server

import (
	"context"
	"strconv"

	slogctx "github.com/veqryn/slog-context"

	"github.com/openkcm/employee-dashboard/internal/middleware/responsewriter"
	"github.com/openkcm/employee-dashboard/internal/session"
)

const (
	headerLocation        = "Location"
	headerNavigateReplace = "X-Navigate-Replace"
	headerNavigateFrom    = "X-Navigate-From"
)

// headerNavigator renders navigation intents as response headers on the
// request that caused them.
type headerNavigator struct{}

var _ = session.Navigator(headerNavigator{})

// NewHeaderNavigator returns the navigator the API hands to the dashboard.
// It only has an effect inside handlers served by this package.
func NewHeaderNavigator() session.Navigator {
	return headerNavigator{}
}

func (headerNavigator) Navigate(ctx context.Context, intent session.Intent) {
	w, err := responsewriter.FromContext(ctx)
	if err != nil {
		slogctx.Debug(ctx, "Dropping navigation intent outside a request", "path", intent.Path)
		return
	}

	h := w.Header()
	h.Set(headerLocation, intent.Path)
	h.Set(headerNavigateReplace, strconv.FormatBool(intent.Replace))
	if intent.From != "" {
		h.Set(headerNavigateFrom, intent.From)
	} else {
		h.Del(headerNavigateFrom)
	}
}
