package session

import (
	"context"
	"net/url"
)

const (
	LoginPath = "/login"
	ListPath  = "/list"
	ChartPath = "/chart"
	MapPath   = "/map"

	detailPathPrefix = "/details/"
)

// Intent is a navigation request handed to the presentation layer. The core
// never renders routes itself.
type Intent struct {
	Path    string `json:"path"`
	Replace bool   `json:"replace"`
	From    string `json:"from,omitempty"`
}

type Navigator interface {
	Navigate(ctx context.Context, intent Intent)
}

// NavigatorFunc adapts a plain function to Navigator.
type NavigatorFunc func(ctx context.Context, intent Intent)

func (f NavigatorFunc) Navigate(ctx context.Context, intent Intent) {
	f(ctx, intent)
}

type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

type Notification struct {
	Message string `json:"message"`
	Level   Level  `json:"level"`
}

type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// DetailPath is the location of the detail view for one employee.
func DetailPath(id string) string {
	return detailPathPrefix + url.PathEscape(id)
}

// RedirectAfterLogin picks where to go once a login succeeds.
func RedirectAfterLogin(from string) string {
	if from == "" || from == LoginPath {
		return ListPath
	}
	return from
}

type nopNavigator struct{}

func (nopNavigator) Navigate(context.Context, Intent) {}

type nopNotifier struct{}

func (nopNotifier) Notify(context.Context, Notification) {}
