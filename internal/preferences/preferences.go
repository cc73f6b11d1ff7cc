// Package preferences persists the small UI settings that survive a
// restart: theme, last search text and last viewed employee.
package preferences

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/openkcm/employee-dashboard/internal/kvstore"
	"github.com/openkcm/employee-dashboard/internal/serviceerr"
)

const (
	ThemeKey      = "app_theme"
	SearchKey     = "employee_search_query"
	LastViewedKey = "last_viewed_employee_id"
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func ParseTheme(value string) (Theme, error) {
	switch Theme(value) {
	case ThemeLight, ThemeDark:
		return Theme(value), nil
	default:
		return "", fmt.Errorf("%w: unknown theme %q", serviceerr.ErrInvalidRequest, value)
	}
}

type Preferences struct {
	store kvstore.Store

	mu    sync.Mutex
	theme Theme
}

// New reads the stored theme once. Unknown values fall back to light.
func New(ctx context.Context, store kvstore.Store) *Preferences {
	p := &Preferences{store: store, theme: ThemeLight}

	if value, ok := store.Get(ctx, ThemeKey); ok {
		if theme, err := ParseTheme(value); err == nil {
			p.theme = theme
		}
	}

	return p
}

func (p *Preferences) Theme() Theme {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.theme
}

func (p *Preferences) SetTheme(ctx context.Context, theme Theme) error {
	if _, err := ParseTheme(string(theme)); err != nil {
		return err
	}

	p.mu.Lock()
	p.theme = theme
	p.mu.Unlock()

	p.store.Set(ctx, ThemeKey, string(theme))

	return nil
}

func (p *Preferences) ToggleTheme(ctx context.Context) Theme {
	p.mu.Lock()
	next := ThemeDark
	if p.theme == ThemeDark {
		next = ThemeLight
	}
	p.theme = next
	p.mu.Unlock()

	p.store.Set(ctx, ThemeKey, string(next))

	return next
}

func (p *Preferences) LastSearch(ctx context.Context) string {
	value, _ := p.store.Get(ctx, SearchKey)
	return value
}

// SetLastSearch stores the trimmed query, or forgets it when blank.
func (p *Preferences) SetLastSearch(ctx context.Context, query string) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		p.store.Remove(ctx, SearchKey)
		return
	}

	p.store.Set(ctx, SearchKey, trimmed)
}

func (p *Preferences) LastViewed(ctx context.Context) (string, bool) {
	value, ok := p.store.Get(ctx, LastViewedKey)
	if !ok || value == "" {
		return "", false
	}

	return value, true
}

func (p *Preferences) SetLastViewed(ctx context.Context, id string) {
	p.store.Set(ctx, LastViewedKey, id)
}
