package config

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Validate reports every problem at once, each wrapped in ErrInvalidConfig.
func (c *Config) Validate() error {
	var errs []error
	invalid := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	switch c.Storage.Backend {
	case StorageMemory, StorageValkey, StoragePostgres:
	default:
		invalid("unknown storage backend %q", c.Storage.Backend)
	}

	switch c.DataSource.ClientAuth.Type {
	case "", ClientAuthNone:
	case ClientAuthMTLS:
		if c.DataSource.ClientAuth.MTLS == nil {
			invalid("dataSource.clientAuth.mTLS is required for type %q", ClientAuthMTLS)
		}
	default:
		invalid("unknown dataSource client auth type %q", c.DataSource.ClientAuth.Type)
	}

	if strings.TrimSpace(c.DataSource.Endpoint) == "" {
		invalid("dataSource.endpoint is empty")
	}
	if c.DataSource.Timeout < 0 {
		invalid("dataSource.timeout must not be negative")
	}
	if strings.TrimSpace(c.Session.Username) == "" {
		invalid("session.username is empty")
	}
	if c.Clients.IdleTimeout <= 0 {
		invalid("clients.idleTimeout must be positive")
	}
	for name, cookie := range map[string]CookieTemplate{
		"sessionCookie": c.Clients.SessionCookie,
		"csrfCookie":    c.Clients.CSRFCookie,
	} {
		if cookie.Name == "" {
			invalid("clients.%s.name is empty", name)
		}
		switch cookie.SameSite {
		case "", CookieSameSiteLax, CookieSameSiteStrict:
		case CookieSameSiteNone:
			if !cookie.Secure {
				invalid("clients.%s must be secure with sameSite %q", name, CookieSameSiteNone)
			}
		default:
			invalid("unknown clients.%s.sameSite %q", name, cookie.SameSite)
		}
	}
	if c.Clients.SessionCookie.Name != "" && c.Clients.SessionCookie.Name == c.Clients.CSRFCookie.Name {
		invalid("clients.sessionCookie and clients.csrfCookie share the name %q", c.Clients.SessionCookie.Name)
	}
	if c.Search.Debounce < 0 {
		invalid("search.debounce must not be negative")
	}
	if c.Chart.Limit <= 0 {
		invalid("chart.limit must be positive, got %d", c.Chart.Limit)
	}

	return errors.Join(errs...)
}
