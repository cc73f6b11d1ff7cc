package config

import (
	"testing"
	"time"

	"github.com/openkcm/common-sdk/pkg/commoncfg"
	"github.com/stretchr/testify/assert"
)

func validConfig() Config {
	return Config{
		Storage: Storage{Backend: StorageMemory},
		DataSource: DataSource{
			Endpoint:   "https://example.test/table",
			ClientAuth: ClientAuth{Type: ClientAuthNone},
		},
		Session: Session{Username: "testuser"},
		Clients: Clients{
			IdleTimeout:   30 * time.Minute,
			SessionCookie: CookieTemplate{Name: "dashboard_session", HTTPOnly: true, SameSite: CookieSameSiteLax},
			CSRFCookie:    CookieTemplate{Name: "dashboard_csrf", SameSite: CookieSameSiteStrict},
		},
		Search: Search{Debounce: 250 * time.Millisecond},
		Chart:  Chart{Limit: 10},
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr []string
	}{
		{name: "Valid", mutate: func(*Config) {}},
		{name: "Valkey backend", mutate: func(c *Config) { c.Storage.Backend = StorageValkey }},
		{name: "Postgres backend", mutate: func(c *Config) { c.Storage.Backend = StoragePostgres }},
		{name: "Zero debounce", mutate: func(c *Config) { c.Search.Debounce = 0 }},
		{name: "Empty client auth type", mutate: func(c *Config) { c.DataSource.ClientAuth.Type = "" }},
		{
			name: "mTLS with section",
			mutate: func(c *Config) {
				c.DataSource.ClientAuth = ClientAuth{Type: ClientAuthMTLS, MTLS: &commoncfg.MTLS{}}
			},
		},
		{
			name:    "Unknown backend",
			mutate:  func(c *Config) { c.Storage.Backend = "sqlite" },
			wantErr: []string{`unknown storage backend "sqlite"`},
		},
		{
			name:    "mTLS without section",
			mutate:  func(c *Config) { c.DataSource.ClientAuth.Type = ClientAuthMTLS },
			wantErr: []string{"mTLS is required"},
		},
		{
			name:    "Unknown client auth",
			mutate:  func(c *Config) { c.DataSource.ClientAuth.Type = "jwt" },
			wantErr: []string{`unknown dataSource client auth type "jwt"`},
		},
		{
			name: "SameSite None on a secure cookie",
			mutate: func(c *Config) {
				c.Clients.SessionCookie.SameSite = CookieSameSiteNone
				c.Clients.SessionCookie.Secure = true
			},
		},
		{
			name:    "SameSite None on an insecure cookie",
			mutate:  func(c *Config) { c.Clients.CSRFCookie.SameSite = CookieSameSiteNone },
			wantErr: []string{`clients.csrfCookie must be secure with sameSite "None"`},
		},
		{
			name:    "Unknown SameSite",
			mutate:  func(c *Config) { c.Clients.SessionCookie.SameSite = "lax" },
			wantErr: []string{`unknown clients.sessionCookie.sameSite "lax"`},
		},
		{
			name: "Cookies without names",
			mutate: func(c *Config) {
				c.Clients.SessionCookie.Name = ""
				c.Clients.CSRFCookie.Name = ""
			},
			wantErr: []string{"clients.sessionCookie.name is empty", "clients.csrfCookie.name is empty"},
		},
		{
			name:    "Cookies sharing a name",
			mutate:  func(c *Config) { c.Clients.CSRFCookie.Name = "dashboard_session" },
			wantErr: []string{`share the name "dashboard_session"`},
		},
		{
			name:    "Zero idle timeout",
			mutate:  func(c *Config) { c.Clients.IdleTimeout = 0 },
			wantErr: []string{"clients.idleTimeout must be positive"},
		},
		{
			name:    "Zero chart limit",
			mutate:  func(c *Config) { c.Chart.Limit = 0 },
			wantErr: []string{"chart.limit must be positive, got 0"},
		},
		{
			name: "Several problems",
			mutate: func(c *Config) {
				c.DataSource.Endpoint = " "
				c.DataSource.Timeout = -time.Second
				c.Session.Username = ""
				c.Search.Debounce = -time.Millisecond
			},
			wantErr: []string{
				"dataSource.endpoint is empty",
				"dataSource.timeout must not be negative",
				"session.username is empty",
				"search.debounce must not be negative",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if len(tt.wantErr) == 0 {
				assert.NoError(t, err)
				return
			}

			assert.ErrorIs(t, err, ErrInvalidConfig)
			for _, want := range tt.wantErr {
				assert.ErrorContains(t, err, want)
			}
		})
	}
}
