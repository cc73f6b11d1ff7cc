// Package config defines the necessary types to configure the application.
// An example config file config.yaml is provided in the repository.
package config

import (
	"time"

	"github.com/openkcm/common-sdk/pkg/commoncfg"
)

type StorageBackend string

const (
	StorageMemory   StorageBackend = "memory"
	StorageValkey   StorageBackend = "valkey"
	StoragePostgres StorageBackend = "postgres"
)

type ClientAuthType string

const (
	ClientAuthNone ClientAuthType = "none"
	ClientAuthMTLS ClientAuthType = "mtls"
)

type Config struct {
	commoncfg.BaseConfig `mapstructure:",squash" yaml:",inline"`

	HTTP HTTPServer `yaml:"http"`

	Storage    Storage    `yaml:"storage"`
	Database   Database   `yaml:"database"`
	ValKey     ValKey     `yaml:"valkey"`
	Migrate    Migrate    `yaml:"migrate"`
	DataSource DataSource `yaml:"dataSource"`
	Session    Session    `yaml:"session"`
	Clients    Clients    `yaml:"clients"`
	Search     Search     `yaml:"search"`
	Chart      Chart      `yaml:"chart"`
}

type HTTPServer struct {
	Address         string        `yaml:"address" default:":8080"`
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout" default:"5s"`
}

// Storage selects where session and preference values are persisted.
type Storage struct {
	Backend StorageBackend `yaml:"backend" default:"memory"`
}

type Database struct {
	Name     string              `yaml:"name"`
	Port     string              `yaml:"port"`
	Host     commoncfg.SourceRef `yaml:"host"`
	User     commoncfg.SourceRef `yaml:"user"`
	Password commoncfg.SourceRef `yaml:"password"`
	SSLMode  string              `yaml:"sslMode"`
}

type ValKey struct {
	Host      commoncfg.SourceRef `yaml:"host"`
	User      commoncfg.SourceRef `yaml:"user"`
	Password  commoncfg.SourceRef `yaml:"password"`
	Prefix    string              `yaml:"prefix"`
	SecretRef commoncfg.SecretRef `yaml:"secretRef"`
}

// MigrateSourceEmbedded selects the schema compiled into the binary. Any
// other source is a file:// URL of a directory with goose migrations.
const MigrateSourceEmbedded = "embedded"

type Migrate struct {
	Source string `yaml:"source" default:"embedded"`
}

// DataSource is the remote employee table.
type DataSource struct {
	Endpoint   string              `yaml:"endpoint" default:"https://backend.jotish.in/backend_dev/gettabledata.php"`
	Username   string              `yaml:"username" default:"test"`
	Password   commoncfg.SourceRef `yaml:"password"`
	Timeout    time.Duration       `yaml:"timeout"`
	ClientAuth ClientAuth          `yaml:"clientAuth"`
}

type ClientAuth struct {
	Type ClientAuthType  `yaml:"type" default:"none"`
	MTLS *commoncfg.MTLS `yaml:"mTLS"`
}

// Session holds the single accepted login.
type Session struct {
	Username string              `yaml:"username" default:"testuser"`
	Password commoncfg.SourceRef `yaml:"password"`
}

// Clients configures how browsers are told apart. Each client gets its own
// dashboard instance, found again through the session cookie, and proves
// state changing requests with the token of the csrf cookie.
type Clients struct {
	IdleTimeout   time.Duration       `yaml:"idleTimeout" default:"30m"`
	SessionCookie CookieTemplate      `yaml:"sessionCookie"`
	CSRFCookie    CookieTemplate      `yaml:"csrfCookie"`
	CSRFSecret    commoncfg.SourceRef `yaml:"csrfSecret"`
}

type CookieSameSite string

const (
	CookieSameSiteNone   CookieSameSite = "None"
	CookieSameSiteLax    CookieSameSite = "Lax"
	CookieSameSiteStrict CookieSameSite = "Strict"
)

type CookieTemplate struct {
	Name     string         `yaml:"name"`
	MaxAge   int            `yaml:"maxAge"`
	Path     string         `yaml:"path" default:"/"`
	Domain   string         `yaml:"domain"`
	Secure   bool           `yaml:"secure"`
	HTTPOnly bool           `yaml:"httpOnly"`
	SameSite CookieSameSite `yaml:"sameSite"`
}

type Search struct {
	Debounce time.Duration `yaml:"debounce" default:"250ms"`
}

type Chart struct {
	Limit int `yaml:"limit" default:"10"`
}
