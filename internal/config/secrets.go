package config

import (
	"fmt"
	"strings"

	"github.com/openkcm/common-sdk/pkg/commoncfg"

	"github.com/openkcm/employee-dashboard/pkg/csrf"
)

func loadRef(what string, ref commoncfg.SourceRef) (string, error) {
	value, err := commoncfg.LoadValueFromSourceRef(ref)
	if err != nil {
		return "", fmt.Errorf("loading %s: %w", what, err)
	}

	return string(value), nil
}

// SessionPassword resolves the password of the single accepted login.
func SessionPassword(conf Session) (string, error) {
	return loadRef("session password", conf.Password)
}

// DataSourcePassword resolves the password sent to the employee endpoint.
func DataSourcePassword(conf DataSource) (string, error) {
	return loadRef("data source password", conf.Password)
}

// CSRFSecret resolves the key csrf tokens are signed with.
func CSRFSecret(conf Clients) ([]byte, error) {
	secret, err := loadRef("csrf secret", conf.CSRFSecret)
	if err != nil {
		return nil, err
	}

	if err := csrf.CheckKey([]byte(secret)); err != nil {
		return nil, fmt.Errorf("loading csrf secret: %w", err)
	}

	return []byte(secret), nil
}

// MakeConnStr renders the keyword/value connection string of the postgres
// storage backend. sslmode is only present when configured.
func MakeConnStr(conf Database) (string, error) {
	host, err := loadRef("db host", conf.Host)
	if err != nil {
		return "", err
	}

	user, err := loadRef("db user", conf.User)
	if err != nil {
		return "", err
	}

	password, err := loadRef("db password", conf.Password)
	if err != nil {
		return "", err
	}

	parts := []string{
		"host=" + host,
		"user=" + user,
		"password=" + password,
		"dbname=" + conf.Name,
		"port=" + conf.Port,
	}
	if conf.SSLMode != "" {
		parts = append(parts, "sslmode="+conf.SSLMode)
	}

	return strings.Join(parts, " "), nil
}
