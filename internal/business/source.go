package business

import (
	"fmt"
	"net/http"

	"github.com/openkcm/common-sdk/pkg/commoncfg"

	"github.com/openkcm/employee-dashboard/internal/config"
	"github.com/openkcm/employee-dashboard/internal/employee"
)

func sourceFromConfig(cfg *config.Config) (*employee.HTTPSource, error) {
	password, err := config.DataSourcePassword(cfg.DataSource)
	if err != nil {
		return nil, err
	}

	client, err := loadHTTPClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("loading http client: %w", err)
	}

	return employee.NewHTTPSource(client, cfg.DataSource.Endpoint, employee.Credentials{
		Username: cfg.DataSource.Username,
		Password: password,
	}), nil
}

func loadHTTPClient(cfg *config.Config) (*http.Client, error) {
	auth := cfg.DataSource.ClientAuth

	switch auth.Type {
	case config.ClientAuthMTLS:
		if auth.MTLS == nil {
			return nil, fmt.Errorf("client auth %q needs an mTLS section", auth.Type)
		}

		tlsConfig, err := commoncfg.LoadMTLSConfig(auth.MTLS)
		if err != nil {
			return nil, fmt.Errorf("loading mTLS config: %w", err)
		}

		return &http.Client{
			Timeout:   cfg.DataSource.Timeout,
			Transport: &http.Transport{TLSClientConfig: tlsConfig},
		}, nil
	case config.ClientAuthNone, "":
		if cfg.DataSource.Timeout == 0 {
			return http.DefaultClient, nil
		}

		return &http.Client{Timeout: cfg.DataSource.Timeout}, nil
	default:
		return nil, fmt.Errorf("unknown client auth type %q", auth.Type)
	}
}
