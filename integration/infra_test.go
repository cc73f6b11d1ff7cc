//go:build integration

package integration_test

import (
	"context"
	"encoding/json"
	"io/fs"
	"net"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/docker/go-connections/nat"
	"github.com/goccy/go-yaml"
	"github.com/openkcm/common-sdk/pkg/commoncfg"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/openkcm/employee-dashboard/internal/config"
)

const (
	dbUser = "postgres"
	dbPass = "secret"
	dbName = "employee_dashboard"

	sourceUser = "integration"
	sourcePass = "integration-secret"
)

// tableRows is what the fake employee endpoint serves.
var tableRows = [][]any{
	{"Tiger Nixon", "System Architect", "Edinburgh", "5421", "2011/04/25", "$320,800"},
	{"Garrett Winters", "Accountant", "Tokyo", "8422", "2011/07/25", "$170,750"},
	{"Ashton Cox", "Junior Technical Author", "San Francisco", "1562", "2009/01/12", "$86,000"},
}

type infraStat struct {
	Procdir        string
	ConfigFilePath string
	SocketPath     string
	Cfg            config.Config
}

func initInfra(t *testing.T, cmdName string) *infraStat {
	t.Helper()

	// The config is read from $PWD/config.yaml, so every process gets its
	// own directory.
	wd, err := os.Getwd()
	require.NoError(t, err, "failed to get wd")

	istat := &infraStat{Procdir: filepath.Join(wd, cmdName+"-test")}
	istat.ConfigFilePath = filepath.Join(istat.Procdir, "config.yaml")
	istat.SocketPath = filepath.Join(istat.Procdir, cmdName+".sock")

	require.NoError(t, os.MkdirAll(istat.Procdir, fs.ModePerm), "failed to create a dir for the process")
	t.Cleanup(func() { os.RemoveAll(istat.Procdir) })

	require.NoError(t, os.WriteFile(istat.ConfigFilePath, []byte(validConfig), fs.ModePerm), "failed to write config file")
	require.NoError(t, commoncfg.LoadConfig(&istat.Cfg, config.Defaults(), istat.Procdir), "failed to load config")

	istat.Cfg.HTTP.Address = "unix://" + istat.SocketPath

	return istat
}

// PrepareDataSource points the process at a fake employee endpoint.
func (istat *infraStat) PrepareDataSource(t *testing.T) {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var creds struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil ||
			creds.Username != sourceUser || creds.Password != sourcePass {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"TABLE_DATA": map[string]any{"data": tableRows},
		})
	}))
	t.Cleanup(server.Close)

	istat.Cfg.DataSource.Endpoint = server.URL
	istat.Cfg.DataSource.Username = sourceUser
	istat.Cfg.DataSource.Password = commoncfg.SourceRef{Source: "embedded", Value: sourcePass}
}

// PreparePostgres starts an empty database and selects it as storage.
func (istat *infraStat) PreparePostgres(t *testing.T) {
	t.Helper()

	ctx := context.Background()

	pgContainer, err := postgres.Run(
		ctx,
		"postgres:17-alpine",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPass),
		postgres.BasicWaitStrategies(),
	)
	require.NoError(t, err, "failed to start PostgreSQL")
	t.Cleanup(func() { _ = pgContainer.Terminate(ctx) })

	port, err := pgContainer.MappedPort(ctx, nat.Port("5432"))
	require.NoError(t, err, "failed to get mapped port for the PostgreSQL container")

	wd, err := os.Getwd()
	require.NoError(t, err, "failed to get wd")

	istat.Cfg.Storage.Backend = config.StoragePostgres
	istat.Cfg.Database.Name = dbName
	istat.Cfg.Database.User = commoncfg.SourceRef{Source: "embedded", Value: dbUser}
	istat.Cfg.Database.Password = commoncfg.SourceRef{Source: "embedded", Value: dbPass}
	istat.Cfg.Database.Host = commoncfg.SourceRef{Source: "embedded", Value: "localhost"}
	istat.Cfg.Database.Port = port.Port()
	istat.Cfg.Migrate.Source = "file://" + filepath.Join(wd, "../sql")
}

// PrepareConfig writes Cfg into the config file of the process.
func (istat *infraStat) PrepareConfig(t *testing.T) {
	t.Helper()

	data, err := yaml.Marshal(istat.Cfg)
	require.NoError(t, err, "failed to encode config")
	require.NoError(t, os.WriteFile(istat.ConfigFilePath, data, fs.ModePerm), "failed to write config")
}

// Command prepares the binary to run inside Procdir with its output in a
// log file next to the test.
func (istat *infraStat) Command(t *testing.T, ctx context.Context, args ...string) *exec.Cmd {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err, "failed to get wd")

	logPath := filepath.Join(wd, args[0]+".log")
	out, err := os.Create(logPath)
	require.NoError(t, err, "failed to create a log file")
	t.Cleanup(func() { out.Close() })
	t.Logf("process logs are saved into %s", logPath)

	cmd := exec.CommandContext(ctx, filepath.Join(wd, binary), args...)
	cmd.Dir = istat.Procdir
	cmd.Stdout = out
	cmd.Stderr = out
	cmd.Cancel = func() error { return cmd.Process.Signal(syscall.SIGTERM) }

	return cmd
}

// Client talks HTTP over the unix socket of the API server and keeps the
// cookies the server hands out.
func (istat *infraStat) Client(t *testing.T) *http.Client {
	t.Helper()

	jar, err := cookiejar.New(nil)
	require.NoError(t, err, "failed to create a cookie jar")

	return &http.Client{
		Jar: jar,
		Transport: &http.Transport{
			DialContext: func(ctx context.Context, _, _ string) (net.Conn, error) {
				var d net.Dialer
				return d.DialContext(ctx, "unix", istat.SocketPath)
			},
		},
	}
}
