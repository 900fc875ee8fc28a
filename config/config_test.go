package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "shareit", cfg.App.Name)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 8080, cfg.Gateway.Port)
	assert.Equal(t, "http://localhost:9090", cfg.Gateway.ServerURL)
	assert.Equal(t, 10*time.Second, cfg.Gateway.RequestTimeout())
	assert.Equal(t, time.Minute, cfg.Gateway.CacheTTL())
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, "host=localhost port=5432 user=postgres password= dbname=shareit sslmode=disable", cfg.Database.DSN())
	assert.Empty(t, cfg.RabbitMQ.Exchange)
}

func TestLoad_ExpandsEnv(t *testing.T) {
	t.Setenv("SHAREIT_DB_PASSWORD", "s3cret")
	t.Setenv("SHAREIT_SERVER_URL", "http://server:9090/")

	path := writeConfig(t, `
app:
  name: shareit-test
gateway:
  server_url: ${SHAREIT_SERVER_URL}
  rate_limit:
    rps: 2
database:
  host: db
  password: ${SHAREIT_DB_PASSWORD}
rabbitmq:
  url: amqp://guest:guest@mq:5672/
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "shareit-test", cfg.App.Name)
	assert.Equal(t, "http://server:9090", cfg.Gateway.ServerURL)
	assert.Equal(t, "s3cret", cfg.Database.Password)
	assert.Equal(t, "db", cfg.Database.Host)
	assert.Equal(t, 5, cfg.Gateway.RateLimit.Burst)
	assert.Equal(t, "shareit", cfg.RabbitMQ.Exchange)
}

func TestLoad_SQLiteRequiresPath(t *testing.T) {
	path := writeConfig(t, `
database:
  driver: sqlite
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database path is required")
}

func TestLoad_UnsupportedDriver(t *testing.T) {
	path := writeConfig(t, `
database:
  driver: oracle
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database driver")
}

func TestLoad_InvalidServerURL(t *testing.T) {
	path := writeConfig(t, `
gateway:
  server_url: localhost:9090
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server_url")
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "server: [port")

	_, err := Load(path)
	assert.Error(t, err)
}
