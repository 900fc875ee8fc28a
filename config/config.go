package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	App        AppConfig        `yaml:"app"`
	Logging    LoggingConfig    `yaml:"logging"`
	Server     ServerConfig     `yaml:"server"`
	Gateway    GatewayConfig    `yaml:"gateway"`
	Database   DatabaseConfig   `yaml:"database"`
	Redis      RedisConfig      `yaml:"redis"`
	RabbitMQ   RabbitMQConfig   `yaml:"rabbitmq"`
	Monitoring MonitoringConfig `yaml:"monitoring"`
}

type AppConfig struct {
	Name        string `yaml:"name"`
	Environment string `yaml:"environment"`
	Version     string `yaml:"version"`
}

type LoggingConfig struct {
	Level    string `yaml:"level"`
	Format   string `yaml:"format"`
	Output   string `yaml:"output"`
	FilePath string `yaml:"file_path"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

type GatewayConfig struct {
	Port                  int             `yaml:"port"`
	ServerURL             string          `yaml:"server_url"`
	RequestTimeoutSeconds int             `yaml:"request_timeout_seconds"`
	CacheTTLSeconds       int             `yaml:"cache_ttl_seconds"`
	RateLimit             RateLimitConfig `yaml:"rate_limit"`
}

func (g GatewayConfig) RequestTimeout() time.Duration {
	return time.Duration(g.RequestTimeoutSeconds) * time.Second
}

func (g GatewayConfig) CacheTTL() time.Duration {
	return time.Duration(g.CacheTTLSeconds) * time.Second
}

type RateLimitConfig struct {
	RPS   float64 `yaml:"rps"`
	Burst int     `yaml:"burst"`
}

type DatabaseConfig struct {
	Driver       string `yaml:"driver"`
	Path         string `yaml:"path"`
	Host         string `yaml:"host"`
	Port         int    `yaml:"port"`
	User         string `yaml:"user"`
	Password     string `yaml:"password"`
	DBName       string `yaml:"dbname"`
	SSLMode      string `yaml:"sslmode"`
	MaxOpenConns int    `yaml:"max_open_conns"`
	MaxIdleConns int    `yaml:"max_idle_conns"`
}

// DSN builds the postgres connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	PoolSize int    `yaml:"pool_size"`
}

type RabbitMQConfig struct {
	URL      string `yaml:"url"`
	Exchange string `yaml:"exchange"`
}

type MonitoringConfig struct {
	PrometheusEnabled bool `yaml:"prometheus_enabled"`
}

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Load reads .env (when present) and the YAML file at configPath with
// environment variables expanded. A missing file yields the defaults.
func Load(configPath string) (*Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	data, err := os.ReadFile(configPath)
	switch {
	case err == nil:
		expanded := []byte(os.ExpandEnv(string(data)))
		if err := yaml.Unmarshal(expanded, &cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", configPath, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("read %s: %w", configPath, err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverPostgres:
		if c.Database.Host == "" || c.Database.DBName == "" {
			return errors.New("database host and dbname are required for postgres")
		}
	case DriverSQLite:
		if c.Database.Path == "" {
			return errors.New("database path is required for sqlite")
		}
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}

	if !strings.HasPrefix(c.Gateway.ServerURL, "http://") && !strings.HasPrefix(c.Gateway.ServerURL, "https://") {
		return fmt.Errorf("gateway server_url must be an http(s) URL, got %q", c.Gateway.ServerURL)
	}
	if c.Gateway.RateLimit.RPS < 0 {
		return errors.New("gateway rate_limit.rps must not be negative")
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.App.Name == "" {
		c.App.Name = "shareit"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 9090
	}
	if c.Gateway.Port == 0 {
		c.Gateway.Port = 8080
	}
	if c.Gateway.ServerURL == "" {
		c.Gateway.ServerURL = fmt.Sprintf("http://localhost:%d", c.Server.Port)
	}
	c.Gateway.ServerURL = strings.TrimRight(c.Gateway.ServerURL, "/")
	if c.Gateway.RequestTimeoutSeconds == 0 {
		c.Gateway.RequestTimeoutSeconds = 10
	}
	if c.Gateway.CacheTTLSeconds == 0 {
		c.Gateway.CacheTTLSeconds = 60
	}
	if c.Gateway.RateLimit.RPS > 0 && c.Gateway.RateLimit.Burst == 0 {
		c.Gateway.RateLimit.Burst = 5
	}

	if c.Database.Driver == "" {
		c.Database.Driver = DriverPostgres
	}
	if c.Database.Driver == DriverPostgres {
		if c.Database.Host == "" {
			c.Database.Host = "localhost"
		}
		if c.Database.Port == 0 {
			c.Database.Port = 5432
		}
		if c.Database.User == "" {
			c.Database.User = "postgres"
		}
		if c.Database.DBName == "" {
			c.Database.DBName = "shareit"
		}
		if c.Database.SSLMode == "" {
			c.Database.SSLMode = "disable"
		}
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 25
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 10
	}

	if c.RabbitMQ.URL != "" && c.RabbitMQ.Exchange == "" {
		c.RabbitMQ.Exchange = "shareit"
	}
	if c.Redis.Address != "" && c.Redis.PoolSize == 0 {
		c.Redis.PoolSize = 10
	}
}
