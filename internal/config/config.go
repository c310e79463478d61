// Package config loads the server configuration.
//
// Values come from, in increasing precedence: built-in defaults, the YAML
// file named by --config or GIGHIRE_CONFIG, and a handful of well-known
// environment variables (PORT, CLIENT_URL, DATABASE_URL, JWT_SECRET,
// REDIS_URL, LOG_LEVEL). The defaults alone give a runnable in-memory development server.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// DevSecret is the built-in token secret. It is only accepted with the memory store.
const DevSecret = "dev-secret-change-me"

// Store drivers
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
)

// Config is the full server configuration
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Store    StoreConfig    `yaml:"store"`
	Auth     AuthConfig     `yaml:"auth"`
	Realtime RealtimeConfig `yaml:"realtime"`
	Relay    RelayConfig    `yaml:"relay"`
	Log      LogConfig      `yaml:"log"`
}

// ServerConfig configures the HTTP listener
type ServerConfig struct {
	// Addr is the listen address, e.g. ":8080"
	Addr string `yaml:"addr"`

	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout"`
	ShutdownTimeout   time.Duration `yaml:"shutdown_timeout"`

	// AllowedOrigins may call the API and open /ws from a browser
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// StoreConfig selects and configures the gig store
type StoreConfig struct {
	// Driver is "memory" or "postgres"
	Driver      string `yaml:"driver"`
	DatabaseURL string `yaml:"database_url"`

	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`

	// Migrate creates the schema on startup (postgres only)
	Migrate bool `yaml:"migrate"`
	// SeedDemo loads a few sample gigs into the memory store
	SeedDemo bool `yaml:"seed_demo"`
}

// AuthConfig configures session tokens
type AuthConfig struct {
	Secret     string        `yaml:"secret"`
	Issuer     string        `yaml:"issuer"`
	TokenTTL   time.Duration `yaml:"token_ttl"`
	CookieName string        `yaml:"cookie_name"`
}

// RealtimeConfig configures the websocket hub
type RealtimeConfig struct {
	OutboxSize   int           `yaml:"outbox_size"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// RelayConfig configures cross-instance notification fan-out over Redis
type RelayConfig struct {
	Enabled        bool          `yaml:"enabled"`
	RedisURL       string        `yaml:"redis_url"`
	Channel        string        `yaml:"channel"`
	PublishTimeout time.Duration `yaml:"publish_timeout"`
}

// LogConfig configures the global logger
type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used before any file or environment is applied
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:              ":8080",
			ReadHeaderTimeout: 10 * time.Second,
			ShutdownTimeout:   15 * time.Second,
			AllowedOrigins:    []string{"http://localhost:5173"},
		},
		Store: StoreConfig{
			Driver:          DriverMemory,
			MaxOpenConns:    20,
			MaxIdleConns:    5,
			ConnMaxLifetime: 30 * time.Minute,
			Migrate:         true,
			SeedDemo:        true,
		},
		Auth: AuthConfig{
			Secret:     DevSecret,
			Issuer:     "gighire",
			TokenTTL:   24 * time.Hour,
			CookieName: "token",
		},
		Realtime: RealtimeConfig{
			OutboxSize:   16,
			WriteTimeout: 5 * time.Second,
		},
		Relay: RelayConfig{
			RedisURL:       "redis://localhost:6379/0",
			Channel:        "gighire.notifications",
			PublishTimeout: 2 * time.Second,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// AddFlags registers the --config flag on fs
func AddFlags(fs *pflag.FlagSet, path *string) {
	fs.StringVar(path, "config", "", "path to YAML config file (default: $GIGHIRE_CONFIG)")
}

// Load parses args for --config and returns the resulting configuration
func Load(args []string) (*Config, error) {
	var path string
	fs := pflag.NewFlagSet("gighire", pflag.ContinueOnError)
	AddFlags(fs, &path)
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if path == "" {
		path = os.Getenv("GIGHIRE_CONFIG")
	}
	return LoadFile(path, os.LookupEnv)
}

// LoadFile reads path (if non-empty) over the defaults, applies environment
// overrides through lookup and validates the result.
func LoadFile(path string, lookup func(string) (string, bool)) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.applyEnv(lookup)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) {
	if lookup == nil {
		return
	}
	if v, ok := lookup("PORT"); ok && v != "" {
		if !strings.Contains(v, ":") {
			v = ":" + v
		}
		c.Server.Addr = v
	}
	if v, ok := lookup("CLIENT_URL"); ok && v != "" {
		c.Server.AllowedOrigins = []string{v}
	}
	if v, ok := lookup("DATABASE_URL"); ok && v != "" {
		c.Store.DatabaseURL = v
		c.Store.Driver = DriverPostgres
	}
	if v, ok := lookup("JWT_SECRET"); ok && v != "" {
		c.Auth.Secret = v
	}
	if v, ok := lookup("REDIS_URL"); ok && v != "" {
		c.Relay.RedisURL = v
		c.Relay.Enabled = true
	}
	if v, ok := lookup("LOG_LEVEL"); ok && v != "" {
		c.Log.Level = v
	}
}

// Validate checks the configuration for errors
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Addr == "" {
		errs = append(errs, errors.New("server.addr is required"))
	}

	switch c.Store.Driver {
	case DriverMemory:
	case DriverPostgres:
		if c.Store.DatabaseURL == "" {
			errs = append(errs, errors.New("store.database_url is required for the postgres driver"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown store.driver %q", c.Store.Driver))
	}

	if c.Auth.Secret == "" {
		errs = append(errs, errors.New("auth.secret is required"))
	}
	if c.Auth.Secret == DevSecret && c.Store.Driver != DriverMemory {
		errs = append(errs, errors.New("auth.secret must be changed from the development default for the "+c.Store.Driver+" driver"))
	}
	if c.Auth.TokenTTL <= 0 {
		errs = append(errs, errors.New("auth.token_ttl must be positive"))
	}
	if c.Realtime.OutboxSize <= 0 {
		errs = append(errs, errors.New("realtime.outbox_size must be positive"))
	}
	if c.Relay.Enabled && c.Relay.RedisURL == "" {
		errs = append(errs, errors.New("relay.redis_url is required when the relay is enabled"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
