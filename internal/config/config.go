package config

import (
	"flag"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Session storage backends.
const (
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

// Config holds application level configuration loaded from a YAML file, environment and flags.
type Config struct {
	RunAddress      string        `yaml:"run_address"`
	APIBaseURL      string        `yaml:"api_url"`
	APITimeout      time.Duration `yaml:"api_timeout"`
	SessionBackend  string        `yaml:"session_backend"`
	DatabaseURI     string        `yaml:"database_uri"`
	RedisAddr       string        `yaml:"redis_addr"`
	SessionSecret   string        `yaml:"session_secret"`
	SessionTTL      time.Duration `yaml:"session_ttl"`
	SweepInterval   time.Duration `yaml:"sweep_interval"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	LogLevel        string        `yaml:"log_level"`
}

const (
	defaultRunAddress      = ":8080"
	defaultSessionBackend  = BackendMemory
	defaultSessionSecret   = "change-me-in-production"
	defaultSessionTTL      = 30 * 24 * time.Hour
	defaultSweepInterval   = 10 * time.Minute
	defaultShutdownTimeout = 10 * time.Second
	defaultLogLevel        = "info"
)

// Load parses configuration from the optional CONFIG_FILE, environment variables and flags.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func defaults() *Config {
	return &Config{
		RunAddress:      defaultRunAddress,
		SessionBackend:  defaultSessionBackend,
		SessionSecret:   defaultSessionSecret,
		SessionTTL:      defaultSessionTTL,
		SweepInterval:   defaultSweepInterval,
		ShutdownTimeout: defaultShutdownTimeout,
		LogLevel:        defaultLogLevel,
	}
}

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := defaults()

	if path, ok := lookup("CONFIG_FILE"); ok && path != "" {
		if err := readFile(path, cfg); err != nil {
			return nil, err
		}
	}

	cfg.RunAddress = getString(lookup, "RUN_ADDRESS", cfg.RunAddress)
	cfg.APIBaseURL = getString(lookup, "API_URL", cfg.APIBaseURL)
	cfg.APITimeout = getDuration(lookup, "API_TIMEOUT", cfg.APITimeout)
	cfg.SessionBackend = getString(lookup, "SESSION_BACKEND", cfg.SessionBackend)
	cfg.DatabaseURI = getString(lookup, "DATABASE_URI", cfg.DatabaseURI)
	cfg.RedisAddr = getString(lookup, "REDIS_ADDR", cfg.RedisAddr)
	cfg.SessionSecret = getString(lookup, "SESSION_SECRET", cfg.SessionSecret)
	cfg.SessionTTL = getDuration(lookup, "SESSION_TTL", cfg.SessionTTL)
	cfg.SweepInterval = getDuration(lookup, "SWEEP_INTERVAL", cfg.SweepInterval)
	cfg.ShutdownTimeout = getDuration(lookup, "SHUTDOWN_TIMEOUT", cfg.ShutdownTimeout)
	cfg.LogLevel = getString(lookup, "LOG_LEVEL", cfg.LogLevel)

	fs := flag.NewFlagSet("storefront", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		apiTimeoutStr      = cfg.APITimeout.String()
		sessionTTLStr      = cfg.SessionTTL.String()
		sweepIntervalStr   = cfg.SweepInterval.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.APIBaseURL, "api", cfg.APIBaseURL, "Store API base URL")
	fs.StringVar(&apiTimeoutStr, "api-timeout", apiTimeoutStr, "Store API request timeout, 0 disables it")
	fs.StringVar(&cfg.SessionBackend, "session-backend", cfg.SessionBackend, "Session storage: memory, redis or postgres")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN for session storage")
	fs.StringVar(&cfg.RedisAddr, "redis", cfg.RedisAddr, "Redis address for session storage")
	fs.StringVar(&cfg.SessionSecret, "session-secret", cfg.SessionSecret, "Secret for signing session cookies")
	fs.StringVar(&sessionTTLStr, "session-ttl", sessionTTLStr, "Lifetime of stored sessions")
	fs.StringVar(&sweepIntervalStr, "sweep-interval", sweepIntervalStr, "Interval between expired session sweeps")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn or error")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.APITimeout, err = time.ParseDuration(apiTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid api timeout: %w", err)
	}

	if cfg.SessionTTL, err = time.ParseDuration(sessionTTLStr); err != nil {
		return nil, fmt.Errorf("invalid session ttl: %w", err)
	}

	if cfg.SweepInterval, err = time.ParseDuration(sweepIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid sweep interval: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("SESSION_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read session secret file: %w", err)
		}
		cfg.SessionSecret = strings.TrimSpace(string(content))
	}

	if cfg.APITimeout < 0 {
		cfg.APITimeout = 0
	}

	if cfg.SweepInterval <= 0 {
		cfg.SweepInterval = defaultSweepInterval
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.SessionTTL < 0 {
		cfg.SessionTTL = 0
	}

	cfg.SessionBackend = strings.ToLower(strings.TrimSpace(cfg.SessionBackend))
	if cfg.SessionBackend == "" {
		cfg.SessionBackend = defaultSessionBackend
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("store api url must be provided")
	}
	parsed, err := url.Parse(c.APIBaseURL)
	if err != nil || !parsed.IsAbs() {
		return fmt.Errorf("store api url must be absolute: %q", c.APIBaseURL)
	}

	switch c.SessionBackend {
	case BackendMemory:
	case BackendRedis:
		if c.RedisAddr == "" {
			return fmt.Errorf("redis address must be provided for redis session backend")
		}
	case BackendPostgres:
		if c.DatabaseURI == "" {
			return fmt.Errorf("database URI must be provided for postgres session backend")
		}
	default:
		return fmt.Errorf("unknown session backend %q", c.SessionBackend)
	}

	if c.SessionSecret == "" {
		return fmt.Errorf("session secret must not be empty")
	}
	return nil
}

func readFile(path string, cfg *Config) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(content, cfg); err != nil {
		return fmt.Errorf("decode config file: %w", err)
	}
	return nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
