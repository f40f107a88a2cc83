// Package config loads service configuration from defaults, an optional
// YAML file and the environment, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Store backends.
const (
	StoreMemory   = "memory"
	StoreRedis    = "redis"
	StorePostgres = "postgres"
)

// Config is the full service configuration.
type Config struct {
	Addr            string        `yaml:"addr"`
	TLSCert         string        `yaml:"tls_cert"`
	TLSKey          string        `yaml:"tls_key"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`

	LogLevel string `yaml:"log_level"`

	// Store selects the concert backend: memory, redis or postgres.
	Store       string `yaml:"store"`
	DatabaseURL string `yaml:"database_url"`
	RedisAddr   string `yaml:"redis_addr"`
	RedisPrefix string `yaml:"redis_prefix"`

	CookieName  string `yaml:"cookie_name"`
	MaxPageSize int    `yaml:"max_page_size"`

	OTel OTel `yaml:"otel"`
}

// OTel configures tracing export.
type OTel struct {
	ServiceName string  `yaml:"service_name"`
	Host        string  `yaml:"host"`
	Probability float64 `yaml:"probability"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Addr:            ":8443",
		ReadTimeout:     5 * time.Second,
		WriteTimeout:    10 * time.Second,
		IdleTimeout:     120 * time.Second,
		ShutdownTimeout: 20 * time.Second,
		LogLevel:        "info",
		Store:           StoreMemory,
		RedisPrefix:     "concerts",
		CookieName:      "clientId",
		MaxPageSize:     100,
		OTel: OTel{
			ServiceName: "concerts",
			Probability: 0.05,
		},
	}
}

// Load builds the configuration. path may be empty.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := applyEnv(&cfg, os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	str := map[string]*string{
		"ADDR":         &cfg.Addr,
		"TLS_CERT":     &cfg.TLSCert,
		"TLS_KEY":      &cfg.TLSKey,
		"LOG_LEVEL":    &cfg.LogLevel,
		"STORE":        &cfg.Store,
		"DATABASE_URL": &cfg.DatabaseURL,
		"REDIS_ADDR":   &cfg.RedisAddr,
		"REDIS_PREFIX": &cfg.RedisPrefix,
		"COOKIE_NAME":  &cfg.CookieName,
		"OTEL_SERVICE": &cfg.OTel.ServiceName,
		"OTEL_HOST":    &cfg.OTel.Host,
	}
	for key, dst := range str {
		if v, ok := lookup(key); ok {
			*dst = v
		}
	}
	if v, ok := lookup("MAX_PAGE_SIZE"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("MAX_PAGE_SIZE: %w", err)
		}
		cfg.MaxPageSize = n
	}
	if v, ok := lookup("OTEL_PROBABILITY"); ok {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("OTEL_PROBABILITY: %w", err)
		}
		cfg.OTel.Probability = p
	}
	if v, ok := lookup("SHUTDOWN_TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("SHUTDOWN_TIMEOUT: %w", err)
		}
		cfg.ShutdownTimeout = d
	}
	return nil
}

// Validate reports configuration that cannot start the service.
func (c Config) Validate() error {
	var errs []error
	switch c.Store {
	case StoreMemory:
	case StoreRedis:
		if c.RedisAddr == "" {
			errs = append(errs, errors.New("store redis requires redis_addr"))
		}
	case StorePostgres:
		if c.DatabaseURL == "" {
			errs = append(errs, errors.New("store postgres requires database_url"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown store %q", c.Store))
	}
	if c.MaxPageSize < 1 {
		errs = append(errs, errors.New("max_page_size must be positive"))
	}
	if c.OTel.Probability < 0 || c.OTel.Probability > 1 {
		errs = append(errs, errors.New("otel probability must be within [0,1]"))
	}
	if (c.TLSCert == "") != (c.TLSKey == "") {
		errs = append(errs, errors.New("tls_cert and tls_key must be set together"))
	}
	return errors.Join(errs...)
}
