// Package config loads the client configuration file.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/afero"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/abhishek622/moviereviews/pkg/discovery"
	"github.com/abhishek622/moviereviews/pkg/discovery/consul"
	"github.com/abhishek622/moviereviews/pkg/discovery/static"
)

// DefaultPath is where commands look for the configuration file.
const DefaultPath = "configs/default.yaml"

// Defaults applied to keys absent from the file.
const (
	DefaultServiceName = "movies-api"
	DefaultBaseURL     = "http://localhost:8080"
	DefaultTimeout     = 15 * time.Second
	DefaultRateLimit   = 10
	DefaultBurst       = 5
	DefaultSessionPath = ".moviereviews/session.db"
	DefaultLogLevel    = "info"
)

var (
	// ErrNoBackend is returned when neither a base URL nor a Consul address is set.
	ErrNoBackend = errors.New("api.baseUrl or serviceDiscovery.consul.address is required")
	// ErrInvalidLimit is returned for a negative rate limit or burst.
	ErrInvalidLimit = errors.New("api.rateLimit and api.burst must not be negative")
)

// Config is the client configuration.
type Config struct {
	API              APIConfig              `yaml:"api"`
	ServiceDiscovery ServiceDiscoveryConfig `yaml:"serviceDiscovery"`
	Session          SessionConfig          `yaml:"session"`
	Log              LogConfig              `yaml:"log"`
	Jaeger           JaegerConfig           `yaml:"jaeger"`
	Prometheus       PrometheusConfig       `yaml:"prometheus"`
}

// APIConfig describes the backend REST API.
type APIConfig struct {
	ServiceName string        `yaml:"serviceName"`
	BaseURL     string        `yaml:"baseUrl"`
	Timeout     time.Duration `yaml:"timeout"`
	// RateLimit is the number of outbound requests per second. Zero disables it.
	RateLimit float64 `yaml:"rateLimit"`
	Burst     int     `yaml:"burst"`
}

type ServiceDiscoveryConfig struct {
	Consul ConsulConfig `yaml:"consul"`
}

type ConsulConfig struct {
	Address string `yaml:"address"`
}

// SessionConfig points at the persisted credential store.
type SessionConfig struct {
	Path string `yaml:"path"`
}

// LogConfig configures the process logger. Logs go to stderr and, when File
// is set, to a rotated file as well.
type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"maxSizeMb"`
	MaxBackups int    `yaml:"maxBackups"`
	MaxAgeDays int    `yaml:"maxAgeDays"`
	Compress   bool   `yaml:"compress"`
}

// JaegerConfig enables tracing when Host is set.
type JaegerConfig struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type PrometheusConfig struct {
	MetricsPort int `yaml:"metricsPort"`
}

// Load reads and validates the configuration file at path.
func Load(fs afero.Fs, path string) (*Config, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML configuration document.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.API.ServiceName == "" {
		c.API.ServiceName = DefaultServiceName
	}
	if c.API.BaseURL == "" && c.ServiceDiscovery.Consul.Address == "" {
		c.API.BaseURL = DefaultBaseURL
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = DefaultTimeout
	}
	if c.API.RateLimit == 0 && c.API.Burst == 0 {
		c.API.RateLimit = DefaultRateLimit
		c.API.Burst = DefaultBurst
	}
	if c.Session.Path == "" {
		c.Session.Path = DefaultSessionPath
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Jaeger.Host != "" && c.Jaeger.Port == "" {
		c.Jaeger.Port = "6831"
	}
}

// Validate checks the configuration for values no command can run with.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" && c.ServiceDiscovery.Consul.Address == "" {
		return ErrNoBackend
	}
	if c.API.Timeout < 0 {
		return fmt.Errorf("api.timeout must be positive, got %s", c.API.Timeout)
	}
	if c.API.RateLimit < 0 || c.API.Burst < 0 {
		return ErrInvalidLimit
	}
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if c.Prometheus.MetricsPort < 0 || c.Prometheus.MetricsPort > 65535 {
		return fmt.Errorf("prometheus.metricsPort out of range: %d", c.Prometheus.MetricsPort)
	}
	return nil
}

// Registry returns the registry the backend address is resolved through:
// Consul when an agent address is configured, else the static base URL.
func (c *Config) Registry() (discovery.Registry, error) {
	if addr := c.ServiceDiscovery.Consul.Address; addr != "" {
		return consul.NewRegistry(addr)
	}
	return static.NewRegistry(c.API.ServiceName, c.API.BaseURL), nil
}
