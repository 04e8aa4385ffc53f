// Package config loads the YAML configuration for a DTA1 vendor
// endpoint: where to listen, where the credential file lives, and how
// request IDs are handled.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Validation errors.
var (
	// ErrMissingCredentialsFile is returned when the configuration
	// names no credentials file.
	ErrMissingCredentialsFile = errors.New("config: credentials file must be set")

	// ErrInvalidMaxConnections is returned when listen.max_connections
	// is negative.
	ErrInvalidMaxConnections = errors.New("config: max_connections must not be negative")
)

// Default values applied by Parse.
const (
	DefaultListenAddr      = ":8443"
	DefaultShutdownTimeout = Duration(10 * time.Second)
)

// Duration is a time.Duration that unmarshals from YAML strings like
// "30s" or "1m", which yaml.v3 does not handle for time.Duration
// directly.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("config: invalid duration %q: %w", s, err)
	}

	*d = Duration(v)

	return nil
}

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Config is the top-level vendor endpoint configuration.
type Config struct {
	Listen      Listen      `yaml:"listen"`
	Credentials Credentials `yaml:"credentials"`
	RequestID   RequestID   `yaml:"request_id"`
}

// Listen configures the TCP listener.
type Listen struct {
	// Addr is the listen address. Defaults to ":8443".
	Addr string `yaml:"addr"`

	// MaxConnections caps concurrent connections. Zero means no cap.
	MaxConnections int `yaml:"max_connections"`

	// ShutdownTimeout bounds graceful shutdown. Defaults to 10s.
	ShutdownTimeout Duration `yaml:"shutdown_timeout"`
}

// Credentials locates the credential source.
type Credentials struct {
	// File is the path to the line-oriented credentials file. Required.
	File string `yaml:"file"`
}

// RequestID configures request ID propagation.
type RequestID struct {
	// Header overrides the request ID header name.
	Header string `yaml:"header"`

	// TrustIncoming reuses an incoming request ID instead of
	// generating a new one.
	TrustIncoming bool `yaml:"trust_incoming"`
}

// Parse decodes YAML configuration, applies defaults, and validates.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parsing yaml: %w", err)
	}

	if cfg.Listen.Addr == "" {
		cfg.Listen.Addr = DefaultListenAddr
	}

	if cfg.Listen.ShutdownTimeout <= 0 {
		cfg.Listen.ShutdownTimeout = DefaultShutdownTimeout
	}

	if cfg.Listen.MaxConnections < 0 {
		return nil, ErrInvalidMaxConnections
	}

	if cfg.Credentials.File == "" {
		return nil, ErrMissingCredentialsFile
	}

	return &cfg, nil
}

// Load reads the file at path and delegates to Parse.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %q: %w", path, err)
	}

	return Parse(data)
}
