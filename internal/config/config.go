// Package config provides configuration types and defaults for the
// veximoji CLI and server.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Config holds all configuration options for the veximoji binary.
type Config struct {
	Output  OutputConfig  `mapstructure:"output"`
	Server  ServerConfig  `mapstructure:"server"`
	Regions RegionsConfig `mapstructure:"regions"`
	Tracing TracingConfig `mapstructure:"tracing"`
	Verbose bool          `mapstructure:"verbose"`
}

// OutputConfig holds terminal output options.
type OutputConfig struct {
	// JSON switches list and decode output to machine-readable JSON.
	JSON bool `mapstructure:"json"`

	// Color enables lipgloss styling for list output.
	Color bool `mapstructure:"color"`
}

// ServerConfig holds options for the HTTP binding (veximoji serve).
type ServerConfig struct {
	// Addr is the listen address, host:port.
	Addr string `mapstructure:"addr"`

	// ShutdownGraceSeconds bounds graceful shutdown on SIGINT/SIGTERM.
	ShutdownGraceSeconds int `mapstructure:"shutdown_grace_seconds"`
}

// RegionsConfig controls the country-code source.
type RegionsConfig struct {
	// Static pins the country-code list to the given ISO 3166-1 alpha-2
	// codes instead of the CLDR data compiled into the binary. Leave
	// empty to use CLDR.
	Static []string `mapstructure:"static"`
}

// TracingConfig controls OpenTelemetry span export for the server.
type TracingConfig struct {
	// Enabled turns tracing on. A disabled provider is a no-op.
	Enabled bool `mapstructure:"enabled"`

	// ServiceName identifies this process in exported spans.
	ServiceName string `mapstructure:"service_name"`
}

// Defaults returns the default configuration.
func Defaults() Config {
	return Config{
		Output: OutputConfig{
			JSON:  false,
			Color: true,
		},
		Server: ServerConfig{
			Addr:                 "localhost:8385",
			ShutdownGraceSeconds: 10,
		},
		Tracing: TracingConfig{
			Enabled:     false,
			ServiceName: "veximoji",
		},
	}
}

// Validate checks the config for values the binary cannot run with.
func (c Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr must not be empty")
	}
	if c.Server.ShutdownGraceSeconds < 0 {
		return fmt.Errorf("server.shutdown_grace_seconds must not be negative")
	}
	for _, code := range c.Regions.Static {
		if len(code) != 2 {
			return fmt.Errorf("regions.static: %q is not a two-letter code", code)
		}
	}
	return nil
}

// DefaultPath returns the default config file location,
// ~/.config/veximoji/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".config", "veximoji", "config.yaml"), nil
}
