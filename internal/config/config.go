package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	Seed   SeedConfig   `mapstructure:"seed"`
	API    APIConfig    `mapstructure:"api" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	// ShutdownTimeoutSeconds bounds how long in-flight requests may run after a stop signal.
	ShutdownTimeoutSeconds int `mapstructure:"shutdown_timeout_seconds" validate:"required,gt=0"`
}

// ShutdownTimeout returns the graceful shutdown timeout as a duration.
func (c ServerConfig) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}

// SeedConfig controls loading of example records at startup.
type SeedConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// APIConfig contains the metadata advertised in the API descriptor.
type APIConfig struct {
	Title   string `mapstructure:"title" validate:"required"`
	Version string `mapstructure:"version" validate:"required"`
}
