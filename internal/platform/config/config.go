// Package config provides configuration loading and validation for the dashboard.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Config holds all configuration for the service.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Store     StoreConfig     `koanf:"store"`
	UI        UIConfig        `koanf:"ui"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// Store drivers.
const (
	StoreDriverFile   = "file"
	StoreDriverSQLite = "sqlite"
)

// Load-failure policies for the project store.
const (
	OnLoadErrorFail  = "fail"
	OnLoadErrorEmpty = "empty"
)

// StoreConfig selects and locates the project store.
// For the file driver the path extension picks the encoding (.json or .yaml).
type StoreConfig struct {
	Driver      string `koanf:"driver"`
	Path        string `koanf:"path"`
	OnLoadError string `koanf:"on_load_error"`
}

// UIConfig holds settings for the server-rendered dashboard.
type UIConfig struct {
	Title string `koanf:"title"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
