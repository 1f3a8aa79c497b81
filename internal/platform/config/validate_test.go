package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jsamuelsen11/gantt-dashboard/internal/platform/config"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*config.Config) {}},
		{name: "sqlite driver", mutate: func(c *config.Config) { c.Store.Driver = config.StoreDriverSQLite }},
		{name: "disabled telemetry ignores exporter", mutate: func(c *config.Config) { c.Telemetry.Exporter = "zipkin" }},
		{name: "port zero", mutate: func(c *config.Config) { c.Server.Port = 0 }, wantErr: "server.port"},
		{name: "negative read timeout", mutate: func(c *config.Config) { c.Server.ReadTimeout = -time.Second }, wantErr: "server.read_timeout"},
		{name: "log level", mutate: func(c *config.Config) { c.Log.Level = "verbose" }, wantErr: "log.level"},
		{name: "log format", mutate: func(c *config.Config) { c.Log.Format = "xml" }, wantErr: "log.format"},
		{name: "unknown driver", mutate: func(c *config.Config) { c.Store.Driver = "postgres" }, wantErr: "store.driver"},
		{name: "blank path", mutate: func(c *config.Config) { c.Store.Path = " " }, wantErr: "store.path"},
		{name: "unknown load policy", mutate: func(c *config.Config) { c.Store.OnLoadError = "retry" }, wantErr: "store.on_load_error"},
		{name: "empty title", mutate: func(c *config.Config) { c.UI.Title = "" }, wantErr: "ui.title"},
		{
			name: "otlp without endpoint",
			mutate: func(c *config.Config) {
				c.Telemetry.Enabled = true
				c.Telemetry.Exporter = "otlp"
			},
			wantErr: "telemetry.endpoint",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestValidate_AggregatesErrors(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Server.Port = 70000
	cfg.Store.Path = ""

	err := cfg.Validate()
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "server.port")
		assert.Contains(t, err.Error(), "store.path")
	}
}

func validConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:         "127.0.0.1",
			Port:         8080,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  2 * time.Minute,
		},
		Log:   config.LogConfig{Level: "info", Format: "json"},
		Store: config.StoreConfig{Driver: config.StoreDriverFile, Path: "projects.json", OnLoadError: config.OnLoadErrorFail},
		UI:    config.UIConfig{Title: "Roadmap"},
		Telemetry: config.TelemetryConfig{
			Exporter:    "stdout",
			ServiceName: "gantt-dashboard",
		},
	}
}
