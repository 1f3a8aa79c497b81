package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Validate checks every section and reports all problems at once.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Store.validate(),
		c.UI.validate(),
		c.Telemetry.validate(),
	)
}

// oneOf reports got as invalid for key unless it is in allowed.
func oneOf(key, got string, allowed ...string) error {
	if slices.Contains(allowed, got) {
		return nil
	}
	return fmt.Errorf("%s must be one of: %s; got %q", key, strings.Join(allowed, ", "), got)
}

func notBlank(key, got string) error {
	if strings.TrimSpace(got) == "" {
		return fmt.Errorf("%s must not be empty", key)
	}
	return nil
}

func (s *ServerConfig) validate() error {
	var errs []error
	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}
	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	return errors.Join(
		oneOf("log.level", l.Level, "debug", "info", "warn", "error"),
		oneOf("log.format", l.Format, "json", "text"),
	)
}

func (s *StoreConfig) validate() error {
	return errors.Join(
		oneOf("store.driver", s.Driver, StoreDriverFile, StoreDriverSQLite),
		notBlank("store.path", s.Path),
		oneOf("store.on_load_error", s.OnLoadError, OnLoadErrorFail, OnLoadErrorEmpty),
	)
}

func (u *UIConfig) validate() error {
	return notBlank("ui.title", u.Title)
}

// Exporter settings only matter when telemetry is on.
func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}
	err := oneOf("telemetry.exporter", t.Exporter, "stdout", "otlp")
	if t.Exporter == "otlp" && t.Endpoint == "" {
		err = errors.Join(err, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}
	return err
}
