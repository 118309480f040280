package config

import (
	"errors"
	"fmt"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Log.validate(),
		c.Store.validate(),
		c.APIAccess.Limits.validate(),
		c.Telemetry.validate(),
	)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (s *StoreConfig) validate() error {
	switch s.Driver {
	case DriverMemory:
		return nil
	case DriverSQLite:
		if s.DSN == "" {
			return errors.New("store.dsn must not be empty when driver is sqlite")
		}
		return nil
	default:
		return fmt.Errorf("store.driver must be one of: memory, sqlite; got %q", s.Driver)
	}
}

func (l *LimitsConfig) validate() error {
	var errs []error

	if l.ClientNameMax < 1 {
		errs = append(errs, fmt.Errorf("apiaccess.limits.client_name_max must be >= 1, got %d", l.ClientNameMax))
	}
	if l.APIClientIDMax < 1 {
		errs = append(errs, fmt.Errorf("apiaccess.limits.api_client_id_max must be >= 1, got %d", l.APIClientIDMax))
	}
	if l.DescriptionMax < 1 {
		errs = append(errs, fmt.Errorf("apiaccess.limits.description_max must be >= 1, got %d", l.DescriptionMax))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}
	if t.ServiceName == "" {
		errs = append(errs, errors.New("telemetry.service_name must not be empty when telemetry is enabled"))
	}

	return errors.Join(errs...)
}
