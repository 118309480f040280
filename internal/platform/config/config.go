// Package config provides configuration loading and validation for the service.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

// Config holds all configuration for the service.
type Config struct {
	Log       LogConfig       `koanf:"log"`
	Store     StoreConfig     `koanf:"store"`
	APIAccess APIAccessConfig `koanf:"apiaccess"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// Store driver names.
const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
)

// StoreConfig selects the entity store backend.
type StoreConfig struct {
	Driver string `koanf:"driver"`
	// DSN is the SQLite database path or URI. Ignored by the memory driver.
	DSN string `koanf:"dsn"`
}

// APIAccessConfig holds API access field rules.
type APIAccessConfig struct {
	Limits LimitsConfig `koanf:"limits"`
}

// LimitsConfig holds maximum field lengths, counted in characters.
type LimitsConfig struct {
	ClientNameMax  int `koanf:"client_name_max"`
	APIClientIDMax int `koanf:"api_client_id_max"`
	DescriptionMax int `koanf:"description_max"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
