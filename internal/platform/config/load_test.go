package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jsamuelsen11/api-access-service/internal/platform/config"
)

func TestLoad_LocalProfile(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load(\"local\") error: %v", err)
	}

	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want \"debug\"", cfg.Log.Level)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("Log.Format = %q, want \"text\"", cfg.Log.Format)
	}
	if cfg.Store.Driver != config.DriverMemory {
		t.Errorf("Store.Driver = %q, want %q", cfg.Store.Driver, config.DriverMemory)
	}
	if cfg.Telemetry.Enabled {
		t.Error("Telemetry.Enabled = true, want false for local")
	}
}

func TestLoad_ProdProfile(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("prod")
	if err != nil {
		t.Fatalf("Load(\"prod\") error: %v", err)
	}

	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want \"json\"", cfg.Log.Format)
	}
	if cfg.Store.Driver != config.DriverSQLite {
		t.Errorf("Store.Driver = %q, want %q", cfg.Store.Driver, config.DriverSQLite)
	}
	if cfg.Store.DSN == "" {
		t.Error("Store.DSN is empty, want non-empty for prod")
	}
	if !cfg.Telemetry.Enabled {
		t.Error("Telemetry.Enabled = false, want true for prod")
	}
	if cfg.Telemetry.Exporter != "otlp" {
		t.Errorf("Telemetry.Exporter = %q, want \"otlp\"", cfg.Telemetry.Exporter)
	}
}

func TestLoad_BaseConfigInheritance(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load(\"local\") error: %v", err)
	}

	// These come from base.yaml, not overridden by local.yaml.
	limits := cfg.APIAccess.Limits
	if limits.ClientNameMax != 255 {
		t.Errorf("ClientNameMax = %d, want 255 (from base)", limits.ClientNameMax)
	}
	if limits.APIClientIDMax != 255 {
		t.Errorf("APIClientIDMax = %d, want 255 (from base)", limits.APIClientIDMax)
	}
	if limits.DescriptionMax != 21844 {
		t.Errorf("DescriptionMax = %d, want 21844 (from base)", limits.DescriptionMax)
	}
	if cfg.Telemetry.ServiceName != "api-access-service" {
		t.Errorf("Telemetry.ServiceName = %q, want \"api-access-service\"", cfg.Telemetry.ServiceName)
	}
}

func TestLoad_DefaultsFillMissingKeys(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "base.yaml"), "log:\n  format: text\n")
	writeFile(t, filepath.Join(dir, "test.yaml"), "{}\n")

	cfg, err := config.Load("test", config.WithConfigDir(dir))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want \"info\" (default)", cfg.Log.Level)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("Log.Format = %q, want \"text\" (from base)", cfg.Log.Format)
	}
	if cfg.APIAccess.Limits.DescriptionMax != 21844 {
		t.Errorf("DescriptionMax = %d, want 21844 (default)", cfg.APIAccess.Limits.DescriptionMax)
	}
}

func TestLoad_EnvOverrideSimpleKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_LOG_LEVEL", "warn")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want \"warn\" (env override)", cfg.Log.Level)
	}
}

func TestLoad_EnvOverrideSnakeCaseKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_TELEMETRY_SERVICE_NAME", "apiaccess-canary")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Telemetry.ServiceName != "apiaccess-canary" {
		t.Errorf("Telemetry.ServiceName = %q, want \"apiaccess-canary\" (env override)", cfg.Telemetry.ServiceName)
	}
}

func TestLoad_EnvOverrideDeeplyNestedKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_APIACCESS_LIMITS_CLIENT_NAME_MAX", "64")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.APIAccess.Limits.ClientNameMax != 64 {
		t.Errorf("ClientNameMax = %d, want 64 (env override)", cfg.APIAccess.Limits.ClientNameMax)
	}
}

func TestLoad_MissingProfile(t *testing.T) {
	t.Chdir("../../..")

	_, err := config.Load("nonexistent")
	if err == nil {
		t.Fatal("Load(\"nonexistent\") returned nil error, want error")
	}
}

func TestLoad_RejectsUnsafeProfile(t *testing.T) {
	t.Parallel()

	for _, profile := range []string{"", "  ", "../etc", `a\b`, "a/b"} {
		if _, err := config.Load(profile); !errors.Is(err, config.ErrInvalidProfile) {
			t.Errorf("Load(%q) error = %v, want ErrInvalidProfile", profile, err)
		}
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(*config.Config) {}},
		{name: "invalid log level", mutate: func(c *config.Config) { c.Log.Level = "verbose" }, wantErr: true},
		{name: "invalid log format", mutate: func(c *config.Config) { c.Log.Format = "xml" }, wantErr: true},
		{name: "unknown driver", mutate: func(c *config.Config) { c.Store.Driver = "postgres" }, wantErr: true},
		{name: "sqlite without dsn", mutate: func(c *config.Config) { c.Store.Driver = config.DriverSQLite }, wantErr: true},
		{
			name: "sqlite with dsn",
			mutate: func(c *config.Config) {
				c.Store.Driver = config.DriverSQLite
				c.Store.DSN = ":memory:"
			},
		},
		{name: "zero name limit", mutate: func(c *config.Config) { c.APIAccess.Limits.ClientNameMax = 0 }, wantErr: true},
		{name: "negative description limit", mutate: func(c *config.Config) { c.APIAccess.Limits.DescriptionMax = -1 }, wantErr: true},
		{
			name: "otlp without endpoint",
			mutate: func(c *config.Config) {
				c.Telemetry.Enabled = true
				c.Telemetry.Exporter = "otlp"
			},
			wantErr: true,
		},
		{
			name: "unknown exporter ignored when disabled",
			mutate: func(c *config.Config) {
				c.Telemetry.Exporter = "zipkin"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validBaseConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// validBaseConfig returns a Config with all fields set to valid values.
func validBaseConfig() *config.Config {
	return &config.Config{
		Log: config.LogConfig{
			Level:  "info",
			Format: "json",
		},
		Store: config.StoreConfig{
			Driver: config.DriverMemory,
		},
		APIAccess: config.APIAccessConfig{
			Limits: config.LimitsConfig{
				ClientNameMax:  255,
				APIClientIDMax: 255,
				DescriptionMax: 21844,
			},
		},
		Telemetry: config.TelemetryConfig{
			Enabled:     false,
			Exporter:    "stdout",
			ServiceName: "api-access-service",
		},
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}
