package config

import "testing"

func TestEnvKeyMapper_Transform(t *testing.T) {
	t.Parallel()

	m := newEnvKeyMapper([]string{
		"store.dsn",
		"telemetry.service_name",
		"apiaccess.limits.api_client_id_max",
	})

	tests := []struct {
		env  string
		want string
	}{
		{"APP_STORE_DSN", "store.dsn"},
		{"APP_TELEMETRY_SERVICE_NAME", "telemetry.service_name"},
		{"APP_APIACCESS_LIMITS_API_CLIENT_ID_MAX", "apiaccess.limits.api_client_id_max"},
		{"APP_LOG_LEVEL", "log.level"},
	}
	for _, tt := range tests {
		key, value := m.transform(tt.env, "v")
		if key != tt.want {
			t.Errorf("transform(%q) key = %q, want %q", tt.env, key, tt.want)
		}
		if value != "v" {
			t.Errorf("transform(%q) value = %v, want %q", tt.env, value, "v")
		}
	}
}
