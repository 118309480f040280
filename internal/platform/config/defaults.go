package config

const (
	defaultClientNameMax  = 255
	defaultAPIClientIDMax = 255
	defaultDescriptionMax = 21844
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"log.level":  "info",
		"log.format": "json",

		"store.driver": DriverMemory,
		"store.dsn":    "",

		"apiaccess.limits.client_name_max":   defaultClientNameMax,
		"apiaccess.limits.api_client_id_max": defaultAPIClientIDMax,
		"apiaccess.limits.description_max":   defaultDescriptionMax,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "api-access-service",
	}
}
