package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix        = "APP_"
	defaultConfigDir = "configs"
)

// ErrInvalidProfile is returned when a profile name is empty or could escape
// the config directory.
var ErrInvalidProfile = errors.New("invalid config profile")

// Option configures the Load function.
type Option func(*loadOptions)

type loadOptions struct {
	configDir string
}

// WithConfigDir sets the directory holding base.yaml and the profile files.
// Defaults to "configs" relative to the working directory.
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) {
		o.configDir = dir
	}
}

// Load builds the service configuration for a profile. Later layers win:
//
//  0. Built-in defaults (defaults.go)
//  1. {configDir}/base.yaml
//  2. {configDir}/{profile}.yaml
//  3. APP_ environment variables
//
// Env names are resolved against the keys known after the file layers, so
// underscores inside a key survive:
//
//	APP_STORE_DSN                          -> store.dsn
//	APP_TELEMETRY_SERVICE_NAME             -> telemetry.service_name
//	APP_APIACCESS_LIMITS_DESCRIPTION_MAX   -> apiaccess.limits.description_max
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	o := &loadOptions{configDir: defaultConfigDir}
	for _, opt := range opts {
		opt(o)
	}

	k := koanf.New(".")
	if err := setDefaults(k); err != nil {
		return nil, err
	}

	for _, name := range []string{"base", profile} {
		path := filepath.Join(o.configDir, name+".yaml")
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading %s config %s: %w", name, path, err)
		}
	}

	envKeys := newEnvKeyMapper(k.Keys())
	if err := k.Load(env.Provider(".", env.Opt{
		Prefix:        envPrefix,
		TransformFunc: envKeys.transform,
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(k *koanf.Koanf) error {
	for key, value := range defaults() {
		if err := k.Set(key, value); err != nil {
			return fmt.Errorf("setting default %s: %w", key, err)
		}
	}
	return nil
}

// validateProfile rejects names that are blank or contain path components.
func validateProfile(profile string) error {
	switch {
	case strings.TrimSpace(profile) == "":
		return fmt.Errorf("%w: profile must not be empty", ErrInvalidProfile)
	case strings.ContainsAny(profile, `/\`):
		return fmt.Errorf("%w: %q contains a path separator", ErrInvalidProfile, profile)
	case strings.Contains(profile, ".."):
		return fmt.Errorf("%w: %q contains path traversal", ErrInvalidProfile, profile)
	}
	return nil
}

// envKeyMapper maps lowercased env names without the prefix back to dotted
// koanf keys.
type envKeyMapper map[string]string

func newEnvKeyMapper(keys []string) envKeyMapper {
	m := make(envKeyMapper, len(keys))
	for _, key := range keys {
		m[strings.ReplaceAll(key, ".", "_")] = key
	}
	return m
}

// transform is an env.Opt TransformFunc. Unknown names fall back to treating
// every underscore as a nesting separator.
func (m envKeyMapper) transform(name, value string) (string, any) {
	name = strings.ToLower(strings.TrimPrefix(name, envPrefix))
	if key, ok := m[name]; ok {
		return key, value
	}
	return strings.ReplaceAll(name, "_", "."), value
}
