package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix        = "APP_"
	secretFileSuffix = "_FILE"
	defaultConfigDir = "configs"
)

// secretKeys are only ever supplied through the environment.
var secretKeys = []string{
	"auth.jwt_secret",
	"gemini.api_key",
	"plaid.client_id",
	"plaid.secret",
	"whatsapp.phone_number_id",
	"whatsapp.access_token",
	"whatsapp.verify_token",
	"whatsapp.app_secret",
	"twilio.account_sid",
	"twilio.auth_token",
	"twilio.from_number",
}

// Option configures the Load function.
type Option func(*loadOptions)

type loadOptions struct {
	configDir string
}

// WithConfigDir sets the directory where config YAML files are located.
// Defaults to "configs" relative to the working directory.
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) {
		o.configDir = dir
	}
}

// Load reads configuration using a layered hierarchy (highest precedence last):
//
//  0. Built-in defaults (see defaults)
//  1. Base config ({configDir}/base.yaml)
//  2. Profile config ({configDir}/{profile}.yaml)
//  3. Environment variables (APP_ prefix)
//  4. Secret files: APP_<KEY>_FILE names a file holding a secret key's value
//
// Environment variables are matched against the loaded keys, so underscores
// inside a key name are not mistaken for nesting:
//
//	APP_SERVER_READ_TIMEOUT             -> server.read_timeout
//	APP_CLIENTS_WISE_RETRY_MAX_ATTEMPTS -> clients.wise.retry.max_attempts
//	APP_AUTH_JWT_SECRET                 -> auth.jwt_secret
//	APP_AUTH_JWT_SECRET_FILE=/run/secrets/jwt
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	o := &loadOptions{configDir: defaultConfigDir}
	for _, opt := range opts {
		opt(o)
	}

	k := koanf.New(".")
	if err := loadDefaults(k); err != nil {
		return nil, err
	}
	for _, name := range []string{"base.yaml", profile + ".yaml"} {
		path := filepath.Join(o.configDir, name)
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config %s: %w", path, err)
		}
	}
	if err := loadEnv(k); err != nil {
		return nil, err
	}
	if err := loadSecretFiles(k); err != nil {
		return nil, err
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

// loadDefaults seeds k with the built-in defaults and an empty value for
// every secret key, so secrets that never appear in YAML still resolve from
// the environment.
func loadDefaults(k *koanf.Koanf) error {
	for key, value := range defaults() {
		if err := k.Set(key, value); err != nil {
			return fmt.Errorf("setting default %s: %w", key, err)
		}
	}
	for _, key := range secretKeys {
		if k.Exists(key) {
			continue
		}
		if err := k.Set(key, ""); err != nil {
			return fmt.Errorf("setting default %s: %w", key, err)
		}
	}
	return nil
}

func loadEnv(k *koanf.Koanf) error {
	envLookup := buildEnvLookup(k.Keys())

	err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
			if base, ok := strings.CutSuffix(key, strings.ToLower(secretFileSuffix)); ok {
				if _, known := envLookup[base]; known {
					return "", nil // handled by loadSecretFiles
				}
			}
			if koanfKey, ok := envLookup[key]; ok {
				return koanfKey, value
			}
			return strings.ReplaceAll(key, "_", "."), value
		},
	}), nil)
	if err != nil {
		return fmt.Errorf("loading env vars: %w", err)
	}
	return nil
}

// loadSecretFiles reads APP_<KEY>_FILE for each secret key. Surrounding
// whitespace, such as the trailing newline most secret mounts add, is
// trimmed. A named file that cannot be read is an error.
func loadSecretFiles(k *koanf.Koanf) error {
	for _, key := range secretKeys {
		name := envPrefix + strings.ToUpper(strings.ReplaceAll(key, ".", "_")) + secretFileSuffix
		path, ok := os.LookupEnv(name)
		if !ok || path == "" {
			continue
		}
		data, err := os.ReadFile(path) //nolint:gosec // operator supplied path
		if err != nil {
			return fmt.Errorf("reading %s: %w", name, err)
		}
		if err := k.Set(key, strings.TrimSpace(string(data))); err != nil {
			return fmt.Errorf("setting %s: %w", key, err)
		}
	}
	return nil
}

// validateProfile checks that the profile name is safe and non-empty.
func validateProfile(profile string) error {
	if strings.TrimSpace(profile) == "" {
		return errors.New("profile must not be empty")
	}
	if strings.ContainsAny(profile, `/\`) {
		return fmt.Errorf("profile must not contain path separators, got %q", profile)
	}
	if strings.Contains(profile, "..") {
		return fmt.Errorf("profile must not contain path traversal, got %q", profile)
	}
	return nil
}

// buildEnvLookup maps the env form of every known key ("server_read_timeout")
// back to its dotted koanf key ("server.read_timeout").
func buildEnvLookup(keys []string) map[string]string {
	lookup := make(map[string]string, len(keys))
	for _, key := range keys {
		envKey := strings.ReplaceAll(key, ".", "_")
		lookup[envKey] = key
	}
	return lookup
}
