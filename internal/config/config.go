package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// Config is the top-level folio configuration, corresponding to .folio.yml.
type Config struct {
	RemoteURL         string `yaml:"remote_url" koanf:"remote_url"`
	Token             string `yaml:"token" koanf:"token"`
	Port              int    `yaml:"port" koanf:"port"`
	CachePath         string `yaml:"cache_path" koanf:"cache_path"`
	RequestTimeoutSec int    `yaml:"request_timeout_sec" koanf:"request_timeout_sec"`
	AllowAllCORS      bool   `yaml:"allow_all_cors" koanf:"allow_all_cors"`
}

// DefaultConfig returns a Config with sensible defaults. The remote endpoint
// and token have no defaults: they must come from the config file or the
// environment rather than being compiled in.
func DefaultConfig() *Config {
	return &Config{
		Port:              8080,
		CachePath:         ".folio/cache.db",
		RequestTimeoutSec: 20,
	}
}

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (FOLIO_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// Overlay environment variables: FOLIO_REMOTE_URL -> remote_url, etc.
	if err := k.Load(env.Provider("FOLIO_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "FOLIO_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path. The file holds
// the access token, so permissions are restricted to the owner.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.RemoteURL == "" {
		return fmt.Errorf("remote_url is required")
	}
	if u, err := url.Parse(c.RemoteURL); err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid remote_url %q", c.RemoteURL)
	}

	if c.Token == "" {
		return fmt.Errorf("token is required")
	}

	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535")
	}

	if c.CachePath == "" {
		return fmt.Errorf("cache_path is required")
	}

	if c.RequestTimeoutSec <= 0 {
		return fmt.Errorf("request_timeout_sec must be positive")
	}

	return nil
}
