// Package config loads the service configuration from a YAML file with
// environment variable overrides.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (PORTFOLIO_*). A double underscore in
// the variable name separates nesting levels, e.g.
// PORTFOLIO_SERVER__PORT -> server.port.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider("PORTFOLIO_", ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, "PORTFOLIO_"))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}

	if len(c.Chat.Models) == 0 {
		return fmt.Errorf("at least one chat model is required")
	}
	for _, m := range c.Chat.Models {
		if strings.TrimSpace(m) == "" {
			return fmt.Errorf("chat models must not be blank")
		}
	}

	if c.Chat.RateLimitRPM < 0 {
		return fmt.Errorf("rate_limit_rpm must be non-negative")
	}

	// SMTP settings are optional; when a host is set the relay must be
	// fully described.
	if c.SMTP.Host != "" {
		if c.SMTP.Port <= 0 || c.SMTP.Port > 65535 {
			return fmt.Errorf("invalid smtp port %d", c.SMTP.Port)
		}
		if c.SMTP.User == "" {
			return fmt.Errorf("smtp user is required when smtp host is set")
		}
		if c.SMTP.AdminEmail == "" {
			return fmt.Errorf("smtp admin_email is required when smtp host is set")
		}
	}

	return nil
}

// MailEnabled reports whether the contact endpoint can be served.
func (c *Config) MailEnabled() bool {
	return c.SMTP.Host != ""
}
