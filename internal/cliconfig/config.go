package cliconfig

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/bft-labs/blockinfo/pkg/log"
)

const (
	// DefaultEnvironment is used when NODE_ENV and the config leave it unset.
	DefaultEnvironment = "development"

	// DefaultBaseURL is the built-in API root for DefaultEnvironment.
	DefaultBaseURL = "http://localhost:3000"
)

// Config holds CLI configuration for blockinfo.
type Config struct {
	// Environment selects the entry of API to use.
	Environment string `json:"environment"`

	// API maps environment identifiers to base URLs.
	API map[string]string `json:"api"`

	// BaseURL overrides the API lookup when set. After Validate it always
	// holds the resolved base URL.
	BaseURL string `json:"base_url"`

	Token string `json:"token"`

	// HTTPTimeout bounds each request. Zero disables the timeout.
	HTTPTimeout time.Duration `json:"http_timeout"`

	LogLevel string `json:"log_level"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Environment: DefaultEnvironment,
		API: map[string]string{
			DefaultEnvironment: DefaultBaseURL,
		},
		HTTPTimeout: 15 * time.Second,
		LogLevel:    "info",
	}
}

// Validate checks the configuration and resolves BaseURL from the API
// table. Calling it again on a validated config is a no-op.
func (c *Config) Validate() error {
	if c.Environment == "" {
		c.Environment = DefaultEnvironment
	}

	if c.BaseURL == "" {
		u, ok := c.API[c.Environment]
		if !ok || strings.TrimSpace(u) == "" {
			return fmt.Errorf("no api url configured for environment %q (known: %s)",
				c.Environment, strings.Join(c.Environments(), ", "))
		}
		c.BaseURL = u
	}

	c.BaseURL = strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if c.BaseURL == "" {
		return fmt.Errorf("base url is empty")
	}

	if c.HTTPTimeout < 0 {
		return fmt.Errorf("http timeout must not be negative")
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return err
	}

	return nil
}

// Environments returns the configured environment identifiers, sorted.
func (c *Config) Environments() []string {
	envs := make([]string, 0, len(c.API))
	for env := range c.API {
		envs = append(envs, env)
	}
	sort.Strings(envs)
	return envs
}

// MergeAPI adds or replaces API entries.
func (c *Config) MergeAPI(entries map[string]string) {
	if len(entries) == 0 {
		return
	}
	if c.API == nil {
		c.API = make(map[string]string, len(entries))
	}
	for env, u := range entries {
		if env == "" || u == "" {
			continue
		}
		c.API[env] = u
	}
}

// Redacted returns a copy safe to log.
func (c Config) Redacted() Config {
	if c.Token != "" {
		c.Token = "*****"
	}
	return c
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}
