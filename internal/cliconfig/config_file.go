package cliconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// FileConfig mirrors Config but uses strings for durations to keep files readable.
//
//	environment = "production"
//	token = "..."
//	http_timeout = "10s"
//
//	[api]
//	development = "http://localhost:3000"
//	production = "https://api.example.com"
type FileConfig struct {
	Environment string            `toml:"environment" yaml:"environment"`
	BaseURL     string            `toml:"base_url" yaml:"base_url"`
	Token       string            `toml:"token" yaml:"token"`
	HTTPTimeout string            `toml:"http_timeout" yaml:"http_timeout"`
	LogLevel    string            `toml:"log_level" yaml:"log_level"`
	API         map[string]string `toml:"api" yaml:"api"`
}

// LoadFileConfig reads a config file. Files ending in .yaml or .yml are
// parsed as YAML, anything else as TOML.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &fc)
	default:
		err = toml.Unmarshal(b, &fc)
	}
	if err != nil {
		return fc, fmt.Errorf("parse %s: %w", path, err)
	}
	return fc, nil
}

// DefaultConfigPath returns ~/.blockinfo/config.toml, or "" if the home
// directory cannot be determined.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".blockinfo", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("env", fc.Environment, &cfg.Environment)
	s.setString("base-url", fc.BaseURL, &cfg.BaseURL)
	s.setString("token", fc.Token, &cfg.Token)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)

	if err := s.setDuration("timeout", fc.HTTPTimeout, &cfg.HTTPTimeout); err != nil {
		return err
	}

	cfg.MergeAPI(fc.API)
	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
