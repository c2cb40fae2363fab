package cliconfig

import (
	"os"
	"strings"
)

// EnvironmentVar selects the environment identifier.
const EnvironmentVar = "NODE_ENV"

const apiEnvPrefix = "BLOCKINFO_API_"

// ApplyEnvConfig applies configuration from NODE_ENV and BLOCKINFO_* variables.
// It respects flags that have been explicitly set (changed map).
//
// BLOCKINFO_API_<ENV>=<url> adds or replaces the API entry for the
// lower-cased <ENV>.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("env", os.Getenv(EnvironmentVar), &cfg.Environment)
	s.setString("base-url", os.Getenv("BLOCKINFO_BASE_URL"), &cfg.BaseURL)
	s.setString("token", os.Getenv("BLOCKINFO_TOKEN"), &cfg.Token)
	s.setString("log-level", os.Getenv("BLOCKINFO_LOG_LEVEL"), &cfg.LogLevel)

	if err := s.setDuration("timeout", os.Getenv("BLOCKINFO_HTTP_TIMEOUT"), &cfg.HTTPTimeout); err != nil {
		return err
	}

	cfg.MergeAPI(apiFromEnviron(os.Environ()))
	return nil
}

func apiFromEnviron(environ []string) map[string]string {
	entries := map[string]string{}
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(key, apiEnvPrefix) {
			continue
		}
		env := strings.ToLower(strings.TrimPrefix(key, apiEnvPrefix))
		entries[env] = value
	}
	return entries
}
