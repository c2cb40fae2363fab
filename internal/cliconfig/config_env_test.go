package cliconfig

import (
	"reflect"
	"testing"
	"time"
)

func TestApplyEnvConfig(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		changed  map[string]bool
		initial  Config
		expected Config
		wantErr  bool
	}{
		{
			name: "applies all valid env vars",
			envVars: map[string]string{
				"NODE_ENV":               "production",
				"BLOCKINFO_BASE_URL":     "http://env:3000",
				"BLOCKINFO_TOKEN":        "env-token",
				"BLOCKINFO_HTTP_TIMEOUT": "3s",
				"BLOCKINFO_LOG_LEVEL":    "debug",
			},
			changed: map[string]bool{},
			initial: Config{},
			expected: Config{
				Environment: "production",
				BaseURL:     "http://env:3000",
				Token:       "env-token",
				HTTPTimeout: 3 * time.Second,
				LogLevel:    "debug",
			},
		},
		{
			name: "respects changed flags",
			envVars: map[string]string{
				"NODE_ENV":        "production",
				"BLOCKINFO_TOKEN": "env-token",
			},
			changed: map[string]bool{"env": true},
			initial: Config{Environment: "staging"},
			expected: Config{
				Environment: "staging",
				Token:       "env-token",
			},
		},
		{
			name: "api entries from prefixed vars",
			envVars: map[string]string{
				"BLOCKINFO_API_STAGING": "http://staging:3000",
			},
			changed: map[string]bool{},
			initial: Config{API: map[string]string{"development": "http://localhost:3000"}},
			expected: Config{API: map[string]string{
				"development": "http://localhost:3000",
				"staging":     "http://staging:3000",
			}},
		},
		{
			name: "returns error for invalid duration",
			envVars: map[string]string{
				"BLOCKINFO_HTTP_TIMEOUT": "soon",
			},
			changed: map[string]bool{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, k := range []string{"NODE_ENV", "BLOCKINFO_BASE_URL", "BLOCKINFO_TOKEN", "BLOCKINFO_HTTP_TIMEOUT", "BLOCKINFO_LOG_LEVEL"} {
				t.Setenv(k, "")
			}
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg := tt.initial
			err := ApplyEnvConfig(&cfg, tt.changed)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ApplyEnvConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if tt.expected.API == nil {
				cfg.API = nil
			}
			if !reflect.DeepEqual(cfg, tt.expected) {
				t.Errorf("ApplyEnvConfig() = %+v, want %+v", cfg, tt.expected)
			}
		})
	}
}

func TestApiFromEnviron(t *testing.T) {
	got := apiFromEnviron([]string{
		"PATH=/usr/bin",
		"BLOCKINFO_API_PRODUCTION=https://api.example.com",
		"BLOCKINFO_API_QA=http://qa=1",
		"BLOCKINFO_TOKEN=x",
	})
	want := map[string]string{
		"production": "https://api.example.com",
		"qa":         "http://qa=1",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("apiFromEnviron() = %v, want %v", got, want)
	}
}
