// Cinefilter - Movie Catalog Filtering and Cohort Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinefilter

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// TestDefaultConfig verifies that defaultConfig() returns proper defaults
func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Database.Driver != DriverDuckDB {
		t.Errorf("Database.Driver = %q, want duckdb", cfg.Database.Driver)
	}
	if cfg.Database.Path != "/data/cinefilter.duckdb" {
		t.Errorf("Database.Path = %q, want /data/cinefilter.duckdb", cfg.Database.Path)
	}
	if cfg.Database.QueryTimeout != 10*time.Second {
		t.Errorf("Database.QueryTimeout = %v, want 10s", cfg.Database.QueryTimeout)
	}
	if cfg.Server.Port != 3001 {
		t.Errorf("Server.Port = %d, want 3001", cfg.Server.Port)
	}
	if cfg.Catalog.DomesticCountryCode != "KOR" {
		t.Errorf("Catalog.DomesticCountryCode = %q, want KOR", cfg.Catalog.DomesticCountryCode)
	}

	r := cfg.Recommend
	if r.MajorityRatio != 0.5 {
		t.Errorf("Recommend.MajorityRatio = %v, want 0.5", r.MajorityRatio)
	}
	if r.SmallCohortMax != 3 {
		t.Errorf("Recommend.SmallCohortMax = %d, want 3", r.SmallCohortMax)
	}
	if r.FallbackTopK != 3 {
		t.Errorf("Recommend.FallbackTopK = %d, want 3", r.FallbackTopK)
	}
	if r.HotWindowDays != 60 {
		t.Errorf("Recommend.HotWindowDays = %d, want 60", r.HotWindowDays)
	}
	if r.Limit != 5 {
		t.Errorf("Recommend.Limit = %d, want 5", r.Limit)
	}
	if r.MinDecade != 10 || r.MaxDecade != 90 {
		t.Errorf("Recommend decade clamp = [%d, %d], want [10, 90]", r.MinDecade, r.MaxDecade)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"DB_DRIVER", "database.driver"},
		{"DUCKDB_PATH", "database.path"},
		{"DATABASE_URL", "database.dsn"},
		{"DB_QUERY_TIMEOUT", "database.query_timeout"},
		{"DB_SEED_SAMPLE_DATA", "database.seed_sample_data"},
		{"SERVER_PORT", "server.port"},
		{"ENVIRONMENT", "server.environment"},
		{"RATE_LIMIT_REQUESTS", "security.rate_limit_reqs"},
		{"CORS_ORIGINS", "security.cors_origins"},
		{"LOG_LEVEL", "logging.level"},
		{"CATALOG_DOMESTIC_COUNTRY_CODE", "catalog.domestic_country_code"},
		{"RECOMMEND_HOT_WINDOW_DAYS", "recommend.hot_window_days"},
		{"recommend_limit", "recommend.limit"},

		// Unknown (should return empty)
		{"RANDOM_VAR", ""},
		{"PATH", ""},
		{"HOME", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := envTransformFunc(tt.input)
			if result != tt.expected {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

// TestFindConfigFile verifies config file discovery
func TestFindConfigFile(t *testing.T) {
	tmpDir := t.TempDir()

	t.Run("env var path", func(t *testing.T) {
		customPath := filepath.Join(tmpDir, "custom.yaml")
		if err := os.WriteFile(customPath, []byte("server:\n  port: 8080\n"), 0o600); err != nil {
			t.Fatalf("Failed to create config file: %v", err)
		}
		t.Setenv(ConfigPathEnvVar, customPath)

		if got := findConfigFile(); got != customPath {
			t.Errorf("findConfigFile() = %q, want %q", got, customPath)
		}
	})

	t.Run("missing env var path", func(t *testing.T) {
		t.Setenv(ConfigPathEnvVar, "/non/existent/config.yaml")

		if got := findConfigFile(); got != "" {
			t.Errorf("findConfigFile() = %q, want empty", got)
		}
	})
}

// TestLoadWithKoanfEnvVars tests loading configuration from environment variables
func TestLoadWithKoanfEnvVars(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, "")
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DUCKDB_PATH", ":memory:")
	t.Setenv("RECOMMEND_HOT_WINDOW_DAYS", "30")
	t.Setenv("RECOMMEND_MAJORITY_RATIO", "0.6")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example,")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Database.Path != ":memory:" {
		t.Errorf("Database.Path = %q, want :memory:", cfg.Database.Path)
	}
	if cfg.Recommend.HotWindowDays != 30 {
		t.Errorf("Recommend.HotWindowDays = %d, want 30", cfg.Recommend.HotWindowDays)
	}
	if cfg.Recommend.MajorityRatio != 0.6 {
		t.Errorf("Recommend.MajorityRatio = %v, want 0.6", cfg.Recommend.MajorityRatio)
	}
	if len(cfg.Security.CORSOrigins) != 2 || cfg.Security.CORSOrigins[1] != "https://b.example" {
		t.Errorf("Security.CORSOrigins = %v, want two trimmed origins", cfg.Security.CORSOrigins)
	}

	// Defaults survive for unset values
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want 0.0.0.0 (default)", cfg.Server.Host)
	}
	if cfg.Recommend.Limit != 5 {
		t.Errorf("Recommend.Limit = %d, want 5 (default)", cfg.Recommend.Limit)
	}
}

// TestLoadWithKoanfConfigFile tests loading from a YAML file and env precedence over it
func TestLoadWithKoanfConfigFile(t *testing.T) {
	configContent := `
server:
  port: 8888
  host: "127.0.0.1"

database:
  driver: duckdb
  path: ":memory:"

catalog:
  domestic_country_code: "USA"

recommend:
  limit: 10

logging:
  level: "warn"
`
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte(configContent), 0o600); err != nil {
		t.Fatalf("Failed to create config file: %v", err)
	}

	t.Setenv(ConfigPathEnvVar, configPath)
	t.Setenv("LOG_LEVEL", "error")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 8888 {
		t.Errorf("Server.Port = %d, want 8888", cfg.Server.Port)
	}
	if cfg.Catalog.DomesticCountryCode != "USA" {
		t.Errorf("Catalog.DomesticCountryCode = %q, want USA", cfg.Catalog.DomesticCountryCode)
	}
	if cfg.Recommend.Limit != 10 {
		t.Errorf("Recommend.Limit = %d, want 10", cfg.Recommend.Limit)
	}
	if cfg.Logging.Level != "error" {
		t.Errorf("Logging.Level = %q, want error (env overrides file)", cfg.Logging.Level)
	}
	if cfg.Recommend.FallbackTopK != 3 {
		t.Errorf("Recommend.FallbackTopK = %d, want 3 (default)", cfg.Recommend.FallbackTopK)
	}
}

func TestLoadWithKoanfValidation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unknown driver", map[string]string{"DB_DRIVER": "oracle"}},
		{"postgres without dsn", map[string]string{"DB_DRIVER": "postgres"}},
		{"invalid port", map[string]string{"SERVER_PORT": "70000"}},
		{"invalid log level", map[string]string{"LOG_LEVEL": "verbose"}},
		{"zero limit", map[string]string{"RECOMMEND_LIMIT": "0"}},
		{"ratio above one", map[string]string{"RECOMMEND_MAJORITY_RATIO": "1.5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(ConfigPathEnvVar, "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := LoadWithKoanf(); err == nil {
				t.Errorf("LoadWithKoanf() expected validation error for %v", tt.env)
			}
		})
	}
}
