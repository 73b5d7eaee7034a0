// Package config loads the two layers of configuration this service reads:
// process-level server settings from the environment, and an optional
// per-project YAML file that tunes how a specific directory is analyzed.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ServerConfig holds process-level settings read from the environment,
// mirroring the env vars the service reads at startup.
type ServerConfig struct {
	Port           string
	CertPath       string
	KeyPath        string
	LogLevel       string
	AllowedOrigins []string
	MaxFileBytes   int64
}

// LoadServerConfig reads ServerConfig from the process environment,
// applying the same defaults the original service falls back to when a
// variable is unset.
func LoadServerConfig() ServerConfig {
	cfg := ServerConfig{
		Port:         envOr("PORT", "3000"),
		CertPath:     os.Getenv("CERT_PATH"),
		KeyPath:      os.Getenv("KEY_PATH"),
		LogLevel:     envOr("LOG_LEVEL", "info"),
		MaxFileBytes: envOrInt64("MAX_FILE_BYTES", 5*1024*1024),
	}
	if raw := os.Getenv("ALLOWED_ORIGINS"); raw != "" {
		for _, origin := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(origin); trimmed != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
			}
		}
	}
	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envOrInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fallback
	}
	return parsed
}

// ProjectConfig holds per-directory analysis settings loaded from
// filetrace.yml.
type ProjectConfig struct {
	ExcludeDirs []string `yaml:"excludeDirs,omitempty"`
	Languages   []string `yaml:"languages,omitempty"`
	MaxDepth    int      `yaml:"maxDepth,omitempty"`
	FollowKuzu  bool     `yaml:"followKuzu,omitempty"`
}

// LoadProjectConfig reads filetrace.yml or filetrace.yaml from dir. A
// missing file is not an error: it returns a zero-value ProjectConfig.
func LoadProjectConfig(dir string) (*ProjectConfig, error) {
	for _, name := range []string{"filetrace.yml", "filetrace.yaml"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			continue
		}
		var cfg ProjectConfig
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, err
		}
		return &cfg, nil
	}
	return &ProjectConfig{}, nil
}
