// Package config loads server configuration from defaults, an optional YAML
// file and JOBBOARD_-prefixed environment variables, in that priority order.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// ConfigFileName is the name of the config file.
const ConfigFileName = "jobboard.yaml"

// ConfigFileNameAlt is the alternate name of the config file.
const ConfigFileNameAlt = "jobboard.yml"

type Config struct {
	Addr        string        `koanf:"addr"`
	DatabaseDSN string        `koanf:"database_dsn"`
	TokenSecret string        `koanf:"token_secret"`
	TokenTTL    time.Duration `koanf:"token_ttl"`
	LogLevel    string        `koanf:"log_level"`
}

// Load builds the configuration. cfgFile may be empty, in which case
// jobboard.yaml / jobboard.yml in the working directory is used if present.
func Load(cfgFile string) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"addr":      ":3001",
		"token_ttl": "24h",
		"log_level": "info",
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file
	configPath := findConfigFile(cfgFile)
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", configPath, err)
		}
	}

	// 3. Environment variables: JOBBOARD_DATABASE_DSN -> database_dsn
	if err := k.Load(env.Provider("JOBBOARD_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "JOBBOARD_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.TokenSecret == "" {
		return nil, fmt.Errorf("token_secret must be set")
	}
	if cfg.DatabaseDSN == "" {
		return nil, fmt.Errorf("database_dsn must be set")
	}

	return &cfg, nil
}

// findConfigFile resolves the config file to use. Priority: explicit path >
// jobboard.yaml > jobboard.yml. Returns empty string if none exists.
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if _, err := os.Stat(ConfigFileName); err == nil {
		return ConfigFileName
	}
	if _, err := os.Stat(ConfigFileNameAlt); err == nil {
		return ConfigFileNameAlt
	}
	return ""
}
