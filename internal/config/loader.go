// Package config builds one Config from three layers, lowest precedence
// first:
//
//  1. optional .env file in the working directory,
//  2. optional YAML file (LEADBOARD_CONFIG, default conf/config.yaml),
//  3. environment variables prefixed LEADBOARD_, where "__" separates
//     sections (LEADBOARD_HTTP__LISTEN_ADDR -> http.listen_addr).
//
// DATABASE_URL is still honored when database.url is not set.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	koanf "github.com/knadh/koanf/v2"
)

const (
	envPrefix       = "LEADBOARD_"
	defaultYAMLPath = "conf/config.yaml"
)

var defaults = map[string]any{
	"http.listen_addr":     ":8080",
	"http.allowed_origins": []string{"*"},
	"storage.driver":       "postgres",
	"database.max_open":    10,
	"database.max_idle":    5,
	"database.migrate":     true,
	"log.level":            "info",
	"stats.interval":       "1m",
}

// Load reads .env, then the YAML file named by LEADBOARD_CONFIG.
func Load() (*Config, error) {
	_ = godotenv.Load()

	path := os.Getenv("LEADBOARD_CONFIG")
	if path == "" {
		path = defaultYAMLPath
	}
	return LoadFile(path)
}

// LoadFile is Load without the .env step. A missing YAML file is not an
// error.
func LoadFile(yamlPath string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("config defaults: %w", err)
	}

	if yamlPath != "" {
		if _, err := os.Stat(yamlPath); err == nil {
			if err := k.Load(file.Provider(yamlPath), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("config yaml %s: %w", yamlPath, err)
			}
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config yaml %s: %w", yamlPath, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("config env overlay: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("config unmarshal: %w", err)
	}

	if cfg.Database.URL == "" {
		cfg.Database.URL = os.Getenv("DATABASE_URL")
	}

	if err := validateStruct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return &cfg, nil
}

// envKey maps LEADBOARD_HTTP__LISTEN_ADDR to http.listen_addr.
func envKey(s string) string {
	s = strings.TrimPrefix(s, envPrefix)
	return strings.ToLower(strings.ReplaceAll(s, "__", "."))
}
