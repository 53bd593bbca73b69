// Package config loads application configuration from a YAML file with
// environment-variable fallbacks.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the whole application configuration.
type Config struct {
	Listen    string `yaml:"listen"`
	MapPath   string `yaml:"map_path"`
	StaticDir string `yaml:"static_dir"`
	LogLevel  string `yaml:"log_level"`
}

// Default returns the configuration used when no file or env overrides
// are present.
func Default() Config {
	return Config{
		Listen:   ":8080",
		MapPath:  "map.json",
		LogLevel: "info",
	}
}

// Load reads the YAML file at path over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	cfg.applyEnv()
	return cfg, nil
}

// LoadOrEnv loads the file if it exists, otherwise defaults plus env.
func LoadOrEnv(path string) Config {
	if _, err := os.Stat(path); err == nil {
		if cfg, err := Load(path); err == nil {
			return cfg
		}
	}
	cfg := Default()
	cfg.applyEnv()
	return cfg
}

func (c *Config) applyEnv() {
	if v := os.Getenv("MARI_LISTEN"); v != "" {
		c.Listen = v
	}
	if v := os.Getenv("MARI_MAP_PATH"); v != "" {
		c.MapPath = v
	}
	if v := os.Getenv("MARI_STATIC_DIR"); v != "" {
		c.StaticDir = v
	}
	if v := os.Getenv("MARI_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
}
