package config

import (
	"errors"
	"fmt"
	"strings"

	libconfig "evcharge/backend/libs/config"
)

// Config represents service configuration loaded from YAML/env.
type Config struct {
	HTTP struct {
		Port string `yaml:"port" env:"STATION_API_HTTP_PORT"`
	} `yaml:"http"`
	Database struct {
		DSN string `yaml:"dsn" env:"STATION_API_POSTGRES_DSN"`
	} `yaml:"database"`
	Identity struct {
		BaseURL string `yaml:"baseUrl" env:"IDENTITY_BASE_URL"`
	} `yaml:"identity"`
	SeedOnBoot bool `yaml:"seedOnBoot" env:"STATION_API_SEED_ON_BOOT"`
}

// Load reads configuration using the shared config loader.
func Load() (*Config, error) {
	cfg := &Config{SeedOnBoot: true}
	cfg.HTTP.Port = "5000"

	if err := libconfig.Load(cfg); err != nil {
		return nil, err
	}

	if cfg.Database.DSN == "" {
		return nil, errors.New("config: database DSN is required")
	}
	if cfg.Identity.BaseURL == "" {
		return nil, errors.New("config: identity provider base URL is required")
	}

	return cfg, nil
}

// HTTPAddress ensures we always return a host:port formatted string.
func (c *Config) HTTPAddress() string {
	port := strings.TrimSpace(c.HTTP.Port)
	if port == "" {
		port = "5000"
	}
	if strings.HasPrefix(port, ":") {
		return port
	}
	return fmt.Sprintf(":%s", port)
}
