package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	libconfig "evcharge/backend/libs/config"
)

// Config represents service configuration loaded from YAML/env.
type Config struct {
	HTTP struct {
		Port string `yaml:"port" env:"IDENTITY_HTTP_PORT"`
	} `yaml:"http"`
	Database struct {
		DSN string `yaml:"dsn" env:"IDENTITY_POSTGRES_DSN"`
	} `yaml:"database"`
	Redis struct {
		Addr     string `yaml:"addr" env:"IDENTITY_REDIS_ADDR"`
		Password string `yaml:"password" env:"IDENTITY_REDIS_PASSWORD"`
		DB       int    `yaml:"db" env:"IDENTITY_REDIS_DB"`
	} `yaml:"redis"`
	JWT struct {
		Secret           string `yaml:"secret" env:"IDENTITY_JWT_SECRET"`
		ExpiresInMinutes int    `yaml:"expiresInMinutes" env:"IDENTITY_JWT_EXPIRES_MINUTES"`
	} `yaml:"jwt"`
	ResetTokenTTLMinutes int `yaml:"resetTokenTtlMinutes" env:"IDENTITY_RESET_TTL_MINUTES"`
}

// Load reads configuration using the shared config loader.
func Load() (*Config, error) {
	cfg := &Config{ResetTokenTTLMinutes: 30}
	cfg.HTTP.Port = "5100"
	cfg.JWT.ExpiresInMinutes = 60

	if err := libconfig.Load(cfg); err != nil {
		return nil, err
	}

	if cfg.Database.DSN == "" {
		return nil, errors.New("config: database DSN is required")
	}
	if cfg.Redis.Addr == "" {
		return nil, errors.New("config: redis addr is required")
	}
	if cfg.JWT.Secret == "" {
		return nil, errors.New("config: jwt secret is required")
	}
	if cfg.JWT.ExpiresInMinutes <= 0 {
		cfg.JWT.ExpiresInMinutes = 60
	}
	if cfg.ResetTokenTTLMinutes <= 0 {
		cfg.ResetTokenTTLMinutes = 30
	}

	return cfg, nil
}

// HTTPAddress ensures we always return a host:port formatted string.
func (c *Config) HTTPAddress() string {
	port := strings.TrimSpace(c.HTTP.Port)
	if port == "" {
		port = "5100"
	}
	if strings.HasPrefix(port, ":") {
		return port
	}
	return fmt.Sprintf(":%s", port)
}

// JWTExpiration converts the configured expiry to a duration.
func (c *Config) JWTExpiration() time.Duration {
	return time.Duration(c.JWT.ExpiresInMinutes) * time.Minute
}

// ResetTokenTTL converts the configured reset token TTL to a duration.
func (c *Config) ResetTokenTTL() time.Duration {
	return time.Duration(c.ResetTokenTTLMinutes) * time.Minute
}
