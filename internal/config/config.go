// Package config loads the application configuration from an optional YAML
// file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"levelup/internal/domain"
)

// Store drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
	DriverMemory   = "memory"
)

// Config is the full application configuration.
type Config struct {
	Addr        string        `yaml:"addr"`
	WebDir      string        `yaml:"web_dir"`
	Timezone    string        `yaml:"timezone"`
	ProfileName string        `yaml:"profile_name"`
	ToastTTL    time.Duration `yaml:"toast_ttl"`
	Log         LogConfig     `yaml:"log"`
	Store       StoreConfig   `yaml:"store"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// StoreConfig selects and configures the blob store.
type StoreConfig struct {
	Driver      string      `yaml:"driver"`
	SQLitePath  string      `yaml:"sqlite_path"`
	PostgresDSN string      `yaml:"postgres_dsn"`
	Redis       RedisConfig `yaml:"redis"`
}

// RedisConfig holds the Redis connection settings.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Prefix   string `yaml:"prefix"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Addr:        ":8080",
		Timezone:    "Local",
		ProfileName: domain.DefaultProfileName,
		ToastTTL:    5 * time.Second,
		Log:         LogConfig{Level: "info"},
		Store: StoreConfig{
			Driver: DriverSQLite,
			Redis:  RedisConfig{Prefix: "levelup:"},
		},
	}
}

// Load reads path over the defaults, then applies environment overrides.
// An empty path or a missing file leaves the defaults in place.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

// GetEnv returns the environment value of key or fallback when unset.
func GetEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func (c *Config) applyEnv() error {
	c.Addr = GetEnv("LEVELUP_ADDR", c.Addr)
	c.WebDir = GetEnv("WEB_DIR", c.WebDir)
	c.Timezone = GetEnv("LEVELUP_TIMEZONE", c.Timezone)
	c.Log.Level = GetEnv("LEVELUP_LOG_LEVEL", c.Log.Level)
	c.Store.Driver = GetEnv("LEVELUP_STORE", c.Store.Driver)
	c.Store.SQLitePath = GetEnv("LEVELUP_SQLITE_PATH", c.Store.SQLitePath)
	c.Store.PostgresDSN = GetEnv("DATABASE_URL", c.Store.PostgresDSN)
	c.Store.Redis.Addr = GetEnv("REDIS_ADDR", c.Store.Redis.Addr)
	c.Store.Redis.Password = GetEnv("REDIS_PASSWORD", c.Store.Redis.Password)
	if v := os.Getenv("REDIS_DB"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("REDIS_DB: %w", err)
		}
		c.Store.Redis.DB = n
	}
	return nil
}

// Location resolves the configured timezone.
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("timezone: %w", err)
	}
	return loc, nil
}

// Validate checks the configuration for consistency.
func (c Config) Validate() error {
	switch c.Store.Driver {
	case DriverSQLite, DriverMemory:
	case DriverPostgres:
		if c.Store.PostgresDSN == "" {
			return errors.New("store.postgres_dsn (or DATABASE_URL) is required for the postgres driver")
		}
	case DriverRedis:
		if c.Store.Redis.Addr == "" {
			return errors.New("store.redis.addr (or REDIS_ADDR) is required for the redis driver")
		}
	default:
		return fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}
	if c.ToastTTL <= 0 {
		return errors.New("toast_ttl must be positive")
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}
