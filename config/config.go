package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"shift-tracker/internal/model"
)

type Config struct {
	TelegramToken string  `yaml:"telegram_token"`
	DBPath        string  `yaml:"db_path"`
	LogLevel      string  `yaml:"log_level"`
	Timezone      string  `yaml:"timezone"`
	HourlyRate    float64 `yaml:"hourly_rate"`
	// OwnerID, when set, is the only Telegram user the bot answers.
	OwnerID int64 `yaml:"owner_id"`
}

func DefaultConfig() *Config {
	return &Config{
		DBPath:     "shift-tracker.db",
		LogLevel:   "info",
		HourlyRate: model.DefaultHourlyRate,
	}
}

// LoadConfig reads .env if present, then the YAML file at path (or
// $SHIFT_TRACKER_CONFIG), then environment overrides. A missing file is not
// an error.
func LoadConfig(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := DefaultConfig()
	if path == "" {
		path = os.Getenv("SHIFT_TRACKER_CONFIG")
	}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if _, err := cfg.Location(); err != nil {
		return nil, err
	}
	if cfg.HourlyRate < 0 {
		return nil, fmt.Errorf("hourly rate cannot be negative: %v", cfg.HourlyRate)
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("TELEGRAM_TOKEN"); v != "" {
		c.TelegramToken = v
	}
	if v := os.Getenv("SHIFT_TRACKER_DB"); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv("SHIFT_TRACKER_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("SHIFT_TRACKER_TZ"); v != "" {
		c.Timezone = v
	}
	if v := os.Getenv("SHIFT_TRACKER_HOURLY_RATE"); v != "" {
		rate, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("SHIFT_TRACKER_HOURLY_RATE: %w", err)
		}
		c.HourlyRate = rate
	}
	if v := os.Getenv("SHIFT_TRACKER_OWNER_ID"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("SHIFT_TRACKER_OWNER_ID: %w", err)
		}
		c.OwnerID = id
	}
	return nil
}

// Location resolves Timezone; empty means the machine's local zone.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// RequireToken reports ErrNoToken when the bot has nothing to log in with.
func (c *Config) RequireToken() error {
	if c.TelegramToken == "" {
		return ErrNoToken{}
	}
	return nil
}

type ErrNoToken struct{}

func (e ErrNoToken) Error() string {
	return "TELEGRAM_TOKEN is not set"
}
