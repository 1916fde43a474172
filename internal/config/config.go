package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds client configuration
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Storage  StorageConfig  `yaml:"storage"`
	Log      LogConfig      `yaml:"log"`
	Schedule ScheduleConfig `yaml:"schedule"`
}

// ServerConfig holds API connection settings
type ServerConfig struct {
	URL       string        `yaml:"url"`
	Timeout   time.Duration `yaml:"timeout"`
	RateLimit float64       `yaml:"rate_limit"` // запросов в секунду, 0 без ограничения
	RateBurst int           `yaml:"rate_burst"`
}

// StorageConfig holds local session storage settings
type StorageConfig struct {
	Path string `yaml:"path"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// ScheduleConfig holds schedule view settings
type ScheduleConfig struct {
	Timezone string `yaml:"timezone"` // IANA имя, "Local" для зоны системы
}

// Default returns sensible defaults
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			URL:       "http://localhost:3333",
			Timeout:   30 * time.Second,
			RateLimit: 10,
			RateBurst: 5,
		},
		Storage: StorageConfig{
			Path: "gobarber-client.db",
		},
		Log: LogConfig{
			Level: "info",
		},
		Schedule: ScheduleConfig{
			Timezone: "Local",
		},
	}
}

// Load собирает конфигурацию: значения по умолчанию, затем YAML файл
// (если path не пустой и файл существует), затем .env и переменные
// окружения GOBARBER_*.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// Нет файла, остаются значения по умолчанию
		case err != nil:
			return nil, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	// .env не обязателен; уже заданные переменные окружения не перезаписываются
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("GOBARBER_SERVER_URL"); v != "" {
		c.Server.URL = v
	}
	if v := os.Getenv("GOBARBER_SERVER_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("GOBARBER_SERVER_TIMEOUT: %w", err)
		}
		c.Server.Timeout = d
	}
	if v := os.Getenv("GOBARBER_RATE_LIMIT"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("GOBARBER_RATE_LIMIT: %w", err)
		}
		c.Server.RateLimit = f
	}
	if v := os.Getenv("GOBARBER_DB"); v != "" {
		c.Storage.Path = v
	}
	if v := os.Getenv("GOBARBER_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("GOBARBER_TIMEZONE"); v != "" {
		c.Schedule.Timezone = v
	}
	return nil
}

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	if !strings.HasPrefix(c.Server.URL, "http://") && !strings.HasPrefix(c.Server.URL, "https://") {
		return fmt.Errorf("server url must start with http:// or https://, got %q", c.Server.URL)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("server timeout must be positive")
	}
	if c.Server.RateLimit < 0 {
		return fmt.Errorf("rate limit must not be negative")
	}
	if c.Storage.Path == "" {
		return fmt.Errorf("storage path cannot be empty")
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// LogLevel разбирает уровень логирования
func (c *Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q", c.Log.Level)
	}
	return level, nil
}

// Location возвращает часовой пояс расписания
func (c *Config) Location() (*time.Location, error) {
	if c.Schedule.Timezone == "" || c.Schedule.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Schedule.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Schedule.Timezone, err)
	}
	return loc, nil
}
