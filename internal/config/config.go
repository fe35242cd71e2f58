// Package config resolves application settings from built-in defaults,
// an optional YAML file and CALC_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/sadeepdeshal/CALCULATOR/internal/logger"
)

const (
	EnvConfigPath = "CALC_CONFIG"
	EnvLogLevel   = "CALC_LOG_LEVEL"
	EnvLogJSON    = "CALC_LOG_JSON"
	EnvFlashMS    = "CALC_FLASH_MS"
	EnvProduction = "CALC_PRODUCTION"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	LogLevel        string        `yaml:"log_level"`
	UseJSONLogging  bool          `yaml:"json_logging"`
	FlashDuration   time.Duration `yaml:"flash_duration"`
	WindowWidth     float32       `yaml:"window_width"`
	WindowHeight    float32       `yaml:"window_height"`
	EventBufferSize int           `yaml:"event_buffer_size"`
}

func DefaultConfig() Config {
	return Config{
		LogLevel:        "info",
		UseJSONLogging:  false,
		FlashDuration:   500 * time.Millisecond,
		WindowWidth:     350,
		WindowHeight:    500,
		EventBufferSize: 256,
	}
}

func ProductionConfig() Config {
	cfg := DefaultConfig()
	cfg.LogLevel = "error"
	cfg.UseJSONLogging = true
	cfg.EventBufferSize = 64
	return cfg
}

// Load builds the configuration. path may be empty, in which case
// CALC_CONFIG is consulted; a missing file is not an error when neither
// names one.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if os.Getenv(EnvProduction) == "true" {
		cfg = ProductionConfig()
	}

	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return Config{}, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("decode config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	if level := os.Getenv(EnvLogLevel); level != "" {
		c.LogLevel = level
	}

	if raw := os.Getenv(EnvLogJSON); raw != "" {
		useJSON, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvLogJSON, raw, ErrInvalidConfig)
		}
		c.UseJSONLogging = useJSON
	}

	if raw := os.Getenv(EnvFlashMS); raw != "" {
		ms, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvFlashMS, raw, ErrInvalidConfig)
		}
		c.FlashDuration = time.Duration(ms) * time.Millisecond
	}
	return nil
}

// Validate rejects settings the application cannot run with
func (c Config) Validate() error {
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.FlashDuration <= 0 {
		return fmt.Errorf("%w: flash duration must be positive, got %s", ErrInvalidConfig, c.FlashDuration)
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("%w: window size %.0fx%.0f", ErrInvalidConfig, c.WindowWidth, c.WindowHeight)
	}
	if c.EventBufferSize <= 0 {
		return fmt.Errorf("%w: event buffer size must be positive, got %d", ErrInvalidConfig, c.EventBufferSize)
	}
	return nil
}
