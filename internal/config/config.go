package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/forgo/guildstream/internal/model"
)

// Config holds all application configuration
type Config struct {
	Env  string
	Log  LogConfig
	Demo DemoConfig
}

// LogConfig holds structured logging settings
type LogConfig struct {
	Level  string
	Format string // text, json
}

// DemoConfig holds settings for the demonstration run
type DemoConfig struct {
	Skill string
}

// Load reads configuration from environment variables with sensible defaults
func Load() (*Config, error) {
	return &Config{
		Env: getEnv("GUILDSTREAM_ENV", "development"),
		Log: LogConfig{
			Level:  getEnv("GUILDSTREAM_LOG_LEVEL", "warn"),
			Format: getEnv("GUILDSTREAM_LOG_FORMAT", "text"),
		},
		Demo: DemoConfig{
			Skill: getEnv("GUILDSTREAM_DEMO_SKILL", model.SkillArchery.String()),
		},
	}, nil
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Validate checks that all configuration values are present and valid.
// It returns an error describing all validation failures, or nil if valid.
func (c *Config) Validate() error {
	var errs []error

	if c.Env != "development" && c.Env != "production" && c.Env != "test" {
		errs = append(errs, fmt.Errorf("GUILDSTREAM_ENV must be 'development', 'production', or 'test', got '%s'", c.Env))
	}

	if _, err := c.Log.SlogLevel(); err != nil {
		errs = append(errs, fmt.Errorf("GUILDSTREAM_LOG_LEVEL: %w", err))
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		errs = append(errs, fmt.Errorf("GUILDSTREAM_LOG_FORMAT must be 'text' or 'json', got '%s'", c.Log.Format))
	}

	if c.Demo.Skill == "" {
		errs = append(errs, errors.New("GUILDSTREAM_DEMO_SKILL is required"))
	} else if _, err := c.Demo.FilterSkill(); err != nil {
		errs = append(errs, fmt.Errorf("GUILDSTREAM_DEMO_SKILL: %w", err))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// SlogLevel parses the configured level
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return slog.LevelWarn, err
	}
	return level, nil
}

// NewHandler builds the slog handler described by the config
func (l LogConfig) NewHandler(w io.Writer) slog.Handler {
	level, err := l.SlogLevel()
	if err != nil {
		level = slog.LevelWarn
	}
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(l.Format, "json") {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

// FilterSkill resolves the skill the demo filters by
func (d DemoConfig) FilterSkill() (model.Skill, error) {
	return model.ParseSkill(d.Skill)
}

// Helper functions for reading environment variables

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
