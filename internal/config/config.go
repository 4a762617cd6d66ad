package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Environment string `envconfig:"ENVIRONMENT" default:"local"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`

	// Gateway.
	MaxTextLength     int    `envconfig:"MAX_TEXT_LENGTH" default:"5000"`
	LanguageTablePath string `envconfig:"LANGUAGE_TABLE_PATH" default:""`

	// Provider selection and credentials.
	Provider          string        `envconfig:"TRANSLATION_PROVIDER" default:"google"`
	GoogleEndpoint    string        `envconfig:"GOOGLE_TRANSLATE_ENDPOINT" default:""`
	ProviderTimeout   time.Duration `envconfig:"TRANSLATION_TIMEOUT" default:"30s"`
	LLMEndpoint       string        `envconfig:"TRANSLATION_ENDPOINT" default:""`
	LLMModel          string        `envconfig:"TRANSLATION_MODEL" default:""`
	LLMAPIKey         string        `envconfig:"TRANSLATION_API_KEY" default:""`
	BreakerThreshold  int           `envconfig:"BREAKER_FAILURE_THRESHOLD" default:"5"`
	BreakerCooldown   time.Duration `envconfig:"BREAKER_COOLDOWN" default:"30s"`

	// UI defaults and static assets.
	DefaultSourceLang string `envconfig:"DEFAULT_SOURCE_LANG" default:"en"`
	DefaultTargetLang string `envconfig:"DEFAULT_TARGET_LANG" default:"tr"`
	BackgroundsDir    string `envconfig:"BACKGROUNDS_DIR" default:""`
	FontsDir          string `envconfig:"FONTS_DIR" default:""`
	MaxBackgrounds    int    `envconfig:"MAX_BACKGROUNDS" default:"10"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.MaxTextLength < 1 {
		return fmt.Errorf("MAX_TEXT_LENGTH must be >= 1")
	}
	if c.BreakerThreshold < 0 {
		return fmt.Errorf("BREAKER_FAILURE_THRESHOLD must be >= 0")
	}
	if c.BreakerCooldown < 0 {
		return fmt.Errorf("BREAKER_COOLDOWN must be >= 0")
	}
	if c.MaxBackgrounds < 0 {
		return fmt.Errorf("MAX_BACKGROUNDS must be >= 0")
	}
	if c.ProviderTimeout <= 0 {
		return fmt.Errorf("TRANSLATION_TIMEOUT must be positive")
	}
	if strings.TrimSpace(c.DefaultSourceLang) == "" {
		return fmt.Errorf("DEFAULT_SOURCE_LANG is required")
	}
	if strings.TrimSpace(c.DefaultTargetLang) == "" {
		return fmt.Errorf("DEFAULT_TARGET_LANG is required")
	}
	if path := strings.TrimSpace(c.LanguageTablePath); path != "" {
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("LANGUAGE_TABLE_PATH: %w", err)
		}
	}
	return nil
}
