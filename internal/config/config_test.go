package config

import (
	"testing"
	"time"
)

func validConfig() Config {
	return Config{
		Environment:       "local",
		LogLevel:          "info",
		MaxTextLength:     5000,
		Provider:          "google",
		ProviderTimeout:   30 * time.Second,
		BreakerThreshold:  5,
		DefaultSourceLang: "en",
		DefaultTargetLang: "tr",
		MaxBackgrounds:    10,
	}
}

func TestValidateAcceptsDefaults(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
}

func TestValidateRejectsBadBounds(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.MaxTextLength = 0
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for MAX_TEXT_LENGTH=0")
	}

	cfg = validConfig()
	cfg.ProviderTimeout = 0
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for zero timeout")
	}

	cfg = validConfig()
	cfg.DefaultTargetLang = "  "
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for blank default target language")
	}

	cfg = validConfig()
	cfg.BreakerThreshold = -1
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for negative breaker threshold")
	}
}

func TestValidateChecksLanguageTablePath(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.LanguageTablePath = "/does/not/exist.json"
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for missing language table file")
	}
}
