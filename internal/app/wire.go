package app

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"voxel.cafe/parley/internal/config"
	"voxel.cafe/parley/internal/langdetect"
	"voxel.cafe/parley/internal/language"
	"voxel.cafe/parley/internal/translation"
)

// buildGateway wires the language table, provider registry, and gateway
// from configuration. The gateway is handed to callers fully constructed;
// nothing here relies on ambient globals.
func buildGateway(cfg *config.Config, logger zerolog.Logger) (*translation.Gateway, error) {
	table := language.DefaultTable()
	if path := strings.TrimSpace(cfg.LanguageTablePath); path != "" {
		loaded, err := language.LoadTableFile(path)
		if err != nil {
			return nil, fmt.Errorf("load language table: %w", err)
		}
		table = loaded
		logger.Info().Str("path", path).Int("entries", len(table.Entries())).Msg("loaded external language table")
	}

	registry := translation.NewRegistry(cfg.Provider)
	if err := registry.Register(translation.NewGoogleProvider(cfg.GoogleEndpoint, cfg.ProviderTimeout)); err != nil {
		return nil, fmt.Errorf("register google provider: %w", err)
	}
	if err := registry.Register(translation.NewLLMProvider(cfg.LLMEndpoint, cfg.LLMAPIKey, cfg.LLMModel, table)); err != nil {
		return nil, fmt.Errorf("register llm provider: %w", err)
	}

	gateway := translation.NewGateway(registry, table, translation.GatewayOptions{
		MaxTextLength:           cfg.MaxTextLength,
		Provider:                cfg.Provider,
		DetectFallback:          langdetect.Detect,
		BreakerFailureThreshold: cfg.BreakerThreshold,
		BreakerCooldown:         cfg.BreakerCooldown,
		Logger:                  logger,
	})
	return gateway, nil
}
