package translation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/sony/gobreaker"

	"voxel.cafe/parley/internal/language"
)

// DefaultMaxTextLength bounds translatable input, in runes.
const DefaultMaxTextLength = 5000

// GatewayOptions configures a Gateway.
type GatewayOptions struct {
	// MaxTextLength bounds input length in runes; non-positive values
	// select DefaultMaxTextLength.
	MaxTextLength int
	// Provider selects the registry entry to use; empty selects the
	// registry default.
	Provider string
	// DetectFallback reports a language code for a text sample when the
	// provider does not. Optional.
	DetectFallback func(text string) string
	// BreakerFailureThreshold trips the circuit after this many
	// consecutive provider failures; non-positive disables the breaker.
	BreakerFailureThreshold int
	// BreakerCooldown is how long an open circuit stays open before a
	// half-open probe; non-positive uses the gobreaker default.
	BreakerCooldown time.Duration
	Logger          zerolog.Logger
}

// Gateway owns input validation, provider invocation, and error mapping.
// One provider handle is resolved lazily on first use and reused for the
// process lifetime; each Translate call makes exactly one provider attempt.
type Gateway struct {
	registry *Registry
	table    *language.Table
	opts     GatewayOptions

	handleOnce  sync.Once
	provider    Provider
	providerErr error

	breaker *gobreaker.CircuitBreaker
}

// NewGateway builds a Gateway over an explicit provider registry and
// language table.
func NewGateway(registry *Registry, table *language.Table, opts GatewayOptions) *Gateway {
	if opts.MaxTextLength <= 0 {
		opts.MaxTextLength = DefaultMaxTextLength
	}
	if table == nil {
		table = language.DefaultTable()
	}

	g := &Gateway{
		registry: registry,
		table:    table,
		opts:     opts,
	}

	if opts.BreakerFailureThreshold > 0 {
		threshold := uint32(opts.BreakerFailureThreshold)
		g.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "translation-provider",
			Timeout: opts.BreakerCooldown,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= threshold
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				opts.Logger.Warn().
					Str("breaker", name).
					Str("from", from.String()).
					Str("to", to.String()).
					Msg("translation breaker state changed")
			},
		})
	}

	return g
}

// Table returns the language table the gateway validates against.
func (g *Gateway) Table() *language.Table {
	return g.table
}

// MaxTextLength returns the configured input bound in runes.
func (g *Gateway) MaxTextLength() int {
	return g.opts.MaxTextLength
}

// Translate validates the request, invokes the provider once, and maps any
// failure into the closed error kind set. It never partially succeeds.
func (g *Gateway) Translate(ctx context.Context, req Request) (*Result, error) {
	if g == nil {
		return nil, serviceUnavailable("Translation service is not initialized.", nil)
	}

	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, invalidInput("Enter some text to translate.")
	}
	if runeCount := utf8.RuneCountInString(text); runeCount > g.opts.MaxTextLength {
		return nil, invalidInput(fmt.Sprintf("Text is too long: %d characters (limit %d).", runeCount, g.opts.MaxTextLength))
	}

	autoDetect := language.IsAuto(req.SourceLang)
	sourceLang := language.Auto
	if !autoDetect {
		entry, ok := g.table.Resolve(req.SourceLang)
		if !ok {
			return nil, unknownLanguage(fmt.Sprintf("Unknown source language %q.", strings.TrimSpace(req.SourceLang)))
		}
		sourceLang = entry.Code
	}

	targetEntry, ok := g.table.Resolve(req.TargetLang)
	if !ok || language.IsAuto(req.TargetLang) {
		return nil, unknownLanguage(fmt.Sprintf("Unknown target language %q.", strings.TrimSpace(req.TargetLang)))
	}
	targetLang := targetEntry.Code

	provider, err := g.providerHandle()
	if err != nil {
		return nil, serviceUnavailable(
			"Translation provider is not available. Check the TRANSLATION_PROVIDER setting and provider credentials, then restart.",
			err,
		)
	}

	result, err := g.callProvider(ctx, provider, Request{
		Text:       text,
		SourceLang: sourceLang,
		TargetLang: targetLang,
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, translationFailed("Translation is temporarily paused after repeated provider failures. Try again shortly.", err)
		}
		g.opts.Logger.Error().Err(err).Str("provider", provider.Name()).Msg("provider call failed")
		return nil, translationFailed("Could not reach the translation service. Check your connection and try again.", err)
	}
	if result == nil || strings.TrimSpace(result.Text) == "" {
		return nil, translationFailed("The translation service returned an empty result.", nil)
	}

	detected := language.NormalizeTag(result.DetectedLang)

	// The public endpoint sometimes echoes the input back instead of
	// failing outright. Treat that as a failure when the detected source
	// differs from the target.
	if detected != "" && detected != targetLang && strings.TrimSpace(result.Text) == text {
		return nil, translationFailed("The translation service returned the original text. This may be a temporary issue or an unsupported language pair.", nil)
	}

	out := &Result{
		Text:         result.Text,
		TargetLang:   targetLang,
		ProviderName: result.ProviderName,
		LatencyMs:    result.LatencyMs,
	}
	if out.ProviderName == "" {
		out.ProviderName = provider.Name()
	}

	if autoDetect {
		out.DetectedLang = detected
		if out.DetectedLang == "" && g.opts.DetectFallback != nil {
			out.DetectedLang = language.NormalizeTag(g.opts.DetectFallback(text))
		}
	}

	return out, nil
}

// providerHandle resolves the provider once. Resolution failures are sticky
// for the process lifetime, matching the one-handle model.
func (g *Gateway) providerHandle() (Provider, error) {
	g.handleOnce.Do(func() {
		if g.registry == nil {
			g.providerErr = fmt.Errorf("no provider registry configured")
			return
		}
		provider, err := g.registry.Provider(g.opts.Provider)
		if err != nil {
			g.providerErr = err
			return
		}
		g.provider = provider
		g.opts.Logger.Debug().Str("provider", provider.Name()).Msg("translation provider handle created")
	})
	return g.provider, g.providerErr
}

func (g *Gateway) callProvider(ctx context.Context, provider Provider, req Request) (*Result, error) {
	if g.breaker == nil {
		return provider.Translate(ctx, req)
	}

	value, err := g.breaker.Execute(func() (interface{}, error) {
		return provider.Translate(ctx, req)
	})
	if err != nil {
		return nil, err
	}
	result, _ := value.(*Result)
	return result, nil
}
