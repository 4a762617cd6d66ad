package translation

import "context"

// Provider translates free-form text between languages.
type Provider interface {
	Translate(ctx context.Context, req Request) (*Result, error)
	Name() string
}

// Request describes one translation request. SourceLang is a translation
// code or the auto-detect sentinel; TargetLang is always a concrete code.
type Request struct {
	Text       string
	SourceLang string
	TargetLang string
}

// Result contains translated text and provider metadata. DetectedLang is
// populated only when the source language was auto-detected.
type Result struct {
	Text         string
	DetectedLang string
	TargetLang   string
	ProviderName string
	LatencyMs    int64
}
