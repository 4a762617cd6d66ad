package translation

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"voxel.cafe/parley/internal/language"
)

// DefaultLLMModel is used when no model is configured.
const DefaultLLMModel = openai.GPT4oMini

// LLMProvider translates text through an OpenAI-compatible chat completions
// endpoint. It performs no language detection of its own.
type LLMProvider struct {
	client *openai.Client
	model  string
	table  *language.Table
}

// NewLLMProvider builds an LLM provider. An empty endpoint uses the OpenAI
// default; an empty model falls back to DefaultLLMModel. The table supplies
// display names for prompts.
func NewLLMProvider(endpoint, apiKey, model string, table *language.Table) *LLMProvider {
	cfg := openai.DefaultConfig(apiKey)
	if trimmed := strings.TrimSpace(endpoint); trimmed != "" {
		cfg.BaseURL = trimmed
	}
	resolvedModel := strings.TrimSpace(model)
	if resolvedModel == "" {
		resolvedModel = DefaultLLMModel
	}
	if table == nil {
		table = language.DefaultTable()
	}
	return &LLMProvider{
		client: openai.NewClientWithConfig(cfg),
		model:  resolvedModel,
		table:  table,
	}
}

func (p *LLMProvider) Name() string {
	return "llm"
}

// ModelName returns the configured model identifier.
func (p *LLMProvider) ModelName() string {
	if p == nil {
		return ""
	}
	return p.model
}

func (p *LLMProvider) Translate(ctx context.Context, req Request) (*Result, error) {
	if p == nil {
		return nil, fmt.Errorf("llm provider is nil")
	}

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: p.buildPrompt(req),
			},
		},
		Temperature: 0.3,
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("chat completion returned no choices")
	}

	translated := strings.TrimSpace(resp.Choices[0].Message.Content)
	if translated == "" {
		return nil, fmt.Errorf("chat completion returned empty text")
	}

	return &Result{
		Text:         translated,
		TargetLang:   req.TargetLang,
		ProviderName: p.Name(),
	}, nil
}

func (p *LLMProvider) buildPrompt(req Request) string {
	target := p.table.DisplayName(req.TargetLang)
	if language.IsAuto(req.SourceLang) || strings.TrimSpace(req.SourceLang) == "" {
		return fmt.Sprintf("Translate the following text into %s. Respond with only the translation, nothing else.\n\n%s", target, req.Text)
	}
	source := p.table.DisplayName(req.SourceLang)
	return fmt.Sprintf("Translate the following %s text into %s. Respond with only the translation, nothing else.\n\n%s", source, target, req.Text)
}
