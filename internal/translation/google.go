package translation

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"voxel.cafe/parley/internal/language"
)

const (
	// DefaultGoogleEndpoint is the public web translation endpoint.
	DefaultGoogleEndpoint = "https://translate.googleapis.com/translate_a/single"

	defaultGoogleTimeout = 30 * time.Second
)

// GoogleProvider translates text through the public Google web endpoint
// (the same one browser extensions use; no API key required).
type GoogleProvider struct {
	endpoint string
	client   *http.Client
}

// NewGoogleProvider builds a Google provider. An empty endpoint selects the
// default public endpoint; a non-positive timeout selects the default.
func NewGoogleProvider(endpoint string, timeout time.Duration) *GoogleProvider {
	resolved := strings.TrimSpace(endpoint)
	if resolved == "" {
		resolved = DefaultGoogleEndpoint
	}
	if timeout <= 0 {
		timeout = defaultGoogleTimeout
	}
	return &GoogleProvider{
		endpoint: resolved,
		client:   &http.Client{Timeout: timeout},
	}
}

func (p *GoogleProvider) Name() string {
	return "google"
}

func (p *GoogleProvider) Translate(ctx context.Context, req Request) (*Result, error) {
	if p == nil {
		return nil, fmt.Errorf("google provider is nil")
	}

	source := strings.TrimSpace(req.SourceLang)
	if source == "" {
		source = language.Auto
	}

	form := url.Values{}
	form.Set("client", "gtx")
	form.Set("dt", "t")
	form.Set("sl", source)
	form.Set("tl", req.TargetLang)
	form.Set("q", req.Text)

	started := time.Now()
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("build translate request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("send translate request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read translate response: %w", err)
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, fmt.Errorf("translate endpoint rate limited (status %d)", resp.StatusCode)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("translate endpoint status %d", resp.StatusCode)
	}

	text, detected, err := parseGooglePayload(body)
	if err != nil {
		return nil, err
	}

	return &Result{
		Text:         text,
		DetectedLang: detected,
		TargetLang:   req.TargetLang,
		ProviderName: p.Name(),
		LatencyMs:    time.Since(started).Milliseconds(),
	}, nil
}

// parseGooglePayload decodes the endpoint's positional-array response:
// payload[0] is a list of [translated, original, ...] segments and
// payload[2] is the detected source language.
func parseGooglePayload(body []byte) (text, detected string, err error) {
	var payload []json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", "", fmt.Errorf("decode translate response: %w", err)
	}
	if len(payload) == 0 {
		return "", "", fmt.Errorf("translate response is empty")
	}

	var segments []json.RawMessage
	if err := json.Unmarshal(payload[0], &segments); err != nil {
		return "", "", fmt.Errorf("decode translate segments: %w", err)
	}

	var builder strings.Builder
	for _, rawSegment := range segments {
		var segment []json.RawMessage
		if err := json.Unmarshal(rawSegment, &segment); err != nil || len(segment) == 0 {
			continue
		}
		var part string
		if err := json.Unmarshal(segment[0], &part); err != nil {
			continue
		}
		builder.WriteString(part)
	}

	text = builder.String()
	if strings.TrimSpace(text) == "" {
		return "", "", fmt.Errorf("translate response carried no text")
	}

	if len(payload) > 2 {
		// Detected language slot is null when the source was explicit.
		_ = json.Unmarshal(payload[2], &detected)
	}

	return text, language.NormalizeTag(detected), nil
}
