package httpapi

import (
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/labstack/echo/v4"

	"voxel.cafe/parley/internal/language"
	"voxel.cafe/parley/internal/reader"
	"voxel.cafe/parley/internal/translation"
)

type translateRequest struct {
	Text       string `json:"text"`
	SourceLang string `json:"source_lang"`
	TargetLang string `json:"target_lang"`
}

type translateResponse struct {
	Text             string `json:"text"`
	DetectedLang     string `json:"detected_lang,omitempty"`
	DetectedLangName string `json:"detected_lang_name,omitempty"`
	TargetLang       string `json:"target_lang"`
	TargetTTSLocale  string `json:"target_tts_locale"`
	Provider         string `json:"provider,omitempty"`
	LatencyMs        int64  `json:"latency_ms,omitempty"`
}

type languageItem struct {
	Name      string `json:"name"`
	Code      string `json:"code"`
	TTSLocale string `json:"tts_locale,omitempty"`
}

type extractRequest struct {
	URL string `json:"url"`
}

func (s *Server) handleTranslate(c echo.Context) error {
	var req translateRequest
	if err := c.Bind(&req); err != nil {
		return failValidation(c, map[string]string{"body": "must be a JSON object"})
	}
	if strings.TrimSpace(req.TargetLang) == "" {
		return failValidation(c, map[string]string{"target_lang": "is required"})
	}

	sourceLang := strings.TrimSpace(req.SourceLang)
	if sourceLang == "" {
		sourceLang = language.Auto
	}

	result, err := s.gateway.Translate(c.Request().Context(), translation.Request{
		Text:       req.Text,
		SourceLang: sourceLang,
		TargetLang: req.TargetLang,
	})
	if err != nil {
		return s.translateError(c, err)
	}

	table := s.gateway.Table()
	resp := translateResponse{
		Text:            result.Text,
		DetectedLang:    result.DetectedLang,
		TargetLang:      result.TargetLang,
		TargetTTSLocale: table.TTSLocale(result.TargetLang),
		Provider:        result.ProviderName,
		LatencyMs:       result.LatencyMs,
	}
	if result.DetectedLang != "" {
		resp.DetectedLangName = table.DisplayName(result.DetectedLang)
	}

	return success(c, resp)
}

// translateError maps the gateway's error kinds onto distinct HTTP statuses
// so the UI can render a specific message per failure class.
func (s *Server) translateError(c echo.Context, err error) error {
	kind := translation.KindOf(err)
	message := translation.UserMessage(err)

	switch kind {
	case translation.KindInvalidInput, translation.KindUnknownLanguage:
		return failWithCode(c, http.StatusBadRequest, kind.String(), message, nil)
	case translation.KindServiceUnavailable:
		return failWithCode(c, http.StatusServiceUnavailable, kind.String(), message, nil)
	case translation.KindTranslationFailed:
		return failWithCode(c, http.StatusBadGateway, kind.String(), message, nil)
	default:
		s.logger.Error().Err(err).Msg("translate failed with unmapped error")
		return internalError(c, "Translation failed unexpectedly")
	}
}

func (s *Server) handleLanguages(c echo.Context) error {
	entries := s.gateway.Table().Entries()
	items := make([]languageItem, 0, len(entries))
	for _, entry := range entries {
		items = append(items, languageItem{
			Name:      entry.Name,
			Code:      entry.Code,
			TTSLocale: entry.TTSLocale,
		})
	}

	return success(c, map[string]any{
		"items":           items,
		"auto_sentinel":   language.Auto,
		"default_source":  s.opts.DefaultSourceLang,
		"default_target":  s.opts.DefaultTargetLang,
		"max_text_length": s.gateway.MaxTextLength(),
	})
}

func (s *Server) handleExtract(c echo.Context) error {
	var req extractRequest
	if err := c.Bind(&req); err != nil {
		return failValidation(c, map[string]string{"body": "must be a JSON object"})
	}
	if strings.TrimSpace(req.URL) == "" {
		return failValidation(c, map[string]string{"url": "is required"})
	}

	text, err := reader.FetchReadableText(c.Request().Context(), req.URL, reader.FetchOptions{})
	if err != nil {
		s.logger.Warn().Err(err).Str("url", req.URL).Msg("readable text extraction failed")
		return fail(c, http.StatusUnprocessableEntity, "Could not extract readable text from that page.", nil)
	}

	clipped, truncated := reader.TruncateText(text, s.gateway.MaxTextLength())
	return success(c, map[string]any{
		"text":      clipped,
		"truncated": truncated,
	})
}

var backgroundExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".webp": {},
	".avif": {},
	".gif":  {},
}

func (s *Server) handleBackgrounds(c echo.Context) error {
	dir := strings.TrimSpace(s.opts.BackgroundsDir)
	if dir == "" {
		return success(c, map[string]any{"items": []string{}})
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		s.logger.Warn().Err(err).Str("dir", dir).Msg("backgrounds directory unreadable")
		return success(c, map[string]any{"items": []string{}})
	}

	items := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if _, ok := backgroundExtensions[ext]; !ok {
			continue
		}
		items = append(items, "/backgrounds/"+entry.Name())
	}
	sort.Strings(items)
	if len(items) > s.opts.MaxBackgrounds {
		items = items[:s.opts.MaxBackgrounds]
	}

	return success(c, map[string]any{"items": items})
}
