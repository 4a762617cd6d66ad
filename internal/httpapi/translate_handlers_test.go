package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"voxel.cafe/parley/internal/language"
	"voxel.cafe/parley/internal/translation"
)

type stubGateway struct {
	result *translation.Result
	err    error
	calls  int
	last   translation.Request
}

func (g *stubGateway) Translate(_ context.Context, req translation.Request) (*translation.Result, error) {
	g.calls++
	g.last = req
	if g.err != nil {
		return nil, g.err
	}
	return g.result, nil
}

func (g *stubGateway) Table() *language.Table {
	return language.DefaultTable()
}

func (g *stubGateway) MaxTextLength() int {
	return 5000
}

func newTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) apiEnvelope {
	t.Helper()

	var envelope apiEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response: %v\nbody: %s", err, rec.Body.String())
	}
	return envelope
}

func TestHandleTranslateSuccess(t *testing.T) {
	t.Parallel()

	gateway := &stubGateway{result: &translation.Result{
		Text:         "Bonjour",
		DetectedLang: "en",
		TargetLang:   "fr",
		ProviderName: "stub",
		LatencyMs:    12,
	}}
	server := NewServer(gateway, zerolog.Nop(), Options{})

	c, rec := newTestContext(t, http.MethodPost, "/api/v1/translate",
		`{"text":"Hello","source_lang":"auto","target_lang":"fr"}`)
	if err := server.handleTranslate(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}

	envelope := decodeEnvelope(t, rec)
	if envelope.Status != "ok" {
		t.Fatalf("unexpected envelope status: %q", envelope.Status)
	}
	data, _ := envelope.Data.(map[string]any)
	if data["text"] != "Bonjour" {
		t.Fatalf("unexpected text: %v", data["text"])
	}
	if data["detected_lang_name"] != "English (UK)" {
		t.Fatalf("unexpected detected language name: %v", data["detected_lang_name"])
	}
	if data["target_tts_locale"] != "fr-FR" {
		t.Fatalf("unexpected TTS locale: %v", data["target_tts_locale"])
	}
	if gateway.last.SourceLang != "auto" {
		t.Fatalf("unexpected source forwarded: %q", gateway.last.SourceLang)
	}
}

func TestHandleTranslateDefaultsEmptySourceToAuto(t *testing.T) {
	t.Parallel()

	gateway := &stubGateway{result: &translation.Result{Text: "Merhaba", TargetLang: "tr"}}
	server := NewServer(gateway, zerolog.Nop(), Options{})

	c, _ := newTestContext(t, http.MethodPost, "/api/v1/translate",
		`{"text":"Hello","target_lang":"tr"}`)
	if err := server.handleTranslate(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if gateway.last.SourceLang != language.Auto {
		t.Fatalf("expected auto source, got %q", gateway.last.SourceLang)
	}
}

func TestHandleTranslateErrorMapping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "invalid input",
			err:        &translation.Error{Kind: translation.KindInvalidInput, Message: "Enter some text to translate."},
			wantStatus: http.StatusBadRequest,
			wantCode:   "invalid_input",
		},
		{
			name:       "unknown language",
			err:        &translation.Error{Kind: translation.KindUnknownLanguage, Message: "Unknown target language."},
			wantStatus: http.StatusBadRequest,
			wantCode:   "unknown_language",
		},
		{
			name:       "service unavailable",
			err:        &translation.Error{Kind: translation.KindServiceUnavailable, Message: "Provider is not configured."},
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   "service_unavailable",
		},
		{
			name:       "translation failed",
			err:        &translation.Error{Kind: translation.KindTranslationFailed, Message: "Could not reach the translation service."},
			wantStatus: http.StatusBadGateway,
			wantCode:   "translation_failed",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			server := NewServer(&stubGateway{err: tc.err}, zerolog.Nop(), Options{})
			c, rec := newTestContext(t, http.MethodPost, "/api/v1/translate",
				`{"text":"Hello","source_lang":"en","target_lang":"fr"}`)
			if err := server.handleTranslate(c); err != nil {
				t.Fatalf("handler: %v", err)
			}
			if rec.Code != tc.wantStatus {
				t.Fatalf("unexpected status: got %d want %d", rec.Code, tc.wantStatus)
			}

			envelope := decodeEnvelope(t, rec)
			if envelope.Status != "error" {
				t.Fatalf("unexpected envelope status: %q", envelope.Status)
			}
			if envelope.Code != tc.wantCode {
				t.Fatalf("unexpected code: got %q want %q", envelope.Code, tc.wantCode)
			}
			if envelope.Message == "" {
				t.Fatalf("expected a human-readable message")
			}
		})
	}
}

func TestHandleTranslateRequiresTarget(t *testing.T) {
	t.Parallel()

	gateway := &stubGateway{result: &translation.Result{Text: "x"}}
	server := NewServer(gateway, zerolog.Nop(), Options{})

	c, rec := newTestContext(t, http.MethodPost, "/api/v1/translate", `{"text":"Hello"}`)
	if err := server.handleTranslate(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	if gateway.calls != 0 {
		t.Fatalf("gateway must not be called without a target language")
	}
}

func TestHandleLanguagesPayload(t *testing.T) {
	t.Parallel()

	server := NewServer(&stubGateway{}, zerolog.Nop(), Options{
		DefaultSourceLang: "en",
		DefaultTargetLang: "tr",
	})

	c, rec := newTestContext(t, http.MethodGet, "/api/v1/languages", "")
	if err := server.handleLanguages(c); err != nil {
		t.Fatalf("handler: %v", err)
	}

	envelope := decodeEnvelope(t, rec)
	data, _ := envelope.Data.(map[string]any)
	if data["auto_sentinel"] != "auto" {
		t.Fatalf("unexpected auto sentinel: %v", data["auto_sentinel"])
	}
	if data["default_target"] != "tr" {
		t.Fatalf("unexpected default target: %v", data["default_target"])
	}
	items, _ := data["items"].([]any)
	if len(items) < 80 {
		t.Fatalf("expected full language table, got %d items", len(items))
	}
}

func TestHandleBackgroundsFiltersAndLimits(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for _, name := range []string{"a.jpg", "b.png", "notes.txt", "c.webp"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatalf("write file: %v", err)
		}
	}

	server := NewServer(&stubGateway{}, zerolog.Nop(), Options{
		BackgroundsDir: dir,
		MaxBackgrounds: 2,
	})

	c, rec := newTestContext(t, http.MethodGet, "/api/v1/backgrounds", "")
	if err := server.handleBackgrounds(c); err != nil {
		t.Fatalf("handler: %v", err)
	}

	envelope := decodeEnvelope(t, rec)
	data, _ := envelope.Data.(map[string]any)
	items, _ := data["items"].([]any)
	if len(items) != 2 {
		t.Fatalf("expected 2 backgrounds after limit, got %d", len(items))
	}
	if items[0] != "/backgrounds/a.jpg" {
		t.Fatalf("unexpected first background: %v", items[0])
	}
}

func TestHandleBackgroundsWithoutDirectory(t *testing.T) {
	t.Parallel()

	server := NewServer(&stubGateway{}, zerolog.Nop(), Options{})
	c, rec := newTestContext(t, http.MethodGet, "/api/v1/backgrounds", "")
	if err := server.handleBackgrounds(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	envelope := decodeEnvelope(t, rec)
	data, _ := envelope.Data.(map[string]any)
	items, _ := data["items"].([]any)
	if len(items) != 0 {
		t.Fatalf("expected no backgrounds, got %d", len(items))
	}
}

func TestHandleExtractRequiresURL(t *testing.T) {
	t.Parallel()

	server := NewServer(&stubGateway{}, zerolog.Nop(), Options{})
	c, rec := newTestContext(t, http.MethodPost, "/api/v1/extract", `{"url":"  "}`)
	if err := server.handleExtract(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
}

func TestNewServerAppliesDefaults(t *testing.T) {
	t.Parallel()

	server := NewServer(&stubGateway{}, zerolog.Nop(), Options{})
	if server.opts.Port != 8050 {
		t.Fatalf("unexpected default port: %d", server.opts.Port)
	}
	if server.opts.DefaultTargetLang != "tr" {
		t.Fatalf("unexpected default target: %q", server.opts.DefaultTargetLang)
	}
	if server.opts.MaxBackgrounds != 10 {
		t.Fatalf("unexpected default background limit: %d", server.opts.MaxBackgrounds)
	}
}
