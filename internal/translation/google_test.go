package translation

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGoogleProviderParsesSegmentsAndDetection(t *testing.T) {
	t.Parallel()

	var gotForm map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		gotForm = map[string]string{
			"client": r.PostFormValue("client"),
			"sl":     r.PostFormValue("sl"),
			"tl":     r.PostFormValue("tl"),
			"q":      r.PostFormValue("q"),
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[[["Bonjour ","Hello ",null,null,1],["le monde","world",null,null,1]],null,"en"]`))
	}))
	defer server.Close()

	provider := NewGoogleProvider(server.URL, 0)
	result, err := provider.Translate(context.Background(), Request{
		Text:       "Hello world",
		SourceLang: "auto",
		TargetLang: "fr",
	})
	if err != nil {
		t.Fatalf("translate: %v", err)
	}
	if result.Text != "Bonjour le monde" {
		t.Fatalf("unexpected text: %q", result.Text)
	}
	if result.DetectedLang != "en" {
		t.Fatalf("unexpected detected language: %q", result.DetectedLang)
	}
	if result.TargetLang != "fr" {
		t.Fatalf("unexpected target: %q", result.TargetLang)
	}

	if gotForm["client"] != "gtx" || gotForm["sl"] != "auto" || gotForm["tl"] != "fr" || gotForm["q"] != "Hello world" {
		t.Fatalf("unexpected request form: %+v", gotForm)
	}
}

func TestGoogleProviderExplicitSourceHasNullDetection(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[[["Bonjour","Hello",null,null,1]],null,null]`))
	}))
	defer server.Close()

	provider := NewGoogleProvider(server.URL, 0)
	result, err := provider.Translate(context.Background(), Request{
		Text:       "Hello",
		SourceLang: "en",
		TargetLang: "fr",
	})
	if err != nil {
		t.Fatalf("translate: %v", err)
	}
	if result.DetectedLang != "" {
		t.Fatalf("expected empty detection, got %q", result.DetectedLang)
	}
}

func TestGoogleProviderRejectsErrorStatusAndGarbage(t *testing.T) {
	t.Parallel()

	rateLimited := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer rateLimited.Close()

	provider := NewGoogleProvider(rateLimited.URL, 0)
	if _, err := provider.Translate(context.Background(), Request{Text: "x", TargetLang: "fr"}); err == nil {
		t.Fatalf("expected error for 429 response")
	}

	garbage := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html>captcha</html>`))
	}))
	defer garbage.Close()

	provider = NewGoogleProvider(garbage.URL, 0)
	if _, err := provider.Translate(context.Background(), Request{Text: "x", TargetLang: "fr"}); err == nil {
		t.Fatalf("expected error for non-JSON response")
	}
}

func TestParseGooglePayloadRequiresText(t *testing.T) {
	t.Parallel()

	if _, _, err := parseGooglePayload([]byte(`[[],null,"en"]`)); err == nil {
		t.Fatalf("expected error for payload without text")
	}
	if _, _, err := parseGooglePayload([]byte(`[]`)); err == nil {
		t.Fatalf("expected error for empty payload")
	}
}
