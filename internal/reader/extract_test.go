package reader

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestCleanTextCollapsesWhitespaceAndPreservesParagraphs(t *testing.T) {
	t.Parallel()

	input := "  First   paragraph \n\n Second\tparagraph \r\n\r\nThird line "
	got := CleanText(input)
	want := "First paragraph\n\nSecond paragraph\n\nThird line"
	if got != want {
		t.Fatalf("CleanText mismatch\nwant: %q\ngot:  %q", want, got)
	}
}

func TestTruncateText(t *testing.T) {
	t.Parallel()

	got, truncated := TruncateText("abcdefghijklmnopqrstuvwxyz", 10)
	if !truncated {
		t.Fatalf("expected truncated=true")
	}
	if got != "abcdefghi…" {
		t.Fatalf("unexpected truncated text: %q", got)
	}

	full, wasTruncated := TruncateText("short", 10)
	if wasTruncated {
		t.Fatalf("expected truncated=false for short text")
	}
	if full != "short" {
		t.Fatalf("unexpected short text: %q", full)
	}
}

func TestFetchReadableTextPlainText(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("  Hello   world \n\n Second line "))
	}))
	defer server.Close()

	got, err := FetchReadableText(context.Background(), server.URL, FetchOptions{})
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if got != "Hello world\n\nSecond line" {
		t.Fatalf("unexpected text: %q", got)
	}
}

func TestFetchReadableTextRejectsBadURLsAndStatus(t *testing.T) {
	t.Parallel()

	if _, err := FetchReadableText(context.Background(), "   ", FetchOptions{}); err == nil {
		t.Fatalf("expected error for empty URL")
	}
	if _, err := FetchReadableText(context.Background(), "ftp://example.com/x", FetchOptions{}); err == nil {
		t.Fatalf("expected error for non-http scheme")
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	if _, err := FetchReadableText(context.Background(), server.URL, FetchOptions{}); err == nil {
		t.Fatalf("expected error for 404")
	}
	if _, err := FetchReadableText(context.Background(), server.URL, FetchOptions{}); err == nil || !strings.Contains(err.Error(), "404") {
		t.Fatalf("expected status in error")
	}
}
