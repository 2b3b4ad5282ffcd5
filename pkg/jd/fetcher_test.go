package jd

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestResolveLiteralText(t *testing.T) {
	content, err := Resolve(context.Background(), "  We need a Go engineer.  ")
	if err != nil {
		t.Fatalf("Failed to resolve literal text: %v", err)
	}
	if content != "We need a Go engineer." {
		t.Errorf("Expected trimmed literal text, got %q", content)
	}
}

func TestResolveEmptyInput(t *testing.T) {
	_, err := Resolve(context.Background(), "   ")
	if !errors.Is(err, ErrFetchFailure) {
		t.Errorf("Expected ErrFetchFailure for empty input, got %v", err)
	}
}

func TestResolveURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") == "" {
			t.Error("Expected a User-Agent header on the fetch request")
		}
		_, _ = w.Write([]byte(`<html><head><style>body { color: red; }</style>
<script>alert("hi")</script></head>
<body><h1>Go Engineer</h1><p>Build backend services.</p></body></html>`))
	}))
	defer server.Close()

	content, err := Resolve(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Failed to resolve URL: %v", err)
	}

	if !strings.Contains(content, "Go Engineer") {
		t.Errorf("Expected page text in content, got %q", content)
	}
	if !strings.Contains(content, "Build backend services.") {
		t.Errorf("Expected body text in content, got %q", content)
	}
	if strings.Contains(content, "alert") {
		t.Error("Expected script content to be stripped")
	}
	if strings.Contains(content, "color: red") {
		t.Error("Expected style content to be stripped")
	}
	if strings.Contains(content, "<h1>") {
		t.Error("Expected HTML tags to be stripped")
	}
}

func TestResolveURLErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	_, err := Resolve(context.Background(), server.URL)
	if !errors.Is(err, ErrFetchFailure) {
		t.Errorf("Expected ErrFetchFailure for non-200 response, got %v", err)
	}
}

func TestStripBasicHTML(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain text", "hello", "hello"},
		{"simple tags", "<p>hello</p>", "hello"},
		{"nested script removed", "a<script>var x = 1;</script>b", "ab"},
		{"unclosed script kept", "a<script>var x = 1;", "avar x = 1;"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := stripBasicHTML(tc.input)
			if got != tc.expected {
				t.Errorf("stripBasicHTML(%q) = %q, want %q", tc.input, got, tc.expected)
			}
		})
	}
}
