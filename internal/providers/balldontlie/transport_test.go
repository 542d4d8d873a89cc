package balldontlie

import (
	"net/http"
	"testing"
	"time"
)

func TestNormalizeBaseURLTrimsTrailingSlashAndDefaults(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{"", defaultBaseURL},
		{"https://api.example.com/", "https://api.example.com"},
		{"https://api.example.com", "https://api.example.com"},
	}

	for _, c := range cases {
		if got := normalizeBaseURL(c.input); got != c.expected {
			t.Fatalf("expected %s, got %s", c.expected, got)
		}
	}
}

func TestResolveHTTPClientDefaultsTimeout(t *testing.T) {
	client := resolveHTTPClient(nil, 0)
	httpClient, ok := client.(*http.Client)
	if !ok {
		t.Fatalf("expected *http.Client, got %T", client)
	}
	if httpClient.Timeout != defaultHTTPTimeout {
		t.Fatalf("expected timeout %s, got %s", defaultHTTPTimeout, httpClient.Timeout)
	}
	if httpClient.Transport == nil {
		t.Fatalf("expected instrumented transport")
	}
}

func TestResolveHTTPClientHonorsTimeout(t *testing.T) {
	client := resolveHTTPClient(nil, 3*time.Second).(*http.Client)
	if client.Timeout != 3*time.Second {
		t.Fatalf("expected 3s timeout, got %s", client.Timeout)
	}
}

func TestResolveHTTPClientUsesProvidedClient(t *testing.T) {
	custom := &http.Client{Timeout: 5 * time.Second}
	client := resolveHTTPClient(custom, 0)
	if client != custom {
		t.Fatalf("expected provided client to be used")
	}
}

func TestResolvePerPage(t *testing.T) {
	if resolvePerPage(0) != 35 || resolvePerPage(-1) != 35 || resolvePerPage(10) != 10 {
		t.Fatal("unexpected per page resolution")
	}
}
