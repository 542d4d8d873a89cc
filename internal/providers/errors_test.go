package providers

import (
	"errors"
	"fmt"
	"testing"
)

func TestRateLimitErrorString(t *testing.T) {
	err := &RateLimitError{
		Provider:   "p",
		StatusCode: 429,
		Message:    "rate limited",
	}
	if got := err.Error(); got == "" || got == "rate limited" {
		t.Fatalf("expected status in error string, got %q", got)
	}

	rl, ok := AsRateLimitError(fmt.Errorf("wrapped: %w", err))
	if !ok || rl == nil {
		t.Fatalf("expected to unwrap rate limit error")
	}
	if !errors.Is(err, ErrProtocol) {
		t.Fatalf("expected rate limit to be a protocol error")
	}

	noStatus := &RateLimitError{}
	if got := noStatus.Error(); got == "" {
		t.Fatalf("expected fallback message")
	}
}

func TestStatusErrorMatchesCategories(t *testing.T) {
	notFound := fmt.Errorf("get player: %w", &StatusError{Provider: "p", StatusCode: 404})
	if !errors.Is(notFound, ErrNotFound) || !errors.Is(notFound, ErrProtocol) {
		t.Fatalf("expected 404 to match not found and protocol, got %v", notFound)
	}

	serverErr := &StatusError{Provider: "p", StatusCode: 502, Body: "bad gateway"}
	if errors.Is(serverErr, ErrNotFound) {
		t.Fatal("expected 502 not to match not found")
	}
	if got := serverErr.Error(); got != "p: unexpected status 502: bad gateway" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestCategory(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{nil, "none"},
		{ErrProviderUnavailable, "unavailable"},
		{&StatusError{StatusCode: 404}, "not_found"},
		{&StatusError{StatusCode: 500}, "protocol"},
		{&RateLimitError{StatusCode: 429}, "rate_limited"},
		{fmt.Errorf("x: %w", ErrDecode), "decode"},
		{fmt.Errorf("x: %w", ErrTransport), "transport"},
		{errors.New("boom"), "unknown"},
	}
	for _, tc := range cases {
		if got := Category(tc.err); got != tc.want {
			t.Fatalf("Category(%v) = %s, want %s", tc.err, got, tc.want)
		}
	}
}

func TestMarkTagsTaxonomyAndKeepsCause(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	marked := Mark(cause, ErrTransport)

	if !Is(marked, ErrTransport) {
		t.Fatalf("expected marked error to match transport, got %v", marked)
	}
	if Is(marked, ErrDecode) {
		t.Fatal("expected marked error not to match decode")
	}
	if Category(marked) != "transport" {
		t.Fatalf("expected transport category, got %s", Category(marked))
	}
	if marked.Error() != cause.Error() {
		t.Fatalf("expected message to be preserved, got %q", marked.Error())
	}
	if !errors.Is(marked, ErrTransport) || !errors.Is(marked, cause) {
		t.Fatalf("expected errors.Is to match kind and cause, got %v", marked)
	}
	if errors.Is(fmt.Errorf("fetch: %w", marked), ErrDecode) {
		t.Fatal("expected wrapped mark not to match decode")
	}
	if Mark(nil, ErrTransport) != nil {
		t.Fatal("expected nil to stay nil")
	}
}
