package providers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	crerr "github.com/cockroachdb/errors"
)

var (
	// ErrProviderUnavailable is returned when no upstream provider is configured.
	ErrProviderUnavailable = errors.New("provider unavailable")
	// ErrTransport marks failures reaching the upstream (dial, TLS, timeouts, canceled requests).
	ErrTransport = errors.New("provider transport failure")
	// ErrProtocol marks responses with an unexpected status.
	ErrProtocol = errors.New("provider protocol error")
	// ErrDecode marks response bodies that do not match the expected schema.
	ErrDecode = errors.New("provider decode failure")
	// ErrNotFound marks 404 responses. It is also an ErrProtocol.
	ErrNotFound = errors.New("provider resource not found")
)

// StatusError captures an unexpected upstream HTTP status.
type StatusError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: unexpected status %d", e.Provider, e.StatusCode)
	}
	return fmt.Sprintf("%s: unexpected status %d: %s", e.Provider, e.StatusCode, e.Body)
}

// Is lets errors.Is match the protocol and not-found categories.
func (e *StatusError) Is(target error) bool {
	switch target {
	case ErrProtocol:
		return true
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	}
	return false
}

// RateLimitError captures rate limit responses from upstream providers.
type RateLimitError struct {
	Provider   string
	StatusCode int
	RetryAfter time.Duration
	Remaining  string
	Message    string
}

func (e *RateLimitError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "provider rate limited"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (status=%d)", msg, e.StatusCode)
	}
	return msg
}

// Is reports rate limits as protocol errors.
func (e *RateLimitError) Is(target error) bool {
	return target == ErrProtocol
}

// AsRateLimitError attempts to unwrap an error into a RateLimitError.
func AsRateLimitError(err error) (*RateLimitError, bool) {
	var rlErr *RateLimitError
	if errors.As(err, &rlErr) {
		return rlErr, true
	}
	return nil, false
}

// markedError carries a cockroachdb mark and answers errors.Is for it.
type markedError struct {
	error
}

func (e markedError) Unwrap() error { return e.error }

func (e markedError) Is(target error) bool { return crerr.Is(e.error, target) }

// Mark tags err with one of the taxonomy sentinels, keeping err as the cause.
// The result matches kind under both errors.Is and crerr.Is.
func Mark(err, kind error) error {
	if err == nil {
		return nil
	}
	return markedError{crerr.Mark(err, kind)}
}

// Is reports whether err belongs to the taxonomy bucket target.
func Is(err, target error) bool {
	return errors.Is(err, target) || crerr.Is(err, target)
}

// Category names the taxonomy bucket of err for logs and metrics.
func Category(err error) string {
	switch {
	case err == nil:
		return "none"
	case Is(err, ErrProviderUnavailable):
		return "unavailable"
	case Is(err, ErrNotFound):
		return "not_found"
	case Is(err, ErrDecode):
		return "decode"
	case Is(err, ErrProtocol):
		if _, ok := AsRateLimitError(err); ok {
			return "rate_limited"
		}
		return "protocol"
	case Is(err, ErrTransport):
		return "transport"
	default:
		return "unknown"
	}
}
