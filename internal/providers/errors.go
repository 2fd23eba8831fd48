package providers

import (
	"errors"
	"fmt"
	"time"
)

// ErrProviderUnavailable indicates a provider was not wired or has shut down.
var ErrProviderUnavailable = errors.New("provider unavailable")

// ErrNotFound indicates the upstream has no record for the requested key.
// Lookups that 404 should not be retried.
var ErrNotFound = errors.New("not found upstream")

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

// AsRateLimitError attempts to unwrap an error into a RateLimitError.
func AsRateLimitError(err error) (*RateLimitError, bool) {
	var rlErr *RateLimitError
	if errors.As(err, &rlErr) {
		return rlErr, true
	}
	return nil, false
}
