package providers

import (
	"errors"
	"fmt"
	"time"
)

// ErrUpstreamUnavailable marks transport-level failures reaching upstream.
var ErrUpstreamUnavailable = errors.New("upstream unavailable")

// ErrMalformedResponse marks upstream payloads that do not match the
// documented shape.
var ErrMalformedResponse = errors.New("malformed upstream response")

// RateLimitError captures rate limit responses from upstream feeds.
type RateLimitError struct {
	Endpoint   string
	StatusCode int
	RetryAfter time.Duration
	Message    string
}

func (e *RateLimitError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "upstream rate limited"
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
