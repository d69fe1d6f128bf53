package openai

import (
	"context"
	"errors"
	"net"
	"strings"

	"github.com/poiesic/indexit/ai"
)

// transientMarkers are substrings of API error messages that indicate a
// retryable condition. The OpenAI-compatible client surfaces HTTP
// status codes inside the error text, so string matching is the only
// classification signal available.
var transientMarkers = []string{
	"timeout",
	"timed out",
	"deadline exceeded",
	"rate limit",
	"too many requests",
	"status code: 429",
	"status code: 500",
	"status code: 502",
	"status code: 503",
	"status code: 504",
	"connection refused",
	"connection reset",
	"temporarily unavailable",
	"unexpected eof",
}

// classify wraps retryable API failures in ai.TransientError and passes
// fatal ones (bad credentials, malformed requests) through unchanged.
func classify(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return ai.Transient(err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return ai.Transient(err)
	}

	msg := strings.ToLower(err.Error())
	for _, marker := range transientMarkers {
		if strings.Contains(msg, marker) {
			return ai.Transient(err)
		}
	}

	return err
}
