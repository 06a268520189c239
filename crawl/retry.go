package crawl

import (
	"context"
	"time"

	"github.com/fwojciec/seofetch"
)

// FetchFunc is the signature for a single-URL fetch.
type FetchFunc func(ctx context.Context, url string) *seofetch.Result

// LogFunc is the signature for a logging function.
type LogFunc func(format string, args ...any)

// DefaultRetryDelays returns the backoff delays for transport retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// FetchWithRetryDelays calls fetch and retries while the result is a
// transport failure, waiting delays[i] before retry i+1. Policy, status
// and content-gate outcomes are returned immediately. If ctx is canceled
// while waiting, the last result is returned.
func FetchWithRetryDelays(ctx context.Context, url string, fetch FetchFunc, logger LogFunc, delays []time.Duration) *seofetch.Result {
	maxAttempts := len(delays) + 1

	var result *seofetch.Result
	for attempt := 0; attempt < maxAttempts; attempt++ {
		result = fetch(ctx, url)
		if !result.Transient() {
			return result
		}

		if attempt >= maxAttempts-1 {
			break
		}

		if ctx.Err() != nil {
			return result
		}

		if logger != nil {
			logger("retry %s (attempt %d): %s", url, attempt+2, result.Reason)
		}

		select {
		case <-ctx.Done():
			return result
		case <-time.After(delays[attempt]):
		}
	}

	return result
}
