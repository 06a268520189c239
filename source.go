package seofetch

import (
	"context"
	"time"
)

// URLSource supplies ranked candidate URLs for a keyword. Genuine search
// engine discovery is out of scope; implementations read candidates from
// files, sitemaps or explicit lists.
type URLSource interface {
	// Discover returns candidate URLs in rank order.
	Discover(ctx context.Context, keyword string) ([]string, error)
}

// OutcomeRecorder observes fetch outcomes, e.g. for metrics or logs.
type OutcomeRecorder interface {
	// RecordOutcome is called once per URL with the final result and the
	// time spent producing it, retries included.
	RecordOutcome(ctx context.Context, result *Result, elapsed time.Duration)
}
