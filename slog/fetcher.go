// Package slog provides logging decorators for seofetch services using
// log/slog. Core packages never log directly; the CLI wraps services with
// these decorators when verbose output is requested.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/seofetch"
)

// Ensure LoggingFetcher implements seofetch.Fetcher.
var _ seofetch.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with debug logging.
type LoggingFetcher struct {
	next   seofetch.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next seofetch.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the operation.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (resp *seofetch.Response, err error) {
	defer func(begin time.Time) {
		attrs := []any{"url", url, "duration", time.Since(begin)}
		if resp != nil {
			attrs = append(attrs,
				"status", resp.StatusCode,
				"final_url", resp.FinalURL,
				"bytes", len(resp.Body),
			)
		}
		if err != nil {
			attrs = append(attrs, "err", err)
		}
		f.logger.Info("fetch", attrs...)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
