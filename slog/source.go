package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/seofetch"
)

// Ensure LoggingURLSource implements seofetch.URLSource.
var _ seofetch.URLSource = (*LoggingURLSource)(nil)

// LoggingURLSource wraps a URLSource with debug logging.
type LoggingURLSource struct {
	next   seofetch.URLSource
	logger *slog.Logger
}

// NewLoggingURLSource creates a new LoggingURLSource.
func NewLoggingURLSource(next seofetch.URLSource, logger *slog.Logger) *LoggingURLSource {
	return &LoggingURLSource{next: next, logger: logger}
}

// Discover delegates to the wrapped source and logs the operation.
func (s *LoggingURLSource) Discover(ctx context.Context, keyword string) (urls []string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("candidate discovery",
			"keyword", keyword,
			"count", len(urls),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Discover(ctx, keyword)
}
