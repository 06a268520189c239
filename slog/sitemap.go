package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/seofetch"
)

// Ensure LoggingSitemapService implements seofetch.SitemapService.
var _ seofetch.SitemapService = (*LoggingSitemapService)(nil)

// LoggingSitemapService wraps a SitemapService with debug logging.
type LoggingSitemapService struct {
	next   seofetch.SitemapService
	logger *slog.Logger
}

// NewLoggingSitemapService creates a new LoggingSitemapService.
func NewLoggingSitemapService(next seofetch.SitemapService, logger *slog.Logger) *LoggingSitemapService {
	return &LoggingSitemapService{next: next, logger: logger}
}

// DiscoverURLs delegates to the wrapped service and logs the site, the
// number of filter patterns and the URLs kept.
func (s *LoggingSitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *seofetch.URLFilter) (urls []string, err error) {
	defer func(begin time.Time) {
		attrs := []any{"site", baseURL, "patterns", patternCount(filter), "kept", len(urls), "duration", time.Since(begin)}
		if err != nil {
			s.logger.WarnContext(ctx, "sitemap discovery failed", append(attrs, "err", err)...)
			return
		}
		s.logger.InfoContext(ctx, "sitemap discovery", attrs...)
	}(time.Now())
	return s.next.DiscoverURLs(ctx, baseURL, filter)
}

func patternCount(f *seofetch.URLFilter) int {
	if f == nil {
		return 0
	}
	return len(f.Include) + len(f.Exclude)
}
