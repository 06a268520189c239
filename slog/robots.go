package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/seofetch"
)

// Ensure LoggingRobotsGate implements seofetch.RobotsGate.
var _ seofetch.RobotsGate = (*LoggingRobotsGate)(nil)

// LoggingRobotsGate wraps a RobotsGate with debug logging.
type LoggingRobotsGate struct {
	next   seofetch.RobotsGate
	logger *slog.Logger
}

// NewLoggingRobotsGate creates a new LoggingRobotsGate.
func NewLoggingRobotsGate(next seofetch.RobotsGate, logger *slog.Logger) *LoggingRobotsGate {
	return &LoggingRobotsGate{next: next, logger: logger}
}

// IsAllowed delegates to the wrapped gate and logs the decision.
func (g *LoggingRobotsGate) IsAllowed(ctx context.Context, url, userAgent string) (allowed bool, err error) {
	defer func(begin time.Time) {
		attrs := []any{"url", url, "allowed", allowed, "duration", time.Since(begin)}
		if err != nil {
			attrs = append(attrs, "err", err)
		}
		g.logger.Info("robots check", attrs...)
	}(time.Now())
	return g.next.IsAllowed(ctx, url, userAgent)
}

// Purge forwards to the wrapped gate when it holds a cache.
func (g *LoggingRobotsGate) Purge() {
	if p, ok := g.next.(interface{ Purge() }); ok {
		p.Purge()
	}
}
