package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/seofetch"
)

// Ensure OutcomeLogger implements seofetch.OutcomeRecorder.
var _ seofetch.OutcomeRecorder = (*OutcomeLogger)(nil)

// OutcomeLogger logs one line per fetch outcome. Blocked results are
// logged at Warn, successes at Info.
type OutcomeLogger struct {
	logger *slog.Logger
}

// NewOutcomeLogger creates a new OutcomeLogger.
func NewOutcomeLogger(logger *slog.Logger) *OutcomeLogger {
	return &OutcomeLogger{logger: logger}
}

// RecordOutcome logs the result.
func (l *OutcomeLogger) RecordOutcome(ctx context.Context, result *seofetch.Result, elapsed time.Duration) {
	if result.Blocked {
		l.logger.WarnContext(ctx, "blocked",
			"url", result.URL,
			"kind", string(result.Kind),
			"reason", result.Reason,
			"duration", elapsed,
		)
		return
	}
	l.logger.InfoContext(ctx, "fetched",
		"url", result.URL,
		"title", result.Document.Title,
		"chars", len([]rune(result.Document.BodyText)),
		"images", len(result.Document.Images),
		"duration", elapsed,
	)
}
