package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/fwojciec/seofetch"
	seoslog "github.com/fwojciec/seofetch/slog"
	"github.com/stretchr/testify/assert"
)

func TestOutcomeLogger_RecordOutcome(t *testing.T) {
	t.Parallel()

	t.Run("logs blocked result at warn", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		rec := seoslog.NewOutcomeLogger(logger)

		rec.RecordOutcome(context.Background(),
			seofetch.NewBlocked("https://x.example/", seofetch.KindPolicy, seofetch.ReasonRobotsRestricted),
			time.Millisecond)

		output := buf.String()
		assert.Contains(t, output, "level=WARN")
		assert.Contains(t, output, "msg=blocked")
		assert.Contains(t, output, "kind=policy")
		assert.Contains(t, output, "reason=\"robots.txt restricted\"")
	})

	t.Run("logs success at info", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		rec := seoslog.NewOutcomeLogger(logger)

		rec.RecordOutcome(context.Background(),
			seofetch.NewSuccess("https://x.example/", &seofetch.Document{Title: "Hi", BodyText: "héllo"}),
			time.Millisecond)

		output := buf.String()
		assert.Contains(t, output, "level=INFO")
		assert.Contains(t, output, "msg=fetched")
		assert.Contains(t, output, "title=Hi")
		assert.Contains(t, output, "chars=5")
		assert.Contains(t, output, "images=0")
	})
}
