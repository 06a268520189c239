package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/seofetch"
	"github.com/fwojciec/seofetch/mock"
	seoslog "github.com/fwojciec/seofetch/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingSitemapService_DiscoverURLs(t *testing.T) {
	t.Parallel()

	t.Run("logs site, patterns and kept count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		var gotFilter *seofetch.URLFilter
		inner := &mock.SitemapService{
			DiscoverURLsFn: func(ctx context.Context, baseURL string, filter *seofetch.URLFilter) ([]string, error) {
				gotFilter = filter
				return []string{"https://example.com/go-a", "https://example.com/go-b"}, nil
			},
		}
		filter := seofetch.NewKeywordFilter("go tutorial")

		svc := seoslog.NewLoggingSitemapService(inner, logger)
		urls, err := svc.DiscoverURLs(context.Background(), "https://example.com", filter)

		require.NoError(t, err)
		assert.Len(t, urls, 2)
		assert.Same(t, filter, gotFilter)
		output := buf.String()
		assert.Contains(t, output, "level=INFO")
		assert.Contains(t, output, "site=https://example.com")
		assert.Contains(t, output, "patterns=2")
		assert.Contains(t, output, "kept=2")
	})

	t.Run("logs failure at warn", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.SitemapService{
			DiscoverURLsFn: func(ctx context.Context, baseURL string, filter *seofetch.URLFilter) ([]string, error) {
				return nil, errors.New("connection failed")
			},
		}

		svc := seoslog.NewLoggingSitemapService(inner, logger)
		_, err := svc.DiscoverURLs(context.Background(), "https://example.com", nil)

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "level=WARN")
		assert.Contains(t, output, "sitemap discovery failed")
		assert.Contains(t, output, "patterns=0")
		assert.Contains(t, output, "err=\"connection failed\"")
	})
}
