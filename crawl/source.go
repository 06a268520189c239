package crawl

import (
	"context"
	"fmt"

	"github.com/fwojciec/seofetch"
)

var (
	_ seofetch.URLSource = StaticSource(nil)
	_ seofetch.URLSource = (*SitemapSource)(nil)
)

// StaticSource returns the same ranked list for every keyword.
type StaticSource []string

// Discover implements seofetch.URLSource.
func (s StaticSource) Discover(context.Context, string) ([]string, error) {
	return append([]string(nil), s...), nil
}

// SitemapSource discovers candidates from a site's sitemap, keeping URLs
// that mention any keyword term. Sitemap order is the rank order.
type SitemapSource struct {
	Sitemaps seofetch.SitemapService
	BaseURL  string
}

// Discover implements seofetch.URLSource.
func (s *SitemapSource) Discover(ctx context.Context, keyword string) ([]string, error) {
	urls, err := s.Sitemaps.DiscoverURLs(ctx, s.BaseURL, seofetch.NewKeywordFilter(keyword))
	if err != nil {
		return nil, fmt.Errorf("sitemap %s: %w", s.BaseURL, err)
	}
	return urls, nil
}
