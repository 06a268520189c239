package mock

import (
	"context"

	"github.com/fwojciec/seofetch"
)

var _ seofetch.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of seofetch.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string, filter *seofetch.URLFilter) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *seofetch.URLFilter) ([]string, error) {
	return s.DiscoverURLsFn(ctx, baseURL, filter)
}
