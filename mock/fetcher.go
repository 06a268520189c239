package mock

import (
	"context"

	"github.com/fwojciec/seofetch"
)

// Compile-time interface verification.
var (
	_ seofetch.Fetcher       = (*Fetcher)(nil)
	_ seofetch.DomainPolicy  = (*DomainPolicy)(nil)
	_ seofetch.RobotsGate    = (*RobotsGate)(nil)
	_ seofetch.Classifier    = (*Classifier)(nil)
	_ seofetch.Extractor     = (*Extractor)(nil)
	_ seofetch.DomainLimiter = (*DomainLimiter)(nil)
)

// Fetcher is a mock implementation of seofetch.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*seofetch.Response, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*seofetch.Response, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}

// DomainPolicy is a mock implementation of seofetch.DomainPolicy.
type DomainPolicy struct {
	IsBlockedFn func(url string) bool
}

func (p *DomainPolicy) IsBlocked(url string) bool {
	return p.IsBlockedFn(url)
}

// RobotsGate is a mock implementation of seofetch.RobotsGate.
type RobotsGate struct {
	IsAllowedFn func(ctx context.Context, url, userAgent string) (bool, error)
}

func (g *RobotsGate) IsAllowed(ctx context.Context, url, userAgent string) (bool, error) {
	return g.IsAllowedFn(ctx, url, userAgent)
}

// Classifier is a mock implementation of seofetch.Classifier.
type Classifier struct {
	ClassifyFn func(html, finalURL string) (bool, string)
}

func (c *Classifier) Classify(html, finalURL string) (bool, string) {
	return c.ClassifyFn(html, finalURL)
}

// Extractor is a mock implementation of seofetch.Extractor.
type Extractor struct {
	ExtractFn func(html, baseURL string) *seofetch.Document
}

func (e *Extractor) Extract(html, baseURL string) *seofetch.Document {
	return e.ExtractFn(html, baseURL)
}

// DomainLimiter is a mock implementation of seofetch.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
