package seofetch

import "context"

// Response is the outcome of a single page GET. It is constructed once per
// request and never modified afterwards.
type Response struct {
	// StatusCode is the HTTP status of the final response.
	StatusCode int

	// FinalURL is the URL after following redirects.
	FinalURL string

	// ContentType is the Content-Type header of the final response.
	ContentType string

	// Body is the response body decoded to UTF-8.
	Body string
}

// OK reports whether the response has a 2xx status.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode <= 299
}

// Fetcher retrieves pages over HTTP under a fixed client identity.
type Fetcher interface {
	// Fetch issues a GET for url. Non-2xx statuses are returned as a
	// Response, not an error; errors are transport failures only.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (*Response, error)

	// Close releases pooled connections.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}

// DomainPolicy decides whether a URL's host is excluded from fetching.
type DomainPolicy interface {
	// IsBlocked reports whether the URL's host matches a blocked entry.
	// It performs no I/O.
	IsBlocked(url string) bool
}

// RobotsGate evaluates robots.txt directives for a URL.
type RobotsGate interface {
	// IsAllowed reports whether userAgent may fetch url. A non-nil error
	// means robots.txt could not be retrieved and the answer is false.
	IsAllowed(ctx context.Context, url, userAgent string) (bool, error)
}

// Rule is a single accessibility heuristic.
type Rule interface {
	// Check returns the block reason and true when the page matches.
	Check(html, finalURL string) (reason string, matched bool)
}

// Classifier decides whether fetched HTML is genuinely accessible content.
type Classifier interface {
	// Classify returns blocked=true with a reason for login walls,
	// interstitial redirects and denial pages.
	Classify(html, finalURL string) (blocked bool, reason string)
}

// Extractor parses HTML into a normalized Document.
type Extractor interface {
	// Extract never fails for parseable HTML. Relative image sources are
	// resolved against baseURL.
	Extract(html, baseURL string) *Document
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
