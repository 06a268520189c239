// Package robotstxt implements seofetch.RobotsGate on top of
// github.com/temoto/robotstxt with a bounded per-origin cache.
package robotstxt

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/seofetch"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/temoto/robotstxt"
	"golang.org/x/sync/singleflight"
)

var _ seofetch.RobotsGate = (*Gate)(nil)

const (
	// DefaultMaxEntries bounds the number of cached origins.
	DefaultMaxEntries = 1024

	// DefaultTimeout bounds each robots.txt GET.
	DefaultTimeout = 10 * time.Second

	// maxBodyBytes caps the robots.txt body read. Google stops at 500 KiB.
	maxBodyBytes = 512 << 10
)

// record is a cached robots.txt outcome for one origin. A nil data means
// the origin published nothing and every path is allowed.
type record struct {
	data      *robotstxt.RobotsData
	fetchedAt time.Time
}

// Gate answers robots.txt questions, fetching each origin's file at most
// once while it stays cached. Concurrent lookups for the same origin share
// one fetch.
type Gate struct {
	client  *http.Client
	timeout time.Duration
	cache   *lru.Cache[string, *record]
	group   singleflight.Group
}

// Option configures a Gate.
type Option func(*Gate)

// WithMaxEntries sets the maximum number of cached origins. The least
// recently used origin is evicted first.
func WithMaxEntries(n int) Option {
	return func(g *Gate) {
		if n > 0 {
			g.cache, _ = lru.New[string, *record](n)
		}
	}
}

// WithTimeout sets the timeout for each robots.txt GET.
func WithTimeout(d time.Duration) Option {
	return func(g *Gate) {
		g.timeout = d
	}
}

// NewGate creates a Gate that fetches with client. A nil client uses
// http.DefaultClient. The client is expected to set the User-Agent; if
// it does not, the agent passed to IsAllowed is sent.
func NewGate(client *http.Client, opts ...Option) *Gate {
	if client == nil {
		client = http.DefaultClient
	}
	cache, _ := lru.New[string, *record](DefaultMaxEntries)
	g := &Gate{
		client:  client,
		timeout: DefaultTimeout,
		cache:   cache,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// IsAllowed reports whether userAgent may fetch rawURL.
//
// A 200 robots.txt is parsed and cached. Any other status caches an
// allow-all record. Transport and parse failures deny and are not cached,
// so the next lookup retries.
func (g *Gate) IsAllowed(ctx context.Context, rawURL, userAgent string) (bool, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false, err
	}
	origin, err := originOf(u)
	if err != nil {
		return false, err
	}

	rec, err := g.lookup(ctx, origin, userAgent)
	if err != nil {
		return false, err
	}
	if rec.data == nil {
		return true, nil
	}

	path := u.EscapedPath()
	if path == "" {
		path = "/"
	}
	if u.RawQuery != "" {
		path += "?" + u.RawQuery
	}
	return rec.data.TestAgent(path, userAgent), nil
}

// Cached reports whether rawURL's origin has a cached record.
func (g *Gate) Cached(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	origin, err := originOf(u)
	if err != nil {
		return false
	}
	return g.cache.Contains(origin)
}

// FetchedAt returns when rawURL's origin record was fetched.
func (g *Gate) FetchedAt(rawURL string) (time.Time, bool) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return time.Time{}, false
	}
	origin, err := originOf(u)
	if err != nil {
		return time.Time{}, false
	}
	rec, ok := g.cache.Peek(origin)
	if !ok {
		return time.Time{}, false
	}
	return rec.fetchedAt, true
}

// Len returns the number of cached origins.
func (g *Gate) Len() int {
	return g.cache.Len()
}

// Purge drops every cached record.
func (g *Gate) Purge() {
	g.cache.Purge()
}

func (g *Gate) lookup(ctx context.Context, origin, userAgent string) (*record, error) {
	if rec, ok := g.cache.Get(origin); ok {
		return rec, nil
	}

	v, err, _ := g.group.Do(origin, func() (any, error) {
		// A concurrent flight may have filled the cache since the check above.
		if rec, ok := g.cache.Get(origin); ok {
			return rec, nil
		}
		rec, err := g.fetch(ctx, origin, userAgent)
		if err != nil {
			return nil, err
		}
		g.cache.Add(origin, rec)
		return rec, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*record), nil
}

func (g *Gate) fetch(ctx context.Context, origin, userAgent string) (*record, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, origin+"/robots.txt", nil)
	if err != nil {
		return nil, err
	}
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &record{fetchedAt: time.Now()}, nil
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read robots.txt: %w", err)
	}
	data, err := robotstxt.FromBytes(body)
	if err != nil {
		return nil, fmt.Errorf("parse robots.txt: %w", err)
	}
	return &record{data: data, fetchedAt: time.Now()}, nil
}

// originOf returns the lowercased scheme://host[:port] of u.
func originOf(u *url.URL) (string, error) {
	scheme := strings.ToLower(u.Scheme)
	if (scheme != "http" && scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("no http origin in %q", u.String())
	}
	return scheme + "://" + strings.ToLower(u.Host), nil
}
