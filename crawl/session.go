// Package crawl orchestrates compliant page fetching. A Session runs the
// per-URL pipeline (blocklist, robots.txt, GET, accessibility check,
// extraction) and a Runner drives one keyword job through a Session.
package crawl

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fwojciec/seofetch"
	"golang.org/x/sync/errgroup"
)

// Session fetches URLs for one keyword job. It owns the Fetcher and the
// robots.txt cache held by Robots; both are released by Close.
type Session struct {
	Policy     seofetch.DomainPolicy
	Robots     seofetch.RobotsGate
	Fetcher    seofetch.Fetcher
	Classifier seofetch.Classifier
	Extractor  seofetch.Extractor

	// Limiter, if set, is waited on per host before each page GET.
	Limiter seofetch.DomainLimiter

	// UserAgent selects the robots.txt group.
	UserAgent string

	// Concurrency bounds in-flight URLs in FetchAll. Values below 1 mean 1.
	Concurrency int

	// RetryDelays are waits between retries of transport failures in
	// FetchAll. FetchOne never retries.
	RetryDelays []time.Duration

	closeOnce sync.Once
	closeErr  error
}

// FetchOne runs the pipeline for a single URL. It never returns an error;
// every failure is reported as a blocked result.
func (s *Session) FetchOne(ctx context.Context, rawURL string) *seofetch.Result {
	u, err := url.Parse(rawURL)
	if err != nil {
		return seofetch.NewBlocked(rawURL, seofetch.KindTransport, seofetch.FetchErrorReason(err))
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		err := fmt.Errorf("unsupported URL %q", rawURL)
		return seofetch.NewBlocked(rawURL, seofetch.KindTransport, seofetch.FetchErrorReason(err))
	}

	if s.Policy != nil && s.Policy.IsBlocked(rawURL) {
		return seofetch.NewBlocked(rawURL, seofetch.KindPolicy, seofetch.ReasonDomainProhibited)
	}

	if s.Robots != nil {
		allowed, err := s.Robots.IsAllowed(ctx, rawURL, s.UserAgent)
		if err != nil || !allowed {
			return seofetch.NewBlocked(rawURL, seofetch.KindPolicy, seofetch.ReasonRobotsRestricted)
		}
	}

	if s.Limiter != nil {
		if err := s.Limiter.Wait(ctx, u.Host); err != nil {
			return seofetch.NewBlocked(rawURL, seofetch.KindTransport, seofetch.FetchErrorReason(err))
		}
	}

	resp, err := s.Fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return seofetch.NewBlocked(rawURL, seofetch.KindTransport, seofetch.FetchErrorReason(err))
	}
	if !resp.OK() {
		return seofetch.NewBlocked(rawURL, seofetch.KindAccessDenied, seofetch.StatusReason(resp.StatusCode))
	}

	finalURL := resp.FinalURL
	if finalURL == "" {
		finalURL = rawURL
	}

	if s.Classifier != nil {
		if blocked, reason := s.Classifier.Classify(resp.Body, finalURL); blocked {
			return seofetch.NewBlocked(rawURL, seofetch.KindContentGate, reason)
		}
	}

	return seofetch.NewSuccess(rawURL, s.Extractor.Extract(resp.Body, finalURL))
}

// FetchAll fetches urls with bounded concurrency and returns one result per
// URL in input order. Transport failures are retried per RetryDelays.
// The progress callback, if provided, receives events as fetching proceeds.
func (s *Session) FetchAll(ctx context.Context, urls []string, progress ProgressFunc) []*seofetch.Result {
	concurrency := s.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}

	total := len(urls)
	results := make([]*seofetch.Result, total)
	var completed atomic.Int64
	var mu sync.Mutex

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, u := range urls {
		g.Go(func() error {
			start := time.Now()
			logf := func(format string, args ...any) {
				if progress != nil {
					mu.Lock()
					progress(ProgressEvent{Type: ProgressRetrying, Total: total, URL: u, Message: fmt.Sprintf(format, args...)})
					mu.Unlock()
				}
			}
			result := FetchWithRetryDelays(gctx, u, s.FetchOne, logf, s.RetryDelays)
			results[i] = result

			if progress != nil {
				typ := ProgressCompleted
				if result.Blocked {
					typ = ProgressBlocked
				}
				mu.Lock()
				progress(ProgressEvent{
					Type:      typ,
					Completed: int(completed.Add(1)),
					Total:     total,
					URL:       u,
					Result:    result,
					Elapsed:   time.Since(start),
				})
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return results
}

// Close releases the Fetcher's connections and drops cached robots.txt
// records. It is safe to call more than once.
func (s *Session) Close() error {
	s.closeOnce.Do(func() {
		if p, ok := s.Robots.(interface{ Purge() }); ok {
			p.Purge()
		}
		if s.Fetcher != nil {
			s.closeErr = s.Fetcher.Close()
		}
	})
	return s.closeErr
}
