// Package http provides net/http implementations of seofetch.Fetcher and
// seofetch.SitemapService.
package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/seofetch"
	"golang.org/x/net/html/charset"
)

// Defaults applied by NewFetcher.
const (
	DefaultFetchTimeout = 10 * time.Second
	DefaultMaxRedirects = 10
	DefaultMaxBodyBytes = 10 << 20
)

// ErrUnsupportedContentType is returned for 2xx responses that are not HTML.
var ErrUnsupportedContentType = errors.New("unsupported content type")

// Ensure Fetcher implements seofetch.Fetcher at compile time.
var _ seofetch.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves pages with plain HTTP GETs under a fixed identity.
// It does not execute JavaScript.
type Fetcher struct {
	client         *http.Client
	timeout        time.Duration
	userAgent      string
	acceptLanguage string
	maxRedirects   int
	maxBodyBytes   int64
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for a whole GET, redirects and body read
// included. Defaults to DefaultFetchTimeout.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header. Defaults to
// seofetch.DefaultUserAgent.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithAcceptLanguage sets the Accept-Language header.
func WithAcceptLanguage(lang string) Option {
	return func(f *Fetcher) {
		f.acceptLanguage = lang
	}
}

// WithMaxRedirects caps redirect hops. Zero disables redirects.
func WithMaxRedirects(n int) Option {
	return func(f *Fetcher) {
		f.maxRedirects = n
	}
}

// WithMaxBodyBytes caps the number of body bytes read.
func WithMaxBodyBytes(n int64) Option {
	return func(f *Fetcher) {
		f.maxBodyBytes = n
	}
}

// WithClient uses client's transport instead of a private one. Timeout
// and redirect policy are still set by the Fetcher.
func WithClient(client *http.Client) Option {
	return func(f *Fetcher) {
		f.client = client
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:      DefaultFetchTimeout,
		userAgent:    seofetch.DefaultUserAgent,
		maxRedirects: DefaultMaxRedirects,
		maxBodyBytes: DefaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(f)
	}

	var transport http.RoundTripper
	if f.client != nil {
		transport = f.client.Transport
	} else {
		transport = http.DefaultTransport.(*http.Transport).Clone()
	}

	maxRedirects := f.maxRedirects
	f.client = &http.Client{
		Transport: transport,
		Timeout:   f.timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) > maxRedirects {
				return fmt.Errorf("stopped after %d redirects", maxRedirects)
			}
			return nil
		},
	}

	return f
}

// Client returns the underlying client, for sharing the connection pool
// with robots.txt lookups.
func (f *Fetcher) Client() *http.Client {
	return f.client
}

// Fetch issues a GET for url. Non-2xx responses are returned with an
// empty body. 2xx bodies must be HTML and are decoded to UTF-8 using the
// Content-Type charset or, failing that, the document's meta tags.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*seofetch.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")
	if f.acceptLanguage != "" {
		req.Header.Set("Accept-Language", f.acceptLanguage)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	out := &seofetch.Response{
		StatusCode:  resp.StatusCode,
		FinalURL:    resp.Request.URL.String(),
		ContentType: resp.Header.Get("Content-Type"),
	}
	if !out.OK() {
		return out, nil
	}

	if !isHTML(out.ContentType) {
		return nil, fmt.Errorf("%w %q", ErrUnsupportedContentType, out.ContentType)
	}

	r, err := charset.NewReader(io.LimitReader(resp.Body, f.maxBodyBytes), out.ContentType)
	if err != nil {
		return nil, fmt.Errorf("decode body: %w", err)
	}
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	out.Body = string(body)

	return out, nil
}

// Close releases idle pooled connections.
func (f *Fetcher) Close() error {
	f.client.CloseIdleConnections()
	return nil
}

// isHTML reports whether contentType names an HTML document. A missing
// header is accepted.
func isHTML(contentType string) bool {
	if strings.TrimSpace(contentType) == "" {
		return true
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType = strings.ToLower(strings.TrimSpace(strings.Split(contentType, ";")[0]))
	}
	return mediaType == "text/html" || mediaType == "application/xhtml+xml"
}
