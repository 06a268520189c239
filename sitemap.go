package seofetch

import (
	"context"
	"net/url"
	"regexp"
	"slices"
	"strings"
)

// SitemapService discovers candidate URLs from a site's sitemaps.
type SitemapService interface {
	// DiscoverURLs returns the page URLs listed in the sitemaps of
	// baseURL, in sitemap order and without duplicates. Sitemaps are
	// located through robots.txt Sitemap lines, falling back to
	// /sitemap.xml; sitemap indexes are followed.
	//
	// A nil filter keeps every URL.
	DiscoverURLs(ctx context.Context, baseURL string, filter *URLFilter) ([]string, error)
}

// URLFilter keeps URLs that match at least one Include pattern (or any URL
// when Include is empty) and no Exclude pattern.
type URLFilter struct {
	Include []*regexp.Regexp
	Exclude []*regexp.Regexp
}

// NewKeywordFilter returns a filter keeping URLs that contain any
// whitespace-separated term of keyword, literally or percent-encoded,
// ignoring case. A blank keyword yields nil, which keeps everything.
func NewKeywordFilter(keyword string) *URLFilter {
	terms := strings.Fields(keyword)
	if len(terms) == 0 {
		return nil
	}
	f := &URLFilter{}
	for _, term := range terms {
		alts := []string{regexp.QuoteMeta(term)}
		if escaped := url.PathEscape(term); escaped != term {
			alts = append(alts, regexp.QuoteMeta(escaped))
		}
		f.Include = append(f.Include, regexp.MustCompile(`(?i)(`+strings.Join(alts, "|")+`)`))
	}
	return f
}

// Match reports whether url passes the filter. A nil filter passes
// everything.
func (f *URLFilter) Match(url string) bool {
	if f == nil {
		return true
	}
	matches := func(re *regexp.Regexp) bool { return re.MatchString(url) }
	if len(f.Include) > 0 && !slices.ContainsFunc(f.Include, matches) {
		return false
	}
	return !slices.ContainsFunc(f.Exclude, matches)
}
