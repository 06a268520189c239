package crawl

import (
	"net/url"
	"strings"

	"github.com/fwojciec/seofetch/bloom"
)

// TopN returns the first n distinct candidates in rank order. Candidates
// are trimmed; blanks are skipped; URLs differing only by fragment are
// treated as the same page.
func TopN(candidates []string, n int) []string {
	if n <= 0 || len(candidates) == 0 {
		return nil
	}

	seen := bloom.NewSet(len(candidates), bloom.DefaultFalsePositiveRate)
	out := make([]string, 0, min(n, len(candidates)))
	for _, c := range candidates {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		key := dedupeKey(c)
		if seen.Seen(key) {
			continue
		}
		out = append(out, c)
		if len(out) == n {
			break
		}
	}
	return out
}

func dedupeKey(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	u.Fragment = ""
	u.RawFragment = ""
	u.Host = strings.ToLower(u.Host)
	return u.String()
}
