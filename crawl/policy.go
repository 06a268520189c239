package crawl

import (
	"net/url"
	"strings"

	"github.com/fwojciec/seofetch"
)

var _ seofetch.DomainPolicy = (*Blocklist)(nil)

// Blocklist rejects URLs whose host contains a blocked domain entry.
// Matching is case-insensitive substring containment, so "amazon.co.jp"
// also blocks "www.amazon.co.jp".
type Blocklist struct {
	domains []string
}

// NewBlocklist returns a Blocklist for domains. Blank entries are ignored.
func NewBlocklist(domains []string) *Blocklist {
	b := &Blocklist{}
	for _, d := range domains {
		d = strings.ToLower(strings.TrimSpace(d))
		if d == "" {
			continue
		}
		b.domains = append(b.domains, d)
	}
	return b
}

// IsBlocked reports whether the host of rawURL matches a blocked entry.
// Unparsable URLs are never blocked here; they fail later at fetch time.
func (b *Blocklist) IsBlocked(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	host := strings.ToLower(u.Hostname())
	if host == "" {
		return false
	}
	for _, d := range b.domains {
		if strings.Contains(host, d) {
			return true
		}
	}
	return false
}
