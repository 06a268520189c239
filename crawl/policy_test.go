package crawl_test

import (
	"testing"

	"github.com/fwojciec/seofetch"
	"github.com/fwojciec/seofetch/crawl"
	"github.com/stretchr/testify/assert"
)

func TestBlocklist_IsBlocked(t *testing.T) {
	t.Parallel()

	b := crawl.NewBlocklist(seofetch.DefaultBlockedDomains)

	tests := []struct {
		url     string
		blocked bool
	}{
		{"https://amazon.com/dp/123", true},
		{"https://www.amazon.co.jp/item", true},
		{"https://WWW.Rakuten.CO.JP/", true},
		{"https://shopping.yahoo.co.jp/search?p=x", true},
		{"https://x.com/user", true},
		{"https://example.com/amazon.com", false},
		{"https://example.com/", false},
		{"not a url", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.blocked, b.IsBlocked(tt.url), tt.url)
	}
}

func TestBlocklist_IgnoresBlankEntries(t *testing.T) {
	t.Parallel()

	b := crawl.NewBlocklist([]string{"", "  ", "Example.ORG"})

	assert.False(t, b.IsBlocked("https://example.com/"))
	assert.True(t, b.IsBlocked("https://docs.example.org/"))
}
