// Package fs provides file-based page storage and URL lists.
package fs

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// URLToPath converts a page URL to a relative file path under its host.
// Query strings are folded into a short hash so distinct queries do not
// collide.
//
//	https://example.com/blog/post?id=7 → example.com/blog/post_1f2e3d4c.md
//	https://example.com/blog/          → example.com/blog/index.md
func URLToPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	host := strings.ToLower(u.Hostname())
	if host == "" {
		return "", fmt.Errorf("no host in %q", rawURL)
	}
	if port := u.Port(); port != "" {
		host += "_" + port
	}

	path := strings.TrimPrefix(u.Path, "/")
	if path == "" || strings.HasSuffix(path, "/") {
		path += "index"
	}
	for _, seg := range strings.Split(path, "/") {
		if seg == ".." {
			return "", fmt.Errorf("path traversal in %q", rawURL)
		}
	}

	if u.RawQuery != "" {
		path += fmt.Sprintf("_%08x", uint32(xxhash.Sum64String(u.RawQuery)))
	}

	return host + "/" + path + ".md", nil
}
