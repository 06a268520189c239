package fs

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fwojciec/seofetch"
)

var _ seofetch.URLSource = (*FileSource)(nil)

// FileSource reads ranked candidate URLs from a text file, one per line.
// Blank lines and lines starting with # are ignored. A line may also be
// "keyword<TAB>url", as exported from rank trackers; such lines are only
// returned for a matching keyword (case-insensitive).
type FileSource struct {
	Path string
}

// Discover implements seofetch.URLSource.
func (s *FileSource) Discover(ctx context.Context, keyword string) ([]string, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	keyword = strings.TrimSpace(keyword)
	var urls []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if kw, u, ok := strings.Cut(line, "\t"); ok {
			if !strings.EqualFold(strings.TrimSpace(kw), keyword) {
				continue
			}
			line = strings.TrimSpace(u)
		}
		urls = append(urls, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.Path, err)
	}
	return urls, nil
}
