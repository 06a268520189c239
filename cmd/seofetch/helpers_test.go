package main_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/seofetch"
	main "github.com/fwojciec/seofetch/cmd/seofetch"
	"github.com/fwojciec/seofetch/crawl"
	"github.com/fwojciec/seofetch/goquery"
	"github.com/fwojciec/seofetch/mock"
)

// stubSession returns a session factory serving pages from memory. URLs
// missing from pages answer 404.
func stubSession(pages map[string]string) func() (*crawl.Session, error) {
	return func() (*crawl.Session, error) {
		return &crawl.Session{
			Policy: crawl.NewBlocklist([]string{"amazon.com"}),
			Robots: &mock.RobotsGate{
				IsAllowedFn: func(ctx context.Context, url, userAgent string) (bool, error) {
					return true, nil
				},
			},
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) (*seofetch.Response, error) {
					body, ok := pages[url]
					if !ok {
						return &seofetch.Response{StatusCode: 404, FinalURL: url}, nil
					}
					return &seofetch.Response{StatusCode: 200, FinalURL: url, ContentType: "text/html", Body: body}, nil
				},
				CloseFn: func() error { return nil },
			},
			Classifier: crawl.DefaultClassifier(),
			Extractor:  goquery.NewExtractor(),
		}, nil
	}
}

func newDeps(t *testing.T) (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return &main.Dependencies{
		Ctx:    context.Background(),
		Stdout: stdout,
		Stderr: stderr,
		Config: seofetch.DefaultConfig(),
		Logger: slog.New(slog.DiscardHandler),
	}, stdout, stderr
}

const welcomePage = `<html><head><title>Welcome</title></head>
<body><nav>menu</nav><main><h1>Hello</h1><p>Some text.</p></main></body></html>`
