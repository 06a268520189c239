package crawl

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/seofetch"
)

// Runner drives one keyword job: discover candidates, fetch the top
// ranked ones in a fresh Session, then record, render and persist results.
type Runner struct {
	Source seofetch.URLSource

	// NewSession returns a Session for one job. The Runner closes it.
	NewSession func() (*Session, error)

	// Jobs, if set, persists every completed job.
	Jobs seofetch.JobService

	// Pages, if set, receives a markdown page per successful result.
	// Converter is required when Pages is set.
	Pages     seofetch.PageStore
	Converter seofetch.Converter

	// Recorders observe each URL outcome.
	Recorders []seofetch.OutcomeRecorder

	// MaxPages is the number of candidates fetched. Values below 1 mean 5.
	MaxPages int
}

// Run executes a job for keyword. Per-URL failures are reported in the
// job's results; errors are returned only for discovery, session setup,
// page and persistence failures. A job is persisted only after its pages
// are committed.
func (r *Runner) Run(ctx context.Context, keyword string, progress ProgressFunc) (*seofetch.Job, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, seofetch.Errorf(seofetch.EINVALID, "keyword required")
	}

	candidates, err := r.Source.Discover(ctx, keyword)
	if err != nil {
		return nil, fmt.Errorf("discover candidates: %w", err)
	}

	maxPages := r.MaxPages
	if maxPages < 1 {
		maxPages = 5
	}
	urls := TopN(candidates, maxPages)
	if len(urls) == 0 {
		return nil, seofetch.Errorf(seofetch.ENOTFOUND, "no candidate URLs for %q", keyword)
	}

	session, err := r.NewSession()
	if err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}
	defer func() { _ = session.Close() }()

	results := session.FetchAll(ctx, urls, func(event ProgressEvent) {
		if event.Result != nil {
			for _, rec := range r.Recorders {
				rec.RecordOutcome(ctx, event.Result, event.Elapsed)
			}
		}
		if progress != nil {
			progress(event)
		}
	})

	job := &seofetch.Job{
		Keyword:   keyword,
		Results:   results,
		CreatedAt: time.Now().UTC(),
	}

	if r.Pages != nil {
		if err := r.savePages(ctx, results); err != nil {
			return nil, err
		}
	}

	if r.Jobs != nil {
		if err := r.Jobs.CreateJob(ctx, job); err != nil {
			return nil, fmt.Errorf("save job: %w", err)
		}
	}

	return job, nil
}

// savePages converts successful results to markdown and commits them as
// one batch. Any failure aborts the batch.
func (r *Runner) savePages(ctx context.Context, results []*seofetch.Result) error {
	for _, result := range results {
		if result.Blocked || strings.TrimSpace(result.Document.ContentHTML) == "" {
			continue
		}
		markdown, err := r.Converter.Convert(result.Document.ContentHTML)
		if err != nil {
			_ = r.Pages.Abort()
			return fmt.Errorf("convert %s: %w", result.URL, err)
		}
		page := &seofetch.Page{
			URL:     result.URL,
			Title:   result.Document.Title,
			Content: markdown,
		}
		if err := r.Pages.Save(ctx, page); err != nil {
			_ = r.Pages.Abort()
			return fmt.Errorf("save page %s: %w", result.URL, err)
		}
	}
	if err := r.Pages.Commit(); err != nil {
		return fmt.Errorf("commit pages: %w", err)
	}
	return nil
}
