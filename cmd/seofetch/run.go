package main

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/fwojciec/seofetch"
	"github.com/fwojciec/seofetch/crawl"
	"github.com/fwojciec/seofetch/fs"
	"github.com/fwojciec/seofetch/htmltomarkdown"
	"github.com/fwojciec/seofetch/prometheus"
	seoslog "github.com/fwojciec/seofetch/slog"
)

// Run executes the run command.
func (c *RunCmd) Run(deps *Dependencies) error {
	source, err := c.source(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", seofetch.ErrorMessage(err))
		return err
	}

	maxPages := deps.Config.MaxPages
	if c.MaxPages > 0 {
		maxPages = c.MaxPages
	}

	runner := &crawl.Runner{
		Source: seoslog.NewLoggingURLSource(source, deps.Logger),
		NewSession: func() (*crawl.Session, error) {
			s, err := deps.NewSession()
			if err != nil {
				return nil, err
			}
			if c.Concurrency > 0 {
				s.Concurrency = c.Concurrency
			}
			return s, nil
		},
		Jobs:      deps.Jobs,
		Recorders: []seofetch.OutcomeRecorder{seoslog.NewOutcomeLogger(deps.Logger)},
		MaxPages:  maxPages,
	}

	if c.Out != "" {
		runner.Pages = fs.NewFileStore(c.Out, dirName(c.Keyword))
		runner.Converter = htmltomarkdown.NewConverter()
	}

	var metrics *prometheus.Recorder
	if c.MetricsFile != "" {
		metrics = prometheus.NewRecorder()
		runner.Recorders = append(runner.Recorders, metrics)
	}

	job, err := runner.Run(deps.Ctx, c.Keyword, progressPrinter(deps))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", seofetch.ErrorMessage(err))
		return err
	}

	if metrics != nil {
		if err := metrics.WriteTextfile(c.MetricsFile); err != nil {
			fmt.Fprintf(deps.Stderr, "error: write metrics: %v\n", err)
			return err
		}
	}

	if c.JSON {
		return writeJSON(deps, job)
	}

	fmt.Fprintf(deps.Stdout, "Job %s for %q: %d of %d fetched\n\n", job.ID, job.Keyword, job.Succeeded(), len(job.Results))
	fmt.Fprintln(deps.Stdout, seofetch.FormatResults(job.Results))
	return nil
}

// source returns the candidate source selected by flags. Exactly one of
// --url, --urls-file and --sitemap is required.
func (c *RunCmd) source(deps *Dependencies) (seofetch.URLSource, error) {
	var selected []seofetch.URLSource
	if len(c.URL) > 0 {
		selected = append(selected, crawl.StaticSource(c.URL))
	}
	if c.URLsFile != "" {
		selected = append(selected, &fs.FileSource{Path: c.URLsFile})
	}
	if c.Sitemap != "" {
		selected = append(selected, &crawl.SitemapSource{Sitemaps: deps.Sitemaps, BaseURL: c.Sitemap})
	}

	switch len(selected) {
	case 0:
		return nil, seofetch.Errorf(seofetch.EINVALID, "one of --url, --urls-file or --sitemap is required")
	case 1:
		return selected[0], nil
	default:
		return nil, seofetch.Errorf(seofetch.EINVALID, "--url, --urls-file and --sitemap are mutually exclusive")
	}
}

// dirName turns a keyword into an output directory name.
func dirName(keyword string) string {
	name := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return '-'
	}, strings.TrimSpace(keyword))
	name = strings.Trim(name, "-")
	if name == "" {
		return "pages"
	}
	return name
}
