package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/seofetch"
	"github.com/fwojciec/seofetch/crawl"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Config *seofetch.Config
	Logger *slog.Logger

	// NewSession creates a fetch session for one batch or job.
	NewSession func() (*crawl.Session, error)

	Jobs     seofetch.JobService
	Sitemaps seofetch.SitemapService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config  string `help:"Path to YAML config file" env:"SEOFETCH_CONFIG" type:"path"`
	DB      string `help:"Path to SQLite database" env:"SEOFETCH_DB" type:"path"`
	Verbose bool   `short:"v" help:"Log requests and outcomes to stderr"`

	Fetch  FetchCmd  `cmd:"" help:"Fetch URLs and print extracted structure"`
	Run    RunCmd    `cmd:"" help:"Fetch the top candidates for a keyword and save the job"`
	Jobs   JobsCmd   `cmd:"" help:"List saved jobs"`
	Show   ShowCmd   `cmd:"" help:"Show the results of a saved job"`
	Delete DeleteCmd `cmd:"" help:"Delete a saved job"`
}

// FetchCmd is the "fetch" subcommand.
type FetchCmd struct {
	URLs []string `arg:"" name:"urls" help:"URLs to fetch"`
	JSON bool     `help:"Print results as JSON"`
}

// RunCmd is the "run" subcommand.
type RunCmd struct {
	Keyword     string   `arg:"" help:"Target keyword"`
	URL         []string `name:"url" help:"Candidate URL in rank order (repeatable)"`
	URLsFile    string   `name:"urls-file" help:"File of ranked candidate URLs" type:"existingfile"`
	Sitemap     string   `help:"Site whose sitemap supplies candidates"`
	MaxPages    int      `short:"n" name:"max-pages" help:"Number of candidates to fetch (default from config)"`
	Concurrency int      `short:"c" help:"Concurrent fetch limit (default from config)"`
	Out         string   `help:"Directory to write markdown pages to" type:"path"`
	JSON        bool     `help:"Print the job as JSON"`
	MetricsFile string   `name:"metrics-file" help:"Write Prometheus metrics to this file" type:"path"`
}

// JobsCmd is the "jobs" subcommand.
type JobsCmd struct {
	Keyword string `help:"Only list jobs for this keyword"`
	Limit   int    `default:"20" help:"Maximum number of jobs to list"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID   string `arg:"" help:"Job ID"`
	JSON bool   `help:"Print the job as JSON"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Job ID"`
	Force bool   `help:"Confirm deletion"`
}
