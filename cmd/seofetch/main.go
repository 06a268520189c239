package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/seofetch"
	"github.com/fwojciec/seofetch/crawl"
	"github.com/fwojciec/seofetch/goquery"
	seohttp "github.com/fwojciec/seofetch/http"
	"github.com/fwojciec/seofetch/robotstxt"
	seoslog "github.com/fwojciec/seofetch/slog"
	"github.com/fwojciec/seofetch/sqlite"
	"github.com/fwojciec/seofetch/yaml"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run(); --db overrides it.
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	JobService seofetch.JobService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("seofetch"),
		kong.Description("Fetch web pages for SEO analysis, respecting robots.txt and access restrictions"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'seofetch --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cli.Config)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", seofetch.ErrorMessage(err))
		return err
	}
	deps.Config = cfg
	deps.Logger = newLogger(stderr, cli.Verbose)
	deps.NewSession = newSessionFactory(cfg, deps.Logger)
	deps.Sitemaps = seoslog.NewLoggingSitemapService(
		seohttp.NewSitemapService(nil, seohttp.WithSitemapUserAgent(cfg.UserAgent)),
		deps.Logger,
	)

	// fetch prints results only; every other command needs the job store.
	if strings.Fields(kongCtx.Command())[0] != "fetch" {
		if cli.DB != "" {
			m.DBPath = cli.DB
		}
		if err := os.MkdirAll(filepath.Dir(m.DBPath), 0755); err != nil {
			return fmt.Errorf("failed to create database directory: %w", err)
		}
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set SEOFETCH_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()

		m.JobService = sqlite.NewJobService(m.DB)
		deps.Jobs = m.JobService
	}

	return kongCtx.Run(deps)
}

// loadConfig reads the config file at path, or returns defaults when path
// is empty.
func loadConfig(path string) (*seofetch.Config, error) {
	if path == "" {
		return seofetch.DefaultConfig(), nil
	}
	return yaml.LoadConfig(path)
}

// newLogger returns a text logger on w when verbose, otherwise a logger
// that discards everything.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}))
}

// newSessionFactory returns a constructor for per-job sessions. Each
// session gets its own HTTP fetcher and robots.txt cache; the gate reuses
// the fetcher's connection pool.
func newSessionFactory(cfg *seofetch.Config, logger *slog.Logger) func() (*crawl.Session, error) {
	return func() (*crawl.Session, error) {
		fetcher := seohttp.NewFetcher(
			seohttp.WithTimeout(cfg.Timeout),
			seohttp.WithUserAgent(cfg.UserAgent),
			seohttp.WithAcceptLanguage(cfg.AcceptLanguage),
			seohttp.WithMaxRedirects(cfg.MaxRedirects),
			seohttp.WithMaxBodyBytes(cfg.MaxBodyBytes),
		)
		gate := robotstxt.NewGate(fetcher.Client(),
			robotstxt.WithMaxEntries(cfg.RobotsCacheSize),
			robotstxt.WithTimeout(cfg.RobotsTimeout),
		)

		return &crawl.Session{
			Policy:      crawl.NewBlocklist(cfg.BlockedDomains),
			Robots:      seoslog.NewLoggingRobotsGate(gate, logger),
			Fetcher:     seoslog.NewLoggingFetcher(fetcher, logger),
			Classifier:  crawl.DefaultClassifier(),
			Extractor:   goquery.NewExtractor(),
			Limiter:     crawl.NewDomainLimiter(cfg.RequestsPerSecond, 1),
			UserAgent:   cfg.UserAgent,
			Concurrency: cfg.Concurrency,
			RetryDelays: cfg.RetryDelays,
		}, nil
	}
}

func defaultDBPath() string {
	if path := os.Getenv("SEOFETCH_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "seofetch.db"
	}
	return filepath.Join(home, ".seofetch", "seofetch.db")
}
