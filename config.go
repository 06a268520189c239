package seofetch

import (
	"strings"
	"time"
)

// DefaultUserAgent is the declared client identity sent with every request.
const DefaultUserAgent = "seofetch/1.0 (+https://github.com/fwojciec/seofetch)"

// DefaultBlockedDomains are marketplaces and social platforms that make
// poor sources for SEO analysis.
var DefaultBlockedDomains = []string{
	"amazon.com",
	"amazon.co.jp",
	"rakuten.co.jp",
	"yahoo.co.jp",
	"ebay.com",
	"x.com",
	"cosme.net",
	"lipscosme.com",
	"tiktok.com",
}

// Config holds fetcher settings. The zero value is not usable; start from
// DefaultConfig.
type Config struct {
	// UserAgent is sent on page and robots.txt requests and used to select
	// the robots.txt group.
	UserAgent string `yaml:"user_agent"`

	// AcceptLanguage is sent on page requests.
	AcceptLanguage string `yaml:"accept_language"`

	// BlockedDomains are matched as case-insensitive substrings of the host.
	BlockedDomains []string `yaml:"blocked_domains"`

	// MaxPages is the number of top-ranked candidates fetched per keyword.
	MaxPages int `yaml:"max_pages"`

	// Concurrency bounds in-flight URLs per job. 1 processes sequentially.
	Concurrency int `yaml:"concurrency"`

	// Timeout bounds each page GET, including redirects and body read.
	Timeout time.Duration `yaml:"timeout"`

	// RobotsTimeout bounds each robots.txt GET.
	RobotsTimeout time.Duration `yaml:"robots_timeout"`

	// MaxRedirects caps redirect hops per page GET.
	MaxRedirects int `yaml:"max_redirects"`

	// MaxBodyBytes caps the page body read.
	MaxBodyBytes int64 `yaml:"max_body_bytes"`

	// RobotsCacheSize caps the number of origins cached per session.
	RobotsCacheSize int `yaml:"robots_cache_size"`

	// RequestsPerSecond limits page GETs per host. Zero disables limiting.
	RequestsPerSecond float64 `yaml:"requests_per_second"`

	// RetryDelays are waits between caller-side retries of transport
	// failures. Empty means no retries.
	RetryDelays []time.Duration `yaml:"retry_delays"`
}

// DefaultConfig returns the default settings.
func DefaultConfig() *Config {
	return &Config{
		UserAgent:       DefaultUserAgent,
		AcceptLanguage:  "ja,en;q=0.8",
		BlockedDomains:  append([]string(nil), DefaultBlockedDomains...),
		MaxPages:        5,
		Concurrency:     1,
		Timeout:         10 * time.Second,
		RobotsTimeout:   10 * time.Second,
		MaxRedirects:    10,
		MaxBodyBytes:    10 << 20,
		RobotsCacheSize: 1024,
	}
}

// Validate returns an error if the config contains invalid fields.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.UserAgent) == "" {
		return Errorf(EINVALID, "user agent required")
	}
	if c.MaxPages <= 0 {
		return Errorf(EINVALID, "max pages must be positive")
	}
	if c.Concurrency <= 0 {
		return Errorf(EINVALID, "concurrency must be positive")
	}
	if c.Timeout <= 0 || c.RobotsTimeout <= 0 {
		return Errorf(EINVALID, "timeouts must be positive")
	}
	if c.MaxRedirects < 0 {
		return Errorf(EINVALID, "max redirects must not be negative")
	}
	if c.MaxBodyBytes <= 0 {
		return Errorf(EINVALID, "max body bytes must be positive")
	}
	if c.RobotsCacheSize <= 0 {
		return Errorf(EINVALID, "robots cache size must be positive")
	}
	if c.RequestsPerSecond < 0 {
		return Errorf(EINVALID, "requests per second must not be negative")
	}
	for _, d := range c.RetryDelays {
		if d < 0 {
			return Errorf(EINVALID, "retry delays must not be negative")
		}
	}
	return nil
}
