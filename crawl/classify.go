package crawl

import (
	"regexp"
	"strings"

	"github.com/fwojciec/seofetch"
)

var (
	_ seofetch.Classifier = Chain(nil)
	_ seofetch.Rule       = MetaRefreshRule{}
	_ seofetch.Rule       = LoginWallRule{}
	_ seofetch.Rule       = DeniedURLRule{}
)

// Chain is an ordered list of rules. The first matching rule decides.
type Chain []seofetch.Rule

// DefaultClassifier returns the standard rule chain: meta refresh, login
// wall, then denial URL.
func DefaultClassifier() Chain {
	return Chain{MetaRefreshRule{}, LoginWallRule{}, DeniedURLRule{}}
}

// Classify implements seofetch.Classifier.
func (c Chain) Classify(html, finalURL string) (bool, string) {
	for _, r := range c {
		if reason, ok := r.Check(html, finalURL); ok {
			return true, reason
		}
	}
	return false, ""
}

var metaRefreshPattern = regexp.MustCompile(`(?i)<meta[^>]+http-equiv\s*=\s*["']?refresh["']?[^>]*>`)

// MetaRefreshRule matches pages carrying a meta refresh tag, which usually
// marks an interstitial rather than content.
type MetaRefreshRule struct{}

// Check implements seofetch.Rule.
func (MetaRefreshRule) Check(html, _ string) (string, bool) {
	if metaRefreshPattern.MatchString(html) {
		return seofetch.ReasonRedirect, true
	}
	return "", false
}

// loginWallPatterns is a coarse lexical match over raw markup. It will
// match pages that merely mention an account in body copy.
var loginWallPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)log[- ]?in`),
	regexp.MustCompile(`(?i)sign[- ]?in`),
	regexp.MustCompile(`ログイン`),
	regexp.MustCompile(`サインイン`),
	regexp.MustCompile(`会員登録`),
	regexp.MustCompile(`アカウント`),
}

// LoginWallRule matches pages that mention login, sign-in, membership
// registration or account anywhere in the markup.
type LoginWallRule struct{}

// Check implements seofetch.Rule.
func (LoginWallRule) Check(html, _ string) (string, bool) {
	for _, re := range loginWallPatterns {
		if re.MatchString(html) {
			return seofetch.ReasonLoginWall, true
		}
	}
	return "", false
}

// DeniedURLRule matches final URLs containing "401" or "403", as produced
// by sites that redirect to an error page with a 200 status.
type DeniedURLRule struct{}

// Check implements seofetch.Rule.
func (DeniedURLRule) Check(_, finalURL string) (string, bool) {
	if strings.Contains(finalURL, "401") || strings.Contains(finalURL, "403") {
		return seofetch.ReasonAccessDenied, true
	}
	return "", false
}
