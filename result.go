package seofetch

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// BlockKind classifies why a URL was not usable.
type BlockKind string

// BlockKind values.
const (
	// KindPolicy covers the domain blocklist and robots.txt disallows.
	KindPolicy BlockKind = "policy"
	// KindAccessDenied covers non-2xx page responses.
	KindAccessDenied BlockKind = "access_denied"
	// KindTransport covers connection, DNS, timeout and decoding failures.
	KindTransport BlockKind = "transport"
	// KindContentGate covers pages rejected by the accessibility classifier.
	KindContentGate BlockKind = "content_gate"
)

// Reasons reported on blocked results.
const (
	ReasonDomainProhibited = "domain prohibited"
	ReasonRobotsRestricted = "robots.txt restricted"
	ReasonRedirect         = "redirect detected"
	ReasonLoginWall        = "login wall suspected"
	ReasonAccessDenied     = "access denied"
)

const (
	statusReasonPrefix = "status code "
	fetchReasonPrefix  = "fetch error: "
)

// StatusReason returns the reason reported for a non-2xx page response.
func StatusReason(code int) string {
	return statusReasonPrefix + strconv.Itoa(code)
}

// FetchErrorReason returns the reason reported for a failed page GET.
func FetchErrorReason(err error) string {
	return fetchReasonPrefix + err.Error()
}

// KindForReason recovers the block kind from a reason string. It is used
// when results are decoded from their wire form, which carries no kind.
func KindForReason(reason string) BlockKind {
	switch {
	case reason == ReasonDomainProhibited, reason == ReasonRobotsRestricted:
		return KindPolicy
	case strings.HasPrefix(reason, statusReasonPrefix):
		return KindAccessDenied
	case strings.HasPrefix(reason, fetchReasonPrefix):
		return KindTransport
	default:
		return KindContentGate
	}
}

// Image is an image reference found on a page.
type Image struct {
	Src string `json:"src"` // absolute URL
	Alt string `json:"alt"`
}

// Headings maps heading level (1-6) to heading texts in document order.
// Only levels with at least one heading are present.
type Headings map[int][]string

// MarshalJSON encodes headings with keys "h1" through "h6". Every key is
// present; levels without headings encode as empty arrays.
func (h Headings) MarshalJSON() ([]byte, error) {
	out := make(map[string][]string, 6)
	for level := 1; level <= 6; level++ {
		texts := h[level]
		if texts == nil {
			texts = []string{}
		}
		out["h"+strconv.Itoa(level)] = texts
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes headings keyed "h1" through "h6". Empty levels and
// unknown keys are dropped.
func (h *Headings) UnmarshalJSON(data []byte) error {
	var raw map[string][]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(Headings)
	for key, texts := range raw {
		level, err := strconv.Atoi(strings.TrimPrefix(key, "h"))
		if err != nil || !strings.HasPrefix(key, "h") || level < 1 || level > 6 {
			continue
		}
		if len(texts) > 0 {
			out[level] = texts
		}
	}
	*h = out
	return nil
}

// Document is the normalized structure extracted from an accessible page.
type Document struct {
	Title           string
	MetaDescription string
	Headings        Headings
	BodyText        string
	Images          []Image

	// ContentHTML is the HTML of the body container after noise removal.
	// It is not part of the wire record.
	ContentHTML string
}

// Result is the outcome of fetching one URL. A result is either blocked,
// with a Kind and Reason, or successful, with a Document.
type Result struct {
	URL      string
	Blocked  bool
	Kind     BlockKind
	Reason   string
	Document *Document
}

// NewBlocked returns a blocked result.
func NewBlocked(url string, kind BlockKind, reason string) *Result {
	return &Result{URL: url, Blocked: true, Kind: kind, Reason: reason}
}

// NewSuccess returns a successful result for doc.
func NewSuccess(url string, doc *Document) *Result {
	return &Result{URL: url, Document: doc}
}

// Transient reports whether the result is a transport failure, the only
// kind a caller may reasonably retry.
func (r *Result) Transient() bool {
	return r.Blocked && r.Kind == KindTransport
}

// String returns a one-line summary of the result.
func (r *Result) String() string {
	if r.Blocked {
		return fmt.Sprintf("blocked %s: %s", r.URL, r.Reason)
	}
	return fmt.Sprintf("ok %s: %s", r.URL, r.Document.Title)
}

type blockedRecord struct {
	URL     string `json:"url"`
	Error   string `json:"error"`
	Blocked bool   `json:"blocked"`
}

type successRecord struct {
	URL             string   `json:"url"`
	Title           string   `json:"title"`
	MetaDescription string   `json:"meta_description"`
	Headings        Headings `json:"headings"`
	Content         string   `json:"content"`
	Images          []Image  `json:"images"`
	Blocked         bool     `json:"blocked"`
}

// MarshalJSON encodes the result as a plain key/value record. Blocked
// results carry url, error and blocked; successful results carry url,
// title, meta_description, headings, content, images and blocked.
func (r *Result) MarshalJSON() ([]byte, error) {
	if r.Blocked || r.Document == nil {
		return json.Marshal(blockedRecord{URL: r.URL, Error: r.Reason, Blocked: true})
	}
	images := r.Document.Images
	if images == nil {
		images = []Image{}
	}
	return json.Marshal(successRecord{
		URL:             r.URL,
		Title:           r.Document.Title,
		MetaDescription: r.Document.MetaDescription,
		Headings:        r.Document.Headings,
		Content:         r.Document.BodyText,
		Images:          images,
		Blocked:         false,
	})
}

// UnmarshalJSON decodes a record produced by MarshalJSON.
func (r *Result) UnmarshalJSON(data []byte) error {
	var probe struct {
		Blocked bool `json:"blocked"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}

	if probe.Blocked {
		var rec blockedRecord
		if err := json.Unmarshal(data, &rec); err != nil {
			return err
		}
		*r = *NewBlocked(rec.URL, KindForReason(rec.Error), rec.Error)
		return nil
	}

	var rec successRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}
	*r = *NewSuccess(rec.URL, &Document{
		Title:           rec.Title,
		MetaDescription: rec.MetaDescription,
		Headings:        rec.Headings,
		BodyText:        rec.Content,
		Images:          rec.Images,
	})
	return nil
}
