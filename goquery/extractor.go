// Package goquery implements seofetch.Extractor using
// github.com/PuerkitoBio/goquery.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/seofetch"
	"golang.org/x/net/html"
)

var _ seofetch.Extractor = (*Extractor)(nil)

// noiseSelector matches subtrees removed before body text and images are
// read.
const noiseSelector = "script, style, nav, header, footer"

// containerSelectors are tried in order; the first present element holds
// the body text.
var containerSelectors = []string{"main", "article", "body"}

// Extractor builds a seofetch.Document from raw HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses rawHTML and returns its structured document. Title, meta
// description and headings are read from the full document. Script,
// style, nav, header and footer subtrees are then removed, and body text
// and images are read from what remains.
func (e *Extractor) Extract(rawHTML, baseURL string) *seofetch.Document {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return &seofetch.Document{Headings: seofetch.Headings{}}
	}

	out := &seofetch.Document{
		Title:           strings.TrimSpace(doc.Find("title").First().Text()),
		MetaDescription: metaDescription(doc),
		Headings:        headings(doc),
	}

	doc.Find(noiseSelector).Remove()

	if container := bodyContainer(doc); container != nil {
		out.BodyText = flattenText(container)
		if h, err := goquery.OuterHtml(container); err == nil {
			out.ContentHTML = h
		}
	}

	out.Images = images(doc, baseURL)

	return out
}

func metaDescription(doc *goquery.Document) string {
	var content string
	doc.Find("meta[name]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if !strings.EqualFold(strings.TrimSpace(sel.AttrOr("name", "")), "description") {
			return true
		}
		content = strings.TrimSpace(sel.AttrOr("content", ""))
		return false
	})
	return content
}

func headings(doc *goquery.Document) seofetch.Headings {
	out := seofetch.Headings{}
	doc.Find("h1, h2, h3, h4, h5, h6").Each(func(_ int, sel *goquery.Selection) {
		level := int(goquery.NodeName(sel)[1] - '0')
		out[level] = append(out[level], strings.TrimSpace(sel.Text()))
	})
	return out
}

func bodyContainer(doc *goquery.Document) *goquery.Selection {
	for _, s := range containerSelectors {
		if sel := doc.Find(s).First(); sel.Length() > 0 {
			return sel
		}
	}
	return nil
}

// flattenText joins the trimmed text nodes under sel with single spaces.
func flattenText(sel *goquery.Selection) string {
	var parts []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if t := strings.Join(strings.Fields(n.Data), " "); t != "" {
				parts = append(parts, t)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range sel.Nodes {
		walk(n)
	}
	return strings.Join(parts, " ")
}

// images returns every <img> with a non-empty src, resolved against
// baseURL. Sources that cannot be parsed are skipped.
func images(doc *goquery.Document, baseURL string) []seofetch.Image {
	base, err := url.Parse(baseURL)
	if err != nil {
		base = &url.URL{}
	}

	var out []seofetch.Image
	doc.Find("img").Each(func(_ int, sel *goquery.Selection) {
		src := strings.TrimSpace(sel.AttrOr("src", ""))
		if src == "" {
			return
		}
		ref, err := url.Parse(src)
		if err != nil {
			return
		}
		out = append(out, seofetch.Image{
			Src: base.ResolveReference(ref).String(),
			Alt: sel.AttrOr("alt", ""),
		})
	})
	return out
}
