package seofetch

import (
	"fmt"
	"strings"
)

// FormatResults formats results as a numbered plain-text listing.
// Blocked results show the reason; successful results show the title,
// the first heading of each populated level, and content sizes.
// Results are separated by blank lines.
func FormatResults(results []*Result) string {
	if len(results) == 0 {
		return ""
	}

	parts := make([]string, 0, len(results))
	for i, r := range results {
		var b strings.Builder
		if r.Blocked {
			fmt.Fprintf(&b, "%d. [blocked] %s\n   %s", i+1, r.URL, r.Reason)
			parts = append(parts, b.String())
			continue
		}

		doc := r.Document
		title := doc.Title
		if title == "" {
			title = r.URL
		}
		fmt.Fprintf(&b, "%d. [ok] %s\n   %s", i+1, title, r.URL)
		for level := 1; level <= 6; level++ {
			if texts := doc.Headings[level]; len(texts) > 0 {
				fmt.Fprintf(&b, "\n   h%d: %s", level, strings.Join(texts, " | "))
			}
		}
		fmt.Fprintf(&b, "\n   %d chars, %d images", len([]rune(doc.BodyText)), len(doc.Images))
		parts = append(parts, b.String())
	}

	return strings.Join(parts, "\n\n")
}
