package seofetch

import "context"

// Page is the markdown rendering of a successful result, handed to the
// downstream content generator.
type Page struct {
	URL     string
	Title   string
	Content string // Markdown
}

// PageStore persists pages to storage with atomic semantics.
// Save writes to a temporary location; Commit makes changes permanent;
// Abort discards pending changes.
type PageStore interface {
	Save(ctx context.Context, page *Page) error
	Commit() error
	Abort() error
}
