package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/seofetch"
	"github.com/fwojciec/seofetch/crawl"
)

// Run executes the fetch command.
func (c *FetchCmd) Run(deps *Dependencies) error {
	session, err := deps.NewSession()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", seofetch.ErrorMessage(err))
		return err
	}
	defer session.Close()

	results := session.FetchAll(deps.Ctx, c.URLs, progressPrinter(deps))

	if c.JSON {
		return writeJSON(deps, results)
	}

	fmt.Fprintln(deps.Stdout, seofetch.FormatResults(results))
	return nil
}

// progressPrinter reports retries and blocked URLs on stderr.
func progressPrinter(deps *Dependencies) crawl.ProgressFunc {
	return func(event crawl.ProgressEvent) {
		switch event.Type {
		case crawl.ProgressRetrying:
			fmt.Fprintf(deps.Stderr, "  retry %s: %s\n", event.URL, event.Message)
		case crawl.ProgressBlocked:
			fmt.Fprintf(deps.Stderr, "  [%d/%d] blocked %s: %s\n", event.Completed, event.Total, event.URL, event.Result.Reason)
		case crawl.ProgressCompleted:
			fmt.Fprintf(deps.Stderr, "  [%d/%d] ok %s\n", event.Completed, event.Total, event.URL)
		}
	}
}

func writeJSON(deps *Dependencies, v any) error {
	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}
	return nil
}
