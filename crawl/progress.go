package crawl

import (
	"time"

	"github.com/fwojciec/seofetch"
)

// ProgressEvent reports progress during a fetch batch.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string

	// Result is set on ProgressCompleted and ProgressBlocked.
	Result *seofetch.Result

	// Elapsed is the time spent on URL, retries included.
	Elapsed time.Duration

	// Message describes a retry.
	Message string
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressRetrying
	ProgressCompleted
	ProgressBlocked
	ProgressFinished
)

// ProgressFunc is a callback for reporting fetch progress. Calls are
// serialized.
type ProgressFunc func(event ProgressEvent)
