package seofetch

import (
	"context"
	"encoding/json"
	"time"
)

// Job is one keyword batch: the candidate URLs fetched for a keyword and
// their results in rank order.
type Job struct {
	ID        string
	Keyword   string
	Results   []*Result
	CreatedAt time.Time
}

// Validate returns an error if the job contains invalid fields.
func (j *Job) Validate() error {
	if j.Keyword == "" {
		return Errorf(EINVALID, "job keyword required")
	}
	for i, r := range j.Results {
		if r == nil || r.URL == "" {
			return Errorf(EINVALID, "job result %d has no URL", i)
		}
	}
	return nil
}

// Succeeded returns the number of successful results.
func (j *Job) Succeeded() int {
	n := 0
	for _, r := range j.Results {
		if !r.Blocked {
			n++
		}
	}
	return n
}

// MarshalJSON encodes the job in the shape of the keyword search response:
// keyword, results and total_results.
func (j *Job) MarshalJSON() ([]byte, error) {
	results := j.Results
	if results == nil {
		results = []*Result{}
	}
	return json.Marshal(struct {
		ID           string    `json:"id,omitempty"`
		Keyword      string    `json:"keyword"`
		Results      []*Result `json:"results"`
		TotalResults int       `json:"total_results"`
	}{
		ID:           j.ID,
		Keyword:      j.Keyword,
		Results:      results,
		TotalResults: len(results),
	})
}

// JobService represents a service for persisting keyword jobs.
type JobService interface {
	// CreateJob stores a job and its results. It assigns ID, and
	// CreatedAt when zero.
	CreateJob(ctx context.Context, job *Job) error

	// FindJobByID retrieves a job with its results.
	// Returns ENOTFOUND if job does not exist.
	FindJobByID(ctx context.Context, id string) (*Job, error)

	// FindJobs retrieves jobs matching the filter, newest first, with
	// their results.
	FindJobs(ctx context.Context, filter JobFilter) ([]*Job, error)

	// DeleteJob permanently removes a job and its results.
	// Returns ENOTFOUND if job does not exist.
	DeleteJob(ctx context.Context, id string) error
}

// JobFilter represents a filter for FindJobs.
type JobFilter struct {
	ID      *string `json:"id"`
	Keyword *string `json:"keyword"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
